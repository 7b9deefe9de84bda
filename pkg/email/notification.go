package email

import (
	"fmt"
	"strings"
)

// SubmissionEmailData holds the data for help-request notifications
type SubmissionEmailData struct {
	Name     string
	Email    string
	Phone    string
	HelpType string
	Message  string
}

const submissionTitle = "Nueva solicitud - Juntos Transformando Historias"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// EscapeHTML escapes &, <, > and " in a single pass
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// RenderSubmission builds the HTML body of a help-request notification.
// Every value is escaped before it is embedded.
func RenderSubmission(data SubmissionEmailData) string {
	var b strings.Builder
	b.WriteString("<h2>" + submissionTitle + "</h2>")
	b.WriteString("<p><strong>Nombre:</strong> " + EscapeHTML(data.Name) + "</p>")
	b.WriteString("<p><strong>Email:</strong> " + EscapeHTML(data.Email) + "</p>")
	b.WriteString("<p><strong>Teléfono:</strong> " + EscapeHTML(data.Phone) + "</p>")
	b.WriteString("<p><strong>Tipo de ayuda:</strong> " + EscapeHTML(data.HelpType) + "</p>")
	b.WriteString("<p><strong>Mensaje:</strong><br>" + EscapeHTML(data.Message) + "</p>")
	return b.String()
}

// SubmissionSubject builds the subject line for a help-request notification
func SubmissionSubject(data SubmissionEmailData) string {
	return fmt.Sprintf("New request - %s - %s", data.HelpType, data.Name)
}
