package email

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"net/smtp"
)

// Message is a single HTML email ready to be handed to a Transport
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Bytes renders the message as a MIME document with an HTML body
func (m Message) Bytes() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", m.From)
	fmt.Fprintf(&buf, "To: %s\r\n", m.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", m.Subject))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(m.HTML)
	return buf.Bytes()
}

// Transport sends a message synchronously
type Transport interface {
	Name() string
	Send(ctx context.Context, msg Message) error
}

// SMTPConfig holds the SMTP relay settings
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
}

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPTransport sends email through an SMTP relay
type SMTPTransport struct {
	cfg      SMTPConfig
	sendMail sendMailFunc
}

// NewSMTPTransport creates an SMTP transport. Authentication is only used when a username is set.
func NewSMTPTransport(cfg SMTPConfig) *SMTPTransport {
	return &SMTPTransport{
		cfg:      cfg,
		sendMail: smtp.SendMail,
	}
}

func (t *SMTPTransport) Name() string { return "smtp" }

// Send delivers msg in one attempt
func (t *SMTPTransport) Send(_ context.Context, msg Message) error {
	var auth smtp.Auth
	if t.cfg.Username != "" {
		auth = smtp.PlainAuth("", t.cfg.Username, t.cfg.Password, t.cfg.Host)
	}

	addr := fmt.Sprintf("%s:%s", t.cfg.Host, t.cfg.Port)
	if err := t.sendMail(addr, auth, msg.From, []string{msg.To}, msg.Bytes()); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
