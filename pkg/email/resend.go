package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ResendTransport sends email through the Resend API
type ResendTransport struct {
	client *resend.Client
}

// NewResendTransport creates a Resend transport with the given API key
func NewResendTransport(apiKey string) *ResendTransport {
	return &ResendTransport{client: resend.NewClient(apiKey)}
}

// NewResendTransportWithClient wraps an already configured Resend client
func NewResendTransportWithClient(client *resend.Client) *ResendTransport {
	return &ResendTransport{client: client}
}

func (t *ResendTransport) Name() string { return "resend" }

// Send delivers msg in one attempt
func (t *ResendTransport) Send(_ context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	}

	if _, err := t.client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
