package email

import (
	"context"
	"log/slog"
)

// Options is the delivery configuration, fixed for the life of the process
type Options struct {
	To       string
	From     string
	Simulate bool
}

// EmailService delivers notifications through a Transport, or into an Outbox when simulating
type EmailService struct {
	opts      Options
	transport Transport
	outbox    *Outbox
	logger    *slog.Logger
}

// NewEmailService creates a new email service. transport may be nil when simulating
// and outbox may be nil when not.
func NewEmailService(opts Options, transport Transport, outbox *Outbox, logger *slog.Logger) *EmailService {
	if logger == nil {
		logger = slog.Default()
	}
	return &EmailService{
		opts:      opts,
		transport: transport,
		outbox:    outbox,
		logger:    logger.With("component", "email"),
	}
}

// Mode names the delivery path in use
func (s *EmailService) Mode() string {
	if s.opts.Simulate {
		return "simulate"
	}
	if s.transport == nil {
		return "none"
	}
	return s.transport.Name()
}

// Deliver sends html to the configured recipient. A failed simulated write is
// logged and still reported as success.
func (s *EmailService) Deliver(ctx context.Context, html, subject string) error {
	if s.opts.Simulate {
		s.saveSimulated(html)
		s.logger.Info("simulated email prepared", "to", s.opts.To, "subject", subject)
		return nil
	}

	if s.transport == nil {
		return &TransportError{Provider: "none", Err: errNoTransport}
	}

	msg := Message{
		From:    s.opts.From,
		To:      s.opts.To,
		Subject: subject,
		HTML:    html,
	}
	if err := s.transport.Send(ctx, msg); err != nil {
		s.logger.Error("email send failed", "to", s.opts.To, "provider", s.transport.Name(), "error", err)
		return &TransportError{Provider: s.transport.Name(), Err: err}
	}

	s.logger.Info("email sent", "to", s.opts.To, "provider", s.transport.Name())
	return nil
}

func (s *EmailService) saveSimulated(html string) {
	if s.outbox == nil {
		s.logger.Error("simulated email not saved", "error", &SimulationWriteError{Err: errNoOutbox})
		return
	}

	path, err := s.outbox.Save(html)
	if err != nil {
		s.logger.Error("simulated email not saved", "error", &SimulationWriteError{Dir: s.outbox.Dir(), Err: err})
		return
	}
	s.logger.Info("simulated email saved", "path", path)
}
