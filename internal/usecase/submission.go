package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"ong-backend/internal/domain"
	"ong-backend/pkg/email"
	"ong-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type submissionUsecase struct {
	notifier domain.Notifier
	validate *validator.Validate
	logger   *slog.Logger
}

// NewSubmissionUsecase creates a new submission usecase
func NewSubmissionUsecase(notifier domain.Notifier, validate *validator.Validate, logger *slog.Logger) domain.SubmissionUsecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &submissionUsecase{
		notifier: notifier,
		validate: validate,
		logger:   logger,
	}
}

// Submit validates the request, renders the notification and delivers it.
// Nothing is delivered when validation fails.
func (uc *submissionUsecase) Submit(ctx context.Context, req *domain.SubmissionRequest) error {
	if err := validation.Validate(uc.validate, req); err != nil {
		return err
	}

	sub := req.ToSubmission()
	data := email.SubmissionEmailData{
		Name:     sub.Name,
		Email:    sub.Email,
		Phone:    sub.Phone,
		HelpType: sub.HelpType,
		Message:  sub.Message,
	}

	if err := uc.notifier.Deliver(ctx, email.RenderSubmission(data), email.SubmissionSubject(data)); err != nil {
		return fmt.Errorf("failed to deliver submission: %w", err)
	}

	uc.logger.Info("submission delivered", "help_type", sub.HelpType)
	return nil
}
