package domain

import "context"

// SubmissionRequest is the help-request form as received on the wire
type SubmissionRequest struct {
	Name     string  `json:"nombre" validate:"required,not_blank,min=2,max=100"`
	Email    string  `json:"email" validate:"required,not_blank,email"`
	Phone    string  `json:"telefono" validate:"required,not_blank,min=6,max=30"`
	HelpType string  `json:"tipoAyuda" validate:"required,not_blank"`
	Message  *string `json:"mensaje" validate:"required,max=2000"`
}

// ToSubmission converts an already validated request
func (r *SubmissionRequest) ToSubmission() Submission {
	s := Submission{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		HelpType: r.HelpType,
	}
	if r.Message != nil {
		s.Message = *r.Message
	}
	return s
}

// Submission is a validated help request. It only exists for the duration of one request.
type Submission struct {
	Name     string
	Email    string
	Phone    string
	HelpType string
	Message  string
}

// SubmissionUsecase defines the intake flow for help requests
type SubmissionUsecase interface {
	// Submit validates the request and delivers the notification
	Submit(ctx context.Context, req *SubmissionRequest) error
}

// Notifier delivers a rendered notification to the configured recipient
type Notifier interface {
	Deliver(ctx context.Context, html, subject string) error
}
