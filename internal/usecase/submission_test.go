package usecase_test

import (
	"context"
	"errors"
	"testing"

	"ong-backend/internal/domain"
	"ong-backend/internal/usecase"
	"ong-backend/pkg/email"
	"ong-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Deliver(ctx context.Context, html, subject string) error {
	return m.Called(ctx, html, subject).Error(0)
}

func strPtr(s string) *string { return &s }

func anaRequest() *domain.SubmissionRequest {
	return &domain.SubmissionRequest{
		Name:     "Ana",
		Email:    "ana@test.com",
		Phone:    "123456",
		HelpType: "Voluntariado",
		Message:  strPtr(""),
	}
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("Should deliver the rendered notification", func(t *testing.T) {
		notifier := new(MockNotifier)
		uc := usecase.NewSubmissionUsecase(notifier, validation.New(), nil)

		notifier.On("Deliver", ctx, mock.AnythingOfType("string"), "New request - Voluntariado - Ana").
			Return(nil).Once().
			Run(func(args mock.Arguments) {
				html := args.String(1)
				assert.Contains(t, html, "<strong>Nombre:</strong> Ana")
				assert.Contains(t, html, "<strong>Email:</strong> ana@test.com")
			})

		assert.NoError(t, uc.Submit(ctx, anaRequest()))
		notifier.AssertExpectations(t)
	})

	t.Run("Should escape script tags before delivery", func(t *testing.T) {
		notifier := new(MockNotifier)
		uc := usecase.NewSubmissionUsecase(notifier, validation.New(), nil)

		req := anaRequest()
		req.Message = strPtr("<script>alert(1)</script>")

		notifier.On("Deliver", ctx, mock.AnythingOfType("string"), mock.Anything).
			Return(nil).Once().
			Run(func(args mock.Arguments) {
				html := args.String(1)
				assert.Contains(t, html, "&lt;script&gt;")
				assert.NotContains(t, html, "<script>")
			})

		assert.NoError(t, uc.Submit(ctx, req))
		notifier.AssertExpectations(t)
	})

	t.Run("Should not deliver an invalid request", func(t *testing.T) {
		notifier := new(MockNotifier)
		uc := usecase.NewSubmissionUsecase(notifier, validation.New(), nil)

		req := anaRequest()
		req.Email = "not-an-email"

		err := uc.Submit(ctx, req)

		var vErr *validation.Error
		require.ErrorAs(t, err, &vErr)
		assert.True(t, vErr.Has("email"))
		notifier.AssertNotCalled(t, "Deliver", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should surface delivery failures", func(t *testing.T) {
		notifier := new(MockNotifier)
		uc := usecase.NewSubmissionUsecase(notifier, validation.New(), nil)

		transportErr := &email.TransportError{Provider: "smtp", Err: errors.New("timeout")}
		notifier.On("Deliver", ctx, mock.Anything, mock.Anything).Return(transportErr).Once()

		err := uc.Submit(ctx, anaRequest())

		var got *email.TransportError
		assert.ErrorAs(t, err, &got)
		notifier.AssertNumberOfCalls(t, "Deliver", 1)
	})
}

func TestToSubmission(t *testing.T) {
	req := anaRequest()
	req.Message = nil

	sub := req.ToSubmission()

	assert.Equal(t, domain.Submission{
		Name:     "Ana",
		Email:    "ana@test.com",
		Phone:    "123456",
		HelpType: "Voluntariado",
	}, sub)
}

func TestHealthCheck(t *testing.T) {
	opts := email.Options{Simulate: true}
	uc := usecase.NewHealthUsecase(email.NewEmailService(opts, nil, nil, nil))

	status := uc.Check(context.Background())

	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "simulate", status["mail_mode"])
}
