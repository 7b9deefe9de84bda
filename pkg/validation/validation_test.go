package validation_test

import (
	"strings"
	"testing"

	"ong-backend/internal/domain"
	"ong-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func validRequest() domain.SubmissionRequest {
	return domain.SubmissionRequest{
		Name:     "Ana",
		Email:    "ana@test.com",
		Phone:    "123456",
		HelpType: "Voluntariado",
		Message:  strPtr(""),
	}
}

func TestValidateSubmissionRequest(t *testing.T) {
	v := validation.New()

	t.Run("Should accept a valid request with an empty message", func(t *testing.T) {
		req := validRequest()
		assert.NoError(t, validation.Validate(v, &req))
	})

	t.Run("Should accept values at the length bounds", func(t *testing.T) {
		req := validRequest()
		req.Name = "Jo"
		req.Phone = strings.Repeat("9", 30)
		req.Message = strPtr(strings.Repeat("ñ", 2000))
		assert.NoError(t, validation.Validate(v, &req))
	})

	cases := []struct {
		name   string
		mutate func(r *domain.SubmissionRequest)
		field  string
	}{
		{"short name", func(r *domain.SubmissionRequest) { r.Name = "A" }, "nombre"},
		{"long name", func(r *domain.SubmissionRequest) { r.Name = strings.Repeat("a", 101) }, "nombre"},
		{"blank name", func(r *domain.SubmissionRequest) { r.Name = "   " }, "nombre"},
		{"missing email", func(r *domain.SubmissionRequest) { r.Email = "" }, "email"},
		{"malformed email", func(r *domain.SubmissionRequest) { r.Email = "not-an-email" }, "email"},
		{"short phone", func(r *domain.SubmissionRequest) { r.Phone = "12345" }, "telefono"},
		{"long phone", func(r *domain.SubmissionRequest) { r.Phone = strings.Repeat("1", 31) }, "telefono"},
		{"blank help type", func(r *domain.SubmissionRequest) { r.HelpType = " \t" }, "tipoAyuda"},
		{"missing message", func(r *domain.SubmissionRequest) { r.Message = nil }, "mensaje"},
		{"long message", func(r *domain.SubmissionRequest) { r.Message = strPtr(strings.Repeat("x", 2001)) }, "mensaje"},
	}
	for _, tc := range cases {
		t.Run("Should reject "+tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			err := validation.Validate(v, &req)

			var vErr *validation.Error
			require.ErrorAs(t, err, &vErr)
			require.Len(t, vErr.Fields, 1)
			assert.Equal(t, tc.field, vErr.Fields[0].Field)
			assert.NotEmpty(t, vErr.Fields[0].Message)
		})
	}

	t.Run("Should list every failing field", func(t *testing.T) {
		req := domain.SubmissionRequest{Email: "nope"}

		err := validation.Validate(v, &req)

		var vErr *validation.Error
		require.ErrorAs(t, err, &vErr)
		for _, field := range []string{"nombre", "email", "telefono", "tipoAyuda", "mensaje"} {
			assert.True(t, vErr.Has(field), "missing violation for %s", field)
		}
	})

	t.Run("Should use Spanish labels in messages", func(t *testing.T) {
		req := validRequest()
		req.Phone = "1"

		err := validation.Validate(v, &req)

		var vErr *validation.Error
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "Teléfono: Mínimo 6 caracteres", vErr.Fields[0].Message)
		assert.Contains(t, err.Error(), "Teléfono")
	})
}
