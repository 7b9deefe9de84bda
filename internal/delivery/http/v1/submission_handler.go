package v1

import (
	"errors"
	"net/http"

	"ong-backend/internal/delivery/http/response"
	"ong-backend/internal/domain"
	"ong-backend/pkg/apperror"
	"ong-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

const (
	msgSubmissionAccepted = "Solicitud recibida y correo enviado (o simulado)."
	msgInvalidBody        = "Cuerpo de solicitud inválido"
	msgInvalidSubmission  = "Datos de solicitud inválidos"
	msgDeliveryFailed     = "No se pudo enviar el correo."
)

type SubmissionHandler struct {
	submissionUC domain.SubmissionUsecase
}

// NewSubmissionHandler registers the help-request routes (public, no auth required)
func NewSubmissionHandler(public *gin.RouterGroup, submissionUC domain.SubmissionUsecase) {
	handler := &SubmissionHandler{
		submissionUC: submissionUC,
	}

	public.POST("/ong", handler.Submit)
}

// Submit godoc
// @Summary      Submit Help Request
// @Description  Validates a volunteer/help request from the website form and notifies the organization by email.
// @Tags         ong
// @Accept       json
// @Produce      json
// @Param        submission  body      domain.SubmissionRequest  true  "Help request"
// @Success      200         {object}  response.Response
// @Failure      400         {object}  response.Response
// @Failure      502         {object}  response.Response
// @Router       /ong [post]
func (h *SubmissionHandler) Submit(c *gin.Context) {
	var req domain.SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(msgInvalidBody))
		return
	}

	if err := h.submissionUC.Submit(c.Request.Context(), &req); err != nil {
		var validationErr *validation.Error
		if errors.As(err, &validationErr) {
			c.Error(apperror.BadRequest(msgInvalidSubmission).WithDetails(validationErr.Fields))
			return
		}
		c.Error(apperror.BadGateway(msgDeliveryFailed, err))
		return
	}

	response.Success(c, http.StatusOK, msgSubmissionAccepted, nil)
}
