package inbound

import (
	"github.com/shandysiswandi/gonotif/internal/notification/usecase"
	"github.com/shandysiswandi/gonotif/internal/pkg/router"
)

type HTTPEndpoint struct {
	uc uc
}

// SendEmail dispatches a transactional email through the configured provider.
// @Summary Send an email
// @Description Validates the request and sends it once through the configured email provider.
// @Tags Notifications
// @Accept json
// @Produce json
// @Param request body SendEmailRequest true "Email payload"
// @Success 200 {object} SendEmailResponse "Dispatch result"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 502 {object} router.errorResponse "Email provider failed"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/notifications/send [post]
func (h *HTTPEndpoint) SendEmail(r *router.Request) (any, error) {
	var req SendEmailRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	res, err := h.uc.SendEmail(r.Context(), usecase.SendEmailInput{
		ToEmail:    req.ToEmail,
		Subject:    req.Subject,
		Body:       req.Body,
		TemplateID: req.TemplateID,
	})
	if err != nil {
		return nil, err
	}

	return SendEmailResponse{
		Status:     res.Status.String(),
		ProviderID: res.ProviderID,
	}, nil
}

// Health returns liveness info.
// @Summary Liveness
// @Description Returns service name, environment and configured email provider.
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse "Service info"
// @Router /health [get]
func (h *HTTPEndpoint) Health(r *router.Request) (any, error) {
	info := h.uc.Health(r.Context())

	return HealthResponse{
		Status:   "ok",
		Service:  info.Service,
		Env:      info.Environment,
		Provider: info.Provider,
		Backend:  info.Backend,
	}, nil
}
