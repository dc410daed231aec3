package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/shandysiswandi/gonotif/internal/notification/entity"
	"github.com/shandysiswandi/gonotif/internal/pkg/goerror"
	"github.com/shandysiswandi/gonotif/internal/pkg/mail"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type SendEmailInput struct {
	ToEmail    string `json:"to_email" validate:"required,email"`
	Subject    string `json:"subject" validate:"required,notblank"`
	Body       string `json:"body" validate:"required,notblank"`
	TemplateID string `json:"template_id" validate:"omitempty,max=255"`
}

// SendEmail validates the request and dispatches it exactly once through the
// configured provider.
func (s *Usecase) SendEmail(ctx context.Context, in SendEmailInput) (*entity.EmailResult, error) {
	ctx, span := s.startSpan(ctx, "SendEmail")
	defer span.End()

	in.ToEmail = strings.TrimSpace(in.ToEmail)
	in.Subject = strings.TrimSpace(in.Subject)
	in.TemplateID = strings.TrimSpace(in.TemplateID)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	provider := s.repoMail.Provider()
	start := s.clock.Now()

	id, err := s.repoMail.Send(ctx, mail.Message{
		From:       s.settings.From,
		To:         []string{in.ToEmail},
		Subject:    in.Subject,
		TextBody:   in.Body,
		TemplateID: in.TemplateID,
	})

	status := entity.DeliveryStatusSent
	if err != nil {
		status = entity.DeliveryStatusFailed
	}
	s.recordDispatch(ctx, provider, status, start)

	if err != nil {
		slog.ErrorContext(ctx, "failed to send email", "provider", provider.String(), "template_id", in.TemplateID, "error", err)
		return nil, goerror.NewUpstream(err, "Failed to send email")
	}

	slog.InfoContext(ctx, "email sent", "provider", provider.String(), "provider_id", id)

	return &entity.EmailResult{
		Status:     entity.DeliveryStatusSent,
		ProviderID: id,
	}, nil
}

func (s *Usecase) recordDispatch(ctx context.Context, p mail.Provider, status entity.DeliveryStatus, start time.Time) {
	attrs := metric.WithAttributes(
		attribute.String("provider", p.String()),
		attribute.String("status", status.String()),
	)

	if s.dispatchCounter != nil {
		s.dispatchCounter.Add(ctx, 1, attrs)
	}
	if s.dispatchHistogram != nil {
		elapsed := s.clock.Now().Sub(start)
		s.dispatchHistogram.Record(ctx, float64(elapsed.Milliseconds()), attrs)
	}
}
