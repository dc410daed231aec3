package email

import (
	"context"

	"github.com/shandysiswandi/gonotif/internal/pkg/instrument"
	"github.com/shandysiswandi/gonotif/internal/pkg/mail"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Mail traces every dispatch to the configured provider. Addresses and bodies
// never become span attributes.
type Mail struct {
	client mail.Mail
	ins    instrument.Instrumentation
}

func New(client mail.Mail, ins instrument.Instrumentation) *Mail {
	return &Mail{client: client, ins: ins}
}

func (m *Mail) Provider() mail.Provider {
	return m.client.Provider()
}

func (m *Mail) Send(ctx context.Context, msg mail.Message) (string, error) {
	ctx, span := m.ins.Tracer("notification.outbound.email").Start(ctx, "Send",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("mail.provider", m.client.Provider().String()),
			attribute.Int("mail.recipients", len(msg.To)+len(msg.Cc)+len(msg.Bcc)),
			attribute.Bool("mail.template", msg.TemplateID != ""),
		),
	)
	defer span.End()

	id, err := m.client.Send(ctx, msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	span.SetAttributes(attribute.String("mail.message_id", id))

	return id, nil
}
