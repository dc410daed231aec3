package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/gonotif/internal/pkg/clock"
	"github.com/shandysiswandi/gonotif/internal/pkg/instrument"
	"github.com/shandysiswandi/gonotif/internal/pkg/mail"
	"github.com/shandysiswandi/gonotif/internal/pkg/validator"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type repoMail interface {
	Provider() mail.Provider
	Send(ctx context.Context, msg mail.Message) (string, error)
}

// Settings is the process-wide configuration the use case needs. It is read
// once at startup and never mutated.
type Settings struct {
	ServiceName string
	Environment string
	// Provider is the configured provider name, kept verbatim for reporting.
	Provider string
	// From is the default sender address.
	From string
}

type Usecase struct {
	settings  Settings
	clock     clock.Clocker
	validator validator.Validator
	repoMail  repoMail
	ins       instrument.Instrumentation

	dispatchCounter   metric.Int64Counter
	dispatchHistogram metric.Float64Histogram
}

type Dependency struct {
	Settings   Settings
	Clock      clock.Clocker
	Validator  validator.Validator
	RepoMail   repoMail
	Instrument instrument.Instrumentation
}

func NewNotification(dep Dependency) *Usecase {
	uc := &Usecase{
		settings:  dep.Settings,
		clock:     dep.Clock,
		validator: dep.Validator,
		repoMail:  dep.RepoMail,
		ins:       dep.Instrument,
	}

	meter := dep.Instrument.Meter("notification.usecase")

	counter, err := meter.Int64Counter("notification.email.dispatch",
		metric.WithDescription("Number of email dispatch attempts"))
	if err != nil {
		slog.Error("failed to create email dispatch counter", "error", err)
	}
	uc.dispatchCounter = counter

	histogram, err := meter.Float64Histogram("notification.email.dispatch.duration",
		metric.WithDescription("Email dispatch duration in milliseconds"))
	if err != nil {
		slog.Error("failed to create email dispatch histogram", "error", err)
	}
	uc.dispatchHistogram = histogram

	return uc
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("notification.usecase").Start(ctx, name)
}
