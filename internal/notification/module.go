package notification

import (
	"errors"

	"github.com/shandysiswandi/gonotif/internal/notification/inbound"
	"github.com/shandysiswandi/gonotif/internal/notification/outbound/email"
	"github.com/shandysiswandi/gonotif/internal/notification/usecase"
	"github.com/shandysiswandi/gonotif/internal/pkg/clock"
	"github.com/shandysiswandi/gonotif/internal/pkg/instrument"
	"github.com/shandysiswandi/gonotif/internal/pkg/mail"
	"github.com/shandysiswandi/gonotif/internal/pkg/router"
	"github.com/shandysiswandi/gonotif/internal/pkg/validator"
)

type Dependency struct {
	Settings   usecase.Settings
	Instrument instrument.Instrumentation
	Clock      clock.Clocker
	Validator  validator.Validator
	Router     *router.Router
	Mail       mail.Mail
}

// New wires the notification module and registers its HTTP endpoints when a
// router is given. The returned use case serves callers outside HTTP (CLI).
func New(dep Dependency) (*usecase.Usecase, error) {
	if dep.Mail == nil {
		return nil, errors.New("notification: mail provider is required")
	}

	repoMail := email.New(dep.Mail, dep.Instrument)

	uc := usecase.NewNotification(usecase.Dependency{
		Settings:   dep.Settings,
		Clock:      dep.Clock,
		Validator:  dep.Validator,
		RepoMail:   repoMail,
		Instrument: dep.Instrument,
	})

	if dep.Router != nil {
		inbound.RegisterHTTPEndpoint(dep.Router, uc)
	}

	return uc, nil
}
