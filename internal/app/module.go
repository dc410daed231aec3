package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/gonotif/internal/notification"
	"github.com/shandysiswandi/gonotif/internal/notification/usecase"
)

func (a *App) initModules() {
	uc, err := notification.New(notification.Dependency{
		Settings: usecase.Settings{
			ServiceName: a.config.GetString("app.name"),
			Environment: a.config.GetString("app.env"),
			Provider:    a.config.GetString("email.provider"),
			From:        a.config.GetString("email.from"),
		},
		Instrument: a.ins,
		Clock:      a.clock,
		Validator:  a.validator,
		Router:     a.router,
		Mail:       a.mail,
	})
	if err != nil {
		slog.Error("failed to init module notification", "error", err)
		os.Exit(1)
	}

	a.notification = uc
}
