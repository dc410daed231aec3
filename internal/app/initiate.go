package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/shandysiswandi/gonotif/internal/pkg/clock"
	"github.com/shandysiswandi/gonotif/internal/pkg/config"
	"github.com/shandysiswandi/gonotif/internal/pkg/instrument"
	"github.com/shandysiswandi/gonotif/internal/pkg/mail"
	"github.com/shandysiswandi/gonotif/internal/pkg/router"
	"github.com/shandysiswandi/gonotif/internal/pkg/uid"
	"github.com/shandysiswandi/gonotif/internal/pkg/validator"
)

func (a *App) initConfig() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Error("failed to load env file", "path", envFile, "error", err)
		os.Exit(1)
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "/config/config.yaml"
		if os.Getenv("LOCAL") == "true" {
			path = "./config/config.yaml"
		}
	}

	cfg, err := config.NewViper(path)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	if tz := cfg.GetString("app.tz"); tz != "" {
		//nolint:errcheck,gosec // ignore error
		os.Setenv("TZ", tz)
	}

	a.config = cfg
}

func (a *App) initInstrument() {
	ins, err := instrument.New(context.Background(), &instrument.Config{
		Enabled:          a.config.GetBool("instrument.enabled"),
		ServiceName:      a.config.GetString("instrument.service_name"),
		ServiceVersion:   a.config.GetString("instrument.service_version"),
		Environment:      a.config.GetString("app.env"),
		OTLPEndpoint:     a.config.GetString("instrument.otlp_endpoint"),
		OTLPSecure:       a.config.GetBool("instrument.otlp_secure"),
		TraceSampleRatio: a.config.GetFloat64("instrument.trace_sample_ratio"),
		MetricsInterval:  a.config.GetSecond("instrument.metric_interval_seconds"),
		MaskFields:       a.config.GetArray("instrument.log_mask_fields"),
		LogLevel:         a.config.GetString("instrument.log_level"),
	})
	if err != nil {
		slog.Error("failed to init instrumentation", "error", err)
		os.Exit(1)
	}
	a.ins = ins
}

func (a *App) initLibraries() {
	a.clock = clock.New()
	a.uuid = uid.NewUUID()

	validator, err := validator.NewV10Validator()
	if err != nil {
		slog.Error("failed to init validation v10 validator", "error", err)
		os.Exit(1)
	}
	a.validator = validator
}

func (a *App) initMail() {
	raw := a.config.GetString("email.provider")
	provider, known := mail.ParseProvider(raw)
	if !known {
		slog.Warn("unknown email provider, falling back to mock", "configured", raw, "backend", provider.String())
	}

	timeout := a.config.GetSecond("email.timeout_seconds")
	apiKey := a.config.GetString("email.api_key")

	smtpPassword := a.config.GetString("email.smtp.password")
	if smtpPassword == "" {
		smtpPassword = apiKey
	}

	m, err := mail.NewFromProvider(a.ctx, provider, mail.FactoryOptions{
		From: strings.TrimSpace(a.config.GetString("email.from")),
		SMTP: mail.SMTPConfig{
			Host:     strings.TrimSpace(a.config.GetString("email.smtp.host")),
			Port:     a.config.GetInt("email.smtp.port"),
			Username: strings.TrimSpace(a.config.GetString("email.smtp.username")),
			Password: smtpPassword,
			TLSMode:  a.config.GetString("email.smtp.tls_mode"),
			Timeout:  timeout,
		},
		Resend: mail.ResendConfig{
			APIKey:  apiKey,
			BaseURL: strings.TrimSpace(a.config.GetString("email.resend.base_url")),
			Timeout: timeout,
		},
		SES: mail.SESConfig{
			Region:           strings.TrimSpace(a.config.GetString("email.ses.region")),
			Endpoint:         strings.TrimSpace(a.config.GetString("email.ses.endpoint")),
			AccessKey:        strings.TrimSpace(a.config.GetString("email.ses.access_key")),
			SecretKey:        strings.TrimSpace(a.config.GetString("email.ses.secret_key")),
			SessionToken:     strings.TrimSpace(a.config.GetString("email.ses.session_token")),
			ConfigurationSet: strings.TrimSpace(a.config.GetString("email.ses.configuration_set")),
		},
	})
	if err != nil {
		slog.Error("failed to init mail", "provider", provider.String(), "error", err)
		os.Exit(1)
	}

	slog.Info("email provider ready", "provider", m.Provider().String())
	a.mail = m
}

func (a *App) initHTTPServer() {
	a.router = router.NewRouter(router.Config{
		Config:     a.config,
		UUID:       a.uuid,
		Instrument: a.ins,
		Welcome:    "Welcome to " + a.config.GetString("app.name") + " API",
	})

	origins := a.config.GetArray("app.server.cors")
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	routerWithCORS := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(a.router)

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("app.server.http.address"),
		Handler:           routerWithCORS,
		ReadTimeout:       a.config.GetSecond("app.server.http.read_timeout_seconds"),
		ReadHeaderTimeout: a.config.GetSecond("app.server.http.read_header_timeout_seconds"),
		WriteTimeout:      a.config.GetSecond("app.server.http.write_timeout_seconds"),
		IdleTimeout:       a.config.GetSecond("app.server.http.idle_timeout_seconds"),
	}
}

func (a *App) initClosers() {
	a.closers = []struct {
		name string
		fn   func(context.Context) error
	}{
		{
			name: "Mail",
			fn: func(context.Context) error {
				return a.mail.Close()
			},
		},
		{
			name: "Instrument",
			fn: func(ctx context.Context) error {
				return a.ins.Shutdown(ctx)
			},
		},
		{
			name: "Config",
			fn: func(context.Context) error {
				return a.config.Close()
			},
		},
	}
}
