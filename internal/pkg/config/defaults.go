package config

// defaults are applied before any file or environment value.
var defaults = map[string]any{
	"app.name":                             "Notification Service",
	"app.env":                              "development",
	"app.tz":                               "UTC",
	"app.server.cors":                      "*",
	"app.server.http.address":              ":8080",
	"app.server.http.read_timeout_seconds": 15,
	"app.server.http.read_header_timeout_seconds": 5,
	"app.server.http.write_timeout_seconds":       30,
	"app.server.http.idle_timeout_seconds":        60,
	"app.maintenance.endpoints":                   "",

	"instrument.enabled":                 false,
	"instrument.service_name":            "notification-service",
	"instrument.service_version":         "1.0.0",
	"instrument.otlp_endpoint":           "localhost:4317",
	"instrument.otlp_secure":             false,
	"instrument.trace_sample_ratio":      1.0,
	"instrument.metric_interval_seconds": 15,
	"instrument.log_mask_fields":         "authorization,api_key,password,secret_key,session_token",
	"instrument.log_level":               "info",

	"email.provider":        "mock",
	"email.api_key":         "",
	"email.from":            "no-reply@example.com",
	"email.timeout_seconds": 10,
	"email.smtp.port":       587,
	"email.smtp.tls_mode":   "auto",
}

// envBindings maps configuration keys to the environment variables that
// override them.
var envBindings = map[string]string{
	"app.name":                "NOTIFICATION_SERVICE_NAME",
	"app.env":                 "ENV",
	"app.tz":                  "TZ",
	"app.server.cors":         "ALLOWED_ORIGINS",
	"app.server.http.address": "HTTP_ADDRESS",

	"instrument.enabled":         "INSTRUMENT_ENABLED",
	"instrument.otlp_endpoint":   "OTEL_EXPORTER_OTLP_ENDPOINT",
	"instrument.service_name":    "OTEL_SERVICE_NAME",
	"instrument.log_mask_fields": "LOG_MASK_FIELDS",
	"instrument.log_level":       "LOG_LEVEL",

	"email.provider":        "EMAIL_PROVIDER",
	"email.api_key":         "EMAIL_API_KEY",
	"email.from":            "EMAIL_FROM",
	"email.timeout_seconds": "EMAIL_TIMEOUT_SECONDS",

	"email.smtp.host":     "EMAIL_SMTP_HOST",
	"email.smtp.port":     "EMAIL_SMTP_PORT",
	"email.smtp.username": "EMAIL_SMTP_USERNAME",
	"email.smtp.password": "EMAIL_SMTP_PASSWORD",
	"email.smtp.tls_mode": "EMAIL_SMTP_TLS_MODE",

	"email.resend.base_url": "EMAIL_RESEND_BASE_URL",

	"email.ses.region":            "EMAIL_SES_REGION",
	"email.ses.endpoint":          "EMAIL_SES_ENDPOINT",
	"email.ses.access_key":        "EMAIL_SES_ACCESS_KEY",
	"email.ses.secret_key":        "EMAIL_SES_SECRET_KEY",
	"email.ses.session_token":     "EMAIL_SES_SESSION_TOKEN",
	"email.ses.configuration_set": "EMAIL_SES_CONFIGURATION_SET",
}
