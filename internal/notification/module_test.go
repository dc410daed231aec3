package notification_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shandysiswandi/gonotif/internal/notification"
	"github.com/shandysiswandi/gonotif/internal/notification/usecase"
	"github.com/shandysiswandi/gonotif/internal/pkg/clock"
	"github.com/shandysiswandi/gonotif/internal/pkg/config"
	"github.com/shandysiswandi/gonotif/internal/pkg/instrument"
	"github.com/shandysiswandi/gonotif/internal/pkg/mail"
	"github.com/shandysiswandi/gonotif/internal/pkg/router"
	"github.com/shandysiswandi/gonotif/internal/pkg/uid"
	"github.com/shandysiswandi/gonotif/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorEnvelope struct {
	Message string            `json:"message"`
	Error   map[string]string `json:"error"`
}

type failingMail struct {
	calls int
}

func (*failingMail) Provider() mail.Provider { return mail.ProviderResend }

func (f *failingMail) Send(context.Context, mail.Message) (string, error) {
	f.calls++
	return "", &mail.ProviderError{Provider: mail.ProviderResend, Err: errors.New("resend: 401 invalid api key re_secret")}
}

func (*failingMail) Close() error { return nil }

func newServer(t *testing.T, settings usecase.Settings, m mail.Mail) *httptest.Server {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte("app:\n  name: Notification Service\n"))
	require.NoError(t, err)

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	ins := instrument.NewNoop()
	r := router.NewRouter(router.Config{Config: cfg, UUID: uid.NewUUID(), Instrument: ins})

	_, err = notification.New(notification.Dependency{
		Settings:   settings,
		Instrument: ins,
		Clock:      clock.New(),
		Validator:  v,
		Router:     r,
		Mail:       m,
	})
	require.NoError(t, err)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, srv *httptest.Server, method, path string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	switch p := payload.(type) {
	case nil:
	case string:
		body = strings.NewReader(p)
	default:
		buf := &bytes.Buffer{}
		require.NoError(t, json.NewEncoder(buf).Encode(p))
		body = buf
	}

	req, err := http.NewRequestWithContext(context.Background(), method, srv.URL+path, body)
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func TestNew_RequiresMail(t *testing.T) {
	// Act
	uc, err := notification.New(notification.Dependency{})

	// Assert
	require.Error(t, err)
	assert.Nil(t, uc)
}

func TestSendEndpoint(t *testing.T) {
	settings := usecase.Settings{ServiceName: "Notification Service", Environment: "development", Provider: "", From: "no-reply@example.com"}

	t.Run("mock provider sends", func(t *testing.T) {
		// Arrange
		srv := newServer(t, settings, mail.NewMock())

		// Act
		status, raw := doJSON(t, srv, http.MethodPost, "/api/v1/notifications/send", map[string]string{
			"to_email": "a@b.com",
			"subject":  "Hi",
			"body":     "Hello",
		})

		// Assert
		assert.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `{"status":"sent","provider_id":"mock-12345"}`, string(raw))
	})

	t.Run("template id accepted", func(t *testing.T) {
		// Arrange
		srv := newServer(t, settings, mail.NewMock())

		// Act
		status, raw := doJSON(t, srv, http.MethodPost, "/api/v1/notifications/send", map[string]string{
			"to_email":    "a@b.com",
			"subject":     "Hi",
			"body":        "Hello",
			"template_id": "welcome-v2",
		})

		// Assert
		assert.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `{"status":"sent","provider_id":"mock-12345"}`, string(raw))
	})

	t.Run("validation failure", func(t *testing.T) {
		// Arrange
		fm := &failingMail{}
		srv := newServer(t, settings, fm)

		// Act
		status, raw := doJSON(t, srv, http.MethodPost, "/api/v1/notifications/send", map[string]string{
			"to_email": "not-an-email",
			"subject":  "",
			"body":     "Hello",
		})

		// Assert
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		var env errorEnvelope
		require.NoError(t, json.Unmarshal(raw, &env))
		assert.Equal(t, "Validation error", env.Message)
		assert.Contains(t, env.Error, "to_email")
		assert.Contains(t, env.Error, "subject")
		assert.Zero(t, fm.calls)
	})

	t.Run("malformed body", func(t *testing.T) {
		// Arrange
		fm := &failingMail{}
		srv := newServer(t, settings, fm)

		// Act
		status, raw := doJSON(t, srv, http.MethodPost, "/api/v1/notifications/send", `{"to_email":`)

		// Assert
		assert.Equal(t, http.StatusBadRequest, status)
		assert.JSONEq(t, `{"message":"Invalid request body"}`, string(raw))
		assert.Zero(t, fm.calls)
	})

	t.Run("provider failure", func(t *testing.T) {
		// Arrange
		fm := &failingMail{}
		srv := newServer(t, usecase.Settings{ServiceName: "Notification Service", Environment: "production", Provider: "resend"}, fm)

		// Act
		status, raw := doJSON(t, srv, http.MethodPost, "/api/v1/notifications/send", map[string]string{
			"to_email": "a@b.com",
			"subject":  "Hi",
			"body":     "Hello",
		})

		// Assert
		assert.Equal(t, http.StatusBadGateway, status)
		assert.JSONEq(t, `{"message":"Failed to send email"}`, string(raw))
		assert.NotContains(t, string(raw), "re_secret")
		assert.Equal(t, 1, fm.calls)
	})
}

func TestHealthEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		settings usecase.Settings
		mail     mail.Mail
		want     string
	}{
		{
			name:     "provider unset",
			settings: usecase.Settings{ServiceName: "Notification Service", Environment: "development"},
			mail:     mail.NewMock(),
			want:     `{"status":"ok","service":"Notification Service","env":"development","provider":"mock","backend":"mock"}`,
		},
		{
			name:     "unknown provider shown verbatim",
			settings: usecase.Settings{ServiceName: "Notification Service", Environment: "staging", Provider: "SendGrid"},
			mail:     mail.NewMock(),
			want:     `{"status":"ok","service":"Notification Service","env":"staging","provider":"SendGrid","backend":"mock"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			srv := newServer(t, tt.settings, tt.mail)

			// Act
			status, raw := doJSON(t, srv, http.MethodGet, "/health", nil)

			// Assert
			assert.Equal(t, http.StatusOK, status)
			assert.JSONEq(t, tt.want, string(raw))
		})
	}
}
