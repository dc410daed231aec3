package router

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shandysiswandi/gonotif/internal/pkg/config"
	"github.com/shandysiswandi/gonotif/internal/pkg/goerror"
	"github.com/shandysiswandi/gonotif/internal/pkg/instrument"
	"github.com/shandysiswandi/gonotif/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedUUID string

func (f fixedUUID) Generate() string { return string(f) }

type barePayload struct {
	Status string `json:"status"`
}

func (barePayload) Bare() bool { return true }

type createdPayload struct {
	ID string `json:"id"`
}

func (createdPayload) StatusCode() int { return http.StatusCreated }
func (createdPayload) Message() string { return "created" }

func newTestRouter(t *testing.T, yaml string) *Router {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(yaml))
	require.NoError(t, err)

	return NewRouter(Config{
		Config:     cfg,
		UUID:       fixedUUID("cid-generated"),
		Instrument: instrument.NewNoop(),
		Welcome:    "Welcome to Test API",
	})
}

func do(t *testing.T, h http.Handler, method, path, body string, headers map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	out := map[string]any{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func TestRouter_Responses(t *testing.T) {
	t.Run("welcome on root", func(t *testing.T) {
		// Arrange
		r := newTestRouter(t, "")

		// Act
		rec, body := do(t, r, http.MethodGet, "/", "", nil)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Welcome to Test API", body["message"])
	})

	t.Run("payload wrapped in envelope", func(t *testing.T) {
		// Arrange
		r := newTestRouter(t, "")
		r.POST("/items", func(*Request) (any, error) {
			return createdPayload{ID: "42"}, nil
		})

		// Act
		rec, body := do(t, r, http.MethodPost, "/items", "", nil)

		// Assert
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "created", body["message"])
		assert.Equal(t, map[string]any{"id": "42"}, body["data"])
	})

	t.Run("bare payload written as is", func(t *testing.T) {
		// Arrange
		r := newTestRouter(t, "")
		r.GET("/bare", func(*Request) (any, error) {
			return barePayload{Status: "ok"}, nil
		})

		// Act
		rec, body := do(t, r, http.MethodGet, "/bare", "", nil)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, map[string]any{"status": "ok"}, body)
		assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	})

	t.Run("nil payload is no content", func(t *testing.T) {
		// Arrange
		r := newTestRouter(t, "")
		r.POST("/empty", func(*Request) (any, error) { return nil, nil })

		// Act
		rec, _ := do(t, r, http.MethodPost, "/empty", "", nil)

		// Assert
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("unknown route", func(t *testing.T) {
		// Arrange
		r := newTestRouter(t, "")

		// Act
		rec, body := do(t, r, http.MethodGet, "/nope", "", nil)

		// Assert
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "endpoint not found", body["message"])
	})

	t.Run("wrong method", func(t *testing.T) {
		// Arrange
		r := newTestRouter(t, "")
		r.POST("/only-post", func(*Request) (any, error) { return nil, nil })

		// Act
		rec, body := do(t, r, http.MethodGet, "/only-post", "", nil)

		// Assert
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, "method not allowed", body["message"])
	})
}

func TestRouter_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
		wantFields map[string]any
	}{
		{
			name:       "plain error hides details",
			err:        errors.New("db password leaked"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
		{
			name:       "invalid format",
			err:        goerror.NewInvalidFormat(),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid request body",
		},
		{
			name:       "validator errors become fields",
			err:        goerror.NewInvalidInput(validator.V10ValidationError{"to_email": "to_email must be a valid email address"}),
			wantStatus: http.StatusUnprocessableEntity,
			wantMsg:    "Validation error",
			wantFields: map[string]any{"to_email": "to_email must be a valid email address"},
		},
		{
			name:       "custom fields",
			err:        goerror.NewInvalidInput(nil, "subject", "required"),
			wantStatus: http.StatusUnprocessableEntity,
			wantMsg:    "Validation error",
			wantFields: map[string]any{"subject": "required"},
		},
		{
			name:       "upstream failure",
			err:        goerror.NewUpstream(errors.New("smtp: 535 auth failed"), "Failed to send email"),
			wantStatus: http.StatusBadGateway,
			wantMsg:    "Failed to send email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			r := newTestRouter(t, "")
			r.POST("/fail", func(*Request) (any, error) { return nil, tt.err })

			// Act
			rec, body := do(t, r, http.MethodPost, "/fail", "", nil)

			// Assert
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, body["message"])
			if tt.wantFields == nil {
				assert.NotContains(t, body, "error")
			} else {
				assert.Equal(t, tt.wantFields, body["error"])
			}
			assert.NotContains(t, rec.Body.String(), "password")
			assert.NotContains(t, rec.Body.String(), "535")
		})
	}
}

func TestRouter_Middlewares(t *testing.T) {
	t.Run("panic is recovered", func(t *testing.T) {
		// Arrange
		r := newTestRouter(t, "")
		r.GET("/panic", func(*Request) (any, error) { panic("boom") })

		// Act
		rec, body := do(t, r, http.MethodGet, "/panic", "", nil)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error", body["message"])
	})

	t.Run("correlation id generated", func(t *testing.T) {
		// Arrange
		r := newTestRouter(t, "")
		var seen string
		r.GET("/cid", func(req *Request) (any, error) {
			seen = instrument.GetCorrelationID(req.Context())
			return barePayload{Status: "ok"}, nil
		})

		// Act
		rec, _ := do(t, r, http.MethodGet, "/cid", "", nil)

		// Assert
		assert.Equal(t, "cid-generated", rec.Header().Get(HeaderCorrelationID))
		assert.Equal(t, "cid-generated", seen)
	})

	t.Run("correlation id propagated from request id", func(t *testing.T) {
		// Arrange
		r := newTestRouter(t, "")
		r.GET("/cid", func(*Request) (any, error) { return barePayload{Status: "ok"}, nil })

		// Act
		rec, _ := do(t, r, http.MethodGet, "/cid", "", map[string]string{HeaderRequestID: "  upstream-id  "})

		// Assert
		assert.Equal(t, "upstream-id", rec.Header().Get(HeaderCorrelationID))
	})

	t.Run("maintenance blocks configured route", func(t *testing.T) {
		// Arrange
		r := newTestRouter(t, "app:\n  maintenance:\n    endpoints: /blocked\n")
		r.GET("/blocked", func(*Request) (any, error) { return barePayload{Status: "ok"}, nil })
		r.GET("/open", func(*Request) (any, error) { return barePayload{Status: "ok"}, nil })

		// Act
		blocked, body := do(t, r, http.MethodGet, "/blocked", "", nil)
		open, _ := do(t, r, http.MethodGet, "/open", "", nil)

		// Assert
		assert.Equal(t, http.StatusServiceUnavailable, blocked.Code)
		assert.Equal(t, "service is under maintenance", body["message"])
		assert.Equal(t, http.StatusOK, open.Code)
	})
}

func TestRequest_DecodeBody(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		body    string
		want    payload
		wantErr bool
	}{
		{name: "valid", body: `{"name":"x"}`, want: payload{Name: "x"}},
		{name: "malformed", body: `{"name":`, wantErr: true},
		{name: "unknown field", body: `{"name":"x","extra":1}`, wantErr: true},
		{name: "trailing document", body: `{"name":"x"}{"name":"y"}`, wantErr: true},
		{name: "empty", body: ``, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			req := &Request{Request: httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))}
			var got payload

			// Act
			err := req.DecodeBody(&got)

			// Assert
			if tt.wantErr {
				var gerr *goerror.Error
				require.ErrorAs(t, err, &gerr)
				assert.Equal(t, http.StatusBadRequest, gerr.StatusCode())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
