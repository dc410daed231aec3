package instrument

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer, fields ...string) *slog.Logger {
	return newLogger(buf, slog.LevelInfo, "notification-service", nil, NewMasker(fields))
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	out := map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestMaskHandler(t *testing.T) {
	t.Run("masks configured keys case-insensitively", func(t *testing.T) {
		// Arrange
		buf := &bytes.Buffer{}
		log := newTestLogger(buf, "api_key", " Password ")

		// Act
		log.Info("provider configured", "API_KEY", "re_secret", "password", "hunter2", "to", "a@b.com")

		// Assert
		line := decodeLine(t, buf)
		assert.Equal(t, "***", line["API_KEY"])
		assert.Equal(t, "***", line["password"])
		assert.Equal(t, "a@b.com", line["to"])
		assert.NotContains(t, buf.String(), "re_secret")
	})

	t.Run("masks nested json and maps", func(t *testing.T) {
		// Arrange
		buf := &bytes.Buffer{}
		log := newTestLogger(buf, "secret_key")

		// Act
		log.Info("request",
			"body", `{"region":"us-east-1","secret_key":"abc"}`,
			"cfg", map[string]string{"secret_key": "def", "region": "eu-west-1"},
			slog.Group("ses", slog.String("secret_key", "ghi")),
		)

		// Assert
		out := buf.String()
		assert.NotContains(t, out, "abc")
		assert.NotContains(t, out, "def")
		assert.NotContains(t, out, "ghi")
		assert.Contains(t, out, "us-east-1")
		assert.Contains(t, out, "eu-west-1")
	})

	t.Run("adds correlation id and service", func(t *testing.T) {
		// Arrange
		buf := &bytes.Buffer{}
		log := newTestLogger(buf)
		ctx := SetCorrelationID(context.Background(), "cid-1")

		// Act
		log.InfoContext(ctx, "hello")

		// Assert
		line := decodeLine(t, buf)
		assert.Equal(t, "cid-1", line["_cID"])
		assert.Equal(t, "notification-service", line["service"])
		assert.Equal(t, "INFO", line["severity"])
		assert.Contains(t, line, "ts")
	})

	t.Run("with attrs keeps masking and service", func(t *testing.T) {
		// Arrange
		buf := &bytes.Buffer{}
		log := newTestLogger(buf, "api_key").With("api_key", "re_secret", "provider", "resend")

		// Act
		log.Info("ready")

		// Assert
		line := decodeLine(t, buf)
		assert.Equal(t, "***", line["api_key"])
		assert.Equal(t, "resend", line["provider"])
		assert.Equal(t, "notification-service", line["service"])
	})

	t.Run("below level is dropped", func(t *testing.T) {
		// Arrange
		buf := &bytes.Buffer{}
		log := newTestLogger(buf)

		// Act
		log.Debug("noise")

		// Assert
		assert.Zero(t, buf.Len())
	})
}

func TestMasker(t *testing.T) {
	m := NewMasker([]string{"Authorization", "", "password"})

	t.Run("header", func(t *testing.T) {
		h := http.Header{"Authorization": {"Bearer x"}, "Accept": {"application/json"}}

		out := m.Header(h)

		assert.Equal(t, MaskPlaceholder, out.Get("Authorization"))
		assert.Equal(t, "application/json", out.Get("Accept"))
		assert.Equal(t, "Bearer x", h.Get("Authorization"))
	})

	t.Run("json", func(t *testing.T) {
		doc, ok := m.JSON([]byte(`{"user":{"password":"p"},"list":[{"PASSWORD":"q"}]}`))

		require.True(t, ok)
		assert.Equal(t, map[string]any{
			"user": map[string]any{"password": MaskPlaceholder},
			"list": []any{map[string]any{"PASSWORD": MaskPlaceholder}},
		}, doc)
	})

	t.Run("not json", func(t *testing.T) {
		_, ok := m.JSON([]byte("plain"))
		assert.False(t, ok)
	})

	t.Run("zero value masks nothing", func(t *testing.T) {
		var zero Masker
		assert.True(t, zero.Empty())
		assert.False(t, zero.Masked("password"))
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel(" WARN "))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestCorrelationID(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))
	assert.Equal(t, "x", GetCorrelationID(SetCorrelationID(context.Background(), "x")))
}

func TestNew_Disabled(t *testing.T) {
	// Act
	ins, err := New(context.Background(), &Config{Enabled: false, ServiceName: "notification-service"})

	// Assert
	require.NoError(t, err)
	assert.NotNil(t, ins.Tracer("t"))
	assert.NotNil(t, ins.Meter("m"))
	assert.True(t, ins.Masker().Empty())
	assert.NoError(t, ins.Shutdown(context.Background()))
}
