package mail

import (
	"context"
	"errors"
	"io"
	"strings"
)

var (
	// ErrNoRecipients is returned when To/Cc/Bcc are all empty.
	ErrNoRecipients = errors.New("no recipients provided")
	// ErrNoSender is returned when both Message.From and the configured default From are empty.
	ErrNoSender = errors.New("no sender provided")
)

// Provider identifies one of the supported delivery backends.
type Provider int

const (
	// ProviderMock performs no I/O and always reports success.
	ProviderMock Provider = iota
	// ProviderLog writes the envelope to the application log instead of sending.
	ProviderLog
	// ProviderSMTP delivers through an SMTP relay.
	ProviderSMTP
	// ProviderResend delivers through the Resend HTTP API.
	ProviderResend
	// ProviderSES delivers through Amazon SES v2.
	ProviderSES
)

// String returns the configuration name of the provider.
func (p Provider) String() string {
	switch p {
	case ProviderLog:
		return "log"
	case ProviderSMTP:
		return "smtp"
	case ProviderResend:
		return "resend"
	case ProviderSES:
		return "ses"
	default:
		return "mock"
	}
}

// ParseProvider maps a configured provider name to a Provider, ignoring case
// and surrounding spaces. An empty name selects ProviderMock. Unrecognized
// names also resolve to ProviderMock, with ok set to false so the caller can
// report the fallback.
func ParseProvider(raw string) (p Provider, ok bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "mock":
		return ProviderMock, true
	case "log":
		return ProviderLog, true
	case "smtp":
		return ProviderSMTP, true
	case "resend":
		return ProviderResend, true
	case "ses":
		return ProviderSES, true
	default:
		return ProviderMock, false
	}
}

// Message represents an email payload.
//
// Fields are intentionally provider-agnostic so they can be sent using SMTP or
// other delivery mechanisms.
type Message struct {
	// From is an optional explicit sender; fallback depends on implementation.
	From string
	// To lists required recipients.
	To []string
	// Cc lists carbon copy recipients.
	Cc []string
	// Bcc lists blind carbon copy recipients.
	Bcc []string
	// Subject is the email subject line.
	Subject string
	// TextBody is the plain-text body; preferred when HTMLBody is empty.
	TextBody string
	// HTMLBody is the optional HTML body.
	HTMLBody string
	// TemplateID is an optional provider-specific template reference.
	TemplateID string
}

func (m Message) recipients() []string {
	out := make([]string, 0, len(m.To)+len(m.Cc)+len(m.Bcc))
	out = append(out, m.To...)
	out = append(out, m.Cc...)
	return append(out, m.Bcc...)
}

// Mail abstracts an email provider (SMTP, third-party API, etc).
type Mail interface {
	io.Closer
	// Provider reports which backend this implementation is.
	Provider() Provider
	// Send dispatches the given message using the underlying provider and
	// returns the provider-side message id.
	Send(ctx context.Context, msg Message) (string, error)
}

// ProviderError reports a failed delivery attempt by a backend.
//
// The message never carries credential material; Err holds whatever the
// backend returned.
type ProviderError struct {
	Provider Provider
	Err      error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.Err == nil {
		return "mail: " + e.Provider.String() + ": send failed"
	}
	return "mail: " + e.Provider.String() + ": send failed: " + e.Err.Error()
}

// Unwrap returns the backend error.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

func providerError(p Provider, err error) error {
	if err == nil {
		return nil
	}
	return &ProviderError{Provider: p, Err: err}
}

func resolveFrom(msg Message, defaultFrom string) string {
	if msg.From != "" {
		return msg.From
	}
	return defaultFrom
}
