package mail

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"
)

// ErrResendAPIKeyRequired is returned when the Resend provider has no API key.
var ErrResendAPIKeyRequired = errors.New("resend api key is required")

// ResendConfig configures the Resend implementation.
type ResendConfig struct {
	// APIKey authenticates against the Resend API.
	APIKey string
	// From is the default sender when Message.From is empty.
	From string
	// BaseURL overrides the API endpoint (tests, proxies).
	BaseURL string
	// Timeout bounds each API call.
	Timeout time.Duration
}

// Resend is a Mail implementation backed by the Resend API.
type Resend struct {
	client      *resend.Client
	defaultFrom string
}

// NewResend constructs a Resend mail sender.
func NewResend(cfg ResendConfig) (*Resend, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrResendAPIKeyRequired
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}
	client := resend.NewCustomClient(httpClient, cfg.APIKey)
	if cfg.BaseURL != "" {
		base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/") + "/")
		if err != nil {
			return nil, err
		}
		client.BaseURL = base
	}

	return &Resend{client: client, defaultFrom: cfg.From}, nil
}

// Provider implements Mail.
func (*Resend) Provider() Provider {
	return ProviderResend
}

// Send delivers the message through Resend and returns the Resend email id.
func (r *Resend) Send(ctx context.Context, msg Message) (string, error) {
	if len(msg.recipients()) == 0 {
		return "", providerError(ProviderResend, ErrNoRecipients)
	}

	from := resolveFrom(msg, r.defaultFrom)
	if from == "" {
		return "", providerError(ProviderResend, ErrNoSender)
	}

	params := &resend.SendEmailRequest{
		From:    from,
		To:      msg.To,
		Cc:      msg.Cc,
		Bcc:     msg.Bcc,
		Subject: msg.Subject,
		Text:    msg.TextBody,
		Html:    msg.HTMLBody,
	}
	if msg.TemplateID != "" {
		params.Headers = map[string]string{"X-Template-ID": msg.TemplateID}
	}

	resp, err := r.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", providerError(ProviderResend, err)
	}

	return resp.Id, nil
}

// Close implements io.Closer for interface compatibility.
func (*Resend) Close() error {
	return nil
}
