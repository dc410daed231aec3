package mail

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"strings"
	"time"

	gomail "github.com/go-mail/mail"
	"github.com/google/uuid"
)

// ErrSMTPHostPortRequired is returned when Host/Port are missing.
var ErrSMTPHostPortRequired = errors.New("smtp host and port are required")

// SMTP TLS modes accepted by SMTPConfig.TLSMode.
const (
	SMTPTLSAuto     = "auto"
	SMTPTLSStartTLS = "starttls"
	SMTPTLSSSL      = "ssl"
	SMTPTLSNone     = "none"
)

type smtpDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTP is a Mail implementation backed by github.com/go-mail/mail.
type SMTP struct {
	host        string
	defaultFrom string
	dialer      smtpDialer
}

// SMTPConfig configures the SMTP implementation.
type SMTPConfig struct {
	// Host is the SMTP server hostname.
	Host string
	// Port is the SMTP server port.
	Port int
	// Username is the SMTP authentication username.
	Username string
	// Password is the SMTP authentication password.
	Password string
	// From is the default sender when Message.From is empty.
	From string
	// TLSMode is one of auto, starttls, ssl or none. Empty means auto.
	TLSMode string
	// Timeout bounds dialing and each SMTP command.
	Timeout time.Duration
}

// NewSMTP constructs an SMTP mail sender.
func NewSMTP(cfg SMTPConfig) (*SMTP, error) {
	if cfg.Host == "" || cfg.Port == 0 {
		return nil, ErrSMTPHostPortRequired
	}

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12}
	if cfg.Timeout > 0 {
		d.Timeout = cfg.Timeout
	}

	switch strings.ToLower(strings.TrimSpace(cfg.TLSMode)) {
	case SMTPTLSSSL:
		d.SSL = true
	case SMTPTLSStartTLS:
		d.StartTLSPolicy = gomail.MandatoryStartTLS
	case SMTPTLSNone:
		d.StartTLSPolicy = gomail.NoStartTLS
	default:
		d.StartTLSPolicy = gomail.OpportunisticStartTLS
	}

	return newSMTPWithDialer(cfg.Host, cfg.From, d), nil
}

func newSMTPWithDialer(host, defaultFrom string, d smtpDialer) *SMTP {
	return &SMTP{
		host:        host,
		defaultFrom: defaultFrom,
		dialer:      d,
	}
}

// Provider implements Mail.
func (*SMTP) Provider() Provider {
	return ProviderSMTP
}

// Send delivers a message over SMTP and returns the generated Message-ID.
func (s *SMTP) Send(ctx context.Context, msg Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", providerError(ProviderSMTP, err)
	}

	m, id, err := s.buildMessage(msg)
	if err != nil {
		return "", providerError(ProviderSMTP, err)
	}

	if err := ctx.Err(); err != nil {
		return "", providerError(ProviderSMTP, err)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return "", providerError(ProviderSMTP, fmt.Errorf("smtp send: %w", err))
	}

	return id, nil
}

func (s *SMTP) buildMessage(msg Message) (*gomail.Message, string, error) {
	if len(msg.recipients()) == 0 {
		return nil, "", ErrNoRecipients
	}

	from := resolveFrom(msg, s.defaultFrom)
	if from == "" {
		return nil, "", ErrNoSender
	}

	id := fmt.Sprintf("<%s@%s>", uuid.NewString(), messageIDDomain(from, s.host))

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	if len(msg.To) > 0 {
		m.SetHeader("To", msg.To...)
	}
	if len(msg.Cc) > 0 {
		m.SetHeader("Cc", msg.Cc...)
	}
	if len(msg.Bcc) > 0 {
		m.SetHeader("Bcc", msg.Bcc...)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader("Message-ID", id)
	if msg.TemplateID != "" {
		m.SetHeader("X-Template-ID", msg.TemplateID)
	}

	switch {
	case msg.TextBody != "" && msg.HTMLBody != "":
		m.SetBody("text/plain", msg.TextBody)
		m.AddAlternative("text/html", msg.HTMLBody)
	case msg.HTMLBody != "":
		m.SetBody("text/html", msg.HTMLBody)
	default:
		m.SetBody("text/plain", msg.TextBody)
	}

	return m, id, nil
}

// Close implements io.Closer for interface compatibility.
func (*SMTP) Close() error {
	return nil
}

func messageIDDomain(from, fallback string) string {
	addr := from
	if i := strings.LastIndex(addr, "<"); i >= 0 {
		addr = strings.TrimSuffix(addr[i+1:], ">")
	}
	if _, domain, ok := strings.Cut(addr, "@"); ok && domain != "" {
		return strings.TrimSpace(domain)
	}
	return fallback
}
