package mail

import (
	"context"
	"fmt"
)

// FactoryOptions groups configuration for mail providers.
type FactoryOptions struct {
	// From is the default sender shared by every provider.
	From string
	// SMTP configures the SMTP backend.
	SMTP SMTPConfig
	// Resend configures the Resend backend.
	Resend ResendConfig
	// SES configures the SES backend.
	SES SESConfig
}

// NewFromProvider constructs the Mail implementation for p.
//
// Mock and Log never fail. The remaining providers fail when their required
// configuration is missing.
func NewFromProvider(ctx context.Context, p Provider, opts FactoryOptions) (Mail, error) {
	switch p {
	case ProviderLog:
		return NewLog(opts.From), nil
	case ProviderSMTP:
		cfg := opts.SMTP
		if cfg.From == "" {
			cfg.From = opts.From
		}
		return NewSMTP(cfg)
	case ProviderResend:
		cfg := opts.Resend
		if cfg.From == "" {
			cfg.From = opts.From
		}
		return NewResend(cfg)
	case ProviderSES:
		cfg := opts.SES
		if cfg.From == "" {
			cfg.From = opts.From
		}
		ses, err := NewSES(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("mail: init ses: %w", err)
		}
		return ses, nil
	case ProviderMock:
		return NewMock(), nil
	default:
		return NewMock(), nil
	}
}
