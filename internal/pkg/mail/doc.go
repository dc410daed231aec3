// Package mail defines the contracts for sending email messages.
//
// The main purpose is to keep the rest of the application independent from a
// specific email provider. Handlers and use cases work with the Mail interface
// and Message payload; the concrete delivery mechanism (SMTP, API provider, etc)
// is one of the Provider variants implemented in this package and selected with
// NewFromProvider.
//
// The set of providers is closed. ProviderMock is the zero value and also the
// fallback for names ParseProvider does not recognize, so a process started
// without any email configuration can still accept requests.
package mail
