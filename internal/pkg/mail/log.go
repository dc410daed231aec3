package mail

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/gonotif/internal/pkg/uid"
)

// Log is a development Mail implementation that records the envelope in the
// application log instead of delivering it. The body is never logged.
type Log struct {
	defaultFrom string
	ids         uid.StringID
}

// NewLog constructs a Log provider.
func NewLog(defaultFrom string) *Log {
	return &Log{defaultFrom: defaultFrom, ids: uid.NewPrefixedUUID("log-")}
}

// Provider implements Mail.
func (*Log) Provider() Provider {
	return ProviderLog
}

// Send logs the message envelope and returns a generated id.
func (l *Log) Send(ctx context.Context, msg Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", providerError(ProviderLog, err)
	}
	if len(msg.recipients()) == 0 {
		return "", providerError(ProviderLog, ErrNoRecipients)
	}

	id := l.ids.Generate()
	slog.InfoContext(ctx, "email logged instead of sent",
		"message_id", id,
		"from", resolveFrom(msg, l.defaultFrom),
		"to", strings.Join(msg.To, ","),
		"subject", msg.Subject,
		"template_id", msg.TemplateID,
		"body_bytes", len(msg.TextBody)+len(msg.HTMLBody),
	)

	return id, nil
}

// Close implements io.Closer for interface compatibility.
func (*Log) Close() error {
	return nil
}
