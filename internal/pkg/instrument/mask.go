package instrument

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// MaskPlaceholder replaces every masked value.
const MaskPlaceholder = "***"

// Masker redacts values whose key matches one of a fixed set of field names.
// Matching is case-insensitive. The zero value masks nothing.
type Masker struct {
	keys map[string]struct{}
}

// NewMasker builds a Masker for fields. Blank entries are ignored.
func NewMasker(fields []string) Masker {
	keys := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		field = strings.ToLower(strings.TrimSpace(field))
		if field != "" {
			keys[field] = struct{}{}
		}
	}
	return Masker{keys: keys}
}

// Empty reports whether the masker has no keys.
func (m Masker) Empty() bool {
	return len(m.keys) == 0
}

// Masked reports whether values under key are redacted.
func (m Masker) Masked(key string) bool {
	_, ok := m.keys[strings.ToLower(key)]
	return ok
}

// Value walks maps and slices decoded from JSON and redacts matching keys.
func (m Masker) Value(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, v2 := range val {
			if m.Masked(k) {
				out[k] = MaskPlaceholder
				continue
			}
			out[k] = m.Value(v2)
		}
		return out
	case map[string]string:
		out := make(map[string]any, len(val))
		for k, v2 := range val {
			if m.Masked(k) {
				out[k] = MaskPlaceholder
				continue
			}
			out[k] = v2
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, v2 := range val {
			out[i] = m.Value(v2)
		}
		return out
	default:
		return v
	}
}

// JSON decodes payload and returns the redacted document. ok is false when
// payload is not JSON.
func (m Masker) JSON(payload []byte) (doc any, ok bool) {
	if len(payload) == 0 {
		return nil, false
	}
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, false
	}
	return m.Value(doc), true
}

// Header returns a copy of h with matching header values redacted.
func (m Masker) Header(h http.Header) http.Header {
	if m.Empty() {
		return h
	}
	out := h.Clone()
	for key := range out {
		if m.Masked(key) {
			out.Set(key, MaskPlaceholder)
		}
	}
	return out
}

// Attr redacts a slog attribute, descending into groups, maps and JSON text.
func (m Masker) Attr(attr slog.Attr) slog.Attr {
	if m.Masked(attr.Key) {
		return slog.String(attr.Key, MaskPlaceholder)
	}

	switch attr.Value.Kind() {
	case slog.KindGroup:
		group := attr.Value.Group()
		masked := make([]slog.Attr, 0, len(group))
		for _, ga := range group {
			masked = append(masked, m.Attr(ga))
		}
		attr.Value = slog.GroupValue(masked...)
	case slog.KindString:
		s := attr.Value.String()
		if s != "" && (s[0] == '{' || s[0] == '[') {
			if doc, ok := m.JSON([]byte(s)); ok {
				if b, err := json.Marshal(doc); err == nil {
					attr.Value = slog.StringValue(string(b))
				}
			}
		}
	case slog.KindAny:
		switch val := attr.Value.Any().(type) {
		case map[string]any, map[string]string, []any:
			attr.Value = slog.AnyValue(m.Value(val))
		case http.Header:
			attr.Value = slog.AnyValue(m.Header(val))
		case []byte:
			if doc, ok := m.JSON(val); ok {
				if b, err := json.Marshal(doc); err == nil {
					attr.Value = slog.StringValue(string(b))
				}
			}
		}
	}

	return attr
}
