package dsl

import (
	"context"
	"time"

	"github.com/reoring/statlog"
	"github.com/reoring/statlog/i18n"
	js "github.com/reoring/statlog/jsonschema"
)

// Timestamp returns a schema for RFC 3339 date-time strings. The text must
// carry "Z" or a numeric offset; a well-formed local time without one is
// rejected with naive_timestamp.
func Timestamp() statlog.Schema[time.Time] { return timestampSchema{} }

var awareLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999Z07:00",
}

var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

type timestampSchema struct{}

func (timestampSchema) Parse(ctx context.Context, v any) (time.Time, error) {
	switch x := v.(type) {
	case time.Time:
		return x, nil
	case string:
		return parseTimestamp(x)
	}
	return time.Time{}, statlog.Issues{invalidType(v, "date-time string")}
}

func (s timestampSchema) Validate(ctx context.Context, v any) error {
	_, err := s.Parse(ctx, v)
	return err
}

// ValidateValue accepts any time.Time: a Go value always has a location.
func (timestampSchema) ValidateValue(ctx context.Context, v time.Time) error { return nil }

func (timestampSchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: js.Types{"string"}, Format: "date-time"}, nil
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range awareLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	for _, layout := range naiveLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return time.Time{}, statlog.Issues{{
				Path:    "/",
				Code:    statlog.CodeNaiveTimestamp,
				Message: i18n.T(statlog.CodeNaiveTimestamp, nil),
				Hint:    "append Z or an offset such as +01:00",
				Params:  map[string]any{"got": s},
			}}
		}
	}
	return time.Time{}, statlog.Issues{{
		Path:    "/",
		Code:    statlog.CodeInvalidFormat,
		Message: i18n.T(statlog.CodeInvalidFormat, nil),
		Hint:    "expected RFC 3339 date-time",
		Params:  map[string]any{"format": "date-time", "got": s},
	}}
}
