package dsl

import (
	"context"
	"encoding/json"
	"math"
	"strconv"

	"github.com/reoring/statlog"
	js "github.com/reoring/statlog/jsonschema"
)

// String returns a schema accepting JSON strings.
func String() statlog.Schema[string] { return stringSchema[string]{} }

// StringOf returns a string adapter producing T; it is the usual field adapter.
func StringOf[T ~string]() AnyAdapter { return SchemaOf[T](stringSchema[T]{}) }

type stringSchema[T ~string] struct{}

func (stringSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	switch s := v.(type) {
	case string:
		return T(s), nil
	case T:
		return s, nil
	}
	return "", statlog.Issues{invalidType(v, "string")}
}

func (s stringSchema[T]) Validate(ctx context.Context, v any) error {
	_, err := s.Parse(ctx, v)
	return err
}

func (stringSchema[T]) ValidateValue(ctx context.Context, v T) error { return nil }

func (stringSchema[T]) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: js.Types{"string"}}, nil
}

// Int64 returns a schema accepting integral JSON numbers.
func Int64() statlog.Schema[int64] { return int64Schema{} }

type int64Schema struct{}

func (int64Schema) Parse(ctx context.Context, v any) (int64, error) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		// accept 12.0 but not 12.5
		if f, err := n.Float64(); err == nil && f == math.Trunc(f) && math.Abs(f) < 1<<63 {
			return int64(f), nil
		}
	case float64:
		if n == math.Trunc(n) && math.Abs(n) < 1<<63 {
			return int64(n), nil
		}
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case int32:
		return int64(n), nil
	}
	return 0, statlog.Issues{invalidType(v, "integer")}
}

func (s int64Schema) Validate(ctx context.Context, v any) error {
	_, err := s.Parse(ctx, v)
	return err
}

func (int64Schema) ValidateValue(ctx context.Context, v int64) error { return nil }

func (int64Schema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: js.Types{"integer"}}, nil
}

// Float64 returns a schema accepting any JSON number.
func Float64() statlog.Schema[float64] { return float64Schema{} }

type float64Schema struct{}

func (float64Schema) Parse(ctx context.Context, v any) (float64, error) {
	switch n := v.(type) {
	case json.Number:
		if f, err := strconv.ParseFloat(string(n), 64); err == nil {
			return f, nil
		}
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, statlog.Issues{invalidType(v, "number")}
}

func (s float64Schema) Validate(ctx context.Context, v any) error {
	_, err := s.Parse(ctx, v)
	return err
}

func (float64Schema) ValidateValue(ctx context.Context, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return statlog.Issues{invalidType(v, "finite number")}
	}
	return nil
}

func (float64Schema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: js.Types{"number"}}, nil
}

// Bool returns a schema accepting JSON booleans.
func Bool() statlog.Schema[bool] { return boolSchema{} }

type boolSchema struct{}

func (boolSchema) Parse(ctx context.Context, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, statlog.Issues{invalidType(v, "boolean")}
	}
	return b, nil
}

func (s boolSchema) Validate(ctx context.Context, v any) error {
	_, err := s.Parse(ctx, v)
	return err
}

func (boolSchema) ValidateValue(ctx context.Context, v bool) error { return nil }

func (boolSchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: js.Types{"boolean"}}, nil
}

// Any returns a schema accepting every value unchanged.
func Any() statlog.Schema[any] { return anySchema{} }

type anySchema struct{}

func (anySchema) Parse(ctx context.Context, v any) (any, error)  { return v, nil }
func (anySchema) Validate(ctx context.Context, v any) error      { return nil }
func (anySchema) ValidateValue(ctx context.Context, v any) error { return nil }
func (anySchema) JSONSchema() (*js.Schema, error)                { return &js.Schema{}, nil }
