package dsl

import (
	"context"
	"fmt"

	"github.com/reoring/statlog"
	"github.com/reoring/statlog/i18n"
	js "github.com/reoring/statlog/jsonschema"
)

// EnumOf returns a schema accepting only the listed members. T is usually a
// generated named string type, so the parsed value reads, compares and
// encodes as its primitive.
func EnumOf[T ~string](values ...T) statlog.Schema[T] {
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return &enumSchema[T]{values: values, set: set}
}

type enumSchema[T ~string] struct {
	values []T
	set    map[T]struct{}
}

func (e *enumSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	var t T
	switch s := v.(type) {
	case string:
		t = T(s)
	case T:
		t = s
	default:
		return "", statlog.Issues{invalidType(v, "string")}
	}
	if err := e.ValidateValue(ctx, t); err != nil {
		return "", err
	}
	return t, nil
}

func (e *enumSchema[T]) Validate(ctx context.Context, v any) error {
	_, err := e.Parse(ctx, v)
	return err
}

func (e *enumSchema[T]) ValidateValue(ctx context.Context, v T) error {
	if _, ok := e.set[v]; ok {
		return nil
	}
	allowed := e.allowed()
	return statlog.Issues{{
		Path:    "/",
		Code:    statlog.CodeInvalidEnum,
		Message: i18n.T(statlog.CodeInvalidEnum, nil),
		Hint:    fmt.Sprintf("got %q, allowed %q", string(v), allowed),
		Params:  map[string]any{"allowed": allowed, "got": string(v)},
	}}
}

func (e *enumSchema[T]) allowed() []string {
	out := make([]string, 0, len(e.values))
	for _, v := range e.values {
		out = append(out, string(v))
	}
	return out
}

func (e *enumSchema[T]) JSONSchema() (*js.Schema, error) {
	s := &js.Schema{Type: js.Types{"string"}}
	if len(e.values) == 1 {
		s.Const = string(e.values[0])
		return s, nil
	}
	for _, v := range e.values {
		s.Enum = append(s.Enum, string(v))
	}
	return s, nil
}
