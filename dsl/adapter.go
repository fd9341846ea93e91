package dsl

import (
	"context"
	"encoding/json"
	"reflect"
	"strconv"

	"github.com/reoring/statlog"
	"github.com/reoring/statlog/i18n"
	js "github.com/reoring/statlog/jsonschema"
)

// AnyAdapter adapts Schema[T] to an any-typed DSL wrapper.
// It keeps the original schema to support default application, JSON Schema
// projection, and struct binding.
type AnyAdapter struct {
	parse         func(context.Context, any) (any, error)
	validateValue func(context.Context, any) error
	applyDefault  func(context.Context) (any, error)
	jsonSchema    func() (*js.Schema, error)
	orig          any
	goType        reflect.Type
	nullable      bool
}

// anyAdapterFromSchema wraps a strongly typed Schema[T] as AnyAdapter for Field builders.
func anyAdapterFromSchema[T any](s statlog.Schema[T]) AnyAdapter {
	return AnyAdapter{
		parse: func(ctx context.Context, v any) (any, error) { return s.Parse(ctx, v) },
		validateValue: func(ctx context.Context, v any) error {
			if p, ok := v.(*T); ok && p != nil {
				v = *p
			}
			tv, ok := v.(T)
			if !ok {
				return statlog.Issues{invalidType(v, reflect.TypeFor[T]().String())}
			}
			return s.ValidateValue(ctx, tv)
		},
		jsonSchema: s.JSONSchema,
		orig:       s,
		goType:     reflect.TypeFor[T](),
	}
}

// SchemaOf converts an arbitrary Schema[T] into an AnyAdapter.
func SchemaOf[T any](s statlog.Schema[T]) AnyAdapter { return anyAdapterFromSchema[T](s) }

// Orig returns the original underlying Schema[T] used to create this adapter.
func (ad AnyAdapter) Orig() any { return ad.orig }

// GoType returns the static type produced by Parse.
func (ad AnyAdapter) GoType() reflect.Type { return ad.goType }

// Parse runs the adapter's parse function.
func (ad AnyAdapter) Parse(ctx context.Context, v any) (any, error) {
	if ad.parse == nil {
		return v, nil
	}
	return ad.parse(ctx, v)
}

// ValidateValue runs the adapter's typed validation.
func (ad AnyAdapter) ValidateValue(ctx context.Context, v any) error {
	if ad.validateValue == nil {
		_, err := ad.Parse(ctx, v)
		return err
	}
	return ad.validateValue(ctx, v)
}

// JSONSchema projects the adapter.
func (ad AnyAdapter) JSONSchema() (*js.Schema, error) {
	if ad.jsonSchema == nil {
		return &js.Schema{}, nil
	}
	return ad.jsonSchema()
}

// Nullable wraps an AnyAdapter to accept JSON null for both parse and validate.
func Nullable(ad AnyAdapter) AnyAdapter {
	prevParse := ad.parse
	prevValidate := ad.validateValue
	prevJSON := ad.jsonSchema
	out := ad
	out.nullable = true
	out.parse = func(ctx context.Context, v any) (any, error) {
		if v == nil {
			return nil, nil
		}
		if prevParse == nil {
			return v, nil
		}
		return prevParse(ctx, v)
	}
	out.validateValue = func(ctx context.Context, v any) error {
		if v == nil {
			return nil
		}
		if prevValidate == nil {
			return nil
		}
		return prevValidate(ctx, v)
	}
	out.jsonSchema = func() (*js.Schema, error) {
		s := &js.Schema{}
		if prevJSON != nil {
			ps, err := prevJSON()
			if err != nil {
				return nil, err
			}
			s = ps
		}
		if len(s.Type) > 0 && !s.Type.Nullable() {
			s.Type = append(append(js.Types{}, s.Type...), "null")
		}
		return s, nil
	}
	return out
}

// Nullable enables fluent chaining: dsl.StringOf[string]().Nullable()
func (ad AnyAdapter) Nullable() AnyAdapter { return Nullable(ad) }

// Min sets a numeric minimum (inclusive) constraint at runtime and in JSON Schema.
// Non-numeric values are ignored by this guard (type errors are handled elsewhere).
func (ad AnyAdapter) Min(n float64) AnyAdapter {
	prevParse := ad.parse
	prevValidate := ad.validateValue
	prevJSON := ad.jsonSchema
	out := ad
	out.parse = func(ctx context.Context, v any) (any, error) {
		val := v
		if prevParse != nil {
			pv, err := prevParse(ctx, v)
			if err != nil {
				return nil, err
			}
			val = pv
		}
		if err := minCheck(val, n); err != nil {
			return nil, err
		}
		return val, nil
	}
	out.validateValue = func(ctx context.Context, v any) error {
		if prevValidate != nil {
			if err := prevValidate(ctx, v); err != nil {
				return err
			}
		}
		return minCheck(v, n)
	}
	out.jsonSchema = func() (*js.Schema, error) {
		s := &js.Schema{}
		if prevJSON != nil {
			ps, err := prevJSON()
			if err != nil {
				return nil, err
			}
			if ps != nil {
				s = ps
			}
		}
		s.Minimum = &n
		if len(s.Type) == 0 {
			s.Type = js.Types{"number"}
		}
		return s, nil
	}
	return out
}

// FromAdapter exposes an AnyAdapter as a Schema[any], e.g. to use Shapes as an
// array element.
func FromAdapter(ad AnyAdapter) statlog.Schema[any] { return adapterSchema{ad: ad} }

type adapterSchema struct{ ad AnyAdapter }

func (a adapterSchema) Parse(ctx context.Context, v any) (any, error) { return a.ad.Parse(ctx, v) }
func (a adapterSchema) Validate(ctx context.Context, v any) error {
	_, err := a.ad.Parse(ctx, v)
	return err
}
func (a adapterSchema) ValidateValue(ctx context.Context, v any) error {
	return a.ad.ValidateValue(ctx, v)
}
func (a adapterSchema) JSONSchema() (*js.Schema, error) { return a.ad.JSONSchema() }

// ---- helpers ----

func minCheck(v any, min float64) error {
	var f float64
	switch n := v.(type) {
	case int64:
		f = float64(n)
	case int:
		f = float64(n)
	case float64:
		f = n
	case json.Number:
		x, err := strconv.ParseFloat(string(n), 64)
		if err != nil {
			return nil
		}
		f = x
	default:
		return nil
	}
	if f < min {
		return statlog.Issues{{Path: "/", Code: statlog.CodeTooSmall, Message: i18n.T(statlog.CodeTooSmall, nil), Params: map[string]any{"min": min, "got": f}}}
	}
	return nil
}

func invalidType(v any, expected string) statlog.Issue {
	return statlog.Issue{
		Path:    "/",
		Code:    statlog.CodeInvalidType,
		Message: i18n.T(statlog.CodeInvalidType, nil),
		Hint:    "expected " + expected,
		Params:  map[string]any{"expected": expected, "got": typeName(v)},
	}
}

// typeName describes a decoded JSON value the way a payload author sees it.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64, float32, int, int64, int32:
		return "number"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return reflect.TypeOf(v).String()
	}
}

func issuesAt(base string, err error) statlog.Issues {
	return statlog.ToIssues("/", err).Rebase(base)
}

// pointerToken escapes a key for use as a JSON Pointer token.
func pointerToken(k string) string {
	return statlog.Root().Field(k).Pointer()
}
