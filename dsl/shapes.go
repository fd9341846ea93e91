package dsl

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/reoring/statlog"
	"github.com/reoring/statlog/i18n"
	js "github.com/reoring/statlog/jsonschema"
)

// ShapeOption is one candidate of a Shapes adapter.
type ShapeOption struct {
	name string
	ad   AnyAdapter
}

// Shape names a candidate shape. The name appears in no_shape_matched reports.
func Shape(name string, ad AnyAdapter) ShapeOption { return ShapeOption{name: name, ad: ad} }

// Shapes returns an adapter for untagged polymorphic values: candidates are
// tried in the given order and the first one that validates wins. When none
// does, a single no_shape_matched issue lists every attempted shape, with the
// per-shape issues under Params["attempts"].
func Shapes(shapes ...ShapeOption) AnyAdapter {
	names := make([]string, 0, len(shapes))
	for _, s := range shapes {
		names = append(names, s.name)
	}
	ps := &shapeSet{shapes: shapes, names: names}
	return AnyAdapter{
		parse:         ps.parse,
		validateValue: ps.validateValue,
		jsonSchema:    ps.jsonSchema,
		orig:          ps,
		goType:        reflect.TypeFor[any](),
	}
}

type shapeSet struct {
	shapes []ShapeOption
	names  []string
}

// Names returns the shape names in trial order.
func (ps *shapeSet) Names() []string { return append([]string(nil), ps.names...) }

func (ps *shapeSet) parse(ctx context.Context, v any) (any, error) {
	// each candidate must be judged on all of its issues
	ctx = statlog.WithFailFast(ctx, false)
	attempts := make(map[string]statlog.Issues, len(ps.shapes))
	for _, s := range ps.shapes {
		out, err := s.ad.Parse(ctx, v)
		if err == nil {
			return out, nil
		}
		attempts[s.name] = statlog.ToIssues("/", err)
	}
	return nil, ps.noMatch(attempts)
}

func (ps *shapeSet) validateValue(ctx context.Context, v any) error {
	ctx = statlog.WithFailFast(ctx, false)
	attempts := make(map[string]statlog.Issues, len(ps.shapes))
	for _, s := range ps.shapes {
		err := s.ad.ValidateValue(ctx, v)
		if err == nil {
			return nil
		}
		// untyped values (map[string]any, []any) are judged the way parse judges them
		if _, perr := s.ad.Parse(ctx, v); perr == nil {
			return nil
		}
		attempts[s.name] = statlog.ToIssues("/", err)
	}
	return ps.noMatch(attempts)
}

func (ps *shapeSet) noMatch(attempts map[string]statlog.Issues) statlog.Issues {
	var hint strings.Builder
	for i, n := range ps.names {
		if i > 0 {
			hint.WriteString("; ")
		}
		fmt.Fprintf(&hint, "%s: %v", n, attempts[n])
	}
	return statlog.Issues{{
		Path:    "/",
		Code:    statlog.CodeNoShapeMatched,
		Message: fmt.Sprintf("%s (tried %s)", i18n.T(statlog.CodeNoShapeMatched, nil), strings.Join(ps.names, ", ")),
		Hint:    hint.String(),
		Params:  map[string]any{"shapes": ps.Names(), "attempts": attempts},
	}}
}

func (ps *shapeSet) jsonSchema() (*js.Schema, error) {
	out := &js.Schema{}
	for _, s := range ps.shapes {
		sub, err := s.ad.JSONSchema()
		if err != nil {
			return nil, err
		}
		out.AnyOf = append(out.AnyOf, sub)
	}
	return out, nil
}
