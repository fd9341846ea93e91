package dsl

import (
	"context"
	"strconv"

	"github.com/reoring/statlog"
	"github.com/reoring/statlog/i18n"
	js "github.com/reoring/statlog/jsonschema"
)

// ArrayBuilder exposes chaining methods for array schemas while implementing Schema[[]E].
type ArrayBuilder[E any] interface {
	statlog.Schema[[]E]
	Min(n int) ArrayBuilder[E]
}

// Array returns an array schema with the given element schema.
func Array[E any](elem statlog.Schema[E]) ArrayBuilder[E] {
	return &ArraySchema[E]{elem: elem, minLen: -1}
}

// ArraySchema validates JSON arrays element by element.
type ArraySchema[E any] struct {
	elem   statlog.Schema[E]
	minLen int
}

// ArrayOf adapts Array[E] to AnyAdapter for use in object builders.
// Example: Field("unit_id", dsl.ArrayOf(unitIDSchema))
func ArrayOf[E any](elem statlog.Schema[E]) AnyAdapter {
	return anyAdapterFromSchema[[]E](Array[E](elem))
}

// ArrayOfSchema converts a constrained ArrayBuilder[E] into an AnyAdapter.
// Example: Field("unit_id", dsl.ArrayOfSchema(dsl.Array(unitIDSchema).Min(1)))
func ArrayOfSchema[E any](ab ArrayBuilder[E]) AnyAdapter { return anyAdapterFromSchema[[]E](ab) }

// Min sets the minimum length.
func (a *ArraySchema[E]) Min(n int) ArrayBuilder[E] {
	cp := *a
	cp.minLen = n
	return &cp
}

func (a *ArraySchema[E]) Parse(ctx context.Context, v any) ([]E, error) {
	switch src := v.(type) {
	case []any:
		res := make([]E, 0, len(src))
		var iss statlog.Issues
		for i := range src {
			ev, err := a.elem.Parse(ctx, src[i])
			if err != nil {
				iss = statlog.AppendIssues(iss, issuesAt("/"+strconv.Itoa(i), err)...)
				if statlog.IsFailFast(ctx) {
					return nil, iss
				}
				continue
			}
			res = append(res, ev)
		}
		if err := a.lengthCheck(len(src)); err != nil {
			iss = statlog.AppendIssues(iss, err...)
		}
		if len(iss) > 0 {
			return nil, iss
		}
		return res, nil
	case []E:
		if err := a.ValidateValue(ctx, src); err != nil {
			return nil, err
		}
		return src, nil
	}
	return nil, statlog.Issues{invalidType(v, "array")}
}

func (a *ArraySchema[E]) Validate(ctx context.Context, v any) error {
	_, err := a.Parse(ctx, v)
	return err
}

func (a *ArraySchema[E]) ValidateValue(ctx context.Context, v []E) error {
	var iss statlog.Issues
	for i := range v {
		if err := a.elem.ValidateValue(ctx, v[i]); err != nil {
			iss = statlog.AppendIssues(iss, issuesAt("/"+strconv.Itoa(i), err)...)
			if statlog.IsFailFast(ctx) {
				return iss
			}
		}
	}
	if err := a.lengthCheck(len(v)); err != nil {
		iss = statlog.AppendIssues(iss, err...)
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

func (a *ArraySchema[E]) lengthCheck(n int) statlog.Issues {
	if a.minLen >= 0 && n < a.minLen {
		return statlog.Issues{{Path: "/", Code: statlog.CodeTooShort, Message: i18n.T(statlog.CodeTooShort, nil), Params: map[string]any{"min": a.minLen, "got": n}}}
	}
	return nil
}

func (a *ArraySchema[E]) JSONSchema() (*js.Schema, error) {
	item, err := a.elem.JSONSchema()
	if err != nil {
		return nil, err
	}
	s := &js.Schema{Type: js.Types{"array"}, Items: item}
	if a.minLen >= 0 {
		n := a.minLen
		s.MinItems = &n
	}
	return s, nil
}
