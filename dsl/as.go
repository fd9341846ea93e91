package dsl

import (
	"context"
	"fmt"

	"github.com/reoring/statlog"
	js "github.com/reoring/statlog/jsonschema"
)

// As exposes an AnyAdapter as a Schema[T]; values produced by the adapter must
// be of type T. It lets adapter-only nodes (Shapes, Min-constrained numbers)
// be used where a typed element schema is required:
//
//	dsl.Array(dsl.As[int64](dsl.SchemaOf(dsl.Int64()).Min(0)))
func As[T any](ad AnyAdapter) statlog.Schema[T] { return asSchema[T]{ad: ad} }

type asSchema[T any] struct{ ad AnyAdapter }

func (a asSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	var zero T
	out, err := a.ad.Parse(ctx, v)
	if err != nil {
		return zero, err
	}
	if out == nil {
		return zero, nil
	}
	tv, ok := out.(T)
	if !ok {
		return zero, statlog.Issues{{Path: "/", Code: statlog.CodeParseError, Message: fmt.Sprintf("adapter produced %T", out)}}
	}
	return tv, nil
}

func (a asSchema[T]) Validate(ctx context.Context, v any) error {
	_, err := a.Parse(ctx, v)
	return err
}

func (a asSchema[T]) ValidateValue(ctx context.Context, v T) error {
	return a.ad.ValidateValue(ctx, any(v))
}

func (a asSchema[T]) JSONSchema() (*js.Schema, error) { return a.ad.JSONSchema() }
