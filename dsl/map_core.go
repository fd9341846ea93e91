package dsl

import (
	"context"
	"sort"

	"github.com/reoring/statlog"
	js "github.com/reoring/statlog/jsonschema"
)

// Map returns a schema for free-form objects whose values all satisfy val.
func Map[V any](val statlog.Schema[V]) statlog.Schema[map[string]V] {
	return &mapSchema[V]{val: val}
}

// MapOf adapts Map[V] to AnyAdapter.
func MapOf[V any](val statlog.Schema[V]) AnyAdapter {
	return anyAdapterFromSchema[map[string]V](Map[V](val))
}

type mapSchema[V any] struct {
	val statlog.Schema[V]
}

func (m *mapSchema[V]) Parse(ctx context.Context, v any) (map[string]V, error) {
	switch src := v.(type) {
	case map[string]any:
		out := make(map[string]V, len(src))
		var iss statlog.Issues
		for _, k := range sortedKeys(src) {
			pv, err := m.val.Parse(ctx, src[k])
			if err != nil {
				iss = statlog.AppendIssues(iss, issuesAt(pointerToken(k), err)...)
				if statlog.IsFailFast(ctx) {
					return nil, iss
				}
				continue
			}
			out[k] = pv
		}
		if len(iss) > 0 {
			return nil, iss
		}
		return out, nil
	case map[string]V:
		if err := m.ValidateValue(ctx, src); err != nil {
			return nil, err
		}
		return src, nil
	}
	return nil, statlog.Issues{invalidType(v, "object")}
}

func (m *mapSchema[V]) Validate(ctx context.Context, v any) error {
	_, err := m.Parse(ctx, v)
	return err
}

func (m *mapSchema[V]) ValidateValue(ctx context.Context, v map[string]V) error {
	var iss statlog.Issues
	for _, k := range sortedKeys(v) {
		if err := m.val.ValidateValue(ctx, v[k]); err != nil {
			iss = statlog.AppendIssues(iss, issuesAt(pointerToken(k), err)...)
			if statlog.IsFailFast(ctx) {
				return iss
			}
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

func (m *mapSchema[V]) JSONSchema() (*js.Schema, error) {
	vs, err := m.val.JSONSchema()
	if err != nil {
		return nil, err
	}
	return &js.Schema{Type: js.Types{"object"}, AdditionalProperties: vs}, nil
}

// sortedKeys returns map keys in ascending order for deterministic issue order.
func sortedKeys[V any](m map[string]V) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}
