package dsl

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/reoring/statlog"
	js "github.com/reoring/statlog/jsonschema"
)

// Bind builds an object schema and binds it to struct type T. Every DSL field
// must map to an exported struct field (by json tag, else Go name) whose type
// can hold the adapter's output, directly or through a pointer.
func Bind[T any](b *objectBuilder) (statlog.Schema[T], error) {
	s, err := b.Build()
	if err != nil {
		return nil, err
	}
	os, ok := s.(*objectSchema)
	if !ok {
		return nil, statlog.Issues{{Path: "/", Code: statlog.CodeParseError, Message: "Bind[T] does not support discriminated unions; use UnionOf"}}
	}
	return newTypedObjectSchema[T](os)
}

// MustBind is like Bind but panics on error.
func MustBind[T any](b *objectBuilder) statlog.Schema[T] {
	s, err := Bind[T](b)
	if err != nil {
		panic(err)
	}
	return s
}

// typedObjectSchema adapts an objectSchema to a typed struct T using key resolution.
type typedObjectSchema[T any] struct {
	inner      *objectSchema
	t          reflect.Type
	fieldByKey map[string]int // DSL key -> struct field index
}

// FieldValidator validates a single field value in isolation. Typed object
// schemas implement it; Assign relies on it.
type FieldValidator interface {
	ValidateField(ctx context.Context, name string, v any) error
	// NormalizeField validates v and returns the value to store, which for
	// untyped (any) fields is the parsed form of v.
	NormalizeField(ctx context.Context, name string, v any) (any, error)
}

var _ FieldValidator = (*typedObjectSchema[struct{}])(nil)

func newTypedObjectSchema[T any](os *objectSchema) (statlog.Schema[T], error) {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		return nil, statlog.Issues{{Path: "/", Code: statlog.CodeParseError, Message: "Bind[T] requires struct T, got " + rt.String()}}
	}
	idxByName := make(map[string]int)
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := structKey(sf)
		if name == "-" || name == "" {
			continue
		}
		idxByName[name] = i
	}
	fm := make(map[string]int, len(os.fields))
	for _, k := range os.sortedKeys {
		i, ok := idxByName[k]
		if !ok {
			return nil, fmt.Errorf("bind %s: no struct field for key %q", rt, k)
		}
		if want := os.fields[k].goType; want != nil && !holds(rt.Field(i).Type, want) {
			return nil, fmt.Errorf("bind %s: field %s (%s) cannot hold %s", rt, rt.Field(i).Name, rt.Field(i).Type, want)
		}
		fm[k] = i
	}
	return &typedObjectSchema[T]{inner: os, t: rt, fieldByKey: fm}, nil
}

// structKey resolves the wire key of a struct field from its json tag.
func structKey(sf reflect.StructField) string {
	tag := sf.Tag.Get("json")
	if tag == "" {
		return sf.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return sf.Name
	}
	return name
}

func holds(field, value reflect.Type) bool {
	if value.AssignableTo(field) || value.ConvertibleTo(field) {
		return true
	}
	return field.Kind() == reflect.Pointer && value.AssignableTo(field.Elem())
}

// Parse accepts either a T (validated as is) or an untyped object.
func (s *typedObjectSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	var zero T
	switch tv := v.(type) {
	case T:
		if err := s.ValidateValue(ctx, tv); err != nil {
			return zero, err
		}
		return tv, nil
	case *T:
		if tv != nil {
			return s.Parse(ctx, *tv)
		}
	}
	m, err := s.inner.Parse(ctx, v)
	if err != nil {
		return zero, err
	}
	rv := reflect.New(s.t).Elem()
	for key, idx := range s.fieldByKey {
		val, ok := m[key]
		if !ok {
			continue
		}
		if !setField(rv.Field(idx), val) {
			return zero, statlog.Issues{{Path: pointerToken(key), Code: statlog.CodeInvalidType, Message: "field type mismatch", Params: map[string]any{"got": typeName(val)}}}
		}
	}
	return rv.Interface().(T), nil
}

func setField(fv reflect.Value, val any) bool {
	if val == nil {
		fv.Set(reflect.Zero(fv.Type()))
		return true
	}
	vv := reflect.ValueOf(val)
	switch {
	case vv.Type().AssignableTo(fv.Type()):
		fv.Set(vv)
	case fv.Kind() == reflect.Pointer && vv.Type().AssignableTo(fv.Type().Elem()):
		p := reflect.New(fv.Type().Elem())
		p.Elem().Set(vv)
		fv.Set(p)
	case vv.Type().ConvertibleTo(fv.Type()):
		fv.Set(vv.Convert(fv.Type()))
	default:
		return false
	}
	return true
}

func (s *typedObjectSchema[T]) Validate(ctx context.Context, v any) error {
	_, err := s.Parse(ctx, v)
	return err
}

// ValidateValue validates every bound field of v. Nil pointers, slices, maps
// and interfaces count as absent.
func (s *typedObjectSchema[T]) ValidateValue(ctx context.Context, v T) error {
	rv := reflect.ValueOf(v)
	m := make(map[string]any, len(s.fieldByKey))
	for key, idx := range s.fieldByKey {
		if val, present := s.fieldValue(key, rv.Field(idx)); present {
			m[key] = val
		}
	}
	return s.inner.ValidateValue(ctx, m)
}

// fieldValue unwraps a struct field for validation; present=false when absent.
// The zero time.Time is absent too.
func (s *typedObjectSchema[T]) fieldValue(key string, fv reflect.Value) (any, bool) {
	if isNilish(fv) || isZeroTime(fv) {
		if s.inner.fields[key].nullable {
			return nil, true
		}
		return nil, false
	}
	if fv.Kind() == reflect.Pointer {
		return fv.Elem().Interface(), true
	}
	return fv.Interface(), true
}

// ValidateField validates v as the value of field name without touching any
// instance. A nil pointer, slice, map or interface means "absent".
func (s *typedObjectSchema[T]) ValidateField(ctx context.Context, name string, v any) error {
	if _, ok := s.fieldByKey[name]; !ok {
		return s.inner.validateField(ctx, name, nil, true)
	}
	if v == nil {
		return s.inner.validateField(ctx, name, nil, s.inner.fields[name].nullable)
	}
	val, present := s.fieldValue(name, reflect.ValueOf(v))
	return s.inner.validateField(ctx, name, val, present)
}

// NormalizeField is ValidateField followed, for interface-typed fields, by a
// parse of v so decoded-JSON shapes and union variants are stored the way
// Parse would store them.
func (s *typedObjectSchema[T]) NormalizeField(ctx context.Context, name string, v any) (any, error) {
	if err := s.ValidateField(ctx, name, v); err != nil {
		return nil, err
	}
	ad, ok := s.inner.fields[name]
	if !ok || v == nil || ad.GoType() == nil || ad.GoType().Kind() != reflect.Interface {
		return v, nil
	}
	if out, err := ad.Parse(ctx, v); err == nil {
		return out, nil
	}
	return v, nil
}

func (s *typedObjectSchema[T]) JSONSchema() (*js.Schema, error) { return s.inner.JSONSchema() }

var timeType = reflect.TypeFor[time.Time]()

func isZeroTime(v reflect.Value) bool {
	if v.Kind() == reflect.Pointer && !v.IsNil() {
		v = v.Elem()
	}
	return v.Type() == timeType && v.IsZero()
}

func isNilish(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return v.IsNil()
	}
	return false
}
