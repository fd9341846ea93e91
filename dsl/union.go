package dsl

import (
	"context"
	"fmt"
	"reflect"

	"github.com/reoring/statlog"
	"github.com/reoring/statlog/i18n"
	js "github.com/reoring/statlog/jsonschema"
)

// Tagged is implemented by typed union variants; it reports the variant's
// discriminator value.
type Tagged interface {
	DiscriminatorValue() string
}

// UnionOf starts a typed discriminated union whose values implement I
// (usually a sealed interface with one struct per variant).
//
//	dsl.UnionOf[ChangeDetails]("kind").
//		Variant("unit", dsl.SchemaOf(changeDetailsUnitSchema)).
//		Variant("rows", dsl.SchemaOf(changeDetailsRowsSchema)).
//		MustBuild()
func UnionOf[I any](discriminator string) *unionBuilder[I] {
	return &unionBuilder[I]{discriminator: discriminator}
}

type unionBuilder[I any] struct {
	discriminator string
	variants      []UnionVariant
}

// Variant registers the schema selected when the tag equals tag.
func (b *unionBuilder[I]) Variant(tag string, ad AnyAdapter) *unionBuilder[I] {
	b.variants = append(b.variants, UnionVariant{tag: tag, ad: ad})
	return b
}

// Build returns the union schema.
func (b *unionBuilder[I]) Build() (statlog.Schema[I], error) {
	u, err := newUnion(b.discriminator, b.variants, taggedTag[I])
	if err != nil {
		return nil, err
	}
	return u, nil
}

// MustBuild is like Build but panics on error.
func (b *unionBuilder[I]) MustBuild() statlog.Schema[I] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// unionSchema dispatches on the discriminator before any structural check.
type unionSchema[I any] struct {
	discriminator string
	order         []string
	mapping       map[string]AnyAdapter
	tagOf         func(I) (any, bool)
}

func newUnion[I any](discriminator string, vars []UnionVariant, tagOf func(I) (any, bool)) (*unionSchema[I], error) {
	if discriminator == "" {
		return nil, fmt.Errorf("union: empty discriminator")
	}
	if len(vars) == 0 {
		return nil, fmt.Errorf("union %q: no variants", discriminator)
	}
	u := &unionSchema[I]{discriminator: discriminator, mapping: make(map[string]AnyAdapter, len(vars)), tagOf: tagOf}
	for _, v := range vars {
		if _, dup := u.mapping[v.tag]; dup {
			return nil, fmt.Errorf("union %q: duplicate variant %q", discriminator, v.tag)
		}
		u.order = append(u.order, v.tag)
		u.mapping[v.tag] = v.ad
	}
	return u, nil
}

func mapTag(key string) func(map[string]any) (any, bool) {
	return func(m map[string]any) (any, bool) {
		v, ok := m[key]
		return v, ok && v != nil
	}
}

func taggedTag[I any](v I) (any, bool) {
	t, ok := any(v).(Tagged)
	if !ok {
		return nil, false
	}
	return t.DiscriminatorValue(), true
}

// selectVariant resolves the variant for a raw tag value.
func (u *unionSchema[I]) selectVariant(raw any, present bool) (AnyAdapter, error) {
	path := pointerToken(u.discriminator)
	if !present {
		return AnyAdapter{}, statlog.Issues{{Path: path, Code: statlog.CodeDiscriminatorMissing, Message: i18n.T(statlog.CodeDiscriminatorMissing, nil), Params: map[string]any{"allowed": u.order}}}
	}
	tag, _ := raw.(string)
	ad, ok := u.mapping[tag]
	if !ok {
		return AnyAdapter{}, statlog.Issues{{
			Path:    path,
			Code:    statlog.CodeDiscriminatorUnknown,
			Message: i18n.T(statlog.CodeDiscriminatorUnknown, nil),
			Hint:    fmt.Sprintf("unknown variant %v, allowed %q", raw, u.order),
			Params:  map[string]any{"allowed": u.order, "got": raw},
		}}
	}
	return ad, nil
}

func (u *unionSchema[I]) Parse(ctx context.Context, v any) (I, error) {
	var zero I
	m, isMap := v.(map[string]any)
	if !isMap {
		if tv, ok := v.(I); ok {
			if raw, present := u.tagOf(tv); present {
				tag, _ := raw.(string)
				if tagged, ok := withTag(any(tv), u.discriminator, tag).(I); ok {
					tv = tagged
				}
			}
			return tv, u.ValidateValue(ctx, tv)
		}
		return zero, statlog.Issues{invalidType(v, "object")}
	}
	raw, present := m[u.discriminator]
	ad, err := u.selectVariant(raw, present && raw != nil)
	if err != nil {
		return zero, err
	}
	out, err := ad.Parse(ctx, m)
	if err != nil {
		return zero, err
	}
	tv, ok := out.(I)
	if !ok {
		return zero, statlog.Issues{{Path: "/", Code: statlog.CodeParseError, Message: fmt.Sprintf("variant %v produced %T", raw, out)}}
	}
	return tv, nil
}

func (u *unionSchema[I]) Validate(ctx context.Context, v any) error {
	_, err := u.Parse(ctx, v)
	return err
}

func (u *unionSchema[I]) ValidateValue(ctx context.Context, v I) error {
	raw, present := u.tagOf(v)
	ad, err := u.selectVariant(raw, present)
	if err != nil {
		return err
	}
	tag, _ := raw.(string)
	return ad.ValidateValue(ctx, withTag(any(v), u.discriminator, tag))
}

// withTag returns a copy of struct v whose empty discriminator field is set
// to tag. Anything else is returned unchanged.
func withTag(v any, key, tag string) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Struct {
		return v
	}
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() || structKey(sf) != key || sf.Type.Kind() != reflect.String {
			continue
		}
		if !rv.Field(i).IsZero() {
			return v
		}
		cp := reflect.New(rt).Elem()
		cp.Set(rv)
		cp.Field(i).SetString(tag)
		return cp.Interface()
	}
	return v
}

func (u *unionSchema[I]) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Discriminator: &js.Discriminator{PropertyName: u.discriminator}}
	out.OneOf = make([]*js.Schema, 0, len(u.order))
	for _, tag := range u.order {
		vs, err := u.mapping[tag].JSONSchema()
		if err != nil {
			return nil, err
		}
		out.OneOf = append(out.OneOf, vs)
	}
	return out, nil
}
