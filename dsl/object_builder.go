package dsl

import (
	"context"

	"github.com/reoring/statlog"
	"github.com/reoring/statlog/i18n"
	js "github.com/reoring/statlog/jsonschema"
)

type objectBuilder struct {
	fields        map[string]AnyAdapter
	order         []string
	required      map[string]struct{}
	unknownPolicy statlog.UnknownPolicy
	unknownTarget string
	title         string
	discriminator string
	variants      []UnionVariant
}

type fieldStep struct {
	b    *objectBuilder
	name string
}

// Object creates a new object builder with safe defaults (UnknownStrict).
func Object() *objectBuilder {
	return &objectBuilder{
		fields:        map[string]AnyAdapter{},
		required:      map[string]struct{}{},
		unknownPolicy: statlog.UnknownStrict,
	}
}

// Field registers a field with its adapter. Fields keep registration order in
// the JSON Schema projection.
func (b *objectBuilder) Field(name string, ad AnyAdapter) *fieldStep {
	if _, seen := b.fields[name]; !seen {
		b.order = append(b.order, name)
	}
	b.fields[name] = ad
	return &fieldStep{b: b, name: name}
}

// Required marks the field as required and returns the builder.
func (f *fieldStep) Required() *objectBuilder {
	f.b.required[f.name] = struct{}{}
	return f.b
}

// Optional marks the field as optional (default) and returns the builder.
func (f *fieldStep) Optional() *objectBuilder {
	delete(f.b.required, f.name)
	return f.b
}

// Default sets a default for the current field and exports it to JSON Schema.
func (f *fieldStep) Default(v any) *objectBuilder {
	f.b.fields[f.name] = withDefault(f.b.fields[f.name], v)
	return f.b
}

func (f *fieldStep) UnknownStrict() *objectBuilder { return f.b.UnknownStrict() }
func (f *fieldStep) UnknownStrip() *objectBuilder  { return f.b.UnknownStrip() }
func (f *fieldStep) UnknownPassthrough(target string) *objectBuilder {
	return f.b.UnknownPassthrough(target)
}
func (f *fieldStep) Title(t string) *objectBuilder                  { return f.b.Title(t) }
func (f *fieldStep) Field(name string, ad AnyAdapter) *fieldStep    { return f.b.Field(name, ad) }
func (f *fieldStep) Build() (statlog.Schema[map[string]any], error) { return f.b.Build() }
func (f *fieldStep) MustBuild() statlog.Schema[map[string]any]      { return f.b.MustBuild() }

// Require marks one or more fields as required.
func (b *objectBuilder) Require(names ...string) *objectBuilder {
	for _, n := range names {
		b.required[n] = struct{}{}
	}
	return b
}

// UnknownStrict sets unknown policy to Strict.
func (b *objectBuilder) UnknownStrict() *objectBuilder {
	b.unknownPolicy = statlog.UnknownStrict
	b.unknownTarget = ""
	return b
}

// UnknownStrip sets unknown policy to Strip.
func (b *objectBuilder) UnknownStrip() *objectBuilder {
	b.unknownPolicy = statlog.UnknownStrip
	b.unknownTarget = ""
	return b
}

// UnknownPassthrough sets unknown policy to Passthrough with a target field.
func (b *objectBuilder) UnknownPassthrough(target string) *objectBuilder {
	b.unknownPolicy = statlog.UnknownPassthrough
	b.unknownTarget = target
	return b
}

// Title sets the title exported to JSON Schema.
func (b *objectBuilder) Title(t string) *objectBuilder {
	b.title = t
	return b
}

// Discriminator sets the discriminator key for a discriminated union.
func (b *objectBuilder) Discriminator(key string) *objectBuilder {
	b.discriminator = key
	return b
}

// UnionVariant defines a named variant for discriminated unions.
type UnionVariant struct {
	tag string
	ad  AnyAdapter
}

// Variant constructs a UnionVariant over a map-based object schema.
func Variant(tag string, s statlog.Schema[map[string]any]) UnionVariant {
	return UnionVariant{tag: tag, ad: SchemaOf(s)}
}

// OneOf registers union variants when a discriminator is set. Variant order is
// kept for error reporting and JSON Schema export.
func (b *objectBuilder) OneOf(vars ...UnionVariant) *objectBuilder {
	for _, v := range vars {
		if v.tag == "" || v.ad.orig == nil {
			continue
		}
		b.variants = append(b.variants, v)
	}
	return b
}

// Build validates the builder and returns a Schema.
func (b *objectBuilder) Build() (statlog.Schema[map[string]any], error) {
	// If discriminator is configured, return a union schema
	if b.discriminator != "" && len(b.variants) > 0 {
		u, err := newUnion(b.discriminator, b.variants, mapTag(b.discriminator))
		if err != nil {
			return nil, err
		}
		return u, nil
	}
	// Validate unknown passthrough target
	if b.unknownPolicy == statlog.UnknownPassthrough {
		ad, ok := b.fields[b.unknownTarget]
		if !ok || b.unknownTarget == "" {
			return nil, statlog.Issues{{Path: "/", Code: statlog.CodeParseError, Message: i18n.T(statlog.CodeParseError, nil), Hint: "unknown_target missing for passthrough"}}
		}
		// adapter must accept map[string]any (validateValue on empty map)
		if err := ad.ValidateValue(context.Background(), map[string]any{}); err != nil {
			return nil, statlog.Issues{{Path: "/" + b.unknownTarget, Code: statlog.CodeInvalidType, Message: i18n.T(statlog.CodeInvalidType, nil), Hint: "unknown_target must be map[string]any"}}
		}
	}
	return &objectSchema{
		fields:        b.fields,
		order:         append([]string(nil), b.order...),
		sortedKeys:    sortedKeys(b.fields),
		required:      b.required,
		unknownPolicy: b.unknownPolicy,
		unknownTarget: b.unknownTarget,
		title:         b.title,
	}, nil
}

// MustBuild is like Build but panics on error.
func (b *objectBuilder) MustBuild() statlog.Schema[map[string]any] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

func withDefault(ad AnyAdapter, v any) AnyAdapter {
	// Apply default by parsing via the field schema so it is validated like input
	ad.applyDefault = func(ctx context.Context) (any, error) { return ad.Parse(ctx, v) }
	prev := ad.jsonSchema
	ad.jsonSchema = func() (*js.Schema, error) {
		if prev == nil {
			return &js.Schema{Default: v}, nil
		}
		s, err := prev()
		if err != nil {
			return nil, err
		}
		if s == nil {
			s = &js.Schema{}
		}
		s.Default = v
		return s, nil
	}
	return ad
}
