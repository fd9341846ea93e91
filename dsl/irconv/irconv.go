// Package irconv builds runtime schemas directly from the IR of a schema
// document, without generating code. The result validates decoded JSON the
// same way the generated models do and yields map-based values.
package irconv

import (
	"errors"
	"fmt"

	"github.com/reoring/statlog"
	"github.com/reoring/statlog/dsl"
	ir "github.com/reoring/statlog/internal/ir"
)

// ErrRecursive is returned for object types that reference themselves.
var ErrRecursive = errors.New("recursive object types are not supported")

type converter struct {
	objects map[*ir.Object]statlog.Schema[map[string]any]
	active  map[*ir.Object]bool
}

// FromModel returns the schema of the model's root object.
func FromModel(m *ir.Model) (statlog.Schema[map[string]any], error) {
	if m == nil || m.Root == nil {
		return nil, errors.New("irconv: empty model")
	}
	c := newConverter()
	return c.object(m.Root)
}

// FromIR converts a single IR node.
func FromIR(node ir.Schema) (dsl.AnyAdapter, error) {
	return newConverter().adapter(node)
}

func newConverter() *converter {
	return &converter{
		objects: map[*ir.Object]statlog.Schema[map[string]any]{},
		active:  map[*ir.Object]bool{},
	}
}

func (c *converter) adapter(node ir.Schema) (dsl.AnyAdapter, error) {
	switch n := node.(type) {
	case *ir.Primitive:
		var ad dsl.AnyAdapter
		switch n.Name {
		case "integer":
			ad = dsl.SchemaOf(dsl.Int64())
		case "number":
			ad = dsl.SchemaOf(dsl.Float64())
		case "boolean":
			ad = dsl.SchemaOf(dsl.Bool())
		default:
			ad = dsl.SchemaOf(dsl.String())
		}
		if n.Minimum != nil {
			ad = ad.Min(*n.Minimum)
		}
		return ad, nil
	case *ir.Timestamp:
		return dsl.SchemaOf(dsl.Timestamp()), nil
	case *ir.Enum:
		return dsl.SchemaOf(dsl.EnumOf(n.Values...)), nil
	case *ir.Const:
		return dsl.SchemaOf(dsl.EnumOf(n.Value)), nil
	case *ir.Array:
		item, err := c.adapter(n.Item)
		if err != nil {
			return dsl.AnyAdapter{}, err
		}
		arr := dsl.Array(dsl.FromAdapter(item))
		if n.MinItems != nil {
			arr = arr.Min(*n.MinItems)
		}
		return dsl.ArrayOfSchema(arr), nil
	case *ir.Map:
		val, err := c.adapter(n.Value)
		if err != nil {
			return dsl.AnyAdapter{}, err
		}
		return dsl.MapOf(dsl.FromAdapter(val)), nil
	case *ir.Object:
		s, err := c.object(n)
		if err != nil {
			return dsl.AnyAdapter{}, err
		}
		return dsl.SchemaOf(s), nil
	case *ir.OneOf:
		s, err := c.union(n)
		if err != nil {
			return dsl.AnyAdapter{}, err
		}
		return dsl.SchemaOf(s), nil
	case *ir.AnyOf:
		opts := make([]dsl.ShapeOption, 0, len(n.Shapes))
		for _, sh := range n.Shapes {
			ad, err := c.adapter(sh.Schema)
			if err != nil {
				return dsl.AnyAdapter{}, err
			}
			opts = append(opts, dsl.Shape(sh.Name, ad))
		}
		return dsl.Shapes(opts...), nil
	case *ir.Any, nil:
		return dsl.SchemaOf(dsl.Any()), nil
	default:
		return dsl.AnyAdapter{}, fmt.Errorf("irconv: unexpected node %T", node)
	}
}

func (c *converter) object(o *ir.Object) (statlog.Schema[map[string]any], error) {
	if s, ok := c.objects[o]; ok {
		return s, nil
	}
	if c.active[o] {
		return nil, fmt.Errorf("%w: %s", ErrRecursive, o.Name)
	}
	c.active[o] = true
	defer delete(c.active, o)

	b := dsl.Object().Title(o.Name)
	for _, f := range o.Fields {
		ad, err := c.adapter(f.Schema)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", o.Name, f.Name, err)
		}
		if f.Nullable {
			ad = ad.Nullable()
		}
		step := b.Field(f.Name, ad)
		switch {
		case f.Required:
			b = step.Required()
		case f.Default != nil:
			b = step.Default(f.Default)
		default:
			b = step.Optional()
		}
	}
	switch statlog.UnknownPolicy(o.UnknownPolicy) {
	case statlog.UnknownStrip:
		b.UnknownStrip()
	default:
		b.UnknownStrict()
	}
	s, err := b.Build()
	if err != nil {
		return nil, err
	}
	c.objects[o] = s
	return s, nil
}

func (c *converter) union(u *ir.OneOf) (statlog.Schema[map[string]any], error) {
	vars := make([]dsl.UnionVariant, 0, len(u.Variants))
	for _, v := range u.Variants {
		s, err := c.object(v.Object)
		if err != nil {
			return nil, err
		}
		vars = append(vars, dsl.Variant(v.Tag, s))
	}
	return dsl.Object().Discriminator(u.Discriminator).OneOf(vars...).Build()
}
