package irbuild

import (
	"fmt"
	"strconv"

	ir "github.com/reoring/statlog/internal/ir"
	js "github.com/reoring/statlog/jsonschema"
)

// oneOf maps a oneOf to a discriminated union. The tag property comes from
// discriminator.propertyName, or else is the one property every alternative
// pins to a single value. Without a tag the alternatives are tried in order.
func (b *builder) oneOf(s *js.Schema, name, path string) (ir.Schema, error) {
	alts := make([]*js.Schema, len(s.OneOf))
	for i, alt := range s.OneOf {
		alts[i] = alt
		if alt != nil && alt.Ref != "" {
			t, err := js.Resolve(b.doc, alt.Ref)
			if err != nil {
				return nil, fmt.Errorf("%s/oneOf/%d: %w", path, i, err)
			}
			alts[i] = t
		}
	}

	disc := ""
	if s.Discriminator != nil {
		disc = s.Discriminator.PropertyName
	} else {
		disc = commonTag(alts)
	}
	if disc == "" {
		b.warn(path, "oneOf without a discriminator is validated as ordered shapes")
		return b.shapes(s.OneOf, name, path+"/oneOf")
	}

	u := &ir.OneOf{Name: b.claim(name), Doc: s.Description, Discriminator: disc}
	b.model.Types = append(b.model.Types, u)
	u.Tag = &ir.Enum{Name: b.claim(u.Name + identifier(disc))}
	b.model.Types = append(b.model.Types, u.Tag)

	tags := make([]string, len(alts))
	for i, alt := range alts {
		tag, ok := tagValue(alt, disc)
		if !ok {
			return nil, fmt.Errorf("%w: %s/oneOf/%d does not pin %q to a single value", ErrUnsupported, path, i, disc)
		}
		if u.Tag.Has(tag) {
			return nil, fmt.Errorf("%w: %s: duplicate tag %q", ErrUnsupported, path, tag)
		}
		u.Tag.Values = append(u.Tag.Values, tag)
		tags[i] = tag
	}
	u.Tag.Consts = constNames(u.Tag.Name, u.Tag.Values)

	for i, alt := range alts {
		vname := u.Name + GoName(tags[i])
		if alt.Title != "" {
			vname = identifier(alt.Title)
		}
		obj, err := b.object(b.claim(vname), withoutProperty(alt, disc), fmt.Sprintf("%s/oneOf/%d", path, i), nil)
		if err != nil {
			return nil, err
		}
		tagField := ir.Field{
			Name:     disc,
			GoName:   identifier(disc),
			Schema:   &ir.Const{Value: tags[i], Enum: u.Tag},
			Required: true,
		}
		if p := alt.Properties.Get(disc); p != nil {
			tagField.Doc = p.Description
		}
		obj.Fields = append([]ir.Field{tagField}, obj.Fields...)
		u.Variants = append(u.Variants, ir.Variant{Tag: tags[i], Object: obj})
	}
	return u, nil
}

// withoutProperty returns a shallow copy of s with property name removed.
func withoutProperty(s *js.Schema, name string) *js.Schema {
	cp := *s
	cp.Properties = nil
	for _, p := range s.Properties {
		if p.Name != name {
			cp.Properties = append(cp.Properties, p)
		}
	}
	cp.Required = nil
	for _, r := range s.Required {
		if r != name {
			cp.Required = append(cp.Required, r)
		}
	}
	return &cp
}

// tagValue returns the single value alt pins for property disc.
func tagValue(alt *js.Schema, disc string) (string, bool) {
	if alt == nil {
		return "", false
	}
	p := alt.Properties.Get(disc)
	if p == nil {
		return "", false
	}
	if v, ok := p.Const.(string); ok {
		return v, true
	}
	if len(p.Enum) == 1 {
		v, ok := p.Enum[0].(string)
		return v, ok
	}
	return "", false
}

// commonTag finds the first property (in the first alternative's order) that
// every alternative pins to a single value.
func commonTag(alts []*js.Schema) string {
	if len(alts) == 0 || alts[0] == nil {
		return ""
	}
	for _, p := range alts[0].Properties {
		all := true
		for _, alt := range alts {
			if _, ok := tagValue(alt, p.Name); !ok {
				all = false
				break
			}
		}
		if all {
			return p.Name
		}
	}
	return ""
}

func (b *builder) anyOf(s *js.Schema, hint, path string) (ir.Schema, error) {
	return b.shapes(s.AnyOf, hint, path+"/anyOf")
}

// shapes builds an ordered AnyOf; each shape is named by its Go type.
func (b *builder) shapes(alts []*js.Schema, hint, path string) (ir.Schema, error) {
	out := &ir.AnyOf{}
	seen := map[string]bool{}
	for i, alt := range alts {
		n, err := b.node(alt, typeHint(alt, hint+"Option"+strconv.Itoa(i+1)), path+"/"+strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		name := ir.TypeExpr(n)
		if seen[name] {
			b.warn(path, "shape %s appears twice; the later one never matches", name)
		}
		seen[name] = true
		out.Shapes = append(out.Shapes, ir.Shape{Name: name, Schema: n})
	}
	return out, nil
}
