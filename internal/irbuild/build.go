// Package irbuild turns a JSON Schema document into the IR consumed by the
// code renderer and the dynamic runtime.
package irbuild

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/ubuntu/decorate"

	"github.com/reoring/statlog"
	ir "github.com/reoring/statlog/internal/ir"
	js "github.com/reoring/statlog/jsonschema"
)

// ErrUnsupported is wrapped by errors for constructs the builder cannot map.
var ErrUnsupported = errors.New("unsupported schema construct")

// Diag is a non-fatal builder warning: a keyword outside the supported subset
// that is accepted but not enforced.
type Diag struct {
	Path    string // JSON Pointer into the schema document
	Message string
}

func (d Diag) String() string { return d.Path + ": " + d.Message }

// ignored keywords carry no validation meaning.
var ignored = map[string]bool{"$comment": true, "examples": true, "deprecated": true, "readOnly": true, "writeOnly": true}

type builder struct {
	doc    *js.Schema
	model  *ir.Model
	taken  map[string]bool
	byRef  map[string]ir.Schema
	diags  []Diag
	source string
}

// Build converts doc into a Model. source names the document in errors and
// is used for the root type name when the document has no title.
func Build(source string, doc *js.Schema) (m *ir.Model, diags []Diag, err error) {
	defer decorate.OnError(&err, "build model from %s", source)

	if doc == nil {
		return nil, nil, errors.New("nil schema document")
	}
	if len(doc.Properties) == 0 && !doc.Type.Has("object") {
		return nil, nil, fmt.Errorf("%w: root must be an object schema", ErrUnsupported)
	}
	b := &builder{
		doc:    doc,
		model:  &ir.Model{Source: source},
		taken:  map[string]bool{},
		byRef:  map[string]ir.Schema{},
		source: source,
	}
	name := nameFromFile(source)
	if doc.Title != "" {
		name = identifier(doc.Title)
	}
	root, err := b.object(b.claim(name), doc, "", nil)
	if err != nil {
		return nil, b.diags, err
	}
	b.model.Root = root
	return b.model, b.diags, nil
}

// claim reserves a type name, suffixing a counter on collision.
func (b *builder) claim(name string) string {
	if !b.taken[name] {
		b.taken[name] = true
		return name
	}
	for i := 2; ; i++ {
		n := name + strconv.Itoa(i)
		if !b.taken[n] {
			b.taken[n] = true
			return n
		}
	}
}

func (b *builder) warn(path, format string, args ...any) {
	if path == "" {
		path = "/"
	}
	d := Diag{Path: path, Message: fmt.Sprintf(format, args...)}
	for _, x := range b.diags {
		if x == d {
			return
		}
	}
	b.diags = append(b.diags, d)
}

// unenforced reports keywords that are parsed but not turned into rules.
func (b *builder) unenforced(s *js.Schema, path string) {
	keys := make([]string, 0, len(s.Extra))
	for k := range s.Extra {
		if !ignored[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.warn(path, "keyword %q is not supported and is ignored", k)
	}
	if s.Pattern != "" {
		b.warn(path, "pattern is not enforced")
	}
	if s.MaxItems != nil || s.Maximum != nil || s.MinLength != nil {
		b.warn(path, "maxItems/maximum/minLength are not enforced")
	}
	if len(s.AllOf) > 0 {
		b.warn(path, "allOf is not supported and is ignored")
	}
}

// typeHint picks the type name for a nested schema: its title when set,
// otherwise the fallback derived from the parent.
func typeHint(s *js.Schema, fallback string) string {
	if s != nil && s.Title != "" {
		return identifier(s.Title)
	}
	return fallback
}

func (b *builder) node(s *js.Schema, hint, path string) (ir.Schema, error) {
	if s == nil || s.IsTrue() {
		return &ir.Any{}, nil
	}
	if s.IsFalse() {
		b.warn(path, "false schema accepts nothing; treated as any")
		return &ir.Any{}, nil
	}
	if s.Ref != "" {
		return b.ref(s.Ref, path)
	}
	b.unenforced(s, path)

	switch {
	case len(s.OneOf) > 0:
		return b.oneOf(s, typeHint(s, hint), path)
	case len(s.AnyOf) > 0:
		return b.anyOf(s, hint, path)
	case s.Const != nil:
		v, ok := s.Const.(string)
		if !ok {
			return nil, fmt.Errorf("%w: non-string const at %s", ErrUnsupported, path)
		}
		return &ir.Const{Value: v}, nil
	case len(s.Enum) > 0:
		return b.enum(s, typeHint(s, hint), path)
	}

	switch s.Type.Primary() {
	case "string":
		if s.Format == "date-time" {
			return &ir.Timestamp{}, nil
		}
		if s.Format != "" {
			b.warn(path, "format %q is not enforced", s.Format)
		}
		return &ir.Primitive{Name: "string"}, nil
	case "integer", "number":
		return &ir.Primitive{Name: s.Type.Primary(), Minimum: s.Minimum}, nil
	case "boolean":
		return &ir.Primitive{Name: "boolean"}, nil
	case "array":
		item, err := b.node(s.Items, typeHint(s.Items, hint+"Item"), path+"/items")
		if err != nil {
			return nil, err
		}
		return &ir.Array{Item: item, MinItems: s.MinItems}, nil
	case "object", "":
		if len(s.Properties) == 0 {
			if s.Type.Primary() == "" {
				return &ir.Any{}, nil
			}
			ap := s.AdditionalProperties
			if ap == nil || ap.Bool != nil {
				return &ir.Map{Value: &ir.Any{}}, nil
			}
			val, err := b.node(ap, hint+"Value", path+"/additionalProperties")
			if err != nil {
				return nil, err
			}
			return &ir.Map{Value: val}, nil
		}
		return b.object(b.claim(typeHint(s, hint)), s, path, nil)
	default:
		b.warn(path, "type %q is not supported; treated as any", s.Type.Primary())
		return &ir.Any{}, nil
	}
}

func (b *builder) ref(ref, path string) (ir.Schema, error) {
	if n, ok := b.byRef[ref]; ok {
		return n, nil
	}
	target, err := js.Resolve(b.doc, ref)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	hint := identifier(js.DefName(ref))
	if target.Title != "" {
		hint = identifier(target.Title)
	}
	if len(target.Properties) > 0 && len(target.OneOf) == 0 && len(target.AnyOf) == 0 {
		// register before descending so self references terminate
		obj := &ir.Object{Name: b.claim(hint)}
		b.byRef[ref] = obj
		if _, err := b.object(obj.Name, target, ref[1:], obj); err != nil {
			return nil, err
		}
		return obj, nil
	}
	n, err := b.node(target, hint, ref[1:])
	if err != nil {
		return nil, err
	}
	b.byRef[ref] = n
	return n, nil
}

// object builds (or fills, when into is non-nil) a named object type.
func (b *builder) object(name string, s *js.Schema, path string, into *ir.Object) (*ir.Object, error) {
	obj := into
	if obj == nil {
		obj = &ir.Object{Name: name}
	}
	obj.Doc = s.Description
	obj.UnknownPolicy = int(statlog.UnknownStrict)
	if s.AdditionalProperties == nil || s.AdditionalProperties.IsTrue() {
		b.warn(path, "additionalProperties is not false; %s rejects unknown keys anyway", name)
	} else if !s.AdditionalProperties.IsFalse() {
		b.warn(path, "additionalProperties schema next to properties is not supported; unknown keys are rejected")
	}
	b.model.Types = append(b.model.Types, obj)
	b.unenforced(s, path)

	required := make(map[string]bool, len(s.Required))
	for _, r := range s.Required {
		required[r] = true
		if s.Properties.Get(r) == nil {
			b.warn(path+"/required", "required property %q is not declared", r)
		}
	}
	for _, p := range s.Properties {
		f, err := b.field(name, p, required[p.Name], path+"/properties/"+p.Name)
		if err != nil {
			return nil, err
		}
		obj.Fields = append(obj.Fields, f)
	}
	return obj, nil
}

func (b *builder) field(parent string, p js.NamedSchema, required bool, path string) (ir.Field, error) {
	f := ir.Field{Name: p.Name, GoName: identifier(p.Name), Required: required}
	if p.Schema != nil {
		f.Doc = p.Schema.Description
		f.Default = p.Schema.Default
		f.Nullable = p.Schema.Type.Nullable()
	}
	sch, err := b.node(p.Schema, typeHint(p.Schema, parent+f.GoName), path)
	if err != nil {
		return ir.Field{}, err
	}
	f.Schema = sch
	if f.Default != nil && f.Required {
		b.warn(path, "default on a required property is never applied")
	}
	return f, nil
}

func (b *builder) enum(s *js.Schema, name, path string) (*ir.Enum, error) {
	e := &ir.Enum{Name: b.claim(name), Doc: s.Description}
	for i, v := range s.Enum {
		str, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: enum member %d at %s is not a string", ErrUnsupported, i, path)
		}
		e.Values = append(e.Values, str)
	}
	e.Consts = constNames(e.Name, e.Values)
	b.model.Types = append(b.model.Types, e)
	return e, nil
}

// constNames derives one Go constant per enum member, keeping them unique.
func constNames(typeName string, values []string) []string {
	seen := map[string]bool{}
	out := make([]string, len(values))
	for i, v := range values {
		n := typeName + GoName(v)
		if n == typeName {
			n = typeName + "Empty"
		}
		base := n
		for j := 2; seen[n]; j++ {
			n = base + strconv.Itoa(j)
		}
		seen[n] = true
		out[i] = n
	}
	return out
}
