// Package jsonschema models the Draft 2020-12 JSON Schema documents that
// describe statlog record types. It covers the keyword subset the model
// builder understands and keeps property order as written in the document.
package jsonschema

import (
	"bytes"
	"strconv"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Draft2020 is the metaschema URI written into projected documents.
const Draft2020 = "https://json-schema.org/draft/2020-12/schema"

// Schema is a JSON Schema document or sub-schema. A boolean schema (true or
// false) is represented by Bool being non-nil.
type Schema struct {
	Bool *bool `json:"-" yaml:"-"`

	// Core
	SchemaURI   string     `json:"$schema,omitempty" yaml:"$schema,omitempty"`
	ID          string     `json:"$id,omitempty" yaml:"$id,omitempty"`
	Ref         string     `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Defs        Properties `json:"$defs,omitempty" yaml:"$defs,omitempty"`
	Title       string     `json:"title,omitempty" yaml:"title,omitempty"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Type        Types      `json:"type,omitempty" yaml:"type,omitempty"`
	Format      string     `json:"format,omitempty" yaml:"format,omitempty"`
	Enum        []any      `json:"enum,omitempty" yaml:"enum,omitempty"`
	Const       any        `json:"const,omitempty" yaml:"const,omitempty"`
	Default     any        `json:"default,omitempty" yaml:"default,omitempty"`
	Examples    []any      `json:"examples,omitempty" yaml:"examples,omitempty"`

	// Object
	Properties           Properties `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required             []string   `json:"required,omitempty" yaml:"required,omitempty"`
	AdditionalProperties *Schema    `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`

	// Array
	Items    *Schema `json:"items,omitempty" yaml:"items,omitempty"`
	MinItems *int    `json:"minItems,omitempty" yaml:"minItems,omitempty"`
	MaxItems *int    `json:"maxItems,omitempty" yaml:"maxItems,omitempty"`

	// Scalars
	Minimum   *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum   *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	MinLength *int     `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	Pattern   string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`

	// Composition
	OneOf         []*Schema      `json:"oneOf,omitempty" yaml:"oneOf,omitempty"`
	AnyOf         []*Schema      `json:"anyOf,omitempty" yaml:"anyOf,omitempty"`
	AllOf         []*Schema      `json:"allOf,omitempty" yaml:"allOf,omitempty"`
	Discriminator *Discriminator `json:"discriminator,omitempty" yaml:"discriminator,omitempty"`

	// Extra collects keywords outside the modeled subset.
	Extra map[string]any `json:"-" yaml:",inline"`
}

// Discriminator is the OpenAPI-style hint naming the tag property of a oneOf.
type Discriminator struct {
	PropertyName string `json:"propertyName" yaml:"propertyName"`
}

// True returns the boolean schema that accepts everything.
func True() *Schema { b := true; return &Schema{Bool: &b} }

// False returns the boolean schema that rejects everything.
func False() *Schema { b := false; return &Schema{Bool: &b} }

// IsFalse reports whether s is the boolean schema false.
func (s *Schema) IsFalse() bool { return s != nil && s.Bool != nil && !*s.Bool }

// IsTrue reports whether s is the boolean schema true.
func (s *Schema) IsTrue() bool { return s != nil && s.Bool != nil && *s.Bool }

type plainSchema Schema

// MarshalJSON renders boolean schemas as true/false and everything else as an object.
func (s Schema) MarshalJSON() ([]byte, error) {
	if s.Bool != nil {
		return []byte(strconv.FormatBool(*s.Bool)), nil
	}
	return json.Marshal(plainSchema(s))
}

// UnmarshalYAML accepts both object and boolean schemas. JSON documents are
// decoded through the same path (see Parse).
func (s *Schema) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!bool" {
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}
		*s = Schema{Bool: &b}
		return nil
	}
	var p plainSchema
	if err := node.Decode(&p); err != nil {
		return err
	}
	*s = Schema(p)
	return nil
}

// Types is the "type" keyword: a single name or a list of names.
type Types []string

// Has reports whether t is listed.
func (ts Types) Has(t string) bool {
	for _, x := range ts {
		if x == t {
			return true
		}
	}
	return false
}

// Primary returns the first non-null type name, or "" when none is set.
func (ts Types) Primary() string {
	for _, x := range ts {
		if x != "null" {
			return x
		}
	}
	return ""
}

// Nullable reports whether "null" is among the listed types.
func (ts Types) Nullable() bool { return ts.Has("null") }

func (ts Types) MarshalJSON() ([]byte, error) {
	if len(ts) == 1 {
		return json.Marshal(ts[0])
	}
	return json.Marshal([]string(ts))
}

func (ts *Types) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*ts = Types{node.Value}
		return nil
	}
	var list []string
	if err := node.Decode(&list); err != nil {
		return err
	}
	*ts = Types(list)
	return nil
}

// NamedSchema is one entry of an ordered keyword map such as properties or $defs.
type NamedSchema struct {
	Name   string
	Schema *Schema
}

// Properties is an ordered name -> schema mapping.
type Properties []NamedSchema

// Get returns the schema registered under name, or nil.
func (ps Properties) Get(name string) *Schema {
	for _, p := range ps {
		if p.Name == name {
			return p.Schema
		}
	}
	return nil
}

// Names returns the names in document order.
func (ps Properties) Names() []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Name)
	}
	return out
}

// Set replaces the entry for name or appends a new one.
func (ps *Properties) Set(name string, s *Schema) {
	for i := range *ps {
		if (*ps)[i].Name == name {
			(*ps)[i].Schema = s
			return
		}
	}
	*ps = append(*ps, NamedSchema{Name: name, Schema: s})
}

func (ps Properties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range ps {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(p.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		sub := p.Schema
		if sub == nil {
			sub = &Schema{}
		}
		v, err := json.Marshal(sub)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (ps *Properties) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return &yaml.TypeError{Errors: []string{"line " + strconv.Itoa(node.Line) + ": expected a mapping of schemas"}}
	}
	out := make(Properties, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		sub := &Schema{}
		if err := node.Content[i+1].Decode(sub); err != nil {
			return err
		}
		out = append(out, NamedSchema{Name: node.Content[i].Value, Schema: sub})
	}
	*ps = out
	return nil
}
