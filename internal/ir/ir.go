// Package ir defines the intermediate representation shared by the model
// builder, the code renderer and the dynamic runtime. This package is internal
// and not part of the public API.
package ir

// NodeKind identifies an IR node type.
type NodeKind int

const (
	NodePrimitive NodeKind = iota
	NodeTimestamp
	NodeEnum
	NodeConst
	NodeArray
	NodeMap
	NodeObject
	NodeOneOf
	NodeAnyOf
	NodeAny
)

func (k NodeKind) String() string {
	switch k {
	case NodePrimitive:
		return "primitive"
	case NodeTimestamp:
		return "timestamp"
	case NodeEnum:
		return "enum"
	case NodeConst:
		return "const"
	case NodeArray:
		return "array"
	case NodeMap:
		return "map"
	case NodeObject:
		return "object"
	case NodeOneOf:
		return "oneOf"
	case NodeAnyOf:
		return "anyOf"
	default:
		return "any"
	}
}

// Schema is the root IR node interface.
type Schema interface {
	Kind() NodeKind
}

// Named is implemented by nodes that become a Go type declaration.
type Named interface {
	Schema
	TypeName() string
}

// Primitive represents string/integer/number/boolean values.
type Primitive struct {
	Name    string   // "string"|"integer"|"number"|"boolean" (JSON Schema names)
	Minimum *float64 // optional inclusive minimum for numbers
}

func (p *Primitive) Kind() NodeKind { return NodePrimitive }

// Timestamp is a date-time string that must carry a zone offset.
type Timestamp struct{}

func (t *Timestamp) Kind() NodeKind { return NodeTimestamp }

// Enum is a closed set of string members rendered as a named type.
type Enum struct {
	Name   string
	Doc    string
	Values []string
	// Consts holds the Go constant name of each member, index-aligned with Values.
	Consts []string
}

func (e *Enum) Kind() NodeKind   { return NodeEnum }
func (e *Enum) TypeName() string { return e.Name }

// Has reports whether v is a member.
func (e *Enum) Has(v string) bool {
	for _, x := range e.Values {
		if x == v {
			return true
		}
	}
	return false
}

// ConstName returns the Go constant declared for member v, or "".
func (e *Enum) ConstName(v string) string {
	for i, x := range e.Values {
		if x == v && i < len(e.Consts) {
			return e.Consts[i]
		}
	}
	return ""
}

// Const accepts exactly one value. Enum is set when the value belongs to a
// named enumeration (for example a union tag), nil for a plain string.
type Const struct {
	Value string
	Enum  *Enum
}

func (c *Const) Kind() NodeKind { return NodeConst }

// Array represents an array of items.
type Array struct {
	Item     Schema
	MinItems *int
}

func (a *Array) Kind() NodeKind { return NodeArray }

// Map is a free-form object whose values share one schema.
type Map struct {
	Value Schema
}

func (m *Map) Kind() NodeKind { return NodeMap }

// Object represents an object with fields and policies.
type Object struct {
	Name          string
	Doc           string
	Fields        []Field
	UnknownPolicy int // mirrors statlog.UnknownPolicy; kept as int to decouple layers
}

func (o *Object) Kind() NodeKind   { return NodeObject }
func (o *Object) TypeName() string { return o.Name }

// Field returns the field with the given JSON name.
func (o *Object) Field(name string) (Field, bool) {
	for _, f := range o.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Field maps a JSON name to a Schema.
type Field struct {
	Name     string // JSON name
	GoName   string
	Schema   Schema
	Required bool
	Nullable bool
	Default  any // optional materialized default (wire shape)
	Doc      string
}

// OneOf represents a discriminated union.
type OneOf struct {
	Name          string
	Doc           string
	Discriminator string
	Tag           *Enum // enumeration of every variant tag
	Variants      []Variant
}

func (u *OneOf) Kind() NodeKind   { return NodeOneOf }
func (u *OneOf) TypeName() string { return u.Name }

// Variant is one alternative of a OneOf.
type Variant struct {
	Tag    string
	Object *Object
}

// AnyOf is an untagged value tried against Shapes in order.
type AnyOf struct {
	Shapes []Shape
}

func (a *AnyOf) Kind() NodeKind { return NodeAnyOf }

// Shape is one candidate of an AnyOf. Name is the Go type expression of the
// shape ("string", "ValueItem", "[]ValueItem").
type Shape struct {
	Name   string
	Schema Schema
}

// Any accepts every value.
type Any struct{}

func (a *Any) Kind() NodeKind { return NodeAny }

// Model is the IR of one schema document.
type Model struct {
	Source string  // schema file name
	Root   *Object // the primary type
	// Types lists every named declaration in emission order (root first).
	Types []Named
}

// TypeExpr returns the Go type expression used for values of s.
func TypeExpr(s Schema) string {
	switch n := s.(type) {
	case *Primitive:
		switch n.Name {
		case "integer":
			return "int64"
		case "number":
			return "float64"
		case "boolean":
			return "bool"
		default:
			return "string"
		}
	case *Timestamp:
		return "time.Time"
	case *Enum:
		return n.Name
	case *Const:
		if n.Enum != nil {
			return n.Enum.Name
		}
		return "string"
	case *Array:
		return "[]" + TypeExpr(n.Item)
	case *Map:
		return "map[string]" + TypeExpr(n.Value)
	case *Object:
		return n.Name
	case *OneOf:
		return n.Name
	default:
		return "any"
	}
}
