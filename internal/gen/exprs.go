package gen

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	ir "github.com/reoring/statlog/internal/ir"
)

// schemaVar is the package-level variable holding the runtime schema of a
// named type: ChangeDataLog -> changeDataLogSchema.
func schemaVar(name string) string {
	r, n := utf8.DecodeRuneInString(name)
	// keep leading initialisms readable: IDCard -> idCardSchema
	i := n
	for i < len(name) {
		r2, n2 := utf8.DecodeRuneInString(name[i:])
		if !unicode.IsUpper(r2) {
			break
		}
		if i+n2 < len(name) {
			r3, _ := utf8.DecodeRuneInString(name[i+n2:])
			if unicode.IsLower(r3) {
				break
			}
		}
		i += n2
	}
	if i == n {
		return string(unicode.ToLower(r)) + name[n:] + "Schema"
	}
	return strings.ToLower(name[:i]) + name[i:] + "Schema"
}

// fieldType is the Go type of a struct field. Optional fields without a
// default become pointers (nil = absent) unless the type already has a nil
// value.
func fieldType(f ir.Field) string {
	base := ir.TypeExpr(f.Schema)
	if (f.Required || f.Default != nil) && !f.Nullable {
		return base
	}
	if hasNil(f.Schema) {
		return base
	}
	return "*" + base
}

func hasNil(s ir.Schema) bool {
	switch s.(type) {
	case *ir.Array, *ir.Map, *ir.OneOf, *ir.AnyOf, *ir.Any:
		return true
	}
	return false
}

func jsonTag(f ir.Field) string {
	if f.Required || f.Default != nil {
		return fmt.Sprintf("`json:%q`", f.Name)
	}
	return fmt.Sprintf("`json:%q`", f.Name+",omitempty")
}

// schemaExpr renders an expression of type statlog.Schema[T] where T is
// ir.TypeExpr(s).
func schemaExpr(s ir.Schema) string {
	switch n := s.(type) {
	case *ir.Primitive:
		if n.Minimum != nil {
			return fmt.Sprintf("dsl.As[%s](%s)", ir.TypeExpr(n), adapterExpr(n))
		}
		switch n.Name {
		case "integer":
			return "dsl.Int64()"
		case "number":
			return "dsl.Float64()"
		case "boolean":
			return "dsl.Bool()"
		default:
			return "dsl.String()"
		}
	case *ir.Timestamp:
		return "dsl.Timestamp()"
	case *ir.Enum:
		return schemaVar(n.Name)
	case *ir.Const:
		if n.Enum != nil {
			return fmt.Sprintf("dsl.EnumOf(%s)", n.Enum.ConstName(n.Value))
		}
		return fmt.Sprintf("dsl.EnumOf[string](%q)", n.Value)
	case *ir.Array:
		if n.MinItems != nil {
			return fmt.Sprintf("dsl.Array(%s).Min(%d)", schemaExpr(n.Item), *n.MinItems)
		}
		return fmt.Sprintf("dsl.Array(%s)", schemaExpr(n.Item))
	case *ir.Map:
		return fmt.Sprintf("dsl.Map(%s)", schemaExpr(n.Value))
	case *ir.Object:
		return schemaVar(n.Name)
	case *ir.OneOf:
		return schemaVar(n.Name)
	case *ir.AnyOf:
		return fmt.Sprintf("dsl.As[any](%s)", adapterExpr(n))
	default:
		return "dsl.Any()"
	}
}

// adapterExpr renders an expression of type dsl.AnyAdapter for s.
func adapterExpr(s ir.Schema) string {
	switch n := s.(type) {
	case *ir.Primitive:
		if n.Minimum != nil {
			base := *n
			base.Minimum = nil
			return fmt.Sprintf("dsl.SchemaOf(%s).Min(%s)", schemaExpr(&base), formatFloat(*n.Minimum))
		}
		if n.Name == "string" {
			return "dsl.StringOf[string]()"
		}
	case *ir.Array:
		if n.MinItems != nil {
			return fmt.Sprintf("dsl.ArrayOfSchema(%s)", schemaExpr(n))
		}
		return fmt.Sprintf("dsl.ArrayOf(%s)", schemaExpr(n.Item))
	case *ir.Map:
		return fmt.Sprintf("dsl.MapOf(%s)", schemaExpr(n.Value))
	case *ir.AnyOf:
		var b strings.Builder
		b.WriteString("dsl.Shapes(")
		for _, sh := range n.Shapes {
			fmt.Fprintf(&b, "\n\t\tdsl.Shape(%q, %s),", sh.Name, adapterExpr(sh.Schema))
		}
		b.WriteString("\n\t)")
		return b.String()
	}
	return fmt.Sprintf("dsl.SchemaOf(%s)", schemaExpr(s))
}

// fieldExpr renders one Field(...) step of an object builder chain.
func fieldExpr(f ir.Field) string {
	ad := adapterExpr(f.Schema)
	if f.Nullable {
		ad += ".Nullable()"
	}
	step := fmt.Sprintf("Field(%q, %s)", f.Name, ad)
	switch {
	case f.Required:
		step += ".Required()"
	case f.Default != nil:
		step += fmt.Sprintf(".Default(%s)", literal(f.Default))
	default:
		step += ".Optional()"
	}
	return step
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// literal renders a decoded JSON default as a Go expression.
func literal(v any) string {
	switch x := v.(type) {
	case string:
		return strconv.Quote(x)
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return formatFloat(x)
	case []any:
		parts := make([]string, len(x))
		for i := range x {
			parts[i] = literal(x[i])
		}
		return "[]any{" + strings.Join(parts, ", ") + "}"
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = strconv.Quote(k) + ": " + literal(x[k])
		}
		return "map[string]any{" + strings.Join(parts, ", ") + "}"
	case nil:
		return "nil"
	default:
		return fmt.Sprintf("%#v", v)
	}
}

// usesTime reports whether any declared field of m holds a timestamp.
func usesTime(m *ir.Model) bool {
	for _, t := range m.Types {
		obj, ok := t.(*ir.Object)
		if !ok {
			continue
		}
		for _, f := range obj.Fields {
			if strings.Contains(fieldType(f), "time.Time") {
				return true
			}
		}
	}
	return false
}

// docLines turns a description into comment lines.
func docLines(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
