// Package dsl builds the runtime schemas that generated statlog models bind to.
//
// Every generated struct is validated by a typed object schema:
//
//	var valueItemSchema = dsl.ObjectOf[ValueItem]().
//		Field("variable_name", dsl.StringOf[string]()).Required().
//		Field("value", dsl.StringOf[string]()).Required().
//		UnknownStrict().
//		MustBind()
//
// Building blocks:
//
//   - String/StringOf, Int64, Float64, Bool, Any: primitives
//   - EnumOf: closed value sets over string-backed named types
//   - Timestamp: RFC 3339 date-time that must carry an offset
//   - Array/ArrayOf, Map/MapOf: containers
//   - Object (map-based) and ObjectOf[T] (struct-bound) with UnknownStrict by default
//   - UnionOf[I] and Object().Discriminator(...).OneOf(...): tag-dispatched unions
//   - Shapes: ordered structural trial for untagged polymorphic fields
//   - Assign: validate-then-commit field updates used by generated setters
//
// Issues are reported with JSON Pointer paths relative to the schema being
// parsed; containers rebase child issues under "/field" or "/index".
package dsl
