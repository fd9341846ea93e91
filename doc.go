// Package statlog validates statistical-production log records against
// schema-derived models.
//
// The root package holds the stable runtime contract shared by every
// generated model:
//
//   - Schema[T] (Parse/Validate/ValidateValue/JSONSchema)
//   - the Issues error model (JSON Pointer path, code, message)
//   - JSON sources and ParseFrom
//
// Schema builders live under dsl/, the schema document model under
// jsonschema/, metaschema conformance under metaschema/, and the generated
// models under model/.
//
// Typical usage:
//
//	rec, err := model.ParseChangeDataLogFrom(ctx, statlog.JSONBytes(data))
//	if iss, ok := statlog.AsIssues(err); ok {
//		for _, it := range iss {
//			fmt.Println(it.Path, it.Code, it.Message)
//		}
//	}
package statlog
