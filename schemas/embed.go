// Package schemas holds the repository's JSON Schema documents and the
// example payloads that must validate against them.
package schemas

import "embed"

// FS contains every *-json-schema.json document at its root and the example
// payloads under examples/<subject>/.
//
//go:embed *.json examples
var FS embed.FS

// Suffix is the naming convention for schema documents in FS.
const Suffix = "-json-schema.json"
