package jsonschema

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ErrUnresolvedRef is returned by Resolve for references outside the document
// or pointing at a missing definition.
var ErrUnresolvedRef = errors.New("unresolved $ref")

// Parse decodes a schema document. name selects the syntax by extension:
// .yaml/.yml are read as YAML, everything else must be strict JSON.
func Parse(name string, data []byte) (*Schema, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
	default:
		// reject what YAML would tolerate but JSON does not (comments, bare keys)
		if !json.Valid(data) {
			var v any
			err := json.Unmarshal(data, &v)
			if err == nil {
				err = errors.New("invalid JSON")
			}
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
	}
	// JSON is decoded through yaml.Node so property order is preserved.
	s := &Schema{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return s, nil
}

// Load reads and parses a schema document from disk.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, data)
}

// LoadFS reads and parses a schema document from fsys.
func LoadFS(fsys fs.FS, name string) (*Schema, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	return Parse(name, data)
}

// Resolve follows a document-local reference ("#" or "#/$defs/Name") from root.
func Resolve(root *Schema, ref string) (*Schema, error) {
	if ref == "#" || ref == "" {
		return root, nil
	}
	if !strings.HasPrefix(ref, "#/") {
		return nil, fmt.Errorf("%w: %q is not document-local", ErrUnresolvedRef, ref)
	}
	tokens := strings.Split(strings.TrimPrefix(ref, "#/"), "/")
	for i := range tokens {
		tokens[i] = strings.ReplaceAll(strings.ReplaceAll(tokens[i], "~1", "/"), "~0", "~")
	}
	cur := root
	for i := 0; i < len(tokens); i++ {
		var next *Schema
		switch tokens[i] {
		case "$defs":
			if i+1 < len(tokens) {
				i++
				next = cur.Defs.Get(tokens[i])
			}
		case "properties":
			if i+1 < len(tokens) {
				i++
				next = cur.Properties.Get(tokens[i])
			}
		case "items":
			next = cur.Items
		}
		if next == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnresolvedRef, ref)
		}
		cur = next
	}
	return cur, nil
}

// DefName returns the definition name of a "#/$defs/Name" reference, or "".
func DefName(ref string) string {
	const prefix = "#/$defs/"
	if !strings.HasPrefix(ref, prefix) {
		return ""
	}
	name := strings.TrimPrefix(ref, prefix)
	if strings.Contains(name, "/") {
		return ""
	}
	return strings.ReplaceAll(strings.ReplaceAll(name, "~1", "/"), "~0", "~")
}
