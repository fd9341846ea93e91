// Package codegen drives model generation: schema discovery, output naming,
// the replaceable generation engine, batch runs and watch mode.
package codegen

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoSchemas is returned when discovery finds nothing to generate.
var ErrNoSchemas = errors.New("no schema files found")

// SchemaSuffix is the conventional schema file suffix.
const SchemaSuffix = "-json-schema.json"

// Discover returns the schema files to generate. Explicit paths win and keep
// their order. Otherwise dir is scanned (not recursively) for *-json-schema.json
// files; when there are none, every *.json file in dir is used and a warning
// lists them, since unrelated JSON files may be picked up that way.
// Discovered paths are absolute and sorted.
func Discover(dir string, explicit []string, log *slog.Logger) ([]string, error) {
	if log == nil {
		log = slog.Default()
	}
	if len(explicit) > 0 {
		out := make([]string, 0, len(explicit))
		for _, p := range explicit {
			abs, err := filepath.Abs(p)
			if err != nil {
				return nil, fmt.Errorf("resolving %s: %w", p, err)
			}
			out = append(out, abs)
		}
		return out, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading schema directory: %w", err)
	}
	var conventional, anyJSON []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, SchemaSuffix) {
			conventional = append(conventional, name)
		}
		if strings.HasSuffix(name, ".json") {
			anyJSON = append(anyJSON, name)
		}
	}
	picked := conventional
	if len(picked) == 0 && len(anyJSON) > 0 {
		picked = anyJSON
		log.Warn("No *"+SchemaSuffix+" files found; falling back to every *.json file", "dir", dir, "files", anyJSON)
	}
	if len(picked) == 0 {
		return nil, fmt.Errorf("%w under %s", ErrNoSchemas, dir)
	}

	out := make([]string, 0, len(picked))
	for _, name := range picked {
		abs, err := filepath.Abs(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", name, err)
		}
		out = append(out, abs)
	}
	sort.Strings(out)
	return out, nil
}

// OutputName derives the Go file name for a schema file:
// change-data-log-json-schema.json -> change_data_log.go. Only the first
// matching suffix of "-json-schema" and "-schema" is stripped; an empty
// result falls back to model.go.
func OutputName(schemaPath string) string {
	base := filepath.Base(schemaPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	for _, suffix := range []string{"-json-schema", "-schema"} {
		if strings.HasSuffix(stem, suffix) {
			stem = strings.TrimSuffix(stem, suffix)
			break
		}
	}
	stem = strings.ReplaceAll(stem, "-", "_")
	if stem == "" {
		stem = "model"
	}
	return stem + ".go"
}
