// Package model holds the Go types generated from the schemas in ../schemas.
// Every type rejects unknown keys, re-validates on assignment through its
// Set methods, and reports all violations of a payload as statlog.Issues.
package model

//go:generate go run ../cmd/statlog generate --engine=builtin --schemas-dir ../schemas --out-dir .
