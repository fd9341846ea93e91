package irbuild

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// initialisms are rendered in upper case, as golint expects.
var initialisms = map[string]bool{
	"API": true, "CSV": true, "HTTP": true, "ID": true, "JSON": true,
	"QC": true, "SQL": true, "URI": true, "URL": true, "UTC": true, "UUID": true,
}

// GoName converts a title, property name or enum member into an exported Go
// identifier: "change_details" -> "ChangeDetails", "unit_id" -> "UnitID",
// "ChangeDataLog" -> "ChangeDataLog", "OTHER_SOURCE" -> "OtherSource".
func GoName(s string) string {
	title := cases.Title(language.Und)
	var b strings.Builder
	for _, w := range words(s) {
		if up := strings.ToUpper(w); initialisms[up] {
			b.WriteString(up)
			continue
		}
		b.WriteString(title.String(w))
	}
	return b.String()
}

// identifier is GoName made safe for use on its own.
func identifier(s string) string {
	n := GoName(s)
	if n == "" {
		return "X"
	}
	if r := []rune(n)[0]; !unicode.IsLetter(r) {
		return "X" + n
	}
	return n
}

// words splits on separators and on lower-to-upper case changes.
func words(s string) []string {
	var out []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			out = append(out, string(cur))
			cur = cur[:0]
		}
	}
	rs := []rune(s)
	for i, r := range rs {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r) && i > 0 && unicode.IsLower(rs[i-1]):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return out
}

// nameFromFile derives a type name from a schema file name when the document
// has no title: "change-data-log-json-schema.json" -> "ChangeDataLog".
func nameFromFile(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	for _, suffix := range []string{"-json-schema", "-schema"} {
		if strings.HasSuffix(stem, suffix) {
			stem = strings.TrimSuffix(stem, suffix)
			break
		}
	}
	if n := GoName(stem); n != "" {
		return identifier(n)
	}
	return "Model"
}
