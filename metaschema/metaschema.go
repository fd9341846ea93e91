// Package metaschema checks schema documents against the JSON Schema Draft
// 2020-12 metaschema.
package metaschema

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	jsv "github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/ubuntu/decorate"

	"github.com/reoring/statlog"
	"github.com/reoring/statlog/i18n"
)

// Draft2020URL identifies the metaschema every document is checked against.
const Draft2020URL = "https://json-schema.org/draft/2020-12/schema"

var draft2020 = jsv.MustCompile(Draft2020URL)

// Check verifies that data (a JSON schema document) conforms to the Draft
// 2020-12 metaschema, whatever "$schema" the document declares.
// A non-conforming document yields statlog.Issues with one entry per leaf
// violation; Path is the location inside the document and
// Params["keyword"] the failing metaschema keyword.
func Check(name string, data []byte) (err error) {
	defer decorate.OnError(&err, "metaschema check of %s", name)

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return statlog.Issues{{Path: "/", Code: statlog.CodeParseError, Message: err.Error(), Cause: err}}
	}
	if err := draft2020.Validate(doc); err != nil {
		return toIssues(err)
	}

	// conforming documents must also compile: $ref targets and patterns resolve
	url := "mem:///" + strings.TrimPrefix(path.Clean("/"+name), "/")
	c := jsv.NewCompiler()
	c.Draft = jsv.Draft2020
	if err := c.AddResource(url, bytes.NewReader(data)); err != nil {
		return statlog.Issues{{Path: "/", Code: statlog.CodeParseError, Message: err.Error(), Cause: err}}
	}
	if _, err := c.Compile(url); err != nil {
		return toIssues(err)
	}
	return nil
}

// Result is the outcome for one file of a batch check.
type Result struct {
	Path string
	Err  error
}

// CheckFS checks every file in fsys matching pattern (path.Match syntax). A
// failing file never stops the batch; the returned slice has one Result per
// file in sorted order.
func CheckFS(fsys fs.FS, pattern string) ([]Result, error) {
	names, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	out := make([]Result, 0, len(names))
	for _, n := range names {
		data, err := fs.ReadFile(fsys, n)
		if err != nil {
			out = append(out, Result{Path: n, Err: err})
			continue
		}
		out = append(out, Result{Path: n, Err: Check(n, data)})
	}
	return out, nil
}

// CheckDir checks every *.json file directly inside dir.
func CheckDir(dir string) (rs []Result, err error) {
	defer decorate.OnError(&err, "metaschema check of %s", dir)

	return CheckFS(os.DirFS(dir), "*.json")
}

// Failed returns the results carrying an error.
func Failed(rs []Result) []Result {
	var out []Result
	for _, r := range rs {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}

func toIssues(err error) error {
	var ve *jsv.ValidationError
	var se *jsv.SchemaError
	switch {
	case errors.As(err, &ve):
	case errors.As(err, &se) && errors.As(se.Err, &ve):
	case se != nil:
		// unresolvable $ref, bad regex, etc.
		return statlog.Issues{{Path: "/", Code: statlog.CodeSchemaViolation, Message: se.Err.Error(), Cause: se.Err}}
	default:
		return statlog.Issues{{Path: "/", Code: statlog.CodeParseError, Message: err.Error(), Cause: err}}
	}
	var iss statlog.Issues
	collectLeaves(ve, &iss)
	iss.Sort()
	return iss
}

func collectLeaves(ve *jsv.ValidationError, iss *statlog.Issues) {
	if len(ve.Causes) == 0 {
		p := ve.InstanceLocation
		if p == "" {
			p = "/"
		}
		*iss = statlog.AppendIssues(*iss, statlog.Issue{
			Path:    p,
			Code:    statlog.CodeSchemaViolation,
			Message: fmt.Sprintf("%s: %s", i18n.T(statlog.CodeSchemaViolation, nil), ve.Message),
			Hint:    ve.AbsoluteKeywordLocation,
			Params:  map[string]any{"keyword": ve.KeywordLocation},
		})
		return
	}
	for _, c := range ve.Causes {
		collectLeaves(c, iss)
	}
}
