package statlog

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// Source abstracts over payload inputs. Decode returns the untyped value tree
// (map[string]any, []any, string, json.Number, bool, nil).
type Source interface {
	Decode(opt ParseOpt) (any, error)
	// Name identifies the source in logs ("bytes", a file name, ...).
	Name() string
}

// JSONBytes wraps a byte slice as a JSON Source.
func JSONBytes(b []byte) Source { return &jsonSource{data: b, name: "bytes"} }

// JSONReader wraps an io.Reader as a JSON Source.
func JSONReader(r io.Reader) Source { return &jsonSource{r: r, name: "reader"} }

// NamedJSON wraps a byte slice read from name (usually a file path).
func NamedJSON(name string, b []byte) Source { return &jsonSource{data: b, name: name} }

type jsonSource struct {
	data []byte
	r    io.Reader
	name string
}

func (s *jsonSource) Name() string { return s.name }

func (s *jsonSource) Decode(opt ParseOpt) (any, error) {
	data := s.data
	if s.r != nil {
		rd := s.r
		if opt.MaxBytes > 0 {
			rd = io.LimitReader(rd, opt.MaxBytes+1)
		}
		b, err := io.ReadAll(rd)
		if err != nil {
			return nil, singleIssue(CodeParseError, err.Error())
		}
		data = b
	}
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return nil, Issues{{Path: "/", Code: CodeTruncated, Message: "max bytes exceeded", Params: map[string]any{"max": opt.MaxBytes}}}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: fmt.Sprintf("invalid JSON in %s", s.name), Cause: err}}
	}
	// a second value means trailing garbage
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: fmt.Sprintf("unexpected data after top-level value in %s", s.name), Cause: err}}
	}
	if !opt.AllowDuplicateKeys {
		if iss := duplicateKeys(data); len(iss) > 0 {
			return nil, iss
		}
	}
	return v, nil
}

func singleIssue(code, msg string) Issues {
	return AppendIssues(nil, Issue{Path: "/", Code: code, Message: msg})
}
