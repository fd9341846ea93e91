package statlog

import (
	"bytes"
	"encoding/json"
)

type jsonFrame struct {
	object  bool
	path    PathRef
	keys    map[string]struct{}
	wantKey bool
	key     string // key of the value being read
	index   int
}

// duplicateKeys reports every key that appears twice in the same object of
// data, which must be valid JSON. Decoding into a map keeps only the last
// value, so a repeated key would otherwise pass unnoticed.
func duplicateKeys(data []byte) Issues {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var iss Issues
	var stack []*jsonFrame

	// next is the path of the value about to be read.
	next := func() PathRef {
		if len(stack) == 0 {
			return Root()
		}
		top := stack[len(stack)-1]
		if top.object {
			return top.path.Field(top.key)
		}
		return top.path.Index(top.index)
	}
	// consumed marks the current value of the enclosing container as read.
	consumed := func() {
		if len(stack) == 0 {
			return
		}
		top := stack[len(stack)-1]
		if top.object {
			top.wantKey = true
			return
		}
		top.index++
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{':
				stack = append(stack, &jsonFrame{object: true, path: next(), keys: map[string]struct{}{}, wantKey: true})
			case '[':
				stack = append(stack, &jsonFrame{path: next()})
			default:
				stack = stack[:len(stack)-1]
				consumed()
			}
		case string:
			if n := len(stack); n > 0 && stack[n-1].object && stack[n-1].wantKey {
				top := stack[n-1]
				if _, dup := top.keys[v]; dup {
					iss = AppendIssues(iss, top.path.Field(v).Issue(CodeDuplicateKey, "", "key", v))
				}
				top.keys[v] = struct{}{}
				top.key = v
				top.wantKey = false
				continue
			}
			consumed()
		default:
			consumed()
		}
	}
	iss.Sort()
	return iss
}
