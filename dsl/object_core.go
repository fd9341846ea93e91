package dsl

import (
	"context"

	"github.com/reoring/statlog"
	"github.com/reoring/statlog/i18n"
	js "github.com/reoring/statlog/jsonschema"
)

type objectSchema struct {
	fields        map[string]AnyAdapter
	order         []string
	sortedKeys    []string
	required      map[string]struct{}
	unknownPolicy statlog.UnknownPolicy
	unknownTarget string
	title         string
}

// Ensure objectSchema implements statlog.Schema[map[string]any]
var _ statlog.Schema[map[string]any] = (*objectSchema)(nil)

func requiredIssue(k string) statlog.Issue {
	return statlog.Issue{Path: pointerToken(k), Code: statlog.CodeRequired, Message: i18n.T(statlog.CodeRequired, nil), Hint: "required property missing"}
}

// collectKnown parses known fields in key order, applies defaults and enforces
// required fields.
func (o *objectSchema) collectKnown(ctx context.Context, src map[string]any) (map[string]any, statlog.Issues) {
	out := make(map[string]any, len(src))
	var iss statlog.Issues
	for _, k := range o.sortedKeys {
		ad := o.fields[k]
		if val, exists := src[k]; exists {
			parsed, err := ad.Parse(ctx, val)
			if err != nil {
				iss = statlog.AppendIssues(iss, issuesAt(pointerToken(k), err)...)
				if statlog.IsFailFast(ctx) {
					return out, iss
				}
				continue
			}
			out[k] = parsed
			continue
		}
		// missing: apply default if provided; otherwise enforce required
		if ad.applyDefault != nil {
			dv, err := ad.applyDefault(ctx)
			if err != nil {
				iss = statlog.AppendIssues(iss, issuesAt(pointerToken(k), err)...)
			} else {
				out[k] = dv
			}
			continue
		}
		if _, req := o.required[k]; req {
			iss = statlog.AppendIssues(iss, requiredIssue(k))
			if statlog.IsFailFast(ctx) {
				return out, iss
			}
		}
	}
	return out, iss
}

// collectUnknown processes unknown keys according to unknownPolicy and may write into out for passthrough.
func (o *objectSchema) collectUnknown(src map[string]any, out map[string]any) statlog.Issues {
	var iss statlog.Issues
	for _, k := range sortedKeys(src) {
		if _, known := o.fields[k]; known {
			continue
		}
		switch o.unknownPolicy {
		case statlog.UnknownStrict:
			iss = statlog.AppendIssues(iss, statlog.Issue{Path: pointerToken(k), Code: statlog.CodeUnknownKey, Message: i18n.T(statlog.CodeUnknownKey, nil), Params: map[string]any{"key": k}})
		case statlog.UnknownStrip:
			// drop
		case statlog.UnknownPassthrough:
			extra, _ := out[o.unknownTarget].(map[string]any)
			if extra == nil {
				extra = map[string]any{}
			}
			extra[k] = src[k]
			out[o.unknownTarget] = extra
		}
	}
	return iss
}

func (o *objectSchema) Parse(ctx context.Context, v any) (map[string]any, error) {
	src, ok := v.(map[string]any)
	if !ok {
		return nil, statlog.Issues{invalidType(v, "object")}
	}
	out, iss := o.collectKnown(ctx, src)
	if statlog.IsFailFast(ctx) && len(iss) > 0 {
		return nil, iss
	}
	iss = statlog.AppendIssues(iss, o.collectUnknown(src, out)...)
	if len(iss) > 0 {
		iss.Sort()
		return nil, iss
	}
	return out, nil
}

func (o *objectSchema) Validate(ctx context.Context, v any) error {
	_, err := o.Parse(ctx, v)
	return err
}

// ValidateValue validates an already-built map: present fields through their
// typed rule, absent required fields, and unknown keys.
func (o *objectSchema) ValidateValue(ctx context.Context, v map[string]any) error {
	var iss statlog.Issues
	for _, k := range o.sortedKeys {
		if err := o.validateField(ctx, k, v[k], hasKey(v, k)); err != nil {
			iss = statlog.AppendIssues(iss, statlog.ToIssues("/", err)...)
			if statlog.IsFailFast(ctx) {
				return iss
			}
		}
	}
	if o.unknownPolicy == statlog.UnknownStrict {
		iss = statlog.AppendIssues(iss, o.collectUnknown(v, nil)...)
	}
	if len(iss) > 0 {
		iss.Sort()
		return iss
	}
	return nil
}

// validateField checks one field value; present=false means the field is absent.
func (o *objectSchema) validateField(ctx context.Context, k string, val any, present bool) error {
	ad, ok := o.fields[k]
	if !ok {
		return statlog.Issues{{Path: pointerToken(k), Code: statlog.CodeUnknownKey, Message: i18n.T(statlog.CodeUnknownKey, nil), Params: map[string]any{"key": k}}}
	}
	if !present {
		if _, req := o.required[k]; req {
			return statlog.Issues{requiredIssue(k)}
		}
		return nil
	}
	if err := ad.ValidateValue(ctx, val); err != nil {
		return issuesAt(pointerToken(k), err)
	}
	return nil
}

func (o *objectSchema) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Type: js.Types{"object"}, Title: o.title}
	for _, k := range o.order {
		ps, err := o.fields[k].JSONSchema()
		if err != nil {
			return nil, err
		}
		if ps == nil {
			ps = &js.Schema{}
		}
		out.Properties.Set(k, ps)
		if _, req := o.required[k]; req {
			out.Required = append(out.Required, k)
		}
	}
	switch o.unknownPolicy {
	case statlog.UnknownStrict:
		out.AdditionalProperties = js.False()
	default:
		// Strip accepts then discards; Passthrough keeps. Both accept in JSON Schema terms.
		out.AdditionalProperties = js.True()
	}
	return out, nil
}

func hasKey(m map[string]any, k string) bool {
	_, ok := m[k]
	return ok
}
