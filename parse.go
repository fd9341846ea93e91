package statlog

import (
	"context"
)

// ParseFrom is the primary entry point. It decodes the Source into an untyped
// value and delegates validation to the Schema.
func ParseFrom[T any](ctx context.Context, s Schema[T], src Source, opts ...ParseOpt) (T, error) {
	var zero T
	if s == nil {
		return zero, singleIssue(CodeParseError, "nil schema")
	}
	if src == nil {
		return zero, singleIssue(CodeParseError, "nil source")
	}

	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	// propagate fail-fast intent via context for schema implementations
	if opt.FailFast {
		ctx = WithFailFast(ctx, true)
	}
	v, err := src.Decode(opt)
	if err != nil {
		return zero, ToIssues("/", err)
	}
	return s.Parse(ctx, v)
}

// ValidateFrom decodes src and validates it against s without returning the value.
func ValidateFrom[T any](ctx context.Context, s Schema[T], src Source, opts ...ParseOpt) error {
	_, err := ParseFrom(ctx, s, src, opts...)
	return err
}
