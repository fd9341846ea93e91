package dsl

import (
	"context"
	"fmt"

	"github.com/reoring/statlog"
)

// Assign validates v with the rule registered for field name on schema s and
// stores it in dst only when it passes. On failure dst keeps its previous
// value and the returned Issues are rooted at "/name". Generated setters are
// thin wrappers around Assign.
func Assign[F any](ctx context.Context, s any, name string, dst *F, v F) error {
	fv, ok := s.(FieldValidator)
	if !ok {
		return statlog.Issues{{Path: "/", Code: statlog.CodeParseError, Message: fmt.Sprintf("%T does not support field assignment", s)}}
	}
	out, err := fv.NormalizeField(ctx, name, v)
	if err != nil {
		return err
	}
	if n, ok := out.(F); ok {
		*dst = n
		return nil
	}
	*dst = v
	return nil
}
