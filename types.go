package statlog

// UnknownPolicy controls how unknown keys are handled.
type UnknownPolicy int

const (
	UnknownStrict      UnknownPolicy = iota // Reject unknown keys with an error.
	UnknownStrip                            // Drop unknown keys.
	UnknownPassthrough                      // Preserve unknown keys under a target field.
)

// String returns the policy name used in logs and generated comments.
func (p UnknownPolicy) String() string {
	switch p {
	case UnknownStrip:
		return "strip"
	case UnknownPassthrough:
		return "passthrough"
	default:
		return "strict"
	}
}

// ParseOpt bundles parsing options.
type ParseOpt struct {
	// MaxBytes rejects inputs larger than the limit (0 disables the check).
	MaxBytes int64
	// FailFast stops at the first issue instead of collecting every one.
	FailFast bool
	// AllowDuplicateKeys keeps the last value of a repeated object key
	// instead of reporting duplicate_key.
	AllowDuplicateKeys bool
}
