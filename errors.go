package inputmask

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrEmptyPattern indicates a mask pattern with no characters.
	ErrEmptyPattern = errors.New("empty mask pattern")

	// ErrNoTokens indicates a pattern made only of literals.
	ErrNoTokens = errors.New("mask pattern has no token positions")

	// ErrInvalidToken indicates a definition key that is not a single
	// character or collides with the optional marker.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidDefinition indicates a definition whose validator is missing
	// or whose character class does not compile.
	ErrInvalidDefinition = errors.New("invalid definition")

	// ErrPlaceholderLength indicates a placeholder override whose length
	// differs from the slot count. The override is ignored.
	ErrPlaceholderLength = errors.New("placeholder length mismatch")

	// ErrInvalidPlaceholderChar indicates a fill character that is neither a
	// single character nor a recognized alias.
	ErrInvalidPlaceholderChar = errors.New("invalid placeholder character")

	// ErrInvalidValueMode indicates an unknown value mode.
	ErrInvalidValueMode = errors.New("invalid value mode")

	// ErrInvalidTag indicates a struct tag has an invalid format or value.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrIncomplete indicates a value that does not fill every required slot.
	ErrIncomplete = errors.New("incomplete value")

	// ErrDecode indicates the codec failed to decode a configuration document.
	ErrDecode = errors.New("decode failed")

	// ErrInvalidForm indicates a form field with a missing or duplicate name.
	ErrInvalidForm = errors.New("invalid form field")
)

// Causes carried by ConfigError alongside its sentinel.
var (
	errEmptyClass    = errors.New("empty character class")
	errMissingName   = errors.New("missing name")
	errDuplicateName = errors.New("duplicate name")
)

// ConfigError represents a mask configuration error.
// It wraps a sentinel error with the pattern, token, or field that caused it.
type ConfigError struct {
	Err     error  // Underlying sentinel error (ErrNoTokens, ErrInvalidToken, etc.)
	Pattern string // Mask pattern being compiled
	Token   string // Offending token or option value
	Field   string // Struct or form field that declared the mask
	Cause   error  // Underlying failure, such as a character class parse error
}

func (e *ConfigError) Error() string {
	msg := e.Err.Error()
	if e.Token != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Token)
	}
	if e.Pattern != "" {
		msg = fmt.Sprintf("%s in pattern %q", msg, e.Pattern)
	}
	if e.Field != "" {
		msg = fmt.Sprintf("%s (field %s)", msg, e.Field)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *ConfigError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// FieldError represents a value that failed to reduce to a logical value.
type FieldError struct {
	Err   error  // Underlying sentinel error (ErrIncomplete)
	Field string // Field name that failed
	Value string // Display value at the time of failure
}

func (e *FieldError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("field %s: %s: %q", e.Field, e.Err.Error(), e.Value)
	}
	return fmt.Sprintf("field %s: %s", e.Field, e.Err.Error())
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// CodecError represents a configuration document decode error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrDecode)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newConfigError creates a ConfigError for pattern-level failures.
func newConfigError(sentinel error, pattern, token string) error {
	return &ConfigError{
		Err:     sentinel,
		Pattern: pattern,
		Token:   token,
	}
}

// newCodecError creates a CodecError for decode failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}

// withField attaches a field name to a ConfigError, leaving other errors as-is.
func withField(err error, field string) error {
	var ce *ConfigError
	if errors.As(err, &ce) {
		cp := *ce
		cp.Field = field
		return &cp
	}
	return err
}
