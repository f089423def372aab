package inputmask

import (
	"regexp"
)

// OptionalMarker flags the next token slot of a pattern as optional.
const OptionalMarker = '?'

// Validator classifies a single input character for a token slot.
type Validator interface {
	// Accept reports whether r may fill the slot.
	Accept(r rune) bool
}

// ValidatorFunc adapts a plain function to the Validator interface.
type ValidatorFunc func(r rune) bool

// Accept calls f(r).
func (f ValidatorFunc) Accept(r rune) bool {
	return f(r)
}

// Definitions maps token characters to their validators.
type Definitions map[rune]Validator

// clone returns a shallow copy of d. A nil map yields an empty one.
func (d Definitions) clone() Definitions {
	out := make(Definitions, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') }

// Digit accepts one ASCII digit.
func Digit() Validator {
	return ValidatorFunc(isDigit)
}

// Letter accepts one ASCII letter.
func Letter() Validator {
	return ValidatorFunc(isLetter)
}

// Alphanumeric accepts one ASCII letter or digit.
func Alphanumeric() Validator {
	return ValidatorFunc(func(r rune) bool { return isDigit(r) || isLetter(r) })
}

// classValidator accepts runes matched in full by a compiled expression.
type classValidator struct {
	re *regexp.Regexp
}

func (v *classValidator) Accept(r rune) bool {
	return v.re.MatchString(string(r))
}

// String returns the source expression.
func (v *classValidator) String() string {
	return v.re.String()
}

// Class returns a validator built from a regular expression that describes
// one character, typically a bracket class such as "[fz]" or "[A-Z]".
// The expression is anchored so it must match the whole character.
func Class(expr string) (Validator, error) {
	if expr == "" {
		return nil, &ConfigError{Err: ErrInvalidDefinition, Cause: errEmptyClass}
	}
	re, err := regexp.Compile(`^(?:` + expr + `)$`)
	if err != nil {
		return nil, &ConfigError{Err: ErrInvalidDefinition, Cause: err}
	}
	return &classValidator{re: re}, nil
}

// validateToken enforces the single-character, non-marker token invariant.
func validateToken(token string) (rune, error) {
	runes := []rune(token)
	if len(runes) != 1 || runes[0] == OptionalMarker {
		return 0, newConfigError(ErrInvalidToken, "", token)
	}
	return runes[0], nil
}
