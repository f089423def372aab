package inputmask

// ValueMode selects the logical value handed to consumers.
type ValueMode string

const (
	// ValueUnmasked yields only the characters typed into token slots.
	ValueUnmasked ValueMode = "unmasked"

	// ValueMasked yields the full display value, literals included.
	ValueMasked ValueMode = "masked"
)

// validValueModes contains all valid value modes for option validation.
var validValueModes = map[ValueMode]bool{
	ValueUnmasked: true,
	ValueMasked:   true,
}

// IsValidValueMode returns true if mode is a known value mode.
func IsValidValueMode(mode ValueMode) bool {
	return validValueModes[mode]
}

// ParseValueMode converts a configuration string to a ValueMode.
// The empty string selects ValueUnmasked.
func ParseValueMode(s string) (ValueMode, error) {
	if s == "" {
		return ValueUnmasked, nil
	}
	mode := ValueMode(s)
	if !IsValidValueMode(mode) {
		return "", newConfigError(ErrInvalidValueMode, "", s)
	}
	return mode, nil
}

// Value derives the logical value of r under mode.
//
// Incomplete and cleared results have no value (ok is false). In unmasked
// mode a complete result with no accepted characters has no value either.
// Partial input is therefore visible only in the display, never as data.
func (r Result) Value(mode ValueMode) (value string, ok bool) {
	if r.Cleared || !r.Complete {
		return "", false
	}
	if mode == ValueMasked {
		return r.Display, true
	}
	if r.Filled == 0 {
		return "", false
	}
	return r.Unmasked, true
}

// Value derives the logical value of r under the mask's value mode.
func (m *Mask) Value(r Result) (string, bool) {
	return r.Value(m.mode)
}
