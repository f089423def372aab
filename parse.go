package inputmask

// SlotKind distinguishes fixed characters from input positions.
type SlotKind uint8

const (
	// SlotLiteral displays a fixed character and is inserted automatically.
	SlotLiteral SlotKind = iota
	// SlotToken accepts one input character that passes its validator.
	SlotToken
)

func (k SlotKind) String() string {
	switch k {
	case SlotLiteral:
		return "literal"
	case SlotToken:
		return "token"
	default:
		return "unknown"
	}
}

// Slot is one position of a parsed mask.
type Slot struct {
	Kind     SlotKind
	Char     rune // literal character, or the token character for SlotToken
	Required bool // always false for literals

	validator Validator
}

// Accept reports whether r may fill a token slot. Literal slots accept nothing.
func (s Slot) Accept(r rune) bool {
	return s.Kind == SlotToken && s.validator.Accept(r)
}

// Parse converts a pattern into its ordered slot sequence.
//
// A rune present in defs becomes a token slot. The optional marker '?' adds
// no slot; it makes the next token slot optional, skipping over any literals
// in between, and affects that one slot only. Every other rune is a literal.
// A trailing marker with no token slot after it is ignored.
func Parse(pattern string, defs Definitions) ([]Slot, error) {
	if pattern == "" {
		return nil, newConfigError(ErrEmptyPattern, pattern, "")
	}

	slots := make([]Slot, 0, len(pattern))
	optional := false
	tokens := 0

	for _, r := range pattern {
		if r == OptionalMarker {
			optional = true
			continue
		}

		if v, ok := defs[r]; ok {
			slots = append(slots, Slot{
				Kind:      SlotToken,
				Char:      r,
				Required:  !optional,
				validator: v,
			})
			optional = false
			tokens++
			continue
		}

		slots = append(slots, Slot{Kind: SlotLiteral, Char: r})
	}

	if tokens == 0 {
		return nil, newConfigError(ErrNoTokens, pattern, "")
	}

	return slots, nil
}
