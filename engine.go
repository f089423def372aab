package inputmask

// Result is the outcome of applying raw input to a mask.
type Result struct {
	// Display is the formatted value: literals, accepted characters, and
	// placeholder characters for unfilled token slots. Empty when Cleared.
	Display string

	// Unmasked holds the characters accepted into token slots, in order.
	Unmasked string

	// Filled counts token slots that received input.
	Filled int

	// Complete is true when every required token slot received input.
	Complete bool

	// Cleared is set by Finalize when an incomplete value was discarded.
	Cleared bool
}

// Apply formats raw input against the mask in a single greedy pass.
//
// Literal slots are always written and swallow a matching input character
// when one is next. Token slots take the next input character their
// validator accepts; rejected characters are dropped. Once input runs out,
// the remaining token slots show their placeholder character.
//
// Placeholder and literal characters trailing in their own positions are
// treated as empty, so applying a display value again yields the same
// display value.
func (m *Mask) Apply(raw string) Result {
	in := m.strip(raw)
	out := make([]rune, len(m.slots))
	unmasked := make([]rune, 0, len(in))

	pos := 0
	complete := true

	for i, slot := range m.slots {
		if slot.Kind == SlotLiteral {
			out[i] = slot.Char
			if pos < len(in) && in[pos] == slot.Char {
				pos++
			}
			continue
		}

		matched := false
		for pos < len(in) {
			r := in[pos]
			pos++
			if slot.Accept(r) {
				out[i] = r
				unmasked = append(unmasked, r)
				matched = true
				break
			}
		}

		if !matched {
			out[i] = m.placeholder[i]
			if slot.Required {
				complete = false
			}
		}
	}

	return Result{
		Display:  string(out),
		Unmasked: string(unmasked),
		Filled:   len(unmasked),
		Complete: complete,
	}
}

// strip drops placeholder and literal characters left in their own positions
// after the last real character, so a display value carries only the
// characters that filled it.
func (m *Mask) strip(raw string) []rune {
	runes := []rune(raw)

	last := -1
	for i, r := range runes {
		if !m.positional(i, r) {
			last = i
		}
	}

	in := make([]rune, 0, len(runes))
	for i, r := range runes {
		if i >= len(m.slots) {
			in = append(in, r)
			continue
		}
		if i > last && m.positional(i, r) {
			continue
		}
		in = append(in, r)
	}
	return in
}

// positional reports whether r at index i is a literal or placeholder
// character sitting in its own slot.
func (m *Mask) positional(i int, r rune) bool {
	if i >= len(m.slots) {
		return false
	}
	if m.slots[i].Kind == SlotLiteral {
		return r == m.slots[i].Char
	}
	return r == m.placeholder[i]
}

// Finalize applies the blur transition. An incomplete result is replaced by
// a cleared one when the mask clears on blur; anything else passes through.
// A cleared result has an empty display, which leaves the field showing its
// placeholder, and no logical value.
func (m *Mask) Finalize(r Result) Result {
	if !m.clearOnBlur || r.Complete || r.Cleared {
		return r
	}
	return Result{Cleared: true}
}

// Format renders a model value for display. Unlike Apply it shows nothing
// for a value that does not complete the mask. The model value itself is
// never rewritten.
func (m *Mask) Format(model string) string {
	if model == "" {
		return ""
	}
	r := m.Apply(model)
	if !r.Complete {
		return ""
	}
	return r.Display
}
