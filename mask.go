package inputmask

import (
	"context"
	"errors"
)

// DefaultPlaceholderChar fills unfilled token slots when no other character
// is configured.
const DefaultPlaceholderChar = '_'

// Mask is a compiled mask pattern.
//
// A Mask is immutable once compiled and safe for concurrent use. All of its
// formatting methods are pure: they read only their arguments and the
// compiled slots.
type Mask struct {
	pattern     string
	slots       []Slot
	placeholder []rune // per-slot placeholder character
	fill        rune
	override    bool // placeholder came from a custom override
	clearOnBlur bool
	mode        ValueMode
}

// settings collects compile-time options.
type settings struct {
	ctx         context.Context
	placeholder string
	fill        rune
	clearOnBlur bool
	mode        ValueMode
	defs        Definitions
}

// Option configures Compile.
type Option func(*settings)

// WithPlaceholder sets a custom placeholder. It must have one character per
// slot; otherwise it is ignored and the fill character is used instead.
func WithPlaceholder(placeholder string) Option {
	return func(s *settings) {
		s.placeholder = placeholder
	}
}

// WithPlaceholderChar sets the character shown in unfilled token slots.
func WithPlaceholderChar(r rune) Option {
	return func(s *settings) {
		s.fill = r
	}
}

// WithClearOnBlur controls whether Finalize clears incomplete values.
// The default is true.
func WithClearOnBlur(clear bool) Option {
	return func(s *settings) {
		s.clearOnBlur = clear
	}
}

// WithValueMode selects how logical values are derived.
func WithValueMode(mode ValueMode) Option {
	return func(s *settings) {
		s.mode = mode
	}
}

// WithDefinition adds a field-level token definition.
func WithDefinition(token rune, v Validator) Option {
	return func(s *settings) {
		if s.defs == nil {
			s.defs = make(Definitions)
		}
		s.defs[token] = v
	}
}

// WithDefinitions adds field-level token definitions. Later options win.
func WithDefinitions(defs Definitions) Option {
	return func(s *settings) {
		if s.defs == nil {
			s.defs = make(Definitions, len(defs))
		}
		for k, v := range defs {
			s.defs[k] = v
		}
	}
}

// WithContext sets the context passed to diagnostic signals.
func WithContext(ctx context.Context) Option {
	return func(s *settings) {
		s.ctx = ctx
	}
}

// Compile parses pattern against the default token layer merged with any
// field-level definitions and returns the compiled mask.
//
// Errors are *ConfigError values. A placeholder override of the wrong
// length is not an error: it is reported through SignalPlaceholderIgnored
// and the fill character is used instead.
func Compile(pattern string, opts ...Option) (*Mask, error) {
	s := settings{
		ctx:         context.Background(),
		fill:        DefaultPlaceholderChar,
		clearOnBlur: true,
		mode:        ValueUnmasked,
	}
	for _, opt := range opts {
		opt(&s)
	}

	if !IsValidValueMode(s.mode) {
		return nil, newConfigError(ErrInvalidValueMode, pattern, string(s.mode))
	}

	defs, err := Resolve(s.defs)
	if err != nil {
		return nil, withPattern(err, pattern)
	}

	slots, err := Parse(pattern, defs)
	if err != nil {
		return nil, err
	}

	m := &Mask{
		pattern:     pattern,
		slots:       slots,
		placeholder: make([]rune, len(slots)),
		fill:        s.fill,
		clearOnBlur: s.clearOnBlur,
		mode:        s.mode,
	}

	override := []rune(s.placeholder)
	m.override = len(override) == len(slots)
	if s.placeholder != "" && !m.override {
		emitPlaceholderIgnored(s.ctx, pattern, s.placeholder,
			newConfigError(ErrPlaceholderLength, pattern, s.placeholder))
	}

	for i, slot := range slots {
		switch {
		case m.override:
			m.placeholder[i] = override[i]
		case slot.Kind == SlotLiteral:
			m.placeholder[i] = slot.Char
		default:
			m.placeholder[i] = m.fill
		}
	}

	emitMaskCompiled(s.ctx, pattern, len(slots))
	return m, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string, opts ...Option) *Mask {
	m, err := Compile(pattern, opts...)
	if err != nil {
		panic("inputmask: Compile(" + pattern + "): " + err.Error())
	}
	return m
}

// Pattern returns the source pattern.
func (m *Mask) Pattern() string { return m.pattern }

// Len returns the number of slots, which is also the display length.
func (m *Mask) Len() int { return len(m.slots) }

// Slots returns a copy of the slot sequence.
func (m *Mask) Slots() []Slot {
	out := make([]Slot, len(m.slots))
	copy(out, m.slots)
	return out
}

// PlaceholderChar returns the fill character.
func (m *Mask) PlaceholderChar() rune { return m.fill }

// ClearOnBlur reports whether Finalize clears incomplete values.
func (m *Mask) ClearOnBlur() bool { return m.clearOnBlur }

// ValueMode returns the configured value mode.
func (m *Mask) ValueMode() ValueMode { return m.mode }

// Placeholder returns the placeholder text: the override when one of the
// right length was supplied, otherwise literals with the fill character in
// every token slot. Optional markers never appear in it.
func (m *Mask) Placeholder() string {
	return string(m.placeholder)
}

// withPattern attaches the pattern to a ConfigError, leaving other errors as-is.
func withPattern(err error, pattern string) error {
	var ce *ConfigError
	if errors.As(err, &ce) {
		cp := *ce
		cp.Pattern = pattern
		return &cp
	}
	return err
}
