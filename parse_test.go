package inputmask

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	defs := DefaultDefinitions()

	tests := []struct {
		pattern  string
		chars    string
		kinds    []SlotKind
		required []bool
	}{
		{
			pattern:  "99",
			chars:    "99",
			kinds:    []SlotKind{SlotToken, SlotToken},
			required: []bool{true, true},
		},
		{
			pattern:  "(A) * 9",
			chars:    "(A) * 9",
			kinds:    []SlotKind{SlotLiteral, SlotToken, SlotLiteral, SlotLiteral, SlotToken, SlotLiteral, SlotToken},
			required: []bool{false, true, false, false, true, false, true},
		},
		{
			pattern:  "9?99",
			chars:    "999",
			kinds:    []SlotKind{SlotToken, SlotToken, SlotToken},
			required: []bool{true, false, true},
		},
		{
			// The marker skips literals and applies to the next token only.
			pattern:  "9?-99",
			chars:    "9-99",
			kinds:    []SlotKind{SlotToken, SlotLiteral, SlotToken, SlotToken},
			required: []bool{true, false, false, true},
		},
		{
			pattern:  "?9?9",
			chars:    "99",
			kinds:    []SlotKind{SlotToken, SlotToken},
			required: []bool{false, false},
		},
		{
			// A trailing marker has nothing to apply to.
			pattern:  "99?",
			chars:    "99",
			kinds:    []SlotKind{SlotToken, SlotToken},
			required: []bool{true, true},
		},
		{
			pattern:  "a9",
			chars:    "a9",
			kinds:    []SlotKind{SlotLiteral, SlotToken},
			required: []bool{false, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			slots, err := Parse(tt.pattern, defs)
			require.NoError(t, err)
			require.Len(t, slots, len(tt.kinds))

			var chars []rune
			for i, s := range slots {
				chars = append(chars, s.Char)
				assert.Equal(t, tt.kinds[i], s.Kind, "slot %d kind", i)
				assert.Equal(t, tt.required[i], s.Required, "slot %d required", i)
			}
			assert.Equal(t, tt.chars, string(chars))
		})
	}
}

func TestParse_Errors(t *testing.T) {
	defs := DefaultDefinitions()

	_, err := Parse("", defs)
	assert.ErrorIs(t, err, ErrEmptyPattern)

	_, err = Parse("()_abc123", Definitions{})
	assert.ErrorIs(t, err, ErrNoTokens)

	_, err = Parse("()_abc", defs)
	require.ErrorIs(t, err, ErrNoTokens)

	var ce *ConfigError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "()_abc", ce.Pattern)

	_, err = Parse("???", defs)
	assert.ErrorIs(t, err, ErrNoTokens)
}

func TestParse_CustomDefinitions(t *testing.T) {
	fz, err := Class("[fz]")
	require.NoError(t, err)

	defs, err := Resolve(Definitions{'@': fz})
	require.NoError(t, err)

	slots, err := Parse("@193Ab", defs)
	require.NoError(t, err)
	assert.Equal(t, []SlotKind{SlotToken, SlotLiteral, SlotToken, SlotLiteral, SlotToken, SlotLiteral}, kinds(slots))
	assert.True(t, slots[0].Accept('f'))
	assert.False(t, slots[0].Accept('a'))
	assert.False(t, slots[1].Accept('1'), "literals accept nothing")
}

func TestSlotKind_String(t *testing.T) {
	assert.Equal(t, "literal", SlotLiteral.String())
	assert.Equal(t, "token", SlotToken.String())
	assert.Equal(t, "unknown", SlotKind(9).String())
}
