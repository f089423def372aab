package inputmask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigest(t *testing.T) {
	yes, no := true, false

	base := digest("99-99", Config{}, 1)
	assert.Equal(t, base, digest("99-99", Config{}, 1), "deterministic")

	variants := map[string][32]byte{
		"pattern":          digest("99-999", Config{}, 1),
		"revision":         digest("99-99", Config{}, 2),
		"placeholder":      digest("99-99", Config{Placeholder: "MM-DD"}, 1),
		"placeholder char": digest("99-99", Config{PlaceholderChar: "X"}, 1),
		"mode":             digest("99-99", Config{ValueMode: ValueMasked}, 1),
		"clear true":       digest("99-99", Config{ClearOnBlur: &yes}, 1),
		"clear false":      digest("99-99", Config{ClearOnBlur: &no}, 1),
		"definition":       digest("99-99", Config{Definitions: []Definition{{Token: "@", Class: "[fz]"}}}, 1),
	}
	for name, d := range variants {
		assert.NotEqual(t, base, d, name)
	}
	assert.NotEqual(t, variants["clear true"], variants["clear false"])

	// Length prefixes keep adjacent fields apart.
	assert.NotEqual(t,
		digest("99", Config{Placeholder: "ab", PlaceholderChar: "c"}, 1),
		digest("99", Config{Placeholder: "a", PlaceholderChar: "bc"}, 1),
	)
}

func TestDigest_IgnoresEventsAndDefinitionOrder(t *testing.T) {
	a := Config{Definitions: []Definition{{Token: "@", Class: "[fz]"}, {Token: "#", Class: "digit"}}}
	b := Config{
		Definitions: []Definition{{Token: "#", Class: "digit"}, {Token: "@", Class: "[fz]"}},
		Events:      []string{"keyup"},
	}
	assert.Equal(t, digest("@#", a, 0), digest("@#", b, 0))
}
