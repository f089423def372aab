package inputmask

// Preset names a common format with a built-in pattern.
// Use these names in struct tags or form documents: `mask:"phone"`
type Preset string

const (
	PresetSSN    Preset = "ssn"    // 999-99-9999
	PresetPhone  Preset = "phone"  // (999) 999-9999
	PresetCard   Preset = "card"   // 9999 9999 9999 9999
	PresetDate   Preset = "date"   // 99/99/9999
	PresetTime   Preset = "time"   // 99:99
	PresetZip    Preset = "zip"    // 99999
	PresetUUID   Preset = "uuid"   // ********-****-****-****-************
	PresetPostal Preset = "postal" // A9A 9A9
)

// presetPatterns holds the pattern for every preset.
var presetPatterns = map[Preset]string{
	PresetSSN:    "999-99-9999",
	PresetPhone:  "(999) 999-9999",
	PresetCard:   "9999 9999 9999 9999",
	PresetDate:   "99/99/9999",
	PresetTime:   "99:99",
	PresetZip:    "99999",
	PresetUUID:   "********-****-****-****-************",
	PresetPostal: "A9A 9A9",
}

// IsValidPreset returns true if p is a known preset.
func IsValidPreset(p Preset) bool {
	_, ok := presetPatterns[p]
	return ok
}

// PresetPattern returns the pattern for p.
func PresetPattern(p Preset) (string, bool) {
	pattern, ok := presetPatterns[p]
	return pattern, ok
}

// expandPreset returns the preset pattern named by s, or s unchanged.
func expandPreset(s string) string {
	if pattern, ok := presetPatterns[Preset(s)]; ok {
		return pattern
	}
	return s
}

// Class names accepted in configuration documents in place of an expression.
const (
	ClassDigit        = "digit"
	ClassLetter       = "letter"
	ClassAlphanumeric = "alphanumeric"
)

// namedClasses maps class names to validator constructors.
var namedClasses = map[string]func() Validator{
	ClassDigit:        Digit,
	ClassLetter:       Letter,
	ClassAlphanumeric: Alphanumeric,
}
