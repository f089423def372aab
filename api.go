// Package inputmask formats text input against structural masks such as
// phone numbers, dates, and codes, and derives the logical value behind the
// formatted text.
//
// # Pattern Syntax
//
// A mask pattern is read one character at a time:
//
//	9    one digit
//	A    one letter
//	*    one letter or digit
//	?    makes the next token optional; adds no position itself
//	     any other character is a literal, displayed and inserted verbatim
//
// Tokens can be added or overridden, process-wide with Define or per mask
// with WithDefinition. Per-mask definitions are merged over the defaults.
//
// # Basic Usage
//
//	m, err := inputmask.Compile("(999) 999-9999")
//	if err != nil {
//	    return err
//	}
//
//	r := m.Apply("5551234")
//	r.Display   // "(555) 123-4___"
//	r.Complete  // false
//
//	r = m.Apply("5551234567")
//	v, ok := m.Value(r) // "5551234567", true
//
//	m.Placeholder() // "(___) ___-____"
//
// # Logical Values
//
// A mask yields a logical value only when every required token is filled.
// ValueUnmasked (the default) yields the typed characters without literals;
// ValueMasked yields the full display value.
//
// # Fields
//
// Field wraps a mask with the state an input control needs: the view and
// model values, clear-on-blur, trigger events, and model rendering. A field
// whose mask is invalid passes input through unmasked and reports the error
// through SignalMaskDisabled.
//
// # Struct Tags
//
// Binder masks tagged string fields of a struct:
//
//	type Contact struct {
//	    Phone string `mask:"phone"`
//	    Birth string `mask:"99/99/9999" mask.mode:"masked"`
//	}
//
// # Presets
//
// Named patterns usable wherever a pattern is accepted:
//
//   - ssn: 999-99-9999
//   - phone: (999) 999-9999
//   - card: 9999 9999 9999 9999
//   - date: 99/99/9999
//   - time: 99:99
//   - zip: 99999
//   - uuid: ********-****-****-****-************
//   - postal: A9A 9A9
//
// # Configuration Documents
//
// Config and FormConfig decode through any Codec. Implementations are
// available as submodules:
//
//   - json - JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
package inputmask
