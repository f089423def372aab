package inputmask

import (
	"context"
	"errors"
)

// PlaceholderCharSpace is the configuration alias for a space fill character.
const PlaceholderCharSpace = "space"

// DefaultEvents are the adapter events that re-apply the mask when a field
// configuration names none.
var DefaultEvents = []string{"input", "keyup", "click", "focus"}

// Definition declares a token in a configuration document.
// Class is a character-class expression such as "[fz]" or one of the names
// digit, letter, or alphanumeric.
type Definition struct {
	Token string `json:"token" yaml:"token" xml:"token,attr" msgpack:"token" bson:"token"`
	Class string `json:"class" yaml:"class" xml:"class,attr" msgpack:"class" bson:"class"`
}

// Config is the serializable configuration of one masked field.
type Config struct {
	// Placeholder overrides the placeholder text, one character per slot.
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty" xml:"placeholder,omitempty" msgpack:"placeholder,omitempty" bson:"placeholder,omitempty"`

	// PlaceholderChar is the fill character: empty for "_", a single
	// character, or "space".
	PlaceholderChar string `json:"placeholder_char,omitempty" yaml:"placeholder_char,omitempty" xml:"placeholder_char,omitempty" msgpack:"placeholder_char,omitempty" bson:"placeholder_char,omitempty"`

	// ClearOnBlur defaults to true when nil.
	ClearOnBlur *bool `json:"clear_on_blur,omitempty" yaml:"clear_on_blur,omitempty" xml:"clear_on_blur,omitempty" msgpack:"clear_on_blur,omitempty" bson:"clear_on_blur,omitempty"`

	// ValueMode defaults to ValueUnmasked when empty.
	ValueMode ValueMode `json:"value_mode,omitempty" yaml:"value_mode,omitempty" xml:"value_mode,omitempty" msgpack:"value_mode,omitempty" bson:"value_mode,omitempty"`

	// Definitions are field-level tokens merged over the default layer.
	Definitions []Definition `json:"definitions,omitempty" yaml:"definitions,omitempty" xml:"definitions>definition,omitempty" msgpack:"definitions,omitempty" bson:"definitions,omitempty"`

	// Events lists the adapter events that re-apply the mask.
	Events []string `json:"events,omitempty" yaml:"events,omitempty" xml:"events>event,omitempty" msgpack:"events,omitempty" bson:"events,omitempty"`
}

// Options converts the configuration into compile options.
func (c Config) Options() ([]Option, error) {
	fill, err := parsePlaceholderChar(c.PlaceholderChar)
	if err != nil {
		return nil, err
	}

	mode, err := ParseValueMode(string(c.ValueMode))
	if err != nil {
		return nil, err
	}

	defs, err := buildDefinitions(c.Definitions)
	if err != nil {
		return nil, err
	}

	clearOnBlur := true
	if c.ClearOnBlur != nil {
		clearOnBlur = *c.ClearOnBlur
	}

	return []Option{
		WithPlaceholder(c.Placeholder),
		WithPlaceholderChar(fill),
		WithClearOnBlur(clearOnBlur),
		WithValueMode(mode),
		WithDefinitions(defs),
	}, nil
}

// Compile compiles pattern, or the preset it names, with this configuration.
// Options in opts are applied first, so the configuration wins on conflict.
func (c Config) Compile(pattern string, opts ...Option) (*Mask, error) {
	own, err := c.Options()
	if err != nil {
		return nil, withPattern(err, pattern)
	}
	all := make([]Option, 0, len(opts)+len(own))
	all = append(all, opts...)
	all = append(all, own...)
	return Compile(expandPreset(pattern), all...)
}

// triggers returns the set of events that re-apply the mask.
func (c Config) triggers() map[string]bool {
	events := c.Events
	if len(events) == 0 {
		events = DefaultEvents
	}
	set := make(map[string]bool, len(events))
	for _, e := range events {
		set[e] = true
	}
	return set
}

// parsePlaceholderChar resolves the fill character option.
func parsePlaceholderChar(s string) (rune, error) {
	if s == "" {
		return DefaultPlaceholderChar, nil
	}
	if s == PlaceholderCharSpace {
		return ' ', nil
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, newConfigError(ErrInvalidPlaceholderChar, "", s)
	}
	return runes[0], nil
}

// buildDefinitions turns document definitions into validators.
func buildDefinitions(in []Definition) (Definitions, error) {
	if len(in) == 0 {
		return nil, nil
	}
	defs := make(Definitions, len(in))
	for _, d := range in {
		token, err := validateToken(d.Token)
		if err != nil {
			return nil, err
		}

		if ctor, ok := namedClasses[d.Class]; ok {
			defs[token] = ctor()
			continue
		}

		v, err := Class(d.Class)
		if err != nil {
			var ce *ConfigError
			if errors.As(err, &ce) {
				cp := *ce
				cp.Token = d.Token
				return nil, &cp
			}
			return nil, err
		}
		defs[token] = v
	}
	return defs, nil
}

// FieldConfig names a masked field in a form document.
type FieldConfig struct {
	Name    string `json:"name" yaml:"name" xml:"name,attr" msgpack:"name" bson:"name"`
	Mask    string `json:"mask" yaml:"mask" xml:"mask,attr" msgpack:"mask" bson:"mask"`
	Options Config `json:"options" yaml:"options" xml:"options" msgpack:"options" bson:"options"`
}

// FormConfig is a serializable set of masked fields. Its definitions sit
// between the default layer and each field's own definitions.
type FormConfig struct {
	Definitions []Definition  `json:"definitions,omitempty" yaml:"definitions,omitempty" xml:"definitions>definition,omitempty" msgpack:"definitions,omitempty" bson:"definitions,omitempty"`
	Fields      []FieldConfig `json:"fields" yaml:"fields" xml:"fields>field" msgpack:"fields" bson:"fields"`
}

// Form holds the fields built from a FormConfig.
type Form struct {
	fields map[string]*Field
	names  []string
}

// NewForm builds a field for every entry in cfg. Invalid form-level
// definitions and duplicate names are errors; a field whose own mask is
// invalid is still built, with masking disabled, and reported by Err.
func NewForm(ctx context.Context, cfg FormConfig) (*Form, error) {
	shared, err := buildDefinitions(cfg.Definitions)
	if err != nil {
		return nil, err
	}

	f := &Form{fields: make(map[string]*Field, len(cfg.Fields))}
	for _, fc := range cfg.Fields {
		if fc.Name == "" {
			return nil, &ConfigError{Err: ErrInvalidForm, Pattern: fc.Mask, Cause: errMissingName}
		}
		if _, dup := f.fields[fc.Name]; dup {
			return nil, &ConfigError{Err: ErrInvalidForm, Pattern: fc.Mask, Field: fc.Name, Cause: errDuplicateName}
		}
		field := newField(ctx, fc.Name, fc.Mask, fc.Options, WithDefinitions(shared))
		f.fields[fc.Name] = field
		f.names = append(f.names, fc.Name)
	}
	return f, nil
}

// LoadForm decodes a form document with c and builds its fields.
func LoadForm(ctx context.Context, c Codec, data []byte) (*Form, error) {
	var cfg FormConfig
	if err := c.Unmarshal(data, &cfg); err != nil {
		return nil, newCodecError(ErrDecode, err)
	}
	return NewForm(ctx, cfg)
}

// Field returns the named field.
func (f *Form) Field(name string) (*Field, bool) {
	field, ok := f.fields[name]
	return field, ok
}

// Names returns field names in document order.
func (f *Form) Names() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

// Err joins the configuration errors of every field, or returns nil.
func (f *Form) Err() error {
	var errs []error
	for _, name := range f.names {
		if err := f.fields[name].Err(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
