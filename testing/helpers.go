// Package testing provides fixtures and helpers for inputmask tests.
package testing

import (
	"context"
	"testing"

	"github.com/zoobzio/inputmask"
)

// MustCompile compiles pattern or fails the test.
func MustCompile(tb testing.TB, pattern string, opts ...inputmask.Option) *inputmask.Mask {
	tb.Helper()
	m, err := inputmask.Compile(pattern, opts...)
	if err != nil {
		tb.Fatalf("Compile(%q): %v", pattern, err)
	}
	return m
}

// Type feeds raw to f one character at a time, the way keystrokes arrive,
// and returns the snapshot after the last one.
func Type(ctx context.Context, f *inputmask.Field, raw string) inputmask.Snapshot {
	snap := f.Snapshot()
	view := snap.View
	for _, r := range raw {
		snap = f.Input(ctx, view+string(r))
		view = snap.View
	}
	return snap
}

// Scenario is one input case with its expected display and value.
type Scenario struct {
	Name     string
	Pattern  string
	Opts     []inputmask.Option
	Input    string
	Display  string
	Value    string
	HasValue bool
}

// Scenarios returns the canonical input cases shared by unit, integration,
// and benchmark suites.
func Scenarios() []Scenario {
	return []Scenario{
		{Name: "complete", Pattern: "(999) 999-9999", Input: "1234567890", Display: "(123) 456-7890", Value: "1234567890", HasValue: true},
		{Name: "partial", Pattern: "(999) 999-9999", Input: "12", Display: "(12_) ___-____"},
		{Name: "rejected", Pattern: "(999) 999-9999", Input: "1a2b3", Display: "(123) ___-____"},
		{Name: "too long", Pattern: "99 9", Input: "3333", Display: "33 3", Value: "333", HasValue: true},
		{Name: "literal typed", Pattern: "99/99/9999", Input: "12/31/1999", Display: "12/31/1999", Value: "12311999", HasValue: true},
		{Name: "optional", Pattern: "99?9", Input: "12", Display: "12_", Value: "12", HasValue: true},
		{Name: "masked", Pattern: "99-99", Opts: []inputmask.Option{inputmask.WithValueMode(inputmask.ValueMasked)}, Input: "1234", Display: "12-34", Value: "12-34", HasValue: true},
		{Name: "fill char", Pattern: "999", Opts: []inputmask.Option{inputmask.WithPlaceholderChar('X')}, Input: "1", Display: "1XX"},
		{Name: "empty", Pattern: "999", Input: "", Display: "___"},
	}
}

// Address is a nested fixture with a masked postal code.
type Address struct {
	Street string
	Zip    string `mask:"zip"`
}

// Contact is a fixture exercising every field shape Binder handles.
type Contact struct {
	Name     string
	Phone    string            `mask:"phone"`
	Birth    string            `mask:"date" mask.mode:"masked"`
	Cards    []string          `mask:"card"`
	Codes    map[string]string `mask:"AA-99"`
	Home     Address
	Work     *Address
	Nickname string
}

// Clone implements inputmask.Cloner[Contact].
func (c Contact) Clone() Contact {
	out := c
	if c.Cards != nil {
		out.Cards = make([]string, len(c.Cards))
		copy(out.Cards, c.Cards)
	}
	if c.Codes != nil {
		out.Codes = make(map[string]string, len(c.Codes))
		for k, v := range c.Codes {
			out.Codes[k] = v
		}
	}
	if c.Work != nil {
		w := *c.Work
		out.Work = &w
	}
	return out
}

// SampleContact returns a Contact holding logical values.
func SampleContact() Contact {
	return Contact{
		Name:  "Alice",
		Phone: "5551234567",
		Birth: "01/02/1990",
		Cards: []string{"4111111111111111"},
		Codes: map[string]string{"door": "AB12"},
		Home:  Address{Street: "1 Main", Zip: "90210"},
		Work:  &Address{Street: "2 Side", Zip: "10001"},
	}
}
