package inputmask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_Value(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		raw     string
		mode    ValueMode
		want    string
		ok      bool
	}{
		{"unmasked complete", "(A) * 9", "abc123", ValueUnmasked, "ab1", true},
		{"masked complete", "(A) * 9", "abc123", ValueMasked, "(a) b 1", true},
		{"unmasked incomplete", "(A) * 9", "a", ValueUnmasked, "", false},
		{"masked incomplete", "(A) * 9", "a", ValueMasked, "", false},
		{"optional single slot", "9?99", "1", ValueUnmasked, "", false},
		{"optional unfilled", "**?9", "aa", ValueUnmasked, "aa", true},
		{"optional unfilled masked", "**?9", "aa", ValueMasked, "aa_", true},
		{"all optional nothing typed", "?9", "", ValueUnmasked, "", false},
		{"all optional nothing typed masked", "?9", "", ValueMasked, "_", true},
		{"model and mask change", "99-9", "123", ValueUnmasked, "123", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MustCompile(tt.pattern)
			got, ok := m.Apply(tt.raw).Value(tt.mode)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResult_Value_Cleared(t *testing.T) {
	_, ok := Result{Cleared: true, Complete: true, Filled: 1}.Value(ValueMasked)
	assert.False(t, ok)
}

func TestMask_Value(t *testing.T) {
	m := MustCompile("99-99", WithValueMode(ValueMasked))
	v, ok := m.Value(m.Apply("1234"))
	require.True(t, ok)
	assert.Equal(t, "12-34", v)
}

func TestParseValueMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ValueMode
		wantErr bool
	}{
		{"", ValueUnmasked, false},
		{"unmasked", ValueUnmasked, false},
		{"masked", ValueMasked, false},
		{"Masked", "", true},
		{"raw", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseValueMode(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidValueMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsValidValueMode(t *testing.T) {
	assert.True(t, IsValidValueMode(ValueUnmasked))
	assert.True(t, IsValidValueMode(ValueMasked))
	assert.False(t, IsValidValueMode(""))
	assert.False(t, IsValidValueMode("view"))
}
