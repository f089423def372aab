package bson

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoobzio/inputmask"
)

func TestNew(t *testing.T) {
	c := New()
	require.NotNil(t, c)
	assert.Equal(t, "application/bson", c.ContentType())
}

func TestLoadForm_RoundTrip(t *testing.T) {
	c := New()
	keep := false

	original := inputmask.FormConfig{
		Definitions: []inputmask.Definition{{Token: "@", Class: "[fz]"}},
		Fields: []inputmask.FieldConfig{
			{Name: "phone", Mask: "(999) 999-9999", Options: inputmask.Config{PlaceholderChar: "X"}},
			{Name: "code", Mask: "@99-9", Options: inputmask.Config{ClearOnBlur: &keep, ValueMode: inputmask.ValueMasked}},
		},
	}

	data, err := c.Marshal(original)
	require.NoError(t, err)

	form, err := inputmask.LoadForm(context.Background(), c, data)
	require.NoError(t, err)
	require.NoError(t, form.Err())
	assert.Equal(t, []string{"phone", "code"}, form.Names())

	phone, ok := form.Field("phone")
	require.True(t, ok)
	assert.Equal(t, "(XXX) XXX-XXXX", phone.Placeholder())

	code, ok := form.Field("code")
	require.True(t, ok)
	snap := code.Input(context.Background(), "f111")
	assert.Equal(t, "f11-1", snap.View)
	assert.Equal(t, "f11-1", snap.Model)

	code.Input(context.Background(), "f1")
	snap = code.Blur(context.Background())
	assert.Equal(t, "f1_-_", snap.View, "clear_on_blur false keeps partial input")
}

func TestLoadForm_Invalid(t *testing.T) {
	_, err := inputmask.LoadForm(context.Background(), New(), []byte("invalid bson"))
	require.Error(t, err)
	assert.ErrorIs(t, err, inputmask.ErrDecode)
}
