package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/inputmask"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "complete",
			args: []string{"format", "-m", "phone", "5551234567"},
			want: "(555) 123-4567\t5551234567\n",
		},
		{
			name: "incomplete",
			args: []string{"format", "-m", "99-99", "12"},
			want: "12-__\t<undefined>\n",
		},
		{
			name: "masked value",
			args: []string{"format", "-m", "99-99", "--masked", "1234"},
			want: "12-34\t12-34\n",
		},
		{
			name: "blur clears",
			args: []string{"format", "-m", "99-99", "--blur", "12"},
			want: "\t<undefined>\n",
		},
		{
			name: "fill character",
			args: []string{"format", "-m", "999", "--placeholder-char", "space", "1"},
			want: "1  \t<undefined>\n",
		},
		{
			name: "definitions",
			args: []string{"format", "-m", "@99", "-d", "@=[fz]", "f12", "a12"},
			want: "f12\t12\n___\t<undefined>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestFormat_Stdin(t *testing.T) {
	out, err := run(t, "1234\n12\n", "format", "-m", "99 99")
	require.NoError(t, err)
	assert.Equal(t, "12 34\t1234\n12 __\t<undefined>\n", out)
}

func TestFormat_Errors(t *testing.T) {
	_, err := run(t, "", "format", "-m", "()_abc", "1")
	assert.ErrorIs(t, err, inputmask.ErrNoTokens)

	_, err = run(t, "", "format", "-m", "999", "-d", "bad", "1")
	assert.Error(t, err)

	_, err = run(t, "", "format", "1")
	assert.Error(t, err, "mask flag is required")
}

func TestPlaceholder(t *testing.T) {
	out, err := run(t, "", "placeholder", "-m", "(999) 999-9999", "--placeholder-char", "X")
	require.NoError(t, err)
	assert.Equal(t, "(XXX) XXX-XXXX\n", out)

	out, err = run(t, "", "placeholder", "-m", "99?9", "--placeholder", "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc\n", out)
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "form.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`fields:
  - name: phone
    mask: phone
  - name: code
    mask: "@9"
    options:
      definitions:
        - token: "@"
          class: "[fz]"
`), 0o644))

	out, err := run(t, "", "check", good)
	require.NoError(t, err)
	assert.Equal(t, "phone\t(___) ___-____\ncode\t__\n", out)

	bad := filepath.Join(dir, "form.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"fields":[{"name":"ok","mask":"99"},{"name":"broken","mask":"abc"}]}`), 0o644))

	out, err = run(t, "", "check", bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, inputmask.ErrNoTokens)
	assert.Equal(t, "ok\t__\n", out)

	_, err = run(t, "", "check", filepath.Join(dir, "form.toml"))
	assert.Error(t, err)
}
