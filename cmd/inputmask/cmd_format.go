package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zoobzio/inputmask"
)

// maskFlags are the mask options shared by format and placeholder.
type maskFlags struct {
	mask            string
	placeholder     string
	placeholderChar string
	masked          bool
	definitions     []string
}

func (f *maskFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.mask, "mask", "m", "", "mask pattern or preset name")
	cmd.Flags().StringVar(&f.placeholder, "placeholder", "", "placeholder override, one character per position")
	cmd.Flags().StringVar(&f.placeholderChar, "placeholder-char", "", `fill character, or "space"`)
	cmd.Flags().BoolVar(&f.masked, "masked", false, "report the display value instead of the typed characters")
	cmd.Flags().StringArrayVarP(&f.definitions, "define", "d", nil, "token definition as TOKEN=CLASS, repeatable")
	_ = cmd.MarkFlagRequired("mask")
}

func (f *maskFlags) config() (inputmask.Config, error) {
	cfg := inputmask.Config{
		Placeholder:     f.placeholder,
		PlaceholderChar: f.placeholderChar,
	}
	if f.masked {
		cfg.ValueMode = inputmask.ValueMasked
	}
	for _, d := range f.definitions {
		token, class, ok := strings.Cut(d, "=")
		if !ok {
			return cfg, fmt.Errorf("definition %q: expected TOKEN=CLASS", d)
		}
		cfg.Definitions = append(cfg.Definitions, inputmask.Definition{Token: token, Class: class})
	}
	return cfg, nil
}

func (f *maskFlags) compile() (*inputmask.Mask, error) {
	cfg, err := f.config()
	if err != nil {
		return nil, err
	}
	return inputmask.Use(f.mask, cfg)
}

func newFormatCmd() *cobra.Command {
	var flags maskFlags
	var blur bool

	cmd := &cobra.Command{
		Use:   "format [value...]",
		Short: "Apply a mask to each value",
		Long: `Apply a mask to each value and print the display value and the
logical value separated by a tab. A value that does not complete the mask
has no logical value and prints <undefined>.

If no values are given, one value is read per line from stdin.

Use --blur to apply the blur transition, which clears incomplete values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := flags.compile()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) > 0 {
				for _, raw := range args {
					writeResult(out, m, raw, blur)
				}
				return nil
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				writeResult(out, m, scanner.Text(), blur)
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&blur, "blur", false, "clear values that do not complete the mask")
	return cmd
}

func writeResult(w io.Writer, m *inputmask.Mask, raw string, blur bool) {
	r := m.Apply(raw)
	if blur {
		r = m.Finalize(r)
	}
	value, ok := m.Value(r)
	if !ok {
		value = "<undefined>"
	}
	fmt.Fprintf(w, "%s\t%s\n", r.Display, value)
}
