package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/zoobzio/inputmask"
	"github.com/zoobzio/inputmask/json"
	"github.com/zoobzio/inputmask/xml"
	"github.com/zoobzio/inputmask/yaml"
)

// codecFor picks a codec from a form document's file extension.
func codecFor(path string) (inputmask.Codec, error) {
	switch ext := filepath.Ext(path); ext {
	case ".json":
		return json.New(), nil
	case ".xml":
		return xml.New(), nil
	case ".yaml", ".yml":
		return yaml.New(), nil
	default:
		return nil, fmt.Errorf("unsupported form document extension %q", ext)
	}
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Validate a form document",
		Long: `Load a form document and report every field whose mask does not
compile. The document format is chosen by extension: .json, .xml, .yaml
or .yml.

Each valid field prints its name and placeholder.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := codecFor(args[0])
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			form, err := inputmask.LoadForm(cmd.Context(), c, data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range form.Names() {
				field, _ := form.Field(name)
				if field.Err() != nil {
					continue
				}
				fmt.Fprintf(out, "%s\t%s\n", name, field.Placeholder())
			}
			return form.Err()
		},
	}
	return cmd
}
