package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlaceholderCmd() *cobra.Command {
	var flags maskFlags

	cmd := &cobra.Command{
		Use:   "placeholder",
		Short: "Print the placeholder text of a mask",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := flags.compile()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), m.Placeholder())
			return err
		},
	}

	flags.register(cmd)
	return cmd
}
