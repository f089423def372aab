package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "inputmask",
		Short:        "Format text against input masks",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newFormatCmd())
	rootCmd.AddCommand(newPlaceholderCmd())
	rootCmd.AddCommand(newCheckCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
