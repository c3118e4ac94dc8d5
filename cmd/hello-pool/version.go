package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := color.New(color.FgCyan, color.Bold).Fprintf(cmd.OutOrStdout(), "hello-pool %s\n", version)
			return err
		},
	}
}
