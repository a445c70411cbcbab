package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"skinini/internal/skinfile"
)

func newPreprocessCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "preprocess <skin.ini>",
		Short: "Print a skin file with comments stripped and backslashes escaped",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ctx.ensureLogger(); err != nil {
				return err
			}
			clean, err := skinfile.Clean(args[0])
			if err != nil {
				return err
			}
			if clean == "" {
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), clean)
			return nil
		},
	}
}
