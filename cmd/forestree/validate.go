package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "validate <tree file>",
		Short:   "Bind a tree description to placeholder records and report binder defects",
		Example: `  forestree validate hierarchy.txt`,
		Args:    cobra.ExactArgs(1),
		RunE:    runValidate,
	}
	rootCmd.AddCommand(cmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	text, err := readTreeFile(args[0])
	if err != nil {
		return err
	}
	if _, err := bindPlaceholders(text); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return nil
}
