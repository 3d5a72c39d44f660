package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "describe <tree file>",
		Short:   "Print a tree description's bound structure as YAML",
		Example: `  forestree describe hierarchy.txt`,
		Args:    cobra.ExactArgs(1),
		RunE:    runDescribe,
	}
	rootCmd.AddCommand(cmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	text, err := readTreeFile(args[0])
	if err != nil {
		return err
	}
	traits, err := bindPlaceholders(text)
	if err != nil {
		return err
	}
	out, err := traits.DescribeYAML()
	if err != nil {
		return fmt.Errorf("describe: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}
