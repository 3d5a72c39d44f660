package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nullforest/forestree/syntax"
)

func init() {
	cmd := &cobra.Command{
		Use:     "parse <tree file>",
		Short:   "Parse a tree description and report its shape",
		Example: `  forestree parse hierarchy.txt`,
		Args:    cobra.ExactArgs(1),
		RunE:    runParse,
	}
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	text, err := readTreeFile(args[0])
	if err != nil {
		return err
	}
	parsed, err := syntax.Parse(text)
	if err != nil {
		return err
	}
	arcs, names, regions := parsed.Flatten()
	regionCount := 0
	for _, r := range regions {
		if r {
			regionCount++
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "vertices: %d\narcs: %d\nregions: %d\nroot: %s\n", len(names), len(arcs), regionCount, names[0])
	return nil
}
