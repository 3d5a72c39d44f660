package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "forestree",
	Short: "Parse, validate, and describe hierarchical state machine trees",
	Long: `forestree works on the ASCII-art indented tree description consumed by
package syntax:
- parse    reports the vertex count and shape of a tree description.
- validate binds every vertex to a placeholder record and reports any
           defect package hsm's binder would reject (unknown/missing
           names, a region with no children).
- describe prints the bound hierarchy's structure as YAML.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

func readTreeFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
