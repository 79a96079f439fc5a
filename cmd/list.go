// Package cmd — list command.
// Prints the numbered posts found in the export directory, so
// a number can be passed to convert or preview instead of a filename.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lukasmeier/mediumpress/core/source"
)

var listInputDir string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the posts found in the export directory",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listInputDir, "input-dir", "", "Directory containing Medium HTML exports")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dir := cfg.InputDir
	if listInputDir != "" {
		dir = listInputDir
	}

	src := source.NewDir(dir)
	names, err := src.List()
	if err != nil {
		return err
	}

	for i, name := range names {
		post, err := src.Load(name)
		switch {
		case errors.Is(err, source.ErrMissingMarkers):
			fmt.Fprintf(os.Stdout, "%2d. (not a post)\n    %s\n", i+1, name)
		case err != nil:
			fmt.Fprintf(os.Stdout, "%2d. (unreadable: %v)\n    %s\n", i+1, err, name)
		default:
			fmt.Fprintf(os.Stdout, "%2d. %s\n    %s\n", i+1, post.Title, name)
		}
	}
	fmt.Fprintf(os.Stdout, "\nTotal: %d HTML files found\n", len(names))
	return nil
}
