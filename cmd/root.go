// Package cmd implements the mediumpress CLI using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lukasmeier/mediumpress/config"
	"github.com/lukasmeier/mediumpress/logger"
)

var (
	flagConfig  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mediumpress",
	Short: "mediumpress — convert Medium HTML exports into a WordPress import file",
	Long: `mediumpress converts a directory of Medium blog-post HTML exports into a
WordPress eXtended RSS (WXR) import file, downloading post images and
rewriting Medium links to your own domain.

Usage:
  mediumpress list
  mediumpress convert --domain example.de --all
  mediumpress convert --domain example.de 3
  mediumpress preview post.html --markdown`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// loadConfig resolves the run configuration: defaults, overridden by the
// --config file when given.
func loadConfig() (*config.Config, error) {
	if flagConfig == "" {
		return config.Default(), nil
	}
	return config.Load(flagConfig)
}

// newLogger builds the CLI logger honoring --verbose.
func newLogger() zerolog.Logger {
	level := "info"
	if flagVerbose {
		level = "debug"
	}
	return logger.New(level)
}
