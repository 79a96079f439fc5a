// Package cmd — preview command.
// Converts a single post and renders it as Markdown, JSON,
// or PDF so the migration can be reviewed before importing anything.
// Previews never download images; remote URLs are kept.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lukasmeier/mediumpress/core"
	"github.com/lukasmeier/mediumpress/core/output"
	"github.com/lukasmeier/mediumpress/core/render"
)

var (
	previewDomain   string
	previewInputDir string
	previewMarkdown bool
	previewJSON     bool
	previewPDF      bool
)

var previewCmd = &cobra.Command{
	Use:   "preview <file-or-number>",
	Short: "Render one converted post for review",
	Long: `Preview converts a single post and writes it in the chosen format,
without downloading images or producing an import file.

Examples:
  mediumpress preview 3 --markdown
  mediumpress preview 2019-07-04_My-Post-abc123def456.html --pdf --domain example.de`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVar(&previewDomain, "domain", "example.com", "Target site domain for link rewriting")
	previewCmd.Flags().StringVar(&previewInputDir, "input-dir", "", "Directory containing Medium HTML exports")
	previewCmd.Flags().BoolVar(&previewMarkdown, "markdown", false, "Output Markdown")
	previewCmd.Flags().BoolVar(&previewJSON, "json", false, "Output structured JSON")
	previewCmd.Flags().BoolVar(&previewPDF, "pdf", false, "Output PDF")
}

func runPreview(cmd *cobra.Command, args []string) error {
	renderer, err := selectRenderer()
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger()

	inputDir := cfg.InputDir
	if previewInputDir != "" {
		inputDir = previewInputDir
	}

	p, err := newPipeline(cfg, cleanDomain(previewDomain), inputDir, false, log)
	if err != nil {
		return err
	}

	name, err := resolveTarget(p.src, args[0])
	if err != nil {
		return err
	}
	rec, err := p.convertPost(context.Background(), name)
	if err != nil {
		return err
	}

	data, err := renderer.Render(rec)
	if err != nil {
		return err
	}

	writer, err := output.New("")
	if err != nil {
		return err
	}
	path, err := writer.Write(output.ForSource(name, renderer.Extension()), data)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	return nil
}

// selectRenderer checks that exactly one format flag is set and returns the
// matching renderer.
func selectRenderer() (core.Renderer, error) {
	count := 0
	for _, set := range []bool{previewMarkdown, previewJSON, previewPDF} {
		if set {
			count++
		}
	}
	if count != 1 {
		return nil, fmt.Errorf("exactly one output format is required: --markdown, --json, or --pdf")
	}

	switch {
	case previewMarkdown:
		return render.NewMarkdownRenderer(), nil
	case previewJSON:
		return render.NewJSONRenderer(), nil
	default:
		return render.NewPDFRenderer(), nil
	}
}
