// Package cmd — convert command.
// Orchestrates the pipeline per post:
// load → normalize (links, images) → classify → assemble, then wraps the
// records into the WXR envelope and writes the import file.
//
// One bad post never aborts the batch; the run fails only when nothing
// converted at all.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lukasmeier/mediumpress/config"
	"github.com/lukasmeier/mediumpress/core"
	"github.com/lukasmeier/mediumpress/core/assemble"
	"github.com/lukasmeier/mediumpress/core/images"
	"github.com/lukasmeier/mediumpress/core/linkrewrite"
	"github.com/lukasmeier/mediumpress/core/normalize"
	"github.com/lukasmeier/mediumpress/core/output"
	"github.com/lukasmeier/mediumpress/core/slugify"
	"github.com/lukasmeier/mediumpress/core/source"
	"github.com/lukasmeier/mediumpress/core/taxonomy"
	"github.com/lukasmeier/mediumpress/core/wxr"
)

var (
	flagDomain    string
	flagAll       bool
	flagInputDir  string
	flagOutput    string
	flagImagesDir string
	flagNoImages  bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [file-or-number]",
	Short: "Convert Medium export posts into a WordPress import file",
	Long: `Convert parses Medium HTML exports, normalizes their content, rewrites
Medium links to the target domain, downloads post images, and writes a WXR
import file.

Examples:
  mediumpress convert --domain example.de --all
  mediumpress convert --domain example.de 2019-07-04_My-Post-abc123def456.html
  mediumpress convert --domain example.de 3 --no-images`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&flagDomain, "domain", "", "Target site domain, e.g. example.de (required)")
	convertCmd.Flags().BoolVar(&flagAll, "all", false, "Convert every post in the export directory")
	convertCmd.Flags().StringVar(&flagInputDir, "input-dir", "", "Directory containing Medium HTML exports")
	convertCmd.Flags().StringVar(&flagOutput, "output", "", "Output file name (default: wordpress_export.xml, or <post>.xml for a single post)")
	convertCmd.Flags().StringVar(&flagImagesDir, "images-dir", "", "Directory for downloaded images")
	convertCmd.Flags().BoolVar(&flagNoImages, "no-images", false, "Skip downloading images")
	convertCmd.MarkFlagRequired("domain")
}

// pipeline bundles the per-post conversion stages.
type pipeline struct {
	src        core.Source
	inputDir   string
	normalizer *normalize.Normalizer
	assembler  *assemble.Assembler
	log        zerolog.Logger
}

// newPipeline wires the stages for one run. fetchImages toggles the image
// collaborator; without it every image keeps its remote URL.
func newPipeline(cfg *config.Config, domain, inputDir string, fetchImages bool, log zerolog.Logger) (*pipeline, error) {
	var fetcher core.ImageFetcher
	if fetchImages {
		imagesDir := cfg.ImagesDir
		if flagImagesDir != "" {
			imagesDir = flagImagesDir
		}
		f, err := images.New(imagesDir, cfg.ImageTimeout(), log)
		if err != nil {
			return nil, err
		}
		fetcher = f
	}

	return &pipeline{
		src:        source.NewDir(inputDir),
		inputDir:   inputDir,
		normalizer: normalize.New(linkrewrite.New(domain), fetcher, cfg.UploadsRoot, log),
		assembler:  assemble.New(taxonomy.New(cfg.Taxonomy)),
		log:        log,
	}, nil
}

// convertPost runs one export file through all stages.
func (p *pipeline) convertPost(ctx context.Context, name string) (core.ExportRecord, error) {
	post, err := p.src.Load(name)
	if err != nil {
		return core.ExportRecord{}, err
	}

	published, found := source.DateFromFilename(name)
	if !found {
		p.log.Warn().Str("file", name).Msg("no date prefix in filename, using current date")
	}

	slug := slugify.NormalizeSlug(post.Title)
	content, err := p.normalizer.Normalize(ctx, post.Body, slug)
	if err != nil {
		return core.ExportRecord{}, fmt.Errorf("normalizing %s: %w", name, err)
	}

	return p.assembler.Assemble(post.Title, content, published, 0), nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	if flagAll && len(args) > 0 {
		return fmt.Errorf("pass either --all or a single file, not both")
	}
	if !flagAll && len(args) == 0 {
		return fmt.Errorf("a file name, a post number from 'mediumpress list', or --all is required")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger()
	domain := cleanDomain(flagDomain)

	inputDir := cfg.InputDir
	if flagInputDir != "" {
		inputDir = flagInputDir
	}

	p, err := newPipeline(cfg, domain, inputDir, !flagNoImages, log)
	if err != nil {
		return err
	}

	builder := wxr.New(core.ExportMeta{
		Author:   cfg.Author,
		Domain:   domain,
		Language: cfg.Language,
	})
	writer, err := output.New("")
	if err != nil {
		return err
	}

	ctx := context.Background()
	if flagAll {
		return convertAll(ctx, p, builder, writer, log)
	}
	return convertSingle(ctx, p, builder, writer, log, args[0])
}

// convertAll processes every listed file, skipping the ones that fail.
func convertAll(ctx context.Context, p *pipeline, builder *wxr.Builder, writer *output.Writer, log zerolog.Logger) error {
	names, err := p.src.List()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("no HTML files found in %s", p.inputDir)
	}

	var records []core.ExportRecord
	var skipped int
	for i, name := range names {
		log.Info().Str("file", name).Msgf("[%d/%d] processing", i+1, len(names))

		rec, err := p.convertPost(ctx, name)
		if err != nil {
			log.Warn().Str("file", name).Err(err).Msg("skipped")
			skipped++
			continue
		}
		records = append(records, rec)
		log.Info().Str("title", rec.Title).Msg("post converted")
	}

	if len(records) == 0 {
		return fmt.Errorf("no posts were successfully converted (%d skipped)", skipped)
	}
	if skipped > 0 {
		log.Warn().Msgf("%d/%d files skipped", skipped, len(names))
	}

	return writeExport(builder, writer, records, outputName("wordpress_export.xml"), log)
}

// convertSingle processes one file, addressed by name or list number.
func convertSingle(ctx context.Context, p *pipeline, builder *wxr.Builder, writer *output.Writer, log zerolog.Logger, target string) error {
	name, err := resolveTarget(p.src, target)
	if err != nil {
		return err
	}

	rec, err := p.convertPost(ctx, name)
	if err != nil {
		return err
	}
	log.Info().Str("title", rec.Title).Msg("post converted")

	return writeExport(builder, writer, []core.ExportRecord{rec}, outputName(output.ForSource(name, ".xml")), log)
}

func writeExport(builder *wxr.Builder, writer *output.Writer, records []core.ExportRecord, name string, log zerolog.Logger) error {
	data, err := builder.Build(records)
	if err != nil {
		return err
	}
	path, err := writer.Write(name, data)
	if err != nil {
		return err
	}
	log.Info().Int("posts", len(records)).Str("file", path).Msg("export written")
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	return nil
}

// resolveTarget maps a CLI argument to an export filename: either the name
// itself or a 1-based index into the sorted listing.
func resolveTarget(src core.Source, target string) (string, error) {
	num, err := strconv.Atoi(target)
	if err != nil {
		return target, nil
	}

	names, listErr := src.List()
	if listErr != nil {
		return "", listErr
	}
	if num < 1 || num > len(names) {
		return "", fmt.Errorf("invalid post number %d, available posts: 1-%d", num, len(names))
	}
	return names[num-1], nil
}

// outputName applies the --output override.
func outputName(fallback string) string {
	if flagOutput != "" {
		return flagOutput
	}
	return fallback
}

// cleanDomain strips scheme and trailing slashes from the --domain value so
// both "example.de" and "https://example.de/" work.
func cleanDomain(domain string) string {
	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimPrefix(domain, "http://")
	return strings.Trim(domain, "/")
}
