// Package render provides preview renderers for converted posts. They let a
// migration be reviewed before the import file touches a live WordPress
// site: Markdown for reading, JSON for inspecting the record, PDF for
// sharing.
package render

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/lukasmeier/mediumpress/core"
)

// MarkdownRenderer renders a converted post's canonical HTML as Markdown.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render converts the record content to Markdown, prefixed with a small
// metadata header.
func (r *MarkdownRenderer) Render(rec core.ExportRecord) ([]byte, error) {
	markdown, err := htmltomarkdown.ConvertString(rec.Content)
	if err != nil {
		return nil, fmt.Errorf("converting content to markdown: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", rec.Title)
	fmt.Fprintf(&b, "*%s — %s*\n\n", rec.PostDate, strings.Join(rec.Categories, ", "))
	b.WriteString(markdown)
	return []byte(b.String()), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
