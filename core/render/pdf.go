// Package render — PDF renderer.
// Turns a converted post into a paginated document using
// gofpdf, for sharing a migration preview with people who won't read raw
// WXR. Content is rendered from the Markdown rendition of the canonical
// HTML; images are listed by path, not embedded.
package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/jung-kurt/gofpdf"

	"github.com/lukasmeier/mediumpress/core"
)

// PDFRenderer renders a converted post as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts the record into PDF bytes.
func (r *PDFRenderer) Render(rec core.ExportRecord) ([]byte, error) {
	markdown, err := htmltomarkdown.ConvertString(rec.Content)
	if err != nil {
		return nil, fmt.Errorf("converting content to markdown: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	writeHeader(pdf, rec)
	writeBody(pdf, markdown)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// writeHeader emits the post title and a metadata line with date, slug and
// taxonomy.
func writeHeader(pdf *gofpdf.Fpdf, rec core.ExportRecord) {
	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 8, rec.Title, "", "L", false)
	pdf.Ln(2)

	meta := fmt.Sprintf("%s  ·  /%s/", rec.PostDate, rec.Slug)
	if len(rec.Categories) > 0 {
		meta += "  ·  " + strings.Join(rec.Categories, ", ")
	}
	if len(rec.Tags) > 0 {
		meta += "  ·  #" + strings.Join(rec.Tags, " #")
	}
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, meta, "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)
}

var orderedItemRe = regexp.MustCompile(`^\d+\.\s`)

// writeBody walks the Markdown line by line and renders each block with an
// appropriate font.
func writeBody(pdf *gofpdf.Fpdf, markdown string) {
	inCode := false

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inCode = !inCode
			pdf.Ln(2)
			continue
		}
		if inCode {
			pdf.SetFont("Courier", "", 9)
			pdf.SetFillColor(245, 245, 245)
			pdf.MultiCell(0, 4.5, line, "", "L", true)
			continue
		}

		switch {
		case trimmed == "":
			pdf.Ln(3)
		case strings.HasPrefix(trimmed, "#"):
			level := len(trimmed) - len(strings.TrimLeft(trimmed, "#"))
			writeHeading(pdf, strings.TrimSpace(strings.TrimLeft(trimmed, "#")), level)
		case strings.HasPrefix(trimmed, "> "):
			pdf.SetFont("Helvetica", "I", 10)
			pdf.MultiCell(0, 5, plainText(strings.TrimPrefix(trimmed, "> ")), "", "L", false)
		case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* "):
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, "• "+plainText(trimmed[2:]), "", "L", false)
		case orderedItemRe.MatchString(trimmed):
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, plainText(trimmed), "", "L", false)
		default:
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, plainText(line), "", "L", false)
		}
	}
}

// writeHeading scales the font with the heading level.
func writeHeading(pdf *gofpdf.Fpdf, text string, level int) {
	size := 16.0 - 1.5*float64(level-1)
	if size < 10 {
		size = 10
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, plainText(text), "", "L", false)
	pdf.Ln(2)
}

var (
	inlineCodeRe = regexp.MustCompile("`([^`]+)`")
	mdLinkRe     = regexp.MustCompile(`!?\[([^\]]*)\]\(([^)]+)\)`)
	emphasisRe   = regexp.MustCompile(`\*{1,3}([^*]+)\*{1,3}`)
)

// plainText strips inline Markdown formatting. Image references keep their
// path so missing media is visible in the preview.
func plainText(text string) string {
	text = mdLinkRe.ReplaceAllStringFunc(text, func(m string) string {
		parts := mdLinkRe.FindStringSubmatch(m)
		if strings.HasPrefix(m, "!") {
			return "[image: " + parts[2] + "]"
		}
		return parts[1]
	})
	text = emphasisRe.ReplaceAllString(text, "$1")
	text = inlineCodeRe.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
