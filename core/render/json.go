// Package render — JSON renderer.
// Serializes the full converted record, plus a Markdown rendition and simple
// structure counts, for inspection and for feeding the conversion result
// into other tooling.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"

	"github.com/lukasmeier/mediumpress/core"
)

// postJSON is the JSON document for one converted post.
type postJSON struct {
	Metadata  postMetadata  `json:"metadata"`
	Content   postContent   `json:"content"`
	Structure postStructure `json:"structure"`
}

type postMetadata struct {
	ID         int      `json:"id"`
	Title      string   `json:"title"`
	Slug       string   `json:"slug"`
	PostDate   string   `json:"post_date"`
	PubDate    string   `json:"pub_date"`
	Categories []string `json:"categories"`
	Tags       []string `json:"tags"`
}

type postContent struct {
	HTML     string `json:"html"`
	Markdown string `json:"markdown"`
}

type postStructure struct {
	Headings   int `json:"headings"`
	Paragraphs int `json:"paragraphs"`
	Images     int `json:"images"`
	Quotes     int `json:"quotes"`
	CodeBlocks int `json:"code_blocks"`
	Lists      int `json:"lists"`
	Links      int `json:"links"`
}

// JSONRenderer produces the structured JSON preview.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render serializes rec with indentation.
func (r *JSONRenderer) Render(rec core.ExportRecord) ([]byte, error) {
	markdown, err := htmltomarkdown.ConvertString(rec.Content)
	if err != nil {
		return nil, fmt.Errorf("converting content to markdown: %w", err)
	}

	structure, err := countStructure(rec.Content)
	if err != nil {
		return nil, err
	}

	doc := postJSON{
		Metadata: postMetadata{
			ID:         rec.ID,
			Title:      rec.Title,
			Slug:       rec.Slug,
			PostDate:   rec.PostDate,
			PubDate:    rec.PubDate,
			Categories: rec.Categories,
			Tags:       rec.Tags,
		},
		Content: postContent{
			HTML:     rec.Content,
			Markdown: markdown,
		},
		Structure: structure,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// countStructure tallies block types in the canonical content. The content
// is already normalized, so counting elements is reliable.
func countStructure(content string) (postStructure, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return postStructure{}, fmt.Errorf("parsing content: %w", err)
	}
	return postStructure{
		Headings:   doc.Find("h1, h2, h3, h4, h5, h6").Length(),
		Paragraphs: doc.Find("p").Length(),
		Images:     doc.Find("figure img").Length(),
		Quotes:     doc.Find("blockquote").Length(),
		CodeBlocks: doc.Find("pre").Length(),
		Lists:      doc.Find("ul, ol").Length(),
		Links:      doc.Find("a").Length(),
	}, nil
}
