package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lukasmeier/mediumpress/core"
)

func testRecord() core.ExportRecord {
	return core.ExportRecord{
		ID:         123,
		Title:      "Angular Tutorial",
		Slug:       "angular-tutorial",
		PostDate:   "2019-07-04 00:00:00",
		PubDate:    "Thu, 04 Jul 2019 00:00:00 +0000",
		Categories: []string{"WEB DEVELOPMENT"},
		Tags:       []string{"ANGULAR"},
		Content: `<h3>Intro</h3><p>Read <a href="https://example.de/other/">this</a>.</p>` +
			`<pre><code>npm install</code></pre><ul><li>one</li><li>two</li></ul>`,
	}
}

func TestMarkdownRender(t *testing.T) {
	out, err := NewMarkdownRenderer().Render(testRecord())
	if err != nil {
		t.Fatal(err)
	}
	md := string(out)

	if !strings.HasPrefix(md, "# Angular Tutorial\n") {
		t.Errorf("missing title header:\n%s", md)
	}
	if !strings.Contains(md, "[this](https://example.de/other/)") {
		t.Errorf("link not converted:\n%s", md)
	}
	if !strings.Contains(md, "npm install") {
		t.Errorf("code block lost:\n%s", md)
	}
	if NewMarkdownRenderer().Extension() != ".md" {
		t.Error("wrong extension")
	}
}

func TestJSONRender(t *testing.T) {
	out, err := NewJSONRenderer().Render(testRecord())
	if err != nil {
		t.Fatal(err)
	}

	var doc postJSON
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if doc.Metadata.Slug != "angular-tutorial" || doc.Metadata.ID != 123 {
		t.Errorf("metadata = %+v", doc.Metadata)
	}
	if doc.Structure.Headings != 1 || doc.Structure.Paragraphs != 1 ||
		doc.Structure.CodeBlocks != 1 || doc.Structure.Lists != 1 || doc.Structure.Links != 1 {
		t.Errorf("structure counts = %+v", doc.Structure)
	}
	if !strings.Contains(doc.Content.Markdown, "npm install") {
		t.Errorf("markdown rendition missing content: %q", doc.Content.Markdown)
	}
}

func TestPDFRender(t *testing.T) {
	out, err := NewPDFRenderer().Render(testRecord())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output does not start with PDF magic: %q", out[:16])
	}
	if NewPDFRenderer().Extension() != ".pdf" {
		t.Error("wrong extension")
	}
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"**bold** and *italic*", "bold and italic"},
		{"a [link](https://x.de) here", "a link here"},
		{"an ![alt](/img/x.png) inline", "an [image: /img/x.png] inline"},
		{"run `go build` now", "run go build now"},
	}
	for _, tt := range tests {
		if got := plainText(tt.in); got != tt.want {
			t.Errorf("plainText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
