// Package normalize converts the parsed body of a Medium post into canonical
// HTML for the WordPress import. It walks the recognized block types in
// document order, strips Medium-specific attributes, rewrites inline links,
// and hands images off to the image fetcher. Unrecognized elements (divs,
// sections) are transparent containers and emit nothing themselves.
package normalize

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/lukasmeier/mediumpress/core"
	"github.com/lukasmeier/mediumpress/core/linkrewrite"
)

// blockSelector matches every block type the normalizer recognizes, in
// document order.
const blockSelector = "p, h1, h2, h3, h4, h5, h6, figure, blockquote, pre, ul, ol, hr"

// strippedAttrs are removed from headings, paragraphs and their inline
// children. Inline semantic tags (b, i, em, strong, a) themselves survive.
var strippedAttrs = []string{"class", "id", "name"}

// Normalizer turns a raw post body into a canonical HTML string.
type Normalizer struct {
	links  *linkrewrite.Rewriter
	images core.ImageFetcher // nil disables image downloading
	// UploadsRoot is the WordPress media path prefix, without slashes,
	// e.g. "wp-content/uploads".
	UploadsRoot string

	log zerolog.Logger
	now func() time.Time
}

// New creates a Normalizer. A nil fetcher keeps every image at its original
// remote URL.
func New(links *linkrewrite.Rewriter, images core.ImageFetcher, uploadsRoot string, log zerolog.Logger) *Normalizer {
	return &Normalizer{
		links:       links,
		images:      images,
		UploadsRoot: uploadsRoot,
		log:         log,
		now:         time.Now,
	}
}

// Normalize parses bodyMarkup and emits one canonical fragment per
// recognized block, preserving source order. Blocks whose visible text is
// empty after trimming are dropped, never emitted as empty tags.
func (n *Normalizer) Normalize(ctx context.Context, bodyMarkup, postSlug string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(bodyMarkup))
	if err != nil {
		return "", fmt.Errorf("parsing post body: %w", err)
	}

	var parts []string
	doc.Find(blockSelector).Each(func(_ int, sel *goquery.Selection) {
		var fragment string
		switch name := goquery.NodeName(sel); name {
		case "figure":
			fragment = n.normalizeFigure(ctx, sel, postSlug)
		case "p", "h1", "h2", "h3", "h4", "h5", "h6":
			fragment = n.normalizeText(sel, name)
		case "blockquote":
			fragment = normalizeQuote(sel)
		case "pre":
			fragment = normalizeCode(sel)
		case "ul", "ol":
			fragment = normalizeList(sel, name)
		case "hr":
			fragment = "<hr>"
		}
		if fragment != "" {
			parts = append(parts, fragment)
		}
	})

	return strings.Join(parts, ""), nil
}

// normalizeFigure emits a clean <figure><img></figure> for image blocks.
// Images hosted on Medium are downloaded through the fetcher and re-pointed
// at the WordPress uploads path; a failed download keeps the remote URL.
func (n *Normalizer) normalizeFigure(ctx context.Context, sel *goquery.Selection, postSlug string) string {
	img := sel.Find("img").First()
	if img.Length() == 0 {
		return ""
	}
	src, ok := img.Attr("src")
	if !ok || src == "" {
		return ""
	}

	if n.images != nil && strings.Contains(src, "medium.com") {
		filename, err := n.images.Fetch(ctx, src, postSlug)
		if err != nil {
			n.log.Warn().Str("src", src).Err(err).Msg("image download failed, keeping remote URL")
		} else {
			ts := n.now()
			src = fmt.Sprintf("/%s/%d/%02d/%s", n.UploadsRoot, ts.Year(), int(ts.Month()), filename)
			n.log.Debug().Str("src", src).Msg("image downloaded")
		}
	}

	var b strings.Builder
	b.WriteString("<figure><img")
	if w, ok := img.Attr("data-width"); ok {
		fmt.Fprintf(&b, " data-width=%q", w)
	}
	if h, ok := img.Attr("data-height"); ok {
		fmt.Fprintf(&b, " data-height=%q", h)
	}
	if alt, ok := img.Attr("alt"); ok && alt != "" {
		fmt.Fprintf(&b, " alt=%q", html.EscapeString(alt))
	}
	fmt.Fprintf(&b, " src=%q></figure>", src)
	return b.String()
}

// normalizeText handles headings and paragraphs: attributes are stripped
// from the element and its inline children, anchors are rewritten, and the
// original inline markup is kept so bold/italic/links survive.
func (n *Normalizer) normalizeText(sel *goquery.Selection, name string) string {
	if strings.TrimSpace(sel.Text()) == "" {
		return ""
	}

	for _, attr := range strippedAttrs {
		sel.RemoveAttr(attr)
		sel.Find("*").RemoveAttr(attr)
	}
	n.links.Rewrite(sel)

	inner, err := sel.Html()
	if err != nil || strings.TrimSpace(inner) == "" {
		return ""
	}
	return fmt.Sprintf("<%s>%s</%s>", name, inner, name)
}

// normalizeQuote flattens a blockquote to escaped plain text. Inline
// formatting inside quotes is discarded.
func normalizeQuote(sel *goquery.Selection) string {
	text := strings.TrimSpace(sel.Text())
	if text == "" {
		return ""
	}
	return "<blockquote>" + html.EscapeString(text) + "</blockquote>"
}

// normalizeCode flattens a pre block to escaped plain text with no inline
// formatting. Leading and trailing whitespace inside the block is kept.
func normalizeCode(sel *goquery.Selection) string {
	code := sel.Text()
	if strings.TrimSpace(code) == "" {
		return ""
	}
	return "<pre><code>" + html.EscapeString(code) + "</code></pre>"
}

// normalizeList emits each item's flattened text; items that trim to empty
// are dropped, and a list with no surviving items is omitted entirely.
func normalizeList(sel *goquery.Selection, name string) string {
	var items []string
	sel.Find("li").Each(func(_ int, li *goquery.Selection) {
		text := strings.TrimSpace(li.Text())
		if text != "" {
			items = append(items, "<li>"+html.EscapeString(text)+"</li>")
		}
	})
	if len(items) == 0 {
		return ""
	}
	return fmt.Sprintf("<%s>%s</%s>", name, strings.Join(items, ""), name)
}
