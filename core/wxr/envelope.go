// Package wxr builds the WordPress eXtended RSS (WXR 1.2) import document.
// It is the only place that knows the wire format: the rest of the pipeline
// hands over finished ExportRecords and metadata and never writes files.
package wxr

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"github.com/lukasmeier/mediumpress/core"
	"github.com/lukasmeier/mediumpress/core/slugify"
)

// Builder renders a batch of records into one WXR document.
type Builder struct {
	Meta core.ExportMeta
	// now is the channel pubDate source; overridable in tests.
	now func() time.Time
}

// New creates a Builder for the given export metadata.
func New(meta core.ExportMeta) *Builder {
	return &Builder{Meta: meta, now: time.Now}
}

// itemTerm is one category or post_tag reference on an item.
type itemTerm struct {
	Domain   string // "category" or "post_tag"
	Nicename string
	Name     string
}

// channelTerm is one <wp:category> definition in the channel header.
type channelTerm struct {
	ID       int
	Nicename string
	Name     string
}

type templateItem struct {
	core.ExportRecord
	Domain string
	Terms  []itemTerm
}

type templateData struct {
	Meta    core.ExportMeta
	PubDate string
	Terms   []channelTerm
	Items   []templateItem
}

// Build renders the full import document for the given records, in the order
// they are passed.
func (b *Builder) Build(records []core.ExportRecord) ([]byte, error) {
	data := templateData{
		Meta:    b.Meta,
		PubDate: b.now().UTC().Format("Mon, 02 Jan 2006 15:04:05 +0000"),
		Terms:   channelTerms(records),
	}
	for _, rec := range records {
		data.Items = append(data.Items, templateItem{
			ExportRecord: rec,
			Domain:       b.Meta.Domain,
			Terms:        itemTerms(rec),
		})
	}

	var buf bytes.Buffer
	if err := envelopeTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering WXR document: %w", err)
	}
	return buf.Bytes(), nil
}

// itemTerms builds the category and post_tag references for one record.
func itemTerms(rec core.ExportRecord) []itemTerm {
	var terms []itemTerm
	for _, c := range rec.Categories {
		terms = append(terms, itemTerm{
			Domain:   "category",
			Nicename: slugify.NormalizeSlug(c),
			Name:     c,
		})
	}
	for _, t := range rec.Tags {
		terms = append(terms, itemTerm{
			Domain:   "post_tag",
			Nicename: slugify.NormalizeSlug(t),
			Name:     t,
		})
	}
	return terms
}

// channelTerms collects the distinct categories across the batch, in first
// appearance order, for the channel's term definitions.
func channelTerms(records []core.ExportRecord) []channelTerm {
	seen := make(map[string]bool)
	var terms []channelTerm
	for _, rec := range records {
		for _, c := range rec.Categories {
			if seen[c] {
				continue
			}
			seen[c] = true
			terms = append(terms, channelTerm{
				ID:       len(terms) + 1,
				Nicename: slugify.NormalizeSlug(c),
				Name:     c,
			})
		}
	}
	return terms
}

// The envelope is fixed boilerplate around CDATA-wrapped fields; WordPress's
// importer expects this exact namespace set and wxr_version.
var envelopeTmpl = template.Must(template.New("wxr").Parse(`<?xml version="1.0" encoding="UTF-8" ?>
<!-- This is a WordPress eXtended RSS file generated by mediumpress -->
<!-- To import it, use Tools: Import in the WordPress admin panel -->

<rss version="2.0"
	xmlns:excerpt="http://wordpress.org/export/1.2/excerpt/"
	xmlns:content="http://purl.org/rss/1.0/modules/content/"
	xmlns:wfw="http://wellformedweb.org/CommentAPI/"
	xmlns:dc="http://purl.org/dc/elements/1.1/"
	xmlns:wp="http://wordpress.org/export/1.2/"
>

<channel>
	<title>Medium Import</title>
	<link>https://{{.Meta.Domain}}</link>
	<description>Imported from Medium</description>
	<pubDate>{{.PubDate}}</pubDate>
	<language>{{.Meta.Language}}</language>
	<wp:wxr_version>1.2</wp:wxr_version>
	<wp:base_site_url>https://{{.Meta.Domain}}</wp:base_site_url>
	<wp:base_blog_url>https://{{.Meta.Domain}}</wp:base_blog_url>

	<wp:author>
		<wp:author_id>1</wp:author_id>
		<wp:author_login><![CDATA[admin]]></wp:author_login>
		<wp:author_email><![CDATA[admin@{{.Meta.Domain}}]]></wp:author_email>
		<wp:author_display_name><![CDATA[{{.Meta.Author}}]]></wp:author_display_name>
		<wp:author_first_name><![CDATA[]]></wp:author_first_name>
		<wp:author_last_name><![CDATA[]]></wp:author_last_name>
	</wp:author>
{{range .Terms}}
	<wp:category>
		<wp:term_id>{{.ID}}</wp:term_id>
		<wp:category_nicename><![CDATA[{{.Nicename}}]]></wp:category_nicename>
		<wp:category_parent><![CDATA[]]></wp:category_parent>
		<wp:cat_name><![CDATA[{{.Name}}]]></wp:cat_name>
	</wp:category>
{{end}}
	<generator>mediumpress</generator>
{{range .Items}}
	<item>
		<title><![CDATA[{{.Title}}]]></title>
		<link>https://{{.Domain}}/{{.Slug}}/</link>
		<pubDate>{{.PubDate}}</pubDate>
		<dc:creator><![CDATA[{{$.Meta.Author}}]]></dc:creator>
		<guid isPermaLink="false">https://{{.Domain}}/?p={{.ID}}</guid>
		<description></description>
		<content:encoded><![CDATA[{{.Content}}]]></content:encoded>
		<excerpt:encoded><![CDATA[]]></excerpt:encoded>
		<wp:post_id>{{.ID}}</wp:post_id>
		<wp:post_date><![CDATA[{{.PostDate}}]]></wp:post_date>
		<wp:post_date_gmt><![CDATA[{{.PostDate}}]]></wp:post_date_gmt>
		<wp:post_modified><![CDATA[{{.PostDate}}]]></wp:post_modified>
		<wp:post_modified_gmt><![CDATA[{{.PostDate}}]]></wp:post_modified_gmt>
		<wp:comment_status><![CDATA[open]]></wp:comment_status>
		<wp:ping_status><![CDATA[open]]></wp:ping_status>
		<wp:post_name><![CDATA[{{.Slug}}]]></wp:post_name>
		<wp:status><![CDATA[publish]]></wp:status>
		<wp:post_parent>0</wp:post_parent>
		<wp:menu_order>0</wp:menu_order>
		<wp:post_type><![CDATA[post]]></wp:post_type>
		<wp:post_password><![CDATA[]]></wp:post_password>
		<wp:is_sticky>0</wp:is_sticky>
{{- range .Terms}}
		<category domain="{{.Domain}}" nicename="{{.Nicename}}"><![CDATA[{{.Name}}]]></category>
{{- end}}
	</item>
{{end}}
</channel>
</rss>
`))
