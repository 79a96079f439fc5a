// Package linkrewrite rewrites anchor hyperlinks inside a parsed HTML
// fragment. Links that point at Medium posts, or at the target domain in a
// stale form (www. prefix, http scheme), are rebuilt as clean links on the
// target domain. Medium's tracking attributes are stripped from every anchor.
package linkrewrite

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/lukasmeier/mediumpress/core/slugify"
)

// mediumAttrs are Medium-proprietary anchor attributes removed unconditionally.
var mediumAttrs = []string{
	"data-action", "data-action-type", "data-action-value",
	"data-anchor-type", "data-user-id", "class", "id", "name", "data-href",
}

// systemPages are Medium platform pages that must not be rewritten into
// post links. Matched as substrings of the candidate path, like the
// original export tooling does.
var systemPages = []string{"about", "help", "settings", "membership", "partner", "creators"}

// Rewriter rewrites anchors for one target domain. It holds no per-document
// state: rewriting is a pure function of (href, Domain) for every anchor.
type Rewriter struct {
	// Domain is the destination hostname without scheme, e.g. "example.de".
	Domain string
}

// New creates a Rewriter for the given target domain.
func New(domain string) *Rewriter {
	return &Rewriter{Domain: domain}
}

// Rewrite processes every anchor inside sel in document order, mutating the
// selection in place. Non-anchor content is untouched. Malformed hrefs are
// left unchanged.
func (r *Rewriter) Rewrite(sel *goquery.Selection) {
	sel.Find("a").Each(func(_ int, a *goquery.Selection) {
		for _, attr := range mediumAttrs {
			a.RemoveAttr(attr)
		}

		href, ok := a.Attr("href")
		if !ok || href == "" {
			return
		}
		if rewritten, changed := r.RewriteHref(href); changed {
			a.SetAttr("href", rewritten)
		}
	})
}

// RewriteHref classifies a single href and returns its rewritten form.
// The second return reports whether the href changed.
func (r *Rewriter) RewriteHref(href string) (string, bool) {
	if strings.Contains(href, "medium.com/") {
		return r.rewriteMediumHref(href)
	}
	if strings.Contains(href, r.Domain) || strings.Contains(href, "www."+r.Domain) {
		return r.rewriteDomainHref(href)
	}
	return href, false
}

// rewriteMediumHref handles the three Medium post URL shapes, in priority
// order: profile (/@user/post), publication (/pub/post), direct (/post).
// Only the first matching shape applies.
func (r *Rewriter) rewriteMediumHref(href string) (string, bool) {
	rest := href[strings.Index(href, "medium.com/")+len("medium.com/"):]
	segments := strings.SplitN(rest, "/", 3)

	var rawPath string
	switch {
	case strings.HasPrefix(segments[0], "@") && len(segments) > 1 && pathSegment(segments[1]) != "":
		// Profile post: medium.com/@username/post-title-hash
		rawPath = pathSegment(segments[1])
	case segments[0] != "" && !strings.HasPrefix(segments[0], "@") &&
		len(segments) > 1 && pathSegment(segments[1]) != "":
		// Publication post: medium.com/publication/post-title-hash
		rawPath = pathSegment(segments[1])
	case pathSegment(segments[0]) != "" && !strings.HasPrefix(segments[0], "@") &&
		!isSystemPage(pathSegment(segments[0])):
		// Direct post: medium.com/post-title-hash
		rawPath = pathSegment(segments[0])
	default:
		return href, false
	}

	slug := slugify.StripLegacyHash(rawPath)
	if slug == "" {
		return href, false
	}
	return fmt.Sprintf("https://%s/%s/", r.Domain, slug), true
}

// rewriteDomainHref normalizes references to the target domain itself:
// absolute URLs are rebuilt as https with the www. prefix and trailing slash
// dropped; relative paths are anchored with a leading slash.
func (r *Rewriter) rewriteDomainHref(href string) (string, bool) {
	if strings.HasPrefix(href, "http") {
		parsed, err := url.Parse(href)
		if err != nil {
			return href, false
		}
		clean := strings.TrimRight(parsed.Path, "/")
		rebuilt := fmt.Sprintf("https://%s%s", r.Domain, clean)
		if parsed.RawQuery != "" {
			rebuilt += "?" + parsed.RawQuery
		}
		if parsed.Fragment != "" {
			rebuilt += "#" + parsed.Fragment
		}
		return rebuilt, rebuilt != href
	}
	if !strings.HasPrefix(href, "/") {
		return "/" + href, true
	}
	return href, false
}

// pathSegment strips a query string or fragment from a raw URL segment.
func pathSegment(seg string) string {
	if i := strings.IndexAny(seg, "?#"); i >= 0 {
		seg = seg[:i]
	}
	return seg
}

func isSystemPage(path string) bool {
	lower := strings.ToLower(path)
	for _, p := range systemPages {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
