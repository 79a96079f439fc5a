package linkrewrite

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestRewriteHrefMedium(t *testing.T) {
	r := New("example.de")

	tests := []struct {
		name string
		href string
		want string
	}{
		{
			name: "profile post",
			href: "https://medium.com/@user/great-post-abc123def456",
			want: "https://example.de/great-post/",
		},
		{
			name: "profile post with query",
			href: "https://medium.com/@user/great-post-abc123def456?source=friends_link",
			want: "https://example.de/great-post/",
		},
		{
			name: "publication post",
			href: "https://medium.com/better-programming/clean-code-5691beba463e",
			want: "https://example.de/clean-code/",
		},
		{
			name: "direct post",
			href: "https://medium.com/some-post-title-9f8e7d6c5b4a",
			want: "https://example.de/some-post-title/",
		},
		{
			name: "system page untouched",
			href: "https://medium.com/membership",
			want: "https://medium.com/membership",
		},
		{
			name: "bare medium root untouched",
			href: "https://medium.com/",
			want: "https://medium.com/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := r.RewriteHref(tt.href)
			if got != tt.want {
				t.Fatalf("RewriteHref(%q) = %q, want %q", tt.href, got, tt.want)
			}
		})
	}
}

func TestRewriteHrefTargetDomain(t *testing.T) {
	r := New("example.de")

	tests := []struct {
		name string
		href string
		want string
	}{
		{
			name: "www prefix dropped",
			href: "https://www.example.de/old-link",
			want: "https://example.de/old-link",
		},
		{
			name: "http upgraded, trailing slash removed",
			href: "http://example.de/posts/",
			want: "https://example.de/posts",
		},
		{
			name: "query and fragment survive",
			href: "https://www.example.de/p?x=1#top",
			want: "https://example.de/p?x=1#top",
		},
		{
			name: "relative path anchored",
			href: "example.de/contact",
			want: "/example.de/contact",
		},
		{
			name: "external link untouched",
			href: "https://other-site.org/page",
			want: "https://other-site.org/page",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := r.RewriteHref(tt.href)
			if got != tt.want {
				t.Fatalf("RewriteHref(%q) = %q, want %q", tt.href, got, tt.want)
			}
		})
	}
}

func TestRewriteStripsMediumAttributes(t *testing.T) {
	fragment := `<p><a class="markup--anchor" data-href="https://medium.com/@u/x-abc123def456"` +
		` data-action="show-user-card" data-user-id="42"` +
		` href="https://medium.com/@u/x-abc123def456">link</a></p>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		t.Fatal(err)
	}

	New("example.de").Rewrite(doc.Selection)

	out, err := doc.Find("p").Html()
	if err != nil {
		t.Fatal(err)
	}
	for _, attr := range []string{"data-href", "data-action", "data-user-id", "class"} {
		if strings.Contains(out, attr) {
			t.Errorf("output still contains %s attribute: %s", attr, out)
		}
	}
	if !strings.Contains(out, `href="https://example.de/x/"`) {
		t.Errorf("href not rewritten: %s", out)
	}
}

func TestRewriteLeavesMalformedHref(t *testing.T) {
	r := New("example.de")
	malformed := "https://www.example.de/%zz"
	if got, changed := r.RewriteHref(malformed); changed {
		t.Fatalf("malformed href rewritten to %q, want unchanged", got)
	}

	// Empty href anchors survive untouched.
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<p><a href="">x</a></p>`))
	if err != nil {
		t.Fatal(err)
	}
	r.Rewrite(doc.Selection)
	out, _ := doc.Find("p").Html()
	if !strings.Contains(out, `href=""`) {
		t.Errorf("empty href altered: %s", out)
	}
}
