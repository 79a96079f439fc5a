package slugify

import (
	"regexp"
	"testing"
)

func TestNormalizeSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"Angular Tutorial: Getting Started!", "angular-tutorial-getting-started"},
		{"<b>Bold</b> Title", "bold-title"},
		{"  spaced   out  ", "spaced-out"},
		{"already-a-slug", "already-a-slug"},
		{"Under_scores and--dashes", "under-scores-and-dashes"},
		{"C# and .NET", "c-and-net"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeSlug(tt.in); got != tt.want {
				t.Fatalf("NormalizeSlug(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeSlugShape(t *testing.T) {
	shape := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

	inputs := []string{
		"Hello World", "über cool", "a_b_c", "--x--", "123", "Mixed CASE Title",
		"tabs\tand\nnewlines", "dots.and,commas",
	}
	for _, in := range inputs {
		got := NormalizeSlug(in)
		if got != "" && !shape.MatchString(got) {
			t.Errorf("NormalizeSlug(%q) = %q, not slug-shaped", in, got)
		}
		if again := NormalizeSlug(got); again != got {
			t.Errorf("NormalizeSlug not idempotent for %q: %q -> %q", in, got, again)
		}
	}
}

func TestStripLegacyHash(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"post-title-5691beba463e", "post-title"},
		{"simple-post", "simple-post"},
		{"post-with-numbers-123-abc456", "post-with-numbers-123"},
		{"post-with-numbers-123", "post-with-numbers-123"},
		{"great-post-abc123def456?source=friends_link", "great-post"},
		{"UPPER-Case-Path-aaaa11", "upper-case-path"},
		{"weird//chars!!-deadbeef99", "weirdchars"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := StripLegacyHash(tt.in); got != tt.want {
				t.Fatalf("StripLegacyHash(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
