package assemble

import (
	"testing"
	"time"

	"github.com/lukasmeier/mediumpress/core/taxonomy"
)

func testAssembler() *Assembler {
	return New(taxonomy.New(taxonomy.Tables{
		Categories: []taxonomy.CategoryRule{
			{Name: "WEB DEVELOPMENT", Keywords: []string{"angular", "typescript"}},
		},
		DefaultCategory: "PROGRAMMING",
		Tags:            []string{"angular", "typescript"},
	}))
}

func TestAssemble(t *testing.T) {
	a := testAssembler()
	published := time.Date(2019, time.July, 4, 0, 0, 0, 0, time.UTC)

	rec := a.Assemble("Angular Tutorial", "<p>typescript basics</p>", published, 0)

	if rec.Slug != "angular-tutorial" {
		t.Errorf("slug = %q, want %q", rec.Slug, "angular-tutorial")
	}
	if rec.PostDate != "2019-07-04 00:00:00" {
		t.Errorf("post date = %q", rec.PostDate)
	}
	if rec.PubDate != "Thu, 04 Jul 2019 00:00:00 +0000" {
		t.Errorf("pub date = %q", rec.PubDate)
	}
	if len(rec.Categories) == 0 || rec.Categories[0] != "WEB DEVELOPMENT" {
		t.Errorf("categories = %v", rec.Categories)
	}
	if len(rec.Tags) != 2 {
		t.Errorf("tags = %v", rec.Tags)
	}
	if rec.ID <= 0 || rec.ID >= 100000 {
		t.Errorf("id = %d, want within (0, 100000)", rec.ID)
	}
}

func TestAssembleExplicitID(t *testing.T) {
	a := testAssembler()
	rec := a.Assemble("Title", "content", time.Now(), 42)
	if rec.ID != 42 {
		t.Fatalf("explicit id ignored, got %d", rec.ID)
	}
}

func TestDeriveIDStable(t *testing.T) {
	first := DeriveID("Angular Tutorial")
	for i := 0; i < 10; i++ {
		if got := DeriveID("Angular Tutorial"); got != first {
			t.Fatalf("id drifted: %d vs %d", got, first)
		}
	}
	if DeriveID("Angular Tutorial") == DeriveID("Something Else Entirely") {
		t.Error("distinct titles unexpectedly share an id")
	}
	if id := DeriveID(""); id < 0 || id >= 100000 {
		t.Errorf("id out of range for empty title: %d", id)
	}
}
