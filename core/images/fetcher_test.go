package images

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		name string
		url  string
		slug string
		want string
	}{
		{
			name: "basename kept",
			url:  "https://cdn-images-1.medium.com/max/800/diagram.png",
			slug: "my-post",
			want: "my-post_diagram.png",
		},
		{
			name: "odd characters sanitized",
			url:  "https://cdn-images-1.medium.com/max/800/1*aB cD.jpeg",
			slug: "my-post",
			want: "my-post_1-ab-cd.jpeg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Filename(tt.url, tt.slug); got != tt.want {
				t.Fatalf("Filename(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestFilenameWithoutBasename(t *testing.T) {
	got := Filename("https://cdn-images-1.medium.com/max/800/", "my-post")
	if !strings.HasPrefix(got, "my-post_image_") || !strings.HasSuffix(got, ".jpg") {
		t.Fatalf("Filename() = %q, want generated my-post_image_N.jpg", got)
	}
	if again := Filename("https://cdn-images-1.medium.com/max/800/", "my-post"); again != got {
		t.Fatalf("generated filename not stable: %q vs %q", again, got)
	}
}

func TestFetchStoresFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("png-bytes"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	f, err := New(dir, time.Second, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}

	name, err := f.Fetch(context.Background(), srv.URL+"/pic.png", "post")
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("stored %q", data)
	}
}

func TestFetchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f, err := New(t.TempDir(), time.Second, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Fetch(context.Background(), srv.URL+"/gone.png", "post"); err == nil {
		t.Fatal("expected error for 404 response")
	}
}
