// Package core defines the shared types and stage interfaces for mediumpress.
// Each stage of the conversion pipeline is a clean, testable interface.
package core

import (
	"context"
	"time"
)

// RawPost holds a single Medium export document after parsing.
// It is read once from the input provider and never mutated afterwards.
type RawPost struct {
	Title    string
	Body     string // HTML fragment of the post body section
	Filename string
}

// ExportRecord is the per-post unit of output consumed by the envelope
// builder. Built once per post; immutable.
type ExportRecord struct {
	ID          int
	Title       string
	Slug        string
	Content     string // canonical HTML
	PublishedAt time.Time
	PostDate    string // sortable form, e.g. "2019-07-04 00:00:00"
	PubDate     string // RFC-822 display form, e.g. "Thu, 04 Jul 2019 00:00:00 +0000"
	Categories  []string
	Tags        []string
}

// ExportMeta holds batch-level metadata handed to the envelope builder.
type ExportMeta struct {
	Author   string
	Domain   string
	Language string
}

// Source supplies raw posts from the export directory.
type Source interface {
	// List returns the identifiers of all candidate documents, sorted.
	List() ([]string, error)
	// Load parses one document. A document missing the required markers
	// (primary heading, body section) yields source.ErrMissingMarkers;
	// callers skip, report, and continue.
	Load(name string) (*RawPost, error)
}

// ImageFetcher retrieves a remote image and stores it locally.
type ImageFetcher interface {
	// Fetch downloads srcURL and returns the local filename it was stored
	// under. Any failure is non-fatal to the caller: the image degrades to
	// its original remote URL.
	Fetch(ctx context.Context, srcURL, postSlug string) (string, error)
}

// Envelope wraps an ordered batch of records into the final import document.
type Envelope interface {
	Build(records []ExportRecord) ([]byte, error)
}

// Renderer converts a single converted record into a preview output format.
type Renderer interface {
	Render(rec ExportRecord) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
