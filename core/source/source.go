// Package source reads Medium HTML export files. An export document carries
// the post title in its first <h1> and the post body in a
// <section data-field="body"> element; files missing either marker are not
// posts (drafts, profile pages) and are reported as such, never as fatal
// errors.
package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/lukasmeier/mediumpress/core"
)

// ErrMissingMarkers reports a document without the required title heading or
// body section. Callers skip the document and continue the batch.
var ErrMissingMarkers = errors.New("document has no title heading or body section")

// bodySelector finds the Medium post body container.
const bodySelector = `section[data-field="body"]`

// filenameDateRe matches the date prefix of Medium export filenames,
// e.g. "2019-07-04_Title-5691beba463e.html".
var filenameDateRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})_`)

// Dir supplies posts from a directory of export files.
type Dir struct {
	Path string
}

// NewDir creates a Dir source over the given directory.
func NewDir(path string) *Dir {
	return &Dir{Path: path}
}

// List returns the names of all .html files in the directory, sorted, so
// batch output is reproducible regardless of filesystem order.
func (d *Dir) List() ([]string, error) {
	entries, err := os.ReadDir(d.Path)
	if err != nil {
		return nil, fmt.Errorf("reading export directory %s: %w", d.Path, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".html") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Load parses one export file into a RawPost. A file without both required
// markers yields ErrMissingMarkers.
func (d *Dir) Load(name string) (*core.RawPost, error) {
	path := filepath.Join(d.Path, name)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	title := doc.Find("h1").First()
	body := doc.Find(bodySelector).First()
	if title.Length() == 0 || body.Length() == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrMissingMarkers)
	}

	bodyHTML, err := goquery.OuterHtml(body)
	if err != nil {
		return nil, fmt.Errorf("serializing body of %s: %w", name, err)
	}

	return &core.RawPost{
		Title:    strings.TrimSpace(title.Text()),
		Body:     bodyHTML,
		Filename: name,
	}, nil
}

// DateFromFilename extracts the publication date from an export filename.
// The second return reports whether a date prefix was found; without one the
// current time is returned and the caller should log a warning.
func DateFromFilename(name string) (time.Time, bool) {
	m := filenameDateRe.FindStringSubmatch(name)
	if m == nil {
		return time.Now(), false
	}
	ts, err := time.Parse("2006-01-02", m[1])
	if err != nil {
		return time.Now(), false
	}
	return ts, true
}
