// Package assemble combines a normalized post with its derived taxonomy into
// one immutable ExportRecord.
package assemble

import (
	"hash/fnv"
	"time"

	"github.com/lukasmeier/mediumpress/core"
	"github.com/lukasmeier/mediumpress/core/slugify"
	"github.com/lukasmeier/mediumpress/core/taxonomy"
)

const (
	// idBound keeps derived post ids in WordPress-friendly range.
	idBound = 100000

	postDateLayout = "2006-01-02 15:04:05"
	pubDateLayout  = "Mon, 02 Jan 2006 15:04:05 +0000"
)

// Assembler builds export records. It is a pure function of its inputs plus
// the classifier's configuration.
type Assembler struct {
	classifier *taxonomy.Classifier
}

// New creates an Assembler using the given classifier.
func New(classifier *taxonomy.Classifier) *Assembler {
	return &Assembler{classifier: classifier}
}

// Assemble builds the record for one post. An id of zero derives a
// deterministic id from the title, so re-runs produce identical output.
// Duplicate ids across a batch are tolerated, not deduplicated.
func (a *Assembler) Assemble(title, content string, published time.Time, id int) core.ExportRecord {
	if id == 0 {
		id = DeriveID(title)
	}
	categories, tags := a.classifier.Classify(title, content)

	return core.ExportRecord{
		ID:          id,
		Title:       title,
		Slug:        slugify.NormalizeSlug(title),
		Content:     content,
		PublishedAt: published,
		PostDate:    published.Format(postDateLayout),
		PubDate:     published.Format(pubDateLayout),
		Categories:  categories,
		Tags:        tags,
	}
}

// DeriveID maps a title to a stable post id: a 32-bit FNV-1a hash of the
// title reduced modulo a fixed bound. Not collision-free.
func DeriveID(title string) int {
	h := fnv.New32a()
	h.Write([]byte(title))
	return int(h.Sum32() % idBound)
}
