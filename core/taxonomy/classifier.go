// Package taxonomy derives categories and tags for a post from its title and
// content via keyword matching. The keyword tables are plain configuration
// handed in at construction; swapping them requires no code change here.
package taxonomy

import (
	"strings"
)

// CategoryRule maps one category name to the keywords that select it.
// Rules are evaluated in declaration order and results keep that order.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Tables is the classifier configuration.
type Tables struct {
	// Categories is the ordered rule list. At most MaxCategories of the
	// matching ones are kept.
	Categories []CategoryRule `yaml:"categories"`
	// DefaultCategory is used when no rule matches.
	DefaultCategory string `yaml:"default_category"`
	// Tags is the ordered keyword list; matches are upper-cased. At most
	// MaxTags are kept.
	Tags []string `yaml:"tags"`
}

const (
	// MaxCategories bounds the categories per post.
	MaxCategories = 2
	// MaxTags bounds the tags per post.
	MaxTags = 5
)

// Classifier matches keyword tables against post text.
type Classifier struct {
	tables Tables
}

// New creates a Classifier over the given tables.
func New(tables Tables) *Classifier {
	return &Classifier{tables: tables}
}

// Classify returns the categories and tags for a post. Matching is
// case-insensitive substring search over title and content combined.
// At least one category is always returned (the default as fallback).
func (c *Classifier) Classify(title, content string) (categories, tags []string) {
	haystack := strings.ToLower(title + " " + content)

	for _, rule := range c.tables.Categories {
		if len(categories) == MaxCategories {
			break
		}
		for _, kw := range rule.Keywords {
			if strings.Contains(haystack, strings.ToLower(kw)) {
				categories = append(categories, rule.Name)
				break
			}
		}
	}
	if len(categories) == 0 {
		categories = []string{c.tables.DefaultCategory}
	}

	for _, kw := range c.tables.Tags {
		if len(tags) == MaxTags {
			break
		}
		if strings.Contains(haystack, strings.ToLower(kw)) {
			tags = append(tags, strings.ToUpper(kw))
		}
	}
	return categories, tags
}
