// Package taxonomy holds the immutable award category configuration.
//
// Categories are loaded once at construction; keyword and phrase patterns
// are compiled at that point and reused for every scoring call.
package taxonomy

import (
	"fmt"
	"regexp"
	"strings"
)

// Category is one award classification target.
type Category struct {
	Key       string   `koanf:"key" json:"key"`
	Name      string   `koanf:"name" json:"name"`
	Keywords  []string `koanf:"keywords" json:"keywords"`
	Phrases   []string `koanf:"phrases" json:"phrases"`
	Criteria  []string `koanf:"criteria" json:"criteria"`
	Threshold int      `koanf:"threshold" json:"threshold"`

	keywordPatterns []*regexp.Regexp
	phrasePatterns  []*regexp.Regexp
}

// KeywordPatterns returns the precompiled word-boundary pattern per keyword,
// index-aligned with Keywords.
func (c *Category) KeywordPatterns() []*regexp.Regexp { return c.keywordPatterns }

// PhrasePatterns returns the precompiled literal pattern per phrase,
// index-aligned with Phrases.
func (c *Category) PhrasePatterns() []*regexp.Regexp { return c.phrasePatterns }

// compile builds the match patterns. Keywords match on word boundaries;
// phrases match as literal substrings. Both assume normalized (lower-cased)
// input text.
func (c *Category) compile() error {
	c.keywordPatterns = make([]*regexp.Regexp, len(c.Keywords))
	for i, kw := range c.Keywords {
		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(strings.ToLower(kw)) + `\b`)
		if err != nil {
			return fmt.Errorf("%w: category %q keyword %q: %v", ErrInvalidCategory, c.Key, kw, err)
		}
		c.keywordPatterns[i] = re
	}
	c.phrasePatterns = make([]*regexp.Regexp, len(c.Phrases))
	for i, ph := range c.Phrases {
		re, err := regexp.Compile(regexp.QuoteMeta(strings.ToLower(ph)))
		if err != nil {
			return fmt.Errorf("%w: category %q phrase %q: %v", ErrInvalidCategory, c.Key, ph, err)
		}
		c.phrasePatterns[i] = re
	}
	return nil
}

func (c *Category) validate() error {
	switch {
	case strings.TrimSpace(c.Key) == "":
		return fmt.Errorf("%w: empty key", ErrInvalidCategory)
	case strings.TrimSpace(c.Name) == "":
		return fmt.Errorf("%w: category %q has no name", ErrInvalidCategory, c.Key)
	case c.Threshold < 0:
		return fmt.Errorf("%w: category %q has negative threshold", ErrInvalidCategory, c.Key)
	}
	return nil
}

// Taxonomy is an ordered, keyed set of award categories. Declaration order
// is significant: it breaks classification ties.
type Taxonomy struct {
	categories []*Category
	index      map[string]*Category
}

// New validates and compiles the given categories into a Taxonomy.
func New(categories []Category) (*Taxonomy, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: no categories", ErrInvalidCategory)
	}
	t := &Taxonomy{
		categories: make([]*Category, 0, len(categories)),
		index:      make(map[string]*Category, len(categories)),
	}
	for i := range categories {
		c := categories[i]
		if err := c.validate(); err != nil {
			return nil, err
		}
		if _, dup := t.index[c.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrInvalidCategory, c.Key)
		}
		if err := c.compile(); err != nil {
			return nil, err
		}
		t.categories = append(t.categories, &c)
		t.index[c.Key] = &c
	}
	return t, nil
}

// Categories returns the categories in declaration order. The returned
// slice must not be modified.
func (t *Taxonomy) Categories() []*Category { return t.categories }

// Get returns the category for key, or ErrNotFound.
func (t *Taxonomy) Get(key string) (*Category, error) {
	c, ok := t.index[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return c, nil
}

// Len returns the number of categories.
func (t *Taxonomy) Len() int { return len(t.categories) }
