package helpers

import (
	"fmt"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator orders human names the way the locale expects.
// It is not safe for concurrent use.
type Collator struct {
	c *collate.Collator
}

// NewCollator builds a collator for a BCP 47 tag such as "uk" or "en"
func NewCollator(tag string) (*Collator, error) {
	lang, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("invalid collation %q: %w", tag, err)
	}
	return &Collator{c: collate.New(lang)}, nil
}

// Compare returns -1, 0 or 1
func (c *Collator) Compare(a, b string) int {
	return c.c.CompareString(a, b)
}

// Less reports whether a sorts before b
func (c *Collator) Less(a, b string) bool {
	return c.Compare(a, b) < 0
}
