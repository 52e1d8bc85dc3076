package careers

import "sort"

// Catalog maps answer tags to the ordered career titles they recommend.
// It is built once and never mutated, so a single Catalog can back any number
// of sessions without locking.
type Catalog struct {
	entries map[string][]string
}

// NewCatalog copies entries into a new Catalog. Later changes to the
// provided map or its slices are not observed by the Catalog.
func NewCatalog(entries map[string][]string) *Catalog {
	copied := make(map[string][]string, len(entries))
	for tag, titles := range entries {
		copied[tag] = append([]string(nil), titles...)
	}

	return &Catalog{entries: copied}
}

// Titles returns a copy of the titles listed for tag.
func (c *Catalog) Titles(tag string) ([]string, bool) {
	if c == nil {
		return nil, false
	}

	titles, ok := c.entries[tag]
	if !ok {
		return nil, false
	}

	return append([]string(nil), titles...), true
}

// Tags returns the known tags in lexical order.
func (c *Catalog) Tags() []string {
	if c == nil {
		return nil
	}

	tags := make([]string, 0, len(c.entries))
	for tag := range c.entries {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	return tags
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}
