package domain

import "fmt"

// ItemKey identifies a checklist item within a catalog.
type ItemKey string

// ComposeKey builds the key for an item without an explicit id.
func ComposeKey(sectionKey string, index int) ItemKey {
	return ItemKey(fmt.Sprintf("%s-%d", sectionKey, index))
}

// Item is a single checklist entry.
type Item struct {
	ID          string
	Name        string
	Description string
	Example     string
	Required    bool
}

// Section groups items under a title.
type Section struct {
	Key         string
	Title       string
	Description string
	Items       []Item
}

// Catalog is an ordered, read-only set of checklist sections.
type Catalog struct {
	Name     string
	Sections []Section
}

// KeyOf returns the key of the item at idx within section.
// Explicit item ids win over the composed section-index form.
func (c Catalog) KeyOf(section Section, idx int) ItemKey {
	if id := section.Items[idx].ID; id != "" {
		return ItemKey(id)
	}
	return ComposeKey(section.Key, idx)
}

// Keys returns all item keys in catalog order.
func (c Catalog) Keys() []ItemKey {
	keys := make([]ItemKey, 0, c.ItemCount())
	for _, s := range c.Sections {
		for i := range s.Items {
			keys = append(keys, c.KeyOf(s, i))
		}
	}
	return keys
}

// Lookup finds the item and its section for key.
func (c Catalog) Lookup(key ItemKey) (Item, Section, bool) {
	for _, s := range c.Sections {
		for i, it := range s.Items {
			if c.KeyOf(s, i) == key {
				return it, s, true
			}
		}
	}
	return Item{}, Section{}, false
}

// Contains reports whether key names an item in the catalog.
func (c Catalog) Contains(key ItemKey) bool {
	_, _, ok := c.Lookup(key)
	return ok
}

// Section returns the section with the given key.
func (c Catalog) Section(key string) (Section, bool) {
	for _, s := range c.Sections {
		if s.Key == key {
			return s, true
		}
	}
	return Section{}, false
}

// ItemCount returns the number of items across all sections.
func (c Catalog) ItemCount() int {
	n := 0
	for _, s := range c.Sections {
		n += len(s.Items)
	}
	return n
}

// RequiredCount returns the number of items flagged as required.
func (c Catalog) RequiredCount() int {
	n := 0
	for _, s := range c.Sections {
		for _, it := range s.Items {
			if it.Required {
				n++
			}
		}
	}
	return n
}
