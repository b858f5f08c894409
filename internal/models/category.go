package models

import "sort"

// Category identifies a bucket of entries. The zero value is the
// uncategorized bucket.
type Category struct {
	label string
	named bool
}

// Uncategorized returns the bucket for entries without a Categories key
func Uncategorized() Category {
	return Category{}
}

// Named returns the bucket for a declared category
func Named(label string) Category {
	return Category{label: label, named: true}
}

// IsUncategorized reports whether c is the uncategorized bucket
func (c Category) IsUncategorized() bool {
	return !c.named
}

// Label returns the category name; empty for the uncategorized bucket
func (c Category) Label() string {
	return c.label
}

func (c Category) String() string {
	if !c.named {
		return "(uncategorized)"
	}
	return c.label
}

// CategoryIndex maps each bucket to its entries. An entry declaring
// several categories is shared between their buckets.
type CategoryIndex map[Category][]*Entry

// Add appends an entry to a bucket
func (idx CategoryIndex) Add(cat Category, entry *Entry) {
	idx[cat] = append(idx[cat], entry)
}

// Order returns the buckets sorted by label, uncategorized last
func (idx CategoryIndex) Order() []Category {
	named := make([]Category, 0, len(idx))
	hasUncategorized := false
	for cat := range idx {
		if cat.IsUncategorized() {
			hasUncategorized = true
			continue
		}
		named = append(named, cat)
	}

	sort.Slice(named, func(i, j int) bool {
		return named[i].label < named[j].label
	})

	if hasUncategorized {
		named = append(named, Uncategorized())
	}
	return named
}
