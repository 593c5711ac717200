package dungeon

import (
	"fmt"
	"sort"
)

// CatalogEntry pairs a scanned template asset with its specs. Entries are
// produced by the content scanner.
type CatalogEntry struct {
	Asset AssetRef
	Specs RoomSpecs
}

// Catalog indexes room template assets by their specs and tracks the
// per-theme maximum room dimensions, so a generator can ask "which
// templates fit here" and "how big can a forest room get".
//
// Invariant: immutable after NewCatalog returns; all accessors are pure
// lookups.
type Catalog struct {
	pathsBySpecs map[RoomSpecs][]AssetRef

	maxWidthByTheme  map[Theme]int
	maxLengthByTheme map[Theme]int
}

// NewCatalog builds a catalog from scanned entries in a single pass.
// Assets sharing specs are grouped in first-seen order. Per theme, the
// maximum width and maximum length are tracked independently; they need
// not come from the same template.
//
// Postcondition: Returns ErrEmptyCatalog for zero entries, or a wrapped
// RoomSpecs validation error for an entry with non-positive dimensions.
func NewCatalog(entries []CatalogEntry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		pathsBySpecs:     make(map[RoomSpecs][]AssetRef),
		maxWidthByTheme:  make(map[Theme]int),
		maxLengthByTheme: make(map[Theme]int),
	}

	for _, e := range entries {
		if err := e.Specs.Validate(); err != nil {
			return nil, fmt.Errorf("catalog entry %s: %w", e.Asset, err)
		}
		c.pathsBySpecs[e.Specs] = append(c.pathsBySpecs[e.Specs], e.Asset)

		if e.Specs.Width > c.maxWidthByTheme[e.Specs.Theme] {
			c.maxWidthByTheme[e.Specs.Theme] = e.Specs.Width
		}
		if e.Specs.Length > c.maxLengthByTheme[e.Specs.Theme] {
			c.maxLengthByTheme[e.Specs.Theme] = e.Specs.Length
		}
	}

	return c, nil
}

// HasSpecs reports whether at least one template with the given specs was
// indexed.
func (c *Catalog) HasSpecs(specs RoomSpecs) bool {
	_, ok := c.pathsBySpecs[specs]
	return ok
}

// AssetPaths returns the template assets matching specs, in the order they
// were scanned.
//
// Postcondition: Returns a non-empty copy, or ErrUnknownSpecs if
// !HasSpecs(specs).
func (c *Catalog) AssetPaths(specs RoomSpecs) ([]AssetRef, error) {
	paths, ok := c.pathsBySpecs[specs]
	if !ok {
		return nil, fmt.Errorf("%s: %w", specs, ErrUnknownSpecs)
	}
	return append([]AssetRef(nil), paths...), nil
}

// MaxWidth returns the maximum width across all indexed templates of theme.
//
// Postcondition: Returns a positive width, or ErrUnknownTheme if no
// template of that theme was indexed.
func (c *Catalog) MaxWidth(theme Theme) (int, error) {
	w, ok := c.maxWidthByTheme[theme]
	if !ok {
		return 0, fmt.Errorf("%s: %w", theme, ErrUnknownTheme)
	}
	return w, nil
}

// MaxLength returns the maximum length across all indexed templates of
// theme.
//
// Postcondition: Returns a positive length, or ErrUnknownTheme if no
// template of that theme was indexed.
func (c *Catalog) MaxLength(theme Theme) (int, error) {
	l, ok := c.maxLengthByTheme[theme]
	if !ok {
		return 0, fmt.Errorf("%s: %w", theme, ErrUnknownTheme)
	}
	return l, nil
}

// Themes returns the indexed themes in sorted order.
func (c *Catalog) Themes() []Theme {
	themes := make([]Theme, 0, len(c.maxWidthByTheme))
	for t := range c.maxWidthByTheme {
		themes = append(themes, t)
	}
	sort.Slice(themes, func(i, j int) bool { return themes[i] < themes[j] })
	return themes
}

// SpecsCount returns the number of distinct specs groups.
func (c *Catalog) SpecsCount() int {
	return len(c.pathsBySpecs)
}

// TemplateCount returns the total number of indexed template assets.
func (c *Catalog) TemplateCount() int {
	n := 0
	for _, paths := range c.pathsBySpecs {
		n += len(paths)
	}
	return n
}
