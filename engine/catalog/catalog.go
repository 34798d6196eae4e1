// Package catalog builds the set of icon categories a run can place on the
// board, from per-source icon lists.
package catalog

import "fmt"

// Category identifies a placeable thing. Icons have positive ids; id 0 is the
// free hex; negative ids are internal markers that never reach the dataset.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Reserved categories.
var (
	FreeHex = Category{ID: 0, Name: "free_hex"}
	Blocker = Category{ID: -1, Name: "_EMPTY_"}
	Decoy   = Category{ID: -2, Name: "_SCRIPT_"}
)

// IsIcon reports whether c is a classifiable icon.
func (c Category) IsIcon() bool {
	return c.ID > 0
}

func (c Category) String() string {
	return fmt.Sprintf("%s[id=%d]", c.Name, c.ID)
}

// Source is one named list of icon names, in document order.
type Source struct {
	Name  string
	Icons []string
}

// Catalog is the fixed set of icon categories for a run.
type Catalog struct {
	icons  []Category
	byName map[string]Category
}

// Build collects the icons of every enabled source, in source order, and
// assigns each distinct name a sequential id starting at 1.
func Build(sources []Source, enabled []string) *Catalog {
	on := make(map[string]bool, len(enabled))
	for _, name := range enabled {
		on[name] = true
	}

	c := &Catalog{byName: make(map[string]Category)}
	for _, src := range sources {
		if !on[src.Name] {
			continue
		}
		for _, name := range src.Icons {
			c.add(name)
		}
	}
	return c
}

// New builds a catalog from a plain list of names.
func New(names ...string) *Catalog {
	c := &Catalog{byName: make(map[string]Category)}
	for _, name := range names {
		c.add(name)
	}
	return c
}

func (c *Catalog) add(name string) {
	if _, ok := c.byName[name]; ok {
		return
	}
	cat := Category{ID: len(c.icons) + 1, Name: name}
	c.icons = append(c.icons, cat)
	c.byName[name] = cat
}

// Icons returns the icon categories in id order.
func (c *Catalog) Icons() []Category {
	return append([]Category(nil), c.icons...)
}

// Categories returns every category exported to the dataset: the free hex
// followed by the icons.
func (c *Catalog) Categories() []Category {
	out := make([]Category, 0, len(c.icons)+1)
	out = append(out, FreeHex)
	return append(out, c.icons...)
}

// Lookup finds an icon category by name.
func (c *Catalog) Lookup(name string) (Category, bool) {
	cat, ok := c.byName[name]
	return cat, ok
}

// Len returns the number of icon categories.
func (c *Catalog) Len() int {
	return len(c.icons)
}
