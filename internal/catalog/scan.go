package catalog

import (
	"regexp"
	"strconv"

	"github.com/specialistvlad/lootgridgo/internal/policy"
)

var (
	// lootcontainer start tags; attributes are matched separately so their
	// order does not matter.
	containerTagRe = regexp.MustCompile(`<lootcontainer\s([^>]*)`)
	nameAttrRe     = regexp.MustCompile(`(?:^|\s)name\s*=\s*"([^"]+)"`)
	sizeAttrRe     = regexp.MustCompile(`(?:^|\s)size\s*=\s*"\s*(\d+)\s*,\s*(\d+)\s*"`)
)

// Declaration is one container found in raw loot text.
type Declaration struct {
	ID    string
	Shape Shape
}

// Scan finds every lootcontainer declaration carrying both a name and a
// "ROWS,COLUMNS" size in raw text. It never fails: the text does not have to
// be well-formed markup, and tags missing either attribute are ignored.
func Scan(text string) []Declaration {
	var out []Declaration
	for _, m := range containerTagRe.FindAllStringSubmatch(text, -1) {
		attrs := m[1]
		name := nameAttrRe.FindStringSubmatch(attrs)
		size := sizeAttrRe.FindStringSubmatch(attrs)
		if name == nil || size == nil {
			continue
		}
		rows, err := strconv.Atoi(size[1])
		if err != nil {
			continue
		}
		cols, err := strconv.Atoi(size[2])
		if err != nil {
			continue
		}
		out = append(out, Declaration{ID: name[1], Shape: Shape{Rows: rows, Columns: cols}})
	}
	return out
}

// apply inserts or overwrites entries from decls in order, so a later
// declaration of the same id wins over an earlier one and over defaults.
// Declarations put rejects are dropped.
func (c *Catalog) apply(decls []Declaration) {
	for _, d := range decls {
		c.put(d.ID, d.Shape)
	}
}

// FromText builds a catalog from defaults overlaid with every declaration
// found in text.
func FromText(text string, defaults map[string]policy.Shape) *Catalog {
	c := New(defaults)
	c.apply(Scan(text))
	return c
}
