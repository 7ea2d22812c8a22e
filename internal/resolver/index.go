package resolver

import (
	"sort"

	"github.com/specialistvlad/lootgridgo/internal/entity"
)

// index is the by-name parent lookup the inheritance walk runs on.
type index interface {
	Get(name string) (entity.Record, bool)
	Names() []string
}

// mapIndex is used when the entity store cannot be built. Lookup rules match
// the store: empty names are skipped and a later duplicate wins.
type mapIndex map[string]entity.Record

func newMapIndex(records []entity.Record) mapIndex {
	m := make(mapIndex, len(records))
	for _, rec := range records {
		if rec.Name != "" {
			m[rec.Name] = rec
		}
	}
	return m
}

func (m mapIndex) Get(name string) (entity.Record, bool) {
	rec, ok := m[name]
	return rec, ok
}

func (m mapIndex) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
