package resolver

import (
	"strings"

	"github.com/specialistvlad/lootgridgo/internal/policy"
)

// DisplayName derives a human-friendly label from an entity name by applying
// renames one after another, each to every occurrence. Order matters when
// prefixes overlap: "vehicleVM" must be rewritten before "vehicle", or the
// VM marker is lost.
func DisplayName(name string, renames []policy.Rename) string {
	for _, r := range renames {
		if r.From == "" {
			continue
		}
		name = strings.ReplaceAll(name, r.From, r.To)
	}
	return name
}
