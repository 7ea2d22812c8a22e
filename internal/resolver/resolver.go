// Package resolver assigns every entity its effective loot container and
// grid shape, walking the inheritance chain and applying fallback defaults
// where the configuration is silent.
//
// Resolution is total: each input record yields exactly one Resolved value
// and no input, however inconsistent, makes it fail. Inconsistencies are
// reported as Notes instead.
package resolver

import (
	"context"
	"fmt"

	"github.com/specialistvlad/lootgridgo/internal/catalog"
	"github.com/specialistvlad/lootgridgo/internal/ctxlog"
	"github.com/specialistvlad/lootgridgo/internal/entity"
	"github.com/specialistvlad/lootgridgo/internal/entitystore"
	"github.com/specialistvlad/lootgridgo/internal/policy"
)

// Origin tells where an entity's container identifier came from.
type Origin string

const (
	OriginOwn       Origin = "own"
	OriginInherited Origin = "inherited"
	OriginFallback  Origin = "fallback"
)

// Resolved is the storage assignment of one entity.
type Resolved struct {
	Name          string
	DisplayName   string
	ContainerID   string
	Rows          int
	Columns       int
	TotalSlots    int
	Origin        Origin
	InheritedFrom string // ancestor that supplied the loot list, if any
}

// Resolve returns one Resolved per record, in input order, together with the
// notes collected along the way. Notes are also logged as warnings.
func Resolve(ctx context.Context, records []entity.Record, cat *catalog.Catalog, pol policy.Policy) ([]Resolved, []Note) {
	logger := ctxlog.FromContext(ctx)

	var idx index
	store, err := entitystore.New(records)
	if err != nil {
		logger.Warn("Entity index unavailable, falling back to a plain map.", "error", err)
		idx = newMapIndex(records)
	} else {
		logger.Debug("Entity index built.", "entities", store.Len())
		idx = store
	}

	var notes []Note
	out := make([]Resolved, 0, len(records))
	for _, rec := range records {
		res, recNotes := resolveOne(rec, idx, len(records), cat, pol)
		out = append(out, res)
		notes = append(notes, recNotes...)
		logger.Debug("Entity resolved.",
			"entity", res.Name,
			"container", res.ContainerID,
			"origin", res.Origin,
			"inherited_from", res.InheritedFrom,
			"shape", fmt.Sprintf("%dx%d", res.Rows, res.Columns),
		)
	}

	for _, n := range notes {
		logger.Warn(n.String(), "entity", n.Entity, "kind", n.Kind)
	}
	return out, notes
}

func resolveOne(rec entity.Record, idx index, bound int, cat *catalog.Catalog, pol policy.Policy) (Resolved, []Note) {
	var notes []Note
	res := Resolved{
		Name:        rec.Name,
		DisplayName: DisplayName(rec.Name, pol.Renames),
	}

	containerID, from, walkNotes := lootListOf(rec, idx, bound)
	notes = append(notes, walkNotes...)
	switch {
	case containerID != "" && from == "":
		res.Origin = OriginOwn
	case containerID != "":
		res.Origin = OriginInherited
		res.InheritedFrom = from
	default:
		containerID = pol.FallbackContainer
		res.Origin = OriginFallback
	}
	res.ContainerID = containerID

	shape, ok := cat.Lookup(containerID)
	if !ok {
		shape = catalog.Shape{Rows: pol.FallbackShape.Rows, Columns: pol.FallbackShape.Columns}
		notes = append(notes, unknownContainer(rec.Name, containerID, cat.IDs()))
	}
	res.Rows = shape.Rows
	res.Columns = shape.Columns
	res.TotalSlots = shape.Slots()

	return res, notes
}

// lootListOf returns the entity's own loot list, or the first one found up
// its inheritance chain together with the ancestor that declared it. The walk
// takes at most bound steps, so a cycle ends as an exhausted chain.
func lootListOf(rec entity.Record, idx index, bound int) (string, string, []Note) {
	if rec.LootList != "" {
		return rec.LootList, "", nil
	}

	parent := rec.Extends
	for step := 0; parent != "" && step < bound; step++ {
		p, ok := idx.Get(parent)
		if !ok {
			return "", "", []Note{unknownParent(rec.Name, parent, idx.Names())}
		}
		if p.LootList != "" {
			return p.LootList, p.Name, nil
		}
		parent = p.Extends
	}

	if parent != "" {
		return "", "", []Note{{
			Entity: rec.Name,
			Kind:   NoteCycle,
			Detail: fmt.Sprintf("inheritance chain did not end after %d steps (stopped at %q)", bound, parent),
		}}
	}
	return "", "", nil
}
