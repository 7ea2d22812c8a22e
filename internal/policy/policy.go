// Package policy holds the fixed defaults the extraction pipeline falls back
// on: built-in container shapes, the fallback container identifier and shape,
// the entity name prefix and the display-name substitutions.
//
// A Policy is a plain value. Components receive it as an argument and never
// read it from a package global, so tests can swap any default without
// touching process state.
package policy

// Shape is the rows/columns pair of a container grid as declared in
// configuration. The catalog package derives slot counts from it.
type Shape struct {
	Rows    int
	Columns int
}

// Rename is a single ordered textual substitution applied to entity names
// when deriving their display label.
type Rename struct {
	From string
	To   string
}

// Policy bundles every default used by the pipeline.
type Policy struct {
	// EntityPrefix selects which entity classes are vehicles.
	EntityPrefix string
	// Containers seeds the container catalog before any loot source is read.
	Containers map[string]Shape
	// FallbackContainer is used when neither an entity nor any ancestor
	// declares a loot list.
	FallbackContainer string
	// FallbackShape is used when a container id is missing from the catalog.
	FallbackShape Shape
	// Renames are applied in order; the more specific prefix comes first.
	Renames []Rename
}

// Default returns a fresh copy of the built-in policy.
func Default() Policy {
	return Policy{
		EntityPrefix: "vehicle",
		Containers: map[string]Shape{
			"vehicleMinibike":   {Rows: 6, Columns: 6},
			"vehicleMotorcycle": {Rows: 8, Columns: 6},
			"vehicle4x4Truck":   {Rows: 9, Columns: 8},
			"vehicleGyrocopter": {Rows: 9, Columns: 8},
		},
		FallbackContainer: "vehicle4x4Truck",
		FallbackShape:     Shape{Rows: 9, Columns: 8},
		Renames: []Rename{
			{From: "vehicleVM", To: "VM "},
			{From: "vehicle", To: ""},
		},
	}
}

// Clone returns a deep copy so callers can overlay settings without
// aliasing the receiver's map or slice.
func (p Policy) Clone() Policy {
	out := p
	out.Containers = make(map[string]Shape, len(p.Containers))
	for id, s := range p.Containers {
		out.Containers[id] = s
	}
	out.Renames = append([]Rename(nil), p.Renames...)
	return out
}
