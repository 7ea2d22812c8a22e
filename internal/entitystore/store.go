// Package entitystore provides a read-only, name-keyed index over parsed
// entity records, backed by go-memdb.
//
// # Purpose
//
// The resolver walks inheritance chains by repeatedly looking up a parent by
// name. The store is that lookup structure: it is filled once from the parsed
// records and only read afterwards.
//
// # Characteristics
//
//   - **Ephemeral:** built fresh for each run, never persisted
//   - **Unique names:** a later record with an already-seen name replaces the
//     earlier one, matching how the game merges appended classes
//   - **Ordered listing:** Names returns identifiers in index order, which is
//     lexicographic
package entitystore

import (
	"fmt"

	"github.com/hashicorp/go-memdb"
	"github.com/specialistvlad/lootgridgo/internal/entity"
)

const (
	tableEntity = "entity"
	indexID     = "id"
)

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableEntity: {
				Name: tableEntity,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {
						Name:    indexID,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Name"},
					},
				},
			},
		},
	}
}

// Store is the immutable entity index.
type Store struct {
	db *memdb.MemDB
}

// New indexes records. Records with an empty name cannot be indexed and are
// skipped.
func New(records []entity.Record) (*Store, error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, fmt.Errorf("failed to create entity index: %w", err)
	}

	txn := db.Txn(true)
	defer txn.Abort()
	for i := range records {
		if records[i].Name == "" {
			continue
		}
		rec := records[i]
		if err := txn.Insert(tableEntity, &rec); err != nil {
			return nil, fmt.Errorf("failed to index entity %q: %w", rec.Name, err)
		}
	}
	txn.Commit()

	return &Store{db: db}, nil
}

// Get returns the record named name.
func (s *Store) Get(name string) (entity.Record, bool) {
	if name == "" {
		return entity.Record{}, false
	}
	raw, err := s.db.Txn(false).First(tableEntity, indexID, name)
	if err != nil || raw == nil {
		return entity.Record{}, false
	}
	rec, ok := raw.(*entity.Record)
	if !ok {
		return entity.Record{}, false
	}
	return *rec, true
}

// Names returns every indexed name in lexicographic order.
func (s *Store) Names() []string {
	it, err := s.db.Txn(false).Get(tableEntity, indexID)
	if err != nil {
		return nil
	}
	var names []string
	for raw := it.Next(); raw != nil; raw = it.Next() {
		if rec, ok := raw.(*entity.Record); ok {
			names = append(names, rec.Name)
		}
	}
	return names
}

// Len reports the number of distinct names.
func (s *Store) Len() int {
	return len(s.Names())
}
