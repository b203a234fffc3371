package models

import (
	"sort"
	"unicode/utf8"
)

const (
	EntityUser    = "User"
	EntityGroup   = "Group"
	EntityPrinter = "Printer"
)

// Entity is a named row of an EntityTable. Printer rows carry nested user and group tables so the report
// can break each printer down by who printed on it; for every other kind Users and Groups are nil.
type Entity struct {
	Name string
	Counter

	Users  *EntityTable
	Groups *EntityTable
}

// EntityTable maps entity names to counters and remembers first-insertion order, which is the tie-break
// used when rows are ranked by page count.
//
// Example (kind "User"):
//
//	table.AddJob("alice", 2, 200)
//	table.AddJob("bob", 5, 900)
//	table.AddJob("alice", 1, 100)
//	// alice: jobs=2 pages=3 bytes=300, bob: jobs=1 pages=5 bytes=900
//	// Ranked() -> [bob, alice], Width() -> 5
type EntityTable struct {
	Kind string

	nested  bool
	order   []*Entity
	byName  map[string]*Entity
	maxName int
}

// NewEntityTable returns an empty table for users or groups.
func NewEntityTable(kind string) *EntityTable {
	return &EntityTable{
		Kind:    kind,
		byName:  make(map[string]*Entity),
		maxName: 1,
	}
}

// NewPrinterTable returns an empty printer table whose rows carry per-user and per-group sub-tables.
func NewPrinterTable() *EntityTable {
	table := NewEntityTable(EntityPrinter)
	table.nested = true
	return table
}

// AddJob creates the entity on first sight with a zero counter, then adds one job to it.
// The returned entity stays owned by the table.
func (t *EntityTable) AddJob(name string, pages, bytes int64) *Entity {
	entity, exists := t.byName[name]
	if !exists {
		entity = &Entity{Name: name}
		if t.nested {
			entity.Users = NewEntityTable(EntityUser)
			entity.Groups = NewEntityTable(EntityGroup)
		}
		t.byName[name] = entity
		t.order = append(t.order, entity)
		if n := utf8.RuneCountInString(name); n > t.maxName {
			t.maxName = n
		}
	}
	entity.AddJob(pages, bytes)
	return entity
}

// Get returns the named entity, if present.
func (t *EntityTable) Get(name string) (*Entity, bool) {
	entity, ok := t.byName[name]
	return entity, ok
}

// Len returns the number of distinct entities.
func (t *EntityTable) Len() int {
	return len(t.order)
}

// Width returns the length of the longest entity name seen, never less than 1.
func (t *EntityTable) Width() int {
	return t.maxName
}

// Entities returns the rows in first-insertion order.
func (t *EntityTable) Entities() []*Entity {
	out := make([]*Entity, len(t.order))
	copy(out, t.order)
	return out
}

// Ranked returns the rows by descending page count; equal page counts keep first-insertion order.
func (t *EntityTable) Ranked() []*Entity {
	out := t.Entities()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Pages > out[j].Pages
	})
	return out
}
