package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityTable_AddJob_CreatesThenAccumulates(t *testing.T) {
	t.Parallel()

	table := NewEntityTable(EntityUser)

	table.AddJob("alice", 1, 100)
	table.AddJob("alice", 2, 200)
	table.AddJob("alice", 3, 300)

	alice, ok := table.Get("alice")
	require.True(t, ok)
	assert.Equal(t, int64(3), alice.Jobs)
	assert.Equal(t, int64(6), alice.Pages)
	assert.Equal(t, int64(600), alice.Bytes)
	assert.InDelta(t, 2.0, alice.PagesPerJob(), 1e-9)
	assert.Equal(t, 1, table.Len())
	assert.Nil(t, alice.Users, "user rows carry no nested tables")
}

func TestEntityTable_Width_TracksLongestName(t *testing.T) {
	t.Parallel()

	table := NewEntityTable(EntityGroup)
	assert.Equal(t, 1, table.Width(), "empty table has width 1")

	table.AddJob("ops", 1, 1)
	table.AddJob("engineering", 1, 1)
	table.AddJob("hr", 1, 1)

	assert.Equal(t, len("engineering"), table.Width())
}

func TestEntityTable_Ranked_DescendingPagesStableTies(t *testing.T) {
	t.Parallel()

	table := NewEntityTable(EntityUser)
	table.AddJob("carol", 4, 10)
	table.AddJob("alice", 9, 10)
	table.AddJob("bob", 4, 10)
	table.AddJob("dave", 1, 10)

	var names []string
	for _, e := range table.Ranked() {
		names = append(names, e.Name)
	}

	assert.Equal(t, []string{"alice", "carol", "bob", "dave"}, names)

	// ranking must not disturb insertion order
	var inserted []string
	for _, e := range table.Entities() {
		inserted = append(inserted, e.Name)
	}
	assert.Equal(t, []string{"carol", "alice", "bob", "dave"}, inserted)
}

func TestPrinterTable_RowsCarryNestedTables(t *testing.T) {
	t.Parallel()

	printers := NewPrinterTable()
	hp := printers.AddJob("HP1", 2, 20)
	hp.Users.AddJob("alice", 2, 20)
	hp.Groups.AddJob("staff", 2, 20)

	again := printers.AddJob("HP1", 1, 10)
	require.Same(t, hp, again)
	assert.Equal(t, int64(2), again.Jobs)
	assert.Equal(t, EntityUser, again.Users.Kind)
	assert.Equal(t, EntityGroup, again.Groups.Kind)
	assert.Equal(t, 1, again.Users.Len())
}

func TestCounter_AveragesWithoutJobs(t *testing.T) {
	t.Parallel()

	var c Counter
	assert.Zero(t, c.PagesPerJob())
	assert.Zero(t, c.BytesPerJob())

	c.AddJob(3, 1000)
	c.AddJob(0, 24)
	assert.InDelta(t, 1.5, c.PagesPerJob(), 1e-9)
	assert.InDelta(t, 512.0, c.BytesPerJob(), 1e-9)
}
