package aggregators

import (
	"testing"

	"printer-report/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allTables = models.StatisticsOptions{Users: true, Groups: true, Printers: true, Details: true}

func job(user, printer string, pages, bytes int64) *models.JobRecord {
	return &models.JobRecord{UserName: user, PrinterName: printer, Pages: pages, Bytes: bytes}
}

func TestJobRolluper_Rollup_SameUserAndPrinter(t *testing.T) {
	t.Parallel()

	rolluper := NewJobRolluper()
	stats := models.NewEmptyPrintStatistics(allTables)

	rolluper.Rollup(stats, job("alice", "HP1", 1, 100), nil)
	rolluper.Rollup(stats, job("alice", "HP1", 2, 200), nil)
	rolluper.Rollup(stats, job("alice", "HP1", 3, 300), nil)

	assert.Equal(t, models.Counter{Jobs: 3, Pages: 6, Bytes: 600}, stats.Totals)

	alice, ok := stats.Users.Get("alice")
	require.True(t, ok)
	assert.Equal(t, models.Counter{Jobs: 3, Pages: 6, Bytes: 600}, alice.Counter)
	assert.InDelta(t, 2.0, alice.PagesPerJob(), 1e-9)

	hp1, ok := stats.Printers.Get("HP1")
	require.True(t, ok)
	assert.Equal(t, int64(6), hp1.Pages)
	nested, ok := hp1.Users.Get("alice")
	require.True(t, ok)
	assert.Equal(t, int64(3), nested.Jobs)
	assert.Equal(t, 0, hp1.Groups.Len())
	assert.Equal(t, 0, stats.Groups.Len())

	assert.Len(t, stats.Details, 3)
}

func TestJobRolluper_Rollup_CountsOncePerGroup(t *testing.T) {
	t.Parallel()

	rolluper := NewJobRolluper()
	stats := models.NewEmptyPrintStatistics(allTables)

	rolluper.Rollup(stats, job("alice", "HP1", 4, 1024), []string{"Finance", "Staff"})
	rolluper.Rollup(stats, job("bob", "HP2", 1, 10), []string{"Staff"})

	assert.Equal(t, int64(2), stats.Totals.Jobs)

	finance, _ := stats.Groups.Get("Finance")
	staff, _ := stats.Groups.Get("Staff")
	assert.Equal(t, models.Counter{Jobs: 1, Pages: 4, Bytes: 1024}, finance.Counter)
	assert.Equal(t, models.Counter{Jobs: 2, Pages: 5, Bytes: 1034}, staff.Counter)

	hp1, _ := stats.Printers.Get("HP1")
	assert.Equal(t, 2, hp1.Groups.Len())
	hp2, _ := stats.Printers.Get("HP2")
	assert.Equal(t, 1, hp2.Groups.Len())
}

func TestJobRolluper_Rollup_DisabledTables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts models.StatisticsOptions
	}{
		{"printers without users", models.StatisticsOptions{Groups: true, Printers: true}},
		{"users without printers", models.StatisticsOptions{Users: true}},
		{"totals only", models.StatisticsOptions{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stats := models.NewEmptyPrintStatistics(tt.opts)
			NewJobRolluper().Rollup(stats, job("alice", "HP1", 2, 20), []string{"Staff"})

			assert.Equal(t, models.Counter{Jobs: 1, Pages: 2, Bytes: 20}, stats.Totals)
			assert.Nil(t, stats.Details)
			if stats.Printers != nil {
				hp1, ok := stats.Printers.Get("HP1")
				require.True(t, ok)
				assert.Equal(t, 0, hp1.Users.Len(), "nested users only filled when users are enabled")
				assert.Equal(t, 1, hp1.Groups.Len())
			}
			if stats.Users != nil {
				assert.Equal(t, 1, stats.Users.Len())
			}
		})
	}
}
