package models

// PrintStatistics is the aggregate state of one report run. A nil table means that breakdown is switched
// off for the run; Details is nil unless the per-job listing was requested.
type PrintStatistics struct {
	Totals   Counter
	Users    *EntityTable
	Groups   *EntityTable
	Printers *EntityTable
	Details  []*JobRecord
}

// StatisticsOptions selects which breakdowns a run collects.
type StatisticsOptions struct {
	Users    bool
	Groups   bool
	Printers bool
	Details  bool
}

func NewEmptyPrintStatistics(opts StatisticsOptions) *PrintStatistics {
	stats := &PrintStatistics{}
	if opts.Users {
		stats.Users = NewEntityTable(EntityUser)
	}
	if opts.Groups {
		stats.Groups = NewEntityTable(EntityGroup)
	}
	if opts.Printers {
		stats.Printers = NewPrinterTable()
	}
	if opts.Details {
		stats.Details = []*JobRecord{}
	}
	return stats
}

// IsEmpty reports whether no job was recorded.
func (s *PrintStatistics) IsEmpty() bool {
	return s.Totals.Jobs == 0
}

// HasBreakdown reports whether printers are broken down by user or group.
func (s *PrintStatistics) HasBreakdown() bool {
	return s.Printers != nil && (s.Users != nil || s.Groups != nil)
}
