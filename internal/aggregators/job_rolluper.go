package aggregators

import (
	"printer-report/internal/models"
)

//go:generate mockgen -source=job_rolluper.go -destination=./mocks/job_rolluper_mock.go -package=mocks
type JobRolluper interface {
	// Rollup mutates stats by adding job to the totals and to every enabled table. The job counts once
	// for each of groups.
	Rollup(stats *models.PrintStatistics, job *models.JobRecord, groups []string)
}

type jobRolluper struct{}

func NewJobRolluper() JobRolluper {
	return &jobRolluper{}
}

func (r *jobRolluper) Rollup(stats *models.PrintStatistics, job *models.JobRecord, groups []string) {
	pages, bytes := job.Pages, job.Bytes
	stats.Totals.AddJob(pages, bytes)

	var printer *models.Entity
	if stats.Printers != nil {
		printer = stats.Printers.AddJob(job.PrinterName, pages, bytes)
	}

	if stats.Users != nil {
		stats.Users.AddJob(job.UserName, pages, bytes)
		if printer != nil {
			printer.Users.AddJob(job.UserName, pages, bytes)
		}
	}

	if stats.Groups != nil {
		for _, group := range groups {
			stats.Groups.AddJob(group, pages, bytes)
			if printer != nil {
				printer.Groups.AddJob(group, pages, bytes)
			}
		}
	}

	if stats.Details != nil {
		stats.Details = append(stats.Details, job)
	}
}
