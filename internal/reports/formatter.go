package reports

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"printer-report/internal/models"
)

const (
	subjectPrefix  = "Print statistics for "
	detailLayout   = "2006-01-02 15:04:05"
	duplexNotice   = " Note: Duplexed print jobs are not recorded, so contribute their full page count as if single-sided.\n"
	summaryLineFmt = " %-*s Page count: %-5d\t(jobs: %d,\tpages per job: %.2f,\ttotal print size: %s,\taverage print size: %s)\n"
)

// Input is everything a report is built from.
type Input struct {
	Label       string
	Sources     []string
	Diagnostics []string
	Statistics  *models.PrintStatistics
}

type Formatter interface {
	Format(input Input) *Document
}

type formatter struct{}

func NewFormatter() Formatter {
	return &formatter{}
}

// Subject returns the report title for a period label.
func Subject(label string) string {
	return subjectPrefix + label
}

// Format lays the report out as:
//
//	==================================
//	 Print statistics for March 2024
//	==================================
//	::
//
//	 Print servers queried: print01, print02
//
//	Totals:
//	=======
//	::
//
//	 Page count: 6
//	 ...
//
// followed by the user, group and printer summaries, the per-printer breakdown and the job details.
// Nothing after the metadata is written when no job was found.
func (f *formatter) Format(input Input) *Document {
	subject := Subject(input.Label)
	doc := newDocument(subject)
	doc.append(title(subject))

	if len(input.Sources) > 0 {
		doc.append(literalMarker, " Print servers queried: "+strings.Join(input.Sources, ", ")+"\n")
	}
	if len(input.Diagnostics) > 0 {
		doc.append(literalMarker, " "+strings.Join(input.Diagnostics, "\n ")+"\n")
	}

	stats := input.Statistics
	if stats == nil || stats.IsEmpty() {
		return doc
	}

	totals := stats.Totals
	doc.append(
		"Totals:\n=======\n"+literalMarker,
		fmt.Sprintf(" Page count: %d", totals.Pages),
		fmt.Sprintf(" Job count: %d", totals.Jobs),
		fmt.Sprintf(" Average pages per job: %.2f", totals.PagesPerJob()),
		" Total print size: "+FormatSize(float64(totals.Bytes)),
		" Average print size: "+FormatSize(totals.BytesPerJob()),
		duplexNotice,
	)

	for _, table := range []*models.EntityTable{stats.Users, stats.Groups, stats.Printers} {
		if table != nil {
			doc.append(summary(table, true))
		}
	}
	doc.append(breakdown(stats))

	if stats.Details != nil {
		doc.append(details(stats.Details))
	}
	return doc
}

func title(subject string) string {
	border := strings.Repeat("=", utf8.RuneCountInString(subject)+2)
	return border + "\n " + subject + "\n" + border
}

// summary renders one line per entity, highest page count first, names padded to the widest one.
func summary(table *models.EntityTable, withHeader bool) string {
	var b strings.Builder
	if withHeader {
		header := table.Kind + " counts:"
		b.WriteString(header + "\n" + strings.Repeat("-", len(header)) + "\n" + literalMarker + "\n")
	}
	width := table.Width()
	for _, entity := range table.Ranked() {
		fmt.Fprintf(&b, summaryLineFmt,
			width, entity.Name,
			entity.Pages,
			entity.Jobs,
			entity.PagesPerJob(),
			FormatSize(float64(entity.Bytes)),
			FormatSize(entity.BytesPerJob()),
		)
	}
	return b.String()
}

// breakdown renders each printer's users and groups. It is empty unless printers and at least one of
// users or groups are summarised.
func breakdown(stats *models.PrintStatistics) string {
	if !stats.HasBreakdown() {
		return ""
	}

	var b strings.Builder
	b.WriteString("Per printer:\n============")
	for _, printer := range stats.Printers.Ranked() {
		b.WriteString("\n" + printer.Name + "\n" + strings.Repeat("-", utf8.RuneCountInString(printer.Name)) + "\n")
		if stats.Users != nil {
			b.WriteString("\nUsers:\n~~~~~~\n" + literalMarker + "\n")
			b.WriteString(summary(printer.Users, false))
		}
		if stats.Groups != nil {
			b.WriteString("\nGroups:\n~~~~~~~\n" + literalMarker + "\n")
			b.WriteString(summary(printer.Groups, false))
		}
	}
	return b.String()
}

func details(jobs []*models.JobRecord) string {
	var b strings.Builder
	b.WriteString("Details:\n========\n" + literalMarker + "\n")
	for _, job := range jobs {
		fmt.Fprintf(&b, " %s: Document %d owned by %s was printed on %s via port %s. Size in bytes: %d; pages printed: %d\n",
			job.PrintedAt.Format(detailLayout),
			job.DocumentNumber,
			job.UserName,
			job.PrinterName,
			job.PortName,
			job.Bytes,
			job.Pages,
		)
	}
	return b.String()
}
