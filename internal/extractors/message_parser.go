package extractors

import (
	"regexp"
	"strconv"

	"printer-report/internal/models"
)

// printedRegex matches the rendered message of a print-notification event, e.g.
//
//	Document 12, Microsoft Word - report.docx owned by alice was printed on HP1 via port IP_10.0.0.5.  Size in bytes: 2048; pages printed: 3
//
// The application prefix is absent for jobs submitted without one.
var printedRegex = regexp.MustCompile(`^Document (?P<number>\d+), (?:(?P<application>.+) - )?(?P<name>.+) owned by (?P<user>\w+) was printed on (?P<printer>.+) via port (?P<port>.+)\. +Size in bytes: (?P<bytes>\d+); pages printed: (?P<pages>\d+)`)

var (
	groupNumber      = printedRegex.SubexpIndex("number")
	groupApplication = printedRegex.SubexpIndex("application")
	groupName        = printedRegex.SubexpIndex("name")
	groupUser        = printedRegex.SubexpIndex("user")
	groupPrinter     = printedRegex.SubexpIndex("printer")
	groupPort        = printedRegex.SubexpIndex("port")
	groupBytes       = printedRegex.SubexpIndex("bytes")
	groupPages       = printedRegex.SubexpIndex("pages")
)

//go:generate mockgen -source=message_parser.go -destination=./mocks/message_parser_mock.go -package=mocks
type MessageParser interface {
	// Parse returns the job described by event, or false when its message is not a print notification.
	Parse(event *models.Event) (*models.JobRecord, bool)
}

type messageParser struct{}

func NewMessageParser() MessageParser {
	return &messageParser{}
}

func (p *messageParser) Parse(event *models.Event) (*models.JobRecord, bool) {
	m := printedRegex.FindStringSubmatch(event.Message)
	if m == nil {
		return nil, false
	}

	number, err := strconv.ParseInt(m[groupNumber], 10, 64)
	if err != nil {
		return nil, false
	}
	bytes, err := strconv.ParseInt(m[groupBytes], 10, 64)
	if err != nil {
		return nil, false
	}
	pages, err := strconv.ParseInt(m[groupPages], 10, 64)
	if err != nil {
		return nil, false
	}

	return &models.JobRecord{
		PrintedAt:      event.TimeCreated,
		DocumentNumber: number,
		Application:    m[groupApplication],
		DocumentName:   m[groupName],
		UserName:       m[groupUser],
		PrinterName:    m[groupPrinter],
		PortName:       m[groupPort],
		Bytes:          bytes,
		Pages:          pages,
	}, true
}
