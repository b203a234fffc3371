package reports

import "strings"

// literalMarker opens an indented literal block in the report markup. Stripped output drops it.
const literalMarker = "::\n"

// Document is the report as an ordered list of markup sections. Sections are only ever appended.
type Document struct {
	Subject  string
	sections []string
}

func newDocument(subject string) *Document {
	return &Document{Subject: subject}
}

func (d *Document) append(sections ...string) {
	d.sections = append(d.sections, sections...)
}

// Markup returns the raw report markup, sections separated by newlines.
func (d *Document) Markup() string {
	return strings.Join(d.sections, "\n")
}

// Text returns the markup without literal block markers, for reading as plain text.
func (d *Document) Text() string {
	return Strip(d.Markup())
}

// Strip removes every literal block marker from markup.
func Strip(markup string) string {
	return strings.ReplaceAll(markup, literalMarker, "")
}
