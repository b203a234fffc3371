package reports

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// headingLevels maps underline characters to heading elements; the boxed title is the only h1.
var headingLevels = map[byte]atom.Atom{
	'=': atom.H2,
	'-': atom.H3,
	'~': atom.H4,
}

//go:generate mockgen -source=html_renderer.go -destination=./mocks/html_renderer_mock.go -package=mocks
type HTMLRenderer interface {
	// Render converts report markup into a standalone HTML document.
	Render(subject, markup string) (string, error)
}

type htmlRenderer struct{}

func NewHTMLRenderer() HTMLRenderer {
	return &htmlRenderer{}
}

// Render understands the markup the formatter writes: a title boxed in '=' lines, headings underlined
// with '=', '-' or '~', literal blocks introduced by a "::" line and plain paragraphs.
func (r *htmlRenderer) Render(subject, markup string) (string, error) {
	doc, body := newHTMLDocument(subject)

	lines := strings.Split(strings.ReplaceAll(markup, "\r\n", "\n"), "\n")
	var paragraph []string
	flush := func() {
		if len(paragraph) > 0 {
			body.AppendChild(element(atom.P, strings.Join(paragraph, " ")))
			paragraph = nil
		}
	}

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		switch {
		case strings.TrimSpace(line) == "":
			flush()

		case i+2 < len(lines) && isRule(line, '=') && isRule(lines[i+2], '=') && !isRule(lines[i+1], '='):
			flush()
			body.AppendChild(element(atom.H1, strings.TrimSpace(lines[i+1])))
			i += 2

		case strings.TrimSpace(line) == "::":
			flush()
			var block []string
			i, block = literalBlock(lines, i+1)
			body.AppendChild(element(atom.Pre, strings.Join(block, "\n")))

		case i+1 < len(lines) && !startsIndented(line) && underlineOf(lines[i+1], line) != 0:
			flush()
			level := headingLevels[underlineOf(lines[i+1], line)]
			body.AppendChild(element(level, strings.TrimSpace(line)))
			i++

		default:
			paragraph = append(paragraph, strings.TrimSpace(line))
		}
	}
	flush()

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return "", fmt.Errorf("failed to render report html: %w", err)
	}
	return buf.String(), nil
}

// literalBlock collects the indented lines after a "::" marker, skipping blank lines around them, and
// removes their common indentation. It returns the index of the last line consumed.
func literalBlock(lines []string, from int) (int, []string) {
	i := from
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}

	var block []string
	last := from - 1
	for ; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			block = append(block, "")
			continue
		}
		if !startsIndented(line) {
			break
		}
		block = append(block, line)
		last = i
	}
	block = block[:countUntilTrailingBlanks(block)]

	indent := -1
	for _, line := range block {
		if line == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}
	for j, line := range block {
		if len(line) >= indent && indent > 0 {
			block[j] = line[indent:]
		}
	}
	return last, block
}

func countUntilTrailingBlanks(block []string) int {
	n := len(block)
	for n > 0 && block[n-1] == "" {
		n--
	}
	return n
}

func startsIndented(line string) bool {
	return strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
}

// isRule reports whether line is made only of c, at least three of them.
func isRule(line string, c byte) bool {
	return len(line) >= 3 && strings.Trim(line, string(c)) == ""
}

// underlineOf returns the heading character when underline is a rule at least as long as text.
func underlineOf(underline, text string) byte {
	if underline == "" || strings.TrimSpace(text) == "" {
		return 0
	}
	c := underline[0]
	if _, ok := headingLevels[c]; !ok {
		return 0
	}
	if strings.Trim(underline, string(c)) != "" || len(underline) < len(strings.TrimSpace(text)) {
		return 0
	}
	return c
}

func newHTMLDocument(subject string) (doc, body *html.Node) {
	doc = &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := &html.Node{Type: html.ElementNode, DataAtom: atom.Html, Data: "html"}
	doc.AppendChild(root)

	head := &html.Node{Type: html.ElementNode, DataAtom: atom.Head, Data: "head"}
	head.AppendChild(&html.Node{
		Type: html.ElementNode, DataAtom: atom.Meta, Data: "meta",
		Attr: []html.Attribute{{Key: "charset", Val: "utf-8"}},
	})
	head.AppendChild(element(atom.Title, subject))
	root.AppendChild(head)

	body = &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	root.AppendChild(body)
	return doc, body
}

func element(a atom.Atom, text string) *html.Node {
	node := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if text != "" {
		node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
	return node
}
