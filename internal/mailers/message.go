package mailers

import (
	"bytes"
	"fmt"
	"mime"
	"mime/quotedprintable"
	"strings"
	"time"

	"printer-report/internal/shared/ulid"
)

// Message is one report mail. HTML is optional; without it the mail is a single text/plain part.
type Message struct {
	From    string
	To      []string
	Subject string
	Text    string
	HTML    string
}

// newBoundary is replaced in tests.
var newBoundary = func() string {
	return "=_report_" + ulid.NewULID()
}

// buildMIME renders msg as an RFC 5322 message with CRLF line endings.
func buildMIME(msg *Message, date time.Time, messageID string) ([]byte, error) {
	var buf bytes.Buffer

	header := func(name, value string) {
		fmt.Fprintf(&buf, "%s: %s\r\n", name, value)
	}
	header("From", msg.From)
	header("To", strings.Join(msg.To, ","))
	header("Subject", mime.QEncoding.Encode("utf-8", msg.Subject))
	header("Date", date.Format(time.RFC1123Z))
	header("Message-ID", messageID)
	header("MIME-Version", "1.0")

	if msg.HTML == "" {
		if err := writePart(&buf, "text/plain", msg.Text); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	boundary := newBoundary()
	header("Content-Type", fmt.Sprintf("multipart/alternative; boundary=%q", boundary))
	buf.WriteString("\r\n")

	for _, part := range []struct{ contentType, body string }{
		{"text/plain", msg.Text},
		{"text/html", msg.HTML},
	} {
		fmt.Fprintf(&buf, "--%s\r\n", boundary)
		if err := writePart(&buf, part.contentType, part.body); err != nil {
			return nil, err
		}
		buf.WriteString("\r\n")
	}
	fmt.Fprintf(&buf, "--%s--\r\n", boundary)
	return buf.Bytes(), nil
}

// writePart writes the content headers, a blank line and the quoted-printable body.
func writePart(buf *bytes.Buffer, contentType, body string) error {
	fmt.Fprintf(buf, "Content-Type: %s; charset=utf-8\r\n", contentType)
	buf.WriteString("Content-Transfer-Encoding: quoted-printable\r\n\r\n")

	qp := quotedprintable.NewWriter(buf)
	if _, err := qp.Write([]byte(strings.ReplaceAll(body, "\n", "\r\n"))); err != nil {
		return fmt.Errorf("failed to encode %s part: %w", contentType, err)
	}
	return qp.Close()
}
