package ulid

import (
	"fmt"

	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string.
var NewULID = func() string {
	return ulid.Make().String()
}

// NewMessageID returns an RFC 5322 Message-ID value for a report mail sent from host.
func NewMessageID(host string) string {
	if host == "" {
		host = "localhost"
	}
	return fmt.Sprintf("<%s@%s>", NewULID(), host)
}
