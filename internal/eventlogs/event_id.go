package eventlogs

import (
	"fmt"
	"strconv"
	"strings"
)

// parseEventID returns the event code. Classic event log records pack severity and facility bits above
// the low 16 bits; only the low word identifies the event.
func parseEventID(value string) (uint32, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(value), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid event id %q: %w", value, err)
	}
	return uint32(id) & 0xFFFF, nil
}
