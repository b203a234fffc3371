package extractors

import (
	"fmt"

	"printer-report/internal/shared/svcerrors"
)

const (
	codeSourceOpenFailed = "EXT_9000"
	codeSourceReadFailed = "EXT_9001"
)

// errSourceOpenFailed returns an error when the event log of a print server cannot be opened.
func errSourceOpenFailed(server string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeSourceOpenFailed, fmt.Sprintf("couldn't open the event log on %s", server), cause)
}

// errSourceReadFailed returns an error when reading an opened event log fails part way.
func errSourceReadFailed(server string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeSourceReadFailed, fmt.Sprintf("couldn't read the event log on %s", server), cause)
}
