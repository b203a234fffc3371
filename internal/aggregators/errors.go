package aggregators

import (
	"fmt"

	"printer-report/internal/shared/svcerrors"
)

const (
	codeDirectoryLookupFailed = "AGG_9000"
)

// errDirectoryLookupFailed returns an error when the directory cannot resolve a user's groups mid-run.
func errDirectoryLookupFailed(user string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeDirectoryLookupFailed, fmt.Sprintf("couldn't look up the groups of %s", user), cause)
}
