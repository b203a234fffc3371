package periods

import (
	"fmt"

	"printer-report/internal/shared/svcerrors"
)

const (
	codeUnrecognisedDate = "PERIOD_1000"
	codeDateOutOfRange   = "PERIOD_1001"
	codeEmptyRange       = "PERIOD_1002"
)

// errUnrecognisedDate returns an error when a date string matches none of the accepted shapes.
func errUnrecognisedDate(value string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnrecognisedDate, fmt.Sprintf("Couldn't interpret '%s' as a date.", value), nil)
}

// errDateOutOfRange returns an error when a date has the right shape but names no calendar day.
func errDateOutOfRange(value string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeDateOutOfRange, fmt.Sprintf("'%s' is not a valid calendar date.", value), cause)
}

// errEmptyRange returns an error when the resolved window contains no instant at all.
func errEmptyRange(msg string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeEmptyRange, msg, nil)
}
