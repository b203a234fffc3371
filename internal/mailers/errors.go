package mailers

import (
	"fmt"
	"strings"

	"printer-report/internal/shared/svcerrors"
)

const (
	codeDeliveryFailed = "MAIL_9000"
	codeInvalidMessage = "MAIL_9001"
)

// errDeliveryFailed returns an error when the SMTP server cannot be reached or refuses the report.
func errDeliveryFailed(server string, to []string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeDeliveryFailed,
		fmt.Sprintf("couldn't send the report to %s via %s", strings.Join(to, ", "), server), cause)
}

// errInvalidMessage returns an error when the report cannot be encoded as a mail.
func errInvalidMessage(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInvalidMessage, fmt.Errorf("invalidMessage: %w", cause))
}
