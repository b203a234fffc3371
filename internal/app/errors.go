package app

import (
	"printer-report/internal/shared/svcerrors"
)

const (
	codeInvalidConfig = "CFG_1000"

	codeReportWriteFailed = "APP_9000"
)

// ErrInvalidConfig returns an error when the run configuration cannot be loaded or is inconsistent.
func ErrInvalidConfig(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidConfig, "invalid configuration", cause)
}

// errReportWriteFailed returns an error when the report cannot be written to standard output.
func errReportWriteFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeReportWriteFailed, cause)
}
