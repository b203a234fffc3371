package loggers

const (
	FieldApp       = "app"
	FieldComponent = "component"
	FieldRunID     = "run_id"

	FieldLogSource = "log_source"
	FieldPrinter   = "printer"
	FieldUser      = "user"
	FieldPeriod    = "period"

	FieldDuration   = "duration"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"
)
