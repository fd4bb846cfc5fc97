package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"
	FieldUserAgent  = "user_agent"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldBatchID   = "batch_id"
	FieldBatchSize = "batch_size"
	FieldAttempt   = "attempt"
	FieldStore     = "store"
	FieldMachineID = "machine_id"
	FieldFactoryID = "factory_id"
)
