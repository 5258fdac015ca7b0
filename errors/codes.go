package errors

// ErrorCode identifies the class of failure carried by an AppError.
type ErrorCode int

const (
	ErrorCode_UNKNOWN ErrorCode = iota
	ErrorCode_INTERNAL
	ErrorCode_VALIDATION
	ErrorCode_NOT_FOUND
	ErrorCode_ALREADY_EXISTS
	ErrorCode_EXTRACTION_FAILED
	ErrorCode_STORAGE_FAILED
	ErrorCode_HTTP_OK
)

// String returns the code name used in logs
func (c ErrorCode) String() string {
	switch c {
	case ErrorCode_INTERNAL:
		return "INTERNAL"
	case ErrorCode_VALIDATION:
		return "VALIDATION"
	case ErrorCode_NOT_FOUND:
		return "NOT_FOUND"
	case ErrorCode_ALREADY_EXISTS:
		return "ALREADY_EXISTS"
	case ErrorCode_EXTRACTION_FAILED:
		return "EXTRACTION_FAILED"
	case ErrorCode_STORAGE_FAILED:
		return "STORAGE_FAILED"
	case ErrorCode_HTTP_OK:
		return "OK"
	default:
		return "UNKNOWN"
	}
}
