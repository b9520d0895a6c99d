package errors

// ErrorCode identifies an application error class in responses and logs.
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = iota
	ErrorCode_INTERNAL
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_INVALID_PAYLOAD
	ErrorCode_NOT_FOUND
	ErrorCode_SERVICE_UNAVAILABLE
	ErrorCode_UPLOAD_REJECTED
	ErrorCode_AI_SUMMARY_FAILED
	ErrorCode_EMAIL_SEND_FAILED
	ErrorCode_DB_QUERY_FAILED
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:             "OK",
	ErrorCode_INTERNAL:            "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:    "INVALID_ARGUMENT",
	ErrorCode_INVALID_PAYLOAD:     "INVALID_PAYLOAD",
	ErrorCode_NOT_FOUND:           "NOT_FOUND",
	ErrorCode_SERVICE_UNAVAILABLE: "SERVICE_UNAVAILABLE",
	ErrorCode_UPLOAD_REJECTED:     "UPLOAD_REJECTED",
	ErrorCode_AI_SUMMARY_FAILED:   "AI_SUMMARY_FAILED",
	ErrorCode_EMAIL_SEND_FAILED:   "EMAIL_SEND_FAILED",
	ErrorCode_DB_QUERY_FAILED:     "DB_QUERY_FAILED",
}

// String returns the canonical name of the code.
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
