package transport

const (
	// CodeRequestFailed is used when the request could not be performed at all.
	CodeRequestFailed = "HTTP_REQUEST_FAILED"

	// CodeUnexpectedStatus is used for non-2xx responses.
	CodeUnexpectedStatus = "UNEXPECTED_STATUS"

	// CodeDecodeFailed is used when the body is not the expected JSON shape.
	CodeDecodeFailed = "DECODE_FAILED"
)
