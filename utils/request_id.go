package utils

// RequestIDKey is the gin context key and log field for the request id.
const (
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)
