package constant

const (
	ContextKeyRequestID = "requestid"

	RequestIDHeaderKey = "X-CanvasFlow-Request-ID"
)
