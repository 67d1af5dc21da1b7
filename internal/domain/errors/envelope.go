package errors

// MetaInfo carries the request id on every response.
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// SuccessResponse wraps a successful payload.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorInfo is the rendered form of an AppError.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse wraps a failure.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// NewSuccessResponse builds the success envelope.
func NewSuccessResponse(data any, requestID string) SuccessResponse {
	return SuccessResponse{Data: data, Meta: &MetaInfo{RequestID: requestID}}
}

// NewErrorResponse builds the failure envelope.
func NewErrorResponse(code, message string, details any, requestID string) ErrorResponse {
	return ErrorResponse{
		Error: &ErrorInfo{Code: code, Message: message, Details: details},
		Meta:  &MetaInfo{RequestID: requestID},
	}
}
