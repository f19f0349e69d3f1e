package models

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// SuccessResponse wraps data returned by the CLI
type SuccessResponse struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

// ErrorResponse is returned on every failure path
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NewSuccess builds a success envelope
func NewSuccess(data any) SuccessResponse {
	return SuccessResponse{Status: StatusSuccess, Data: data}
}

// NewError builds an error envelope
func NewError(message string) ErrorResponse {
	return ErrorResponse{Status: StatusError, Message: message}
}
