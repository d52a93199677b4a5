package utils

// Response is the uniform JSON envelope returned by every handler.
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func NewResponse(status int, message string, data interface{}) Response {
	return Response{
		Status:  status,
		Message: message,
		Data:    data,
	}
}

// NewSuccessResponse creates a new success Response instance.
func NewSuccessResponse(message string, data interface{}) Response {
	return Response{
		Status:  200,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse creates a new error Response instance with nil data.
func NewErrorResponse(status int, message string) Response {
	return Response{
		Status:  status,
		Message: message,
		Data:    nil,
	}
}
