package handler

// Response is the envelope every endpoint returns.
type Response struct {
	Success bool        `json:"success"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Success: true,
		Data:    data,
	}
}

// NewListResponse carries a collection plus its element count. Count is a
// pointer so that zero still serializes.
func NewListResponse(count int, data interface{}) *Response {
	return &Response{
		Success: true,
		Count:   &count,
		Data:    data,
	}
}

func NewMessageResponse(message string, data interface{}) *Response {
	return &Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Success: false,
		Message: message,
	}
}

func NewErrorResponseWithDetail(message, detail string) *Response {
	return &Response{
		Success: false,
		Message: message,
		Error:   detail,
	}
}
