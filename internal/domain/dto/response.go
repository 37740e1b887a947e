package dto

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ListResponse always carries the pagination counters, even when they are zero.
type ListResponse struct {
	Success     bool  `json:"success"`
	Count       int   `json:"count"`
	Total       int64 `json:"total"`
	TotalPages  int64 `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	Data        any   `json:"data"`
}

func OK(data any) Response {
	return Response{Success: true, Data: data}
}

func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

func FailWithError(message string, err error) Response {
	r := Response{Success: false, Message: message}
	if err != nil {
		r.Error = err.Error()
	}

	return r
}
