package errors

// Response is the wire form of an ErrorResult.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
	Errors     []any  `json:"errors"`
	Trace      string `json:"trace,omitempty"` // Only filled when traces are exposed to clients
}

// ToResponse converts err into its wire form; includeTrace copies the diagnostic trace.
func ToResponse(err AppError, includeTrace bool) Response {
	resp := Response{
		StatusCode: err.HTTPCode(),
		Data:       nil,
		Message:    err.Message(),
		Success:    false,
		Errors:     err.Errors(),
	}
	if resp.Errors == nil {
		resp.Errors = []any{}
	}
	if includeTrace {
		resp.Trace = err.Trace()
	}

	return resp
}
