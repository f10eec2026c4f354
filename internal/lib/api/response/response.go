package response

// Response is the JSON envelope shared by the API handlers.
// Success carries the payload under data; failures carry only error.
type Response struct {
	OK    bool   `json:"ok,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

func Ok(data any) Response {
	return Response{
		OK:   true,
		Data: data,
	}
}

func Error(msg string) Response {
	return Response{
		Error: msg,
	}
}
