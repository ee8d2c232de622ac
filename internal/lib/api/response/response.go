package response

// ErrResponse is the wire shape for hard failures. Degraded chat replies
// never use it; they go out as a normal 200 body.
type ErrResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type OkResponse struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
}

func Error(message string) ErrResponse {
	return ErrResponse{Error: "internal_error", Message: message}
}

func ErrorDetailed(message, details string) ErrResponse {
	return ErrResponse{Error: "internal_error", Message: message, Details: details}
}

func Ok(data interface{}) OkResponse {
	return OkResponse{Status: "ok", Data: data}
}
