package response

// Envelope is the uniform reply shape of every endpoint:
// {success, data, message}. Failures always carry a nil data and a
// localized message; no error ever leaks past the handler layer in any
// other form.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

func OK(data any, message string) Envelope {
	return Envelope{Success: true, Data: data, Message: message}
}

func Failure(message string) Envelope {
	return Envelope{Success: false, Data: nil, Message: message}
}
