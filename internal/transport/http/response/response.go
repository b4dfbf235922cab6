package response

// Resp is the single envelope every route answers with. The status field
// mirrors the HTTP status code.
type Resp struct {
	Status  int         `json:"status"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

// New keeps data non-null in the serialized form.
func New(status int, data interface{}, message string) Resp {
	if data == nil {
		data = struct{}{}
	}
	return Resp{Status: status, Data: data, Message: message}
}

func OK(data interface{}, message string) Resp {
	return New(StatusOK, data, message)
}

func Created(data interface{}, message string) Resp {
	return New(StatusCreated, data, message)
}

// Error builds a failure envelope; an empty msg falls back to the
// canonical text for the status.
func Error(status int, msg string) Resp {
	if msg == "" {
		msg = StatusMsgMap[status]
	}
	return New(status, nil, msg)
}
