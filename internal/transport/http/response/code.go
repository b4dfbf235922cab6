package response

// Envelope statuses follow HTTP semantics directly.
const (
	StatusOK           = 200
	StatusCreated      = 201
	StatusBadRequest   = 400
	StatusUnauthorized = 401
	StatusForbidden    = 403
	StatusNotFound     = 404
	StatusServerError  = 500
)

var StatusMsgMap = map[int]string{
	StatusOK:           "OK",
	StatusCreated:      "Created",
	StatusBadRequest:   "Bad Request",
	StatusUnauthorized: "Unauthorized",
	StatusForbidden:    "Forbidden",
	StatusNotFound:     "Not Found",
	StatusServerError:  "Internal Server Error",
}
