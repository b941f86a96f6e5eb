package errors

import "net/http"

// Messages carried in the error envelope, keyed by status code.
const (
	MsgBadRequest       = "bad request"
	MsgNotFound         = "resource not found"
	MsgMethodNotAllowed = "method not allowed"
	MsgUnprocessable    = "unprocessable"
	MsgInternalError    = "internal server error"
)

var messages = map[int]string{
	http.StatusBadRequest:          MsgBadRequest,
	http.StatusNotFound:            MsgNotFound,
	http.StatusMethodNotAllowed:    MsgMethodNotAllowed,
	http.StatusUnprocessableEntity: MsgUnprocessable,
	http.StatusInternalServerError: MsgInternalError,
}

// Message returns the envelope message for status, falling back to the
// standard status text.
func Message(status int) string {
	if msg, ok := messages[status]; ok {
		return msg
	}
	return http.StatusText(status)
}
