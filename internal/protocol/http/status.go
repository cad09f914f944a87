package http

import "fmt"

// Status is an HTTP response status code.
type Status int

const (
	StatusOK             Status = 200
	StatusBadRequest     Status = 400
	StatusNotFound       Status = 404
	StatusNotImplemented Status = 501
)

// Reason returns the canonical reason phrase for the status.
func (s Status) Reason() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusBadRequest:
		return "Bad Request"
	case StatusNotFound:
		return "Not Found"
	case StatusNotImplemented:
		return "Not Implemented"
	default:
		return "Unknown"
	}
}

// String renders the status as it appears on the status line, e.g. "200 OK".
func (s Status) String() string {
	return fmt.Sprintf("%d %s", int(s), s.Reason())
}
