package web

// Error wraps a provided error with an HTTP status code so handlers can
// respond with the right status without inspecting error text.
type Error struct {
	Err    error
	Status int
	Fields map[string]string
}

// NewRequestError is used when a known error condition is encountered.
func NewRequestError(err error, status int) error {
	return &Error{Err: err, Status: status}
}

func (e *Error) Error() string {
	return e.Err.Error()
}

// IsRequestError checks whether err carries a request status.
func IsRequestError(err error) (*Error, bool) {
	re, ok := err.(*Error)
	return re, ok
}
