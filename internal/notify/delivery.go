package notify

import "errors"

// Sender is the mail-transport seam. Implementations report permanent
// failures (invalid or rejected recipient) by wrapping the error with
// Permanent; anything else is treated as transient and retried.
type Sender interface {
	Send(address string, doc Rendered) error
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks a delivery error as not worth retrying.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// IsPermanent reports whether a delivery error was marked permanent.
func IsPermanent(err error) bool {
	var pe *permanentError
	return errors.As(err, &pe)
}
