package plague

import errgo "gopkg.in/errgo.v1"

var (
	// ErrInvalidConfiguration is the cause of every error returned by
	// Config.Validate.
	ErrInvalidConfiguration = errgo.New("invalid configuration")

	// ErrIndexOutOfRange is the cause of errors for requests addressing an
	// individual outside [0, group size).
	ErrIndexOutOfRange = errgo.New("index out of range")

	// ErrStopped is returned for requests made after the simulation stopped.
	ErrStopped = errgo.New("simulation stopped")
)

func invalidf(f string, a ...interface{}) error {
	return errgo.WithCausef(nil, ErrInvalidConfiguration, "invalid configuration: "+f, a...)
}

func outOfRange(i, n int) error {
	return errgo.WithCausef(nil, ErrIndexOutOfRange, "index %d out of range [0, %d)", i, n)
}
