// Package errdefs wraps errors into the classes understood by
// github.com/containerd/errdefs, so handlers can return plain errors and
// server/httpstatus can still pick the right status code.
package errdefs

type errInvalidParameter struct{ error }

func (errInvalidParameter) InvalidParameter() {}

func (e errInvalidParameter) Unwrap() error {
	return e.error
}

// InvalidParameter wraps err so it is classified as a bad request.
func InvalidParameter(err error) error {
	if err == nil {
		return nil
	}
	return errInvalidParameter{err}
}

type errSystem struct{ error }

func (errSystem) System() {}

func (e errSystem) Unwrap() error {
	return e.error
}

// System wraps err so it is classified as an internal error.
func System(err error) error {
	if err == nil {
		return nil
	}
	return errSystem{err}
}
