package shutdown

import "errors"

// ErrTerminationRequested is returned at startup when the termination file exists.
var ErrTerminationRequested = errors.New("termination requested")
