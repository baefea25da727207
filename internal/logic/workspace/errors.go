package workspace

import "errors"

var (
	ErrValidation        = errors.New("validation failed")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("workspace not found")
	ErrNotReady          = errors.New("workspace not ready")
	ErrConflict          = errors.New("conflict")
	ErrInvalidTransition = errors.New("invalid phase transition")
	ErrReadinessTimeout  = errors.New("readiness timeout")
	ErrRestartSettle     = errors.New("workload did not terminate")
	ErrQuotaNotFound     = errors.New("resource quota not found")
)

// notFound is a private interface for checking "not found" errors
// without importing the adapter package.
type notFound interface {
	IsNotFound()
}

// alreadyExists is a private interface for checking "already exists" errors
// without importing the adapter package.
type alreadyExists interface {
	IsAlreadyExists()
}

func isNotFound(err error) bool {
	var target notFound

	return errors.As(err, &target)
}

func isAlreadyExists(err error) bool {
	var target alreadyExists

	return errors.As(err, &target)
}
