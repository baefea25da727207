package k8s

import (
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
)

// NotFoundError represents a missing object. Callers decide whether that is an error.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

func (e *NotFoundError) IsNotFound() {}

// AlreadyExistsError represents a create of an object that already exists.
type AlreadyExistsError struct {
	Kind string
	Name string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Kind, e.Name)
}

func (e *AlreadyExistsError) IsAlreadyExists() {}

// translate maps API status errors onto the marker types and leaves others as is.
func translate(kind, name string, err error) error {
	switch {
	case apierrors.IsNotFound(err):
		return &NotFoundError{Kind: kind, Name: name}
	case apierrors.IsAlreadyExists(err):
		return &AlreadyExistsError{Kind: kind, Name: name}
	}

	return err
}
