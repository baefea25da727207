package manifest

import "errors"

var (
	ErrUnsupportedHost = errors.New("unsupported repository host")
	ErrInvalidRepoURL  = errors.New("invalid repository url")
	ErrEmptyManifest   = errors.New("manifest is empty")
)
