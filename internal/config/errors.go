package config

import "errors"

var (
	ErrBelowMinimum   = errors.New("value below minimum")
	ErrNegative       = errors.New("value must not be negative")
	ErrInvalidAPIKey  = errors.New("invalid api key entry")
	ErrDuplicateKey   = errors.New("duplicate api key")
	ErrInvalidLevel   = errors.New("invalid log level")
	ErrInvalidFormat  = errors.New("invalid log format")
	ErrInvalidPort    = errors.New("invalid port")
	ErrInvalidBaseURL = errors.New("invalid base url")
)
