package pinger

import "errors"

var (
	ErrPingerNil               = errors.New("pinger is nil")
	ErrPingerNotFound          = errors.New("pinger not found")
	ErrPingerAlreadyRegistered = errors.New("pinger already registered")
)
