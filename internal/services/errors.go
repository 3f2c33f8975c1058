package services

import "errors"

var (
	// ErrInvalidInput is returned when caller-supplied data cannot be accepted
	ErrInvalidInput = errors.New("invalid input")
	// ErrSerialization is returned when a value cannot be encoded for transport
	ErrSerialization = errors.New("serialization failure")
)
