package domain

import "errors"

// Common domain errors
var (
	// ErrInvalidRequest is returned when client input is missing or malformed
	ErrInvalidRequest = errors.New("invalid request")
	// ErrNotFound is returned when a requested resource is not found
	ErrNotFound = errors.New("resource not found")
	// ErrDuplicateOrderRef is returned when an order reference already exists
	ErrDuplicateOrderRef = errors.New("order reference already exists")
	// ErrGatewayUnavailable is returned when the payment gateway cannot be reached
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
	// ErrGatewayProtocol is returned when the payment gateway answers with an
	// unexpected status or payload
	ErrGatewayProtocol = errors.New("unexpected payment gateway response")
)
