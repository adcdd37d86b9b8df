package main

import "fmt"

// ServiceError is a failure attributed to one operation of a named service.
type ServiceError struct {
	Service   string
	Operation string
	Err       error
}

// Error formats the error as "[Service.Operation] message".
func (e *ServiceError) Error() string {
	return fmt.Sprintf("[%s.%s] %v", e.Service, e.Operation, e.Err)
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// WrapError attaches service context to err. It returns nil for a nil err.
func WrapError(service, operation string, err error) error {
	if err == nil {
		return nil
	}
	return &ServiceError{Service: service, Operation: operation, Err: err}
}
