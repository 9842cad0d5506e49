package services

import "errors"

type ErrorCode string

const (
	// ErrorInvalid marks a validation rejection: the operation performed no
	// state mutation and no persistence write.
	ErrorInvalid ErrorCode = "invalid"
	// ErrorNotFound marks an id that does not resolve to an existing
	// collection or quiz.
	ErrorNotFound ErrorCode = "not_found"
	// ErrorConflict marks an operation attempted in a state that does not
	// admit it, such as advancing past an unanswered question.
	ErrorConflict ErrorCode = "conflict"
)

// ServiceError is a rejected-operation result, not exceptional control flow.
// It stays local to the operation that produced it.
type ServiceError struct {
	Code    ErrorCode
	Message string
}

func (e *ServiceError) Error() string { return e.Message }

func NewInvalidError(msg string) error  { return &ServiceError{Code: ErrorInvalid, Message: msg} }
func NewNotFoundError(msg string) error { return &ServiceError{Code: ErrorNotFound, Message: msg} }
func NewConflictError(msg string) error { return &ServiceError{Code: ErrorConflict, Message: msg} }

func AsServiceError(err error) (*ServiceError, bool) {
	var se *ServiceError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
