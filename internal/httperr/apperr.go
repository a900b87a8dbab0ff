package httperr

import "errors"

// Kind classifies an AppError for transport mapping and retry policy.
type Kind string

const (
	KindValidation     Kind = "validation"
	KindNotFound       Kind = "not_found"
	KindConflict       Kind = "conflict"
	KindAuthentication Kind = "authentication"
	KindAuthorization  Kind = "authorization"
	KindTransient      Kind = "transient"
)

type AppError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e AppError) Error() string {
	return e.Code
}

func newErr(kind Kind, code, message string) error {
	return AppError{Kind: kind, Code: code, Message: message}
}

func ErrValidation(code, message string) error {
	return newErr(KindValidation, code, message)
}

func ErrNotFound(code, message string) error {
	return newErr(KindNotFound, code, message)
}

func ErrConflict(code, message string) error {
	return newErr(KindConflict, code, message)
}

func ErrAuthentication(code, message string) error {
	return newErr(KindAuthentication, code, message)
}

func ErrAuthorization(code, message string) error {
	return newErr(KindAuthorization, code, message)
}

func ErrTransient(code, message string) error {
	return newErr(KindTransient, code, message)
}

func IsKind(err error, kind Kind) bool {
	var ae AppError
	if errors.As(err, &ae) {
		return ae.Kind == kind
	}
	return false
}

func IsCode(err error, code string) bool {
	var ae AppError
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}
