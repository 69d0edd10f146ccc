package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies a data-layer failure. The repositories and services never
// retry; every failure carries exactly one Kind back to the caller.
type Kind int

const (
	// KindGeneric is any backend failure that is not otherwise classified.
	// The raw backend message is preserved on the wrapped error.
	KindGeneric Kind = iota
	// KindNotFound means the entity is absent for the given id/filter.
	KindNotFound
	// KindSetupRequired means an expected backend table is missing. Only
	// meaningful in remote mode before schema provisioning.
	KindSetupRequired
	// KindAlreadyExists means a duplicate credential registration (local mode).
	KindAlreadyExists
	// KindInvalidCredentials means a local-mode sign-in mismatch.
	KindInvalidCredentials
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Message: entity + " not found"}
}

func SetupRequired(err error) *Error {
	return &Error{Kind: KindSetupRequired, Message: "backend schema is not provisioned", Err: err}
}

func AlreadyExists(message string) *Error {
	return &Error{Kind: KindAlreadyExists, Message: message}
}

func InvalidCredentials() *Error {
	return &Error{Kind: KindInvalidCredentials, Message: "invalid email or password"}
}

func Generic(err error) *Error {
	return &Error{Kind: KindGeneric, Message: "backend operation failed", Err: err}
}

// KindOf extracts the Kind from err, defaulting to KindGeneric for plain
// errors so callers can switch on classification without nil checks.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindGeneric
}

func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}
