package types

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindAuthentication
	KindNotFound
	KindPersistence
	KindUpstream
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindNotFound:
		return "not_found"
	case KindPersistence:
		return "persistence"
	case KindUpstream:
		return "upstream"
	default:
		return "internal"
	}
}

// Error tags a failure with a kind callers can branch on. Detail is the human readable part
// that is safe to return to an external caller.
type Error struct {
	Kind   ErrorKind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Detail
	}
	if e.Detail == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Detail, e.Err.Error())
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(kind ErrorKind, detail string, err error) *Error {
	return &Error{Kind: kind, Detail: detail, Err: err}
}

// KindOf returns the kind of the outermost tagged error in the chain, KindInternal if none.
func KindOf(err error) ErrorKind {
	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged.Kind
	}
	return KindInternal
}

// DetailOf returns the tagged detail, or the plain error text for untagged errors.
func DetailOf(err error) string {
	var tagged *Error
	if errors.As(err, &tagged) && tagged.Detail != "" {
		return tagged.Detail
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
