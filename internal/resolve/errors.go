package resolve

import (
	"errors"
	"fmt"
)

// ErrorKind classifies resolution failures. All of them are usage
// errors; none is transient.
type ErrorKind int

const (
	UnboundTypeVariable      ErrorKind = iota + 1 // variable not bound by the context
	NotInHierarchy                                // member or class outside the hierarchy
	IllegalSelfInstantiation                      // capture of a still-generic class
)

var errorKindNames = [...]string{
	UnboundTypeVariable:      "unbound type variable",
	NotInHierarchy:           "not in hierarchy",
	IllegalSelfInstantiation: "illegal self-instantiation",
}

func (k ErrorKind) String() string {
	if k > 0 && int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinels for errors.Is.
var (
	ErrUnbound           = errors.New(UnboundTypeVariable.String())
	ErrNotInHierarchy    = errors.New(NotInHierarchy.String())
	ErrSelfInstantiation = errors.New(IllegalSelfInstantiation.String())
)

// An Error describes a failed resolution. Subject names the offending
// declared element.
type Error struct {
	Kind    ErrorKind
	Subject string
	Msg     string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Subject, e.Msg)
}

// Unwrap returns the sentinel for e.Kind.
func (e *Error) Unwrap() error {
	switch e.Kind {
	case UnboundTypeVariable:
		return ErrUnbound
	case NotInHierarchy:
		return ErrNotInHierarchy
	case IllegalSelfInstantiation:
		return ErrSelfInstantiation
	}
	return nil
}

func errorf(kind ErrorKind, subject fmt.Stringer, format string, args ...any) *Error {
	return &Error{Kind: kind, Subject: subject.String(), Msg: fmt.Sprintf(format, args...)}
}
