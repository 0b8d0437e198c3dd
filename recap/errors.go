package recap

import (
	"errors"
	"fmt"
)

// Kind classifies why an operation failed.
type Kind int

const (
	KindInvalidInput Kind = iota + 1
	KindInvalidURL
	KindUnsupportedLanguage
	KindFetch
	KindProcessing
	KindNotProcessed
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidURL          = errors.New("invalid URL")
	ErrUnsupportedLanguage = errors.New("language not supported")
	ErrFetch               = errors.New("article fetch failed")
	ErrProcessing          = errors.New("processing failed")
	ErrNotProcessed        = errors.New("text has not been processed")
)

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidInput:
		return ErrInvalidInput
	case KindInvalidURL:
		return ErrInvalidURL
	case KindUnsupportedLanguage:
		return ErrUnsupportedLanguage
	case KindFetch:
		return ErrFetch
	case KindProcessing:
		return ErrProcessing
	case KindNotProcessed:
		return ErrNotProcessed
	}
	return nil
}

func (k Kind) String() string {
	if err := k.sentinel(); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is returned by every exported operation of this package. errors.Is
// matches both the sentinel of its Kind and the wrapped cause.
type Error struct {
	Kind  Kind
	Op    string
	Input string
	Err   error
}

func (e *Error) Error() string {
	msg := e.Op + ": " + e.Kind.String()
	if e.Input != "" {
		msg += fmt.Sprintf(" (%q)", e.Input)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	errs := []error{e.Kind.sentinel()}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// KindOf returns the Kind of err, or 0 when err did not come from this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
