package domain

import (
	"errors"
	"fmt"
)

var (
	ErrData = errors.New("invalid data")
	ErrIO   = errors.New("io failure")
)

// Fault wraps a pipeline failure with its error kind. Callers classify
// with errors.Is against ErrData/ErrIO and read Msg for the detail.
type Fault struct {
	Kind error
	Msg  string
}

func (f *Fault) Error() string {
	if f == nil {
		return ""
	}
	if f.Msg == "" {
		return f.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", f.Kind.Error(), f.Msg)
}

func (f *Fault) Unwrap() error { return f.Kind }

// DataErrorf reports malformed, missing, or mistyped document content.
func DataErrorf(format string, args ...any) error {
	return &Fault{Kind: ErrData, Msg: fmt.Sprintf(format, args...)}
}

// IOErrorf reports a file open, read, or write failure.
func IOErrorf(format string, args ...any) error {
	return &Fault{Kind: ErrIO, Msg: fmt.Sprintf(format, args...)}
}
