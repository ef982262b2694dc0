package audit

import (
	"errors"
	"strings"
)

var (
	ErrAssemblyNotFound = errors.New("assembly board not found")
	ErrInvalidYear      = errors.New("invalid fiscal year")
	ErrUnknownAbsentee  = errors.New("absentee not on the assembly roster")
	ErrNoCandidates     = errors.New("no boards to audit")
)

// UnknownAbsenteeError lists the requested absentees that did not match
// any assembly member.
type UnknownAbsenteeError struct {
	Names []string
}

func (e *UnknownAbsenteeError) Error() string {
	return ErrUnknownAbsentee.Error() + ": " + strings.Join(e.Names, ", ")
}

func (e *UnknownAbsenteeError) Unwrap() error {
	return ErrUnknownAbsentee
}
