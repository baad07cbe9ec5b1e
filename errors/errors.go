// Package errors defines the error taxonomy shared by the annotation, vocabulary,
// resolve and openapi packages.
//
// Only [ErrArgumentMissing] is fatal to the calling operation. Malformed annotations
// are recovered at field granularity and reported as diagnostics, and unknown terms
// resolve to absence.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrArgumentMissing indicates a required input (element, settings, operation) was nil.
	ErrArgumentMissing = errors.New("argument missing")
	// ErrMalformedAnnotation indicates an annotation expression does not have the shape
	// the record field declares.
	ErrMalformedAnnotation = errors.New("malformed annotation")
	// ErrUnknownEnumMember indicates a symbolic enum path names no declared member.
	ErrUnknownEnumMember = errors.New("unknown enum member")
	// ErrUnknownTerm indicates no record kind is registered for a term.
	ErrUnknownTerm = errors.New("unknown term")
)

// ArgumentMissingError names the nil argument.
type ArgumentMissingError struct {
	Name string
}

func (e *ArgumentMissingError) Error() string {
	return fmt.Sprintf("argument missing: %s", e.Name)
}

func (e *ArgumentMissingError) Is(target error) bool {
	return target == ErrArgumentMissing
}

// ArgumentMissing returns an error for the nil argument name.
func ArgumentMissing(name string) error {
	return &ArgumentMissingError{Name: name}
}

// MalformedAnnotationError describes an expression whose shape does not match the
// requested type. Term and Field are filled in as far as they are known at the
// point of failure.
type MalformedAnnotationError struct {
	Term  string
	Field string
	Want  string
	Got   string
}

func (e *MalformedAnnotationError) Error() string {
	msg := "malformed annotation"
	if e.Term != "" {
		msg += " " + e.Term
	}
	if e.Field != "" {
		msg += fmt.Sprintf(" field %q", e.Field)
	}
	if e.Want != "" || e.Got != "" {
		msg += fmt.Sprintf(": want %s, got %s", e.Want, e.Got)
	}
	return msg
}

func (e *MalformedAnnotationError) Is(target error) bool {
	return target == ErrMalformedAnnotation
}

// UnknownEnumMemberError reports a member that is not declared by the enum type.
// It matches both ErrUnknownEnumMember and ErrMalformedAnnotation.
type UnknownEnumMemberError struct {
	Field  string
	Enum   string
	Member string
}

func (e *UnknownEnumMemberError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("unknown enum member %q of %s", e.Member, e.Enum)
	}
	return fmt.Sprintf("field %q: unknown enum member %q of %s", e.Field, e.Member, e.Enum)
}

func (e *UnknownEnumMemberError) Is(target error) bool {
	return target == ErrUnknownEnumMember || target == ErrMalformedAnnotation
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
