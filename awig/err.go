package awig

import (
	"errors"

	"github.com/ezrec/awig/translate"
)

var f = translate.From

var (
	// Element errors
	ErrIdDuplicate  = errors.New(f("id already exists"))
	ErrIdRange      = errors.New(f("id out of range"))
	ErrWidthInvalid = errors.New(f("width invalid"))
	ErrPathInvalid  = errors.New(f("path invalid"))
)

// ErrElement locates an invalid register or memory in its list.
type ErrElement struct {
	Kind  Kind
	Index int
	Id    uint32
	Path  string
	Err   error
}

func (err ErrElement) Error() string {
	return f("%v #%d id %d '%v' %v", err.Kind, err.Index, err.Id, err.Path, err.Err)
}

func (err ErrElement) Unwrap() error {
	return err.Err
}

// ErrIdentifier reports a request name that is not a valid identifier.
type ErrIdentifier struct {
	Field string
	Name  string
}

func (err ErrIdentifier) Error() string {
	return f("%v '%v' is not an identifier", err.Field, err.Name)
}

// ErrNameCollision reports two sources of the same generated function.
type ErrNameCollision struct {
	Name   string
	First  string
	Second string
}

func (err ErrNameCollision) Error() string {
	return f("function %v generated for both %v and %v", err.Name, err.First, err.Second)
}

// ErrOutput reports a failure to write the generated module.
type ErrOutput struct {
	Path string
	Err  error
}

func (err *ErrOutput) Error() string {
	return f("cannot write %v: %v", err.Path, err.Err)
}

func (err *ErrOutput) Unwrap() error {
	return err.Err
}
