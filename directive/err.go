package directive

import (
	"errors"

	"github.com/abonite/mcasm/source"
	"github.com/abonite/mcasm/translate"
)

var f = translate.From

var (
	// Argument scanner errors
	ErrArgumentStartsWithDigit         = errors.New(f("argument can not start with a number"))
	ErrArgumentStartsWithInvalidSymbol = errors.New(f("argument can not start with a symbol other than '_'"))
	ErrArgumentMissing                 = errors.New(f("argument missing"))
	ErrTooManyArguments                = errors.New(f("too many arguments"))
	ErrUnterminatedString              = errors.New(f("string missing closing '\"'"))
	ErrStateMachineInvariant           = errors.New(f("argument scanner reached an invalid state"))
)

// ErrUnknownDirective is returned for a directive keyword that is not recognized.
type ErrUnknownDirective string

func (err ErrUnknownDirective) Error() string {
	return f(".%v is not a directive", string(err))
}

// ErrDirectiveUnsupported is returned for a recognized directive that
// this assembler does not implement.
type ErrDirectiveUnsupported string

func (err ErrDirectiveUnsupported) Error() string {
	return f(".%v is not implemented", string(err))
}

// ErrLine attaches a source line to a directive error.
type ErrLine struct {
	source.Line
	Err error
}

func (err *ErrLine) Error() string {
	return f("line %d '%v' %v", err.LineNo+1, err.Text, err.Err)
}

func (err *ErrLine) Unwrap() error {
	return err.Err
}
