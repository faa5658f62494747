package register

import (
	"github.com/abonite/mcasm/translate"
)

var f = translate.From

// ErrInvalidRegister is returned when an operand names a register that the
// instruction does not accept in that position.
type ErrInvalidRegister struct {
	Mnemonic string
	Name     string
}

func (err *ErrInvalidRegister) Error() string {
	return f("in instruction %v, %v is not a valid register", err.Mnemonic, err.Name)
}
