package isa

import (
	"errors"

	"github.com/abonite/mcasm/translate"
)

var f = translate.From

var (
	ErrMnemonicMissing   = errors.New(f("mnemonic missing"))
	ErrMnemonicDuplicate = errors.New(f("mnemonic duplicated"))
	ErrOpcodeRange       = errors.New(f("opcode does not fit in 10 bits"))
	ErrImmediateBits     = errors.New(f("immediate_bits must be between 1 and 6"))
)

// ErrTableUnknown is returned for an unknown register table name.
type ErrTableUnknown string

func (err ErrTableUnknown) Error() string {
	return f("register table '%v' unknown", string(err))
}

// ErrMnemonicUnknown is returned for a mnemonic not in the instruction set.
type ErrMnemonicUnknown string

func (err ErrMnemonicUnknown) Error() string {
	return f("instruction %v unknown", string(err))
}

// ErrDefinition locates an error in the instruction set file.
type ErrDefinition struct {
	Index    int
	Mnemonic string
	Err      error
}

func (err *ErrDefinition) Error() string {
	return f("instruction #%d '%v' %v", err.Index+1, err.Mnemonic, err.Err)
}

func (err *ErrDefinition) Unwrap() error {
	return err.Err
}
