// Package instruction models a machine instruction before it is packed
// into a 16-bit word.
//
// A word is a 10-bit opcode followed by 6 bits of register or immediate
// operand. The downstream emitter does the packing; this package only
// guarantees that every stored register code came from the operand's
// lookup table, and that immediates fit their field.
package instruction

import (
	"github.com/abonite/mcasm/literal"
	"github.com/abonite/mcasm/register"
	"github.com/abonite/mcasm/translate"
)

var f = translate.From

const (
	WORD_BITS      = 16 // Instruction word width.
	OPCODE_BITS    = 10 // Opcode field width.
	IMMEDIATE_BITS = WORD_BITS - OPCODE_BITS
)

// ErrImmediateRange is returned when an immediate does not fit its field.
type ErrImmediateRange struct {
	Mnemonic string
	Text     string
	Bits     uint8
}

func (err *ErrImmediateRange) Error() string {
	return f("in instruction %v, immediate %v does not fit in %d bits", err.Mnemonic, err.Text, err.Bits)
}

// Instruction is a single instruction with validated operand fields.
type Instruction struct {
	Class         string          // Instruction class, ie "memory".
	Mnemonic      string          // Instruction mnemonic.
	Opcode        uint16          // Opcode value.
	OpcodeBits    uint8           // Width of the opcode field.
	ImmediateBits uint8           // Width of the immediate field.
	SourceTable   *register.Table // Registers allowed as source.
	TargetTable   *register.Table // Registers allowed as target.

	source    *register.Code
	target    *register.Code
	immediate *uint64
}

// New creates an instruction with no operands set.
func New(class, mnemonic string, opcode uint16, source, target *register.Table) *Instruction {
	return &Instruction{
		Class:         class,
		Mnemonic:      mnemonic,
		Opcode:        opcode,
		OpcodeBits:    OPCODE_BITS,
		ImmediateBits: IMMEDIATE_BITS,
		SourceTable:   source,
		TargetTable:   target,
	}
}

// lookup finds a register in an operand table.
func (inst *Instruction) lookup(table *register.Table, name string) (code register.Code, err error) {
	var ok bool
	if table != nil {
		code, ok = table.Lookup(name)
	}
	if !ok {
		err = &register.ErrInvalidRegister{Mnemonic: inst.Mnemonic, Name: name}
	}
	return
}

// SetSourceRegister validates and stores the source register.
// On error, the source field is left unchanged.
func (inst *Instruction) SetSourceRegister(name string) (err error) {
	code, err := inst.lookup(inst.SourceTable, name)
	if err != nil {
		return
	}
	inst.source = &code
	return
}

// SetTargetRegister validates and stores the target register.
// On error, the target field is left unchanged.
func (inst *Instruction) SetTargetRegister(name string) (err error) {
	code, err := inst.lookup(inst.TargetTable, name)
	if err != nil {
		return
	}
	inst.target = &code
	return
}

// SetImmediate parses a numeric literal and stores it as the immediate.
// On error, the immediate field is left unchanged.
func (inst *Instruction) SetImmediate(text string) (err error) {
	value, err := literal.ParseNumber(text)
	if err != nil {
		return
	}

	if inst.ImmediateBits < 64 && value>>inst.ImmediateBits != 0 {
		err = &ErrImmediateRange{Mnemonic: inst.Mnemonic, Text: text, Bits: inst.ImmediateBits}
		return
	}

	inst.immediate = &value
	return
}

// Source returns the source register code, if set.
func (inst *Instruction) Source() (code register.Code, ok bool) {
	if inst.source != nil {
		code, ok = *inst.source, true
	}
	return
}

// Target returns the target register code, if set.
func (inst *Instruction) Target() (code register.Code, ok bool) {
	if inst.target != nil {
		code, ok = *inst.target, true
	}
	return
}

// Immediate returns the immediate value, if set.
func (inst *Instruction) Immediate() (value uint64, ok bool) {
	if inst.immediate != nil {
		value, ok = *inst.immediate, true
	}
	return
}
