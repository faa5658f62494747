// Package isa loads the instruction set definition of the target machine.
//
// The instruction set is a TOML file listing each instruction:
//
//	[[instruction]]
//	mnemonic = "LOAD"
//	class = "memory"
//	opcode = 0x001
//	source = "all"     # register table for the source operand
//	target = "all"     # register table for the target operand
//	immediate_bits = 6 # optional
//
// Register tables are named "all", "nonzero", "nonpc" or "general".
package isa

import (
	"io"
	"os"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/abonite/mcasm/instruction"
	"github.com/abonite/mcasm/internal"
	"github.com/abonite/mcasm/register"
)

// Definition describes one instruction of the set.
type Definition struct {
	Mnemonic      string `toml:"mnemonic"`
	Class         string `toml:"class"`
	Opcode        uint16 `toml:"opcode"`
	Source        string `toml:"source"`
	Target        string `toml:"target"`
	ImmediateBits uint8  `toml:"immediate_bits"`
}

// file is the TOML document layout.
type file struct {
	Instruction []Definition `toml:"instruction"`
}

// Set is a validated instruction set.
type Set struct {
	defs map[string]Definition
}

// table resolves a register table name. Absent names select all registers.
func table(name string) (*register.Table, error) {
	if len(name) == 0 {
		return register.All, nil
	}
	tbl, ok := register.ByName(name)
	if !ok {
		return nil, ErrTableUnknown(name)
	}
	return tbl, nil
}

func (def *Definition) validate() (err error) {
	if len(def.Mnemonic) == 0 {
		err = ErrMnemonicMissing
		return
	}
	if def.Opcode>>instruction.OPCODE_BITS != 0 {
		err = ErrOpcodeRange
		return
	}
	if def.ImmediateBits == 0 {
		def.ImmediateBits = instruction.IMMEDIATE_BITS
	}
	if def.ImmediateBits > instruction.IMMEDIATE_BITS {
		err = ErrImmediateBits
		return
	}
	_, err = table(def.Source)
	if err != nil {
		return
	}
	_, err = table(def.Target)
	return
}

// Load reads and validates a TOML instruction set.
func Load(input io.Reader) (set *Set, err error) {
	var doc file
	_, err = toml.NewDecoder(input).Decode(&doc)
	if err != nil {
		return
	}

	defs := make(map[string]Definition, len(doc.Instruction))
	for n := range doc.Instruction {
		def := doc.Instruction[n]
		err = def.validate()
		if err != nil {
			err = &ErrDefinition{Index: n, Mnemonic: def.Mnemonic, Err: err}
			return
		}
		_, ok := defs[def.Mnemonic]
		if ok {
			err = &ErrDefinition{Index: n, Mnemonic: def.Mnemonic, Err: ErrMnemonicDuplicate}
			return
		}
		defs[def.Mnemonic] = def
	}

	set = &Set{defs: defs}
	return
}

// LoadFile reads a TOML instruction set from a file.
func LoadFile(path string) (set *Set, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return Load(inf)
}

// Lookup returns the definition of a mnemonic.
func (set *Set) Lookup(mnemonic string) (def Definition, ok bool) {
	def, ok = set.defs[mnemonic]
	return
}

// Mnemonics returns all mnemonics of the set, sorted.
func (set *Set) Mnemonics() (mnemonics []string) {
	for mnemonic := range internal.SortedSeq2(set.defs) {
		mnemonics = append(mnemonics, mnemonic)
	}
	return
}

// Len is the number of instructions in the set.
func (set *Set) Len() int {
	return len(set.defs)
}

// New creates an instruction for a mnemonic, with no operands set.
func (set *Set) New(mnemonic string) (inst *instruction.Instruction, err error) {
	def, ok := set.defs[mnemonic]
	if !ok {
		err = ErrMnemonicUnknown(mnemonic)
		return
	}

	// Tables were checked when the set was loaded.
	source, _ := table(def.Source)
	target, _ := table(def.Target)

	inst = instruction.New(def.Class, def.Mnemonic, def.Opcode, source, target)
	inst.ImmediateBits = def.ImmediateBits

	return
}

// Classes returns the distinct instruction classes of the set, sorted.
func (set *Set) Classes() (classes []string) {
	for _, def := range set.defs {
		if !slices.Contains(classes, def.Class) {
			classes = append(classes, def.Class)
		}
	}
	slices.Sort(classes)
	return
}
