// Package register describes the register banks of the target machine.
//
// There are 42 registers: ZERO, the program counter PC, and four banks
// (A, B, C, D) of ten general purpose registers each. Instructions restrict
// which registers each operand may name, so the banks are published as four
// lookup tables.
package register

import (
	"slices"
)

// Code is the encoded register number placed in an instruction word.
type Code uint8

const (
	CODE_ZERO = Code(0)
	CODE_PC   = Code(41)
)

// Bank register suffixes, in code order.
var bankSuffix = []string{"1", "2", "3", "4", "R1", "R2", "R3", "SS", "SP", "DS"}

// Bank prefixes, in code order.
var bankPrefix = []string{"A", "B", "C", "D"}

// Table is an immutable map of register mnemonics to codes.
type Table struct {
	name  string
	codes map[string]Code
}

var (
	// All registers.
	All = makeAll()
	// NonZero is every register except ZERO.
	NonZero = All.without("nonzero", "ZERO")
	// NonPC is every register except PC.
	NonPC = All.without("nonpc", "PC")
	// General is the 40 general purpose bank registers.
	General = All.without("general", "ZERO", "PC")
)

var tableMap = map[string]*Table{
	All.name:     All,
	NonZero.name: NonZero,
	NonPC.name:   NonPC,
	General.name: General,
}

func makeAll() *Table {
	table := &Table{
		name: "all",
		codes: map[string]Code{
			"ZERO": CODE_ZERO,
			"PC":   CODE_PC,
		},
	}

	code := CODE_ZERO + 1
	for _, bank := range bankPrefix {
		for _, suffix := range bankSuffix {
			table.codes[bank+suffix] = code
			code++
		}
	}

	return table
}

// without returns a filtered copy of the table.
func (table *Table) without(name string, excluded ...string) *Table {
	out := &Table{
		name:  name,
		codes: make(map[string]Code, len(table.codes)),
	}
	for reg, code := range table.codes {
		if slices.Contains(excluded, reg) {
			continue
		}
		out.codes[reg] = code
	}
	return out
}

// ByName returns one of the four register tables by its name:
// "all", "nonzero", "nonpc" or "general".
func ByName(name string) (table *Table, ok bool) {
	table, ok = tableMap[name]
	return
}

// Lookup returns the code of a register mnemonic.
// Mnemonics are matched exactly, and are upper case.
func (table *Table) Lookup(name string) (code Code, ok bool) {
	code, ok = table.codes[name]
	return
}

// Name of the table.
func (table *Table) Name() string {
	return table.name
}

// Len is the number of registers in the table.
func (table *Table) Len() int {
	return len(table.codes)
}

// Names returns the register mnemonics of the table, ordered by code.
func (table *Table) Names() (names []string) {
	for reg := range table.codes {
		names = append(names, reg)
	}
	slices.SortFunc(names, func(a, b string) int {
		return int(table.codes[a]) - int(table.codes[b])
	})
	return
}
