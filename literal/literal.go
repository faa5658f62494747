// Package literal parses the assembler's numeric literals.
//
// A literal is a run of digits with an optional radix suffix:
//
//	1234   decimal
//	0FFH   hexadecimal
//	17O    octal
//	1010B  binary
package literal

import (
	"strconv"

	"github.com/abonite/mcasm/translate"
)

var f = translate.From

// ErrMalformedNumber is returned when a literal does not parse in its radix.
type ErrMalformedNumber string

func (err ErrMalformedNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// radixMap maps radix suffixes to number bases.
var radixMap = map[byte]int{
	'H': 16,
	'O': 8,
	'B': 2,
}

// Radix returns the digits and number base selected by the literal's suffix.
func Radix(text string) (digits string, base int) {
	if len(text) > 0 {
		base, ok := radixMap[text[len(text)-1]]
		if ok {
			return text[:len(text)-1], base
		}
	}
	return text, 10
}

// ParseNumber parses a numeric literal into an unsigned machine word.
func ParseNumber(text string) (value uint64, err error) {
	digits, base := Radix(text)

	value, err = strconv.ParseUint(digits, base, 64)
	if err != nil {
		value = 0
		err = ErrMalformedNumber(text)
		return
	}

	return
}
