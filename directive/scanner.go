package directive

import (
	"strings"
)

// Args are the arguments of a two argument directive:
//
//	.KEYWORD NAME VALUE
//	.KEYWORD NAME "QUOTED VALUE"
type Args struct {
	Name   string // Bare first argument.
	Value  string // Second argument, without any quotes.
	Quoted bool   // Set if the second argument was double quoted.
}

// invalidSymbols are the ASCII punctuation characters that can not
// start an argument.
const invalidSymbols = "!\"#$%&'()*+,-./:;<=>?@[\\]^`{|}~"

func isSeparator(c rune) bool {
	return c == ' ' || c == '\t'
}

func isDelimiter(c rune) bool {
	return isSeparator(c) || c == '\n'
}

// scanner is the argument tokenizing state machine.
//
// The scanner starts in stateIdle, skipping the directive keyword until
// the first separator.
type scanner struct {
	state  scanState
	want   int  // Number of arguments expected, 1 or 2.
	quoted bool // Second argument is inside double quotes.
	arg1   strings.Builder
	arg2   strings.Builder
}

// step advances the scanner by one character.
func (sc *scanner) step(c rune) (err error) {
	switch sc.state {
	case stateIdle:
		if isSeparator(c) {
			sc.state = stateArg1First
		}
	case stateArg1First:
		switch {
		case isDelimiter(c):
		case c >= '0' && c <= '9':
			err = ErrArgumentStartsWithDigit
		case strings.ContainsRune(invalidSymbols, c):
			err = ErrArgumentStartsWithInvalidSymbol
		default:
			sc.arg1.WriteRune(c)
			sc.state = stateArg1
		}
	case stateArg1:
		switch {
		case !isDelimiter(c):
			sc.arg1.WriteRune(c)
		case sc.want == 1:
			sc.state = stateFinish
		default:
			sc.state = stateArg1Finish
		}
	case stateArg1Finish:
		switch {
		case isDelimiter(c):
		case c == '"':
			sc.quoted = true
			sc.state = stateArg2
		default:
			sc.arg2.WriteRune(c)
			sc.state = stateArg2
		}
	case stateArg2:
		switch {
		case sc.quoted && c == '"':
			sc.state = stateFinish
		case !sc.quoted && isDelimiter(c):
			sc.state = stateFinish
		default:
			sc.arg2.WriteRune(c)
		}
	case stateFinish:
		if !isDelimiter(c) {
			err = ErrTooManyArguments
		}
	default:
		err = ErrStateMachineInvariant
	}

	return
}

// end checks that the scanner may stop at the end of the text.
func (sc *scanner) end() (err error) {
	switch sc.state {
	case stateIdle, stateArg1First, stateArg1Finish:
		err = ErrArgumentMissing
	case stateArg1:
		if sc.want != 1 {
			err = ErrArgumentMissing
		}
	case stateArg2:
		if sc.quoted {
			err = ErrUnterminatedString
		}
	case stateFinish:
	default:
		err = ErrStateMachineInvariant
	}

	return
}

// scan runs the scanner over the whole text.
func (sc *scanner) scan(text string) (err error) {
	for _, c := range text {
		err = sc.step(c)
		if err != nil {
			return
		}
	}

	return sc.end()
}

// ScanOne extracts exactly one bare argument from the text following a
// directive keyword.
func ScanOne(text string) (arg string, err error) {
	sc := &scanner{want: 1}
	err = sc.scan(text)
	if err != nil {
		return
	}

	arg = sc.arg1.String()
	return
}

// ScanTwo extracts a bare name and a bare or double quoted value from the
// text following a directive keyword. Quoted values may contain separators,
// and are returned verbatim.
func ScanTwo(text string) (args Args, err error) {
	sc := &scanner{want: 2}
	err = sc.scan(text)
	if err != nil {
		return
	}

	args = Args{
		Name:   sc.arg1.String(),
		Value:  sc.arg2.String(),
		Quoted: sc.quoted,
	}
	return
}
