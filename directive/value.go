package directive

import (
	"strconv"
	"strings"

	"github.com/abonite/mcasm/literal"
)

// Kind is the type of a setting value.
type Kind int

const (
	KindBool    = Kind(0)
	KindInteger = Kind(1)
	KindString  = Kind(2)
)

func (kind Kind) String() string {
	switch kind {
	case KindBool:
		return "bool"
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	}
	return "Kind(" + strconv.Itoa(int(kind)) + ")"
}

// Value is a setting value: a bool, an unsigned integer, or a string.
type Value struct {
	Kind    Kind
	boolean bool
	integer uint64
	text    string
}

// BoolValue makes a bool setting value.
func BoolValue(b bool) Value {
	return Value{Kind: KindBool, boolean: b}
}

// IntegerValue makes an integer setting value.
func IntegerValue(n uint64) Value {
	return Value{Kind: KindInteger, integer: n}
}

// StringValue makes a string setting value.
func StringValue(s string) Value {
	return Value{Kind: KindString, text: s}
}

// Bool returns the value if it is a bool.
func (value Value) Bool() (b bool, ok bool) {
	return value.boolean, value.Kind == KindBool
}

// Integer returns the value if it is an integer.
func (value Value) Integer() (n uint64, ok bool) {
	return value.integer, value.Kind == KindInteger
}

// Text returns the value if it is a string.
func (value Value) Text() (s string, ok bool) {
	return value.text, value.Kind == KindString
}

// String formats the value in directive syntax.
func (value Value) String() string {
	switch value.Kind {
	case KindBool:
		if value.boolean {
			return `"TRUE"`
		}
		return `"FALSE"`
	case KindInteger:
		return strconv.FormatUint(value.integer, 10)
	default:
		return `"` + value.text + `"`
	}
}

// Resolve converts the raw second argument of a directive to a typed value.
//
// Bare values are numeric literals. Quoted values are bools if they read
// TRUE or FALSE in any case, otherwise they are strings.
func Resolve(raw string, quoted bool) (value Value, err error) {
	if !quoted {
		var n uint64
		n, err = literal.ParseNumber(raw)
		if err != nil {
			return
		}
		value = IntegerValue(n)
		return
	}

	switch strings.ToUpper(raw) {
	case "TRUE":
		value = BoolValue(true)
	case "FALSE":
		value = BoolValue(false)
	default:
		value = StringValue(raw)
	}

	return
}
