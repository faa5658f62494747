// Package preset predefines assembler settings from a Starlark script.
//
// Every public global of the script becomes a setting:
//
//	WIDTH = 16
//	DEBUG = True
//	TARGET = "rom"
//	_scratch = WIDTH * 2  # private, ignored
package preset

import (
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/abonite/mcasm/directive"
	"github.com/abonite/mcasm/translate"
)

var f = translate.From

// ErrPresetType is returned for a global that is not a bool, int or string.
type ErrPresetType struct {
	Name string
	Type string
}

func (err *ErrPresetType) Error() string {
	return f("preset %v has unsupported type %v", err.Name, err.Type)
}

// ErrPresetRange is returned for an int that is not a machine word.
type ErrPresetRange string

func (err ErrPresetRange) Error() string {
	return f("preset %v is not an unsigned 64-bit integer", string(err))
}

// valueOf converts a Starlark value to a setting value.
func valueOf(name string, value starlark.Value) (setting directive.Value, err error) {
	switch v := value.(type) {
	case starlark.Bool:
		setting = directive.BoolValue(bool(v))
	case starlark.Int:
		n, ok := v.Uint64()
		if !ok {
			err = ErrPresetRange(name)
			return
		}
		setting = directive.IntegerValue(n)
	case starlark.String:
		setting = directive.StringValue(string(v))
	default:
		err = &ErrPresetType{Name: name, Type: value.Type()}
	}
	return
}

// Load executes a Starlark script, and returns its globals as settings.
// See starlark.ExecFileOptions for the meaning of filename and src.
func Load(filename string, src any) (settings directive.Registry, err error) {
	thread := &starlark.Thread{Name: "preset"}
	opts := &syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(opts, thread, filename, src, nil)
	if err != nil {
		return
	}

	settings = directive.Registry{}
	for _, name := range globals.Keys() {
		if strings.HasPrefix(name, "_") {
			continue
		}
		var value directive.Value
		value, err = valueOf(name, globals[name])
		if err != nil {
			settings = nil
			return
		}
		settings[name] = value
	}

	return
}
