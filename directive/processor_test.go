package directive

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abonite/mcasm/literal"
	"github.com/abonite/mcasm/source"
)

func splitLines(t *testing.T, program []string) []source.Line {
	lines, err := source.Split(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(t, err)
	return lines
}

func TestProcessor(t *testing.T) {
	assert := assert.New(t)

	dp := &Processor{}

	res := dp.Process(nil)
	assert.Equal(0, len(res.Settings))
	assert.Equal(0, len(res.Instructions))
	assert.Equal(0, len(res.Errors))
	assert.NoError(res.Err())
}

func TestProcessorSet(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		".SET WIDTH 10H",   // 0
		".SET DEPTH 10",    // 1
		".SET MODE 7O",     // 2
		".SET MASK 101B",   // 3
		`.SET FLAG "TRUE"`, // 4
		`.SET QUIET "false"`,
		`.SET NAME "hello"`,
	}

	dp := &Processor{}
	res := dp.Process(splitLines(t, program))
	assert.NoError(res.Err())

	expected := Registry{
		"WIDTH": IntegerValue(16),
		"DEPTH": IntegerValue(10),
		"MODE":  IntegerValue(7),
		"MASK":  IntegerValue(5),
		"FLAG":  BoolValue(true),
		"QUIET": BoolValue(false),
		"NAME":  StringValue("hello"),
	}
	assert.Equal(expected, res.Settings)
}

func TestProcessorLastWriteWins(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		".SET X 5",
		".SET X 6",
	}

	dp := &Processor{}
	res := dp.Process(splitLines(t, program))
	assert.NoError(res.Err())
	assert.Equal(Registry{"X": IntegerValue(6)}, res.Settings)

	// A later kind change replaces the value too.
	program = append(program, `.SET X "six"`)
	res = dp.Process(splitLines(t, program))
	assert.Equal(Registry{"X": StringValue("six")}, res.Settings)
}

func TestProcessorPartition(t *testing.T) {
	assert := assert.New(t)

	lines := []source.Line{
		{LineNo: 0, Text: ".SET A 1"},
		{LineNo: 1, Text: "LOAD A1 B1"},
		{LineNo: 2, Text: ""},
		{LineNo: 4, Text: "STORE B1 A1"},
		{LineNo: 7, Text: ".SET B 2"},
		{LineNo: 8, Text: "HALT"},
	}

	dp := &Processor{}
	res := dp.Process(lines)
	assert.NoError(res.Err())

	expected := []source.Line{
		{LineNo: 1, Text: "LOAD A1 B1"},
		{LineNo: 4, Text: "STORE B1 A1"},
		{LineNo: 8, Text: "HALT"},
	}
	assert.Equal(expected, res.Instructions)
	assert.Equal(Registry{"A": IntegerValue(1), "B": IntegerValue(2)}, res.Settings)
}

func TestProcessorErrors(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		".SET 1NAME 5",      // 0
		".SET -NAME 5",      // 1
		".SET NAME 5 EXTRA", // 2
		".SET NAME 12Q",     // 3
		".DATA X 1",         // 4
		".ARRAY X 1",        // 5
		".DEFINE X 1",       // 6
		".ORG 100H",         // 7
		".SETX A 1",         // 8
		".SET GOOD 1",       // 9
		".SET",              // 10
	}

	dp := &Processor{}
	res := dp.Process(splitLines(t, program))

	expected := []struct {
		lineno int
		err    error
	}{
		{0, ErrArgumentStartsWithDigit},
		{1, ErrArgumentStartsWithInvalidSymbol},
		{2, ErrTooManyArguments},
		{3, literal.ErrMalformedNumber("12Q")},
		{4, ErrDirectiveUnsupported("DATA")},
		{5, ErrDirectiveUnsupported("ARRAY")},
		{6, ErrDirectiveUnsupported("DEFINE")},
		{7, ErrUnknownDirective("ORG")},
		{8, ErrUnknownDirective("SETX")},
		{10, ErrArgumentMissing},
	}

	assert.Equal(len(expected), len(res.Errors))
	if len(expected) != len(res.Errors) {
		t.Fatal(res.Err())
		return
	}
	for n, entry := range expected {
		err := res.Errors[n]
		assert.ErrorIs(err, entry.err, program[entry.lineno])

		var errLine *ErrLine
		assert.True(errors.As(err, &errLine))
		assert.Equal(entry.lineno, errLine.LineNo)
		assert.Equal(program[entry.lineno], errLine.Text)
	}

	// One bad directive does not stop the pass.
	assert.Equal(Registry{"GOOD": IntegerValue(1)}, res.Settings)

	assert.ErrorIs(res.Err(), ErrTooManyArguments)
}

func TestProcessorIdempotent(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		".SET A 1",
		".SET B 2 3",
		"NOP",
		`.SET C "c"`,
		".DATA D",
	}
	lines := splitLines(t, program)

	dp := &Processor{}
	first := dp.Process(lines)
	second := dp.Process(lines)

	assert.Equal(first.Settings, second.Settings)
	assert.Equal(first.Instructions, second.Instructions)
	assert.Equal(first.Errors, second.Errors)

	first.Settings["A"] = IntegerValue(100)
	third := dp.Process(lines)
	assert.Equal(IntegerValue(1), third.Settings["A"])
}

func TestProcessorPredefine(t *testing.T) {
	assert := assert.New(t)

	dp := &Processor{}
	dp.Predefine("A", IntegerValue(1))
	dp.Predefine("B", BoolValue(true))

	res := dp.Process(splitLines(t, []string{".SET A 2"}))
	assert.NoError(res.Err())
	assert.Equal(Registry{"A": IntegerValue(2), "B": BoolValue(true)}, res.Settings)

	// Predefines are not changed by a pass.
	res = dp.Process(nil)
	assert.Equal(Registry{"A": IntegerValue(1), "B": BoolValue(true)}, res.Settings)
}

func TestProcessorVerbose(t *testing.T) {
	assert := assert.New(t)

	dp := &Processor{Verbose: true}
	res := dp.Process(splitLines(t, []string{".SET A 1", ".SET 2 2"}))
	assert.Equal(1, len(res.Errors))
	assert.Equal(Registry{"A": IntegerValue(1)}, res.Settings)
}

func TestRegistry(t *testing.T) {
	assert := assert.New(t)

	var reg Registry
	clone := reg.Clone()
	assert.NotNil(clone)
	clone["A"] = IntegerValue(1)

	reg = Registry{"B": IntegerValue(2), "A": IntegerValue(1)}
	value, ok := reg.Get("B")
	assert.True(ok)
	assert.Equal(IntegerValue(2), value)
	_, ok = reg.Get("C")
	assert.False(ok)

	var names []string
	for name := range reg.All() {
		names = append(names, name)
	}
	assert.Equal([]string{"A", "B"}, names)
}

func TestKeyword(t *testing.T) {
	assert := assert.New(t)

	word, text := keyword(".SET A 1")
	assert.Equal("SET", word)
	assert.Equal(" A 1", text)

	word, text = keyword(".DATA\tX")
	assert.Equal("DATA", word)
	assert.Equal("\tX", text)

	word, text = keyword(".SET")
	assert.Equal("SET", word)
	assert.Equal("", text)
}
