package directive

import (
	"errors"
	"log"
	"strings"

	"github.com/abonite/mcasm/source"
)

// MARKER starts a directive line.
const MARKER = "."

// handler processes the text following a directive keyword.
type handler func(dp *Processor, settings Registry, text string) error

// directiveMap maps directive keywords to their handlers.
var directiveMap = map[string]handler{
	"SET":    (*Processor).doSet,
	"DATA":   unsupported("DATA"),
	"ARRAY":  unsupported("ARRAY"),
	"DEFINE": unsupported("DEFINE"),
}

func unsupported(keyword string) handler {
	return func(dp *Processor, settings Registry, text string) error {
		return ErrDirectiveUnsupported(keyword)
	}
}

// Result is the output of a directive pass.
type Result struct {
	Settings     Registry      // Resolved settings.
	Instructions []source.Line // Non-directive lines, in source order.
	Errors       []error       // Directive errors, in source order.
}

// Err joins all directive errors, or returns nil if there were none.
func (res *Result) Err() error {
	return errors.Join(res.Errors...)
}

// Processor separates directive lines from instruction lines, and
// resolves the settings made by the directives.
type Processor struct {
	Verbose bool // If set, verbosely logs each directive.

	predefine Registry
}

// Predefine sets a setting before any directive is processed.
// Directives in the source override predefined settings.
func (dp *Processor) Predefine(name string, value Value) {
	if dp.predefine == nil {
		dp.predefine = Registry{name: value}
	} else {
		dp.predefine[name] = value
	}
}

// keyword splits a directive line into its keyword and the remaining text.
func keyword(line string) (word string, text string) {
	line = strings.TrimPrefix(line, MARKER)
	end := strings.IndexAny(line, " \t")
	if end < 0 {
		return line, ""
	}
	return line[:end], line[end:]
}

// Process runs the directive pass over the source lines.
//
// Every directive is processed in order, even after an error, so that all
// problems are reported at once.
func (dp *Processor) Process(lines []source.Line) (res *Result) {
	res = &Result{
		Settings: dp.predefine.Clone(),
	}

	for _, line := range lines {
		if len(line.Text) == 0 {
			continue
		}

		if !strings.HasPrefix(line.Text, MARKER) {
			res.Instructions = append(res.Instructions, line)
			continue
		}

		if dp.Verbose {
			log.Printf("%v\n", line)
		}

		err := dp.directive(res.Settings, line.Text)
		if err != nil {
			if dp.Verbose {
				log.Printf("%v: %v\n", line, err)
			}
			res.Errors = append(res.Errors, &ErrLine{Line: line, Err: err})
		}
	}

	return
}

// directive dispatches a single directive line.
func (dp *Processor) directive(settings Registry, line string) (err error) {
	word, text := keyword(line)

	do, ok := directiveMap[word]
	if !ok {
		err = ErrUnknownDirective(word)
		return
	}

	return do(dp, settings, text)
}

// doSet handles .SET NAME VALUE
func (dp *Processor) doSet(settings Registry, text string) (err error) {
	args, err := ScanTwo(text)
	if err != nil {
		return
	}

	value, err := Resolve(args.Value, args.Quoted)
	if err != nil {
		return
	}

	if dp.Verbose {
		log.Printf("  %v = %v (%v)\n", args.Name, value, value.Kind)
	}

	settings[args.Name] = value

	return
}
