// Package translate localizes user-visible assembler messages.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer     *message.Printer
	printerOnce sync.Once
)

// systemPrinter selects a printer from the user's preferred locales,
// falling back to en-US.
func systemPrinter() *message.Printer {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("mcasm: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	return message.NewPrinter(message.MatchLanguage(locales...))
}

// SetLanguage forces message output to a specific language tag.
func SetLanguage(tag language.Tag) {
	printerOnce.Do(func() {})
	printer = message.NewPrinter(tag)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	printerOnce.Do(func() {
		printer = systemPrinter()
	})
	return printer.Sprintf(key, args...)
}
