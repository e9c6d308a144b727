// Package translate formats user visible messages for the current locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	tag     = language.AmericanEnglish
	printer = message.NewPrinter(tag)
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("qrasm: locale: %v", err)
	}

	SetLocales(locales...)
}

// SetLocales selects the message printer from the first well formed
// BCP 47 tag of the preferred list. Lists with no usable tag, such as
// the POSIX "C" locale, select en-US.
func SetLocales(locales ...string) {
	tag = language.AmericanEnglish
	for _, name := range locales {
		t, err := language.Parse(name)
		if err != nil || t == language.Und {
			continue
		}
		tag = t
		break
	}

	printer = message.NewPrinter(tag)
}

// Language is the tag messages are currently formatted for.
func Language() language.Tag {
	return tag
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
