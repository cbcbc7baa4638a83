// Package locale installs the game's message catalogue for gotext.
// Every user-facing string in the game is looked up by key with gotext.Get;
// keys missing from the catalogue are shown as-is.
package locale

import (
	_ "embed"

	"github.com/leonelquinteros/gotext"
)

// Domain is the gettext domain the catalogue is registered under.
const Domain = "default"

//go:embed en.po
var enPo []byte

// Init parses the embedded English catalogue and makes it the global gotext
// storage.
func Init() {
	po := gotext.NewPo()
	po.Parse(enPo)

	l := gotext.NewLocale("", "en")
	l.AddTranslator(Domain, po)
	gotext.SetStorage(l)
}

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's printf check, since keys are
// not format strings; the catalogue entries they resolve to are.
var dynamicGet = gotext.Get

// T returns the catalogue entry for key formatted with args.
func T(key string, args ...any) string {
	return dynamicGet(key, args...)
}
