// Package i18n holds the translated strings shown to the player.
package i18n

import (
	_ "embed"

	"github.com/leonelquinteros/gotext"

	"glueboy/pkg/engine/world"
)

//go:embed locales/en.po
var englishCatalogue []byte

var catalogue = load(englishCatalogue)

// lookup is called through a variable because keys are not format strings
// and go vet would otherwise treat Get as a printf wrapper.
var lookup = catalogue.Get

func load(buf []byte) *gotext.Po {
	po := gotext.NewPo()
	po.Parse(buf)
	return po
}

// Get returns the translation for key, formatted with args. Unknown keys are
// returned as-is.
func Get(key string, args ...any) string {
	return lookup(key, args...)
}

// BlockName returns the display name of a block type
func BlockName(b world.BlockType) string {
	return Get("BLOCK_" + b.String())
}
