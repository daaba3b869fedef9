package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component names used with Component.
const (
	CmpCatalog = "catalog"
	CmpPicker  = "picker"
	CmpLs      = "ls"
)

// Component returns the global logger tagged with "cmp": name. log.Logger is
// read at call time.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}
