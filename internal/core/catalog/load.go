package catalog

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// CatalogLoadError reports a source that could not be read or parsed.
type CatalogLoadError struct {
	Source string
	Err    error
}

func (e *CatalogLoadError) Error() string {
	return fmt.Sprintf("load catalog %s: %v", e.Source, e.Err)
}

func (e *CatalogLoadError) Unwrap() error { return e.Err }

// Load reads every source, concatenates the results and sorts them by name.
// A failing source never fails the load: the whole catalog degrades to empty
// and the failure is logged, so a host always gets a usable (possibly empty)
// list. The returned error is the first CatalogLoadError, for callers that
// want to report it; it is nil on success.
func Load(ctx context.Context, logger zerolog.Logger, sources ...Source) ([]Entry, error) {
	var entries []Entry
	for _, src := range sources {
		loaded, err := src.Load(ctx)
		if err != nil {
			loadErr := &CatalogLoadError{Source: src.Name(), Err: err}
			logger.Warn().Ctx(ctx).Err(err).Str("source", src.Name()).Msg("catalog unavailable, using empty catalog")
			return []Entry{}, loadErr
		}
		logger.Debug().Ctx(ctx).Str("source", src.Name()).Int("entries", len(loaded)).Msg("catalog source loaded")
		entries = append(entries, loaded...)
	}

	if entries == nil {
		entries = []Entry{}
	}
	Sort(entries)
	return entries, nil
}
