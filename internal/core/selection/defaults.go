package selection

import "github.com/colonyops/dialpick/internal/core/catalog"

// USFlagURL is the flag image used by the built-in fallback entry.
const USFlagURL = "https://cdn.jsdelivr.net/npm/country-flag-emoji-json@2.0.0/dist/images/US.svg"

// USFallback is the entry used when a configured default code is not in the
// working set.
func USFallback() catalog.Entry {
	return catalog.Entry{
		Name:     "United States",
		DialCode: "+1",
		Code:     "US",
		Image:    USFlagURL,
	}
}

// Placeholder is the entry shown before anything is chosen. It has no image,
// which is how hosts tell it apart from a resolved entry.
func Placeholder(label string) catalog.Entry {
	return catalog.Entry{Name: label}
}

// ResolveDefault picks the initial selection. An empty code yields the
// placeholder. A code missing from working yields fallback together with
// ErrLookupMiss, which callers log and otherwise ignore.
func ResolveDefault(working []catalog.Entry, code, placeholder string, fallback catalog.Entry) (catalog.Entry, error) {
	if code == "" {
		return Placeholder(placeholder), nil
	}
	if e, ok := catalog.FindByCode(working, code); ok {
		return e, nil
	}
	return fallback, ErrLookupMiss
}
