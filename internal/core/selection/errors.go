package selection

import "errors"

// These conditions are recovered from inside the package and only logged.
// They are exported so logs and tests can name them.
var (
	// ErrLookupMiss means the configured default code matched nothing in the
	// working set; the fallback entry is used instead.
	ErrLookupMiss = errors.New("default code not found in working set")

	// ErrStaleIndex means a scroll target no longer fits the rendered rows,
	// usually because the query changed while a drag was in progress.
	ErrStaleIndex = errors.New("scroll target is stale")

	// ErrEmptyName means an entry without a name reached the row plan; it is
	// listed without a section header.
	ErrEmptyName = errors.New("entry has an empty name")
)
