// Package catalog holds the entries a picker selects from, the sources they
// are loaded from, and the filter and search passes that narrow them.
package catalog

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Entry is one selectable catalog item.
type Entry struct {
	Name     string `json:"name" yaml:"name"`
	DialCode string `json:"dialCode" yaml:"dialCode"`
	Code     string `json:"code" yaml:"code"`
	Image    string `json:"image,omitempty" yaml:"image,omitempty"`
}

// HasImage reports whether the entry carries an image reference. Entries
// resolved from a real catalog have one; placeholder entries do not.
func (e Entry) HasImage() bool {
	return e.Image != ""
}

// Header returns the section header for the entry: its first rune, upper
// cased. ok is false when the name is empty.
func (e Entry) Header() (header string, ok bool) {
	r, size := utf8.DecodeRuneInString(e.Name)
	if size == 0 {
		return "", false
	}
	return string(unicode.ToUpper(r)), true
}

// Label is the one-line display form used by the CLI listings.
func (e Entry) Label() string {
	var b strings.Builder
	b.WriteString(e.Name)
	if e.DialCode != "" {
		b.WriteString(" (")
		b.WriteString(e.DialCode)
		b.WriteString(")")
	}
	return b.String()
}

// Sort orders entries by name, case-insensitively. The sort is stable so
// entries that fold to the same name keep their source order.
func Sort(entries []Entry) {
	fold := cases.Fold()
	keys := make(map[string]string, len(entries))
	key := func(name string) string {
		k, ok := keys[name]
		if !ok {
			k = fold.String(name)
			keys[name] = k
		}
		return k
	}

	slices.SortStableFunc(entries, func(a, b Entry) int {
		return strings.Compare(key(a.Name), key(b.Name))
	})
}

// FindByCode returns the first entry whose code equals code.
func FindByCode(entries []Entry, code string) (Entry, bool) {
	for _, e := range entries {
		if e.Code == code {
			return e, true
		}
	}
	return Entry{}, false
}
