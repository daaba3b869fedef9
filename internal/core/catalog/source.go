package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

//go:embed countries.json
var embeddedCountries []byte

// Source supplies raw catalog entries.
type Source interface {
	Name() string
	Load(ctx context.Context) ([]Entry, error)
}

// Compile-time checks.
var (
	_ Source = embeddedSource{}
	_ Source = fileSource{}
	_ Source = globSource{}
	_ Source = staticSource{}
)

// Embedded returns the bundled country catalog.
func Embedded() Source { return embeddedSource{} }

type embeddedSource struct{}

func (embeddedSource) Name() string { return "embedded:countries.json" }

func (embeddedSource) Load(_ context.Context) ([]Entry, error) {
	return Parse(embeddedCountries)
}

// File returns a source reading a JSON array of entries from path.
func File(path string) Source { return fileSource{path: path} }

type fileSource struct {
	path string
}

func (s fileSource) Name() string { return "file:" + s.path }

func (s fileSource) Load(ctx context.Context) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(ExpandHome(s.path))
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Glob returns a source reading every file matched by the doublestar
// patterns, in lexical order per pattern. A pattern matching nothing is not
// an error.
func Glob(patterns ...string) Source { return globSource{patterns: patterns} }

type globSource struct {
	patterns []string
}

func (s globSource) Name() string { return "glob:" + strings.Join(s.patterns, ",") }

func (s globSource) Load(ctx context.Context) ([]Entry, error) {
	var out []Entry
	for _, pattern := range s.patterns {
		base, rel := doublestar.SplitPattern(filepath.ToSlash(ExpandHome(pattern)))
		matches, err := doublestar.Glob(os.DirFS(base), rel, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		for _, m := range matches {
			entries, err := fileSource{path: filepath.Join(base, m)}.Load(ctx)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", m, err)
			}
			out = append(out, entries...)
		}
	}
	return out, nil
}

// Static returns a source serving a fixed set of entries, for hosts that
// prepared the catalog themselves.
func Static(entries []Entry) Source { return staticSource{entries: entries} }

type staticSource struct {
	entries []Entry
}

func (staticSource) Name() string { return "static" }

func (s staticSource) Load(_ context.Context) ([]Entry, error) {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// Parse decodes a JSON array of entries.
func Parse(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return entries, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
