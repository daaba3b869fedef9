package catalog

import "fmt"

// PolicyKind selects how a catalog is narrowed into the working set.
type PolicyKind int

const (
	// ShowAll exposes the whole catalog.
	ShowAll PolicyKind = iota
	// Provided exposes the catalog as given; the host prepared it already.
	Provided
	// ShowSelected keeps only entries whose code is listed.
	ShowSelected
	// Restrict drops entries whose code is listed.
	Restrict
)

var policyNames = map[PolicyKind]string{
	ShowAll:      "show_all",
	Provided:     "provided",
	ShowSelected: "show_selected",
	Restrict:     "restrict",
}

func (k PolicyKind) String() string {
	if s, ok := policyNames[k]; ok {
		return s
	}
	return fmt.Sprintf("PolicyKind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k PolicyKind) MarshalText() ([]byte, error) {
	s, ok := policyNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown filter policy %d", int(k))
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty value decodes
// to ShowAll.
func (k *PolicyKind) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*k = ShowAll
		return nil
	}
	kind, err := ParsePolicyKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// ParsePolicyKind parses the config/flag spelling of a policy kind.
func ParsePolicyKind(s string) (PolicyKind, error) {
	for k, name := range policyNames {
		if name == s {
			return k, nil
		}
	}
	return ShowAll, fmt.Errorf("unknown filter policy %q (want show_all, provided, show_selected or restrict)", s)
}

// Policy is a filter policy together with the codes it applies to. Codes are
// a list, not a set: repeats are significant, see Apply.
type Policy struct {
	Kind  PolicyKind `yaml:"type"`
	Codes []string   `yaml:"codes"`
}

// Apply narrows entries to the working set described by p.
//
// ShowSelected and Restrict make one pass over the catalog per listed code
// and concatenate the passes. With ShowSelected a repeated code yields its
// matches once per repeat. With Restrict every entry that does not match a
// code appears once per code it does not match, so two restricted codes yield
// most of the catalog twice. Both behaviours are kept as-is.
func Apply(entries []Entry, p Policy) []Entry {
	switch p.Kind {
	case ShowSelected:
		out := make([]Entry, 0, len(p.Codes))
		for _, code := range p.Codes {
			for _, e := range entries {
				if e.Code == code {
					out = append(out, e)
				}
			}
		}
		return out
	case Restrict:
		out := make([]Entry, 0, len(entries)*len(p.Codes))
		for _, code := range p.Codes {
			for _, e := range entries {
				if e.Code != code {
					out = append(out, e)
				}
			}
		}
		return out
	default:
		return entries
	}
}
