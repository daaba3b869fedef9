package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	india = Entry{Name: "India", Code: "IN", DialCode: "+91"}
	uae   = Entry{Name: "UAE", Code: "AE", DialCode: "+971"}
	usa   = Entry{Name: "USA", Code: "US", DialCode: "+1"}
)

func sample() []Entry {
	return []Entry{india, uae, usa}
}

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestApply_IdentityPolicies(t *testing.T) {
	for _, kind := range []PolicyKind{ShowAll, Provided} {
		t.Run(kind.String(), func(t *testing.T) {
			c := sample()
			got := Apply(c, Policy{Kind: kind, Codes: []string{"IN"}})
			assert.Equal(t, c, got)
		})
	}
}

func TestApply_ShowSelected(t *testing.T) {
	tests := []struct {
		name  string
		codes []string
		want  []string
	}{
		{name: "scenario codes", codes: []string{"IN", "AE"}, want: []string{"India", "UAE"}},
		{name: "codes order drives output order", codes: []string{"US", "IN"}, want: []string{"USA", "India"}},
		{name: "repeated code duplicates", codes: []string{"AE", "AE"}, want: []string{"UAE", "UAE"}},
		{name: "unknown code", codes: []string{"FR"}, want: []string{}},
		{name: "no codes", codes: nil, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(sample(), Policy{Kind: ShowSelected, Codes: tt.codes})
			assert.Equal(t, tt.want, names(got))
			for _, e := range got {
				assert.Contains(t, tt.codes, e.Code)
			}
		})
	}
}

func TestApply_Restrict(t *testing.T) {
	t.Run("single code drops it", func(t *testing.T) {
		got := Apply(sample(), Policy{Kind: Restrict, Codes: []string{"US"}})
		assert.Equal(t, []string{"India", "UAE"}, names(got))
	})

	t.Run("each survivor repeats once per code it does not match", func(t *testing.T) {
		codes := []string{"US", "IN"}
		got := Apply(sample(), Policy{Kind: Restrict, Codes: codes})
		assert.Equal(t, []string{"India", "UAE", "UAE", "USA"}, names(got))

		counts := map[string]int{}
		for _, e := range got {
			counts[e.Code]++
		}
		for _, e := range sample() {
			want := 0
			for _, c := range codes {
				if e.Code != c {
					want++
				}
			}
			assert.Equal(t, want, counts[e.Code], e.Code)
		}
	})

	t.Run("no codes", func(t *testing.T) {
		got := Apply(sample(), Policy{Kind: Restrict})
		assert.Empty(t, got)
	})
}

func TestApply_EmptyCatalog(t *testing.T) {
	for _, kind := range []PolicyKind{ShowAll, Provided, ShowSelected, Restrict} {
		got := Apply(nil, Policy{Kind: kind, Codes: []string{"US"}})
		assert.Empty(t, got, kind.String())
	}
}

func TestPolicyKind_Text(t *testing.T) {
	for kind, name := range policyNames {
		text, err := kind.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, name, string(text))

		var decoded PolicyKind
		require.NoError(t, decoded.UnmarshalText(text))
		assert.Equal(t, kind, decoded)
	}

	var k PolicyKind = Restrict
	require.NoError(t, k.UnmarshalText(nil))
	assert.Equal(t, ShowAll, k)

	_, err := ParsePolicyKind("everything")
	assert.ErrorContains(t, err, "unknown filter policy")
}

func TestSearch(t *testing.T) {
	working := []Entry{
		{Name: "Albania", Code: "AL", DialCode: "+355"},
		{Name: "Algeria", Code: "DZ", DialCode: "+213"},
		{Name: "Brazil", Code: "BR", DialCode: "+55"},
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty query", query: "", want: []string{"Albania", "Algeria", "Brazil"}},
		{name: "whitespace query", query: "   ", want: []string{"Albania", "Algeria", "Brazil"}},
		{name: "name prefix", query: "br", want: []string{"Brazil"}},
		{name: "mixed case and padding", query: "  ALG ", want: []string{"Algeria"}},
		{name: "code", query: "dz", want: []string{"Algeria"}},
		{name: "dial code", query: "+55", want: []string{"Brazil"}},
		{name: "dial digits hit several", query: "5", want: []string{"Albania", "Brazil"}},
		{name: "no match", query: "xyz", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(working, tt.query)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestSearch_SubsequenceAndContainment(t *testing.T) {
	entries, err := Embedded().Load(t.Context())
	require.NoError(t, err)

	for _, q := range []string{"a", "an", "+4", "us", "IS", "ri", "zz"} {
		got := Search(entries, q)
		norm := NormalizeQuery(q)

		// every hit contains the query somewhere
		for _, e := range got {
			assert.True(t, matches(e, norm), "%q should match %q", e.Name, q)
		}

		// hits appear in working-set order
		j := 0
		for _, e := range got {
			for j < len(entries) && entries[j] != e {
				j++
			}
			require.Less(t, j, len(entries), "result for %q is not a subsequence", q)
			j++
		}
	}
}

func TestEntry_Header(t *testing.T) {
	h, ok := Entry{Name: "albania"}.Header()
	assert.True(t, ok)
	assert.Equal(t, "A", h)

	h, ok = Entry{Name: "Åland Islands"}.Header()
	assert.True(t, ok)
	assert.Equal(t, "Å", h)

	_, ok = Entry{}.Header()
	assert.False(t, ok)
}

func TestSort_CaseInsensitive(t *testing.T) {
	entries := []Entry{{Name: "brazil"}, {Name: "Albania"}, {Name: "algeria"}, {Name: "Bahamas"}}
	Sort(entries)
	assert.Equal(t, []string{"Albania", "algeria", "Bahamas", "brazil"}, names(entries))
}

func TestFindByCode(t *testing.T) {
	e, ok := FindByCode(sample(), "AE")
	assert.True(t, ok)
	assert.Equal(t, uae, e)

	_, ok = FindByCode(sample(), "FR")
	assert.False(t, ok)
}
