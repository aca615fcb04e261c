package core_test

import (
	"testing"

	"github.com/aretw0/zkconv/pkg/core"
	"github.com/stretchr/testify/assert"
)

func resolverOf(stems map[string]string) core.Resolver {
	return core.ResolverFunc(func(id string) (string, bool) {
		stem, ok := stems[id]
		return stem, ok
	})
}

func TestStripBacklinks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plural", "a\nBacklinks: [[202504211559]]\nb\n", "a\nb\n"},
		{"singular", "a\nBacklink: [[1]]\nb", "a\nb"},
		{"surrounding whitespace", "  Backlinks: [[202504211559]]  \r\nb", "b"},
		{"no space after label", "Backlinks:[[202504211559]]\n", ""},
		{"last line without newline", "a\nBacklinks: [[202504211559]]", "a\n"},
		{"trailing text kept", "Backlinks: [[202504211559]] extra text\n", "Backlinks: [[202504211559]] extra text\n"},
		{"lower case kept", "backlinks: [[202504211559]]\n", "backlinks: [[202504211559]]\n"},
		{"two links kept", "Backlinks: [[1]] [[2]]\n", "Backlinks: [[1]] [[2]]\n"},
		{"non numeric kept", "Backlinks: [[Some Note]]\n", "Backlinks: [[Some Note]]\n"},
		{"no-break space after label", "a\nBacklinks:\u00a0[[202504211559]]\nb", "a\nb"},
		{"vertical tab after label", "Backlinks:\v[[202504211559]]\n", ""},
		{"unicode digits", "Backlinks: [[\u0662\u0660]]\n", ""},
		{"no-break space around line", "\u00a0Backlinks: [[1]]\u00a0\n", ""},
		{"inline mention kept", "See Backlinks: [[202504211559]]\n", "See Backlinks: [[202504211559]]\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, core.StripBacklinks(tc.in))
		})
	}
}

func TestResolveLinks(t *testing.T) {
	r := resolverOf(map[string]string{"202504211559": "202504211559 My Note"})

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"resolved", "see [[202504211559]].", "see [[202504211559 My Note|202504211559]]."},
		{"every occurrence", "[[202504211559]] and [[202504211559]]", "[[202504211559 My Note|202504211559]] and [[202504211559 My Note|202504211559]]"},
		{"unresolved", "see [[202401010000]]", "see [[202401010000]]"},
		{"eleven digits", "[[20250421155]]", "[[20250421155]]"},
		{"thirteen digits", "[[2025042115590]]", "[[2025042115590]]"},
		{"already aliased", "[[202504211559 My Note|202504211559]]", "[[202504211559 My Note|202504211559]]"},
		{"spaces inside", "[[ 202504211559 ]]", "[[ 202504211559 ]]"},
		{"plain id", "202504211559", "202504211559"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, core.ResolveLinks(tc.in, r))
		})
	}
}

func TestResolveLinks_NilResolver(t *testing.T) {
	assert.Equal(t, "[[202504211559]]", core.ResolveLinks("[[202504211559]]", nil))
}

func TestRewriteLinks_StripsBeforeResolving(t *testing.T) {
	r := resolverOf(map[string]string{"202504211559": "202504211559 My Note"})

	got := core.RewriteLinks("Body [[202504211559]]\nBacklinks: [[202504211559]]\n", r)

	assert.Equal(t, "Body [[202504211559 My Note|202504211559]]\n", got)
}
