package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func linkDestinations(t *testing.T, md string) []string {
	t.Helper()
	doc := goldmark.New().Parser().Parse(text.NewReader([]byte(md)))

	var dests []string
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if link, ok := n.(*ast.Link); ok && entering {
			dests = append(dests, string(link.Destination))
		}
		return ast.WalkContinue, nil
	})
	require.NoError(t, err)
	return dests
}

func TestFixMarkdownURLs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare domain", "[site](example.com)", "[site](https://example.com)"},
		{"bare domain with path", "[paper](arxiv.org/abs/2401.00001)", "[paper](https://arxiv.org/abs/2401.00001)"},
		{"subdomain", "[docs](docs.python.org/3/)", "[docs](https://docs.python.org/3/)"},
		{"http kept", "[a](http://example.com)", "[a](http://example.com)"},
		{"https kept", "[a](https://example.com)", "[a](https://example.com)"},
		{"ftp kept", "[a](ftp://files.example.com)", "[a](ftp://files.example.com)"},
		{"mailto kept", "[a](mailto:me@example.com)", "[a](mailto:me@example.com)"},
		{"anchor kept", "[a](#section.two)", "[a](#section.two)"},
		{"root relative kept", "[a](/docs/page.html)", "[a](/docs/page.html)"},
		{"not a domain", "[a](notes)", "[a](notes)"},
		{"short tld", "[a](file.x)", "[a](file.x)"},
		{"leading dash", "[a](-bad.com)", "[a](-bad.com)"},
		{"empty", "", ""},
		{"no links", "plain text only", "plain text only"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FixMarkdownURLs(tt.in))
		})
	}
}

func TestFixMarkdownURLsIdempotent(t *testing.T) {
	inputs := []string{
		"See [the paper](arxiv.org/abs/1) and [code](github.com/org/repo).",
		"[x](https://a.io) [y](b.io) [z](#c) [w](/d) [v](mailto:e@f.io)",
		"Nothing to fix here.",
	}
	for _, in := range inputs {
		once := FixMarkdownURLs(in)
		assert.Equal(t, once, FixMarkdownURLs(once), in)
	}
}

func TestFixMarkdownURLsProducesAbsoluteLinks(t *testing.T) {
	md := "Read [the paper](arxiv.org/abs/1) and [section](#results), then [code](github.com/org/repo)."
	dests := linkDestinations(t, FixMarkdownURLs(md))

	assert.Equal(t, []string{
		"https://arxiv.org/abs/1",
		"#results",
		"https://github.com/org/repo",
	}, dests)
}
