package insights

import (
	"context"
	"errors"
	"testing"

	"github.com/pkoloveas/InsightGUIDE-ICTAI25/internal/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBackend struct {
	reply string
	err   error

	systemPrompt string
	content      string
	calls        int
}

func (f *fakeBackend) Complete(_ context.Context, systemPrompt, content string) (string, error) {
	f.calls++
	f.systemPrompt = systemPrompt
	f.content = content
	return f.reply, f.err
}

func TestGenerate(t *testing.T) {
	b := &fakeBackend{reply: "## Summary\nSee [source](example.org/paper)."}
	g := NewGenerator(b, "You are a paper assistant.", "gpt-4o-mini", zap.NewNop())

	out, err := g.Generate(context.Background(), "# Title\nBody")
	require.NoError(t, err)

	assert.Equal(t, "## Summary\nSee [source](https://example.org/paper).", out)
	assert.Equal(t, "You are a paper assistant.", b.systemPrompt)
	assert.Equal(t, "# Title\nBody", b.content)
}

func TestGenerateEmptyInputUsesPlaceholder(t *testing.T) {
	for _, in := range []string{"", "   \n\t"} {
		b := &fakeBackend{reply: "ok"}
		_, err := NewGenerator(b, "p", "m", nil).Generate(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, EmptyDocumentPlaceholder, b.content)
	}
}

func TestGenerateEmptyReplyFallsBack(t *testing.T) {
	b := &fakeBackend{reply: ""}
	out, err := NewGenerator(b, "p", "m", nil).Generate(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, NoInsightsFallback, out)
}

func TestGenerateBackendError(t *testing.T) {
	b := &fakeBackend{err: errors.New("rate limited")}
	_, err := NewGenerator(b, "p", "m", nil).Generate(context.Background(), "text")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindAIInsights))
	assert.Equal(t, "Failed to generate insights: rate limited", err.Error())
}
