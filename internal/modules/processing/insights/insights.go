package insights

import (
	"context"
	"strings"

	"github.com/pkoloveas/InsightGUIDE-ICTAI25/internal/pkg/apperr"
	"go.uber.org/zap"
)

const (
	// EmptyDocumentPlaceholder is sent in place of blank extracted text.
	EmptyDocumentPlaceholder = "The document appears to be empty or no text could be extracted."
	// NoInsightsFallback is returned when the model answers with no content.
	NoInsightsFallback = "Could not generate insights for the provided document."

	failurePrefix = "Failed to generate insights"
)

// Generator produces insights markdown for extracted document text.
type Generator struct {
	backend      Backend
	systemPrompt string
	model        string
	log          *zap.Logger
}

func NewGenerator(backend Backend, systemPrompt, model string, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{backend: backend, systemPrompt: systemPrompt, model: model, log: log}
}

// Generate never sends an empty user message and never returns an empty
// string on success.
func (g *Generator) Generate(ctx context.Context, extracted string) (string, error) {
	if strings.TrimSpace(extracted) == "" {
		g.log.Warn("empty content provided for insights generation")
		extracted = EmptyDocumentPlaceholder
	}

	g.log.Info("generating insights", zap.String("model", g.model))

	reply, err := g.backend.Complete(ctx, g.systemPrompt, extracted)
	if err != nil {
		g.log.Error("failed to generate insights", zap.Error(err))
		return "", apperr.WrapInsights(err, failurePrefix)
	}
	if reply == "" {
		g.log.Warn("AI model returned empty insights")
		return NoInsightsFallback, nil
	}

	g.log.Info("generated insights")
	return FixMarkdownURLs(reply), nil
}
