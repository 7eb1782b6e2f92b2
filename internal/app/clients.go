package app

import (
	"sync"

	"github.com/pkoloveas/InsightGUIDE-ICTAI25/internal/config"
	"github.com/pkoloveas/InsightGUIDE-ICTAI25/internal/modules/processing/insights"
	"github.com/pkoloveas/InsightGUIDE-ICTAI25/internal/modules/processing/ocr"
	"go.uber.org/zap"
)

// Clients builds each provider client on first access and reuses it for the
// life of the process.
type Clients struct {
	cfg *config.Settings
	log *zap.Logger

	ocrOnce sync.Once
	ocr     *ocr.MistralClient

	llmOnce sync.Once
	llm     insights.Backend
}

func NewClients(cfg *config.Settings, log *zap.Logger) *Clients {
	return &Clients{cfg: cfg, log: log}
}

// OCR returns the Mistral OCR client.
func (c *Clients) OCR() *ocr.MistralClient {
	c.ocrOnce.Do(func() {
		c.ocr = ocr.NewMistralClient(c.cfg.MistralAPIKey, c.cfg.MistralAPIHost)
		c.log.Info("Mistral client initialized")
	})
	return c.ocr
}

// LLM returns the backend selected by LLM_PROVIDER.
func (c *Clients) LLM() insights.Backend {
	c.llmOnce.Do(func() {
		switch c.cfg.LLMProvider {
		case config.ProviderAnthropic:
			c.llm = insights.NewAnthropicBackend(c.cfg.AnthropicAPIKey, c.cfg.Model)
			c.log.Info("Anthropic client initialized")
		default:
			if c.cfg.OpenAIAPIHost != "" {
				c.log.Info("Using custom OpenAI API host", zap.String("host", c.cfg.OpenAIAPIHost))
			} else {
				c.log.Info("Using default OpenAI API host")
			}
			c.llm = insights.NewOpenAIBackend(c.cfg.OpenAIAPIKey, c.cfg.OpenAIAPIHost, c.cfg.Model)
			c.log.Info("OpenAI client initialized")
		}
	})
	return c.llm
}
