package config

import (
	"strings"

	"github.com/pkoloveas/InsightGUIDE-ICTAI25/internal/pkg/apperr"
	"go.uber.org/zap"
)

const (
	// DefaultEnvFile is loaded when --env is not provided.
	DefaultEnvFile = ".env"

	defaultFrontendURL      = "http://localhost:9002"
	defaultSystemPromptFile = "system_prompts.yaml"
	defaultSystemPromptKey  = "paper-assistant-prompt"
	defaultMaxFileSize      = 50 * 1024 * 1024
	defaultUploadDir        = "uploads"
	defaultOutputDir        = "outputs"
	defaultPort             = 8000
	defaultHost             = "0.0.0.0"
	defaultLogLevel         = "INFO"
	defaultLLMProvider      = ProviderOpenAI
	defaultMistralAPIHost   = "https://api.mistral.ai/v1/"
	defaultArchiveRegion    = "us-east-1"
	defaultArchivePrefix    = "extracted/"
)

// LLM backends selectable with LLM_PROVIDER.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Settings is the validated process configuration. It is read-only after Load.
type Settings struct {
	MistralAPIKey   string `env:"MISTRAL_API_KEY" validate:"required"`
	MistralAPIHost  string `env:"MISTRAL_API_HOST" validate:"required,httpurl"`
	LLMProvider     string `env:"LLM_PROVIDER" validate:"oneof=openai anthropic"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY" validate:"required_if=LLMProvider openai"`
	OpenAIAPIHost   string `env:"OPENAI_API_HOST" validate:"omitempty,httpurl"`
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY" validate:"required_if=LLMProvider anthropic"`
	Model           string `env:"MODEL" validate:"required"`

	FrontendURL      string `env:"FRONTEND_URL" validate:"required,httpurl"`
	SystemPromptFile string `env:"SYSTEM_PROMPT_FILE" validate:"required"`
	SystemPromptKey  string `env:"SYSTEM_PROMPT_KEY" validate:"required"`
	SystemPrompt     string `validate:"required"`

	MaxFileSize          int64  `env:"MAX_FILE_SIZE" validate:"gt=0"`
	SaveExtractedContent bool   `env:"SAVE_EXTRACTED_CONTENT"`
	UploadDir            string `env:"UPLOAD_DIR" validate:"required"`
	OutputDir            string `env:"OUTPUT_DIR" validate:"required"`

	Host     string `env:"HOST" validate:"required"`
	Port     int    `env:"PORT" validate:"min=1,max=65535"`
	LogLevel string `env:"LOG_LEVEL" validate:"oneof=DEBUG INFO WARNING ERROR CRITICAL"`

	Archive ArchiveSettings
}

// ArchiveSettings configures the optional S3 mirror of persisted markdown.
type ArchiveSettings struct {
	Bucket          string `env:"ARCHIVE_S3_BUCKET"`
	Region          string `env:"ARCHIVE_S3_REGION" validate:"required_with=Bucket"`
	Endpoint        string `env:"ARCHIVE_S3_ENDPOINT" validate:"omitempty,httpurl"`
	AccessKeyID     string `env:"ARCHIVE_S3_ACCESS_KEY_ID" validate:"required_with=Bucket"`
	SecretAccessKey string `env:"ARCHIVE_S3_SECRET_ACCESS_KEY" validate:"required_with=Bucket"`
	Prefix          string `env:"ARCHIVE_S3_PREFIX"`
}

// Enabled reports whether a bucket was configured.
func (a ArchiveSettings) Enabled() bool { return a.Bucket != "" }

// Addr returns the HOST:PORT listen address.
func (s *Settings) Addr() string {
	return joinHostPort(s.Host, s.Port)
}

// Load reads the environment through lookup, resolves the system prompt and
// validates the result. Any failure is a Configuration error.
func Load(lookup LookupFunc, log *zap.Logger) (*Settings, error) {
	if log == nil {
		log = zap.NewNop()
	}
	env := envReader{lookup: lookup, log: log}

	s := &Settings{
		MistralAPIKey:        env.str("MISTRAL_API_KEY", ""),
		MistralAPIHost:       env.str("MISTRAL_API_HOST", defaultMistralAPIHost),
		LLMProvider:          strings.ToLower(strings.TrimSpace(env.str("LLM_PROVIDER", defaultLLMProvider))),
		OpenAIAPIKey:         env.str("OPENAI_API_KEY", ""),
		OpenAIAPIHost:        env.str("OPENAI_API_HOST", ""),
		AnthropicAPIKey:      env.str("ANTHROPIC_API_KEY", ""),
		Model:                env.str("MODEL", ""),
		FrontendURL:          env.str("FRONTEND_URL", defaultFrontendURL),
		SystemPromptFile:     env.str("SYSTEM_PROMPT_FILE", defaultSystemPromptFile),
		SystemPromptKey:      env.str("SYSTEM_PROMPT_KEY", defaultSystemPromptKey),
		MaxFileSize:          env.int64("MAX_FILE_SIZE", defaultMaxFileSize),
		SaveExtractedContent: env.boolean("SAVE_EXTRACTED_CONTENT"),
		UploadDir:            env.str("UPLOAD_DIR", defaultUploadDir),
		OutputDir:            env.str("OUTPUT_DIR", defaultOutputDir),
		Host:                 env.str("HOST", defaultHost),
		Port:                 int(env.int64("PORT", defaultPort)),
		LogLevel:             strings.ToUpper(strings.TrimSpace(env.str("LOG_LEVEL", defaultLogLevel))),
		Archive: ArchiveSettings{
			Bucket:          env.str("ARCHIVE_S3_BUCKET", ""),
			Region:          env.str("ARCHIVE_S3_REGION", defaultArchiveRegion),
			Endpoint:        env.str("ARCHIVE_S3_ENDPOINT", ""),
			AccessKeyID:     env.str("ARCHIVE_S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: env.str("ARCHIVE_S3_SECRET_ACCESS_KEY", ""),
			Prefix:          env.str("ARCHIVE_S3_PREFIX", defaultArchivePrefix),
		},
	}

	prompt, err := LoadSystemPrompt(s.SystemPromptFile, s.SystemPromptKey)
	if err != nil {
		log.Error("failed to load system prompt", zap.Error(err))
		return nil, apperr.WrapConfiguration(err, "Failed to load system prompt: %v", err)
	}
	log.Info("loaded system prompt",
		zap.String("key", s.SystemPromptKey),
		zap.String("file", s.SystemPromptFile),
	)
	s.SystemPrompt = prompt

	if err := validateSettings(s); err != nil {
		log.Error("configuration validation failed", zap.Error(err))
		return nil, apperr.WrapConfiguration(err, "Configuration validation failed: %v", err)
	}

	log.Info("configuration loaded and validated")
	return s, nil
}
