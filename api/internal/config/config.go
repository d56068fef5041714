package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Host string
	Port string

	// LLMName picks the engine behind /analyze: "gemini" or "gpt".
	LLMName string

	GeminiAPIKey  string
	GeminiModel   string
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
	LLMTimeout    time.Duration

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	LogLevel  string
	LogFormat string

	TelegramBotToken string
	WebhookURL       string
}

func defaults(v *viper.Viper) {
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "8000")
	v.SetDefault("LLM_NAME", "gemini")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	v.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	v.SetDefault("LLM_TIMEOUT", 60*time.Second)
	v.SetDefault("SERVER_READ_TIMEOUT", 15*time.Second)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 90*time.Second)
	v.SetDefault("SERVER_IDLE_TIMEOUT", 60*time.Second)
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
}

// keys without a default still need binding so AutomaticEnv sees them in Get.
var secretKeys = []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "TELEGRAM_BOT_TOKEN", "WEBHOOK_URL"}

// Load reads envFile (".env" when empty) into the process environment, then builds the config
// from environment variables. A missing env file is not an error.
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := viper.New()
	defaults(v)
	v.AutomaticEnv()
	for _, k := range secretKeys {
		if err := v.BindEnv(k); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		Host:             strings.TrimSpace(v.GetString("HOST")),
		Port:             strings.TrimSpace(v.GetString("PORT")),
		LLMName:          strings.ToLower(strings.TrimSpace(v.GetString("LLM_NAME"))),
		GeminiAPIKey:     strings.TrimSpace(v.GetString("GEMINI_API_KEY")),
		GeminiModel:      strings.TrimSpace(v.GetString("GEMINI_MODEL")),
		OpenAIAPIKey:     strings.TrimSpace(v.GetString("OPENAI_API_KEY")),
		OpenAIModel:      strings.TrimSpace(v.GetString("OPENAI_MODEL")),
		OpenAIBaseURL:    strings.TrimSpace(v.GetString("OPENAI_BASE_URL")),
		LLMTimeout:       v.GetDuration("LLM_TIMEOUT"),
		ReadTimeout:      v.GetDuration("SERVER_READ_TIMEOUT"),
		WriteTimeout:     v.GetDuration("SERVER_WRITE_TIMEOUT"),
		IdleTimeout:      v.GetDuration("SERVER_IDLE_TIMEOUT"),
		ShutdownTimeout:  v.GetDuration("SHUTDOWN_TIMEOUT"),
		LogLevel:         strings.TrimSpace(v.GetString("LOG_LEVEL")),
		LogFormat:        strings.ToLower(strings.TrimSpace(v.GetString("LOG_FORMAT"))),
		TelegramBotToken: strings.TrimSpace(v.GetString("TELEGRAM_BOT_TOKEN")),
		WebhookURL:       strings.TrimSpace(v.GetString("WEBHOOK_URL")),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that would otherwise fail later at startup.
// Missing API keys are allowed: the service then runs without an AI engine.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("config: PORT is empty")
	}
	switch c.LLMName {
	case "gemini", "gpt", "openai":
	default:
		return fmt.Errorf("config: LLM_NAME %q is not one of gemini, gpt", c.LLMName)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: LOG_FORMAT %q is not one of text, json", c.LogFormat)
	}
	for name, d := range map[string]time.Duration{
		"LLM_TIMEOUT":          c.LLMTimeout,
		"SERVER_READ_TIMEOUT":  c.ReadTimeout,
		"SERVER_WRITE_TIMEOUT": c.WriteTimeout,
		"SERVER_IDLE_TIMEOUT":  c.IdleTimeout,
		"SHUTDOWN_TIMEOUT":     c.ShutdownTimeout,
	} {
		if d <= 0 {
			return fmt.Errorf("config: %s must be positive", name)
		}
	}
	return nil
}

func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}
