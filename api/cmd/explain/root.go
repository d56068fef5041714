package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"explain-this/api/internal/config"
	"explain-this/api/internal/logging"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "explain",
	Short: "ExplainThis - rewrite text for a chosen reading level",
	Long: `ExplainThis accepts a block of text and a reading level (5-year-old, teenager, adult)
and returns the text rewritten by an LLM (Gemini or OpenAI). It can run as an HTTP API
or as a Telegram bot.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to a .env file (ignored if missing)")
}

// loadRuntime reads the config and builds the process logger.
func loadRuntime() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, nil, err
	}
	log := logging.New(os.Stderr, logging.LevelFromString(cfg.LogLevel), cfg.LogFormat)
	slog.SetDefault(log)
	return cfg, log, nil
}
