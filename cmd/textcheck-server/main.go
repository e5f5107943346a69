// Command textcheck-server provides an HTTP REST API for text checking.
//
// Usage:
//
//	textcheck-server -p 8080
//	textcheck-server -p 8080 --config /etc/textcheck/config.toml
//	textcheck-server -p 8080 --mode llm --llm-key $OPENAI_API_KEY
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/leslieliu-cn/textcheck/textcheck"
)

var (
	port       string
	configPath string
	mode       string

	llmKey   string
	llmModel string
	llmURL   string
)

var rootCmd = &cobra.Command{
	Use:           "textcheck-server",
	Short:         "HTTP REST API for the text correction pipeline",
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&port, "port", "p", "8080", "port to listen on")
	f.StringVarP(&configPath, "config", "c", "", "TOML config file")
	f.StringVar(&mode, "mode", envOr("TEXTCHECK_MODE", ""), "backend: signed | array | llm")
	f.StringVar(&llmKey, "llm-key", envOr("OPENAI_API_KEY", ""), "API key for llm mode")
	f.StringVar(&llmModel, "llm-model", envOr("LLM_MODEL", ""), "model name for llm mode")
	f.StringVar(&llmURL, "llm-url", envOr("LLM_BASE_URL", ""), "OpenAI-compatible base URL for llm mode")
}

func run(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg := textcheck.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = textcheck.LoadConfig(configPath); err != nil {
			return err
		}
	}

	cfg.AppID = envOr("TEXTCHECK_APP_ID", cfg.AppID)
	cfg.APIKey = envOr("TEXTCHECK_API_KEY", cfg.APIKey)
	cfg.APISecret = envOr("TEXTCHECK_API_SECRET", cfg.APISecret)
	cfg.URL = envOr("TEXTCHECK_URL", cfg.URL)

	if mode != "" {
		cfg.Mode = mode
	}
	if llmKey != "" {
		cfg.LLM.APIKey = llmKey
	}
	if llmModel != "" {
		cfg.LLM.Model = llmModel
	}
	if llmURL != "" {
		cfg.LLM.BaseURL = llmURL
	}

	client, err := textcheck.New(cfg)
	if err != nil {
		return err
	}
	client.SetLogger(logger)
	srv := textcheck.NewServer(client, logger)

	addr := fmt.Sprintf(":%s", port)
	logger.Info("textcheck server listening",
		"addr", addr, "mode", cfg.Mode, "max_length", cfg.MaxLength)
	logger.Info("endpoints",
		"check", "POST /v1/check-text", "health", "GET /health", "docs", "GET /")
	return http.ListenAndServe(addr, srv.Routes())
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "textcheck-server:", err)
		os.Exit(1)
	}
}
