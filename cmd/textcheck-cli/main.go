// Command textcheck-cli pipes stdin (or a file) through the correction
// pipeline and prints the pretty-printed JSON result.
//
// Usage:
//
//	echo "今天天气很好" | textcheck-cli
//	textcheck-cli -f text.txt --report
//	textcheck-cli --mode llm --llm-key $OPENAI_API_KEY
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/leslieliu-cn/textcheck/internal/util"
	"github.com/leslieliu-cn/textcheck/textcheck"
)

var (
	file       string
	configPath string
	mode       string
	maxLength  int
	timeout    time.Duration
	report     bool
	ignore     []int

	llmKey   string
	llmModel string
	llmURL   string
)

var rootCmd = &cobra.Command{
	Use:           "textcheck-cli",
	Short:         "Check text for sensitive or incorrect content",
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&file, "file", "f", "", "file to read instead of stdin")
	f.StringVarP(&configPath, "config", "c", "", "TOML config file")
	f.StringVar(&mode, "mode", "", "backend: signed | array | llm")
	f.IntVar(&maxLength, "max-length", 0, "segment length bound in characters")
	f.DurationVarP(&timeout, "timeout", "t", 30*time.Second, "overall timeout")
	f.BoolVar(&report, "report", false, "print a human-readable report instead of JSON")
	f.IntSliceVar(&ignore, "ignore", nil, "correction indexes to drop from the result")
	f.StringVar(&llmKey, "llm-key", "", "API key for llm mode")
	f.StringVar(&llmModel, "llm-model", "", "model name for llm mode")
	f.StringVar(&llmURL, "llm-url", "", "OpenAI-compatible base URL for llm mode")
}

func run(cmd *cobra.Command, args []string) error {
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
	cfg.LLM.APIKey = envOr("OPENAI_API_KEY", cfg.LLM.APIKey)

	if mode != "" {
		cfg.Mode = mode
	}
	if maxLength > 0 {
		cfg.MaxLength = maxLength
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

	var r io.Reader = os.Stdin
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	res, err := client.CheckText(ctx, string(data))
	if err != nil {
		return err
	}
	if len(ignore) > 0 {
		res = textcheck.Ignore(res, ignore...)
	}

	if report {
		fmt.Println(textcheck.FormatResult(res))
		return nil
	}
	out, err := util.MarshalNoEscape(res, true)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "textcheck-cli:", err)
		os.Exit(1)
	}
}
