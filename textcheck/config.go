package textcheck

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/leslieliu-cn/textcheck/internal/parse"
)

// Check backends.
const (
	ModeSigned = "signed" // per-segment calls to the HMAC-signed API
	ModeArray  = "array"  // one {"texts": [...]} call, positional results
	ModeLLM    = "llm"    // streamed chat completion, no positioned edits
)

// Config is the explicit configuration a Client is built from. There is no
// ambient/global instance; credentials and endpoints always travel with it.
type Config struct {
	// Signed-API credentials.
	AppID     string `toml:"app_id"`
	APIKey    string `toml:"api_key"`
	APISecret string `toml:"api_secret"`

	// Endpoint. In signed mode the last path element doubles as the
	// service id keying the parameter block unless ServiceID overrides it.
	URL       string `toml:"url"`
	ServiceID string `toml:"service_id"`

	// MaxLength bounds one segment (and one direct signed call), in runes.
	MaxLength int `toml:"max_length"`

	// Mode selects the backend: signed | array | llm.
	Mode string `toml:"mode"`

	LLM LLMConfig `toml:"llm"`

	// Categories replaces the built-in category table when non-empty,
	// so new upstream categories can surface without a rebuild.
	Categories []parse.Category `toml:"categories"`
}

// LLMConfig configures the llm backend.
type LLMConfig struct {
	APIKey  string `toml:"api_key"`
	Model   string `toml:"model"`
	BaseURL string `toml:"base_url"`
}

// DefaultConfig returns the stock endpoint and limits. Credentials are
// deliberately empty; they come from a config file or the environment.
func DefaultConfig() Config {
	return Config{
		URL:       "https://api.xf-yun.com/v1/private/s9a87e3ec",
		ServiceID: "s9a87e3ec",
		MaxLength: 2000,
		Mode:      ModeSigned,
	}
}

// LoadConfig reads a TOML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("textcheck: read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("textcheck: parse config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Mode {
	case ModeSigned, ModeArray, ModeLLM, "":
	default:
		return fmt.Errorf("textcheck: unknown mode %q", c.Mode)
	}
	if c.Mode != ModeLLM && c.URL == "" {
		return fmt.Errorf("textcheck: mode %q requires url", c.Mode)
	}
	return nil
}

// serviceID returns the configured service id, falling back to the last
// path element of the endpoint URL (the upstream convention).
func (c Config) serviceID() string {
	if c.ServiceID != "" {
		return c.ServiceID
	}
	if i := strings.LastIndex(c.URL, "/"); i >= 0 {
		return c.URL[i+1:]
	}
	return c.URL
}

// categories returns the effective category table.
func (c Config) categories() []parse.Category {
	if len(c.Categories) > 0 {
		return c.Categories
	}
	return parse.DefaultCategories()
}
