// Package config layers defaults, an optional YAML file, FAQBOT_*
// environment variables and command-line flags into one Config.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/faqbot/internal/fuzzy"
	"github.com/alexanderramin/faqbot/internal/llm"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. FAQBOT_LLM_MODEL.
const EnvPrefix = "FAQBOT"

const defaultOllamaModel = "llama3.2"

// Config is the resolved runtime configuration.
type Config struct {
	LLM            llm.LLMConfig
	MatchThreshold int
	TreePath       string // empty selects the embedded catalog
	Logging        Logging
	File           string // config file that was read, if any
}

// Logging selects the slog handler.
type Logging struct {
	Level  string
	Format string
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	defaults := llm.DefaultConfig()

	v.SetDefault("llm.enabled", defaults.Enabled)
	v.SetDefault("llm.provider", string(defaults.Provider))
	v.SetDefault("llm.timeout_ms", defaults.TimeoutMs)
	v.SetDefault("llm.max_retries", defaults.MaxRetries)
	v.SetDefault("llm.max_tokens", defaults.MaxTokens)
	v.SetDefault("llm.temperature", defaults.Temperature)
	v.SetDefault("llm.log_calls", defaults.LogCalls)
	v.SetDefault("match.threshold", fuzzy.DefaultThreshold)
	v.SetDefault("tree.path", "")
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// The inference API token is commonly exported under its own name.
	_ = v.BindEnv("llm.token", EnvPrefix+"_LLM_TOKEN", "HF_API_TOKEN")
	return v
}

// BindFlags binds the persistent flags registered by the CLI. Flags that
// are missing from fs are skipped.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	bindings := map[string]string{
		"logging.level":   "log-level",
		"logging.format":  "log-format",
		"match.threshold": "threshold",
		"tree.path":       "tree-file",
		"llm.enabled":     "enrich",
		"llm.provider":    "provider",
		"llm.model":       "model",
		"llm.timeout_ms":  "timeout-ms",
	}
	for key, name := range bindings {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag --%s: %w", name, err)
		}
	}
	return nil
}

// Load reads the config file and resolves all layers. cfgFile names an
// explicit file that must exist; when empty, config.yaml is searched in
// $HOME/.config/faqbot and the working directory and may be absent.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(ExpandPath(cfgFile))
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "faqbot"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		LLM: llm.LLMConfig{
			Enabled:     v.GetBool("llm.enabled"),
			LogCalls:    v.GetBool("llm.log_calls"),
			Provider:    llm.Provider(strings.ToLower(strings.TrimSpace(v.GetString("llm.provider")))),
			Endpoint:    v.GetString("llm.endpoint"),
			Model:       v.GetString("llm.model"),
			Token:       v.GetString("llm.token"),
			TimeoutMs:   v.GetInt("llm.timeout_ms"),
			MaxRetries:  v.GetInt("llm.max_retries"),
			MaxTokens:   v.GetInt("llm.max_tokens"),
			Temperature: v.GetFloat64("llm.temperature"),
		},
		MatchThreshold: v.GetInt("match.threshold"),
		TreePath:       ExpandPath(v.GetString("tree.path")),
		Logging: Logging{
			Level:  strings.ToLower(v.GetString("logging.level")),
			Format: strings.ToLower(v.GetString("logging.format")),
		},
		File: v.ConfigFileUsed(),
	}
	applyProviderDefaults(&cfg.LLM)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyProviderDefaults fills endpoint and model when they were left unset.
func applyProviderDefaults(c *llm.LLMConfig) {
	hf := llm.DefaultConfig()
	switch c.Provider {
	case llm.ProviderOllama:
		if c.Endpoint == "" {
			c.Endpoint = llm.DefaultOllamaEndpoint
		}
		if c.Model == "" {
			c.Model = defaultOllamaModel
		}
	default:
		if c.Endpoint == "" {
			c.Endpoint = hf.Endpoint
		}
		if c.Model == "" {
			c.Model = hf.Model
		}
	}
}

// Validate reports invalid settings. LLM settings are only checked when
// enrichment is enabled.
func (c *Config) Validate() error {
	if c.MatchThreshold < 0 || c.MatchThreshold > 100 {
		return fmt.Errorf("match threshold must be between 0 and 100, got %d", c.MatchThreshold)
	}
	if _, err := ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}
	if c.LLM.Enabled {
		if err := c.LLM.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	}
	return os.ExpandEnv(path)
}
