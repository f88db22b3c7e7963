package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv    = "NEWS_PUBLISHER_CONFIG"
	wordpressURLEnv  = "WP_URL"
	wordpressUserEnv = "WP_USER"
	wordpressPassEnv = "WP_APP_PASSWORD"
	serpAPIKeyEnv    = "SERPAPI_API_KEY"
	pexelsAPIKeyEnv  = "PEXELS_API_KEY"
	openAIKeyEnv     = "OPENAI_API_KEY"
	openAIModelEnv   = "OPENAI_MODEL"
)

// Config holds high-level settings required across the application.
type Config struct {
	Topic     TopicConfig     `yaml:"topic"`
	WordPress WordPressConfig `yaml:"wordpress"`
	News      NewsConfig      `yaml:"news"`
	Images    ImageConfig     `yaml:"images"`
	OpenAI    OpenAIConfig    `yaml:"openai"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// TopicConfig pins the single subject the pipeline publishes about.
type TopicConfig struct {
	Query            string   `yaml:"query"`
	DefaultTitle     string   `yaml:"defaultTitle"`
	FallbackKeywords []string `yaml:"fallbackKeywords"`
	Category         string   `yaml:"category"`
}

// WordPressConfig describes the backend REST endpoint and basic credentials.
type WordPressConfig struct {
	BaseURL     string `yaml:"baseUrl"`
	Username    string `yaml:"username"`
	AppPassword string `yaml:"appPassword"`
}

// NewsConfig defines how the news search provider is queried.
type NewsConfig struct {
	Endpoint string `yaml:"endpoint"`
	APIKey   string `yaml:"apiKey"`
	Locale   string `yaml:"locale"`
	Country  string `yaml:"country"`
	Limit    int    `yaml:"limit"`
	Keep     int    `yaml:"keep"`
}

// ImageConfig defines how the stock-photo provider is queried.
type ImageConfig struct {
	Endpoint string `yaml:"endpoint"`
	APIKey   string `yaml:"apiKey"`
	PerPage  int    `yaml:"perPage"`
	MaxBody  int    `yaml:"maxBody"`
}

// OpenAIConfig defines how to contact the chat-completions API.
type OpenAIConfig struct {
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
	APIKey   string `yaml:"apiKey"`
}

// LoggingConfig carries the console log level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

// Validate checks that every credential the run needs is present.
func (c Config) Validate() error {
	if c.WordPress.BaseURL == "" {
		return fmt.Errorf("wordpress base URL is required")
	}
	if c.WordPress.Username == "" || c.WordPress.AppPassword == "" {
		return fmt.Errorf("wordpress credentials are required")
	}
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("openai api key is required")
	}
	if c.Images.APIKey == "" {
		return fmt.Errorf("pexels api key is required")
	}
	if c.News.APIKey == "" {
		return fmt.Errorf("serpapi api key is required")
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(wordpressURLEnv); v != "" {
		c.WordPress.BaseURL = v
	}
	if v := os.Getenv(wordpressUserEnv); v != "" {
		c.WordPress.Username = v
	}
	if v := os.Getenv(wordpressPassEnv); v != "" {
		c.WordPress.AppPassword = v
	}
	if v := os.Getenv(serpAPIKeyEnv); v != "" {
		c.News.APIKey = v
	}
	if v := os.Getenv(pexelsAPIKeyEnv); v != "" {
		c.Images.APIKey = v
	}
	if v := os.Getenv(openAIKeyEnv); v != "" {
		c.OpenAI.APIKey = v
	}
	if v := os.Getenv(openAIModelEnv); v != "" {
		c.OpenAI.Model = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Topic.Query != "" {
		base.Topic.Query = override.Topic.Query
	}
	if override.Topic.DefaultTitle != "" {
		base.Topic.DefaultTitle = override.Topic.DefaultTitle
	}
	if len(override.Topic.FallbackKeywords) > 0 {
		base.Topic.FallbackKeywords = override.Topic.FallbackKeywords
	}
	if override.Topic.Category != "" {
		base.Topic.Category = override.Topic.Category
	}

	if override.WordPress.BaseURL != "" {
		base.WordPress.BaseURL = override.WordPress.BaseURL
	}
	if override.WordPress.Username != "" {
		base.WordPress.Username = override.WordPress.Username
	}
	if override.WordPress.AppPassword != "" {
		base.WordPress.AppPassword = override.WordPress.AppPassword
	}

	if override.News.Endpoint != "" {
		base.News.Endpoint = override.News.Endpoint
	}
	if override.News.APIKey != "" {
		base.News.APIKey = override.News.APIKey
	}
	if override.News.Locale != "" {
		base.News.Locale = override.News.Locale
	}
	if override.News.Country != "" {
		base.News.Country = override.News.Country
	}
	if override.News.Limit > 0 {
		base.News.Limit = override.News.Limit
	}
	if override.News.Keep > 0 {
		base.News.Keep = override.News.Keep
	}

	if override.Images.Endpoint != "" {
		base.Images.Endpoint = override.Images.Endpoint
	}
	if override.Images.APIKey != "" {
		base.Images.APIKey = override.Images.APIKey
	}
	if override.Images.PerPage > 0 {
		base.Images.PerPage = override.Images.PerPage
	}
	if override.Images.MaxBody > 0 {
		base.Images.MaxBody = override.Images.MaxBody
	}

	if override.OpenAI.Endpoint != "" {
		base.OpenAI.Endpoint = override.OpenAI.Endpoint
	}
	if override.OpenAI.Model != "" {
		base.OpenAI.Model = override.OpenAI.Model
	}
	if override.OpenAI.APIKey != "" {
		base.OpenAI.APIKey = override.OpenAI.APIKey
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Topic: TopicConfig{
			Query:            "Bitcoin",
			DefaultTitle:     "Daily Bitcoin news digest",
			FallbackKeywords: []string{"Bitcoin", "Cryptocurrency"},
			Category:         "Bitcoin",
		},
		News: NewsConfig{
			Endpoint: "https://serpapi.com/search",
			Locale:   "en",
			Country:  "us",
			Limit:    5,
			Keep:     3,
		},
		Images: ImageConfig{
			Endpoint: "https://api.pexels.com/v1/search",
			PerPage:  4,
			MaxBody:  3,
		},
		OpenAI: OpenAIConfig{
			Endpoint: "https://api.openai.com/v1/chat/completions",
			Model:    "gpt-4.1-mini",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}
