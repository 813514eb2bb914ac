package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/ini.v1"
)

// PlaceholderAPIKey is the value shipped in the sample configs. A key
// left at this value means the user never configured one.
const PlaceholderAPIKey = "your-api-key-here"

const DefaultBaseURL = "https://api.openai.com/v1"

var ErrPlaceholderAPIKey = errors.New("api key is missing or left at its placeholder value")

// CatConfig holds the settings.toml values for the cat command.
type CatConfig struct {
	APIKey    string `toml:"api_key"`
	APIKeyEnv string `toml:"api_key_env"`
	BaseURL   string `toml:"base_url"`
	Model     string `toml:"model"`
	MaxTokens int64  `toml:"max_tokens"`
	Timeout   int64  `toml:"timeout"` // seconds
}

func LoadCat(path string) (*CatConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg CatConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *CatConfig) Validate() error {
	key, err := resolveAPIKey(c.APIKey, c.APIKeyEnv)
	if err != nil {
		return err
	}
	c.APIKey = key
	if c.BaseURL == "" {
		return missingKey("base_url")
	}
	if c.Model == "" {
		return missingKey("model")
	}
	if c.MaxTokens <= 0 {
		return missingKey("max_tokens")
	}
	if c.Timeout <= 0 {
		return missingKey("timeout")
	}
	return nil
}

// MatrixConfig holds the config.ini values for the matrix command.
type MatrixConfig struct {
	OpenAI  OpenAISection
	Request RequestSection
}

type OpenAISection struct {
	APIKey    string
	APIKeyEnv string
	BaseURL   string
	Model     string
}

type RequestSection struct {
	PromptTemplate string
	ResponseFormat string
	MaxTokens      int64
	StopSequence   string
}

func LoadMatrix(path string) (*MatrixConfig, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, err
	}

	var cfg MatrixConfig

	o := file.Section("openai")
	cfg.OpenAI = OpenAISection{
		APIKey:    o.Key("api_key").String(),
		APIKeyEnv: o.Key("api_key_env").String(),
		BaseURL:   o.Key("base_url").String(),
		Model:     o.Key("model").String(),
	}

	r := file.Section("request")
	cfg.Request = RequestSection{
		PromptTemplate: r.Key("prompt_template").String(),
		ResponseFormat: r.Key("response_format").String(),
		StopSequence:   r.Key("stop_sequence").String(),
	}
	if r.HasKey("max_tokens") {
		maxTokens, err := r.Key("max_tokens").Int64()
		if err != nil {
			return nil, fmt.Errorf("parse %s: request.max_tokens: %w", path, err)
		}
		cfg.Request.MaxTokens = maxTokens
	}

	return &cfg, nil
}

func (c *MatrixConfig) Validate() error {
	key, err := resolveAPIKey(c.OpenAI.APIKey, c.OpenAI.APIKeyEnv)
	if err != nil {
		return err
	}
	c.OpenAI.APIKey = key
	if c.OpenAI.BaseURL == "" {
		c.OpenAI.BaseURL = DefaultBaseURL
	}
	if c.OpenAI.Model == "" {
		return missingKey("openai.model")
	}
	if c.Request.PromptTemplate == "" {
		return missingKey("request.prompt_template")
	}
	if c.Request.ResponseFormat == "" {
		return missingKey("request.response_format")
	}
	if c.Request.MaxTokens <= 0 {
		return missingKey("request.max_tokens")
	}
	if c.Request.StopSequence == "" {
		return missingKey("request.stop_sequence")
	}
	return nil
}

// resolveAPIKey returns the literal key, falling back to the named
// environment variable. The placeholder value counts as unset.
func resolveAPIKey(literal, envName string) (string, error) {
	key := literal
	if key == "" && envName != "" {
		key = os.Getenv(envName)
	}
	if key == "" || key == PlaceholderAPIKey {
		return "", ErrPlaceholderAPIKey
	}
	return key, nil
}

func missingKey(name string) error {
	return fmt.Errorf("missing or invalid config key %q", name)
}
