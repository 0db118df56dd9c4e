package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

const (
	ProviderMistral = "mistral"
	ProviderGemini  = "gemini"
)

type Settings struct {
	Port               string `mapstructure:"PORT"`
	CorsOrigin         string `mapstructure:"CORS_ORIGIN"`
	CompletionProvider string `mapstructure:"COMPLETION_PROVIDER"`
	MistralAPIKey      string `mapstructure:"MISTRAL_API_KEY"`
	MistralBaseURL     string `mapstructure:"MISTRAL_BASE_URL"`
	MistralModel       string `mapstructure:"MISTRAL_MODEL"`
	GeminiAPIKey       string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel        string `mapstructure:"GEMINI_MODEL"`
}

var defaults = map[string]string{
	"PORT":                "4444",
	"CORS_ORIGIN":         "http://localhost:5555",
	"COMPLETION_PROVIDER": ProviderMistral,
	"MISTRAL_API_KEY":     "",
	"MISTRAL_BASE_URL":    "https://api.mistral.ai/v1",
	"MISTRAL_MODEL":       "mistral-medium",
	"GEMINI_API_KEY":      "",
	"GEMINI_MODEL":        "gemini-2.0-flash",
}

// LoadSettings reads settings from the environment, falling back to an
// optional dotenv file at envFile. A missing file is not an error.
func LoadSettings(envFile string) (*Settings, error) {
	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.AutomaticEnv()

	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("error reading %s: %w", envFile, err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	s.CompletionProvider = strings.ToLower(strings.TrimSpace(s.CompletionProvider))
	s.MistralBaseURL = strings.TrimRight(s.MistralBaseURL, "/")
	return &s, nil
}

// ReportSecrets logs whether the API key for the selected provider is
// present. A missing key is surfaced as a warning, requests will fail upstream.
func (s *Settings) ReportSecrets() {
	name, value := "MISTRAL_API_KEY", s.MistralAPIKey
	if s.CompletionProvider == ProviderGemini {
		name, value = "GEMINI_API_KEY", s.GeminiAPIKey
	}
	if value == "" {
		Logger.Warnf("%s missing", name)
		return
	}
	Logger.Infof("%s loaded", name)
}
