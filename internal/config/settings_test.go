package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/saulo-duarte/tutor-lambda/internal/config"
)

func TestLoadSettings(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("MISTRAL_API_KEY", "")
		t.Setenv("PORT", "")

		s, err := config.LoadSettings("")
		if err != nil {
			t.Fatalf("LoadSettings falhou: %v", err)
		}
		if s.Port != "4444" {
			t.Errorf("Port incorreto. Esperado: 4444, Recebido: %s", s.Port)
		}
		if s.MistralModel != "mistral-medium" {
			t.Errorf("MistralModel incorreto: %s", s.MistralModel)
		}
		if s.MistralBaseURL != "https://api.mistral.ai/v1" {
			t.Errorf("MistralBaseURL incorreto: %s", s.MistralBaseURL)
		}
		if s.CorsOrigin != "http://localhost:5555" {
			t.Errorf("CorsOrigin incorreto: %s", s.CorsOrigin)
		}
		if s.CompletionProvider != config.ProviderMistral {
			t.Errorf("CompletionProvider incorreto: %s", s.CompletionProvider)
		}
	})

	t.Run("EnvironmentOverrides", func(t *testing.T) {
		t.Setenv("MISTRAL_API_KEY", "secret")
		t.Setenv("MISTRAL_BASE_URL", "http://localhost:9999/v1/")
		t.Setenv("COMPLETION_PROVIDER", " Gemini ")

		s, err := config.LoadSettings("")
		if err != nil {
			t.Fatalf("LoadSettings falhou: %v", err)
		}
		if s.MistralAPIKey != "secret" {
			t.Errorf("MistralAPIKey incorreto: %s", s.MistralAPIKey)
		}
		if s.MistralBaseURL != "http://localhost:9999/v1" {
			t.Errorf("MistralBaseURL deveria perder a barra final: %s", s.MistralBaseURL)
		}
		if s.CompletionProvider != config.ProviderGemini {
			t.Errorf("CompletionProvider incorreto: %s", s.CompletionProvider)
		}
	})

	t.Run("DotEnvFile", func(t *testing.T) {
		t.Setenv("MISTRAL_API_KEY", "")
		path := filepath.Join(t.TempDir(), ".env")
		if err := os.WriteFile(path, []byte("MISTRAL_API_KEY=from-file\nPORT=5000\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		os.Unsetenv("MISTRAL_API_KEY")

		s, err := config.LoadSettings(path)
		if err != nil {
			t.Fatalf("LoadSettings falhou: %v", err)
		}
		if s.MistralAPIKey != "from-file" {
			t.Errorf("MistralAPIKey incorreto: %s", s.MistralAPIKey)
		}
		if s.Port != "5000" {
			t.Errorf("Port incorreto: %s", s.Port)
		}
	})

	t.Run("MissingDotEnvFile", func(t *testing.T) {
		_, err := config.LoadSettings(filepath.Join(t.TempDir(), "missing.env"))
		if err != nil {
			t.Errorf("arquivo .env ausente não deveria ser erro: %v", err)
		}
	})
}
