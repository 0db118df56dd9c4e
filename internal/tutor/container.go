package tutor

import (
	"context"

	"github.com/saulo-duarte/tutor-lambda/internal/config"
)

type TutorContainer struct {
	Provider Provider
	Service  Service
	Handler  *Handler
}

func NewTutorContainer(settings *config.Settings) *TutorContainer {
	provider := newProvider(settings)
	service := NewService(provider)
	handler := NewHandler(service)

	return &TutorContainer{
		Provider: provider,
		Service:  service,
		Handler:  handler,
	}
}

func newProvider(settings *config.Settings) Provider {
	if settings.CompletionProvider == config.ProviderGemini {
		provider, err := NewGeminiProvider(context.Background(), settings.GeminiAPIKey, settings.GeminiModel)
		if err == nil {
			return provider
		}
		config.Logger.WithError(err).Error("Falling back to Mistral provider")
	}

	return NewMistralProvider(MistralConfig{
		APIKey:  settings.MistralAPIKey,
		BaseURL: settings.MistralBaseURL,
		Model:   settings.MistralModel,
	})
}
