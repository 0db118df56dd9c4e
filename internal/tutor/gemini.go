package tutor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/tutor-lambda/internal/config"
	"google.golang.org/genai"
)

type geminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, apiKey, model string) (Provider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &geminiProvider{client: client, model: model}, nil
}

func (p *geminiProvider) Complete(ctx context.Context, prompt string) (*CompletionResult, error) {
	log := config.WithContext(ctx).WithField("model", p.model)

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		if upstreamErr := geminiUpstreamError(err); upstreamErr != nil {
			log.WithField("status", upstreamErr.StatusCode).Errorf("Gemini API Error: %s", upstreamErr.Message)
			return nil, upstreamErr
		}
		log.WithError(err).Error("Unexpected Error: Gemini request failed")
		return nil, internalError("generate content", err)
	}

	result := geminiToCompletion(resp, p.model)
	if len(result.Choices) == 0 {
		err := errors.New("response has no candidates")
		log.WithError(err).Error("Unexpected Error: malformed Gemini response")
		return nil, internalError("validate response", err)
	}
	return result, nil
}

func geminiUpstreamError(err error) *UpstreamError {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &UpstreamError{StatusCode: apiErr.Code, Message: apiErr.Message}
	}
	return nil
}

// geminiToCompletion reshapes a Gemini response into the chat completion
// layout callers already consume.
func geminiToCompletion(resp *genai.GenerateContentResponse, model string) *CompletionResult {
	result := &CompletionResult{
		ID:     resp.ResponseID,
		Object: "chat.completion",
		Model:  model,
	}
	if resp.ModelVersion != "" {
		result.Model = resp.ModelVersion
	}
	if !resp.CreateTime.IsZero() {
		result.Created = resp.CreateTime.Unix()
	}

	for i, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		var text strings.Builder
		for _, part := range candidate.Content.Parts {
			if part != nil {
				text.WriteString(part.Text)
			}
		}
		result.Choices = append(result.Choices, Choice{
			Index:        i,
			Message:      Message{Role: "assistant", Content: text.String()},
			FinishReason: strings.ToLower(string(candidate.FinishReason)),
		})
	}

	if u := resp.UsageMetadata; u != nil {
		result.Usage = &Usage{
			PromptTokens:     int(u.PromptTokenCount),
			CompletionTokens: int(u.CandidatesTokenCount),
			TotalTokens:      int(u.TotalTokenCount),
		}
	}
	return result
}
