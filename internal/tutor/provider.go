package tutor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/saulo-duarte/tutor-lambda/internal/config"
)

type Provider interface {
	Complete(ctx context.Context, prompt string) (*CompletionResult, error)
}

type MistralConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Client  *http.Client
}

type mistralProvider struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

type mistralRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

// mistralErrorResponse covers both the OpenAI-style nested error object and
// Mistral's flat {"message": ...} body.
type mistralErrorResponse struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
	Message string `json:"message"`
}

func NewMistralProvider(cfg MistralConfig) Provider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.mistral.ai/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "mistral-medium"
	}
	if cfg.Client == nil {
		cfg.Client = http.DefaultClient
	}
	return &mistralProvider{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		client:  cfg.Client,
	}
}

func (p *mistralProvider) Complete(ctx context.Context, prompt string) (*CompletionResult, error) {
	log := config.WithContext(ctx).WithField("model", p.model)

	body, err := json.Marshal(mistralRequest{
		Model:    p.model,
		Messages: []Message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		log.WithError(err).Error("Unexpected Error: failed to marshal Mistral request")
		return nil, internalError("marshal request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		log.WithError(err).Error("Unexpected Error: failed to create Mistral request")
		return nil, internalError("create request", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		log.WithError(err).Error("Unexpected Error: Mistral request failed")
		return nil, internalError("send request", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.WithError(err).Error("Unexpected Error: failed to read Mistral response")
		return nil, internalError("read response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		upstreamErr := &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    upstreamMessage(resp.StatusCode, respBody),
		}
		log.WithField("status", resp.StatusCode).Errorf("Mistral API Error: %s", upstreamErr.Message)
		return nil, upstreamErr
	}

	var result CompletionResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		log.WithError(err).Error("Unexpected Error: failed to decode Mistral response")
		return nil, internalError("decode response", err)
	}
	if len(result.Choices) == 0 {
		err := errors.New("response has no choices")
		log.WithError(err).Error("Unexpected Error: malformed Mistral response")
		return nil, internalError("validate response", err)
	}

	log.WithField("completion_id", result.ID).Debug("Mistral completion received")
	return &result, nil
}

func upstreamMessage(status int, body []byte) string {
	var errResp mistralErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Error != nil && errResp.Error.Message != "" {
			return errResp.Error.Message
		}
		if errResp.Message != "" {
			return errResp.Message
		}
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return fmt.Sprintf("status %d", status)
}
