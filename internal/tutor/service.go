package tutor

import (
	"context"

	"github.com/saulo-duarte/tutor-lambda/internal/config"
	"github.com/sirupsen/logrus"
)

type Service interface {
	Ask(ctx context.Context, req AskRequest) (*CompletionResult, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

func (s *service) Ask(ctx context.Context, req AskRequest) (*CompletionResult, error) {
	log := config.WithContext(ctx)

	prompt, err := BuildPrompt(req)
	if err != nil {
		log.WithError(err).Warn("Rejected ask request")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"subject":      req.Subject,
		"topic":        req.Topic,
		"modification": DetectModification(req.ModificationRequest),
		"prompt_len":   len(prompt),
	}).Info("Sending prompt to completion provider")

	return s.provider.Complete(ctx, prompt)
}
