// Package service provides business logic layer for the feedback module.
package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/festy23/training_grounds/internal/feedback/model"
)

// Repository is the part of the store the feedback module uses.
type Repository interface {
	LogFeedback(ctx context.Context, message string) error
}

// Service defines the interface for feedback operations.
type Service interface {
	// Submit trims and records a message. It returns the stored text.
	Submit(ctx context.Context, message string) (string, error)
}

type service struct {
	repo   Repository
	logger *zap.SugaredLogger
}

// New creates a new feedback service instance.
func New(repo Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

func (s *service) Submit(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", model.ErrEmptyMessage
	}
	if n := utf8.RuneCountInString(message); n > model.MaxMessageLength {
		return "", fmt.Errorf("%w: %d characters, limit %d", model.ErrMessageTooLong, n, model.MaxMessageLength)
	}

	if err := s.repo.LogFeedback(ctx, message); err != nil {
		s.logger.Errorw("failed to log feedback", "error", err)
		return "", err
	}

	s.logger.Infow("feedback recorded", "length", len(message))
	return message, nil
}
