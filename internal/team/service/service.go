// Package service provides business logic layer for team module.
package service

import (
	"context"

	"go.uber.org/zap"

	storeModel "github.com/festy23/training_grounds/internal/store/model"
	teamModel "github.com/festy23/training_grounds/internal/team/model"
)

// Repository is the part of the store the team module reads.
type Repository interface {
	LoadTeamMembers(ctx context.Context) ([]storeModel.TeamMember, error)
}

// Service defines the interface for team business logic operations.
type Service interface {
	// ListMembers returns the team roster in stored order.
	ListMembers(ctx context.Context) (*teamModel.MembersResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

func (s *service) ListMembers(ctx context.Context) (*teamModel.MembersResponse, error) {
	s.logger.Debugw("ListMembers called")

	members, err := s.repo.LoadTeamMembers(ctx)
	if err != nil {
		s.logger.Errorw("ListMembers failed", "error", err)
		return nil, err
	}
	if members == nil {
		members = []storeModel.TeamMember{}
	}

	return &teamModel.MembersResponse{Members: members, Total: len(members)}, nil
}
