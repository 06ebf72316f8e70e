// Package service provides business logic layer for the settings module.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.uber.org/zap"

	storeModel "github.com/festy23/training_grounds/internal/store/model"
)

// Repository is the part of the store the settings module uses.
type Repository interface {
	LoadSettings(ctx context.Context) (*storeModel.Settings, error)
	SaveSettings(ctx context.Context, settings *storeModel.Settings) error
}

// Service defines the interface for settings operations.
type Service interface {
	// Get returns every setting.
	Get(ctx context.Context) (*storeModel.Settings, error)

	// Update merges patch into the stored settings and saves the result.
	// Existing keys keep their position; new keys are appended by name.
	Update(ctx context.Context, patch map[string]json.RawMessage) (*storeModel.Settings, error)
}

type service struct {
	repo   Repository
	schema storeModel.SettingsSchema
	logger *zap.SugaredLogger
}

// New creates a new settings service instance.
func New(repo Repository, schema storeModel.SettingsSchema, logger *zap.SugaredLogger) Service {
	if schema == nil {
		schema = storeModel.DefaultSettingsSchema()
	}
	return &service{
		repo:   repo,
		schema: schema,
		logger: logger,
	}
}

func (s *service) Get(ctx context.Context) (*storeModel.Settings, error) {
	settings, err := s.repo.LoadSettings(ctx)
	if err != nil {
		s.logger.Errorw("failed to load settings", "error", err)
		return nil, err
	}
	return settings, nil
}

func (s *service) Update(ctx context.Context, patch map[string]json.RawMessage) (*storeModel.Settings, error) {
	keys := make([]string, 0, len(patch))
	values := make(map[string]storeModel.SettingValue, len(patch))
	for key, raw := range patch {
		if key == "" {
			return nil, fmt.Errorf("%w: empty setting name", storeModel.ErrInvalidSetting)
		}
		v, err := s.decode(key, raw)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
		values[key] = v
	}
	sort.Strings(keys)

	settings, err := s.repo.LoadSettings(ctx)
	if err != nil {
		return nil, err
	}
	for _, key := range keys {
		settings.Set(key, values[key])
	}

	if err := s.repo.SaveSettings(ctx, settings); err != nil {
		s.logger.Errorw("failed to save settings", "error", err)
		return nil, err
	}

	s.logger.Infow("settings updated", "keys", keys)
	return settings, nil
}

// decode accepts JSON booleans for bool settings and JSON strings for text
// settings. A string is also accepted for a bool setting if it spells a bool.
func (s *service) decode(key string, raw json.RawMessage) (storeModel.SettingValue, error) {
	if s.schema.KindOf(key) == storeModel.KindBool {
		var flag bool
		if err := json.Unmarshal(raw, &flag); err == nil {
			return storeModel.Bool(flag), nil
		}
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return storeModel.SettingValue{}, fmt.Errorf("%w: %s must be %s", storeModel.ErrInvalidSetting, key, s.schema.KindOf(key))
	}
	return s.schema.Decode(key, text)
}
