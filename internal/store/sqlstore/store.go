// Package sqlstore implements the training-grounds store on a SQLite
// database through gorm.
package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/training_grounds/internal/database/database"
	"github.com/festy23/training_grounds/internal/database/migrate"
	"github.com/festy23/training_grounds/internal/store/model"
	"github.com/festy23/training_grounds/internal/table"
	"github.com/festy23/training_grounds/pkg/retry"
)

// Option customises a Store.
type Option func(*Store)

// WithClock sets the time source used for row timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithSchema sets the settings schema. The default schema is used otherwise.
func WithSchema(schema model.SettingsSchema) Option {
	return func(s *Store) {
		s.schema = schema
	}
}

// Store is the SQLite-backed store.
type Store struct {
	db     *gorm.DB
	schema model.SettingsSchema
	now    func() time.Time
	logger *zap.SugaredLogger
}

// New creates a store on an open database. Call Initialize before use.
func New(db *gorm.DB, logger *zap.SugaredLogger, opts ...Option) *Store {
	s := &Store{
		db:     db,
		schema: model.DefaultSettingsSchema(),
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize applies the schema and seeds every table that has never been
// seeded. Tables seeded once are never seeded again, even if emptied later.
func (s *Store) Initialize(ctx context.Context) error {
	err := retry.Do(ctx, database.LoadRetryConfigFromEnv(), func() error {
		return migrate.Migrate(s.db)
	})
	if err != nil {
		return err
	}

	stamp := table.FormatTime(s.now())

	roster := model.DefaultRoster()
	members := make([]teamMemberRow, 0, len(roster))
	for _, m := range roster {
		members = append(members, teamMemberRow{Name: m.Name, NIM: m.NIM})
	}

	defaults := model.DefaultSettings()
	settings := make([]settingRow, 0, defaults.Len())
	for _, key := range defaults.Keys() {
		v, _ := defaults.Get(key)
		settings = append(settings, settingRow{SettingName: key, Value: v.Encode()})
	}

	seeds := []struct {
		table string
		rows  any
	}{
		{table: "team_members", rows: &members},
		{table: "scoreboard", rows: &[]scoreboardRow{
			{TeamName: model.DefaultAoTeam, Score: 0, LastUpdated: stamp},
			{TeamName: model.DefaultAkaTeam, Score: 0, LastUpdated: stamp},
		}},
		{table: "settings", rows: &settings},
		{table: "feedback_log"},
		{table: "game_history"},
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, seed := range seeds {
			var marker seededTableRow
			err := tx.Where("table_name = ?", seed.table).Take(&marker).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to check %s seed: %w", seed.table, err)
			}

			count := 0
			if seed.rows != nil {
				res := tx.Create(seed.rows)
				if res.Error != nil {
					return fmt.Errorf("failed to seed %s table: %w", seed.table, res.Error)
				}
				count = int(res.RowsAffected)
			}
			if err := tx.Create(&seededTableRow{Name: seed.table, SeededAt: stamp}).Error; err != nil {
				return fmt.Errorf("failed to mark %s seeded: %w", seed.table, err)
			}
			s.logger.Infow("table created", "table", seed.table, "seed_rows", count)
		}
		return nil
	})
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return database.HealthCheck(ctx, s.db)
}

// LoadTeamMembers returns the roster in insertion order.
func (s *Store) LoadTeamMembers(ctx context.Context) ([]model.TeamMember, error) {
	var rows []teamMemberRow
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load team members: %w", err)
	}

	members := make([]model.TeamMember, 0, len(rows))
	for _, r := range rows {
		members = append(members, model.TeamMember{Name: r.Name, NIM: r.NIM})
	}
	return members, nil
}

// LoadScoreboard returns the scoreboard snapshot.
func (s *Store) LoadScoreboard(ctx context.Context) (*model.Scoreboard, error) {
	var rows []scoreboardRow
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load scoreboard: %w", err)
	}

	sb := &model.Scoreboard{}
	for _, r := range rows {
		updated, err := table.ParseTime(r.LastUpdated)
		if err != nil {
			return nil, fmt.Errorf("scoreboard row %d: invalid last_updated: %w", r.ID, err)
		}
		sb.Set(model.ScoreEntry{TeamName: r.TeamName, Score: r.Score, LastUpdated: updated})
	}
	return sb, nil
}

// SaveScoreboard replaces the scoreboard with the two given sides.
func (s *Store) SaveScoreboard(ctx context.Context, aoName string, aoScore int, akaName string, akaScore int) error {
	if err := model.ValidateScoreboard(aoName, aoScore, akaName, akaScore); err != nil {
		return err
	}

	stamp := table.FormatTime(s.now())
	rows := []scoreboardRow{
		{TeamName: aoName, Score: aoScore, LastUpdated: stamp},
		{TeamName: akaName, Score: akaScore, LastUpdated: stamp},
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&scoreboardRow{}).Error; err != nil {
			return err
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return fmt.Errorf("failed to save scoreboard: %w", err)
	}

	s.logger.Debugw("scoreboard saved", "ao", aoName, "ao_score", aoScore, "aka", akaName, "aka_score", akaScore)
	return nil
}

// LoadSettings decodes every setting through the store's schema.
func (s *Store) LoadSettings(ctx context.Context) (*model.Settings, error) {
	var rows []settingRow
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	settings := model.NewSettings()
	for i, r := range rows {
		v, err := s.schema.Decode(r.SettingName, r.Value)
		if err != nil {
			return nil, &table.ParseError{Table: "settings", Line: i + 1, Column: "value", Err: err}
		}
		settings.Set(r.SettingName, v)
	}
	return settings, nil
}

// SaveSettings replaces every setting with the given ones, in order.
func (s *Store) SaveSettings(ctx context.Context, settings *model.Settings) error {
	keys := settings.Keys()
	rows := make([]settingRow, 0, len(keys))
	for _, key := range keys {
		v, _ := settings.Get(key)
		if err := s.schema.Check(key, v); err != nil {
			return err
		}
		rows = append(rows, settingRow{SettingName: key, Value: v.Encode()})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&settingRow{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	s.logger.Debugw("settings saved", "count", len(rows))
	return nil
}

// LogFeedback appends a feedback message stamped with the current time.
func (s *Store) LogFeedback(ctx context.Context, message string) error {
	row := feedbackRow{Timestamp: table.FormatTime(s.now()), FeedbackMessage: message}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to log feedback: %w", err)
	}
	return nil
}

// LogGameResult appends a completed match to the history log.
func (s *Store) LogGameResult(ctx context.Context, result model.GameResult) error {
	row := gameHistoryRow{
		StartTime: table.FormatTime(result.StartTime),
		EndTime:   table.FormatTime(result.EndTime),
		Winner:    result.Winner,
		AoScore:   result.AoScore,
		AkaScore:  result.AkaScore,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to log game result: %w", err)
	}

	s.logger.Infow("game result logged", "winner", result.Winner, "ao_score", result.AoScore, "aka_score", result.AkaScore)
	return nil
}

// GetGameHistory returns every logged match in insertion order.
func (s *Store) GetGameHistory(ctx context.Context) ([]model.GameHistoryRecord, error) {
	var rows []gameHistoryRow
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load game history: %w", err)
	}

	history := make([]model.GameHistoryRecord, 0, len(rows))
	for _, r := range rows {
		history = append(history, model.GameHistoryRecord{
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
			Winner:    r.Winner,
			AoScore:   fmt.Sprint(r.AoScore),
			AkaScore:  fmt.Sprint(r.AkaScore),
		})
	}
	return history, nil
}
