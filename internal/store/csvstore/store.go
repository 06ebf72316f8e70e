// Package csvstore implements the training-grounds store on flat CSV tables
// kept in a single data directory.
package csvstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/festy23/training_grounds/internal/store/model"
	"github.com/festy23/training_grounds/internal/table"
)

// Config holds CSV store configuration.
type Config struct {
	// DataDir is the directory holding every table file.
	DataDir string
	// Schema declares the kinds of setting values. Nil means the default schema.
	Schema model.SettingsSchema
}

// Option customises a Store.
type Option func(*Store)

// WithClock sets the time source used for row timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Store is the CSV-backed store. It performs no locking: concurrent writers
// from several processes can interleave.
type Store struct {
	dir    string
	schema model.SettingsSchema
	now    func() time.Time
	logger *zap.SugaredLogger
}

// New creates a CSV store rooted at cfg.DataDir. Call Initialize before use.
func New(cfg Config, logger *zap.SugaredLogger, opts ...Option) *Store {
	schema := cfg.Schema
	if schema == nil {
		schema = model.DefaultSettingsSchema()
	}
	s := &Store{
		dir:    cfg.DataDir,
		schema: schema,
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) path(schema table.Schema) string {
	return filepath.Join(s.dir, schema.File)
}

// Initialize creates the data directory and every missing table with its
// header and seed rows. Existing tables are never modified.
func (s *Store) Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	stamp := table.FormatTime(s.now())

	roster := model.DefaultRoster()
	rosterRows := make([][]string, 0, len(roster))
	for _, m := range roster {
		rosterRows = append(rosterRows, []string{m.Name, m.NIM})
	}

	settings := model.DefaultSettings()
	settingsRows := make([][]string, 0, settings.Len())
	for _, key := range settings.Keys() {
		v, _ := settings.Get(key)
		settingsRows = append(settingsRows, []string{key, v.Encode()})
	}

	seeds := []struct {
		schema table.Schema
		rows   [][]string
	}{
		{schema: teamMembersTable, rows: rosterRows},
		{schema: scoreboardTable, rows: [][]string{
			{model.DefaultAoTeam, "0", stamp},
			{model.DefaultAkaTeam, "0", stamp},
		}},
		{schema: settingsTable, rows: settingsRows},
		{schema: feedbackTable},
		{schema: historyTable},
	}

	for _, seed := range seeds {
		created, err := table.Create(s.path(seed.schema), seed.schema, seed.rows)
		if err != nil {
			return err
		}
		if created {
			s.logger.Infow("table created", "table", seed.schema.Name, "seed_rows", len(seed.rows))
		}
	}
	return nil
}

// Ping checks that the data directory is present.
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("data directory unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data directory %s is not a directory", s.dir)
	}
	return nil
}

// LoadTeamMembers returns the roster in file order.
func (s *Store) LoadTeamMembers(ctx context.Context) ([]model.TeamMember, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records, err := table.ReadAll(s.path(teamMembersTable), teamMembersTable)
	if err != nil {
		return nil, err
	}

	members := make([]model.TeamMember, 0, len(records))
	for _, r := range records {
		members = append(members, model.TeamMember{Name: r.Get("name"), NIM: r.Get("nim")})
	}
	return members, nil
}

// LoadScoreboard returns the scoreboard snapshot. If a team appears twice
// the later row wins.
func (s *Store) LoadScoreboard(ctx context.Context) (*model.Scoreboard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records, err := table.ReadAll(s.path(scoreboardTable), scoreboardTable)
	if err != nil {
		return nil, err
	}

	sb := &model.Scoreboard{}
	for _, r := range records {
		score, err := r.Int("score")
		if err != nil {
			return nil, err
		}
		updated, err := r.Time("last_updated")
		if err != nil {
			return nil, err
		}
		sb.Set(model.ScoreEntry{TeamName: r.Get("team_name"), Score: score, LastUpdated: updated})
	}
	return sb, nil
}

// SaveScoreboard replaces the scoreboard with the two given sides, both
// stamped with the current time.
func (s *Store) SaveScoreboard(ctx context.Context, aoName string, aoScore int, akaName string, akaScore int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := model.ValidateScoreboard(aoName, aoScore, akaName, akaScore); err != nil {
		return err
	}

	stamp := table.FormatTime(s.now())
	rows := [][]string{
		{aoName, strconv.Itoa(aoScore), stamp},
		{akaName, strconv.Itoa(akaScore), stamp},
	}
	if err := table.Overwrite(s.path(scoreboardTable), scoreboardTable, rows); err != nil {
		return err
	}

	s.logger.Debugw("scoreboard saved", "ao", aoName, "ao_score", aoScore, "aka", akaName, "aka_score", akaScore)
	return nil
}

// LoadSettings decodes every setting through the store's schema.
func (s *Store) LoadSettings(ctx context.Context) (*model.Settings, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records, err := table.ReadAll(s.path(settingsTable), settingsTable)
	if err != nil {
		return nil, err
	}

	settings := model.NewSettings()
	for _, r := range records {
		key := r.Get("setting_name")
		v, err := s.schema.Decode(key, r.Get("value"))
		if err != nil {
			return nil, &table.ParseError{Table: settingsTable.Name, Line: r.Line(), Column: "value", Err: err}
		}
		settings.Set(key, v)
	}
	return settings, nil
}

// SaveSettings replaces the settings table with one row per entry.
func (s *Store) SaveSettings(ctx context.Context, settings *model.Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	keys := settings.Keys()
	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		v, _ := settings.Get(key)
		if err := s.schema.Check(key, v); err != nil {
			return err
		}
		rows = append(rows, []string{key, v.Encode()})
	}
	if err := table.Overwrite(s.path(settingsTable), settingsTable, rows); err != nil {
		return err
	}

	s.logger.Debugw("settings saved", "count", len(rows))
	return nil
}

// LogFeedback appends a feedback message stamped with the current time.
func (s *Store) LogFeedback(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	row := []string{table.FormatTime(s.now()), message}
	return table.Append(s.path(feedbackTable), feedbackTable, row)
}

// LogGameResult appends a completed match to the history log.
func (s *Store) LogGameResult(ctx context.Context, result model.GameResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	row := []string{
		table.FormatTime(result.StartTime),
		table.FormatTime(result.EndTime),
		result.Winner,
		strconv.Itoa(result.AoScore),
		strconv.Itoa(result.AkaScore),
	}
	if err := table.Append(s.path(historyTable), historyTable, row); err != nil {
		return err
	}

	s.logger.Infow("game result logged", "winner", result.Winner, "ao_score", result.AoScore, "aka_score", result.AkaScore)
	return nil
}

// GetGameHistory returns every logged match in append order.
func (s *Store) GetGameHistory(ctx context.Context) ([]model.GameHistoryRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records, err := table.ReadAll(s.path(historyTable), historyTable)
	if err != nil {
		return nil, err
	}

	history := make([]model.GameHistoryRecord, 0, len(records))
	for _, r := range records {
		history = append(history, model.GameHistoryRecord{
			StartTime: r.Get("start_time"),
			EndTime:   r.Get("end_time"),
			Winner:    r.Get("winner"),
			AoScore:   r.Get("ao_score"),
			AkaScore:  r.Get("aka_score"),
		})
	}
	return history, nil
}
