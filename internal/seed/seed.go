// Package seed generates fake users and scores for the leaderboard job.
package seed

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/festy23/training_grounds/internal/leaderboard/model"
)

const (
	maxSideScore = 20
	playWindow   = 30 * 24 * time.Hour
)

// Writer persists generated tables.
type Writer interface {
	SaveUsers(ctx context.Context, users []model.User) error
	SaveScores(ctx context.Context, scores []model.ScoreRecord) error
}

// Options controls what Generate produces.
type Options struct {
	// Users is the number of players.
	Users int
	// Scores is the number of games.
	Scores int
	// Orphans is how many extra games reference an unknown user_id.
	Orphans int
	// HashCost is the bcrypt cost of password hashes.
	HashCost int
}

// Generator produces reproducible fake data for a given seed.
type Generator struct {
	faker *gofakeit.Faker
	now   time.Time
}

// NewGenerator creates a generator. Timestamps fall in the 30 days before now.
func NewGenerator(seed uint64, now time.Time) *Generator {
	return &Generator{
		faker: gofakeit.New(seed),
		now:   now.Truncate(time.Second),
	}
}

// Users creates count users with unique usernames and bcrypt password hashes.
func (g *Generator) Users(count, hashCost int) ([]model.User, error) {
	if hashCost == 0 {
		hashCost = bcrypt.DefaultCost
	}

	users := make([]model.User, 0, count)
	seen := make(map[string]bool, count)
	for i := 0; i < count; i++ {
		name := uniqueName(seen, g.faker.Username())

		hash, err := bcrypt.GenerateFromPassword([]byte(g.faker.Password(true, true, true, false, false, 12)), hashCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}

		users = append(users, model.User{
			ID:           strconv.Itoa(i + 1),
			Username:     name,
			PasswordHash: string(hash),
		})
	}
	return users, nil
}

// uniqueName returns name, or name with the smallest numeric suffix not yet
// in seen, and marks the result as taken.
func uniqueName(seen map[string]bool, name string) string {
	candidate := name
	for n := 2; seen[candidate]; n++ {
		candidate = name + strconv.Itoa(n)
	}
	seen[candidate] = true
	return candidate
}

// Scores creates count games played by random users, followed by orphans
// games whose user_id matches no user.
func (g *Generator) Scores(users []model.User, count, orphans int) []model.ScoreRecord {
	scores := make([]model.ScoreRecord, 0, count+orphans)
	for i := 0; i < count+orphans; i++ {
		var userID string
		switch {
		case i >= count:
			userID = "orphan-" + strconv.Itoa(i-count+1)
		case len(users) == 0:
			continue
		default:
			userID = users[g.faker.Number(0, len(users)-1)].ID
		}

		offset := time.Duration(g.faker.Int64()%int64(playWindow/time.Second)) * time.Second
		if offset < 0 {
			offset = -offset
		}

		scores = append(scores, model.ScoreRecord{
			ID:        strconv.Itoa(len(scores) + 1),
			UserID:    userID,
			AoName:    g.faker.FirstName(),
			AkaName:   g.faker.FirstName(),
			AoScore:   g.faker.Number(0, maxSideScore),
			AkaScore:  g.faker.Number(0, maxSideScore),
			Timestamp: g.now.Add(-offset),
		})
	}
	return scores
}

// Generate creates users and scores per opts and writes both tables.
func Generate(ctx context.Context, w Writer, g *Generator, opts Options, logger *zap.SugaredLogger) error {
	if opts.Users < 0 || opts.Scores < 0 || opts.Orphans < 0 {
		return fmt.Errorf("seed counts must be non-negative")
	}

	users, err := g.Users(opts.Users, opts.HashCost)
	if err != nil {
		return err
	}
	scores := g.Scores(users, opts.Scores, opts.Orphans)

	if err := w.SaveUsers(ctx, users); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	if err := w.SaveScores(ctx, scores); err != nil {
		return fmt.Errorf("failed to save scores: %w", err)
	}

	logger.Infow("seed data generated", "users", len(users), "scores", len(scores), "orphans", opts.Orphans)
	return nil
}
