package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/festy23/training_grounds/internal/config"
	leaderboardModel "github.com/festy23/training_grounds/internal/leaderboard/model"
	"github.com/festy23/training_grounds/internal/leaderboard/repository"
	leaderboardRouter "github.com/festy23/training_grounds/internal/leaderboard/router"
	leaderboardService "github.com/festy23/training_grounds/internal/leaderboard/service"
	"github.com/festy23/training_grounds/internal/seed"
	"github.com/festy23/training_grounds/internal/store"
	"github.com/festy23/training_grounds/internal/table"
	"github.com/festy23/training_grounds/pkg/logger"
)

// env carries what commands share. Tests preset logger and now.
type env struct {
	out    io.Writer
	now    func() time.Time
	logger *zap.SugaredLogger
	cfg    config.Config
}

func newEnv(out io.Writer) *env {
	return &env{out: out, now: time.Now}
}

func newApp(e *env) *cli.App {
	return &cli.App{
		Name:  "dojoctl",
		Usage: "manage training-grounds tables and the leaderboard job",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML config file", EnvVars: []string{"CONFIG_FILE"}},
			&cli.StringFlag{Name: "data-dir", Usage: "override the data directory"},
			&cli.StringFlag{Name: "backend", Usage: "override the store backend (csv, sqlite)"},
		},
		Before: e.load,
		After: func(*cli.Context) error {
			if e.logger != nil {
				_ = e.logger.Sync()
			}
			return nil
		},
		Writer: e.out,
		Commands: []*cli.Command{
			e.initCommand(),
			e.seedCommand(),
			e.leaderboardCommand(),
			e.exportCommand(),
			e.chartCommand(),
			e.historyCommand(),
		},
	}
}

func (e *env) load(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if dir := c.String("data-dir"); dir != "" {
		cfg.Store.DataDir = dir
	}
	if backend := c.String("backend"); backend != "" {
		cfg.Store.Backend = backend
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.cfg = cfg

	if e.logger == nil {
		e.logger, err = logger.NewWithConfig(cfg.Logger)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
	}
	return nil
}

func (e *env) openStore(c *cli.Context) (store.Repository, func() error, error) {
	repo, closeStore, err := store.Open(c.Context, e.cfg.Store, e.logger)
	if err != nil {
		return nil, nil, err
	}
	if err := repo.Initialize(c.Context); err != nil {
		_ = closeStore()
		return nil, nil, err
	}
	return repo, closeStore, nil
}

func (e *env) leaderboard(c *cli.Context) leaderboardService.Service {
	cfg := e.cfg.Leaderboard
	if policy := c.String("policy"); policy != "" {
		cfg.OrphanPolicy = policy
	}
	return leaderboardRouter.NewService(e.cfg.Store, cfg, e.logger)
}

func (e *env) initCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "create missing tables with their seed rows",
		Action: func(c *cli.Context) error {
			_, closeStore, err := e.openStore(c)
			if err != nil {
				return err
			}
			fmt.Fprintf(e.out, "tables ready in %s (%s)\n", e.cfg.Store.DataDir, e.cfg.Store.Backend)
			return closeStore()
		},
	}
}

func (e *env) seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "write fake users.csv and scores.csv",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "users", Value: 20, Usage: "number of users"},
			&cli.IntFlag{Name: "scores", Value: 100, Usage: "number of games"},
			&cli.IntFlag{Name: "orphans", Usage: "games referencing unknown users"},
			&cli.Uint64Flag{Name: "seed", Usage: "random seed, 0 picks one from the clock"},
			&cli.IntFlag{Name: "hash-cost", Value: 10, Usage: "bcrypt cost of password hashes"},
		},
		Action: func(c *cli.Context) error {
			s := c.Uint64("seed")
			if s == 0 {
				s = uint64(e.now().UnixNano())
			}
			paths := leaderboardRouter.Paths(e.cfg.Store, e.cfg.Leaderboard)
			if err := os.MkdirAll(e.cfg.Store.DataDir, 0o755); err != nil {
				return fmt.Errorf("failed to create data directory: %w", err)
			}

			err := seed.Generate(c.Context, repository.New(paths, e.logger), seed.NewGenerator(s, e.now()), seed.Options{
				Users:    c.Int("users"),
				Scores:   c.Int("scores"),
				Orphans:  c.Int("orphans"),
				HashCost: c.Int("hash-cost"),
			}, e.logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(e.out, "wrote %s and %s (seed %d)\n", paths.Users, paths.Scores, s)
			return nil
		},
	}
}

func policyFlag() cli.Flag {
	return &cli.StringFlag{Name: "policy", Usage: "orphaned score policy (skip, fail)"}
}

func (e *env) leaderboardCommand() *cli.Command {
	return &cli.Command{
		Name:  "leaderboard",
		Usage: "rank users by their best game and write leaderboard.csv",
		Flags: []cli.Flag{policyFlag()},
		Action: func(c *cli.Context) error {
			res, err := e.leaderboard(c).Generate(c.Context)
			if err != nil {
				return err
			}
			e.printRows(res.Rows)
			if len(res.Orphans) > 0 {
				fmt.Fprintf(e.out, "skipped %d orphaned scores\n", len(res.Orphans))
			}
			return nil
		},
	}
}

func (e *env) exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "write the leaderboard as an XLSX workbook",
		Flags: []cli.Flag{
			policyFlag(),
			&cli.PathFlag{Name: "out", Aliases: []string{"o"}, Value: "leaderboard.xlsx", Usage: "output file"},
		},
		Action: func(c *cli.Context) error {
			return e.writeFile(c.Path("out"), func(w io.Writer) error {
				return e.leaderboard(c).ExportXLSX(c.Context, w)
			})
		},
	}
}

func (e *env) chartCommand() *cli.Command {
	return &cli.Command{
		Name:  "chart",
		Usage: "render the top of the leaderboard as a PNG bar chart",
		Flags: []cli.Flag{
			policyFlag(),
			&cli.PathFlag{Name: "out", Aliases: []string{"o"}, Value: "leaderboard.png", Usage: "output file"},
			&cli.IntFlag{Name: "limit", Usage: "number of bars, 0 uses the configured limit"},
		},
		Action: func(c *cli.Context) error {
			return e.writeFile(c.Path("out"), func(w io.Writer) error {
				return e.leaderboard(c).RenderChart(c.Context, w, c.Int("limit"))
			})
		},
	}
}

func (e *env) historyCommand() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "print finished matches",
		Action: func(c *cli.Context) error {
			repo, closeStore, err := e.openStore(c)
			if err != nil {
				return err
			}
			defer func() { _ = closeStore() }()

			games, err := repo.GetGameHistory(c.Context)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "START\tEND\tWINNER\tAO\tAKA")
			for _, g := range games {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", g.StartTime, g.EndTime, g.Winner, g.AoScore, g.AkaScore)
			}
			return tw.Flush()
		},
	}
}

// writeFile writes to a temp file next to path and renames it on success.
func (e *env) writeFile(path string, write func(io.Writer) error) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".dojoctl-*")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = os.Remove(f.Name()) }()

	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	if err := os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(e.out, "wrote %s\n", path)
	return nil
}

func (e *env) printRows(rows []leaderboardModel.LeaderboardRow) {
	tw := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tUSERNAME\tTOTAL\tLAST PLAYED")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", r.Rank, r.Username, r.TotalScore, table.FormatTime(r.LastPlayed))
	}
	_ = tw.Flush()
}
