// Package app wires the configured dependencies shared by the CLI commands
// and the HTTP server.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/mathstudio/internal/config"
	"github.com/abhisek/mathstudio/internal/engine"
	"github.com/abhisek/mathstudio/internal/llm"
	"github.com/abhisek/mathstudio/internal/metrics"
	"github.com/abhisek/mathstudio/internal/problemgen"
	"github.com/abhisek/mathstudio/internal/session"
	"github.com/abhisek/mathstudio/internal/store"
)

// App holds the long-lived dependencies of one process.
type App struct {
	Config  *config.Config
	Logger  *zap.Logger
	Store   *store.Store
	Rand    *problemgen.LockedRand
	Engine  *engine.Engine
	Pool    *engine.Pool
	Metrics *metrics.Metrics
}

// Open opens the store, seeds the random source and loads the approved
// extension problems into the pool.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	dbPath, err := resolveDBPath(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rnd := problemgen.NewLockedRand(problemgen.NewRand(seed))

	a := &App{
		Config:  cfg,
		Logger:  logger,
		Store:   st,
		Rand:    rnd,
		Engine:  engine.New(rnd),
		Pool:    engine.NewPool(nil),
		Metrics: metrics.New(),
	}
	if err := a.ReloadPool(ctx); err != nil {
		st.Close()
		return nil, err
	}

	logger.Debug("app opened",
		zap.String("db", dbPath),
		zap.Uint64("seed", seed),
		zap.Int("extension_problems", a.Pool.Len()))
	return a, nil
}

func resolveDBPath(p string) (string, error) {
	if p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// Close releases the store.
func (a *App) Close() error {
	return a.Store.Close()
}

// Extension returns the injection settings, or nil when extension problems
// are disabled.
func (a *App) Extension() *engine.Extension {
	ext := a.Config.Extension
	if !ext.Enabled || ext.Ratio == 0 {
		return nil
	}
	return &engine.Extension{Source: a.Pool, Ratio: ext.Ratio}
}

// ReloadPool replaces the pool with the currently approved problems.
func (a *App) ReloadPool(ctx context.Context) error {
	ps, err := a.Store.ProblemRepo().ApprovedProblems(ctx, "", nil)
	if err != nil {
		return fmt.Errorf("load extension problems: %w", err)
	}
	a.Pool.Reset(ps)
	return nil
}

// NewSession starts a practice session recording to the store and the
// metrics collectors.
func (a *App) NewSession(opts ...session.Option) *session.Session {
	base := []session.Option{
		session.WithExtension(a.Extension()),
		session.WithRecorder(a.Store.EventRepo()),
		session.WithObserver(a.Metrics),
		session.WithLogger(a.Logger),
	}
	return session.New(a.Engine, a.Rand, append(base, opts...)...)
}

// Drafter builds an LLM-backed drafter from the llm config. Requests are
// recorded in the store.
func (a *App) Drafter(ctx context.Context) (*problemgen.Drafter, error) {
	cfg := a.Config.LLM
	cfg.DiscoverAPIKey()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	provider, err := llm.NewProvider(ctx, cfg, a.Store.EventRepo(), a.Logger)
	if err != nil {
		return nil, err
	}
	return problemgen.NewDrafter(provider, problemgen.DefaultConfig()), nil
}
