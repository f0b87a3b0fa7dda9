// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/favicache/internal/application/port"
	"github.com/bnema/favicache/internal/application/usecase"
	"github.com/bnema/favicache/internal/cli/styles"
	"github.com/bnema/favicache/internal/domain/build"
	"github.com/bnema/favicache/internal/infrastructure/config"
	"github.com/bnema/favicache/internal/infrastructure/favicon"
	"github.com/bnema/favicache/internal/infrastructure/filesystem"
	"github.com/bnema/favicache/internal/infrastructure/xdg"
	"github.com/bnema/favicache/internal/logging"
)

// Options are per-invocation overrides taken from global flags.
type Options struct {
	// CacheDir replaces cache.dir from the config file when set.
	CacheDir string
	// Verbose forces debug logging.
	Verbose bool
}

// App holds CLI dependencies.
type App struct {
	Config     *config.Config
	ConfigFile string
	Theme      *styles.Theme
	BuildInfo  build.Info
	XDG        port.XDGPaths
	Store      port.IconStore

	// Use cases
	GatherUC  *usecase.GatherCandidatesUseCase
	ResolveUC *usecase.ResolveFaviconUseCase
	EncodeUC  *usecase.EncodeFaviconUseCase
	ExportUC  *usecase.ExportFaviconUseCase
	InspectUC *usecase.InspectCacheUseCase

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp(opts Options) (*App, error) {
	xdgPaths := xdg.New()

	cfg, cfgFile, cfgErr := loadConfig()
	if cfgErr != nil {
		// The configured logger does not exist yet; honour the env overrides only.
		envLogger := logging.NewFromEnv()
		envLogger.Warn().Err(cfgErr).Msg("configuration unavailable, using defaults")
	}
	if opts.CacheDir != "" {
		cfg.Cache.Dir = opts.CacheDir
	}
	if err := fillDirectories(cfg, xdgPaths); err != nil {
		return nil, err
	}

	logLevel := cfg.Logging.Level
	if opts.Verbose {
		logLevel = "debug"
	}
	logger, logCleanup, logErr := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel(logLevel), Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
		logging.FileConfig{
			Enabled:    cfg.Logging.EnableFileLog,
			LogDir:     cfg.Logging.LogDir,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
			Compress:   cfg.Logging.Compress,
		},
	)
	if logErr != nil {
		logger.Warn().Err(logErr).Msg("file logging disabled")
	}
	ctx := logging.WithComponent(logging.WithContext(context.Background(), logger), "cli")
	logger.Debug().Str("cache_dir", cfg.Cache.Dir).Str("config", cfgFile).Msg("favicache starting")

	httpOpts := favicon.Options{
		UserAgent:        cfg.HTTP.UserAgent,
		MaxIconBytes:     cfg.HTTP.MaxIconBytes,
		MaxDocumentBytes: cfg.HTTP.MaxDocumentBytes,
	}
	client := favicon.NewHTTPClient(cfg.Timeout())
	store := favicon.NewDiskStore(cfg.Cache.Dir)
	fs := filesystem.New()

	gatherUC := usecase.NewGatherCandidatesUseCase(favicon.NewDocumentScanner(client, httpOpts))
	resolveUC := usecase.NewResolveFaviconUseCase(gatherUC, store, favicon.NewFetcher(client, httpOpts))

	return &App{
		Config:     cfg,
		ConfigFile: cfgFile,
		Theme:      styles.NewTheme(),
		XDG:        xdgPaths,
		Store:      store,
		GatherUC:   gatherUC,
		ResolveUC:  resolveUC,
		EncodeUC:   usecase.NewEncodeFaviconUseCase(fs),
		ExportUC:   usecase.NewExportFaviconUseCase(resolveUC, favicon.NewPNGExporter()),
		InspectUC:  usecase.NewInspectCacheUseCase(store, fs, store.Dir()),
		ctx:        ctx,
		logCleanup: logCleanup,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations.
// A broken config file falls back to defaults so resolution keeps working.
func loadConfig() (*config.Config, string, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return config.DefaultConfig(), "", err
	}

	if err := mgr.Load(); err != nil {
		return config.DefaultConfig(), mgr.ConfigFilePath(), err
	}

	return mgr.Get(), mgr.GetConfigFile(), nil
}

// fillDirectories sets the XDG defaults for directories left empty.
func fillDirectories(cfg *config.Config, paths port.XDGPaths) error {
	if cfg.Cache.Dir == "" {
		dir, err := paths.IconCacheDir()
		if err != nil {
			return fmt.Errorf("resolve icon cache dir: %w", err)
		}
		cfg.Cache.Dir = dir
	}
	if cfg.Logging.LogDir == "" {
		dir, err := paths.LogDir()
		if err != nil {
			return fmt.Errorf("resolve log dir: %w", err)
		}
		cfg.Logging.LogDir = dir
	}
	return nil
}
