package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskcal/internal/storage"
	"github.com/sandeepkv93/taskcal/internal/store"
	"github.com/sandeepkv93/taskcal/internal/update"
	"github.com/sandeepkv93/taskcal/internal/watcher"
	"golang.org/x/term"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	storage    string
	storePath  string

	cfg        update.RuntimeConfig
	logger     *slog.Logger
	logFile    *os.File
	kv         storage.KV
	store      *store.Store
	now        func() time.Time
	isTerminal func() bool
}

func newApp() *app {
	return &app{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
	}
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "taskcal", "config.yaml")
}

// setup resolves config as defaults, then file, then env, then flags, and
// opens the store. Warnings go to stderr.
func (a *app) setup(ctx context.Context, stderr io.Writer) error {
	path := a.configPath
	if path == "" {
		path = defaultConfigPath()
	}
	cfg, err := update.LoadConfigFile(path, update.DefaultRuntimeConfig())
	if err != nil {
		return err
	}
	cfg = update.RuntimeConfigFromEnv(cfg)
	if a.storage != "" {
		cfg.Storage = strings.ToLower(a.storage)
	}
	if a.storePath != "" {
		cfg.StorePath = a.storePath
	}
	a.cfg = cfg
	a.openLogger(stderr)

	location := cfg.StoreLocation()
	if cfg.Storage == storage.BackendSQLite {
		if err := os.MkdirAll(filepath.Dir(location), 0o755); err != nil {
			return fmt.Errorf("create store dir: %w", err)
		}
	}
	kv, err := storage.Open(cfg.Storage, location)
	if err != nil {
		return err
	}
	a.kv = kv
	a.store = store.New(kv, store.WithKey(cfg.StoreKey), store.WithLogger(a.logger))
	if err := a.store.Load(ctx); err != nil {
		return err
	}
	a.logger.Info("store opened", "backend", cfg.Storage, "path", location, "tasks", a.store.Len())
	return nil
}

// openLogger keeps the discard logger when the log file cannot be opened.
func (a *app) openLogger(stderr io.Writer) {
	if strings.TrimSpace(a.cfg.LogFile) == "" {
		return
	}
	f, err := os.OpenFile(a.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(stderr, "taskcal: logging disabled: %v\n", err)
		return
	}
	a.logFile = f
	a.logger = slog.New(slog.NewJSONHandler(f, nil))
}

func (a *app) close() {
	if a.kv != nil {
		_ = a.kv.Close()
		a.kv = nil
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
}

func (a *app) runTUI(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := update.NewModel(a.store, a.cfg,
		update.WithContext(ctx),
		update.WithLogger(a.logger),
		update.WithClock(a.now),
	)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if a.cfg.Watch {
		go a.startTUIWatcher(ctx, p)
	}

	_, err := p.Run()
	return err
}

// startTUIWatcher is best effort; the TUI works without live reload.
func (a *app) startTUIWatcher(ctx context.Context, p *tea.Program) {
	fileKV, ok := a.kv.(*storage.FileKV)
	if !ok {
		a.logger.Warn("watch requires the file backend", "backend", a.cfg.Storage)
		return
	}
	w, err := watcher.New([]string{fileKV.Path(a.cfg.StoreKey)}, func() {
		p.Send(update.ReloadMsg{})
	})
	if err != nil {
		a.logger.Warn("watcher disabled", "err", err)
		return
	}
	defer w.Close()
	w.Run(ctx, func(err error) {
		a.logger.Warn("watcher error", "err", err)
		p.Send(update.AppErrorMsg{Err: fmt.Errorf("watch: %w", err)})
	})
}
