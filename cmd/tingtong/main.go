package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/sandeepkv93/tingtong/internal/app"
	"github.com/sandeepkv93/tingtong/internal/config"
	"github.com/sandeepkv93/tingtong/internal/lifecycle"
	"github.com/sandeepkv93/tingtong/internal/logger"
	"github.com/sandeepkv93/tingtong/internal/notify"
	"github.com/sandeepkv93/tingtong/internal/scheduler"
	"github.com/sandeepkv93/tingtong/internal/storage"
	"github.com/sandeepkv93/tingtong/internal/sweeper"
	"github.com/sandeepkv93/tingtong/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tingtong failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfgPath, err := config.Path()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	logPath := cfg.LogPath
	if logPath == "" {
		logPath = logger.DefaultPath()
	}
	log, err := logger.New(logPath, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	store, err := openStore(cfg, log)
	if err != nil {
		return err
	}
	defer store.Close()

	engine := scheduler.NewEngine(cfg.SchedulerBuffer)
	monitor := lifecycle.NewMonitor()
	presenter := notify.NewPresenter(
		systemNotifier(cfg),
		chimePlayer(cfg),
		notify.NewFeed(),
		monitor.Visible,
		presenterPolicy(cfg),
		log,
	)

	a := app.New(app.Options{
		Store:     store,
		Engine:    engine,
		Presenter: presenter,
		Monitor:   monitor,
		Logger:    log,
		ShareBase: cfg.ShareBaseURL,
	})
	a.Load(ctx)

	// An inbound share link may arrive as the only CLI argument.
	if len(os.Args) > 1 {
		if _, err := a.AcceptShare(ctx, os.Args[1]); err != nil {
			log.Warn("share link rejected", zap.String("url", os.Args[1]), zap.Error(err))
		}
	}

	engine.Start()
	defer engine.Stop()
	a.ScheduleAll(ctx)

	sw := sweeper.New(time.Duration(cfg.SweepIntervalSec)*time.Second, func(time.Time) {
		a.SweepOnce(ctx)
	})
	sw.Start()
	defer sw.Stop()

	program := tea.NewProgram(
		update.NewModel(a, monitor),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

func openStore(cfg config.Config, log *zap.Logger) (storage.Store, error) {
	path := cfg.DBPath
	if path == "" {
		dataDir, err := os.UserConfigDir()
		if err != nil {
			return storage.NewMemoryStore(), nil
		}
		path = filepath.Join(dataDir, "tingtong", "tingtong.db")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	store, err := storage.OpenSQLite(path)
	if err != nil {
		// Persistence failures degrade to a memory-only session.
		log.Warn("sqlite unavailable, running in memory", zap.String("path", path), zap.Error(err))
		return storage.NewMemoryStore(), nil
	}
	return store, nil
}

func systemNotifier(cfg config.Config) notify.SystemNotifier {
	if !cfg.SystemNotifications {
		return notify.NoopSystemNotifier{}
	}
	return notify.ExecSystemNotifier{}
}

func chimePlayer(cfg config.Config) notify.ChimePlayer {
	if !cfg.AudioCues {
		return notify.NoopChimePlayer{}
	}
	return notify.ExecChimePlayer{}
}

func presenterPolicy(cfg config.Config) notify.Policy {
	p := notify.DefaultPolicy()
	if cfg.SystemUrgentSec > 0 {
		p.SystemUrgentClose = time.Duration(cfg.SystemUrgentSec) * time.Second
	}
	if cfg.SystemRoutineSec > 0 {
		p.SystemRoutineClose = time.Duration(cfg.SystemRoutineSec) * time.Second
	}
	if cfg.FeedUrgentSec > 0 {
		p.FeedUrgentExpire = time.Duration(cfg.FeedUrgentSec) * time.Second
	}
	if cfg.FeedRoutineSec > 0 {
		p.FeedRoutineExpire = time.Duration(cfg.FeedRoutineSec) * time.Second
	}
	if cfg.ForegroundVolume > 0 {
		p.ForegroundVolume = cfg.ForegroundVolume
	}
	if cfg.BackgroundVolume > 0 {
		p.BackgroundVolume = cfg.BackgroundVolume
	}
	return p
}
