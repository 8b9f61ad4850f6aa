package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"QuantSentinel/internal/analyzer"
	"QuantSentinel/internal/config"
	"QuantSentinel/internal/logger"
	"QuantSentinel/internal/notifier"
	"QuantSentinel/internal/provider"
	"QuantSentinel/internal/scheduler"
	"QuantSentinel/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	// Missing .env is fine, real deployments set the environment directly.
	_ = godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config validation: %v", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Env); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()
	zlog := logger.Get()
	zlog.Info("QuantSentinel starting...")

	// Data provider
	var p provider.Provider
	switch cfg.DataSource.Provider {
	case "alphavantage":
		p = provider.NewAlphaVantage(cfg.DataSource.APIKey, cfg.Proxy)
	default:
		p = provider.NewYahoo(cfg.Proxy)
	}
	zlog.Infow("data provider ready", "provider", p.Name())

	params := analyzer.DefaultParams()
	params.LookbackDays = cfg.DataSource.LookbackDays
	an := analyzer.New(p, params)

	// Storage. On failure the bot keeps running without history or journal.
	var rec store.AnalysisRecorder = store.Noop{}
	st, err := store.Open(cfg.Database.SQLitePath)
	if err != nil {
		zlog.Warnw("open database failed, history and journal disabled",
			"path", cfg.Database.SQLitePath, "error", err)
		st = nil
	} else {
		defer st.Close()
		rec = st

		// Seed the watchlist from config on first run.
		if symbols, err := st.Watchlist(); err == nil && len(symbols) == 0 {
			if err := st.ReplaceWatchlist(cfg.Watchlist); err != nil {
				zlog.Warnw("seed watchlist", "error", err)
			}
		}
	}

	// Telegram
	var tn *notifier.TelegramNotifier
	if cfg.TelegramEnabled() {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	} else {
		zlog.Warn("telegram not configured, running without notifications")
	}

	gate, err := notifier.NewAlertGate(cfg.Alerts.StateFile)
	if err != nil {
		zlog.Fatalw("init alert gate", "path", cfg.Alerts.StateFile, "error", err)
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, an, st, rec, tn, gate, cfg)
	if err := sched.RegisterAll(cfg.Schedule.DailyCron); err != nil {
		zlog.Fatalw("register cron tasks", "error", err)
	}
	sched.Start()
	defer sched.Stop()

	if tn != nil {
		go tn.StartPolling(ctx, sched.HandleCommand)
		zlog.Info("telegram polling started")
	}

	if os.Getenv("RUN_ON_START") == "true" {
		zlog.Info("RUN_ON_START enabled, executing scan now")
		go sched.RunScanNow()
	}

	zlog.Info("QuantSentinel is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	zlog.Info("shutdown signal received, stopping...")
	cancel()
	zlog.Info("QuantSentinel stopped")
}
