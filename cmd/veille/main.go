package main

import (
	"context"
	"log"
	"time"

	"go-veille-stages/internal/config"
	"go-veille-stages/internal/dedup"
	"go-veille-stages/internal/fetch"
	"go-veille-stages/internal/source"
	"go-veille-stages/internal/telegram"
	"go-veille-stages/internal/watch"
)

func main() {
	//load config
	cfg := config.Load("")
	log.Printf("🔧 Config loaded. Seen store: %s | Archive dir: %s", cfg.SeenPath, cfg.ArchiveDir)

	//init telegram bot, or run silent when credentials are absent
	var notifier watch.Notifier = telegram.Disabled{}
	if cfg.NotifierEnabled() {
		bot, err := telegram.NewBot(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("❌ Failed to init Telegram bot, continuing without: %v", err)
		} else {
			log.Println("🤖 Telegram bot initialized.")
			notifier = bot
		}
	}

	sources := source.Registry()
	for _, src := range sources {
		if err := src.Validate(); err != nil {
			log.Fatalf("❌ Bad source descriptor: %v", err)
		}
	}

	//shared retrying client, one request per second per host
	client := fetch.New(fetch.Config{
		Timeout:       cfg.FetchTimeout(),
		Attempts:      cfg.FetchAttempts,
		SkipTLSVerify: cfg.SkipTLSVerify,
	}, fetch.NewHostLimiter(1, 2))

	//whole-run safety net; individual sources have their own budget
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	w := watch.New(watch.Config{
		Sources:     sources,
		Fetcher:     client,
		Store:       dedup.NewFileStore(cfg.SeenPath),
		Notifier:    notifier,
		ArchiveDir:  cfg.ArchiveDir,
		MaxParallel: cfg.MaxParallel,
	})

	if _, err := w.Run(ctx); err != nil {
		log.Fatalf("❌ Watch failed: %v", err)
	}
}
