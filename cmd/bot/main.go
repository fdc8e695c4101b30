package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.etcd.io/bbolt"

	"launchbot/internal/calendar"
	"launchbot/internal/config"
	"launchbot/internal/dal"
	"launchbot/internal/dal/migrations"
	"launchbot/internal/rocketlaunch"
	"launchbot/internal/schedule"
	"launchbot/internal/service"
	"launchbot/internal/telegram"
	"launchbot/pkg/clock"
)

func main() {
	ctx := context.Background()

	conf, err := config.NewConfig(ctx)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	log := mustLogger(conf.Dev)

	db, err := bbolt.Open(conf.DBPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		log.Error("Failed to open database", "path", conf.DBPath, "error", err)
		os.Exit(1)
	}
	if err := migrations.RunMigrations(db, log); err != nil {
		log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	store, err := dal.NewBoltDB(db, log)
	if err != nil {
		log.Error("Failed to initialize store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	bot, err := telegram.NewBot(conf.TelegramToken, conf.AdminChats, log)
	if err != nil {
		log.Error("Failed to create telegram bot", "error", err)
		os.Exit(1)
	}

	clk := clock.New()
	feed := rocketlaunch.NewClient(conf.FeedURL, log)
	subscriptionsSvc := service.NewSubscriptions(store, log)
	notificationsSvc := service.NewNotifications(
		store, store, bot.Sender(log), schedule.Tiers(conf.NotifyThresholds), clk, log)

	var calendarSync service.CalendarSync
	if conf.CalendarEnabled() {
		client, err := calendar.NewClient(ctx, conf.CalendarCredentialsPath, conf.CalendarID)
		if err != nil {
			log.Error("Failed to create calendar client", "error", err)
			os.Exit(1)
		}
		calendarSync = calendar.NewSyncService(client, clk, log)
		log.Info("Calendar sync enabled", "calendarID", conf.CalendarID)
	}

	worker := service.NewWorker(feed, store, notificationsSvc, calendarSync, clk, conf.BackoffDelay, log)

	gracefulCtx, forceCtx := shutdownContexts(log)

	wg := &sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		worker.Run(gracefulCtx)
	}()

	log.Info("Starting bot")
	if err := bot.Start(gracefulCtx, subscriptionsSvc, notificationsSvc); err != nil {
		log.Error("Bot stopped with error", "error", err)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("Stopped bot")
	case <-forceCtx.Done():
		log.Warn("Forced exit before worker finished")
		os.Exit(1)
	}
}

// shutdownContexts installs the staged signal handling: the first SIGINT or
// SIGTERM cancels the graceful context, the second only logs, the third
// cancels the force context so a wedged shutdown can still be escaped.
func shutdownContexts(log *slog.Logger) (graceful, force context.Context) {
	gracefulCtx, gracefulCancel := context.WithCancel(context.Background())
	forceCtx, forceCancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Info("Shutting down, send the signal twice more to force exit")
		gracefulCancel()

		<-sigCh
		log.Warn("Still shutting down, one more signal forces exit")

		<-sigCh
		forceCancel()
	}()

	return gracefulCtx, forceCtx
}

func mustLogger(dev bool) *slog.Logger {
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	if dev {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	return slog.New(handler)
}
