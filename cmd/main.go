package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/gorilla/mux"
	"github.com/jessevdk/go-flags"

	discordclient "github.com/Dummiesman/MiniDiscordForumSelfmodBot/clients/discord"
	"github.com/Dummiesman/MiniDiscordForumSelfmodBot/config"
	"github.com/Dummiesman/MiniDiscordForumSelfmodBot/handlers"
	"github.com/Dummiesman/MiniDiscordForumSelfmodBot/middleware"
	"github.com/Dummiesman/MiniDiscordForumSelfmodBot/usecases/forum"
	"github.com/Dummiesman/MiniDiscordForumSelfmodBot/utils"
)

type Options struct {
	ConfigPath string `long:"config" default:"config.json" description:"Path to a JSON config file with token and parentChannelId"`
	NoLock     bool   `long:"no-lock" description:"Skip the single-instance lock for the governed forum channel"`
	LockDir    string `long:"lock-dir" description:"Directory for the instance lock file (defaults to the system temp directory)"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		log.Printf("❌ Fatal error: %v", err)
		os.Exit(1)
	}
}

func run(opts Options) error {
	cfg, err := config.LoadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	if !opts.NoLock {
		instanceLock, err := utils.NewInstanceLock(opts.LockDir, cfg.ForumChannelID)
		if err != nil {
			return err
		}
		if err := instanceLock.TryLock(); err != nil {
			return err
		}
		defer func() {
			if err := instanceLock.Unlock(); err != nil {
				log.Printf("⚠️ Failed to release instance lock: %v", err)
			}
		}()
	}

	alertMiddleware := middleware.NewErrorAlertMiddleware(middleware.SlackAlertConfig{
		WebhookURL:  cfg.AlertConfig.SlackWebhookURL,
		Environment: cfg.Environment,
		AppName:     "forumbot",
		LogsURL:     cfg.AlertConfig.ServerLogsURL,
	})

	session, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}

	discordClient := discordclient.NewDiscordClient(session)
	forumUseCase := forum.NewForumUseCase(discordClient, cfg.ForumChannelID)
	eventsHandler := handlers.NewDiscordEventsHandler(session, discordClient, forumUseCase, alertMiddleware)

	if err := eventsHandler.StartBot(); err != nil {
		return err
	}
	defer eventsHandler.StopBot()

	log.Printf("📌 Governing forum channel %s", cfg.ForumChannelID)

	var server *http.Server
	if cfg.Port != "" {
		router := mux.NewRouter()
		handlers.NewHealthHandler(eventsHandler.IsConnected).SetupEndpoints(router)
		server = &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 30 * time.Second,
		}
	}

	return handleGracefulShutdown(server)
}

func handleGracefulShutdown(server *http.Server) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	if server != nil {
		go func() {
			log.Printf("✅ Health and metrics listening on http://localhost%s", server.Addr)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("❌ Server error: %v", err)
			}
		}()
	}

	<-stop
	log.Printf("🛑 Shutdown signal received, cleaning up...")

	if server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("❌ Server shutdown error: %v", err)
		return err
	}

	log.Printf("✅ Server stopped gracefully")
	return nil
}
