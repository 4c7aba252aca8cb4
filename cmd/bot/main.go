package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/dlchamp/channel-lock-bot/internal/config"
	"github.com/dlchamp/channel-lock-bot/internal/database"
	"github.com/dlchamp/channel-lock-bot/internal/discord"
	"github.com/dlchamp/channel-lock-bot/internal/domain/service"
	"github.com/dlchamp/channel-lock-bot/internal/handlers"
	"github.com/dlchamp/channel-lock-bot/migrator/sqlite"
	"github.com/dlchamp/channel-lock-bot/pkg/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()
	if cfg.DiscordToken == "" {
		log.Fatal("DISCORD_TOKEN was not supplied")
	}

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		zlog.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	zlog.Info("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		zlog.Fatal("failed to run migrations", zap.Error(err))
	}

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		zlog.Fatal("failed to create discord session", zap.Error(err))
	}
	session.Identify.Intents = discordgo.IntentGuilds

	dm := database.NewInstance(db)
	gateway := discord.NewClient(session)
	services := service.NewInstance(dm, gateway, zlog)

	// Register guilds that join while the bot is running.
	session.AddHandler(func(_ *discordgo.Session, g *discordgo.GuildCreate) {
		if err := services.Config.EnsureGuild(g.ID); err != nil {
			zlog.Error("failed to register guild", zap.String("guild_id", g.ID), zap.Error(err))
		}
	})

	if err := session.Open(); err != nil {
		zlog.Fatal("failed to connect to discord", zap.Error(err))
	}
	defer session.Close()

	zlog.Info("connected to discord",
		zap.String("user", session.State.User.String()),
		zap.Int("guilds", len(session.State.Guilds)),
	)

	handler := handlers.New(session, services.Config, zlog)
	if err := handler.Register(); err != nil {
		zlog.Fatal("failed to register commands", zap.Error(err))
	}

	// Pick up guilds that were added while the bot was offline.
	services.Config.SyncGuilds()

	services.Scheduler.Start()
	defer services.Scheduler.Stop()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	zlog.Info("shutting down")
}
