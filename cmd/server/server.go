package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/gleasonw/lidnd/internal/auth"
	"github.com/gleasonw/lidnd/internal/clients/srd"
	"github.com/gleasonw/lidnd/internal/handlers/httpapi"
	"github.com/gleasonw/lidnd/internal/notify"
	creatureorch "github.com/gleasonw/lidnd/internal/orchestrators/creature"
	encounterorch "github.com/gleasonw/lidnd/internal/orchestrators/encounter"
	"github.com/gleasonw/lidnd/internal/pkg/clock"
	"github.com/gleasonw/lidnd/internal/pkg/idgen"
	redisclient "github.com/gleasonw/lidnd/internal/redis"
	channelrepo "github.com/gleasonw/lidnd/internal/repositories/channels"
	creaturerepo "github.com/gleasonw/lidnd/internal/repositories/creatures"
	encounterrepo "github.com/gleasonw/lidnd/internal/repositories/encounters"
)

// serverConfig is read from the environment.
type serverConfig struct {
	Port            int           `env:"LIDND_PORT" envDefault:"8080"`
	RedisAddr       string        `env:"LIDND_REDIS_ADDR" envDefault:"localhost:6379"`
	IdentityBaseURL string        `env:"LIDND_IDENTITY_BASE_URL" envDefault:"https://discord.com/api"`
	TokenCacheTTL   time.Duration `env:"LIDND_TOKEN_CACHE_TTL" envDefault:"24h"`
	BotToken        string        `env:"LIDND_BOT_TOKEN"`
	ChatAPIBaseURL  string        `env:"LIDND_CHAT_API_BASE_URL"`
	SRDBaseURL      string        `env:"LIDND_SRD_BASE_URL"`
	NotifyQueueSize int           `env:"LIDND_NOTIFY_QUEUE_SIZE" envDefault:"64"`
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the lidnd HTTP server with all configured services.`,
	RunE:  runServer,
}

func runServer(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	var cfg serverConfig
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	client, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() { _ = client.Close() }()

	encounters, err := encounterrepo.NewRedis(&encounterrepo.RedisConfig{Client: client})
	if err != nil {
		return fmt.Errorf("failed to create encounter repository: %w", err)
	}
	creatures, err := creaturerepo.NewRedis(&creaturerepo.RedisConfig{Client: client})
	if err != nil {
		return fmt.Errorf("failed to create creature repository: %w", err)
	}
	channels, err := channelrepo.NewRedis(&channelrepo.RedisConfig{Client: client})
	if err != nil {
		return fmt.Errorf("failed to create channel repository: %w", err)
	}

	queue := notify.NewQueue(cfg.NotifyQueueSize)

	encounterService, err := encounterorch.New(&encounterorch.Config{
		EncounterRepo: encounters,
		CreatureRepo:  creatures,
		IDGenerator:   idgen.NewUUID(""),
		Clock:         clock.New(),
		Notifier:      queue,
		Locker:        encounterorch.NewMutexLocker(),
	})
	if err != nil {
		return fmt.Errorf("failed to create encounter orchestrator: %w", err)
	}

	srdClient, err := srd.New(&srd.Config{BaseURL: cfg.SRDBaseURL})
	if err != nil {
		return fmt.Errorf("failed to create SRD client: %w", err)
	}

	creatureService, err := creatureorch.New(&creatureorch.Config{
		CreatureRepo:  creatures,
		EncounterRepo: encounters,
		IDGenerator:   idgen.NewUUID(""),
		Clock:         clock.New(),
		SRDClient:     srdClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create creature orchestrator: %w", err)
	}

	identityValidator, err := auth.NewHTTPValidator(&auth.HTTPValidatorConfig{
		BaseURL: cfg.IdentityBaseURL,
	})
	if err != nil {
		return fmt.Errorf("failed to create identity validator: %w", err)
	}
	validator, err := auth.NewCachingValidator(&auth.CachingValidatorConfig{
		Next: identityValidator,
		TTL:  cfg.TokenCacheTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to create token cache: %w", err)
	}

	if cfg.BotToken != "" {
		sink, err := notify.NewDiscordSink(&notify.DiscordSinkConfig{
			BotToken: cfg.BotToken,
			BaseURL:  cfg.ChatAPIBaseURL,
		})
		if err != nil {
			return fmt.Errorf("failed to create chat sink: %w", err)
		}
		worker, err := notify.NewWorker(&notify.WorkerConfig{
			Queue:    queue,
			Views:    encounterService,
			Channels: channels,
			Sink:     sink,
		})
		if err != nil {
			return fmt.Errorf("failed to create notification worker: %w", err)
		}
		go worker.Run(ctx)
	} else {
		slog.Info("no bot token configured, chat mirroring disabled")
	}

	handler, err := httpapi.New(&httpapi.Config{
		Encounters: encounterService,
		Creatures:  creatureService,
		Channels:   channels,
		Auth:       validator,
	})
	if err != nil {
		return fmt.Errorf("failed to create HTTP handler: %w", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down HTTP server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown timeout exceeded, forcing close")
			_ = srv.Close()
		} else {
			slog.Info("server stopped gracefully")
		}
		return nil
	case err := <-errChan:
		return err
	}
}
