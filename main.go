package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"stockroom/internal/app"
	"stockroom/internal/cache"
	"stockroom/internal/config"
	"stockroom/internal/database"
	"stockroom/pkg/rabbitmq"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

func main() {
	cliApp := &cli.App{
		Name:  "stockroom",
		Usage: "inventory backend for users, products and stock batches",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a config file (yaml, json, toml or env)",
				EnvVars: []string{"STOCKROOM_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "create or update the database schema",
				Action: migrate,
			},
		},
		DefaultCommand: "serve",
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.WithError(err).Fatal("stockroom exited")
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(viper.New(), c.String("config"))
	if err != nil {
		return nil, err
	}
	setupLogging(cfg)
	return cfg, nil
}

func setupLogging(cfg *config.Config) {
	if cfg.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithField("level", cfg.LogLevel).Warn("unknown LOG_LEVEL, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

func migrate(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return err
	}

	log.WithField("driver", cfg.DBDriver).Info("schema migrated")
	return nil
}

func serve(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger := log.StandardLogger()

	// --- Database ---
	db, err := database.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return err
	}

	deps := app.Deps{DB: db, Logger: logger}

	// --- Redis token denylist ---
	if cfg.RedisAddr != "" {
		redisClient := cache.New(cache.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(c.Context); err != nil {
			logger.WithError(err).Warn("redis unavailable, logout will not revoke tokens until it recovers")
		}
		deps.Denylist = cache.NewTokenDenylist(redisClient)
	}

	// --- RabbitMQ events ---
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{
			URL:   cfg.RabbitMQURL,
			Queue: cfg.RabbitMQQueue,
		}, logger)
		if err != nil {
			return err
		}
		defer mqClient.Close()
		deps.Publisher = mqClient
	}

	server := app.New(cfg, deps)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.WithField("addr", cfg.AppPort).Info("starting server")
		if err := server.Listen(cfg.AppPort); err != nil {
			return errors.Wrap(err, "server failed")
		}
		return nil
	})

	if mqClient != nil {
		g.Go(func() error {
			return mqClient.Consume(ctx, app.AuditEvents(logger))
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down server")
		return server.Shutdown()
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("server gracefully stopped")
	return nil
}
