package main

import (
	"os"

	"bizmanage/backend/foundation/web"
	"bizmanage/backend/internal/auth"
	"bizmanage/backend/internal/commands"
	"bizmanage/backend/internal/pkg/config"
	"bizmanage/backend/internal/pkg/repository/postgresql"
	"bizmanage/backend/internal/router"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Error("loading config")
		os.Exit(1)
	}
	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	postgresDB := postgresql.New(
		cfg.DBUsername,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.DisableTLS,
		cfg.Debug,
	)

	redisDB := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	commands.MigrateUP(postgresDB)

	authenticator := auth.New(cfg.JWTKey)

	app := web.NewApp()

	r := router.NewRouter(app, postgresDB, redisDB, cfg.Port, authenticator, cfg.BaseUrl)

	logrus.WithField("port", cfg.Port).Info("starting server")
	if err := r.Init(); err != nil {
		logrus.WithError(err).Error("server stopped")
		os.Exit(1)
	}
}
