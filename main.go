package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/math490/ProjetoTarefas-3B/internal/config"
	"github.com/math490/ProjetoTarefas-3B/internal/models"
	"github.com/math490/ProjetoTarefas-3B/internal/server"
	"github.com/math490/ProjetoTarefas-3B/internal/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	log := newLogger(cfg)

	db, err := openDatabase(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to open database")
	}

	// Schema is created on first run, same as the sqlite file the app
	// has always bootstrapped itself with.
	if err := db.AutoMigrate(&models.User{}, &models.Task{}); err != nil {
		log.WithError(err).Fatal("failed to migrate schema")
	}

	redisCfg := cfg.Redis
	if redisCfg.Addr == "" {
		if cfg.IsProduction() {
			log.Fatal("REDIS_ADDR is required in production")
		}
		// Standalone development mode: run an embedded redis so the
		// binary needs nothing but its sqlite file.
		mr, err := miniredis.Run()
		if err != nil {
			log.WithError(err).Fatal("failed to start embedded redis")
		}
		defer mr.Close()
		redisCfg.Addr = mr.Addr()
		log.WithField("addr", redisCfg.Addr).Info("using embedded redis for sessions")
	}

	store := session.NewStore(redisCfg, cfg.Session.TTL)
	defer store.Close()
	if err := store.Ping(context.Background()); err != nil {
		log.WithError(err).Fatal("failed to connect to redis")
	}

	sessions := session.NewManager(store, cfg.Session.Secret, cfg.Session.TTL)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := server.NewRouter(cfg, db, sessions, log, "templates/*.html")

	srv := &http.Server{
		Addr:         cfg.GetServerAddr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.WithField("addr", srv.Addr).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("forced shutdown")
	}
}

func newLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	if level, err := logrus.ParseLevel(cfg.Server.LogLevel); err == nil {
		log.SetLevel(level)
	}
	return log
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	}

	switch cfg.Database.Driver {
	case "postgres":
		return gorm.Open(postgres.Open(cfg.GetDatabaseDSN()), gormCfg)
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.GetDatabaseDSN()), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}
