package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	_ "github.com/lib/pq"

	adminhdl "github.com/iskandar/reply-notifier/internal/api/handlers/admin"
	commenthdl "github.com/iskandar/reply-notifier/internal/api/handlers/comment"
	"github.com/iskandar/reply-notifier/internal/api/router"
	"github.com/iskandar/reply-notifier/internal/api/server"
	"github.com/iskandar/reply-notifier/internal/config"
	"github.com/iskandar/reply-notifier/internal/db"
	"github.com/iskandar/reply-notifier/internal/identity"
	"github.com/iskandar/reply-notifier/internal/notify"
	jobmsg "github.com/iskandar/reply-notifier/internal/rabbitmq/handlers/job"
	"github.com/iskandar/reply-notifier/internal/rabbitmq/queue"
	commentrepo "github.com/iskandar/reply-notifier/internal/repository/comment"
	jobrepo "github.com/iskandar/reply-notifier/internal/repository/job"
	userrepo "github.com/iskandar/reply-notifier/internal/repository/user"
	backfillsvc "github.com/iskandar/reply-notifier/internal/service/backfill"
	commentsvc "github.com/iskandar/reply-notifier/internal/service/comment"
	dispatchsvc "github.com/iskandar/reply-notifier/internal/service/dispatch"
	"github.com/iskandar/reply-notifier/internal/worker"
	"github.com/iskandar/reply-notifier/pkg/email"
	"github.com/iskandar/reply-notifier/pkg/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	q, err := queue.NewJobQueue(ch)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create job queue")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	database, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := db.RunMigrations(database, cfg.Database.MigrationsPath); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.Database)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	comments := commentrepo.NewRepository(database, cfg.Retry)
	jobs := jobrepo.NewRepository(database)
	users := userrepo.NewRepository(database)

	resolver := identity.NewResolver(users, rdb, cfg.Retry)
	evaluator := notify.NewEvaluator(resolver)
	renderer := notify.NewTemplateRenderer(cfg.Frontend.BaseURL)

	emailClient := email.NewClient(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
	)

	var alerter jobmsg.OpsAlerter
	if cfg.Telegram.Token != "" {
		alerter = telegram.NewClient(cfg.Telegram.Token, cfg.Telegram.ChatID)
	}

	dispatch := dispatchsvc.NewService(jobs, q, rdb)
	commentService := commentsvc.NewService(comments, dispatch, evaluator, resolver, cfg.Thread.MaxDepth)
	backfillService := backfillsvc.NewService(comments, resolver)

	messageHandler := jobmsg.NewHandler(dispatch, renderer, emailClient, cfg.Delivery, alerter)
	dispatcher := worker.NewDispatcher(q, messageHandler, dispatch)

	go dispatcher.Run(ctx, cfg.Retry, cfg.Workers.Count)

	commentHandler := commenthdl.NewHandler(commentService, val, cfg)
	adminHandler := adminhdl.NewHandler(backfillService, dispatch, val, cfg)

	r := router.New(commentHandler, adminHandler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := database.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, s := range database.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
