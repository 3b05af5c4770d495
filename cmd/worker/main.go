package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"fleet-web/internal/config"
	"fleet-web/internal/database"
	"fleet-web/internal/utils"
	"fleet-web/internal/worker"
)

func main() {
	log := utils.GetLogger()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	db, err := database.NewMySQL(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to mysql")
	}
	defer db.Close()

	redisClient, err := database.NewRedis(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to redis")
	}
	defer redisClient.Close()

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.AsynqRedisAddr,
			Password: cfg.AsynqRedisPassword,
			DB:       cfg.AsynqRedisDB,
		},
		asynq.Config{
			Concurrency: cfg.WorkerConcurrency,
			Queues: map[string]int{
				worker.QueueImports: 6,
				"default":           3,
				"low":               1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(_ context.Context, task *asynq.Task, err error) {
				log.WithError(err).WithField("task", task.Type()).Error("task failed")
			}),
		},
	)

	mux := asynq.NewServeMux()
	worker.RegisterHandlers(mux, db, redisClient, cfg)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		log.Info("shutting down worker")
		srv.Shutdown()
	}()

	log.WithField("concurrency", cfg.WorkerConcurrency).Info("worker starting")
	if err := srv.Run(mux); err != nil {
		log.WithError(err).Fatal("worker stopped")
	}
}
