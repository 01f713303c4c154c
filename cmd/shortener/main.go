package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/avc-dev/snipit/internal/app"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// .env необязателен, переменные окружения процесса имеют приоритет
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx)
}
