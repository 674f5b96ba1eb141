package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/aturgenev/minimart/internal/app"
	"github.com/rs/zerolog/log"
	"go.uber.org/zap"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app := app.NewProduct()
	err := app.Start(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Can't start product service")
		zap.L().Fatal("Can't start product service: ", zap.Error(err))
	}

	err = app.Wait(ctx, cancel)
	if err != nil {
		zap.L().Fatal("All systems closed with errors. LastError:", zap.Error(err))
	}

	zap.L().Info("All systems closed without errors")
}
