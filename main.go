package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/km-arc/go-xmf/app"
	fwapp "github.com/km-arc/go-xmf/framework/app"
)

func main() {
	application, err := fwapp.New(nil) // loads .env automatically
	if err != nil {
		slog.Error("bootstrap failed", slog.Any("error", err))
		os.Exit(1)
	}

	application.Register(&app.ServiceProvider{})
	if err := application.Boot(); err != nil {
		application.Logger().Error("boot failed", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		application.Logger().Error("server error", slog.Any("error", err))
		os.Exit(1)
	}
}
