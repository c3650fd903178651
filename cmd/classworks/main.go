package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/yigit/classworks/internal/pkg/helpers"
	"github.com/yigit/classworks/internal/pkg/logger"
	"github.com/yigit/classworks/internal/runner"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := runner.NewApp(os.Stdout, helpers.SystemClock)
	if err := app.RunContext(ctx, os.Args); err != nil {
		// Details were logged where the error happened
		logger.Error().Err(err).Msg("classworks failed")
		stop()
		os.Exit(1)
	}
}
