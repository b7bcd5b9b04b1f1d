package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Drolfothesgnir/drafty/cli"
	"github.com/Drolfothesgnir/drafty/util"
	"github.com/rs/zerolog/log"
)

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGINT,
}

func main() {
	// reading .env config file, the environment overrides it
	config, err := util.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read config")
	}

	util.SetupLogger(config)

	// stop() or a signal catch makes context Done
	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	if err := cli.Execute(ctx, config); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}
