// Command keygrip generates keys, signs and verifies values, and runs a demo
// server that issues signed cookies with rotation-on-read.
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/dmitrymomot/keygrip/pkg/config"
	"github.com/dmitrymomot/keygrip/pkg/logger"
)

type CLI struct {
	Globals

	Keygen KeygenCmd `cmd:"" help:"Generate random keys."`
	Sign   SignCmd   `cmd:"" help:"Sign a value and print the token."`
	Verify VerifyCmd `cmd:"" help:"Verify a token and print its value and key index."`
	Serve  ServeCmd  `cmd:"" help:"Run a demo HTTP server issuing signed session cookies."`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var cli CLI
	cliCtx := kong.Parse(&cli,
		kong.Name("keygrip"),
		kong.Description("Tamper-evident values with rotating HMAC keys."),
		kong.UsageOnError(),
	)

	log := logger.New(
		logger.WithLevelName(cli.LogLevel),
		logger.WithFormat(logger.Format(cli.LogFormat)),
	)

	if len(cli.EnvFile) > 0 {
		if err := config.LoadEnv(cli.EnvFile...); err != nil {
			log.Error("failed to load env files", logger.Error(err))
			os.Exit(1)
		}
	}

	cliCtx.BindTo(ctx, (*context.Context)(nil))
	cliCtx.BindTo(os.Stdout, (*io.Writer)(nil))
	cliCtx.Bind(log)

	if err := cliCtx.Run(&cli.Globals); err != nil {
		if !errors.Is(err, errInvalidToken) {
			log.Error("command failed", logger.Error(err))
		}
		os.Exit(1)
	}
}
