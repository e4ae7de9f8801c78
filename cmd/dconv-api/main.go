// @title         dconv API
// @version       0.1.0
// @description   Date conversion over HTTP: now, epoch timestamps and RFC3339 in, RFC3339 UTC/local and epoch millis out

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"dconv/internal/core/clock"
	"dconv/internal/core/convert"
	"dconv/internal/platform/config"
	"dconv/internal/platform/logger"
	phttp "dconv/internal/platform/net/http"

	"dconv/internal/services/api"
)

func main() {
	// bring up logging early
	logger.Init(logger.FromEnv(logger.Options{
		Level:     "info",
		Service:   "dconv-api",
		Component: "api",
	}))
	l := logger.Get()

	// service-scoped config for HTTP etc (DCONV_API_*)
	apiCfg := config.New().Prefix("DCONV_API_")

	// http server (reads DCONV_API_PORT)
	srv := phttp.NewServer(apiCfg)

	opt := api.FromConfig(apiCfg)
	opt.Converter = convert.New(clock.System{})
	opt.Logger = logger.Named("api")
	api.Mount(srv.Router(), opt)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		l.Fatal().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("bye")
}
