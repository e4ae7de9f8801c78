// Package api provides the HTTP API for dconv
package api

import (
	"time"

	"dconv/internal/core/convert"
	"dconv/internal/modkit"
	"dconv/internal/platform/config"
	"dconv/internal/platform/logger"
	phttp "dconv/internal/platform/net/http"
	"dconv/internal/platform/net/middleware"

	convertmod "dconv/internal/services/api/convert/module"
	"dconv/internal/services/api/docs"
	metamod "dconv/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config        config.Conf
	Converter     *convert.Converter
	Logger        *logger.Logger
	EnableSwagger bool
	CORSOrigins   []string
	Slow          time.Duration
	Timeout       time.Duration
}

// FromConfig reads API options from cfg (usually the DCONV_API_ scope)
func FromConfig(cfg config.Conf) Options {
	return Options{
		Config:        cfg,
		EnableSwagger: cfg.MayBool("SWAGGER", false),
		CORSOrigins:   cfg.MayCSV("CORS_ORIGINS", []string{"*"}),
		Slow:          cfg.MayDuration("SLOW", 500*time.Millisecond),
		Timeout:       cfg.MayDuration("TIMEOUT", 30*time.Second),
	}
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	if opt.Converter == nil {
		opt.Converter = convert.New(nil)
	}
	if opt.Logger == nil {
		opt.Logger = logger.Named("api")
	}

	deps := modkit.Deps{
		Log:       opt.Logger,
		Cfg:       opt.Config,
		Converter: opt.Converter,
		StartedAt: time.Now(),
	}

	mods := []modkit.Module{
		metamod.New(deps),
		convertmod.New(deps),
	}

	r.NotFound(phttp.NotFound)
	r.MethodNotAllowed(phttp.MethodNotAllowed)

	phttp.MountSwagger(r, opt.EnableSwagger, docs.Doc(), docs.StampVersion)

	stack := middleware.Defaults(middleware.Options{
		CORS:    middleware.CORSOptions{AllowedOrigins: opt.CORSOrigins},
		Slow:    opt.Slow,
		Timeout: opt.Timeout,
	})
	modkit.MountAPIV1(r, stack, mods...)

	for _, m := range mods {
		opt.Logger.Debug().Str("module", m.Name()).Str("prefix", "/api/v1"+m.Prefix()).Msg("module mounted")
	}
}
