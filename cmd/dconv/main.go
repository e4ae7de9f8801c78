// Command dconv converts a date (now, epoch s/ms/us/ns or RFC3339) with an
// optional +/- offset into RFC3339 UTC, RFC3339 local and epoch milliseconds
package main

import (
	"context"
	"os"

	"dconv/internal/core/clock"
	"dconv/internal/core/convert"
	"dconv/internal/platform/logger"

	"github.com/google/uuid"
)

func main() {
	logger.Init(logger.FromEnv(logger.Options{
		Level:     "warn",
		Service:   "dconv",
		Component: "cli",
	}))

	ctx := logger.WithRun(context.Background(), uuid.NewString())
	conv := convert.New(clock.System{})

	os.Exit(run(ctx, conv, os.Args[1:], os.Stdout, os.Stderr))
}
