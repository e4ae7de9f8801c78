package modkit

import (
	"time"

	"dconv/internal/core/convert"
	"dconv/internal/platform/config"
	"dconv/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log       *logger.Logger
	Cfg       config.Conf
	Converter *convert.Converter
	StartedAt time.Time
}
