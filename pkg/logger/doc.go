// Package logger builds slog loggers with functional options and provides
// attribute helpers so field names stay consistent across packages.
//
// # Usage
//
//	import "github.com/dmitrymomot/keygrip/pkg/logger"
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithLevelName("debug"),
//	    logger.WithAttr(logger.Component("keygrip")),
//	)
//	log.Info("cookie re-signed", logger.Cookie("session"), logger.KeyIndex(1))
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally.
package logger
