package app

import (
	"log/slog"

	"github.com/thenoetrevino/tablero/internal/ids"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	generator   ids.Generator
	logger      *slog.Logger
	onSaveError func(error)
}

// WithGenerator overrides the id generator chosen by the config
func WithGenerator(gen ids.Generator) Option {
	return func(cfg *appConfig) {
		cfg.generator = gen
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// OnSaveError registers a callback for failed autosaves
func OnSaveError(fn func(error)) Option {
	return func(cfg *appConfig) {
		cfg.onSaveError = fn
	}
}
