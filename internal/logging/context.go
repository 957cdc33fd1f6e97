package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent creates a child logger with a component field
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("component", component).Logger()
	return WithContext(ctx, childLogger)
}

// WithSlot creates a child logger with a slot field
func WithSlot(ctx context.Context, slot int) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Int("slot", slot).Logger()
	return WithContext(ctx, childLogger)
}

// WithLabel creates a child logger with a pane label field
func WithLabel(ctx context.Context, label string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("pane", label).Logger()
	return WithContext(ctx, childLogger)
}

// WithDownloadID creates a child logger with a download_id field
func WithDownloadID(ctx context.Context, id string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("download_id", id).Logger()
	return WithContext(ctx, childLogger)
}
