package store

import "log/slog"

// OptionFunc modifies a Store at construction.
type OptionFunc func(*Store)

// WithLogger sets the logger. If none is provided, slog.Default() is used.
func WithLogger(logger *slog.Logger) OptionFunc {
	return func(s *Store) {
		s.logger = logger
	}
}
