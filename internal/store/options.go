package store

import (
	"time"

	"go.uber.org/zap"

	"hotelcore/internal/observability"
	"hotelcore/pkg/domain"
)

// Option configures a Store at construction time.
type Option func(*Store)

// WithLogger replaces the default no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics attaches an operation metrics recorder.
func WithMetrics(rec observability.Recorder) Option {
	return func(s *Store) {
		if rec != nil {
			s.metrics = rec
		}
	}
}

// WithClock overrides the time source. Tests use it to pin timestamps and
// period boundaries.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.nowFn = now
		}
	}
}

// WithStrictLoad makes initialization fail with a ParseError on a corrupt
// persisted document instead of silently reseeding over it.
func WithStrictLoad(strict bool) Option {
	return func(s *Store) { s.strict = strict }
}

// WithSeed replaces the default seed dataset synthesized when the slot holds
// no document.
func WithSeed(seed func(now time.Time) domain.Document) Option {
	return func(s *Store) {
		if seed != nil {
			s.seedFn = seed
		}
	}
}
