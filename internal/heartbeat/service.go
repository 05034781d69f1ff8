// Package heartbeat drives periodic keep-alive events for long-lived streams.
package heartbeat

import (
	"context"
	"time"

	"github.com/honeycarbs/github-mcp/pkg/logging"
)

// DefaultInterval is used when no positive interval is configured
const DefaultInterval = 30 * time.Second

// BeatFunc emits one keep-alive; an error ends the loop.
type BeatFunc func(ctx context.Context) error

// Service runs a beat immediately and then once per interval.
type Service struct {
	interval time.Duration
	logger   *logging.Logger
}

// NewService creates a heartbeat Service.
// interval defaults to DefaultInterval if zero.
func NewService(interval time.Duration, logger *logging.Logger) *Service {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Service{
		interval: interval,
		logger:   logger.Named("heartbeat"),
	}
}

// Interval is the resolved period between beats.
func (s *Service) Interval() time.Duration {
	return s.interval
}

// Run beats until ctx is cancelled or beat fails.
func (s *Service) Run(ctx context.Context, beat BeatFunc) error {
	if err := beat(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := beat(ctx); err != nil {
				s.logger.Debug("heartbeat stopped", "err", err)
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
