package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/auth-service/internal/repository"
)

// RevocationSweeper periodically purges denylist entries whose tokens have expired.
// An expired token already fails validation, so its entry is no longer needed.
type RevocationSweeper struct {
	revoked  repository.RevokedTokenRepository
	interval time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

// NewRevocationSweeper builds a sweeper running every interval.
func NewRevocationSweeper(revoked repository.RevokedTokenRepository, interval time.Duration, logger *zap.Logger) *RevocationSweeper {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RevocationSweeper{revoked: revoked, interval: interval, logger: logger, now: time.Now}
}

// Run sweeps until ctx is cancelled. A non-positive interval returns immediately.
func (s *RevocationSweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("revocation sweeper started", zap.Duration("interval", s.interval))
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("revocation sweeper stopped")
			return
		case <-ticker.C:
			if _, err := s.SweepOnce(ctx); err != nil && ctx.Err() == nil {
				s.logger.Error("revocation sweep failed", zap.Error(err))
			}
		}
	}
}

// SweepOnce deletes entries that expired before now and reports how many were removed.
func (s *RevocationSweeper) SweepOnce(ctx context.Context) (int64, error) {
	removed, err := s.revoked.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		s.logger.Info("revocation sweep", zap.Int64("removed", removed))
	}
	return removed, nil
}
