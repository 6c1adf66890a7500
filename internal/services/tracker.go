package tourguide

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Периодическое отслеживание всех пользователей
type Tracker struct {
	tourGuide *TourGuideService
	interval  time.Duration
	logger    *zap.Logger
}

func NewTracker(tourGuide *TourGuideService, interval time.Duration, logger *zap.Logger) *Tracker {
	return &Tracker{tourGuide, interval, logger}
}

// Run блокирует до отмены ctx. Первый проход запускается сразу.
func (t *Tracker) Run(ctx context.Context) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		t.TrackOnce(ctx)
		select {
		case <-ctx.Done():
			t.logger.Info("Tracker stopping")
			return
		case <-ticker.C:
		}
	}
}

func (t *Tracker) TrackOnce(ctx context.Context) {
	start := time.Now()
	users, err := t.tourGuide.GetAllUsers(ctx)
	if err != nil {
		t.tourGuide.Log("Get users", "Tracker", err)
		return
	}
	t.logger.Debug("Begin tracker", zap.Int("users", len(users)))
	if err := t.tourGuide.TrackAllUsers(ctx, users); err != nil {
		t.tourGuide.Log("Track users", "Tracker", err)
	}
	t.logger.Debug("Tracker pass finished",
		zap.Int("users", len(users)),
		zap.Duration("elapsed", time.Since(start)),
	)
}
