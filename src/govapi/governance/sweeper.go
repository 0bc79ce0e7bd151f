package governance

import (
	"context"
	"log"
	"time"

	"github.com/openlearn-dev/community-gov/src/govapi/types"
)

// Sweep closes every active proposal whose voting window has lapsed.
// Safe to run from a timer and concurrently with on-demand close
// checks; CloseExpired is idempotent.
func (s *Service) Sweep(ctx context.Context) {
	var ids []uint64
	err := s.db.WithContext(ctx).Model(&types.Proposal{}).
		Where("status = ? AND voting_ends_at <= ?", types.StatusActive, s.now().UTC()).
		Pluck("id", &ids).Error
	if err != nil {
		log.Printf("sweep: list expired proposals: %v", err)
		return
	}
	for _, id := range ids {
		if _, err := s.CloseExpired(ctx, id); err != nil {
			log.Printf("sweep: close proposal %d: %v", id, err)
		}
	}
}

// SweeperService runs Sweep on a fixed interval until the context is
// cancelled.
func (s *Service) SweeperService(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("governance sweeper running every %s", interval)
	s.Sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}
