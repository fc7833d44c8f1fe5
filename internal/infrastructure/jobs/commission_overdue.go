package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
	"servicehub.backend/pkg/logger"
)

// overdueSweeper is the slice of the billing usecase the job needs.
type overdueSweeper interface {
	RunOverdueSweep(ctx context.Context, now time.Time) (int, error)
}

// CommissionOverdueJob periodically flips commissions past their due
// date to overdue. The sweep itself is idempotent, so overlapping runs
// and restarts are safe.
type CommissionOverdueJob struct {
	billing  overdueSweeper
	interval time.Duration
	stop     chan struct{}
}

func NewCommissionOverdueJob(billing overdueSweeper, interval time.Duration) *CommissionOverdueJob {
	if interval <= 0 {
		interval = time.Hour
	}
	return &CommissionOverdueJob{
		billing:  billing,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (j *CommissionOverdueJob) Start(ctx context.Context) {
	logger.Info(ctx, "starting commission overdue job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "commission overdue job stopped")
			return
		case <-j.stop:
			logger.Info(ctx, "commission overdue job stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *CommissionOverdueJob) Stop() {
	close(j.stop)
}

func (j *CommissionOverdueJob) sweep(ctx context.Context) {
	flipped, err := j.billing.RunOverdueSweep(ctx, time.Now())
	if err != nil {
		logger.Error(ctx, "commission overdue sweep failed", zap.Error(err))
		return
	}
	if flipped > 0 {
		logger.Info(ctx, "commissions marked overdue", zap.Int("count", flipped))
	}
}
