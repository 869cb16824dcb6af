package jobs

import (
	"context"
	"errors"
	"time"

	"rentescrow-backend/internal/clock"
	"rentescrow-backend/internal/config"
	"rentescrow-backend/internal/domain"
	"rentescrow-backend/internal/logger"
	"rentescrow-backend/internal/service"
)

// Recorder observes keeper runs. *metrics.Metrics implements it.
type Recorder interface {
	ObserveKeeperRun(job string, settled int, err error)
}

var errPanicked = errors.New("job panicked")

type nopRecorder struct{}

func (nopRecorder) ObserveKeeperRun(string, int, error) {}

// JobRunner acts as a keeper: it settles whatever the engine lets any third
// party settle and collects the keeper share into its own account.
type JobRunner struct {
	rent     service.RentService
	clock    clock.Clock
	keeper   domain.Address
	recorder Recorder
	config   *config.Config
	timeout  time.Duration
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(rent service.RentService, clk clock.Clock, recorder Recorder, cfg *config.Config) *JobRunner {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &JobRunner{
		rent:     rent,
		clock:    clk,
		keeper:   domain.Address(cfg.Settlement.KeeperAddress),
		recorder: recorder,
		config:   cfg,
		timeout:  2 * time.Minute,
	}
}

// Config returns the configuration the runner was built with.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func(ctx context.Context) (int, error)) {
	var (
		settled int
		err     error
	)
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
			jr.recorder.ObserveKeeperRun(jobName, settled, errPanicked)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), jr.timeout)
	defer cancel()

	logger.Info("Starting job", "job", jobName)
	settled, err = jobFunc(ctx)
	jr.recorder.ObserveKeeperRun(jobName, settled, err)
	if err != nil {
		logger.Error("Job failed", "job", jobName, "settled", settled, "error", err)
		return
	}
	logger.Info("Job completed", "job", jobName, "settled", settled)
}

// RunAll runs every keeper job once (for manual execution)
func (jr *JobRunner) RunAll() {
	jr.SettleExpiredRentals()
	jr.CloseEndedAuctions()
}
