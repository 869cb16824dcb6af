package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentescrow-backend/internal/clock"
	"rentescrow-backend/internal/config"
	"rentescrow-backend/internal/jobs"
	"rentescrow-backend/internal/repository/memory"
	"rentescrow-backend/internal/service"
)

func newRunner(cfg *config.Config) *jobs.JobRunner {
	store := memory.NewStore()
	clk := clock.NewManual(1_700_000_000)
	rent := service.NewRentService(store, clk, nil, service.Settings{EngineAddress: "rent-engine", KeeperFeePercent: 1}, nil)
	return jobs.NewJobRunner(rent, clk, nil, cfg)
}

func TestNewScheduler(t *testing.T) {
	cfg := &config.Config{Scheduler: config.SchedulerConfig{
		SettleExpiredRentals: "0 */5 * * * *",
		CloseEndedAuctions:   "30 */5 * * * *",
	}}

	s, err := NewScheduler(newRunner(cfg))
	require.NoError(t, err)
	assert.Equal(t, 2, s.Entries())

	s.Start()
	s.Stop()
}

func TestNewScheduler_BadSpec(t *testing.T) {
	cfg := &config.Config{Scheduler: config.SchedulerConfig{
		SettleExpiredRentals: "every now and then",
		CloseEndedAuctions:   "30 */5 * * * *",
	}}

	_, err := NewScheduler(newRunner(cfg))
	assert.ErrorContains(t, err, "settle_expired_rentals")
}
