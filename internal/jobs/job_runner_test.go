package jobs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentescrow-backend/internal/clock"
	"rentescrow-backend/internal/config"
	"rentescrow-backend/internal/domain"
	"rentescrow-backend/internal/repository/memory"
	"rentescrow-backend/internal/service"
)

const (
	t0     = int64(1_700_000_000)
	engine = domain.Address("rent-engine")
	keeper = domain.Address("keeper")
	fee    = int64(100_000)
)

type run struct {
	job     string
	settled int
	err     error
}

type fakeRecorder struct {
	runs []run
}

func (r *fakeRecorder) ObserveKeeperRun(job string, settled int, err error) {
	r.runs = append(r.runs, run{job, settled, err})
}

type env struct {
	clock    *clock.Manual
	rent     service.RentService
	ledger   service.LedgerService
	tokens   service.TokenService
	runner   *JobRunner
	recorder *fakeRecorder
}

func newEnv(t *testing.T) *env {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	clk := clock.NewManual(t0)
	e := &env{
		clock:    clk,
		rent:     service.NewRentService(store, clk, nil, service.Settings{EngineAddress: engine, KeeperFeePercent: 1}, nil),
		ledger:   service.NewLedgerService(store, clk),
		tokens:   service.NewTokenService(store),
		recorder: &fakeRecorder{},
	}
	cfg := &config.Config{Settlement: config.SettlementConfig{KeeperAddress: string(keeper)}}
	e.runner = NewJobRunner(e.rent, clk, e.recorder, cfg)

	require.NoError(t, e.tokens.RegisterCollection(ctx, &domain.Collection{Address: "punks", Name: "Punks", Symbol: "PNK"}))
	_, err := e.ledger.Fund(ctx, "bob", 10_000_000)
	require.NoError(t, err)
	return e
}

// own mints token id to alice and approves the engine for it.
func (e *env) own(t *testing.T, id int64) domain.ItemKey {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, e.tokens.Mint(ctx, "punks", "alice", id))
	require.NoError(t, e.tokens.Approve(ctx, "alice", "punks", engine, id))
	return domain.ItemKey{Collection: "punks", TokenID: id}
}

func (e *env) balance(t *testing.T, addr domain.Address) int64 {
	t.Helper()
	b, err := e.ledger.GetBalance(context.Background(), addr)
	require.NoError(t, err)
	return b
}

func TestSettleExpiredRentals(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	expiring := e.own(t, 1)
	running := e.own(t, 2)
	for _, item := range []domain.ItemKey{expiring, running} {
		require.NoError(t, e.rent.Deposit(ctx, "alice", item, t0+10*domain.Week, fee))
	}
	_, err := e.rent.StartRent(ctx, "bob", expiring, fee)
	require.NoError(t, err)
	_, err = e.rent.StartRent(ctx, "bob", running, 2*fee)
	require.NoError(t, err)

	e.clock.Advance(domain.Week + 1)
	e.runner.SettleExpiredRentals()

	require.Len(t, e.recorder.runs, 1)
	assert.Equal(t, run{JobSettleExpiredRentals, 1, nil}, e.recorder.runs[0])
	assert.Equal(t, int64(1_000), e.balance(t, keeper))

	rec, err := e.rent.GetRent(ctx, expiring)
	require.NoError(t, err)
	assert.False(t, rec.IsRented())
	assert.Equal(t, domain.Address("alice"), rec.Owner)

	rented, err := e.rent.IsRented(ctx, running)
	require.NoError(t, err)
	assert.True(t, rented)

	// Nothing left to settle.
	e.runner.SettleExpiredRentals()
	assert.Equal(t, run{JobSettleExpiredRentals, 0, nil}, e.recorder.runs[1])
}

func TestCloseEndedAuctions(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	withBid := e.own(t, 1)
	noBid := e.own(t, 2)
	params := service.EnglishAuctionParams{AuctionDeadline: t0 + 24*domain.Hour}
	for _, item := range []domain.ItemKey{withBid, noBid} {
		require.NoError(t, e.rent.DepositEnglishAuction(ctx, "alice", item, t0+10*domain.Week, params))
	}
	_, err := e.rent.NewBid(ctx, "bob", withBid, 50_000, 100_000)
	require.NoError(t, err)

	// Before the deadline nothing is closable.
	e.runner.CloseEndedAuctions()
	assert.Equal(t, run{JobCloseEndedAuctions, 0, nil}, e.recorder.runs[0])

	e.clock.Advance(24*domain.Hour + 1)
	e.runner.CloseEndedAuctions()
	assert.Equal(t, run{JobCloseEndedAuctions, 1, nil}, e.recorder.runs[1])

	rec, err := e.rent.GetRent(ctx, withBid)
	require.NoError(t, err)
	assert.Equal(t, domain.Address("bob"), rec.Rentee)
	assert.Equal(t, int64(50_000), rec.WeeklyFee)
	assert.Equal(t, int64(98_000), e.balance(t, "alice"))
	assert.Equal(t, int64(1_000), e.balance(t, keeper))

	a, err := e.rent.GetEnglishAuction(ctx, noBid)
	require.NoError(t, err)
	assert.NotNil(t, a)
}

func TestRunWithRecovery(t *testing.T) {
	e := newEnv(t)

	assert.NotPanics(t, func() {
		e.runner.runWithRecovery("boom", func(context.Context) (int, error) {
			panic("kaboom")
		})
	})
	require.Len(t, e.recorder.runs, 1)
	assert.ErrorIs(t, e.recorder.runs[0].err, errPanicked)
}
