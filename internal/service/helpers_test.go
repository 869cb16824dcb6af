package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"rentescrow-backend/internal/clock"
	"rentescrow-backend/internal/domain"
	"rentescrow-backend/internal/repository/memory"
	"rentescrow-backend/internal/service"
)

const (
	t0     = int64(1_700_000_000)
	engine = domain.Address("rent-engine")
	alice  = domain.Address("alice")
	bob    = domain.Address("bob")
	carol  = domain.Address("carol")
	keeper = domain.Address("keeper")

	// 0.1 in base units
	fee = int64(100_000)
)

type env struct {
	store  *memory.Store
	clock  *clock.Manual
	rent   service.RentService
	ledger service.LedgerService
	tokens service.TokenService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	clk := clock.NewManual(t0)
	e := &env{
		store:  store,
		clock:  clk,
		rent:   service.NewRentService(store, clk, nil, service.Settings{EngineAddress: engine, KeeperFeePercent: 1}, nil),
		ledger: service.NewLedgerService(store, clk),
		tokens: service.NewTokenService(store),
	}
	require.NoError(t, e.tokens.RegisterCollection(ctx, &domain.Collection{
		Address: "punks", Name: "Punks", Symbol: "PNK", BaseURI: "ipfs://punks/",
	}))
	for _, addr := range []domain.Address{bob, carol} {
		_, err := e.ledger.Fund(ctx, addr, 10_000_000)
		require.NoError(t, err)
	}
	return e
}

// own mints token id to alice and approves the engine for it.
func (e *env) own(t *testing.T, id int64) domain.ItemKey {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, e.tokens.Mint(ctx, "punks", alice, id))
	require.NoError(t, e.tokens.Approve(ctx, alice, "punks", engine, id))
	return domain.ItemKey{Collection: "punks", TokenID: id}
}

// listed mints, approves and deposits an open listing at fee per week.
func (e *env) listed(t *testing.T, id int64) domain.ItemKey {
	t.Helper()
	item := e.own(t, id)
	require.NoError(t, e.rent.Deposit(context.Background(), alice, item, t0+1234*domain.Week, fee))
	return item
}

func (e *env) balance(t *testing.T, addr domain.Address) int64 {
	t.Helper()
	b, err := e.ledger.GetBalance(context.Background(), addr)
	require.NoError(t, err)
	return b
}

func (e *env) holder(t *testing.T, collection domain.Address, id int64) domain.Address {
	t.Helper()
	owner, err := e.tokens.OwnerOf(context.Background(), collection, id)
	require.NoError(t, err)
	return owner
}

// balances snapshots every party the tests move value between.
func (e *env) balances(t *testing.T) map[domain.Address]int64 {
	t.Helper()
	out := map[domain.Address]int64{}
	for _, addr := range []domain.Address{engine, alice, bob, carol, keeper} {
		out[addr] = e.balance(t, addr)
	}
	return out
}

func (e *env) total(t *testing.T) int64 {
	t.Helper()
	var sum int64
	for _, b := range e.balances(t) {
		sum += b
	}
	return sum
}
