package delegation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentescrow-backend/internal/delegation"
	"rentescrow-backend/internal/domain"
	"rentescrow-backend/internal/repository"
	"rentescrow-backend/internal/repository/memory"
	"rentescrow-backend/internal/token"
)

const (
	engine   = domain.Address("engine")
	registry = domain.Address("delegated:punks")
)

func setup(t *testing.T) (repository.Tx, *delegation.Registry) {
	t.Helper()
	ctx := context.Background()
	tx, err := memory.NewStore().Begin(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = tx.Rollback() })

	require.NoError(t, token.RegisterCollection(ctx, tx, &domain.Collection{Address: "punks", Name: "Punks", Symbol: "PNK"}))
	items := token.Open(tx, "punks")
	require.NoError(t, items.Mint(ctx, engine, 1))

	f := delegation.NewFactory()
	reg, err := f.Lookup(ctx, tx, "punks", 100)
	require.NoError(t, err)
	assert.Nil(t, reg)

	reg, err = f.Open(ctx, tx, "punks", 100)
	require.NoError(t, err)
	require.NoError(t, items.Approve(ctx, engine, reg.Address(), 1))
	return tx, reg
}

func TestFactory_Open(t *testing.T) {
	ctx := context.Background()
	tx, reg := setup(t)

	assert.Equal(t, registry, reg.Address())
	assert.Equal(t, domain.Address("punks"), reg.Collection())

	proxy, err := tx.GetCollection(ctx, registry)
	require.NoError(t, err)
	require.NotNil(t, proxy)
	assert.Equal(t, "Delegated Punks", proxy.Name)
	assert.Equal(t, "dPNK", proxy.Symbol)
	assert.Equal(t, domain.Address("punks"), proxy.Underlying)

	again, err := delegation.NewFactory().Open(ctx, tx, "punks", 200)
	require.NoError(t, err)
	assert.Equal(t, reg.Address(), again.Address())
	stored, err := tx.GetRegistry(ctx, "punks")
	require.NoError(t, err)
	assert.Equal(t, int64(100), stored.CreatedAt)
}

func TestRegistry_DepositWithdraw(t *testing.T) {
	ctx := context.Background()
	tx, reg := setup(t)
	items := token.Open(tx, "punks")

	require.NoError(t, reg.Deposit(ctx, engine, "alice", "bob", 1))

	holder, err := items.OwnerOf(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, registry, holder)
	proxyHolder, err := reg.Proxy().OwnerOf(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.Address("bob"), proxyHolder)
	realOwner, err := reg.RealOwnerOf(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.Address("alice"), realOwner)

	assert.ErrorIs(t, reg.Withdraw(ctx, "alice", 1), domain.ErrUnauthorized)

	require.NoError(t, reg.Withdraw(ctx, engine, 1))
	holder, err = items.OwnerOf(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, engine, holder)
	_, err = reg.Proxy().OwnerOf(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)
	realOwner, err = reg.RealOwnerOf(ctx, 1)
	require.NoError(t, err)
	assert.True(t, realOwner.IsZero())

	events, err := tx.ListEvents(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.EventDelegationStarted, events[0].Type)
	assert.Equal(t, domain.EventDelegationEnded, events[1].Type)
	assert.Equal(t, "bob", events[1].Attributes["holder"])
}

func TestRegistry_DepositRequiresApproval(t *testing.T) {
	ctx := context.Background()
	tx, reg := setup(t)
	require.NoError(t, token.Open(tx, "punks").Mint(ctx, engine, 2))

	err := reg.Deposit(ctx, engine, "alice", "bob", 2)
	assert.ErrorIs(t, err, domain.ErrTransferNotAllowed)

	err = reg.Deposit(ctx, engine, domain.ZeroAddress, "bob", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
