package token_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentescrow-backend/internal/domain"
	"rentescrow-backend/internal/repository"
	"rentescrow-backend/internal/repository/memory"
	"rentescrow-backend/internal/token"
)

func newTx(t *testing.T) repository.Tx {
	t.Helper()
	tx, err := memory.NewStore().Begin(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = tx.Rollback() })
	require.NoError(t, token.RegisterCollection(context.Background(), tx, &domain.Collection{
		Address: "punks", Name: "Punks", Symbol: "PNK", BaseURI: "ipfs://punks/",
	}))
	return tx
}

func TestLedger_Metadata(t *testing.T) {
	ctx := context.Background()
	tx := newTx(t)
	l := token.Open(tx, "punks")

	name, err := l.Name(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Punks", name)
	symbol, err := l.Symbol(ctx)
	require.NoError(t, err)
	assert.Equal(t, "PNK", symbol)

	_, err = token.Open(tx, "apes").Name(ctx)
	assert.ErrorIs(t, err, domain.ErrCollectionNotFound)

	err = token.RegisterCollection(ctx, tx, &domain.Collection{Name: "anon"})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestLedger_TransferFrom(t *testing.T) {
	ctx := context.Background()
	tx := newTx(t)
	l := token.Open(tx, "punks")
	require.NoError(t, l.Mint(ctx, "alice", 1))

	t.Run("NotOwner", func(t *testing.T) {
		err := l.TransferFrom(ctx, "bob", "bob", "carol", 1)
		assert.ErrorIs(t, err, domain.ErrTransferNotAllowed)
	})

	t.Run("NotApproved", func(t *testing.T) {
		err := l.TransferFrom(ctx, "bob", "alice", "bob", 1)
		assert.ErrorIs(t, err, domain.ErrTransferNotAllowed)
	})

	t.Run("ApproveByNonOwner", func(t *testing.T) {
		err := l.Approve(ctx, "bob", "bob", 1)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("Approved", func(t *testing.T) {
		require.NoError(t, l.Approve(ctx, "alice", "engine", 1))
		approved, err := l.GetApproved(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, domain.Address("engine"), approved)

		require.NoError(t, l.TransferFrom(ctx, "engine", "alice", "engine", 1))
		owner, err := l.OwnerOf(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, domain.Address("engine"), owner)

		approved, err = l.GetApproved(ctx, 1)
		require.NoError(t, err)
		assert.True(t, approved.IsZero())
	})

	t.Run("ToZeroAddress", func(t *testing.T) {
		err := l.TransferFrom(ctx, "engine", "engine", domain.ZeroAddress, 1)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := l.OwnerOf(ctx, 42)
		assert.ErrorIs(t, err, domain.ErrTokenNotFound)
	})
}

func TestLedger_Burn(t *testing.T) {
	ctx := context.Background()
	tx := newTx(t)
	l := token.Open(tx, "punks")
	require.NoError(t, l.Mint(ctx, "alice", 3))

	require.NoError(t, l.Burn(ctx, 3))
	_, err := l.OwnerOf(ctx, 3)
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)
	assert.ErrorIs(t, l.Burn(ctx, 3), domain.ErrTokenNotFound)

	// A burned id can be minted again.
	assert.NoError(t, l.Mint(ctx, "bob", 3))
}

func TestLedger_TokenURIForwards(t *testing.T) {
	ctx := context.Background()
	tx := newTx(t)
	require.NoError(t, token.RegisterCollection(ctx, tx, &domain.Collection{
		Address: "delegated:punks", Name: "Delegated Punks", Underlying: "punks",
	}))
	require.NoError(t, token.Open(tx, "punks").Mint(ctx, "alice", 9))

	uri, err := token.Open(tx, "delegated:punks").TokenURI(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "ipfs://punks/9", uri)
}
