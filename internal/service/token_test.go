package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentescrow-backend/internal/domain"
	"rentescrow-backend/internal/service"
)

func TestTokenService_Mint(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	require.NoError(t, e.tokens.Mint(ctx, "punks", alice, 1))
	assert.Equal(t, alice, e.holder(t, "punks", 1))

	assert.ErrorIs(t, e.tokens.Mint(ctx, "punks", bob, 1), domain.ErrTokenExists)
	assert.ErrorIs(t, e.tokens.Mint(ctx, "punks", domain.ZeroAddress, 2), domain.ErrInvalidArgument)
	assert.ErrorIs(t, e.tokens.Mint(ctx, "apes", alice, 1), domain.ErrCollectionNotFound)

	uri, err := e.tokens.TokenURI(ctx, "punks", 1)
	require.NoError(t, err)
	assert.Equal(t, "ipfs://punks/1", uri)
	_, err = e.tokens.TokenURI(ctx, "punks", 2)
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)
}

func TestTokenService_TransferFrom(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	require.NoError(t, e.tokens.Mint(ctx, "punks", alice, 1))

	err := e.tokens.TransferFrom(ctx, bob, "punks", alice, bob, 1)
	assert.ErrorIs(t, err, domain.ErrTransferNotAllowed)

	require.NoError(t, e.tokens.Approve(ctx, alice, "punks", bob, 1))
	require.NoError(t, e.tokens.TransferFrom(ctx, bob, "punks", alice, carol, 1))
	assert.Equal(t, carol, e.holder(t, "punks", 1))

	// Approval is cleared by the transfer.
	err = e.tokens.TransferFrom(ctx, bob, "punks", carol, bob, 1)
	assert.ErrorIs(t, err, domain.ErrTransferNotAllowed)
}

func TestTokenService_ProxyCollection(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	item := e.listed(t, 1)
	_, err := e.rent.StartRent(ctx, bob, item, fee)
	require.NoError(t, err)

	c, err := e.tokens.GetCollection(ctx, proxy)
	require.NoError(t, err)
	assert.Equal(t, domain.Address("punks"), c.Underlying)
	assert.Equal(t, "Delegated Punks", c.Name)
	assert.Equal(t, "dPNK", c.Symbol)

	assert.ErrorIs(t, e.tokens.Mint(ctx, proxy, bob, 2), domain.ErrTransferNotAllowed)
	err = e.tokens.RegisterCollection(ctx, &domain.Collection{Address: proxy, Name: "fake"})
	assert.ErrorIs(t, err, domain.ErrTransferNotAllowed)

	// The rentee may hand the proxy token on; settlement still reclaims it.
	require.NoError(t, e.tokens.TransferFrom(ctx, bob, proxy, bob, carol, 1))
	assert.Equal(t, carol, e.holder(t, proxy, 1))

	e.clock.Set(t0 + domain.Week + 1)
	res, err := e.rent.EndRent(ctx, keeper, item, 0)
	require.NoError(t, err)
	assert.Equal(t, service.EndModeEarly, res.Mode)
	_, err = e.tokens.OwnerOf(ctx, proxy, 1)
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)
	assert.Equal(t, engine, e.holder(t, "punks", 1))
}

func TestTokenService_GetCollection(t *testing.T) {
	e := newEnv(t)

	_, err := e.tokens.GetCollection(context.Background(), "apes")
	assert.ErrorIs(t, err, domain.ErrCollectionNotFound)
}
