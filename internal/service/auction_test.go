package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentescrow-backend/internal/domain"
	"rentescrow-backend/internal/service"
)

func TestRentService_DutchAuction(t *testing.T) {
	ctx := context.Background()
	params := service.DutchAuctionParams{
		AuctionDeadline:  t0 + 10*domain.Hour,
		MinWeeklyPrice:   50_000,
		StartWeeklyPrice: 150_000,
	}

	t.Run("Validation", func(t *testing.T) {
		e := newEnv(t)
		item := e.own(t, 1)

		bad := params
		bad.MinWeeklyPrice = 0
		assert.ErrorIs(t, e.rent.DepositDutchAuction(ctx, alice, item, t0+10*domain.Week, bad), domain.ErrInvalidArgument)

		bad = params
		bad.StartWeeklyPrice = 40_000
		assert.ErrorIs(t, e.rent.DepositDutchAuction(ctx, alice, item, t0+10*domain.Week, bad), domain.ErrInvalidArgument)

		bad = params
		bad.AuctionDeadline = t0 + 11*domain.Week
		assert.ErrorIs(t, e.rent.DepositDutchAuction(ctx, alice, item, t0+10*domain.Week, bad), domain.ErrInvalidDeadline)

		assert.Equal(t, alice, e.holder(t, "punks", 1))
	})

	t.Run("PriceDecays", func(t *testing.T) {
		e := newEnv(t)
		item := e.own(t, 1)
		require.NoError(t, e.rent.DepositDutchAuction(ctx, alice, item, t0+10*domain.Week, params))

		price, err := e.rent.CurrentDutchPrice(ctx, item)
		require.NoError(t, err)
		assert.Equal(t, int64(150_000), price)

		e.clock.Advance(3*domain.Hour + 59)
		price, err = e.rent.CurrentDutchPrice(ctx, item)
		require.NoError(t, err)
		assert.Equal(t, int64(120_000), price)

		e.clock.Set(t0 + 20*domain.Hour)
		price, err = e.rent.CurrentDutchPrice(ctx, item)
		require.NoError(t, err)
		assert.Equal(t, int64(50_000), price)
	})

	t.Run("BidAwards", func(t *testing.T) {
		e := newEnv(t)
		item := e.own(t, 1)
		require.NoError(t, e.rent.DepositDutchAuction(ctx, alice, item, t0+10*domain.Week, params))

		_, err := e.rent.StartRent(ctx, bob, item, fee)
		assert.ErrorIs(t, err, domain.ErrNotRentable)

		e.clock.Advance(3 * domain.Hour)
		_, err = e.rent.NewBid(ctx, bob, item, 110_000, 110_000)
		assert.ErrorIs(t, err, domain.ErrInvalidBid)
		_, err = e.rent.NewBid(ctx, bob, item, 120_000, 130_000)
		assert.ErrorIs(t, err, domain.ErrWrongPaymentAmount)

		res, err := e.rent.NewBid(ctx, bob, item, 120_000, 240_000)
		require.NoError(t, err)
		assert.True(t, res.Awarded)
		require.NotNil(t, res.Record)
		assert.Equal(t, int64(120_000), res.Record.WeeklyFee)
		assert.Equal(t, int64(240_000), res.Record.PaidFee)
		assert.Equal(t, domain.AuctionKindNone, res.Record.AuctionKind)

		assert.Equal(t, int64(237_600), e.balance(t, alice))
		assert.Equal(t, int64(2_400), e.balance(t, engine))
		assert.Equal(t, bob, e.holder(t, proxy, 1))

		auction, err := e.rent.GetDutchAuction(ctx, item)
		require.NoError(t, err)
		assert.Nil(t, auction)

		_, err = e.rent.NewBid(ctx, carol, item, 150_000, 150_000)
		assert.ErrorIs(t, err, domain.ErrAuctionNotActive)
	})
}

func TestRentService_EnglishAuction(t *testing.T) {
	ctx := context.Background()
	params := service.EnglishAuctionParams{AuctionDeadline: t0 + 24*domain.Hour}

	t.Run("OutbidRefundsLeader", func(t *testing.T) {
		e := newEnv(t)
		item := e.own(t, 1)
		require.NoError(t, e.rent.DepositEnglishAuction(ctx, alice, item, t0+10*domain.Week, params))

		res, err := e.rent.NewBid(ctx, bob, item, 100_000, 200_000)
		require.NoError(t, err)
		assert.False(t, res.Awarded)
		require.NotNil(t, res.Auction)
		assert.Equal(t, bob, res.Auction.HighestBidder)
		assert.Equal(t, int64(9_800_000), e.balance(t, bob))
		assert.Equal(t, int64(200_000), e.balance(t, engine))

		_, err = e.rent.NewBid(ctx, carol, item, 100_000, 100_000)
		assert.ErrorIs(t, err, domain.ErrInvalidBid)

		_, err = e.rent.NewBid(ctx, carol, item, 120_000, 240_000)
		require.NoError(t, err)
		assert.Equal(t, int64(10_000_000), e.balance(t, bob))
		assert.Equal(t, int64(240_000), e.balance(t, engine))

		auction, err := e.rent.GetEnglishAuction(ctx, item)
		require.NoError(t, err)
		assert.Equal(t, carol, auction.HighestBidder)
		assert.Equal(t, int64(240_000), auction.Collateral)
	})

	t.Run("EndAuction", func(t *testing.T) {
		e := newEnv(t)
		item := e.own(t, 1)
		require.NoError(t, e.rent.DepositEnglishAuction(ctx, alice, item, t0+10*domain.Week, params))
		_, err := e.rent.NewBid(ctx, carol, item, 120_000, 240_000)
		require.NoError(t, err)

		_, err = e.rent.EndAuction(ctx, keeper, item)
		assert.ErrorIs(t, err, domain.ErrAuctionNotClosable)

		e.clock.Set(params.AuctionDeadline + 1)
		_, err = e.rent.NewBid(ctx, bob, item, 200_000, 200_000)
		assert.ErrorIs(t, err, domain.ErrAuctionEnded)

		rec, err := e.rent.EndAuction(ctx, keeper, item)
		require.NoError(t, err)
		assert.Equal(t, carol, rec.Rentee)
		assert.Equal(t, int64(120_000), rec.WeeklyFee)
		assert.Equal(t, int64(240_000), rec.PaidFee)
		assert.Equal(t, params.AuctionDeadline+1, rec.StartTime)

		assert.Equal(t, int64(235_200), e.balance(t, alice))
		assert.Equal(t, int64(2_400), e.balance(t, keeper))
		// One keeper share stays escrowed for the settlement.
		assert.Equal(t, int64(2_400), e.balance(t, engine))
		assert.Equal(t, carol, e.holder(t, proxy, 1))

		e.clock.Set(rec.EndDate() + 1)
		res, err := e.rent.EndRent(ctx, keeper, item, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(2_400), res.KeeperFee)
		assert.Equal(t, int64(0), e.balance(t, engine))
	})

	t.Run("NoBids", func(t *testing.T) {
		e := newEnv(t)
		item := e.own(t, 1)
		require.NoError(t, e.rent.DepositEnglishAuction(ctx, alice, item, t0+10*domain.Week, params))
		e.clock.Set(params.AuctionDeadline + 1)

		_, err := e.rent.EndAuction(ctx, keeper, item)
		assert.ErrorIs(t, err, domain.ErrNoBids)
	})

	t.Run("AutoAccept", func(t *testing.T) {
		e := newEnv(t)
		item := e.own(t, 1)
		auto := params
		auto.AutoAcceptPrice = 150_000
		require.NoError(t, e.rent.DepositEnglishAuction(ctx, alice, item, t0+10*domain.Week, auto))

		_, err := e.rent.NewBid(ctx, bob, item, 160_000, 160_000)
		assert.ErrorIs(t, err, domain.ErrInvalidBid)

		res, err := e.rent.NewBid(ctx, bob, item, 150_000, 150_000)
		require.NoError(t, err)
		assert.True(t, res.Awarded)
		assert.Equal(t, bob, res.Record.Rentee)
		assert.Equal(t, int64(147_000), e.balance(t, alice))
		assert.Equal(t, int64(3_000), e.balance(t, engine))

		auction, err := e.rent.GetEnglishAuction(ctx, item)
		require.NoError(t, err)
		assert.Nil(t, auction)
	})

	t.Run("WithdrawRefundsBidder", func(t *testing.T) {
		e := newEnv(t)
		item := e.own(t, 1)
		require.NoError(t, e.rent.DepositEnglishAuction(ctx, alice, item, t0+10*domain.Week, params))
		_, err := e.rent.NewBid(ctx, bob, item, 100_000, 100_000)
		require.NoError(t, err)

		require.NoError(t, e.rent.Withdraw(ctx, alice, item))
		assert.Equal(t, int64(10_000_000), e.balance(t, bob))
		assert.Equal(t, int64(0), e.balance(t, engine))
		assert.Equal(t, alice, e.holder(t, "punks", 1))
	})

	t.Run("NotAnAuction", func(t *testing.T) {
		e := newEnv(t)
		item := e.listed(t, 1)

		_, err := e.rent.NewBid(ctx, bob, item, fee, fee)
		assert.ErrorIs(t, err, domain.ErrAuctionNotActive)
		_, err = e.rent.EndAuction(ctx, keeper, item)
		assert.ErrorIs(t, err, domain.ErrAuctionNotActive)
	})
}
