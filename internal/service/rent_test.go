package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentescrow-backend/internal/domain"
	"rentescrow-backend/internal/service"
)

const proxy = domain.Address("delegated:punks")

func TestRentService_StartRent(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		e := newEnv(t)
		item := e.listed(t, 1)

		rec, err := e.rent.StartRent(ctx, bob, item, fee)
		require.NoError(t, err)
		assert.Equal(t, bob, rec.Rentee)
		assert.Equal(t, t0, rec.StartTime)

		assert.Equal(t, int64(99_000), e.balance(t, alice))
		assert.Equal(t, int64(9_900_000), e.balance(t, bob))
		assert.Equal(t, int64(1_000), e.balance(t, engine))

		endDate, err := e.rent.EndDateOf(ctx, item)
		require.NoError(t, err)
		assert.Equal(t, t0+domain.Week, endDate)
		rentee, err := e.rent.RenteeOf(ctx, item)
		require.NoError(t, err)
		assert.Equal(t, bob, rentee)

		// The renter holds the proxy token, the registry holds the item.
		assert.Equal(t, bob, e.holder(t, proxy, 1))
		assert.Equal(t, proxy, e.holder(t, "punks", 1))

		d, err := e.rent.GetDelegation(ctx, item)
		require.NoError(t, err)
		require.NotNil(t, d)
		assert.Equal(t, alice, d.RealOwner)
		assert.Equal(t, engine, d.AccessControl)
	})

	t.Run("NotDeposited", func(t *testing.T) {
		e := newEnv(t)
		e.listed(t, 1)
		before := e.balances(t)

		_, err := e.rent.StartRent(ctx, alice, domain.ItemKey{Collection: "punks", TokenID: 99}, fee)
		assert.ErrorIs(t, err, domain.ErrNotRentable)
		assert.Equal(t, before, e.balances(t))
	})

	t.Run("WrongPaymentAmount", func(t *testing.T) {
		e := newEnv(t)
		item := e.listed(t, 1)

		for _, value := range []int64{0, -fee, fee + 1, fee / 2} {
			_, err := e.rent.StartRent(ctx, bob, item, value)
			assert.ErrorIs(t, err, domain.ErrWrongPaymentAmount, "value %d", value)
		}
	})

	t.Run("OverDeadline", func(t *testing.T) {
		e := newEnv(t)
		item := e.own(t, 1)
		require.NoError(t, e.rent.Deposit(ctx, alice, item, t0+domain.Week+10, fee))

		_, err := e.rent.StartRent(ctx, bob, item, 2*fee)
		assert.ErrorIs(t, err, domain.ErrOverDeadline)

		_, err = e.rent.StartRent(ctx, bob, item, fee)
		assert.NoError(t, err)
	})

	t.Run("AlreadyRented", func(t *testing.T) {
		e := newEnv(t)
		item := e.listed(t, 1)
		_, err := e.rent.StartRent(ctx, bob, item, fee)
		require.NoError(t, err)

		_, err = e.rent.StartRent(ctx, carol, item, fee)
		assert.ErrorIs(t, err, domain.ErrRentedItem)
	})

	t.Run("InsufficientFunds", func(t *testing.T) {
		e := newEnv(t)
		item := e.listed(t, 1)

		_, err := e.rent.StartRent(ctx, "dave", item, fee)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		rented, err := e.rent.IsRented(ctx, item)
		require.NoError(t, err)
		assert.False(t, rented)
		assert.Equal(t, engine, e.holder(t, "punks", 1))
	})

	t.Run("PaymentRejectedRollsBack", func(t *testing.T) {
		e := newEnv(t)
		item := e.listed(t, 1)
		require.NoError(t, e.ledger.SetRejectsPayments(ctx, alice, true))
		before := e.balances(t)
		events, err := e.rent.ListEvents(ctx, 0, 0)
		require.NoError(t, err)

		_, err = e.rent.StartRent(ctx, bob, item, fee)
		assert.ErrorIs(t, err, domain.ErrPaymentRejected)

		assert.Equal(t, before, e.balances(t))
		assert.Equal(t, engine, e.holder(t, "punks", 1))
		rec, err := e.rent.GetRent(ctx, item)
		require.NoError(t, err)
		assert.False(t, rec.IsRented())
		assert.True(t, rec.Rentee.IsZero())
		after, err := e.rent.ListEvents(ctx, 0, 0)
		require.NoError(t, err)
		assert.Len(t, after, len(events))
	})
}

func TestRentService_ExtendRent(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		e := newEnv(t)
		item := e.listed(t, 1)
		_, err := e.rent.StartRent(ctx, bob, item, fee)
		require.NoError(t, err)

		rec, err := e.rent.ExtendRent(ctx, bob, item, fee)
		require.NoError(t, err)
		assert.Equal(t, 2*fee, rec.PaidFee)
		assert.Equal(t, t0, rec.StartTime)

		endDate, err := e.rent.EndDateOf(ctx, item)
		require.NoError(t, err)
		assert.Equal(t, t0+2*domain.Week, endDate)
		assert.Equal(t, int64(198_000), e.balance(t, alice))
		assert.Equal(t, bob, e.holder(t, proxy, 1))
	})

	t.Run("NotRentee", func(t *testing.T) {
		e := newEnv(t)
		item := e.listed(t, 1)
		_, err := e.rent.StartRent(ctx, bob, item, fee)
		require.NoError(t, err)

		_, err = e.rent.ExtendRent(ctx, carol, item, fee)
		assert.ErrorIs(t, err, domain.ErrNotRentee)
	})

	t.Run("NotRented", func(t *testing.T) {
		e := newEnv(t)
		item := e.listed(t, 1)

		_, err := e.rent.ExtendRent(ctx, bob, item, fee)
		assert.ErrorIs(t, err, domain.ErrNotRented)
	})

	t.Run("OverDeadline", func(t *testing.T) {
		e := newEnv(t)
		item := e.own(t, 1)
		require.NoError(t, e.rent.Deposit(ctx, alice, item, t0+2*domain.Week, fee))
		_, err := e.rent.StartRent(ctx, bob, item, fee)
		require.NoError(t, err)

		_, err = e.rent.ExtendRent(ctx, bob, item, 2*fee)
		assert.ErrorIs(t, err, domain.ErrOverDeadline)

		_, err = e.rent.ExtendRent(ctx, bob, item, fee)
		assert.NoError(t, err)
	})
}

func TestRentService_EndRent(t *testing.T) {
	ctx := context.Background()

	t.Run("KeeperBeforeEndDate", func(t *testing.T) {
		e := newEnv(t)
		item := e.listed(t, 1)
		_, err := e.rent.StartRent(ctx, bob, item, 2*fee)
		require.NoError(t, err)
		e.clock.Advance(domain.Week)
		before := e.balances(t)

		_, err = e.rent.EndRent(ctx, keeper, item, 0)
		assert.ErrorIs(t, err, domain.ErrNotOwner)
		assert.Equal(t, before, e.balances(t))
		rented, err := e.rent.IsRented(ctx, item)
		require.NoError(t, err)
		assert.True(t, rented)
	})

	t.Run("KeeperEarly", func(t *testing.T) {
		e := newEnv(t)
		item := e.listed(t, 1)
		_, err := e.rent.StartRent(ctx, bob, item, fee)
		require.NoError(t, err)
		_, err = e.rent.ExtendRent(ctx, bob, item, fee)
		require.NoError(t, err)
		e.clock.Set(t0 + 2*domain.Week + 1)

		res, err := e.rent.EndRent(ctx, keeper, item, 0)
		require.NoError(t, err)
		assert.Equal(t, service.EndModeEarly, res.Mode)
		assert.Equal(t, int64(2_000), res.KeeperFee)
		require.NotNil(t, res.Record)
		assert.Equal(t, alice, res.Record.Owner)

		assert.Equal(t, int64(2_000), e.balance(t, keeper))
		assert.Equal(t, int64(0), e.balance(t, engine))

		rec, err := e.rent.GetRent(ctx, item)
		require.NoError(t, err)
		assert.Equal(t, alice, rec.Owner)
		assert.Equal(t, fee, rec.WeeklyFee)
		assert.True(t, rec.Rentee.IsZero())
		assert.Zero(t, rec.StartTime)
		assert.Zero(t, rec.PaidFee)

		// The listing stays open with the item back in engine custody.
		assert.Equal(t, engine, e.holder(t, "punks", 1))
		_, err = e.tokens.OwnerOf(ctx, proxy, 1)
		assert.ErrorIs(t, err, domain.ErrTokenNotFound)

		_, err = e.rent.StartRent(ctx, carol, item, fee)
		assert.NoError(t, err)
	})

	t.Run("KeeperTerm", func(t *testing.T) {
		e := newEnv(t)
		item := e.own(t, 1)
		require.NoError(t, e.rent.Deposit(ctx, alice, item, t0+2*domain.Week, fee))
		_, err := e.rent.StartRent(ctx, bob, item, 2*fee)
		require.NoError(t, err)
		e.clock.Set(t0 + 2*domain.Week + 1)

		res, err := e.rent.EndRent(ctx, keeper, item, 0)
		require.NoError(t, err)
		assert.Equal(t, service.EndModeTerm, res.Mode)
		assert.Equal(t, int64(2_000), res.KeeperFee)
		assert.Nil(t, res.Record)

		assert.Equal(t, alice, e.holder(t, "punks", 1))
		owner, err := e.rent.OwnerOf(ctx, item)
		require.NoError(t, err)
		assert.True(t, owner.IsZero())
		assert.Equal(t, int64(0), e.balance(t, engine))
	})

	t.Run("KeeperSendsValue", func(t *testing.T) {
		e := newEnv(t)
		item := e.listed(t, 1)
		_, err := e.rent.StartRent(ctx, bob, item, fee)
		require.NoError(t, err)
		e.clock.Set(t0 + domain.Week + 1)

		_, err = e.rent.EndRent(ctx, keeper, item, 1)
		assert.ErrorIs(t, err, domain.ErrWrongPaymentAmount)
	})

	t.Run("OwnerPaysBack", func(t *testing.T) {
		e := newEnv(t)
		item := e.listed(t, 1)
		_, err := e.rent.StartRent(ctx, bob, item, 2*fee)
		require.NoError(t, err)
		e.clock.Advance(domain.Week + 3600)

		owed, err := e.rent.PaybackHelper(ctx, item)
		require.NoError(t, err)
		assert.Equal(t, int64(99_000), owed)

		_, err = e.rent.EndRent(ctx, alice, item, owed-1)
		assert.ErrorIs(t, err, domain.ErrWrongPaymentAmount)

		res, err := e.rent.EndRent(ctx, alice, item, owed)
		require.NoError(t, err)
		assert.Equal(t, service.EndModeOwner, res.Mode)
		assert.Equal(t, owed, res.Refund)

		assert.Equal(t, int64(198_000-99_000), e.balance(t, alice))
		assert.Equal(t, int64(10_000_000-2*fee+99_000), e.balance(t, bob))
		// The keeper share taken at start stays in escrow.
		assert.Equal(t, int64(2_000), e.balance(t, engine))
		assert.Equal(t, alice, e.holder(t, "punks", 1))
	})

	t.Run("OwnerPaysBackWholePeriod", func(t *testing.T) {
		e := newEnv(t)
		item := e.listed(t, 1)
		_, err := e.rent.StartRent(ctx, bob, item, 2*fee)
		require.NoError(t, err)
		e.clock.Advance(3600)

		before := e.balance(t, engine)
		res, err := e.rent.EndRent(ctx, alice, item, 198_000)
		require.NoError(t, err)
		assert.Equal(t, int64(198_000), res.Refund)
		assert.Equal(t, int64(0), e.balance(t, alice))
		// The renter gets back exactly what the owner supplied.
		assert.Equal(t, int64(10_000_000-2*fee+198_000), e.balance(t, bob))
		assert.Equal(t, before, e.balance(t, engine))
		assert.Equal(t, int64(2_000), e.balance(t, engine))
	})

	t.Run("NotRented", func(t *testing.T) {
		e := newEnv(t)
		item := e.listed(t, 1)

		_, err := e.rent.EndRent(ctx, alice, item, 0)
		assert.ErrorIs(t, err, domain.ErrNotRented)
	})
}

func TestRentService_DepositOTC(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	item := e.own(t, 1)

	err := e.rent.DepositOTC(ctx, alice, item, t0+10*domain.Week, fee, alice)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	require.NoError(t, e.rent.DepositOTC(ctx, alice, item, t0+10*domain.Week, fee, bob))
	rented, err := e.rent.IsRented(ctx, item)
	require.NoError(t, err)
	assert.False(t, rented)

	_, err = e.rent.StartRent(ctx, carol, item, fee)
	assert.ErrorIs(t, err, domain.ErrOnlyRentableOTC)

	rec, err := e.rent.StartRent(ctx, bob, item, fee)
	require.NoError(t, err)
	assert.Equal(t, bob, rec.Rentee)
}

func TestRentService_Deposit(t *testing.T) {
	ctx := context.Background()

	t.Run("Validation", func(t *testing.T) {
		e := newEnv(t)
		item := e.own(t, 1)

		assert.ErrorIs(t, e.rent.Deposit(ctx, alice, item, t0, fee), domain.ErrInvalidDeadline)
		assert.ErrorIs(t, e.rent.Deposit(ctx, alice, item, t0+domain.Week, 0), domain.ErrZeroWeeklyFee)
		assert.Equal(t, alice, e.holder(t, "punks", 1))
	})

	t.Run("NotApproved", func(t *testing.T) {
		e := newEnv(t)
		require.NoError(t, e.tokens.Mint(ctx, "punks", alice, 1))
		item := domain.ItemKey{Collection: "punks", TokenID: 1}

		err := e.rent.Deposit(ctx, alice, item, t0+domain.Week, fee)
		assert.ErrorIs(t, err, domain.ErrTransferNotAllowed)
	})

	t.Run("NotHolder", func(t *testing.T) {
		e := newEnv(t)
		item := e.own(t, 1)

		err := e.rent.Deposit(ctx, bob, item, t0+domain.Week, fee)
		assert.ErrorIs(t, err, domain.ErrTransferNotAllowed)
	})

	t.Run("AlreadyDeposited", func(t *testing.T) {
		e := newEnv(t)
		item := e.listed(t, 1)

		err := e.rent.Deposit(ctx, alice, item, t0+domain.Week, fee)
		assert.ErrorIs(t, err, domain.ErrTransferNotAllowed)
	})
}

func TestRentService_Delegate(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	item := e.own(t, 1)

	assert.ErrorIs(t, e.rent.Delegate(ctx, alice, item, domain.ZeroAddress, t0+3*domain.Week), domain.ErrInvalidArgument)

	require.NoError(t, e.rent.Delegate(ctx, alice, item, carol, t0+3*domain.Week))
	rec, err := e.rent.GetRent(ctx, item)
	require.NoError(t, err)
	assert.True(t, rec.IsRented())
	assert.Zero(t, rec.PaidFee)
	assert.Equal(t, t0+3*domain.Week, rec.EndDate())
	assert.Equal(t, carol, e.holder(t, proxy, 1))

	uri, err := e.tokens.TokenURI(ctx, proxy, 1)
	require.NoError(t, err)
	assert.Equal(t, "ipfs://punks/1", uri)

	assert.ErrorIs(t, e.rent.Withdraw(ctx, alice, item), domain.ErrRentedItem)

	e.clock.Set(t0 + 3*domain.Week + 1)
	res, err := e.rent.EndRent(ctx, keeper, item, 0)
	require.NoError(t, err)
	assert.Equal(t, service.EndModeTerm, res.Mode)
	assert.Zero(t, res.KeeperFee)
	assert.Equal(t, alice, e.holder(t, "punks", 1))
}

func TestRentService_Withdraw(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	item := e.listed(t, 1)

	assert.ErrorIs(t, e.rent.Withdraw(ctx, bob, item), domain.ErrNotOwner)
	assert.ErrorIs(t, e.rent.Withdraw(ctx, alice, domain.ItemKey{Collection: "punks", TokenID: 2}), domain.ErrNotRentable)

	require.NoError(t, e.rent.Withdraw(ctx, alice, item))
	assert.Equal(t, alice, e.holder(t, "punks", 1))
	rec, err := e.rent.GetRent(ctx, item)
	require.NoError(t, err)
	assert.False(t, rec.IsListed())

	events, err := e.rent.ListEvents(ctx, 0, 0)
	require.NoError(t, err)
	require.NotEmpty(t, events)
	assert.Equal(t, domain.EventListingWithdrawn, events[len(events)-1].Type)
}

func TestRentService_Queries(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	item := e.listed(t, 1)
	idle := e.listed(t, 2)

	maxFee, err := e.rent.MaxPayableFee(ctx, item)
	require.NoError(t, err)
	assert.Equal(t, 1234*fee, maxFee)

	_, err = e.rent.StartRent(ctx, bob, item, 2*fee)
	require.NoError(t, err)

	maxFee, err = e.rent.MaxPayableFee(ctx, item)
	require.NoError(t, err)
	assert.Equal(t, 1232*fee, maxFee)

	paid, err := e.rent.PaidFeesOf(ctx, item)
	require.NoError(t, err)
	assert.Equal(t, 2*fee, paid)

	payback, err := e.rent.PaybackHelper(ctx, idle)
	require.NoError(t, err)
	assert.Zero(t, payback)

	rented, err := e.rent.ListRented(ctx)
	require.NoError(t, err)
	require.Len(t, rented, 1)
	assert.Equal(t, item, rented[0].Item)

	owned, err := e.rent.ListByOwner(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, owned, 2)

	view, err := e.rent.DescribeItem(ctx, item)
	require.NoError(t, err)
	assert.True(t, view.IsRented)
	assert.Equal(t, t0+2*domain.Week, view.EndDate)
	assert.Equal(t, int64(198_000), view.Payback)
	require.NotNil(t, view.Delegation)
	assert.Equal(t, alice, view.Delegation.RealOwner)

	events, err := e.rent.ListEvents(ctx, 0, 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, int64(1), events[0].Seq)
	later, err := e.rent.ListEvents(ctx, events[1].Seq, 0)
	require.NoError(t, err)
	for _, ev := range later {
		assert.Greater(t, ev.Seq, events[1].Seq)
	}
}

func TestRentService_ConservesValue(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	start := e.total(t)
	item := e.listed(t, 1)

	steps := []struct {
		name    string
		run     func() error
		wantErr error
	}{
		{"start", func() error { _, err := e.rent.StartRent(ctx, bob, item, 3*fee); return err }, nil},
		{"extend", func() error { _, err := e.rent.ExtendRent(ctx, bob, item, fee); return err }, nil},
		{"stranger ends", func() error { _, err := e.rent.EndRent(ctx, carol, item, 0); return err }, domain.ErrNotOwner},
		{"advance", func() error { e.clock.Advance(domain.Week + 5); return nil }, nil},
		{"short payback", func() error { _, err := e.rent.EndRent(ctx, alice, item, 1); return err }, domain.ErrWrongPaymentAmount},
		{"payback", func() error {
			owed, err := e.rent.PaybackHelper(ctx, item)
			if err != nil {
				return err
			}
			_, err = e.rent.EndRent(ctx, alice, item, owed)
			return err
		}, nil},
	}
	for _, step := range steps {
		err := step.run()
		if step.wantErr != nil {
			assert.ErrorIs(t, err, step.wantErr, step.name)
		} else {
			require.NoError(t, err, step.name)
		}
		assert.Equal(t, start, e.total(t), step.name)
	}
	assert.Equal(t, alice, e.holder(t, "punks", 1))
}
