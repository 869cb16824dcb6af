package postgres_test

import (
	"context"
	"math"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentescrow-backend/internal/domain"
	"rentescrow-backend/internal/repository"
	"rentescrow-backend/internal/repository/postgres"
)

var item = domain.ItemKey{Collection: "punks", TokenID: 7}

func newStore(t *testing.T) (*postgres.Store, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return postgres.NewStore(db), mock
}

func expectBegin(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectExec("SELECT pg_advisory_xact_lock").
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
}

func TestStore_GetRent(t *testing.T) {
	store, mock := newStore(t)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		expectBegin(mock)
		mock.ExpectQuery("SELECT (.+) FROM rent_records WHERE collection = \\$1 AND token_id = \\$2").
			WithArgs(item.Collection, item.TokenID).
			WillReturnRows(sqlmock.NewRows([]string{
				"collection", "token_id", "owner", "deadline", "weekly_fee", "auction_kind", "rentee", "start_time", "paid_fee",
			}).AddRow("punks", 7, "alice", 1000, 50, "NONE", "bob", 10, 100))
		mock.ExpectRollback()

		tx, err := store.Begin(ctx)
		require.NoError(t, err)
		rec, err := tx.GetRent(ctx, item)
		require.NoError(t, err)
		require.NoError(t, tx.Rollback())

		assert.Equal(t, domain.Address("alice"), rec.Owner)
		assert.Equal(t, domain.Address("bob"), rec.Rentee)
		assert.Equal(t, int64(100), rec.PaidFee)
		assert.Equal(t, domain.AuctionKindNone, rec.AuctionKind)
		assert.Equal(t, item, rec.Item)
		assert.Equal(t, int64(1000), rec.Deadline)
		assert.Equal(t, int64(50), rec.WeeklyFee)
		assert.Equal(t, int64(10), rec.StartTime)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing", func(t *testing.T) {
		expectBegin(mock)
		mock.ExpectQuery("SELECT (.+) FROM rent_records").
			WithArgs(item.Collection, item.TokenID).
			WillReturnRows(sqlmock.NewRows([]string{"collection"}))
		mock.ExpectRollback()

		tx, err := store.Begin(ctx)
		require.NoError(t, err)
		rec, err := tx.GetRent(ctx, item)
		require.NoError(t, tx.Rollback())

		assert.NoError(t, err)
		assert.Nil(t, rec)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore_WithTxCommitsWrites(t *testing.T) {
	store, mock := newStore(t)
	ctx := context.Background()

	rec := &domain.RentRecord{Item: item, Owner: "alice", Deadline: 5000, WeeklyFee: 10, AuctionKind: domain.AuctionKindNone}

	expectBegin(mock)
	mock.ExpectExec("INSERT INTO rent_records").
		WithArgs(item.Collection, item.TokenID, rec.Owner, rec.Deadline, rec.WeeklyFee, rec.AuctionKind, rec.Rentee, rec.StartTime, rec.PaidFee).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO accounts").
		WithArgs(domain.Address("alice"), int64(90), false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repository.WithTx(ctx, store, func(tx repository.Tx) error {
		if err := tx.SaveRent(ctx, rec); err != nil {
			return err
		}
		return tx.SaveAccount(ctx, &domain.Account{Address: "alice", Balance: 90})
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_WithTxRollsBackOnError(t *testing.T) {
	store, mock := newStore(t)
	ctx := context.Background()

	expectBegin(mock)
	mock.ExpectExec("DELETE FROM rent_records").
		WithArgs(item.Collection, item.TokenID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	err := repository.WithTx(ctx, store, func(tx repository.Tx) error {
		if err := tx.DeleteRent(ctx, item); err != nil {
			return err
		}
		return domain.ErrNotOwner
	})
	assert.ErrorIs(t, err, domain.ErrNotOwner)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_AppendEvent(t *testing.T) {
	store, mock := newStore(t)
	ctx := context.Background()

	ev := domain.NewEvent(domain.EventRentStarted, item, "bob", 42, map[string]string{"paid_fee": "100"})

	expectBegin(mock)
	mock.ExpectQuery("INSERT INTO events").
		WithArgs(ev.ID, ev.Type, item.Collection, item.TokenID, ev.Actor, []byte(`{"paid_fee":"100"}`), int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(12))
	mock.ExpectCommit()

	err := repository.WithTx(ctx, store, func(tx repository.Tx) error {
		return tx.AppendEvent(ctx, ev)
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), ev.Seq)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ListTransfers(t *testing.T) {
	store, mock := newStore(t)
	ctx := context.Background()

	expectBegin(mock)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM transfers").
		WithArgs(domain.Address("alice")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery("SELECT (.+) FROM transfers WHERE (.+) ORDER BY seq DESC LIMIT \\$2 OFFSET \\$3").
		WithArgs(domain.Address("alice"), int32(2), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "from_address", "to_address", "amount", "type", "item_collection", "item_token_id", "description", "created_at",
		}).AddRow("t1", "", "alice", 500, "DEPOSIT", nil, nil, "external deposit", 1))
	mock.ExpectRollback()

	tx, err := store.Begin(ctx)
	require.NoError(t, err)
	transfers, count, err := tx.ListTransfers(ctx, "alice", 2, 2)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	assert.Equal(t, int32(3), count)
	require.Len(t, transfers, 1)
	assert.Nil(t, transfers[0].Item)
	assert.Equal(t, domain.TransferTypeDeposit, transfers[0].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ListTransfers_LargeOffset(t *testing.T) {
	store, mock := newStore(t)
	ctx := context.Background()

	expectBegin(mock)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM transfers").
		WithArgs(domain.Address("alice")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery("SELECT (.+) FROM transfers WHERE (.+) LIMIT \\$2 OFFSET \\$3").
		WithArgs(domain.Address("alice"), int32(2), int64(math.MaxInt32-1)*2).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "from_address", "to_address", "amount", "type", "item_collection", "item_token_id", "description", "created_at",
		}))
	mock.ExpectRollback()

	tx, err := store.Begin(ctx)
	require.NoError(t, err)
	transfers, count, err := tx.ListTransfers(ctx, "alice", math.MaxInt32, 2)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	assert.Equal(t, int32(3), count)
	assert.Empty(t, transfers)
	assert.NoError(t, mock.ExpectationsWereMet())
}
