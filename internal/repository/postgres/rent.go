package postgres

import (
	"context"

	"rentescrow-backend/internal/domain"
	"rentescrow-backend/internal/logger"
)

const rentColumns = `collection, token_id, owner, deadline, weekly_fee, auction_kind, rentee, start_time, paid_fee`

func scanRent(scan func(dest ...any) error) (*domain.RentRecord, error) {
	rec := &domain.RentRecord{}
	err := scan(
		&rec.Item.Collection, &rec.Item.TokenID, &rec.Owner, &rec.Deadline, &rec.WeeklyFee,
		&rec.AuctionKind, &rec.Rentee, &rec.StartTime, &rec.PaidFee,
	)
	return rec, err
}

func (t *tx) GetRent(ctx context.Context, item domain.ItemKey) (*domain.RentRecord, error) {
	query := `SELECT ` + rentColumns + ` FROM rent_records WHERE collection = $1 AND token_id = $2`
	var found bool
	rec, err := scanRent(func(dest ...any) error {
		var err error
		found, err = t.get(ctx, "GetRent", query, []any{item.Collection, item.TokenID}, dest...)
		return err
	})
	if err != nil || !found {
		return nil, err
	}
	return rec, nil
}

func (t *tx) SaveRent(ctx context.Context, rec *domain.RentRecord) error {
	query := `
		INSERT INTO rent_records (` + rentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (collection, token_id) DO UPDATE SET
			owner = EXCLUDED.owner, deadline = EXCLUDED.deadline, weekly_fee = EXCLUDED.weekly_fee,
			auction_kind = EXCLUDED.auction_kind, rentee = EXCLUDED.rentee,
			start_time = EXCLUDED.start_time, paid_fee = EXCLUDED.paid_fee
	`
	return t.exec(ctx, "SaveRent", query,
		rec.Item.Collection, rec.Item.TokenID, rec.Owner, rec.Deadline, rec.WeeklyFee,
		rec.AuctionKind, rec.Rentee, rec.StartTime, rec.PaidFee,
	)
}

func (t *tx) DeleteRent(ctx context.Context, item domain.ItemKey) error {
	return t.exec(ctx, "DeleteRent", `DELETE FROM rent_records WHERE collection = $1 AND token_id = $2`,
		item.Collection, item.TokenID)
}

func (t *tx) ListRented(ctx context.Context) ([]domain.RentRecord, error) {
	query := `SELECT ` + rentColumns + ` FROM rent_records WHERE start_time <> 0 ORDER BY collection, token_id`
	return t.listRent(ctx, "ListRented", query)
}

func (t *tx) ListByOwner(ctx context.Context, owner domain.Address) ([]domain.RentRecord, error) {
	query := `SELECT ` + rentColumns + ` FROM rent_records WHERE owner = $1 ORDER BY collection, token_id`
	return t.listRent(ctx, "ListByOwner", query, owner)
}

func (t *tx) listRent(ctx context.Context, operation, query string, args ...any) ([]domain.RentRecord, error) {
	logger.DatabaseCall(operation, query)
	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		logger.DatabaseResult(operation, 0, err)
		return nil, err
	}
	defer rows.Close()

	var out []domain.RentRecord
	for rows.Next() {
		rec, err := scanRent(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	logger.DatabaseResult(operation, int64(len(out)), rows.Err())
	return out, rows.Err()
}
