package postgres

import (
	"context"
	"database/sql"

	"rentescrow-backend/internal/domain"
	"rentescrow-backend/internal/logger"
)

func (t *tx) GetAccount(ctx context.Context, addr domain.Address) (*domain.Account, error) {
	acct := &domain.Account{Address: addr}
	found, err := t.get(ctx, "GetAccount",
		`SELECT balance, rejects_payments FROM accounts WHERE address = $1`,
		[]any{addr}, &acct.Balance, &acct.RejectsPayments)
	if err != nil || !found {
		return nil, err
	}
	return acct, nil
}

func (t *tx) SaveAccount(ctx context.Context, acct *domain.Account) error {
	query := `
		INSERT INTO accounts (address, balance, rejects_payments)
		VALUES ($1, $2, $3)
		ON CONFLICT (address) DO UPDATE SET
			balance = EXCLUDED.balance, rejects_payments = EXCLUDED.rejects_payments
	`
	return t.exec(ctx, "SaveAccount", query, acct.Address, acct.Balance, acct.RejectsPayments)
}

func (t *tx) CreateTransfer(ctx context.Context, tr *domain.Transfer) error {
	var collection sql.NullString
	var tokenID sql.NullInt64
	if tr.Item != nil {
		collection = sql.NullString{String: string(tr.Item.Collection), Valid: true}
		tokenID = sql.NullInt64{Int64: tr.Item.TokenID, Valid: true}
	}
	query := `
		INSERT INTO transfers (id, from_address, to_address, amount, type, item_collection, item_token_id, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	return t.exec(ctx, "CreateTransfer", query,
		tr.ID, tr.From, tr.To, tr.Amount, tr.Type, collection, tokenID, tr.Description, tr.CreatedAt)
}

// ListTransfers returns the newest transfers touching addr first.
func (t *tx) ListTransfers(ctx context.Context, addr domain.Address, page, pageSize int32) ([]domain.Transfer, int32, error) {
	logger.DatabaseCall("ListTransfers", "transfers", "address", addr, "page", page, "pageSize", pageSize)

	var count int32
	err := t.tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM transfers WHERE from_address = $1 OR to_address = $1`, addr,
	).Scan(&count)
	if err != nil {
		logger.DatabaseResult("ListTransfers", 0, err)
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	query := `
		SELECT id, from_address, to_address, amount, type, item_collection, item_token_id, description, created_at
		FROM transfers WHERE from_address = $1 OR to_address = $1
		ORDER BY seq DESC
	`
	args := []any{addr}
	if pageSize > 0 {
		query += ` LIMIT $2 OFFSET $3`
		args = append(args, pageSize, int64(page-1)*int64(pageSize))
	}

	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		logger.DatabaseResult("ListTransfers", 0, err)
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.Transfer
	for rows.Next() {
		var tr domain.Transfer
		var collection sql.NullString
		var tokenID sql.NullInt64
		if err := rows.Scan(&tr.ID, &tr.From, &tr.To, &tr.Amount, &tr.Type, &collection, &tokenID,
			&tr.Description, &tr.CreatedAt); err != nil {
			return nil, 0, err
		}
		if collection.Valid {
			tr.Item = &domain.ItemKey{Collection: domain.Address(collection.String), TokenID: tokenID.Int64}
		}
		out = append(out, tr)
	}
	logger.DatabaseResult("ListTransfers", int64(len(out)), rows.Err())
	return out, count, rows.Err()
}
