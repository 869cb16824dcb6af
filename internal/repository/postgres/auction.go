package postgres

import (
	"context"

	"rentescrow-backend/internal/domain"
	"rentescrow-backend/internal/logger"
)

func (t *tx) GetDutchAuction(ctx context.Context, item domain.ItemKey) (*domain.DutchAuction, error) {
	query := `
		SELECT auction_deadline, min_weekly_price, start_weekly_price, auction_start
		FROM dutch_auctions WHERE collection = $1 AND token_id = $2
	`
	a := &domain.DutchAuction{Item: item}
	found, err := t.get(ctx, "GetDutchAuction", query, []any{item.Collection, item.TokenID},
		&a.AuctionDeadline, &a.MinWeeklyPrice, &a.StartWeeklyPrice, &a.AuctionStart)
	if err != nil || !found {
		return nil, err
	}
	return a, nil
}

func (t *tx) SaveDutchAuction(ctx context.Context, a *domain.DutchAuction) error {
	query := `
		INSERT INTO dutch_auctions (collection, token_id, auction_deadline, min_weekly_price, start_weekly_price, auction_start)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (collection, token_id) DO UPDATE SET
			auction_deadline = EXCLUDED.auction_deadline, min_weekly_price = EXCLUDED.min_weekly_price,
			start_weekly_price = EXCLUDED.start_weekly_price, auction_start = EXCLUDED.auction_start
	`
	return t.exec(ctx, "SaveDutchAuction", query,
		a.Item.Collection, a.Item.TokenID, a.AuctionDeadline, a.MinWeeklyPrice, a.StartWeeklyPrice, a.AuctionStart)
}

func (t *tx) DeleteDutchAuction(ctx context.Context, item domain.ItemKey) error {
	return t.exec(ctx, "DeleteDutchAuction", `DELETE FROM dutch_auctions WHERE collection = $1 AND token_id = $2`,
		item.Collection, item.TokenID)
}

func (t *tx) GetEnglishAuction(ctx context.Context, item domain.ItemKey) (*domain.EnglishAuction, error) {
	query := `
		SELECT auto_accept_price, auction_deadline, highest_bid, highest_bidder, collateral
		FROM english_auctions WHERE collection = $1 AND token_id = $2
	`
	a := &domain.EnglishAuction{Item: item}
	found, err := t.get(ctx, "GetEnglishAuction", query, []any{item.Collection, item.TokenID},
		&a.AutoAcceptPrice, &a.AuctionDeadline, &a.HighestBid, &a.HighestBidder, &a.Collateral)
	if err != nil || !found {
		return nil, err
	}
	return a, nil
}

func (t *tx) SaveEnglishAuction(ctx context.Context, a *domain.EnglishAuction) error {
	query := `
		INSERT INTO english_auctions (collection, token_id, auto_accept_price, auction_deadline, highest_bid, highest_bidder, collateral)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (collection, token_id) DO UPDATE SET
			auto_accept_price = EXCLUDED.auto_accept_price, auction_deadline = EXCLUDED.auction_deadline,
			highest_bid = EXCLUDED.highest_bid, highest_bidder = EXCLUDED.highest_bidder,
			collateral = EXCLUDED.collateral
	`
	return t.exec(ctx, "SaveEnglishAuction", query,
		a.Item.Collection, a.Item.TokenID, a.AutoAcceptPrice, a.AuctionDeadline, a.HighestBid, a.HighestBidder, a.Collateral)
}

func (t *tx) DeleteEnglishAuction(ctx context.Context, item domain.ItemKey) error {
	return t.exec(ctx, "DeleteEnglishAuction", `DELETE FROM english_auctions WHERE collection = $1 AND token_id = $2`,
		item.Collection, item.TokenID)
}

func (t *tx) ListEnglishAuctions(ctx context.Context) ([]domain.EnglishAuction, error) {
	query := `
		SELECT collection, token_id, auto_accept_price, auction_deadline, highest_bid, highest_bidder, collateral
		FROM english_auctions ORDER BY auction_deadline, collection, token_id
	`
	logger.DatabaseCall("ListEnglishAuctions", query)
	rows, err := t.tx.QueryContext(ctx, query)
	if err != nil {
		logger.DatabaseResult("ListEnglishAuctions", 0, err)
		return nil, err
	}
	defer rows.Close()

	var out []domain.EnglishAuction
	for rows.Next() {
		var a domain.EnglishAuction
		if err := rows.Scan(&a.Item.Collection, &a.Item.TokenID, &a.AutoAcceptPrice, &a.AuctionDeadline,
			&a.HighestBid, &a.HighestBidder, &a.Collateral); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	logger.DatabaseResult("ListEnglishAuctions", int64(len(out)), rows.Err())
	return out, rows.Err()
}
