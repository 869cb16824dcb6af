package jobs

import (
	"context"

	"rentescrow-backend/internal/domain"
	"rentescrow-backend/internal/logger"
)

const (
	JobSettleExpiredRentals = "settle_expired_rentals"
	JobCloseEndedAuctions   = "close_ended_auctions"
)

// SettleExpiredRentals ends every rental whose paid period is over. Items
// still before their deadline are relisted, the rest go back to their owners.
func (jr *JobRunner) SettleExpiredRentals() {
	jr.runWithRecovery(JobSettleExpiredRentals, jr.settleExpiredRentals)
}

func (jr *JobRunner) settleExpiredRentals(ctx context.Context) (int, error) {
	recs, err := jr.rent.ListRented(ctx)
	if err != nil {
		return 0, err
	}

	now := jr.clock.Now()
	settled := 0
	for i := range recs {
		rec := &recs[i]
		if now <= rec.EndDate() {
			continue
		}
		res, err := jr.rent.EndRent(ctx, jr.keeper, rec.Item, 0)
		if err != nil {
			// Another keeper may have settled it first.
			logger.Warn("Failed to settle rental", "item", rec.Item.String(), "reason", domain.ErrorCode(err), "error", err)
			continue
		}
		logger.Info("Settled rental", "item", rec.Item.String(), "mode", res.Mode, "keeper_fee", res.KeeperFee)
		settled++
	}
	return settled, nil
}

// CloseEndedAuctions awards every ascending auction past its deadline that
// has a bid. Auctions without bids stay open until the owner withdraws.
func (jr *JobRunner) CloseEndedAuctions() {
	jr.runWithRecovery(JobCloseEndedAuctions, jr.closeEndedAuctions)
}

func (jr *JobRunner) closeEndedAuctions(ctx context.Context) (int, error) {
	auctions, err := jr.rent.ListEnglishAuctions(ctx)
	if err != nil {
		return 0, err
	}

	now := jr.clock.Now()
	closed := 0
	for i := range auctions {
		a := &auctions[i]
		if now <= a.AuctionDeadline || !a.HasBid() {
			continue
		}
		rec, err := jr.rent.EndAuction(ctx, jr.keeper, a.Item)
		if err != nil {
			logger.Warn("Failed to close auction", "item", a.Item.String(), "reason", domain.ErrorCode(err), "error", err)
			continue
		}
		logger.Info("Closed auction", "item", a.Item.String(), "rentee", rec.Rentee, "weekly_fee", rec.WeeklyFee)
		closed++
	}
	return closed, nil
}
