package service

import (
	"context"
	"fmt"

	"rentescrow-backend/internal/domain"
)

// list takes custody of the item and writes a fresh record.
func (op *operation) list(item domain.ItemKey, deadline, weeklyFee int64, kind domain.AuctionKind, restrictedTo domain.Address) (*domain.RentRecord, error) {
	if deadline <= op.now {
		return nil, fmt.Errorf("deadline %d is not after %d: %w", deadline, op.now, domain.ErrInvalidDeadline)
	}
	existing, err := op.rent(item)
	if err != nil {
		return nil, err
	}
	if existing.IsListed() {
		return nil, fmt.Errorf("item %s is already deposited: %w", item, domain.ErrTransferNotAllowed)
	}
	if err := op.takeCustody(item); err != nil {
		return nil, err
	}
	rec := &domain.RentRecord{
		Item:        item,
		Owner:       op.sender,
		Deadline:    deadline,
		WeeklyFee:   weeklyFee,
		AuctionKind: kind,
		Rentee:      restrictedTo,
	}
	if err := op.tx.SaveRent(op.ctx, rec); err != nil {
		return nil, err
	}
	attrs := map[string]string{
		"deadline":     itoa(deadline),
		"weekly_fee":   itoa(weeklyFee),
		"auction_kind": string(kind),
	}
	if !restrictedTo.IsZero() {
		attrs["restricted_to"] = string(restrictedTo)
	}
	if err := op.emit(domain.EventListingCreated, item, attrs); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *rentService) Deposit(ctx context.Context, sender domain.Address, item domain.ItemKey, deadline, weeklyFee int64) error {
	return s.DepositOTC(ctx, sender, item, deadline, weeklyFee, domain.ZeroAddress)
}

// DepositOTC lists an item that only restrictedTo may rent. A zero
// restrictedTo makes it an open listing.
func (s *rentService) DepositOTC(ctx context.Context, sender domain.Address, item domain.ItemKey, deadline, weeklyFee int64, restrictedTo domain.Address) error {
	name := "Deposit"
	if !restrictedTo.IsZero() {
		name = "DepositOTC"
	}
	return s.execute(ctx, name, sender, item, func(op *operation) error {
		if weeklyFee <= 0 {
			return fmt.Errorf("weekly fee must be positive: %w", domain.ErrZeroWeeklyFee)
		}
		if restrictedTo == sender {
			return fmt.Errorf("owner cannot reserve own listing: %w", domain.ErrInvalidArgument)
		}
		_, err := op.list(item, deadline, weeklyFee, domain.AuctionKindNone, restrictedTo)
		return err
	})
}

func (s *rentService) DepositDutchAuction(ctx context.Context, sender domain.Address, item domain.ItemKey, deadline int64, params DutchAuctionParams) error {
	return s.execute(ctx, "DepositDutchAuction", sender, item, func(op *operation) error {
		if params.MinWeeklyPrice <= 0 || params.StartWeeklyPrice < params.MinWeeklyPrice {
			return fmt.Errorf("dutch prices start=%d min=%d: %w", params.StartWeeklyPrice, params.MinWeeklyPrice, domain.ErrInvalidArgument)
		}
		if params.AuctionDeadline <= op.now || params.AuctionDeadline > deadline {
			return fmt.Errorf("auction deadline %d outside (%d, %d]: %w", params.AuctionDeadline, op.now, deadline, domain.ErrInvalidDeadline)
		}
		if _, err := op.list(item, deadline, 0, domain.AuctionKindDescending, domain.ZeroAddress); err != nil {
			return err
		}
		auction := &domain.DutchAuction{
			Item:             item,
			AuctionDeadline:  params.AuctionDeadline,
			MinWeeklyPrice:   params.MinWeeklyPrice,
			StartWeeklyPrice: params.StartWeeklyPrice,
			AuctionStart:     op.now,
		}
		if err := op.tx.SaveDutchAuction(op.ctx, auction); err != nil {
			return err
		}
		return op.emit(domain.EventAuctionStarted, item, map[string]string{
			"kind":               string(domain.AuctionKindDescending),
			"auction_deadline":   itoa(params.AuctionDeadline),
			"min_weekly_price":   itoa(params.MinWeeklyPrice),
			"start_weekly_price": itoa(params.StartWeeklyPrice),
		})
	})
}

func (s *rentService) DepositEnglishAuction(ctx context.Context, sender domain.Address, item domain.ItemKey, deadline int64, params EnglishAuctionParams) error {
	return s.execute(ctx, "DepositEnglishAuction", sender, item, func(op *operation) error {
		if params.AutoAcceptPrice < 0 {
			return fmt.Errorf("auto accept price %d: %w", params.AutoAcceptPrice, domain.ErrInvalidArgument)
		}
		if params.AuctionDeadline <= op.now || params.AuctionDeadline > deadline {
			return fmt.Errorf("auction deadline %d outside (%d, %d]: %w", params.AuctionDeadline, op.now, deadline, domain.ErrInvalidDeadline)
		}
		if _, err := op.list(item, deadline, 0, domain.AuctionKindAscending, domain.ZeroAddress); err != nil {
			return err
		}
		auction := &domain.EnglishAuction{
			Item:            item,
			AutoAcceptPrice: params.AutoAcceptPrice,
			AuctionDeadline: params.AuctionDeadline,
		}
		if err := op.tx.SaveEnglishAuction(op.ctx, auction); err != nil {
			return err
		}
		return op.emit(domain.EventAuctionStarted, item, map[string]string{
			"kind":              string(domain.AuctionKindAscending),
			"auction_deadline":  itoa(params.AuctionDeadline),
			"auto_accept_price": itoa(params.AutoAcceptPrice),
		})
	})
}

// Delegate deposits the item and grants it to `to` at once, free of charge,
// until deadline.
func (s *rentService) Delegate(ctx context.Context, sender domain.Address, item domain.ItemKey, to domain.Address, deadline int64) error {
	return s.execute(ctx, "Delegate", sender, item, func(op *operation) error {
		if to.IsZero() {
			return fmt.Errorf("delegatee is required: %w", domain.ErrInvalidArgument)
		}
		rec, err := op.list(item, deadline, 0, domain.AuctionKindNone, domain.ZeroAddress)
		if err != nil {
			return err
		}
		return op.beginRent(rec, to, 0, 0)
	})
}

// Withdraw returns an idle item to its owner, refunding any pending bid.
func (s *rentService) Withdraw(ctx context.Context, sender domain.Address, item domain.ItemKey) error {
	return s.execute(ctx, "Withdraw", sender, item, func(op *operation) error {
		rec, err := op.listed(item)
		if err != nil {
			return err
		}
		if rec.Owner != sender {
			return fmt.Errorf("%s does not own listing %s: %w", sender, item, domain.ErrNotOwner)
		}
		if rec.IsRented() {
			return fmt.Errorf("item %s is rented until %d: %w", item, rec.EndDate(), domain.ErrRentedItem)
		}
		if err := op.clearAuctions(rec); err != nil {
			return err
		}
		if err := op.returnToOwner(rec); err != nil {
			return err
		}
		if err := op.tx.DeleteRent(op.ctx, item); err != nil {
			return err
		}
		return op.emit(domain.EventListingWithdrawn, item, nil)
	})
}

// clearAuctions drops auction state, refunding the escrowed bidder first.
func (op *operation) clearAuctions(rec *domain.RentRecord) error {
	switch rec.AuctionKind {
	case domain.AuctionKindAscending:
		auction, err := op.tx.GetEnglishAuction(op.ctx, rec.Item)
		if err != nil {
			return err
		}
		if auction.HasBid() {
			if err := op.pay(auction.HighestBidder, auction.Collateral, domain.TransferTypeRefund, rec.Item, "auction cancelled"); err != nil {
				return err
			}
		}
		return op.tx.DeleteEnglishAuction(op.ctx, rec.Item)
	case domain.AuctionKindDescending:
		return op.tx.DeleteDutchAuction(op.ctx, rec.Item)
	}
	return nil
}
