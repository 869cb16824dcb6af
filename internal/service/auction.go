package service

import (
	"context"
	"fmt"

	"rentescrow-backend/internal/domain"
)

// NewBid places a bid on an auctioned listing. weeklyPrice is the price per
// week the bidder offers; value is the payment or collateral sent along and
// must buy whole weeks at that price.
func (s *rentService) NewBid(ctx context.Context, sender domain.Address, item domain.ItemKey, weeklyPrice, value int64) (*BidResult, error) {
	var out *BidResult
	err := s.execute(ctx, "NewBid", sender, item, func(op *operation) error {
		rec, err := op.listed(item)
		if err != nil {
			return err
		}
		if rec.IsRented() {
			return fmt.Errorf("item %s is rented: %w", item, domain.ErrAuctionNotActive)
		}
		switch rec.AuctionKind {
		case domain.AuctionKindDescending:
			out, err = op.bidDutch(rec, weeklyPrice, value)
		case domain.AuctionKindAscending:
			out, err = op.bidEnglish(rec, weeklyPrice, value)
		default:
			err = fmt.Errorf("item %s has no auction: %w", item, domain.ErrAuctionNotActive)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// bidDutch accepts the first bid at or above the current price and turns the
// listing into a regular rental at the bid price.
func (op *operation) bidDutch(rec *domain.RentRecord, weeklyPrice, value int64) (*BidResult, error) {
	auction, err := op.tx.GetDutchAuction(op.ctx, rec.Item)
	if err != nil {
		return nil, err
	}
	if auction == nil {
		return nil, fmt.Errorf("item %s: %w", rec.Item, domain.ErrAuctionNotActive)
	}
	price := auction.PriceAt(op.now)
	if weeklyPrice < price {
		return nil, fmt.Errorf("bid %d below current price %d: %w", weeklyPrice, price, domain.ErrInvalidBid)
	}
	weeks, err := checkPayment(value, weeklyPrice)
	if err != nil {
		return nil, err
	}
	if err := checkCoverage(op.now, weeks, rec.Deadline); err != nil {
		return nil, err
	}
	if err := op.tx.DeleteDutchAuction(op.ctx, rec.Item); err != nil {
		return nil, err
	}
	if err := op.collect(value, domain.TransferTypePayment, rec.Item); err != nil {
		return nil, err
	}
	rec.WeeklyFee = weeklyPrice
	rec.AuctionKind = domain.AuctionKindNone
	if err := op.beginRent(rec, op.sender, value, netOfFee(value, op.feePercent())); err != nil {
		return nil, err
	}
	return &BidResult{Awarded: true, Record: rec}, nil
}

// bidEnglish escrows a strictly higher bid and refunds the previous leader in
// the same operation. A bid exactly at the auto-accept price wins at once.
func (op *operation) bidEnglish(rec *domain.RentRecord, weeklyPrice, value int64) (*BidResult, error) {
	auction, err := op.tx.GetEnglishAuction(op.ctx, rec.Item)
	if err != nil {
		return nil, err
	}
	if auction == nil {
		return nil, fmt.Errorf("item %s: %w", rec.Item, domain.ErrAuctionNotActive)
	}
	if op.now > auction.AuctionDeadline {
		return nil, fmt.Errorf("auction for %s closed at %d: %w", rec.Item, auction.AuctionDeadline, domain.ErrAuctionEnded)
	}
	if weeklyPrice <= auction.HighestBid {
		return nil, fmt.Errorf("bid %d does not beat %d: %w", weeklyPrice, auction.HighestBid, domain.ErrInvalidBid)
	}
	if auction.AutoAcceptPrice > 0 && weeklyPrice > auction.AutoAcceptPrice {
		return nil, fmt.Errorf("bid %d above auto accept price %d: %w", weeklyPrice, auction.AutoAcceptPrice, domain.ErrInvalidBid)
	}
	weeks, err := checkPayment(value, weeklyPrice)
	if err != nil {
		return nil, err
	}
	if err := checkCoverage(op.now, weeks, rec.Deadline); err != nil {
		return nil, err
	}
	if err := op.collect(value, domain.TransferTypeCollateral, rec.Item); err != nil {
		return nil, err
	}
	if auction.HasBid() {
		if err := op.pay(auction.HighestBidder, auction.Collateral, domain.TransferTypeRefund, rec.Item, "outbid"); err != nil {
			return nil, err
		}
	}
	auction.HighestBid = weeklyPrice
	auction.HighestBidder = op.sender
	auction.Collateral = value
	if err := op.emit(domain.EventBidPlaced, rec.Item, map[string]string{
		"weekly_price": itoa(weeklyPrice),
		"collateral":   itoa(value),
	}); err != nil {
		return nil, err
	}

	if auction.AutoAcceptPrice > 0 && weeklyPrice == auction.AutoAcceptPrice {
		if err := op.award(rec, auction, domain.ZeroAddress); err != nil {
			return nil, err
		}
		return &BidResult{Awarded: true, Record: rec}, nil
	}
	if err := op.tx.SaveEnglishAuction(op.ctx, auction); err != nil {
		return nil, err
	}
	return &BidResult{Auction: auction}, nil
}

// EndAuction awards a closed ascending auction to its leader and pays the
// caller a keeper fee.
func (s *rentService) EndAuction(ctx context.Context, sender domain.Address, item domain.ItemKey) (*domain.RentRecord, error) {
	var out *domain.RentRecord
	err := s.execute(ctx, "EndAuction", sender, item, func(op *operation) error {
		rec, err := op.listed(item)
		if err != nil {
			return err
		}
		if rec.AuctionKind != domain.AuctionKindAscending || rec.IsRented() {
			return fmt.Errorf("item %s: %w", item, domain.ErrAuctionNotActive)
		}
		auction, err := op.tx.GetEnglishAuction(op.ctx, item)
		if err != nil {
			return err
		}
		if auction == nil {
			return fmt.Errorf("item %s: %w", item, domain.ErrAuctionNotActive)
		}
		if op.now <= auction.AuctionDeadline {
			return fmt.Errorf("auction for %s closes at %d: %w", item, auction.AuctionDeadline, domain.ErrAuctionNotClosable)
		}
		if !auction.HasBid() {
			return fmt.Errorf("auction for %s: %w", item, domain.ErrNoBids)
		}
		if err := op.award(rec, auction, sender); err != nil {
			return err
		}
		out = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// award starts the winner's rental from the escrowed collateral. The owner
// gives up two keeper shares: one stays in escrow for the keeper who later
// settles the rental, the other pays whoever closed the auction (or stays in
// escrow when the bid auto-accepted).
func (op *operation) award(rec *domain.RentRecord, auction *domain.EnglishAuction, keeper domain.Address) error {
	weeks := auction.Collateral / auction.HighestBid
	if err := checkCoverage(op.now, weeks, rec.Deadline); err != nil {
		return err
	}
	if err := op.tx.DeleteEnglishAuction(op.ctx, rec.Item); err != nil {
		return err
	}
	rec.WeeklyFee = auction.HighestBid
	rec.AuctionKind = domain.AuctionKindNone
	ownerShare := netOfFee(auction.Collateral, 2*op.feePercent())
	if err := op.beginRent(rec, auction.HighestBidder, auction.Collateral, ownerShare); err != nil {
		return err
	}
	if keeper.IsZero() {
		return nil
	}
	return op.pay(keeper, keeperShare(auction.Collateral, op.feePercent()), domain.TransferTypeKeeperFee, rec.Item, "auction settlement")
}
