package service

import (
	"context"
	"fmt"

	"rentescrow-backend/internal/domain"
)

func (s *rentService) StartRent(ctx context.Context, sender domain.Address, item domain.ItemKey, value int64) (*domain.RentRecord, error) {
	var out *domain.RentRecord
	err := s.execute(ctx, "StartRent", sender, item, func(op *operation) error {
		rec, err := op.listed(item)
		if err != nil {
			return err
		}
		if rec.IsRented() {
			return fmt.Errorf("item %s is rented by %s: %w", item, rec.Rentee, domain.ErrRentedItem)
		}
		if rec.AuctionKind != domain.AuctionKindNone {
			return fmt.Errorf("item %s is listed for auction: %w", item, domain.ErrNotRentable)
		}
		if !rec.Rentee.IsZero() && rec.Rentee != sender {
			return fmt.Errorf("item %s is reserved for %s: %w", item, rec.Rentee, domain.ErrOnlyRentableOTC)
		}
		weeks, err := checkPayment(value, rec.WeeklyFee)
		if err != nil {
			return err
		}
		if err := checkCoverage(op.now, weeks, rec.Deadline); err != nil {
			return err
		}
		if err := op.collect(value, domain.TransferTypePayment, item); err != nil {
			return err
		}
		if err := op.beginRent(rec, sender, value, netOfFee(value, op.feePercent())); err != nil {
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

// ExtendRent adds paid weeks to the current rental. Custody and the start
// time stay as they are.
func (s *rentService) ExtendRent(ctx context.Context, sender domain.Address, item domain.ItemKey, value int64) (*domain.RentRecord, error) {
	var out *domain.RentRecord
	err := s.execute(ctx, "ExtendRent", sender, item, func(op *operation) error {
		rec, err := op.listed(item)
		if err != nil {
			return err
		}
		if !rec.IsRented() {
			return fmt.Errorf("item %s: %w", item, domain.ErrNotRented)
		}
		if rec.Rentee != sender {
			return fmt.Errorf("%s is not the rentee of %s: %w", sender, item, domain.ErrNotRentee)
		}
		if _, err := checkPayment(value, rec.WeeklyFee); err != nil {
			return err
		}
		total, err := addFees(rec.PaidFee, value)
		if err != nil {
			return err
		}
		if err := checkCoverage(rec.StartTime, total/rec.WeeklyFee, rec.Deadline); err != nil {
			return err
		}
		if err := op.collect(value, domain.TransferTypePayment, item); err != nil {
			return err
		}
		rec.PaidFee = total
		if err := op.tx.SaveRent(op.ctx, rec); err != nil {
			return err
		}
		if err := op.pay(rec.Owner, netOfFee(value, op.feePercent()), domain.TransferTypeOwnerCredit, item, "rental extension income"); err != nil {
			return err
		}
		out = rec
		return op.emit(domain.EventRentExtended, item, map[string]string{
			"value":    itoa(value),
			"paid_fee": itoa(rec.PaidFee),
			"end_date": itoa(rec.EndDate()),
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// EndRent settles a rental. Once the paid period is over anyone may end it
// and collect the keeper fee; before that only the owner may, by paying back
// the unused weeks.
func (s *rentService) EndRent(ctx context.Context, sender domain.Address, item domain.ItemKey, value int64) (*EndRentResult, error) {
	var out *EndRentResult
	err := s.execute(ctx, "EndRent", sender, item, func(op *operation) error {
		rec, err := op.listed(item)
		if err != nil {
			return err
		}
		if !rec.IsRented() {
			return fmt.Errorf("item %s: %w", item, domain.ErrNotRented)
		}
		if op.now > rec.EndDate() {
			out, err = op.endByKeeper(rec, value)
		} else {
			out, err = op.endByOwner(rec, value)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (op *operation) endByKeeper(rec *domain.RentRecord, value int64) (*EndRentResult, error) {
	if value != 0 {
		return nil, fmt.Errorf("keeper settlement takes no value, got %d: %w", value, domain.ErrWrongPaymentAmount)
	}
	fee := keeperShare(rec.PaidFee, op.feePercent())
	rentee := rec.Rentee
	if err := op.reclaim(rec); err != nil {
		return nil, err
	}

	res := &EndRentResult{KeeperFee: fee}
	if op.now < rec.Deadline {
		res.Mode = EndModeEarly
		rec.ClearRental()
		if err := op.tx.SaveRent(op.ctx, rec); err != nil {
			return nil, err
		}
		kept := *rec
		res.Record = &kept
	} else {
		res.Mode = EndModeTerm
		if err := op.returnToOwner(rec); err != nil {
			return nil, err
		}
		if err := op.tx.DeleteRent(op.ctx, rec.Item); err != nil {
			return nil, err
		}
	}
	if err := op.pay(op.sender, fee, domain.TransferTypeKeeperFee, rec.Item, "keeper settlement"); err != nil {
		return nil, err
	}
	return res, op.emit(domain.EventRentEnded, rec.Item, map[string]string{
		"mode":       string(res.Mode),
		"rentee":     string(rentee),
		"keeper_fee": itoa(fee),
	})
}

func (op *operation) endByOwner(rec *domain.RentRecord, value int64) (*EndRentResult, error) {
	if rec.Owner != op.sender {
		return nil, fmt.Errorf("rental of %s runs until %d: %w", rec.Item, rec.EndDate(), domain.ErrNotOwner)
	}
	owed := payback(rec, op.now, op.feePercent())
	if value != owed {
		return nil, fmt.Errorf("payback is %d, got %d: %w", owed, value, domain.ErrWrongPaymentAmount)
	}
	if err := op.collect(value, domain.TransferTypePayment, rec.Item); err != nil {
		return nil, err
	}
	refund := value
	if err := op.pay(rec.Rentee, refund, domain.TransferTypeRefund, rec.Item, "unused rental weeks"); err != nil {
		return nil, err
	}
	rentee := rec.Rentee
	if err := op.reclaim(rec); err != nil {
		return nil, err
	}
	if err := op.returnToOwner(rec); err != nil {
		return nil, err
	}
	if err := op.tx.DeleteRent(op.ctx, rec.Item); err != nil {
		return nil, err
	}
	return &EndRentResult{Mode: EndModeOwner, Refund: refund}, op.emit(domain.EventRentEnded, rec.Item, map[string]string{
		"mode":   string(EndModeOwner),
		"rentee": string(rentee),
		"refund": itoa(refund),
	})
}
