package service

import (
	"context"

	"rentescrow-backend/internal/domain"
	"rentescrow-backend/internal/repository"
)

// GetRent returns the record for item; an item that is not deposited yields
// a zero record rather than an error.
func (s *rentService) GetRent(ctx context.Context, item domain.ItemKey) (*domain.RentRecord, error) {
	var rec *domain.RentRecord
	err := s.view(ctx, func(tx repository.Tx, _ int64) error {
		var err error
		rec, err = tx.GetRent(ctx, item)
		return err
	})
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec = &domain.RentRecord{Item: item}
	}
	return rec, nil
}

func (s *rentService) OwnerOf(ctx context.Context, item domain.ItemKey) (domain.Address, error) {
	rec, err := s.GetRent(ctx, item)
	if err != nil {
		return domain.ZeroAddress, err
	}
	return rec.Owner, nil
}

func (s *rentService) WeeklyFeeOf(ctx context.Context, item domain.ItemKey) (int64, error) {
	rec, err := s.GetRent(ctx, item)
	if err != nil {
		return 0, err
	}
	return rec.WeeklyFee, nil
}

func (s *rentService) DeadlineOf(ctx context.Context, item domain.ItemKey) (int64, error) {
	rec, err := s.GetRent(ctx, item)
	if err != nil {
		return 0, err
	}
	return rec.Deadline, nil
}

// IsRented is true from the start of a rental until it is settled, even
// after the paid period ran out.
func (s *rentService) IsRented(ctx context.Context, item domain.ItemKey) (bool, error) {
	rec, err := s.GetRent(ctx, item)
	if err != nil {
		return false, err
	}
	return rec.IsRented(), nil
}

func (s *rentService) RenteeOf(ctx context.Context, item domain.ItemKey) (domain.Address, error) {
	rec, err := s.GetRent(ctx, item)
	if err != nil {
		return domain.ZeroAddress, err
	}
	return rec.Rentee, nil
}

func (s *rentService) PaidFeesOf(ctx context.Context, item domain.ItemKey) (int64, error) {
	rec, err := s.GetRent(ctx, item)
	if err != nil {
		return 0, err
	}
	return rec.PaidFee, nil
}

func (s *rentService) EndDateOf(ctx context.Context, item domain.ItemKey) (int64, error) {
	rec, err := s.GetRent(ctx, item)
	if err != nil {
		return 0, err
	}
	return rec.EndDate(), nil
}

func (s *rentService) MaxPayableFee(ctx context.Context, item domain.ItemKey) (int64, error) {
	rec, err := s.GetRent(ctx, item)
	if err != nil {
		return 0, err
	}
	return maxPayableFee(rec, s.clock.Now()), nil
}

// PaybackHelper returns the value the owner must send to end the rental
// now. It is zero once the paid period is over.
func (s *rentService) PaybackHelper(ctx context.Context, item domain.ItemKey) (int64, error) {
	rec, err := s.GetRent(ctx, item)
	if err != nil {
		return 0, err
	}
	now := s.clock.Now()
	if !rec.IsRented() || now > rec.EndDate() {
		return 0, nil
	}
	return payback(rec, now, s.settings.KeeperFeePercent), nil
}

func (s *rentService) GetDelegation(ctx context.Context, item domain.ItemKey) (*domain.Delegation, error) {
	var d *domain.Delegation
	err := s.view(ctx, func(tx repository.Tx, now int64) error {
		reg, err := s.registries.Lookup(ctx, tx, item.Collection, now)
		if err != nil || reg == nil {
			return err
		}
		d, err = reg.GetDelegation(ctx, item.TokenID)
		return err
	})
	return d, err
}

func (s *rentService) GetDutchAuction(ctx context.Context, item domain.ItemKey) (*domain.DutchAuction, error) {
	var a *domain.DutchAuction
	err := s.view(ctx, func(tx repository.Tx, _ int64) error {
		var err error
		a, err = tx.GetDutchAuction(ctx, item)
		return err
	})
	return a, err
}

func (s *rentService) GetEnglishAuction(ctx context.Context, item domain.ItemKey) (*domain.EnglishAuction, error) {
	var a *domain.EnglishAuction
	err := s.view(ctx, func(tx repository.Tx, _ int64) error {
		var err error
		a, err = tx.GetEnglishAuction(ctx, item)
		return err
	})
	return a, err
}

// CurrentDutchPrice returns zero when item has no descending auction.
func (s *rentService) CurrentDutchPrice(ctx context.Context, item domain.ItemKey) (int64, error) {
	a, err := s.GetDutchAuction(ctx, item)
	if err != nil || a == nil {
		return 0, err
	}
	return a.PriceAt(s.clock.Now()), nil
}

// DescribeItem reads the record and everything derived from it in one
// snapshot.
func (s *rentService) DescribeItem(ctx context.Context, item domain.ItemKey) (*ItemView, error) {
	var view *ItemView
	err := s.view(ctx, func(tx repository.Tx, now int64) error {
		rec, err := tx.GetRent(ctx, item)
		if err != nil {
			return err
		}
		if rec == nil {
			rec = &domain.RentRecord{Item: item}
		}
		view = &ItemView{
			Record:        rec,
			IsRented:      rec.IsRented(),
			EndDate:       rec.EndDate(),
			MaxPayableFee: maxPayableFee(rec, now),
		}
		if rec.IsRented() && now <= rec.EndDate() {
			view.Payback = payback(rec, now, s.settings.KeeperFeePercent)
		}
		reg, err := s.registries.Lookup(ctx, tx, item.Collection, now)
		if err != nil {
			return err
		}
		if reg != nil {
			if view.Delegation, err = reg.GetDelegation(ctx, item.TokenID); err != nil {
				return err
			}
		}
		if view.DutchAuction, err = tx.GetDutchAuction(ctx, item); err != nil {
			return err
		}
		if view.DutchAuction != nil {
			view.CurrentDutchPrice = view.DutchAuction.PriceAt(now)
		}
		view.EnglishAuction, err = tx.GetEnglishAuction(ctx, item)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *rentService) ListRented(ctx context.Context) ([]domain.RentRecord, error) {
	var out []domain.RentRecord
	err := s.view(ctx, func(tx repository.Tx, _ int64) error {
		var err error
		out, err = tx.ListRented(ctx)
		return err
	})
	return out, err
}

func (s *rentService) ListByOwner(ctx context.Context, owner domain.Address) ([]domain.RentRecord, error) {
	var out []domain.RentRecord
	err := s.view(ctx, func(tx repository.Tx, _ int64) error {
		var err error
		out, err = tx.ListByOwner(ctx, owner)
		return err
	})
	return out, err
}

func (s *rentService) ListEnglishAuctions(ctx context.Context) ([]domain.EnglishAuction, error) {
	var out []domain.EnglishAuction
	err := s.view(ctx, func(tx repository.Tx, _ int64) error {
		var err error
		out, err = tx.ListEnglishAuctions(ctx)
		return err
	})
	return out, err
}

func (s *rentService) ListEvents(ctx context.Context, afterSeq int64, limit int32) ([]domain.Event, error) {
	var out []domain.Event
	err := s.view(ctx, func(tx repository.Tx, _ int64) error {
		var err error
		out, err = tx.ListEvents(ctx, afterSeq, limit)
		return err
	})
	return out, err
}
