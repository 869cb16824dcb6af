package service

import (
	"fmt"
	"math"

	"rentescrow-backend/internal/domain"
)

// mulPercent returns floor(amount*percent/100) for non-negative amounts
// without overflowing int64 on large amounts.
func mulPercent(amount, percent int64) int64 {
	return (amount/100)*percent + (amount%100)*percent/100
}

// netOfFee is what an owner is credited for a payment.
func netOfFee(amount, feePercent int64) int64 {
	return mulPercent(amount, 100-feePercent)
}

// keeperShare is the cut paid to whoever settles a rental or an auction.
func keeperShare(amount, feePercent int64) int64 {
	return mulPercent(amount, feePercent)
}

// checkPayment validates that value buys a whole, positive number of weeks
// at weeklyFee and returns that number of weeks.
func checkPayment(value, weeklyFee int64) (int64, error) {
	if weeklyFee <= 0 {
		return 0, fmt.Errorf("listing has no weekly fee: %w", domain.ErrWrongPaymentAmount)
	}
	if value <= 0 || value%weeklyFee != 0 {
		return 0, fmt.Errorf("payment %d is not a positive multiple of %d: %w", value, weeklyFee, domain.ErrWrongPaymentAmount)
	}
	return value / weeklyFee, nil
}

// checkCoverage fails when from + weeks*1w would pass deadline. Comparing
// against the number of whole weeks left keeps the check free of overflow.
func checkCoverage(from, weeks, deadline int64) error {
	if weeks > (deadline-from)/domain.Week || from > deadline {
		return fmt.Errorf("%d weeks from %d pass deadline %d: %w", weeks, from, deadline, domain.ErrOverDeadline)
	}
	return nil
}

// addFees guards the cumulative paid fee against overflow.
func addFees(paid, value int64) (int64, error) {
	if value > math.MaxInt64-paid {
		return 0, fmt.Errorf("paid fee overflow: %w", domain.ErrWrongPaymentAmount)
	}
	return paid + value, nil
}

// elapsedWeeks counts whole weeks since the rental started.
func elapsedWeeks(rec *domain.RentRecord, now int64) int64 {
	if now <= rec.StartTime {
		return 0
	}
	return (now - rec.StartTime) / domain.Week
}

// unusedFee is the part of PaidFee not consumed by whole elapsed weeks.
func unusedFee(rec *domain.RentRecord, now int64) int64 {
	unused := rec.PaidFee - elapsedWeeks(rec, now)*rec.WeeklyFee
	if unused < 0 {
		return 0
	}
	return unused
}

// payback is what an owner must supply to end a rental early. It is passed
// through to the renter unchanged; the engine keeps the keeper share it took
// for the unused weeks.
func payback(rec *domain.RentRecord, now int64, feePercent int64) int64 {
	return netOfFee(unusedFee(rec, now), feePercent)
}

// maxPayableFee is the largest payment start or extend would still accept.
func maxPayableFee(rec *domain.RentRecord, now int64) int64 {
	if rec == nil || rec.WeeklyFee == 0 {
		return 0
	}
	from := now
	if rec.IsRented() {
		from = rec.StartTime
	}
	if rec.Deadline <= from {
		return 0
	}
	total := ((rec.Deadline - from) / domain.Week) * rec.WeeklyFee
	if rec.IsRented() {
		total -= rec.PaidFee
	}
	if total < 0 {
		return 0
	}
	return total
}
