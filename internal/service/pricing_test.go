package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"rentescrow-backend/internal/domain"
)

func TestMulPercent(t *testing.T) {
	tests := []struct {
		name    string
		amount  int64
		percent int64
		want    int64
	}{
		{"Fee", 100_000, 99, 99_000},
		{"KeeperShare", 200_000, 1, 2_000},
		{"RoundsDown", 199, 1, 1},
		{"Zero", 0, 99, 0},
		{"NoOverflow", math.MaxInt64, 99, math.MaxInt64/100*99 + (math.MaxInt64%100)*99/100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mulPercent(tt.amount, tt.percent))
		})
	}
}

func TestCheckPayment(t *testing.T) {
	weeks, err := checkPayment(300, 100)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), weeks)

	_, err = checkPayment(250, 100)
	assert.ErrorIs(t, err, domain.ErrWrongPaymentAmount)
	_, err = checkPayment(0, 100)
	assert.ErrorIs(t, err, domain.ErrWrongPaymentAmount)
	_, err = checkPayment(100, 0)
	assert.ErrorIs(t, err, domain.ErrWrongPaymentAmount)
}

func TestCheckCoverage(t *testing.T) {
	assert.NoError(t, checkCoverage(0, 2, 2*domain.Week))
	assert.ErrorIs(t, checkCoverage(0, 3, 2*domain.Week), domain.ErrOverDeadline)
	assert.ErrorIs(t, checkCoverage(10, 1, 5), domain.ErrOverDeadline)
	assert.ErrorIs(t, checkCoverage(0, math.MaxInt64, math.MaxInt64), domain.ErrOverDeadline)
}

func TestAddFees(t *testing.T) {
	total, err := addFees(100, 200)
	assert.NoError(t, err)
	assert.Equal(t, int64(300), total)

	_, err = addFees(math.MaxInt64, 1)
	assert.ErrorIs(t, err, domain.ErrWrongPaymentAmount)
}

func TestPayback(t *testing.T) {
	rec := &domain.RentRecord{WeeklyFee: 100_000, PaidFee: 300_000, StartTime: 1_000, Deadline: 100 * domain.Week}

	assert.Equal(t, int64(297_000), payback(rec, 1_000, 1))
	assert.Equal(t, int64(198_000), payback(rec, 1_000+domain.Week, 1))
	assert.Equal(t, int64(99_000), payback(rec, 1_000+2*domain.Week+5, 1))
	assert.Equal(t, int64(0), payback(rec, 1_000+5*domain.Week, 1))
}

func TestMaxPayableFee(t *testing.T) {
	idle := &domain.RentRecord{WeeklyFee: 10, Deadline: 3*domain.Week + 100}
	assert.Equal(t, int64(30), maxPayableFee(idle, 0))
	assert.Equal(t, int64(20), maxPayableFee(idle, 200))
	assert.Equal(t, int64(0), maxPayableFee(idle, 4*domain.Week))

	rented := &domain.RentRecord{WeeklyFee: 10, Deadline: 3 * domain.Week, StartTime: 1, PaidFee: 10}
	assert.Equal(t, int64(10), maxPayableFee(rented, 2))

	assert.Equal(t, int64(0), maxPayableFee(nil, 0))
}
