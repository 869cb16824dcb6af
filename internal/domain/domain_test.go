package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDutchAuction_PriceAt(t *testing.T) {
	a := &DutchAuction{
		AuctionStart:     1_000,
		AuctionDeadline:  1_000 + 4*Hour,
		MinWeeklyPrice:   100,
		StartWeeklyPrice: 500,
	}

	tests := []struct {
		name string
		at   int64
		want int64
	}{
		{"BeforeStart", 0, 500},
		{"AtStart", 1_000, 500},
		{"WithinFirstHour", 1_000 + Hour - 1, 500},
		{"OneStep", 1_000 + Hour, 400},
		{"ThreeSteps", 1_000 + 3*Hour + 10, 200},
		{"AtDeadline", 1_000 + 4*Hour, 100},
		{"AfterDeadline", 1_000 + 40*Hour, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.PriceAt(tt.at))
		})
	}

	short := &DutchAuction{AuctionStart: 0, AuctionDeadline: 60, MinWeeklyPrice: 7, StartWeeklyPrice: 9}
	assert.Equal(t, int64(7), short.PriceAt(30))
}

func TestRentRecord(t *testing.T) {
	var missing *RentRecord
	assert.False(t, missing.IsListed())
	assert.False(t, missing.IsRented())

	rec := &RentRecord{Owner: "alice", WeeklyFee: 10, Deadline: 10 * Week}
	assert.True(t, rec.IsListed())
	assert.False(t, rec.IsRented())
	assert.Zero(t, rec.EndDate())

	rec.Rentee = "bob"
	assert.False(t, rec.IsRented(), "a reserved listing is not rented")

	rec.StartTime = 500
	rec.PaidFee = 25
	assert.True(t, rec.IsRented())
	assert.Equal(t, int64(2), rec.PaidWeeks())
	assert.Equal(t, 500+2*Week, rec.EndDate())

	delegated := &RentRecord{Owner: "alice", Deadline: 3 * Week, StartTime: 1, Rentee: "carol"}
	assert.Equal(t, 3*Week, delegated.EndDate())

	rec.ClearRental()
	assert.False(t, rec.IsRented())
	assert.True(t, rec.Rentee.IsZero())
	assert.Zero(t, rec.PaidFee)
	assert.True(t, rec.IsListed())
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "", ErrorCode(nil))
	assert.Equal(t, "NotOwner", ErrorCode(ErrNotOwner))
	assert.Equal(t, "OverDeadline", ErrorCode(fmt.Errorf("3 weeks: %w", ErrOverDeadline)))
	assert.Equal(t, "Internal", ErrorCode(errors.New("disk full")))
}

func TestEnglishAuction_HasBid(t *testing.T) {
	var missing *EnglishAuction
	assert.False(t, missing.HasBid())
	assert.False(t, (&EnglishAuction{}).HasBid())
	assert.True(t, (&EnglishAuction{HighestBidder: "bob"}).HasBid())
}

func TestRegistryAddressFor(t *testing.T) {
	assert.Equal(t, Address("delegated:punks"), RegistryAddressFor("punks"))
	assert.Equal(t, "punks/7", ItemKey{Collection: "punks", TokenID: 7}.String())
}
