package domain

type AuctionKind string

const (
	AuctionKindNone       AuctionKind = "NONE"
	AuctionKindDescending AuctionKind = "DESCENDING"
	AuctionKindAscending  AuctionKind = "ASCENDING"
)

// RentRecord is the ledger entry for one deposited item. Timestamps are unix
// seconds; amounts are integer base units.
type RentRecord struct {
	Item        ItemKey     `json:"item"`
	Owner       Address     `json:"owner"`
	Deadline    int64       `json:"deadline"`
	WeeklyFee   int64       `json:"weekly_fee"`
	AuctionKind AuctionKind `json:"auction_kind"`
	Rentee      Address     `json:"rentee"`
	StartTime   int64       `json:"start_time"`
	PaidFee     int64       `json:"paid_fee"`
}

// IsListed reports whether the record belongs to a deposited item.
func (r *RentRecord) IsListed() bool {
	return r != nil && !r.Owner.IsZero()
}

// IsRented reports whether a rental period has started. A reserved (OTC)
// listing has a rentee but no start time and is not rented.
func (r *RentRecord) IsRented() bool {
	return r != nil && r.StartTime != 0
}

// PaidWeeks is the number of whole weeks covered by PaidFee.
func (r *RentRecord) PaidWeeks() int64 {
	if r.WeeklyFee == 0 {
		return 0
	}
	return r.PaidFee / r.WeeklyFee
}

// EndDate is the end of the covered period. A zero-fee delegation runs until
// the deadline.
func (r *RentRecord) EndDate() int64 {
	if !r.IsRented() {
		return 0
	}
	if r.WeeklyFee == 0 {
		return r.Deadline
	}
	return r.StartTime + r.PaidWeeks()*Week
}

// ClearRental drops the rental fields and keeps the listing open.
func (r *RentRecord) ClearRental() {
	r.Rentee = ZeroAddress
	r.StartTime = 0
	r.PaidFee = 0
}
