package domain

type DutchAuction struct {
	Item             ItemKey `json:"item"`
	AuctionDeadline  int64   `json:"auction_deadline"`
	MinWeeklyPrice   int64   `json:"min_weekly_price"`
	StartWeeklyPrice int64   `json:"start_weekly_price"`
	AuctionStart     int64   `json:"auction_start"`
}

// PriceAt returns the weekly price at time t. The price drops once per hour
// by a fixed step and never goes below MinWeeklyPrice.
func (a *DutchAuction) PriceAt(t int64) int64 {
	if t >= a.AuctionDeadline {
		return a.MinWeeklyPrice
	}
	if t <= a.AuctionStart {
		return a.StartWeeklyPrice
	}
	steps := (a.AuctionDeadline - a.AuctionStart) / Hour
	if steps == 0 {
		return a.MinWeeklyPrice
	}
	decrement := (a.StartWeeklyPrice - a.MinWeeklyPrice) / steps
	price := a.StartWeeklyPrice - ((t-a.AuctionStart)/Hour)*decrement
	if price < a.MinWeeklyPrice {
		return a.MinWeeklyPrice
	}
	return price
}

type EnglishAuction struct {
	Item            ItemKey `json:"item"`
	AutoAcceptPrice int64   `json:"auto_accept_price"`
	AuctionDeadline int64   `json:"auction_deadline"`
	HighestBid      int64   `json:"highest_bid"`
	HighestBidder   Address `json:"highest_bidder"`
	Collateral      int64   `json:"collateral"`
}

func (a *EnglishAuction) HasBid() bool {
	return a != nil && !a.HighestBidder.IsZero()
}
