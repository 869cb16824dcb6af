package service

import (
	"context"

	"rentescrow-backend/internal/domain"
)

// RentService is the settlement engine. Every mutating call takes the
// sender's address and the value it sends along; the call either commits
// entirely or fails with a named reason and changes nothing.
type RentService interface {
	// Listing and custody
	Deposit(ctx context.Context, sender domain.Address, item domain.ItemKey, deadline, weeklyFee int64) error
	DepositOTC(ctx context.Context, sender domain.Address, item domain.ItemKey, deadline, weeklyFee int64, restrictedTo domain.Address) error
	DepositDutchAuction(ctx context.Context, sender domain.Address, item domain.ItemKey, deadline int64, params DutchAuctionParams) error
	DepositEnglishAuction(ctx context.Context, sender domain.Address, item domain.ItemKey, deadline int64, params EnglishAuctionParams) error
	Delegate(ctx context.Context, sender domain.Address, item domain.ItemKey, to domain.Address, deadline int64) error
	Withdraw(ctx context.Context, sender domain.Address, item domain.ItemKey) error

	// Rental lifecycle
	StartRent(ctx context.Context, sender domain.Address, item domain.ItemKey, value int64) (*domain.RentRecord, error)
	ExtendRent(ctx context.Context, sender domain.Address, item domain.ItemKey, value int64) (*domain.RentRecord, error)
	EndRent(ctx context.Context, sender domain.Address, item domain.ItemKey, value int64) (*EndRentResult, error)

	// Auctions
	NewBid(ctx context.Context, sender domain.Address, item domain.ItemKey, weeklyPrice, value int64) (*BidResult, error)
	EndAuction(ctx context.Context, sender domain.Address, item domain.ItemKey) (*domain.RentRecord, error)

	// Read accessors
	GetRent(ctx context.Context, item domain.ItemKey) (*domain.RentRecord, error)
	OwnerOf(ctx context.Context, item domain.ItemKey) (domain.Address, error)
	WeeklyFeeOf(ctx context.Context, item domain.ItemKey) (int64, error)
	DeadlineOf(ctx context.Context, item domain.ItemKey) (int64, error)
	IsRented(ctx context.Context, item domain.ItemKey) (bool, error)
	RenteeOf(ctx context.Context, item domain.ItemKey) (domain.Address, error)
	PaidFeesOf(ctx context.Context, item domain.ItemKey) (int64, error)
	EndDateOf(ctx context.Context, item domain.ItemKey) (int64, error)
	MaxPayableFee(ctx context.Context, item domain.ItemKey) (int64, error)
	PaybackHelper(ctx context.Context, item domain.ItemKey) (int64, error)
	GetDelegation(ctx context.Context, item domain.ItemKey) (*domain.Delegation, error)
	GetDutchAuction(ctx context.Context, item domain.ItemKey) (*domain.DutchAuction, error)
	GetEnglishAuction(ctx context.Context, item domain.ItemKey) (*domain.EnglishAuction, error)
	CurrentDutchPrice(ctx context.Context, item domain.ItemKey) (int64, error)
	DescribeItem(ctx context.Context, item domain.ItemKey) (*ItemView, error)

	ListRented(ctx context.Context) ([]domain.RentRecord, error)
	ListByOwner(ctx context.Context, owner domain.Address) ([]domain.RentRecord, error)
	ListEnglishAuctions(ctx context.Context) ([]domain.EnglishAuction, error)
	ListEvents(ctx context.Context, afterSeq int64, limit int32) ([]domain.Event, error)
}

// LedgerService manages the value side: balances and the transfer log.
type LedgerService interface {
	Fund(ctx context.Context, addr domain.Address, amount int64) (*domain.Account, error)
	GetAccount(ctx context.Context, addr domain.Address) (*domain.Account, error)
	GetBalance(ctx context.Context, addr domain.Address) (int64, error)
	GetTransfers(ctx context.Context, addr domain.Address, page, pageSize int32) ([]domain.Transfer, int32, error)
	SetRejectsPayments(ctx context.Context, addr domain.Address, rejects bool) error
}

// TokenService exposes the item registry: collections, minting, approvals
// and transfers of both real items and proxy tokens.
type TokenService interface {
	RegisterCollection(ctx context.Context, c *domain.Collection) error
	Mint(ctx context.Context, collection, to domain.Address, tokenID int64) error
	Approve(ctx context.Context, sender, collection, spender domain.Address, tokenID int64) error
	TransferFrom(ctx context.Context, sender, collection, from, to domain.Address, tokenID int64) error
	OwnerOf(ctx context.Context, collection domain.Address, tokenID int64) (domain.Address, error)
	TokenURI(ctx context.Context, collection domain.Address, tokenID int64) (string, error)
	GetCollection(ctx context.Context, collection domain.Address) (*domain.Collection, error)
}

type DutchAuctionParams struct {
	AuctionDeadline  int64
	MinWeeklyPrice   int64
	StartWeeklyPrice int64
}

type EnglishAuctionParams struct {
	AuctionDeadline int64
	// AutoAcceptPrice ends the auction at once when bid exactly; zero disables it.
	AutoAcceptPrice int64
}

type EndMode string

const (
	EndModeEarly EndMode = "EARLY"
	EndModeTerm  EndMode = "TERM"
	EndModeOwner EndMode = "OWNER"
)

type EndRentResult struct {
	Mode      EndMode `json:"mode"`
	KeeperFee int64   `json:"keeper_fee"`
	Refund    int64   `json:"refund"`
	// Record is the listing left open after an early end, nil otherwise.
	Record *domain.RentRecord `json:"record,omitempty"`
}

type BidResult struct {
	Awarded bool                   `json:"awarded"`
	Record  *domain.RentRecord     `json:"record,omitempty"`
	Auction *domain.EnglishAuction `json:"auction,omitempty"`
}

// ItemView is everything the engine knows about one item at one instant.
type ItemView struct {
	Record            *domain.RentRecord     `json:"record"`
	IsRented          bool                   `json:"is_rented"`
	EndDate           int64                  `json:"end_date"`
	MaxPayableFee     int64                  `json:"max_payable_fee"`
	Payback           int64                  `json:"payback"`
	Delegation        *domain.Delegation     `json:"delegation,omitempty"`
	DutchAuction      *domain.DutchAuction   `json:"dutch_auction,omitempty"`
	CurrentDutchPrice int64                  `json:"current_dutch_price,omitempty"`
	EnglishAuction    *domain.EnglishAuction `json:"english_auction,omitempty"`
}

// Settings are the engine's fixed parameters.
type Settings struct {
	EngineAddress    domain.Address
	KeeperFeePercent int64
}
