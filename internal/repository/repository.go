package repository

import (
	"context"

	"rentescrow-backend/internal/domain"
)

// Getters return (nil, nil) when the row does not exist. The engine treats a
// missing rent record the same as a fully cleared one.

type RentRepository interface {
	GetRent(ctx context.Context, item domain.ItemKey) (*domain.RentRecord, error)
	SaveRent(ctx context.Context, rec *domain.RentRecord) error
	DeleteRent(ctx context.Context, item domain.ItemKey) error
	ListRented(ctx context.Context) ([]domain.RentRecord, error)
	ListByOwner(ctx context.Context, owner domain.Address) ([]domain.RentRecord, error)
}

type AuctionRepository interface {
	GetDutchAuction(ctx context.Context, item domain.ItemKey) (*domain.DutchAuction, error)
	SaveDutchAuction(ctx context.Context, a *domain.DutchAuction) error
	DeleteDutchAuction(ctx context.Context, item domain.ItemKey) error

	GetEnglishAuction(ctx context.Context, item domain.ItemKey) (*domain.EnglishAuction, error)
	SaveEnglishAuction(ctx context.Context, a *domain.EnglishAuction) error
	DeleteEnglishAuction(ctx context.Context, item domain.ItemKey) error
	ListEnglishAuctions(ctx context.Context) ([]domain.EnglishAuction, error)
}

type DelegationRepository interface {
	GetRegistry(ctx context.Context, collection domain.Address) (*domain.DelegationRegistry, error)
	CreateRegistry(ctx context.Context, reg *domain.DelegationRegistry) error

	GetDelegation(ctx context.Context, registry domain.Address, tokenID int64) (*domain.Delegation, error)
	SaveDelegation(ctx context.Context, d *domain.Delegation) error
	DeleteDelegation(ctx context.Context, registry domain.Address, tokenID int64) error
}

type TokenRepository interface {
	GetCollection(ctx context.Context, addr domain.Address) (*domain.Collection, error)
	SaveCollection(ctx context.Context, c *domain.Collection) error

	GetToken(ctx context.Context, collection domain.Address, tokenID int64) (*domain.Token, error)
	SaveToken(ctx context.Context, t *domain.Token) error
	DeleteToken(ctx context.Context, collection domain.Address, tokenID int64) error
}

type LedgerRepository interface {
	GetAccount(ctx context.Context, addr domain.Address) (*domain.Account, error)
	SaveAccount(ctx context.Context, acct *domain.Account) error
	CreateTransfer(ctx context.Context, tr *domain.Transfer) error
	ListTransfers(ctx context.Context, addr domain.Address, page, pageSize int32) ([]domain.Transfer, int32, error)
}

type EventRepository interface {
	AppendEvent(ctx context.Context, ev *domain.Event) error
	ListEvents(ctx context.Context, afterSeq int64, limit int32) ([]domain.Event, error)
}

// Tx is a unit of work over the whole escrow state. Nothing written through a
// Tx is visible to other transactions until Commit; Rollback discards it.
type Tx interface {
	RentRepository
	AuctionRepository
	DelegationRepository
	TokenRepository
	LedgerRepository
	EventRepository

	Commit() error
	Rollback() error
}

// Store hands out transactions. Begin serializes writers: at most one Tx is
// open at a time.
type Store interface {
	Begin(ctx context.Context) (Tx, error)
}

// WithTx runs fn inside a transaction and commits it only if fn succeeds.
func WithTx(ctx context.Context, store Store, fn func(tx Tx) error) (err error) {
	tx, err := store.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	if err = fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
