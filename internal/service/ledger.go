package service

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"rentescrow-backend/internal/clock"
	"rentescrow-backend/internal/domain"
	"rentescrow-backend/internal/logger"
	"rentescrow-backend/internal/repository"
)

type ledgerService struct {
	store repository.Store
	clock clock.Clock
}

func NewLedgerService(store repository.Store, clk clock.Clock) LedgerService {
	return &ledgerService{store: store, clock: clk}
}

// Fund credits addr with amount from outside the system. It is the only way
// value enters the ledger.
func (s *ledgerService) Fund(ctx context.Context, addr domain.Address, amount int64) (*domain.Account, error) {
	logger.EnterMethod("ledgerService.Fund", "address", addr, "amount", amount)
	if addr.IsZero() || amount <= 0 {
		err := fmt.Errorf("fund %q with %d: %w", addr, amount, domain.ErrInvalidArgument)
		logger.ExitMethodWithError("ledgerService.Fund", err)
		return nil, err
	}

	var acct *domain.Account
	err := repository.WithTx(ctx, s.store, func(tx repository.Tx) error {
		var err error
		acct, err = loadAccount(ctx, tx, addr)
		if err != nil {
			return err
		}
		if acct.Balance > math.MaxInt64-amount {
			return fmt.Errorf("balance overflow: %w", domain.ErrInvalidArgument)
		}
		acct.Balance += amount
		if err := tx.SaveAccount(ctx, acct); err != nil {
			return err
		}
		return tx.CreateTransfer(ctx, &domain.Transfer{
			ID:          uuid.NewString(),
			From:        domain.ZeroAddress,
			To:          addr,
			Amount:      amount,
			Type:        domain.TransferTypeDeposit,
			Description: "external deposit",
			CreatedAt:   s.clock.Now(),
		})
	})
	if err != nil {
		logger.ExitMethodWithError("ledgerService.Fund", err, "address", addr)
		return nil, err
	}
	logger.ExitMethod("ledgerService.Fund", "address", addr, "balance", acct.Balance)
	return acct, nil
}

func (s *ledgerService) GetAccount(ctx context.Context, addr domain.Address) (*domain.Account, error) {
	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()
	return loadAccount(ctx, tx, addr)
}

func (s *ledgerService) GetBalance(ctx context.Context, addr domain.Address) (int64, error) {
	acct, err := s.GetAccount(ctx, addr)
	if err != nil {
		return 0, err
	}
	return acct.Balance, nil
}

// Paging bounds for GetTransfers. A zero pageSize lists everything.
const (
	maxTransfersPage     = 1_000_000
	maxTransfersPageSize = 500
)

func (s *ledgerService) GetTransfers(ctx context.Context, addr domain.Address, page, pageSize int32) ([]domain.Transfer, int32, error) {
	if page < 0 || page > maxTransfersPage {
		return nil, 0, fmt.Errorf("page %d out of range [0, %d]: %w", page, maxTransfersPage, domain.ErrInvalidArgument)
	}
	if pageSize < 0 || pageSize > maxTransfersPageSize {
		return nil, 0, fmt.Errorf("page size %d out of range [0, %d]: %w", pageSize, maxTransfersPageSize, domain.ErrInvalidArgument)
	}
	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, 0, err
	}
	defer tx.Rollback()
	return tx.ListTransfers(ctx, addr, page, pageSize)
}

// SetRejectsPayments marks an account that refuses incoming value, like a
// contract without a receive hook. Any payout to it aborts the operation.
func (s *ledgerService) SetRejectsPayments(ctx context.Context, addr domain.Address, rejects bool) error {
	if addr.IsZero() {
		return fmt.Errorf("empty address: %w", domain.ErrInvalidArgument)
	}
	return repository.WithTx(ctx, s.store, func(tx repository.Tx) error {
		acct, err := loadAccount(ctx, tx, addr)
		if err != nil {
			return err
		}
		acct.RejectsPayments = rejects
		return tx.SaveAccount(ctx, acct)
	})
}

func loadAccount(ctx context.Context, tx repository.LedgerRepository, addr domain.Address) (*domain.Account, error) {
	acct, err := tx.GetAccount(ctx, addr)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		acct = &domain.Account{Address: addr}
	}
	return acct, nil
}
