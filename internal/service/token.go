package service

import (
	"context"
	"fmt"

	"rentescrow-backend/internal/domain"
	"rentescrow-backend/internal/logger"
	"rentescrow-backend/internal/repository"
	"rentescrow-backend/internal/token"
)

type tokenService struct {
	store repository.Store
}

func NewTokenService(store repository.Store) TokenService {
	return &tokenService{store: store}
}

func (s *tokenService) RegisterCollection(ctx context.Context, c *domain.Collection) error {
	logger.EnterMethod("tokenService.RegisterCollection", "collection", c.Address)
	err := repository.WithTx(ctx, s.store, func(tx repository.Tx) error {
		existing, err := tx.GetCollection(ctx, c.Address)
		if err != nil {
			return err
		}
		if existing != nil && !existing.Underlying.IsZero() {
			return fmt.Errorf("%s is a proxy collection: %w", c.Address, domain.ErrTransferNotAllowed)
		}
		// Proxy collections are created by delegation registries only.
		c.Underlying = domain.ZeroAddress
		return token.RegisterCollection(ctx, tx, c)
	})
	if err != nil {
		logger.ExitMethodWithError("tokenService.RegisterCollection", err)
		return err
	}
	logger.ExitMethod("tokenService.RegisterCollection", "collection", c.Address)
	return nil
}

func (s *tokenService) Mint(ctx context.Context, collection, to domain.Address, tokenID int64) error {
	logger.EnterMethod("tokenService.Mint", "collection", collection, "to", to, "tokenID", tokenID)
	err := repository.WithTx(ctx, s.store, func(tx repository.Tx) error {
		c, err := tx.GetCollection(ctx, collection)
		if err != nil {
			return err
		}
		if c != nil && !c.Underlying.IsZero() {
			return fmt.Errorf("cannot mint proxy tokens directly: %w", domain.ErrTransferNotAllowed)
		}
		return token.Open(tx, collection).Mint(ctx, to, tokenID)
	})
	if err != nil {
		logger.ExitMethodWithError("tokenService.Mint", err)
		return err
	}
	logger.ExitMethod("tokenService.Mint", "collection", collection, "tokenID", tokenID)
	return nil
}

func (s *tokenService) Approve(ctx context.Context, sender, collection, spender domain.Address, tokenID int64) error {
	return repository.WithTx(ctx, s.store, func(tx repository.Tx) error {
		return token.Open(tx, collection).Approve(ctx, sender, spender, tokenID)
	})
}

func (s *tokenService) TransferFrom(ctx context.Context, sender, collection, from, to domain.Address, tokenID int64) error {
	logger.EnterMethod("tokenService.TransferFrom", "collection", collection, "from", from, "to", to, "tokenID", tokenID)
	err := repository.WithTx(ctx, s.store, func(tx repository.Tx) error {
		return token.Open(tx, collection).TransferFrom(ctx, sender, from, to, tokenID)
	})
	if err != nil {
		logger.ExitMethodWithError("tokenService.TransferFrom", err)
		return err
	}
	logger.ExitMethod("tokenService.TransferFrom", "collection", collection, "tokenID", tokenID)
	return nil
}

func (s *tokenService) OwnerOf(ctx context.Context, collection domain.Address, tokenID int64) (domain.Address, error) {
	tx, err := s.store.Begin(ctx)
	if err != nil {
		return domain.ZeroAddress, err
	}
	defer tx.Rollback()
	return token.Open(tx, collection).OwnerOf(ctx, tokenID)
}

func (s *tokenService) TokenURI(ctx context.Context, collection domain.Address, tokenID int64) (string, error) {
	tx, err := s.store.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()
	return token.Open(tx, collection).TokenURI(ctx, tokenID)
}

func (s *tokenService) GetCollection(ctx context.Context, collection domain.Address) (*domain.Collection, error) {
	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()
	c, err := tx.GetCollection(ctx, collection)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("collection %s: %w", collection, domain.ErrCollectionNotFound)
	}
	return c, nil
}
