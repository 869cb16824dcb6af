// Package token implements the item-ownership registry the escrow consumes:
// ownership, single-token approvals, transfers and collection metadata. It
// backs both underlying collections and the proxy tokens minted by
// delegation registries.
package token

import (
	"context"
	"fmt"
	"strconv"

	"rentescrow-backend/internal/domain"
	"rentescrow-backend/internal/repository"
)

// Registry is the collaborator contract the settlement engine relies on.
type Registry interface {
	TransferFrom(ctx context.Context, caller, from, to domain.Address, tokenID int64) error
	OwnerOf(ctx context.Context, tokenID int64) (domain.Address, error)
	Approve(ctx context.Context, caller, spender domain.Address, tokenID int64) error
	Name(ctx context.Context) (string, error)
	Symbol(ctx context.Context) (string, error)
	TokenURI(ctx context.Context, tokenID int64) (string, error)
}

// Ledger is a Registry bound to one collection and one transaction.
type Ledger struct {
	repo repository.TokenRepository
	addr domain.Address
}

var _ Registry = (*Ledger)(nil)

func Open(repo repository.TokenRepository, collection domain.Address) *Ledger {
	return &Ledger{repo: repo, addr: collection}
}

func (l *Ledger) Address() domain.Address {
	return l.addr
}

// RegisterCollection creates or replaces collection metadata.
func RegisterCollection(ctx context.Context, repo repository.TokenRepository, c *domain.Collection) error {
	if c.Address.IsZero() {
		return fmt.Errorf("collection address is required: %w", domain.ErrInvalidArgument)
	}
	return repo.SaveCollection(ctx, c)
}

func (l *Ledger) collection(ctx context.Context) (*domain.Collection, error) {
	c, err := l.repo.GetCollection(ctx, l.addr)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("collection %s: %w", l.addr, domain.ErrCollectionNotFound)
	}
	return c, nil
}

func (l *Ledger) token(ctx context.Context, tokenID int64) (*domain.Token, error) {
	tok, err := l.repo.GetToken(ctx, l.addr, tokenID)
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, fmt.Errorf("token %s/%d: %w", l.addr, tokenID, domain.ErrTokenNotFound)
	}
	return tok, nil
}

func (l *Ledger) Mint(ctx context.Context, to domain.Address, tokenID int64) error {
	if to.IsZero() {
		return fmt.Errorf("mint to zero address: %w", domain.ErrInvalidArgument)
	}
	if _, err := l.collection(ctx); err != nil {
		return err
	}
	existing, err := l.repo.GetToken(ctx, l.addr, tokenID)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("token %s/%d: %w", l.addr, tokenID, domain.ErrTokenExists)
	}
	return l.repo.SaveToken(ctx, &domain.Token{Collection: l.addr, TokenID: tokenID, Owner: to})
}

// Burn destroys the token regardless of who holds it. Only privileged
// callers inside the process use it.
func (l *Ledger) Burn(ctx context.Context, tokenID int64) error {
	if _, err := l.token(ctx, tokenID); err != nil {
		return err
	}
	return l.repo.DeleteToken(ctx, l.addr, tokenID)
}

func (l *Ledger) TransferFrom(ctx context.Context, caller, from, to domain.Address, tokenID int64) error {
	tok, err := l.token(ctx, tokenID)
	if err != nil {
		return err
	}
	if tok.Owner != from {
		return fmt.Errorf("%s does not own %s/%d: %w", from, l.addr, tokenID, domain.ErrTransferNotAllowed)
	}
	if caller != from && caller != tok.Approved {
		return fmt.Errorf("%s is not approved for %s/%d: %w", caller, l.addr, tokenID, domain.ErrTransferNotAllowed)
	}
	if to.IsZero() {
		return fmt.Errorf("transfer to zero address: %w", domain.ErrInvalidArgument)
	}
	tok.Owner = to
	tok.Approved = domain.ZeroAddress
	return l.repo.SaveToken(ctx, tok)
}

func (l *Ledger) OwnerOf(ctx context.Context, tokenID int64) (domain.Address, error) {
	tok, err := l.token(ctx, tokenID)
	if err != nil {
		return domain.ZeroAddress, err
	}
	return tok.Owner, nil
}

func (l *Ledger) Approve(ctx context.Context, caller, spender domain.Address, tokenID int64) error {
	tok, err := l.token(ctx, tokenID)
	if err != nil {
		return err
	}
	if tok.Owner != caller {
		return fmt.Errorf("%s cannot approve %s/%d: %w", caller, l.addr, tokenID, domain.ErrUnauthorized)
	}
	tok.Approved = spender
	return l.repo.SaveToken(ctx, tok)
}

func (l *Ledger) GetApproved(ctx context.Context, tokenID int64) (domain.Address, error) {
	tok, err := l.token(ctx, tokenID)
	if err != nil {
		return domain.ZeroAddress, err
	}
	return tok.Approved, nil
}

func (l *Ledger) Name(ctx context.Context) (string, error) {
	c, err := l.collection(ctx)
	if err != nil {
		return "", err
	}
	return c.Name, nil
}

func (l *Ledger) Symbol(ctx context.Context) (string, error) {
	c, err := l.collection(ctx)
	if err != nil {
		return "", err
	}
	return c.Symbol, nil
}

// TokenURI forwards to the underlying collection for proxy tokens.
func (l *Ledger) TokenURI(ctx context.Context, tokenID int64) (string, error) {
	c, err := l.collection(ctx)
	if err != nil {
		return "", err
	}
	if !c.Underlying.IsZero() {
		return Open(l.repo, c.Underlying).TokenURI(ctx, tokenID)
	}
	if _, err := l.token(ctx, tokenID); err != nil {
		return "", err
	}
	if c.BaseURI == "" {
		return "", nil
	}
	return c.BaseURI + strconv.FormatInt(tokenID, 10), nil
}
