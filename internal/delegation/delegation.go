// Package delegation implements the per-collection custodian that holds a
// real item and represents "current holder" rights as a proxy token.
package delegation

import (
	"context"
	"fmt"
	"strconv"

	"rentescrow-backend/internal/domain"
	"rentescrow-backend/internal/logger"
	"rentescrow-backend/internal/repository"
	"rentescrow-backend/internal/token"
)

// Repos is the slice of a transaction a registry needs.
type Repos interface {
	repository.DelegationRepository
	repository.TokenRepository
	repository.EventRepository
}

// Registry custodies items of one underlying collection.
type Registry struct {
	repos      Repos
	addr       domain.Address
	collection domain.Address
	now        int64
}

func (r *Registry) Address() domain.Address {
	return r.addr
}

func (r *Registry) Collection() domain.Address {
	return r.collection
}

// Proxy returns the proxy-token collection minted by this registry.
func (r *Registry) Proxy() *token.Ledger {
	return token.Open(r.repos, r.addr)
}

func (r *Registry) underlying() *token.Ledger {
	return token.Open(r.repos, r.collection)
}

// Deposit pulls tokenID from caller into custody and mints the proxy token to
// delegatee. The registry must be approved for the item beforehand. Only
// caller may withdraw it later.
func (r *Registry) Deposit(ctx context.Context, caller, realOwner, delegatee domain.Address, tokenID int64) error {
	if realOwner.IsZero() || delegatee.IsZero() {
		return fmt.Errorf("delegation parties are required: %w", domain.ErrInvalidArgument)
	}
	d := &domain.Delegation{
		Registry:      r.addr,
		TokenID:       tokenID,
		RealOwner:     realOwner,
		AccessControl: caller,
	}
	if err := r.repos.SaveDelegation(ctx, d); err != nil {
		return err
	}
	if err := r.underlying().TransferFrom(ctx, r.addr, caller, r.addr, tokenID); err != nil {
		return fmt.Errorf("delegation deposit: %w", err)
	}
	if err := r.Proxy().Mint(ctx, delegatee, tokenID); err != nil {
		return err
	}

	item := domain.ItemKey{Collection: r.collection, TokenID: tokenID}
	logger.Debug("Delegation started", "item", item.String(), "delegatee", delegatee, "real_owner", realOwner)
	return r.repos.AppendEvent(ctx, domain.NewEvent(domain.EventDelegationStarted, item, caller, r.now, map[string]string{
		"registry":   string(r.addr),
		"real_owner": string(realOwner),
		"delegatee":  string(delegatee),
	}))
}

// Withdraw burns the proxy token from whoever holds it and hands the real
// item back to caller, which must be the recorded access control.
func (r *Registry) Withdraw(ctx context.Context, caller domain.Address, tokenID int64) error {
	d, err := r.repos.GetDelegation(ctx, r.addr, tokenID)
	if err != nil {
		return err
	}
	if d == nil || d.AccessControl != caller {
		return fmt.Errorf("%s may not withdraw %s/%d: %w", caller, r.collection, tokenID, domain.ErrUnauthorized)
	}
	holder, err := r.Proxy().OwnerOf(ctx, tokenID)
	if err != nil {
		return err
	}
	if err := r.repos.DeleteDelegation(ctx, r.addr, tokenID); err != nil {
		return err
	}
	if err := r.Proxy().Burn(ctx, tokenID); err != nil {
		return err
	}
	if err := r.underlying().TransferFrom(ctx, r.addr, r.addr, caller, tokenID); err != nil {
		return fmt.Errorf("delegation withdraw: %w", err)
	}

	item := domain.ItemKey{Collection: r.collection, TokenID: tokenID}
	logger.Debug("Delegation ended", "item", item.String(), "holder", holder)
	return r.repos.AppendEvent(ctx, domain.NewEvent(domain.EventDelegationEnded, item, caller, r.now, map[string]string{
		"registry": string(r.addr),
		"holder":   string(holder),
	}))
}

// RealOwnerOf returns the zero address when tokenID is not delegated.
func (r *Registry) RealOwnerOf(ctx context.Context, tokenID int64) (domain.Address, error) {
	d, err := r.repos.GetDelegation(ctx, r.addr, tokenID)
	if err != nil {
		return domain.ZeroAddress, err
	}
	if d == nil {
		return domain.ZeroAddress, nil
	}
	return d.RealOwner, nil
}

func (r *Registry) GetDelegation(ctx context.Context, tokenID int64) (*domain.Delegation, error) {
	return r.repos.GetDelegation(ctx, r.addr, tokenID)
}

// Factory creates registries on demand, one per underlying collection. The
// repository row is the memo, so a registry created inside a rolled back
// transaction never leaks.
type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

// Lookup returns nil when the collection has no registry yet.
func (f *Factory) Lookup(ctx context.Context, repos Repos, collection domain.Address, now int64) (*Registry, error) {
	reg, err := repos.GetRegistry(ctx, collection)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, nil
	}
	return &Registry{repos: repos, addr: reg.Address, collection: collection, now: now}, nil
}

// Open returns the collection's registry, creating it and its proxy
// collection on first use.
func (f *Factory) Open(ctx context.Context, repos Repos, collection domain.Address, now int64) (*Registry, error) {
	r, err := f.Lookup(ctx, repos, collection, now)
	if err != nil || r != nil {
		return r, err
	}

	underlying, err := repos.GetCollection(ctx, collection)
	if err != nil {
		return nil, err
	}
	name, symbol := string(collection), ""
	if underlying != nil {
		name, symbol = underlying.Name, underlying.Symbol
	}

	reg := &domain.DelegationRegistry{
		Address:    domain.RegistryAddressFor(collection),
		Collection: collection,
		CreatedAt:  now,
	}
	if err := repos.CreateRegistry(ctx, reg); err != nil {
		return nil, err
	}
	proxy := &domain.Collection{
		Address:    reg.Address,
		Name:       "Delegated " + name,
		Symbol:     "d" + symbol,
		Underlying: collection,
	}
	if err := token.RegisterCollection(ctx, repos, proxy); err != nil {
		return nil, err
	}
	logger.Info("Delegation registry created", "collection", collection, "registry", reg.Address, "created_at", strconv.FormatInt(now, 10))
	return &Registry{repos: repos, addr: reg.Address, collection: collection, now: now}, nil
}
