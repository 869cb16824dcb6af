package postgres

import (
	"context"

	"rentescrow-backend/internal/domain"
)

func (t *tx) GetRegistry(ctx context.Context, collection domain.Address) (*domain.DelegationRegistry, error) {
	reg := &domain.DelegationRegistry{}
	found, err := t.get(ctx, "GetRegistry",
		`SELECT address, collection, created_at FROM delegation_registries WHERE collection = $1`,
		[]any{collection}, &reg.Address, &reg.Collection, &reg.CreatedAt)
	if err != nil || !found {
		return nil, err
	}
	return reg, nil
}

func (t *tx) CreateRegistry(ctx context.Context, reg *domain.DelegationRegistry) error {
	return t.exec(ctx, "CreateRegistry",
		`INSERT INTO delegation_registries (address, collection, created_at) VALUES ($1, $2, $3)`,
		reg.Address, reg.Collection, reg.CreatedAt)
}

func (t *tx) GetDelegation(ctx context.Context, registry domain.Address, tokenID int64) (*domain.Delegation, error) {
	d := &domain.Delegation{Registry: registry, TokenID: tokenID}
	found, err := t.get(ctx, "GetDelegation",
		`SELECT real_owner, access_control FROM delegations WHERE registry = $1 AND token_id = $2`,
		[]any{registry, tokenID}, &d.RealOwner, &d.AccessControl)
	if err != nil || !found {
		return nil, err
	}
	return d, nil
}

func (t *tx) SaveDelegation(ctx context.Context, d *domain.Delegation) error {
	query := `
		INSERT INTO delegations (registry, token_id, real_owner, access_control)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (registry, token_id) DO UPDATE SET
			real_owner = EXCLUDED.real_owner, access_control = EXCLUDED.access_control
	`
	return t.exec(ctx, "SaveDelegation", query, d.Registry, d.TokenID, d.RealOwner, d.AccessControl)
}

func (t *tx) DeleteDelegation(ctx context.Context, registry domain.Address, tokenID int64) error {
	return t.exec(ctx, "DeleteDelegation", `DELETE FROM delegations WHERE registry = $1 AND token_id = $2`,
		registry, tokenID)
}
