package postgres

import (
	"context"

	"rentescrow-backend/internal/domain"
)

func (t *tx) GetCollection(ctx context.Context, addr domain.Address) (*domain.Collection, error) {
	c := &domain.Collection{Address: addr}
	found, err := t.get(ctx, "GetCollection",
		`SELECT name, symbol, base_uri, underlying FROM collections WHERE address = $1`,
		[]any{addr}, &c.Name, &c.Symbol, &c.BaseURI, &c.Underlying)
	if err != nil || !found {
		return nil, err
	}
	return c, nil
}

func (t *tx) SaveCollection(ctx context.Context, c *domain.Collection) error {
	query := `
		INSERT INTO collections (address, name, symbol, base_uri, underlying)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (address) DO UPDATE SET
			name = EXCLUDED.name, symbol = EXCLUDED.symbol,
			base_uri = EXCLUDED.base_uri, underlying = EXCLUDED.underlying
	`
	return t.exec(ctx, "SaveCollection", query, c.Address, c.Name, c.Symbol, c.BaseURI, c.Underlying)
}

func (t *tx) GetToken(ctx context.Context, collection domain.Address, tokenID int64) (*domain.Token, error) {
	tok := &domain.Token{Collection: collection, TokenID: tokenID}
	found, err := t.get(ctx, "GetToken",
		`SELECT owner, approved FROM tokens WHERE collection = $1 AND token_id = $2`,
		[]any{collection, tokenID}, &tok.Owner, &tok.Approved)
	if err != nil || !found {
		return nil, err
	}
	return tok, nil
}

func (t *tx) SaveToken(ctx context.Context, tok *domain.Token) error {
	query := `
		INSERT INTO tokens (collection, token_id, owner, approved)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (collection, token_id) DO UPDATE SET
			owner = EXCLUDED.owner, approved = EXCLUDED.approved
	`
	return t.exec(ctx, "SaveToken", query, tok.Collection, tok.TokenID, tok.Owner, tok.Approved)
}

func (t *tx) DeleteToken(ctx context.Context, collection domain.Address, tokenID int64) error {
	return t.exec(ctx, "DeleteToken", `DELETE FROM tokens WHERE collection = $1 AND token_id = $2`,
		collection, tokenID)
}
