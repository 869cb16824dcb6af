package postgres

import (
	"context"
	"encoding/json"

	"rentescrow-backend/internal/domain"
	"rentescrow-backend/internal/logger"
)

func (t *tx) AppendEvent(ctx context.Context, ev *domain.Event) error {
	attrs, err := json.Marshal(ev.Attributes)
	if err != nil {
		return err
	}
	if ev.Attributes == nil {
		attrs = []byte("{}")
	}
	query := `
		INSERT INTO events (id, type, collection, token_id, actor, attributes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING seq
	`
	_, err = t.get(ctx, "AppendEvent", query,
		[]any{ev.ID, ev.Type, ev.Item.Collection, ev.Item.TokenID, ev.Actor, attrs, ev.CreatedAt},
		&ev.Seq)
	return err
}

func (t *tx) ListEvents(ctx context.Context, afterSeq int64, limit int32) ([]domain.Event, error) {
	query := `
		SELECT seq, id, type, collection, token_id, actor, attributes, created_at
		FROM events WHERE seq > $1 ORDER BY seq
	`
	args := []any{afterSeq}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	logger.DatabaseCall("ListEvents", query, "afterSeq", afterSeq)
	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		logger.DatabaseResult("ListEvents", 0, err)
		return nil, err
	}
	defer rows.Close()

	var out []domain.Event
	for rows.Next() {
		var ev domain.Event
		var attrs []byte
		if err := rows.Scan(&ev.Seq, &ev.ID, &ev.Type, &ev.Item.Collection, &ev.Item.TokenID,
			&ev.Actor, &attrs, &ev.CreatedAt); err != nil {
			return nil, err
		}
		if len(attrs) > 0 {
			if err := json.Unmarshal(attrs, &ev.Attributes); err != nil {
				return nil, err
			}
			if len(ev.Attributes) == 0 {
				ev.Attributes = nil
			}
		}
		out = append(out, ev)
	}
	logger.DatabaseResult("ListEvents", int64(len(out)), rows.Err())
	return out, rows.Err()
}
