package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"riavet-admin/internal/domain/activity"
)

type ActivityRepo struct {
	db *sql.DB
}

func NewActivityRepo(db *sql.DB) *ActivityRepo {
	return &ActivityRepo{db: db}
}

func (r *ActivityRepo) Append(ctx context.Context, e activity.Entry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO activity_entries (id, entity, action, entity_id, operator, at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		e.ID,
		e.Entity,
		e.Action,
		e.EntityID,
		e.Operator,
		e.At,
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

func (r *ActivityRepo) Recent(ctx context.Context, limit int) ([]activity.Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, entity, action, entity_id, operator, at
		FROM activity_entries
		ORDER BY at DESC
		LIMIT $1
	`, activity.ClampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("select activity: %w", err)
	}
	defer rows.Close()

	out := make([]activity.Entry, 0)
	for rows.Next() {
		var e activity.Entry
		if err := rows.Scan(&e.ID, &e.Entity, &e.Action, &e.EntityID, &e.Operator, &e.At); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
