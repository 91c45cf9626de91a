package store

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

type historyRepo struct {
	db *bun.DB
}

func (r *historyRepo) Append(ctx context.Context, rec *AssessmentHistory) error {
	if _, err := r.db.NewInsert().Model(rec).Exec(ctx); err != nil {
		return fmt.Errorf("append assessment history: %w", err)
	}
	return nil
}

func (r *historyRepo) ByUser(ctx context.Context, userID string, limit int) ([]AssessmentHistory, error) {
	var recs []AssessmentHistory
	q := r.db.NewSelect().Model(&recs).
		Where("user_id = ?", userID).
		OrderExpr("taken_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("history for user %s: %w", userID, err)
	}
	return recs, nil
}
