package store

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

type scoreRepo struct {
	db *bun.DB
}

func (r *scoreRepo) Append(ctx context.Context, rec *ScoreRecord) error {
	if rec.CorrectCount > rec.TotalQuestions {
		return fmt.Errorf("correct count %d exceeds total %d", rec.CorrectCount, rec.TotalQuestions)
	}
	if _, err := r.db.NewInsert().Model(rec).Exec(ctx); err != nil {
		return fmt.Errorf("append score record: %w", err)
	}
	return nil
}

func (r *scoreRepo) ByUser(ctx context.Context, userID string, limit int) ([]ScoreRecord, error) {
	var recs []ScoreRecord
	q := r.db.NewSelect().Model(&recs).
		Where("user_id = ?", userID).
		OrderExpr("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("scores for user %s: %w", userID, err)
	}
	return recs, nil
}
