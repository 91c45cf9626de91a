package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

type generationLogRepo struct {
	db *bun.DB
}

func (r *generationLogRepo) Append(ctx context.Context, data GenerationLogData) error {
	row := &GenerationLog{
		Timestamp:    time.Now().UTC(),
		Provider:     data.Provider,
		Model:        data.Model,
		Purpose:      data.Purpose,
		InputTokens:  data.InputTokens,
		OutputTokens: data.OutputTokens,
		LatencyMs:    data.LatencyMs,
		Success:      data.Success,
		ErrorMessage: data.ErrorMessage,
		RequestBody:  data.RequestBody,
		ResponseBody: data.ResponseBody,
	}
	if _, err := r.db.NewInsert().Model(row).Exec(ctx); err != nil {
		return fmt.Errorf("append generation log: %w", err)
	}
	return nil
}

func (r *generationLogRepo) List(ctx context.Context, limit int) ([]GenerationLog, error) {
	var rows []GenerationLog
	q := r.db.NewSelect().Model(&rows).OrderExpr("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("list generation log: %w", err)
	}
	return rows, nil
}

func (r *generationLogRepo) Get(ctx context.Context, id int64) (*GenerationLog, error) {
	row := new(GenerationLog)
	err := r.db.NewSelect().Model(row).Where("gl.id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get generation log %d: %w", id, err)
	}
	return row, nil
}
