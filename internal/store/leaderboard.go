package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

type leaderboardRepo struct {
	db *bun.DB
}

func (r *leaderboardRepo) UpsertBest(ctx context.Context, userID, topic string, score, total int, at time.Time) error {
	if total <= 0 {
		return fmt.Errorf("leaderboard upsert for %s/%s: total must be positive", userID, topic)
	}
	percentage := 100 * float64(score) / float64(total)

	return r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		existing := new(LeaderboardEntry)
		err := tx.NewSelect().Model(existing).
			Where("user_id = ?", userID).
			Where("topic = ?", topic).
			Scan(ctx)

		switch {
		case errors.Is(err, sql.ErrNoRows):
			entry := &LeaderboardEntry{
				UserID:         userID,
				Topic:          topic,
				Score:          score,
				TotalQuestions: total,
				Percentage:     percentage,
				UpdatedAt:      at,
			}
			if _, err := tx.NewInsert().Model(entry).Exec(ctx); err != nil {
				return fmt.Errorf("insert leaderboard entry: %w", err)
			}
			return nil

		case err != nil:
			return fmt.Errorf("lookup leaderboard entry: %w", err)
		}

		// Keep-best semantics: ties and lower scores leave the row alone.
		if percentage <= existing.Percentage {
			return nil
		}

		_, err = tx.NewUpdate().Model((*LeaderboardEntry)(nil)).
			Set("score = ?", score).
			Set("total_questions = ?", total).
			Set("percentage = ?", percentage).
			Set("updated_at = ?", at).
			Where("user_id = ?", userID).
			Where("topic = ?", topic).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("update leaderboard entry: %w", err)
		}
		return nil
	})
}

func (r *leaderboardRepo) RecalculateRanks(ctx context.Context, topic string) error {
	return r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var entries []LeaderboardEntry
		err := tx.NewSelect().Model(&entries).
			Where("topic = ?", topic).
			OrderExpr("percentage DESC").
			OrderExpr("updated_at DESC").
			Scan(ctx)
		if err != nil {
			return fmt.Errorf("load entries for topic %q: %w", topic, err)
		}

		for i := range entries {
			rank := i + 1
			if entries[i].Rank == rank {
				continue
			}
			_, err := tx.NewUpdate().Model((*LeaderboardEntry)(nil)).
				Set("rank = ?", rank).
				Where("id = ?", entries[i].ID).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("write rank %d for entry %d: %w", rank, entries[i].ID, err)
			}
		}
		return nil
	})
}

func (r *leaderboardRepo) Top(ctx context.Context, topic string, limit int) ([]RankedEntry, error) {
	var rows []RankedEntry
	q := r.db.NewSelect().Model((*LeaderboardEntry)(nil)).
		ColumnExpr("le.rank AS rank").
		ColumnExpr("le.user_id AS user_id").
		ColumnExpr("u.username AS username").
		ColumnExpr("le.topic AS topic").
		ColumnExpr("le.score AS score").
		ColumnExpr("le.total_questions AS total_questions").
		ColumnExpr("le.percentage AS percentage").
		ColumnExpr("le.updated_at AS updated_at").
		Join("JOIN users AS u ON u.id = le.user_id").
		Where("le.topic = ?", topic).
		OrderExpr("le.rank ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx, &rows); err != nil {
		return nil, fmt.Errorf("leaderboard for topic %q: %w", topic, err)
	}
	return rows, nil
}

func (r *leaderboardRepo) Overall(ctx context.Context, minTopics, limit int) ([]OverallEntry, error) {
	var rows []OverallEntry
	q := r.db.NewSelect().Model((*LeaderboardEntry)(nil)).
		ColumnExpr("le.user_id AS user_id").
		ColumnExpr("u.username AS username").
		ColumnExpr("COUNT(*) AS topics").
		ColumnExpr("AVG(le.percentage) AS avg_percentage").
		Join("JOIN users AS u ON u.id = le.user_id").
		GroupExpr("le.user_id, u.username").
		Having("COUNT(*) >= ?", minTopics).
		OrderExpr("avg_percentage DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx, &rows); err != nil {
		return nil, fmt.Errorf("overall leaderboard: %w", err)
	}
	return rows, nil
}
