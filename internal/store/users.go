package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type userRepo struct {
	db *bun.DB
}

func (r *userRepo) Ensure(ctx context.Context, username string) (*User, error) {
	u := new(User)
	err := r.db.NewSelect().Model(u).Where("username = ?", username).Scan(ctx)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("lookup user %q: %w", username, err)
	}

	u = &User{
		ID:        uuid.NewString(),
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := r.db.NewInsert().Model(u).Exec(ctx); err != nil {
		return nil, fmt.Errorf("create user %q: %w", username, err)
	}
	return u, nil
}

func (r *userRepo) Get(ctx context.Context, id string) (*User, error) {
	u := new(User)
	err := r.db.NewSelect().Model(u).Where("u.id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return u, nil
}
