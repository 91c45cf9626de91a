package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

type certificateRepo struct {
	db *bun.DB
}

// certificateID derives a unique ID from the user and issue time.
func certificateID(userID string, issue time.Time) string {
	return fmt.Sprintf("CERT-%s-%d", userID, issue.Unix())
}

func (r *certificateRepo) Upsert(ctx context.Context, userID, topic string, score float64, issue, expiry time.Time) (string, error) {
	cert := &Certificate{
		CertificateID: certificateID(userID, issue),
		UserID:        userID,
		Topic:         topic,
		Score:         score,
		IssueDate:     issue,
		ExpiryDate:    expiry,
		Status:        CertStatusActive,
	}

	// A requalifying score replaces the prior certificate for the pair,
	// including its ID: the old certificate stops being verifiable.
	// Delete-then-insert rather than ON CONFLICT, since a reissue within
	// the same second would collide on the certificate_id key instead of
	// the (user_id, topic) index.
	err := r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*Certificate)(nil)).
			Where("user_id = ?", userID).
			Where("topic = ?", topic).
			Exec(ctx); err != nil {
			return err
		}
		_, err := tx.NewInsert().Model(cert).Exec(ctx)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("upsert certificate for %s/%s: %w", userID, topic, err)
	}
	return cert.CertificateID, nil
}

func (r *certificateRepo) Revoke(ctx context.Context, certificateID string) error {
	res, err := r.db.NewUpdate().Model((*Certificate)(nil)).
		Set("status = ?", CertStatusRevoked).
		Where("certificate_id = ?", certificateID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("revoke certificate %s: %w", certificateID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("revoke certificate %s: %w", certificateID, err)
	}
	if n == 0 {
		return fmt.Errorf("certificate %s: %w", certificateID, ErrNotFound)
	}
	return nil
}

func (r *certificateRepo) ByUser(ctx context.Context, userID string) ([]Certificate, error) {
	var certs []Certificate
	err := r.db.NewSelect().Model(&certs).
		Where("user_id = ?", userID).
		OrderExpr("issue_date DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("certificates for user %s: %w", userID, err)
	}
	return certs, nil
}

func (r *certificateRepo) Get(ctx context.Context, certificateID string) (*Certificate, error) {
	cert := new(Certificate)
	err := r.db.NewSelect().Model(cert).
		Where("certificate_id = ?", certificateID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get certificate %s: %w", certificateID, err)
	}
	return cert, nil
}
