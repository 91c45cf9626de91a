package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a targeted row does not exist.
var ErrNotFound = errors.New("not found")

// UserRepo manages account rows.
type UserRepo interface {
	// Ensure returns the user with the given username, creating it first
	// if it doesn't exist.
	Ensure(ctx context.Context, username string) (*User, error)

	// Get returns the user by ID, or nil if not found.
	Get(ctx context.Context, id string) (*User, error)
}

// ScoreRepo appends graded outcomes. Records are immutable.
type ScoreRepo interface {
	Append(ctx context.Context, rec *ScoreRecord) error

	// ByUser returns a user's score records, most recent first.
	ByUser(ctx context.Context, userID string, limit int) ([]ScoreRecord, error)
}

// HistoryRepo appends completed-assessment records.
type HistoryRepo interface {
	Append(ctx context.Context, rec *AssessmentHistory) error

	// ByUser returns a user's assessment history, most recent first.
	ByUser(ctx context.Context, userID string, limit int) ([]AssessmentHistory, error)
}

// CertificateRepo manages one certificate per (user, topic).
type CertificateRepo interface {
	// Upsert issues a certificate for (userID, topic), replacing any prior
	// one for the same pair, and returns the new certificate ID.
	Upsert(ctx context.Context, userID, topic string, score float64, issue, expiry time.Time) (string, error)

	// Revoke marks a certificate revoked. Returns ErrNotFound if no such
	// certificate exists.
	Revoke(ctx context.Context, certificateID string) error

	// ByUser returns a user's certificates, newest first.
	ByUser(ctx context.Context, userID string) ([]Certificate, error)

	// Get returns a certificate by ID, or nil if not found.
	Get(ctx context.Context, certificateID string) (*Certificate, error)
}

// RankedEntry is a leaderboard row joined with its username for display.
type RankedEntry struct {
	Rank           int
	UserID         string
	Username       string
	Topic          string
	Score          int
	TotalQuestions int
	Percentage     float64
	UpdatedAt      time.Time
}

// OverallEntry is the read-time aggregate across topics for one user.
type OverallEntry struct {
	UserID        string
	Username      string
	Topics        int
	AvgPercentage float64
}

// LeaderboardRepo maintains per-topic best scores and their ranks.
type LeaderboardRepo interface {
	// UpsertBest inserts an entry for (userID, topic) or overwrites the
	// existing one only when the new percentage is strictly higher.
	UpsertBest(ctx context.Context, userID, topic string, score, total int, at time.Time) error

	// RecalculateRanks rewrites the ranks for a topic as a dense 1..N
	// permutation ordered by percentage descending, most recent first on
	// ties. Runs in a single transaction.
	RecalculateRanks(ctx context.Context, topic string) error

	// Top returns the ranked entries for a topic, best first.
	Top(ctx context.Context, topic string, limit int) ([]RankedEntry, error)

	// Overall aggregates the mean percentage per user across topics,
	// restricted to users with at least minTopics entries.
	Overall(ctx context.Context, minTopics, limit int) ([]OverallEntry, error)
}

// GenerationLogData is one text-generation request as seen by the logging
// decorator.
type GenerationLogData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// GenerationLogRepo records text-generation requests for inspection.
type GenerationLogRepo interface {
	Append(ctx context.Context, data GenerationLogData) error

	// List returns recent log rows, newest first.
	List(ctx context.Context, limit int) ([]GenerationLog, error)

	// Get returns a log row by ID, or nil if not found.
	Get(ctx context.Context, id int64) (*GenerationLog, error)
}
