package store

import (
	"time"

	"github.com/uptrace/bun"
)

// User is a minimal account record. Only what leaderboard views and the
// CLI's --user flag need; authentication lives elsewhere.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID        string    `bun:"id,pk"`
	Username  string    `bun:"username,notnull,unique"`
	CreatedAt time.Time `bun:"created_at,notnull"`
}

// ScoreRecord is the persisted outcome of one graded assessment.
// Append-only: rows are never mutated after insert.
type ScoreRecord struct {
	bun.BaseModel `bun:"table:score_records,alias:sr"`

	ID             int64     `bun:"id,pk,autoincrement"`
	UserID         string    `bun:"user_id,notnull"`
	Topic          string    `bun:"topic,notnull"`
	Difficulty     string    `bun:"difficulty,notnull"`
	CorrectCount   int       `bun:"correct_count,notnull"`
	TotalQuestions int       `bun:"total_questions,notnull"`
	Percentage     float64   `bun:"percentage,notnull"`
	Level          string    `bun:"level,notnull"`
	CreatedAt      time.Time `bun:"created_at,notnull"`
}

// AssessmentHistory records one completed assessment with its full context
// (category and question count included, unlike the score row).
type AssessmentHistory struct {
	bun.BaseModel `bun:"table:assessment_history,alias:ah"`

	ID             string    `bun:"id,pk"`
	UserID         string    `bun:"user_id,notnull"`
	Topic          string    `bun:"topic,notnull"`
	Difficulty     string    `bun:"difficulty,notnull"`
	Category       string    `bun:"category,notnull"`
	CorrectCount   int       `bun:"correct_count,notnull"`
	TotalQuestions int       `bun:"total_questions,notnull"`
	Percentage     float64   `bun:"percentage,notnull"`
	Level          string    `bun:"level,notnull"`
	TakenAt        time.Time `bun:"taken_at,notnull"`
}

// Certificate statuses. Expiry is computed at read time rather than swept
// by a background job; revocation is an explicit operation.
const (
	CertStatusActive  = "active"
	CertStatusExpired = "expired"
	CertStatusRevoked = "revoked"
)

// Certificate proves a qualifying score on a topic. At most one row per
// (user, topic): a new qualifying score replaces the previous certificate.
type Certificate struct {
	bun.BaseModel `bun:"table:certificates,alias:c"`

	CertificateID string    `bun:"certificate_id,pk"`
	UserID        string    `bun:"user_id,notnull"`
	Topic         string    `bun:"topic,notnull"`
	Score         float64   `bun:"score,notnull"`
	IssueDate     time.Time `bun:"issue_date,notnull"`
	ExpiryDate    time.Time `bun:"expiry_date,notnull"`
	Status        string    `bun:"status,notnull,default:'active'"`
}

// EffectiveStatus resolves the time-based active → expired transition at
// read time. Revoked always wins.
func (c *Certificate) EffectiveStatus(now time.Time) string {
	if c.Status == CertStatusRevoked {
		return CertStatusRevoked
	}
	if now.After(c.ExpiryDate) {
		return CertStatusExpired
	}
	return c.Status
}

// LeaderboardEntry holds a user's best score for a topic. Rank is a dense
// permutation 1..N within the topic, rewritten on every update.
type LeaderboardEntry struct {
	bun.BaseModel `bun:"table:leaderboard_entries,alias:le"`

	ID             int64     `bun:"id,pk,autoincrement"`
	UserID         string    `bun:"user_id,notnull"`
	Topic          string    `bun:"topic,notnull"`
	Score          int       `bun:"score,notnull"`
	TotalQuestions int       `bun:"total_questions,notnull"`
	Percentage     float64   `bun:"percentage,notnull"`
	Rank           int       `bun:"rank,notnull,default:0"`
	UpdatedAt      time.Time `bun:"updated_at,notnull"`
}

// GenerationLog captures one text-generation request for the llm
// inspection commands. Written by the provider logging decorator.
type GenerationLog struct {
	bun.BaseModel `bun:"table:generation_log,alias:gl"`

	ID           int64     `bun:"id,pk,autoincrement"`
	Timestamp    time.Time `bun:"timestamp,notnull"`
	Provider     string    `bun:"provider,notnull"`
	Model        string    `bun:"model,notnull"`
	Purpose      string    `bun:"purpose,notnull"`
	InputTokens  int       `bun:"input_tokens,notnull,default:0"`
	OutputTokens int       `bun:"output_tokens,notnull,default:0"`
	LatencyMs    int64     `bun:"latency_ms,notnull,default:0"`
	Success      bool      `bun:"success,notnull"`
	ErrorMessage string    `bun:"error_message"`
	RequestBody  string    `bun:"request_body"`
	ResponseBody string    `bun:"response_body"`
}
