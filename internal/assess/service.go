package assess

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"skillcheck/internal/leaderboard"
	"skillcheck/internal/store"
)

// certificateValidity is how long an issued certificate stays active.
const certificateValidity = 365 * 24 * time.Hour

// Outcome is what Submit returns: the graded result plus the ID of any
// certificate issued for it.
type Outcome struct {
	Result Result

	// CertificateID is set when the result qualified for a certificate.
	CertificateID string
}

// Service runs the post-grading side effects: score record, history
// row, certificate upsert when eligible, leaderboard update.
type Service struct {
	scores store.ScoreRepo
	hist   store.HistoryRepo
	certs  store.CertificateRepo
	board  *leaderboard.Service
}

// NewService wires the grading pipeline to its persistence collaborators.
func NewService(scores store.ScoreRepo, hist store.HistoryRepo, certs store.CertificateRepo, board *leaderboard.Service) *Service {
	return &Service{scores: scores, hist: hist, certs: certs, board: board}
}

// Submit grades the submission and persists the outcome. The score
// record, history row, and leaderboard update always happen; a
// certificate is issued only at 80% or above.
func (s *Service) Submit(ctx context.Context, userID string, a *Assessment, sub Submission) (*Outcome, error) {
	result := Grade(a.Questions, sub)
	now := time.Now().UTC()

	rec := &store.ScoreRecord{
		UserID:         userID,
		Topic:          a.Topic,
		Difficulty:     string(a.Difficulty),
		CorrectCount:   result.CorrectCount,
		TotalQuestions: result.Total,
		Percentage:     result.Percentage,
		Level:          string(result.Level),
		CreatedAt:      now,
	}
	if err := s.scores.Append(ctx, rec); err != nil {
		return nil, fmt.Errorf("append score record: %w", err)
	}

	histRec := &store.AssessmentHistory{
		ID:             uuid.NewString(),
		UserID:         userID,
		Topic:          a.Topic,
		Difficulty:     string(a.Difficulty),
		Category:       string(a.Category),
		CorrectCount:   result.CorrectCount,
		TotalQuestions: result.Total,
		Percentage:     result.Percentage,
		Level:          string(result.Level),
		TakenAt:        now,
	}
	if err := s.hist.Append(ctx, histRec); err != nil {
		return nil, fmt.Errorf("append assessment history: %w", err)
	}

	out := &Outcome{Result: result}

	if result.CertificateEligible() {
		certID, err := s.certs.Upsert(ctx, userID, a.Topic, result.Percentage, now, now.Add(certificateValidity))
		if err != nil {
			return nil, fmt.Errorf("issue certificate: %w", err)
		}
		out.CertificateID = certID
	}

	if err := s.board.Record(ctx, userID, a.Topic, result.CorrectCount, result.Total, now); err != nil {
		return nil, fmt.Errorf("update leaderboard: %w", err)
	}

	return out, nil
}
