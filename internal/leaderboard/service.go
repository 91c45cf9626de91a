// Package leaderboard maintains per-topic best scores with dense ranks.
package leaderboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"skillcheck/internal/store"
)

// OverallMinTopics is how many topics a user must have competed in
// before showing up on the overall board.
const OverallMinTopics = 3

// Service coordinates leaderboard writes. Rank recomputation for a
// topic is a read-sort-write sequence, so writers for the same topic
// are serialized with a per-topic mutex on top of the repo's
// transaction.
type Service struct {
	repo store.LeaderboardRepo

	mu     sync.Mutex
	topics map[string]*sync.Mutex
}

// NewService creates a leaderboard service over the given repo.
func NewService(repo store.LeaderboardRepo) *Service {
	return &Service{
		repo:   repo,
		topics: make(map[string]*sync.Mutex),
	}
}

func (s *Service) topicLock(topic string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.topics[topic]
	if !ok {
		l = &sync.Mutex{}
		s.topics[topic] = l
	}
	return l
}

// Record folds a new result into the topic's board: the stored entry is
// overwritten only when the new percentage is strictly higher, then the
// topic's ranks are rewritten as a dense 1..N permutation.
func (s *Service) Record(ctx context.Context, userID, topic string, score, total int, at time.Time) error {
	l := s.topicLock(topic)
	l.Lock()
	defer l.Unlock()

	if err := s.repo.UpsertBest(ctx, userID, topic, score, total, at); err != nil {
		return fmt.Errorf("update leaderboard entry: %w", err)
	}
	if err := s.repo.RecalculateRanks(ctx, topic); err != nil {
		return fmt.Errorf("recalculate ranks: %w", err)
	}
	return nil
}

// Top returns the ranked entries for a topic, best first.
func (s *Service) Top(ctx context.Context, topic string, limit int) ([]store.RankedEntry, error) {
	return s.repo.Top(ctx, topic, limit)
}

// Overall returns the cross-topic board: mean percentage per user over
// all their topics, for users with entries on at least OverallMinTopics
// topics. Computed at read time, never persisted.
func (s *Service) Overall(ctx context.Context, limit int) ([]store.OverallEntry, error) {
	return s.repo.Overall(ctx, OverallMinTopics, limit)
}
