package leaderboard

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"skillcheck/internal/store"
)

func testSetup(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return NewService(st.Leaderboard()), st
}

func addUser(t *testing.T, st *store.Store, username string) string {
	t.Helper()
	u, err := st.Users().Ensure(context.Background(), username)
	if err != nil {
		t.Fatalf("ensure user %s: %v", username, err)
	}
	return u.ID
}

func TestRecord_DenseRanks(t *testing.T) {
	svc, st := testSetup(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	scores := []int{7, 3, 9, 5, 1}
	for i, score := range scores {
		userID := addUser(t, st, fmt.Sprintf("user%d", i))
		if err := svc.Record(ctx, userID, "Go", score, 10, base.Add(time.Duration(i)*time.Minute)); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	top, err := svc.Top(ctx, "Go", 100)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != len(scores) {
		t.Fatalf("expected %d entries, got %d", len(scores), len(top))
	}

	seen := make(map[int]bool)
	for i, e := range top {
		if e.Rank != i+1 {
			t.Errorf("position %d has rank %d, want %d", i, e.Rank, i+1)
		}
		if seen[e.Rank] {
			t.Errorf("duplicate rank %d", e.Rank)
		}
		seen[e.Rank] = true
		if i > 0 && e.Percentage > top[i-1].Percentage {
			t.Errorf("ranking not descending at position %d", i)
		}
	}
}

func TestRecord_KeepsBestScore(t *testing.T) {
	svc, st := testSetup(t)
	ctx := context.Background()
	userID := addUser(t, st, "alice")

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	if err := svc.Record(ctx, userID, "SQL", 9, 10, base); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := svc.Record(ctx, userID, "SQL", 4, 10, base.Add(time.Minute)); err != nil {
		t.Fatalf("record: %v", err)
	}

	top, err := svc.Top(ctx, "SQL", 10)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(top))
	}
	if top[0].Percentage != 90 {
		t.Errorf("best score decreased: %.1f%%", top[0].Percentage)
	}
	if !top[0].UpdatedAt.Equal(base) {
		t.Errorf("timestamp overwritten by the losing score: %v", top[0].UpdatedAt)
	}
}

func TestRecord_EqualScoreDoesNotOverwrite(t *testing.T) {
	svc, st := testSetup(t)
	ctx := context.Background()
	userID := addUser(t, st, "bob")

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	if err := svc.Record(ctx, userID, "SQL", 8, 10, base); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := svc.Record(ctx, userID, "SQL", 8, 10, base.Add(time.Hour)); err != nil {
		t.Fatalf("record: %v", err)
	}

	top, err := svc.Top(ctx, "SQL", 10)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if !top[0].UpdatedAt.Equal(base) {
		t.Errorf("tie must not overwrite, got timestamp %v", top[0].UpdatedAt)
	}
}

func TestRecord_TiesRankMostRecentFirst(t *testing.T) {
	svc, st := testSetup(t)
	ctx := context.Background()

	t1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t2.Add(time.Hour)

	first := addUser(t, st, "first95")
	second := addUser(t, st, "second95")
	third := addUser(t, st, "eighty")

	if err := svc.Record(ctx, first, "Algebra", 95, 100, t1); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := svc.Record(ctx, second, "Algebra", 95, 100, t2); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := svc.Record(ctx, third, "Algebra", 80, 100, t3); err != nil {
		t.Fatalf("record: %v", err)
	}

	top, err := svc.Top(ctx, "Algebra", 10)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(top))
	}
	if top[0].Username != "second95" || top[0].Rank != 1 {
		t.Errorf("rank 1 should be the most recent 95%%: %+v", top[0])
	}
	if top[1].Username != "first95" || top[1].Rank != 2 {
		t.Errorf("rank 2 should be the earlier 95%%: %+v", top[1])
	}
	if top[2].Username != "eighty" || top[2].Rank != 3 {
		t.Errorf("rank 3 should be the 80%%: %+v", top[2])
	}
}

func TestRecord_TopicsRankIndependently(t *testing.T) {
	svc, st := testSetup(t)
	ctx := context.Background()
	userID := addUser(t, st, "carol")

	now := time.Now().UTC()
	if err := svc.Record(ctx, userID, "Go", 5, 10, now); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := svc.Record(ctx, userID, "SQL", 10, 10, now); err != nil {
		t.Fatalf("record: %v", err)
	}

	for _, topic := range []string{"Go", "SQL"} {
		top, err := svc.Top(ctx, topic, 10)
		if err != nil {
			t.Fatalf("top %s: %v", topic, err)
		}
		if len(top) != 1 || top[0].Rank != 1 {
			t.Errorf("topic %s: expected single rank-1 entry, got %+v", topic, top)
		}
	}
}

func TestOverall_RequiresThreeTopics(t *testing.T) {
	svc, st := testSetup(t)
	ctx := context.Background()

	now := time.Now().UTC()

	// veteran has 3 topics, rookie only 2.
	veteran := addUser(t, st, "veteran")
	for i, topic := range []string{"Go", "SQL", "Linux"} {
		if err := svc.Record(ctx, veteran, topic, 8+i%2, 10, now); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	rookie := addUser(t, st, "rookie")
	for _, topic := range []string{"Go", "SQL"} {
		if err := svc.Record(ctx, rookie, topic, 10, 10, now); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	overall, err := svc.Overall(ctx, 10)
	if err != nil {
		t.Fatalf("overall: %v", err)
	}
	if len(overall) != 1 {
		t.Fatalf("expected only the 3-topic user, got %d entries", len(overall))
	}
	if overall[0].Username != "veteran" {
		t.Errorf("unexpected user on overall board: %q", overall[0].Username)
	}
	if overall[0].Topics != 3 {
		t.Errorf("topic count %d, want 3", overall[0].Topics)
	}
	// Scores were 80, 90, 80.
	want := (80.0 + 90.0 + 80.0) / 3.0
	if diff := overall[0].AvgPercentage - want; diff > 0.001 || diff < -0.001 {
		t.Errorf("avg %.3f, want %.3f", overall[0].AvgPercentage, want)
	}
}
