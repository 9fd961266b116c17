package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/gamedex/gamedex/internal/db"
)

type fakeStore struct {
	exact      *db.GameRef
	exactErr   error
	candidates []db.GameCandidate
	simErr     error
	simCalls   int
}

func (f *fakeStore) FindGameExact(ctx context.Context, cleanTitle string) (*db.GameRef, error) {
	return f.exact, f.exactErr
}

func (f *fakeStore) SimilarGames(ctx context.Context, cleanTitle string, threshold float64, limit int) ([]db.GameCandidate, error) {
	f.simCalls++
	return f.candidates, f.simErr
}

func TestFindCanonicalExactShortCircuits(t *testing.T) {
	t.Parallel()

	store := &fakeStore{exact: &db.GameRef{ID: 7, CleanTitle: "FIFA 21"}}
	m := NewMatcher(store, DefaultMatcherConfig())

	match, err := m.FindCanonical(context.Background(), "fifa 21")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if match == nil || match.ID != 7 {
		t.Fatalf("expected exact match with id 7, got %+v", match)
	}
	if store.simCalls != 0 {
		t.Fatalf("expected similarity query to be skipped, got %d calls", store.simCalls)
	}
}

func TestFindCanonicalNoCandidates(t *testing.T) {
	t.Parallel()

	m := NewMatcher(&fakeStore{}, DefaultMatcherConfig())

	match, err := m.FindCanonical(context.Background(), "God of War II")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if match != nil {
		t.Fatalf("expected no match, got %+v", match)
	}
}

func TestFindCanonicalMergesNearDuplicate(t *testing.T) {
	t.Parallel()

	store := &fakeStore{candidates: []db.GameCandidate{
		{ID: 3, CleanTitle: "Horizon Zero Dawn.", Similarity: 0.992},
	}}
	m := NewMatcher(store, DefaultMatcherConfig())

	match, err := m.FindCanonical(context.Background(), "Horizon Zero Dawn")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if match == nil || match.ID != 3 {
		t.Fatalf("expected near duplicate to merge, got %+v", match)
	}
}

func TestFindCanonicalRejectsDistantBestCandidate(t *testing.T) {
	t.Parallel()

	store := &fakeStore{candidates: []db.GameCandidate{
		{ID: 4, CleanTitle: "Assassin's Creed Odyssey", Similarity: 0.99},
	}}
	m := NewMatcher(store, DefaultMatcherConfig())

	match, err := m.FindCanonical(context.Background(), "Assassin's Creed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if match != nil {
		t.Fatalf("expected edit distance to reject candidate, got %+v", match)
	}
}

func TestFindCanonicalFinalScoreFallback(t *testing.T) {
	t.Parallel()

	cfg := DefaultMatcherConfig()
	cfg.UseEditDistance = false

	store := &fakeStore{candidates: []db.GameCandidate{
		{ID: 5, CleanTitle: "Gran Turismo", Similarity: 0.99},
	}}
	m := NewMatcher(store, cfg)

	match, err := m.FindCanonical(context.Background(), "Gran Turismo 7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if match == nil || match.ID != 5 {
		t.Fatalf("expected final score fallback to accept, got %+v", match)
	}

	store.candidates = []db.GameCandidate{
		{ID: 6, CleanTitle: "one two three four five six", Similarity: 0.99},
	}
	match, err = m.FindCanonical(context.Background(), "seven")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if match != nil {
		t.Fatalf("expected low final score to reject, got %+v", match)
	}
}

func TestFindCanonicalPropagatesStoreErrors(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("connection refused")
	m := NewMatcher(&fakeStore{exactErr: wantErr}, DefaultMatcherConfig())

	if _, err := m.FindCanonical(context.Background(), "Stray"); !errors.Is(err, wantErr) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}

func TestRescorePrefersCaseInsensitiveExact(t *testing.T) {
	t.Parallel()

	scored := rescore("FIFA 21", []db.GameCandidate{
		{ID: 1, CleanTitle: "FIFA 2", Similarity: 0.995},
		{ID: 2, CleanTitle: "fifa 21", Similarity: 0.99},
	})
	if scored[0].candidate.ID != 2 {
		t.Fatalf("expected exact candidate first, got id %d", scored[0].candidate.ID)
	}
	if scored[0].finalScore != 2.0 {
		t.Fatalf("expected forced score 2.0, got %f", scored[0].finalScore)
	}
}

func TestTokenDifference(t *testing.T) {
	t.Parallel()

	if got := tokenDifference([]string{"god", "of", "war"}, []string{"god", "of", "war"}); got != 0 {
		t.Fatalf("expected zero difference, got %d", got)
	}
	if got := tokenDifference([]string{"god", "of", "war", "ii"}, []string{"god", "of", "war", "iii"}); got != 2 {
		t.Fatalf("expected difference 2, got %d", got)
	}
}
