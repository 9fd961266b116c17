package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"

	"github.com/gamedex/gamedex/internal/db"
)

const defaultCandidateLimit = 10

// Store is the catalog lookup surface the matcher needs. *db.Pool
// satisfies it.
type Store interface {
	FindGameExact(ctx context.Context, cleanTitle string) (*db.GameRef, error)
	SimilarGames(ctx context.Context, cleanTitle string, threshold float64, limit int) ([]db.GameCandidate, error)
}

// MatcherConfig holds the fuzzy matching thresholds. The defaults are
// deliberately strict: trigram similarity alone merges franchise
// siblings like numbered sequels, so a candidate must also survive an
// edit distance check before it is accepted.
type MatcherConfig struct {
	SimilarityThreshold float64
	CandidateLimit      int
	MaxEditDistance     int
	MinFinalScore       float64
	UseEditDistance     bool
}

func DefaultMatcherConfig() MatcherConfig {
	return MatcherConfig{
		SimilarityThreshold: 0.99,
		CandidateLimit:      defaultCandidateLimit,
		MaxEditDistance:     5,
		MinFinalScore:       0.6,
		UseEditDistance:     true,
	}
}

// Match is an accepted canonical game for a clean title.
type Match struct {
	ID         int64
	CleanTitle string
}

type Matcher struct {
	store Store
	cfg   MatcherConfig
}

func NewMatcher(store Store, cfg MatcherConfig) *Matcher {
	if cfg.CandidateLimit <= 0 {
		cfg.CandidateLimit = defaultCandidateLimit
	}
	return &Matcher{store: store, cfg: cfg}
}

// FindCanonical resolves cleanTitle to an existing game, or nil when no
// candidate survives the checks. Storage errors are returned as is; the
// caller owns the failure policy.
func (m *Matcher) FindCanonical(ctx context.Context, cleanTitle string) (*Match, error) {
	exact, err := m.store.FindGameExact(ctx, cleanTitle)
	if err != nil {
		return nil, fmt.Errorf("exact lookup: %w", err)
	}
	if exact != nil {
		return &Match{ID: exact.ID, CleanTitle: exact.CleanTitle}, nil
	}

	candidates, err := m.store.SimilarGames(ctx, cleanTitle, m.cfg.SimilarityThreshold, m.cfg.CandidateLimit)
	if err != nil {
		return nil, fmt.Errorf("similarity lookup: %w", err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	scored := rescore(cleanTitle, candidates)
	best := scored[0]

	if m.cfg.UseEditDistance {
		distance := edlib.LevenshteinDistance(strings.ToLower(cleanTitle), strings.ToLower(best.candidate.CleanTitle))
		if distance <= m.cfg.MaxEditDistance {
			return &Match{ID: best.candidate.ID, CleanTitle: best.candidate.CleanTitle}, nil
		}
		return nil, nil
	}

	if best.finalScore >= m.cfg.MinFinalScore {
		return &Match{ID: best.candidate.ID, CleanTitle: best.candidate.CleanTitle}, nil
	}
	return nil, nil
}

type scoredCandidate struct {
	candidate  db.GameCandidate
	finalScore float64
}

// rescore penalizes candidates by symmetric token difference: every
// token present on one side but not the other costs 0.1. A
// case-insensitive full match outranks everything with a fixed score
// of 2, so "FIFA 21" never loses to a near miss.
func rescore(cleanTitle string, candidates []db.GameCandidate) []scoredCandidate {
	inputTokens := strings.Fields(strings.ToLower(cleanTitle))

	scored := make([]scoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		s := scoredCandidate{candidate: c}
		if strings.EqualFold(c.CleanTitle, cleanTitle) {
			s.finalScore = 2.0
		} else {
			titleTokens := strings.Fields(strings.ToLower(c.CleanTitle))
			diff := tokenDifference(inputTokens, titleTokens)
			s.finalScore = c.Similarity - 0.1*float64(diff)
		}
		scored = append(scored, s)
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].finalScore > scored[j].finalScore
	})
	return scored
}

// tokenDifference counts tokens of a missing from b plus tokens of b
// missing from a. Duplicates count once per occurrence on their own
// side, matching a simple membership test.
func tokenDifference(a, b []string) int {
	inA := make(map[string]bool, len(a))
	for _, t := range a {
		inA[t] = true
	}
	inB := make(map[string]bool, len(b))
	for _, t := range b {
		inB[t] = true
	}

	diff := 0
	for _, t := range a {
		if !inB[t] {
			diff++
		}
	}
	for _, t := range b {
		if !inA[t] {
			diff++
		}
	}
	return diff
}
