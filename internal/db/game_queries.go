package db

import (
	"context"
	"fmt"
)

// GameRef is a catalog entry reference returned by lookup queries.
type GameRef struct {
	ID         int64  `json:"id"`
	CleanTitle string `json:"clean_title"`
}

// GameCandidate is a fuzzy-lookup candidate with its trigram similarity.
type GameCandidate struct {
	ID         int64
	CleanTitle string
	Similarity float64
}

// FindGameExact looks up a catalog entry by case-insensitive clean title.
// Returns nil when no row matches.
func (p *Pool) FindGameExact(ctx context.Context, cleanTitle string) (*GameRef, error) {
	const q = `
SELECT id, clean_title
FROM games
WHERE LOWER(clean_title) = LOWER($1)
LIMIT 1
`

	var ref GameRef
	err := p.QueryRow(ctx, q, cleanTitle).Scan(&ref.ID, &ref.CleanTitle)
	if err != nil {
		if IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query exact game match: %w", err)
	}
	return &ref, nil
}

// SimilarGames fetches catalog entries whose trigram similarity to cleanTitle
// meets the threshold, best first. Requires the pg_trgm extension.
func (p *Pool) SimilarGames(ctx context.Context, cleanTitle string, threshold float64, limit int) ([]GameCandidate, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be > 0")
	}

	const q = `
SELECT id, clean_title, SIMILARITY(LOWER(clean_title), LOWER($1)) AS similarity
FROM games
WHERE SIMILARITY(LOWER(clean_title), LOWER($1)) >= $2
ORDER BY similarity DESC
LIMIT $3
`

	rows, err := p.Query(ctx, q, cleanTitle, threshold, limit)
	if err != nil {
		return nil, fmt.Errorf("query similar games: %w", err)
	}
	defer rows.Close()

	candidates := make([]GameCandidate, 0, limit)
	for rows.Next() {
		var c GameCandidate
		if err := rows.Scan(&c.ID, &c.CleanTitle, &c.Similarity); err != nil {
			return nil, fmt.Errorf("scan similar game row: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate similar game rows: %w", err)
	}

	return candidates, nil
}

// UpsertGame inserts a catalog entry keyed by unique clean_title. On conflict
// the clean_title is rewritten to the same value, which makes the statement an
// idempotent way to fetch the existing id. Safe under concurrent runs: the
// uniqueness guarantee lives in the storage layer, not here.
func (p *Pool) UpsertGame(ctx context.Context, originalTitle, cleanTitle string) (int64, error) {
	const q = `
INSERT INTO games (original_title, clean_title)
VALUES ($1, $2)
ON CONFLICT (clean_title) DO UPDATE SET clean_title = EXCLUDED.clean_title
RETURNING id
`

	var id int64
	if err := p.QueryRow(ctx, q, originalTitle, cleanTitle).Scan(&id); err != nil {
		return 0, fmt.Errorf("upsert game %q: %w", cleanTitle, err)
	}
	return id, nil
}

// SearchGamesByTitle finds catalog entries whose clean title contains the
// query, case-insensitively. This is the read contract the bot-facing
// consumer uses for free-text search.
func (p *Pool) SearchGamesByTitle(ctx context.Context, query string, limit int) ([]GameRef, error) {
	if limit <= 0 {
		limit = 10
	}

	const q = `
SELECT id, clean_title
FROM games
WHERE clean_title ILIKE $1
ORDER BY clean_title
LIMIT $2
`

	rows, err := p.Query(ctx, q, "%"+query+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("search games: %w", err)
	}
	defer rows.Close()

	refs := make([]GameRef, 0, limit)
	for rows.Next() {
		var ref GameRef
		if err := rows.Scan(&ref.ID, &ref.CleanTitle); err != nil {
			return nil, fmt.Errorf("scan game row: %w", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate game rows: %w", err)
	}

	return refs, nil
}
