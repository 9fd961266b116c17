package db

import (
	"context"
	"fmt"
	"time"
)

// PostUpsert carries every column written on post ingestion. Content and
// derived fields are fully overwritten on conflict (last-write-wins).
type PostUpsert struct {
	ID              int64
	Number          *int
	Content         string
	ChannelID       *int64
	Region          *string
	PricePS4        *int
	PricePS5        *int
	IsPS4Sold       bool
	IsPS5Sold       bool
	SourceFile      *string
	LastSent        *float64
	MessageID       *string
	FileID          *string
	ParentID        *string
	OriginalMessage *string
}

// PostListItem is returned by the consumer-facing post queries.
type PostListItem struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	Region    *string   `json:"region,omitempty"`
	PricePS4  *int      `json:"price_ps4,omitempty"`
	PricePS5  *int      `json:"price_ps5,omitempty"`
	IsPS4Sold bool      `json:"is_ps4_sold"`
	IsPS5Sold bool      `json:"is_ps5_sold"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StatsSummary is the aggregate view used by the stats command and endpoint.
type StatsSummary struct {
	Games          int64      `json:"games"`
	Posts          int64      `json:"posts"`
	Links          int64      `json:"links"`
	LastIngestedAt *time.Time `json:"last_ingested_at,omitempty"`
}

// UpsertChannel makes sure a channel row exists for posts that reference it.
func (p *Pool) UpsertChannel(ctx context.Context, id int64, name string) error {
	const q = `
INSERT INTO channels (id, name)
VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name
`
	if _, err := p.Exec(ctx, q, id, name); err != nil {
		return fmt.Errorf("upsert channel %d: %w", id, err)
	}
	return nil
}

// UpsertPost inserts or fully refreshes a post row keyed by its source id.
func (p *Pool) UpsertPost(ctx context.Context, post PostUpsert, now time.Time) error {
	const q = `
INSERT INTO posts (
	id,
	number,
	content,
	channel_id,
	region,
	price_ps4,
	price_ps5,
	is_ps4_sold,
	is_ps5_sold,
	source_file,
	last_sent,
	message_id,
	file_id,
	parent_id,
	original_message,
	created_at,
	updated_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $16)
ON CONFLICT (id) DO UPDATE SET
	number = EXCLUDED.number,
	content = EXCLUDED.content,
	channel_id = EXCLUDED.channel_id,
	region = EXCLUDED.region,
	price_ps4 = EXCLUDED.price_ps4,
	price_ps5 = EXCLUDED.price_ps5,
	is_ps4_sold = EXCLUDED.is_ps4_sold,
	is_ps5_sold = EXCLUDED.is_ps5_sold,
	source_file = EXCLUDED.source_file,
	last_sent = EXCLUDED.last_sent,
	message_id = EXCLUDED.message_id,
	file_id = EXCLUDED.file_id,
	parent_id = EXCLUDED.parent_id,
	original_message = EXCLUDED.original_message,
	updated_at = EXCLUDED.updated_at
`

	_, err := p.Exec(
		ctx,
		q,
		post.ID,
		post.Number,
		post.Content,
		post.ChannelID,
		post.Region,
		post.PricePS4,
		post.PricePS5,
		post.IsPS4Sold,
		post.IsPS5Sold,
		post.SourceFile,
		post.LastSent,
		post.MessageID,
		post.FileID,
		post.ParentID,
		post.OriginalMessage,
		now,
	)
	if err != nil {
		return fmt.Errorf("upsert post %d: %w", post.ID, err)
	}
	return nil
}

// ReplacePostLinks rebuilds the game links of a post in one transaction:
// existing links are deleted and the new set inserted, so the post is
// never visible with a partial link set. Links are rebuilt on every
// re-ingestion so they always track the latest extraction. The game/post
// pair is unique; duplicate ids in gameIDs collapse to one link.
func (p *Pool) ReplacePostLinks(ctx context.Context, postID int64, gameIDs []int64) error {
	const deleteQ = `DELETE FROM games_posts WHERE post_id = $1`
	const insertQ = `
INSERT INTO games_posts (game_id, post_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING
`

	tx, err := p.BeginTx(ctx, TxOptions{})
	if err != nil {
		return fmt.Errorf("begin link rebuild for post %d: %w", postID, err)
	}

	if _, err := tx.Exec(ctx, deleteQ, postID); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("delete links for post %d: %w", postID, err)
	}
	for _, gameID := range gameIDs {
		if _, err := tx.Exec(ctx, insertQ, gameID, postID); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("link game %d to post %d: %w", gameID, postID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit link rebuild for post %d: %w", postID, err)
	}
	return nil
}

// PostsForGame lists posts linked to a game where the given platform has a
// price and is not sold. platform must be "ps4" or "ps5".
func (p *Pool) PostsForGame(ctx context.Context, gameID int64, platform string, limit int) ([]PostListItem, error) {
	if limit <= 0 {
		limit = 25
	}

	var q string
	switch platform {
	case "ps4":
		q = `
SELECT p.id, p.content, p.region, p.price_ps4, p.price_ps5, p.is_ps4_sold, p.is_ps5_sold, p.updated_at
FROM posts p
JOIN games_posts gp ON gp.post_id = p.id
WHERE gp.game_id = $1
  AND p.price_ps4 IS NOT NULL
  AND p.is_ps4_sold = FALSE
ORDER BY p.updated_at DESC, p.id DESC
LIMIT $2
`
	case "ps5":
		q = `
SELECT p.id, p.content, p.region, p.price_ps4, p.price_ps5, p.is_ps4_sold, p.is_ps5_sold, p.updated_at
FROM posts p
JOIN games_posts gp ON gp.post_id = p.id
WHERE gp.game_id = $1
  AND p.price_ps5 IS NOT NULL
  AND p.is_ps5_sold = FALSE
ORDER BY p.updated_at DESC, p.id DESC
LIMIT $2
`
	default:
		return nil, fmt.Errorf("platform must be ps4 or ps5, got %q", platform)
	}

	rows, err := p.Query(ctx, q, gameID, limit)
	if err != nil {
		return nil, fmt.Errorf("query posts for game %d: %w", gameID, err)
	}
	defer rows.Close()

	items := make([]PostListItem, 0, limit)
	for rows.Next() {
		var item PostListItem
		if err := rows.Scan(
			&item.ID,
			&item.Content,
			&item.Region,
			&item.PricePS4,
			&item.PricePS5,
			&item.IsPS4Sold,
			&item.IsPS5Sold,
			&item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan post row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate post rows: %w", err)
	}

	return items, nil
}

// Stats aggregates catalog counts for the stats command and endpoint.
func (p *Pool) Stats(ctx context.Context) (StatsSummary, error) {
	const q = `
SELECT
	(SELECT COUNT(*) FROM games) AS games,
	(SELECT COUNT(*) FROM posts) AS posts,
	(SELECT COUNT(*) FROM games_posts) AS links,
	(SELECT MAX(updated_at) FROM posts) AS last_ingested_at
`

	var summary StatsSummary
	err := p.QueryRow(ctx, q).Scan(
		&summary.Games,
		&summary.Posts,
		&summary.Links,
		&summary.LastIngestedAt,
	)
	if err != nil {
		return StatsSummary{}, fmt.Errorf("query stats: %w", err)
	}
	return summary, nil
}
