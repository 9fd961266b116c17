package db

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockPool(t *testing.T) (*Pool, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}

	return &Pool{gdb: gdb, sqlDB: conn}, mock
}

func expectMet(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFindGameExactReturnsMatch(t *testing.T) {
	t.Parallel()

	pool, mock := newMockPool(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(clean_title) = LOWER($1)")).
		WithArgs("God of War").
		WillReturnRows(sqlmock.NewRows([]string{"id", "clean_title"}).AddRow(int64(7), "God of War"))

	ref, err := pool.FindGameExact(context.Background(), "God of War")
	if err != nil {
		t.Fatalf("FindGameExact: %v", err)
	}
	if ref == nil || ref.ID != 7 || ref.CleanTitle != "God of War" {
		t.Fatalf("unexpected ref %+v", ref)
	}
	expectMet(t, mock)
}

func TestFindGameExactNoRowsIsNil(t *testing.T) {
	t.Parallel()

	pool, mock := newMockPool(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(clean_title) = LOWER($1)")).
		WithArgs("Unknown Game").
		WillReturnRows(sqlmock.NewRows([]string{"id", "clean_title"}))

	ref, err := pool.FindGameExact(context.Background(), "Unknown Game")
	if err != nil {
		t.Fatalf("FindGameExact: %v", err)
	}
	if ref != nil {
		t.Fatalf("expected nil ref for missing title, got %+v", ref)
	}
	expectMet(t, mock)
}

func TestSimilarGamesOrdersByScore(t *testing.T) {
	t.Parallel()

	pool, mock := newMockPool(t)
	mock.ExpectQuery(regexp.QuoteMeta("SIMILARITY(LOWER(clean_title), LOWER($1))")).
		WithArgs("Horizon Zero Dawn", 0.99, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "clean_title", "similarity"}).
			AddRow(int64(1), "Horizon Zero Dawn", 1.0).
			AddRow(int64(2), "Horizon Zero Dawn.", 0.99))

	candidates, err := pool.SimilarGames(context.Background(), "Horizon Zero Dawn", 0.99, 10)
	if err != nil {
		t.Fatalf("SimilarGames: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}
	if candidates[0].CleanTitle != "Horizon Zero Dawn" || candidates[0].Similarity != 1.0 {
		t.Fatalf("unexpected first candidate %+v", candidates[0])
	}
	expectMet(t, mock)
}

func TestSimilarGamesRejectsBadLimit(t *testing.T) {
	t.Parallel()

	pool, _ := newMockPool(t)
	if _, err := pool.SimilarGames(context.Background(), "x", 0.99, 0); err == nil {
		t.Fatal("expected error for limit 0")
	}
}

func TestUpsertGameReturnsID(t *testing.T) {
	t.Parallel()

	pool, mock := newMockPool(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO games (original_title, clean_title)")).
		WithArgs("FIFA 21 Champions Edition", "FIFA 21").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	id, err := pool.UpsertGame(context.Background(), "FIFA 21 Champions Edition", "FIFA 21")
	if err != nil {
		t.Fatalf("UpsertGame: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected id 42, got %d", id)
	}
	expectMet(t, mock)
}

func TestSearchGamesByTitleWrapsQueryInWildcards(t *testing.T) {
	t.Parallel()

	pool, mock := newMockPool(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE clean_title ILIKE $1")).
		WithArgs("%last of us%", 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "clean_title"}).
			AddRow(int64(3), "The Last of Us Part II"))

	refs, err := pool.SearchGamesByTitle(context.Background(), "last of us", 10)
	if err != nil {
		t.Fatalf("SearchGamesByTitle: %v", err)
	}
	if len(refs) != 1 || refs[0].CleanTitle != "The Last of Us Part II" {
		t.Fatalf("unexpected refs %+v", refs)
	}
	expectMet(t, mock)
}

func TestUpsertChannel(t *testing.T) {
	t.Parallel()

	pool, mock := newMockPool(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO channels (id, name)")).
		WithArgs(int64(1001), "ps4-market").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := pool.UpsertChannel(context.Background(), 1001, "ps4-market"); err != nil {
		t.Fatalf("UpsertChannel: %v", err)
	}
	expectMet(t, mock)
}

func TestUpsertPostWritesAllColumns(t *testing.T) {
	t.Parallel()

	pool, mock := newMockPool(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO posts (")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	price := 100
	region := "1"
	src := "posts.txt"
	err := pool.UpsertPost(context.Background(), PostUpsert{
		ID:         42,
		Content:    "FIFA 21",
		Region:     &region,
		PricePS4:   &price,
		IsPS5Sold:  true,
		SourceFile: &src,
	}, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("UpsertPost: %v", err)
	}
	expectMet(t, mock)
}

func TestReplacePostLinksDeletesAndInsertsInOneTransaction(t *testing.T) {
	t.Parallel()

	pool, mock := newMockPool(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM games_posts WHERE post_id = $1")).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO games_posts (game_id, post_id)")).
		WithArgs(int64(7), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO games_posts (game_id, post_id)")).
		WithArgs(int64(8), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := pool.ReplacePostLinks(context.Background(), 42, []int64{7, 8}); err != nil {
		t.Fatalf("ReplacePostLinks: %v", err)
	}
	expectMet(t, mock)
}

func TestReplacePostLinksRollsBackOnInsertFailure(t *testing.T) {
	t.Parallel()

	pool, mock := newMockPool(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM games_posts WHERE post_id = $1")).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO games_posts (game_id, post_id)")).
		WithArgs(int64(7), int64(42)).
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	if err := pool.ReplacePostLinks(context.Background(), 42, []int64{7}); err == nil {
		t.Fatal("expected error from failed insert")
	}
	expectMet(t, mock)
}

func TestReplacePostLinksEmptySetClearsLinks(t *testing.T) {
	t.Parallel()

	pool, mock := newMockPool(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM games_posts WHERE post_id = $1")).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	if err := pool.ReplacePostLinks(context.Background(), 42, nil); err != nil {
		t.Fatalf("ReplacePostLinks: %v", err)
	}
	expectMet(t, mock)
}

func TestPostsForGameFiltersSoldPS4(t *testing.T) {
	t.Parallel()

	pool, mock := newMockPool(t)
	mock.ExpectQuery(regexp.QuoteMeta("AND p.is_ps4_sold = FALSE")).
		WithArgs(int64(7), 25).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "content", "region", "price_ps4", "price_ps5", "is_ps4_sold", "is_ps5_sold", "updated_at",
		}).AddRow(int64(42), "FIFA 21", "1", 100, nil, false, false, time.Now()))

	items, err := pool.PostsForGame(context.Background(), 7, "ps4", 25)
	if err != nil {
		t.Fatalf("PostsForGame: %v", err)
	}
	if len(items) != 1 || items[0].ID != 42 {
		t.Fatalf("unexpected items %+v", items)
	}
	if items[0].PricePS4 == nil || *items[0].PricePS4 != 100 {
		t.Fatalf("unexpected ps4 price %+v", items[0].PricePS4)
	}
	expectMet(t, mock)
}

func TestPostsForGameRejectsUnknownPlatform(t *testing.T) {
	t.Parallel()

	pool, _ := newMockPool(t)
	if _, err := pool.PostsForGame(context.Background(), 7, "psp", 25); err == nil {
		t.Fatal("expected error for unknown platform")
	}
}

func TestStats(t *testing.T) {
	t.Parallel()

	last := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	pool, mock := newMockPool(t)
	mock.ExpectQuery(regexp.QuoteMeta("(SELECT COUNT(*) FROM games) AS games")).
		WillReturnRows(sqlmock.NewRows([]string{"games", "posts", "links", "last_ingested_at"}).
			AddRow(int64(10), int64(20), int64(30), last))

	summary, err := pool.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if summary.Games != 10 || summary.Posts != 20 || summary.Links != 30 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if summary.LastIngestedAt == nil || !summary.LastIngestedAt.Equal(last) {
		t.Fatalf("unexpected last ingested %v", summary.LastIngestedAt)
	}
	expectMet(t, mock)
}
