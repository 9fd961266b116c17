package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/gamedex/gamedex/internal/catalog"
	"github.com/gamedex/gamedex/internal/db"
	"github.com/gamedex/gamedex/internal/extract"
	"github.com/gamedex/gamedex/internal/globaltime"
)

// Titles shorter than this after normalization are almost always rule
// debris rather than a real game name.
const minCleanTitleRunes = 3

type storage interface {
	UpsertChannel(ctx context.Context, id int64, name string) error
	UpsertPost(ctx context.Context, post db.PostUpsert, now time.Time) error
	ReplacePostLinks(ctx context.Context, postID int64, gameIDs []int64) error
	UpsertGame(ctx context.Context, originalTitle, cleanTitle string) (int64, error)
}

type matcher interface {
	FindCanonical(ctx context.Context, cleanTitle string) (*catalog.Match, error)
}

// Source is one input file of concatenated post blocks.
type Source struct {
	Path      string
	ChannelID *int64
	Name      string
}

// Summary reports what one ingestion run did.
type Summary struct {
	SourcesRead   int `json:"sources_read"`
	PostsStored   int `json:"posts_stored"`
	BlocksSkipped int `json:"blocks_skipped"`
	LinksCreated  int `json:"links_created"`
	UniqueTitles  int `json:"unique_titles"`
}

// Service drives the full ingestion pipeline: split sources into
// blocks, structure each block, normalize its title lines, resolve
// each title against the catalog and rebuild the post's game links.
type Service struct {
	store      storage
	normalizer *catalog.Normalizer
	matcher    matcher
	logger     zerolog.Logger
}

func NewService(store storage, normalizer *catalog.Normalizer, matcher matcher, logger zerolog.Logger) *Service {
	return &Service{
		store:      store,
		normalizer: normalizer,
		matcher:    matcher,
		logger:     logger.With().Str("component", "ingest").Logger(),
	}
}

// Run ingests every source in order. A source that cannot be read is
// logged and skipped; a block that fails mid-write is logged and the
// run moves on to the next block. Run never aborts the whole batch.
func (s *Service) Run(ctx context.Context, sources []Source) Summary {
	var summary Summary
	seen := make(map[string]struct{})

	for _, src := range sources {
		data, err := os.ReadFile(src.Path)
		if err != nil {
			s.logger.Error().Err(err).Str("path", src.Path).Msg("skipping unreadable source")
			continue
		}
		summary.SourcesRead++

		for _, block := range extract.SplitBlocks(string(data)) {
			if postID, err := s.processBlock(ctx, block, src, seen, &summary); err != nil {
				s.logger.Error().Err(err).Int64("post_id", postID).Str("path", src.Path).Msg("post failed, continuing")
			}
		}
	}

	summary.UniqueTitles = len(seen)
	s.logger.Info().
		Int("sources", summary.SourcesRead).
		Int("posts", summary.PostsStored).
		Int("skipped", summary.BlocksSkipped).
		Int("links", summary.LinksCreated).
		Int("unique_titles", summary.UniqueTitles).
		Msg("ingestion finished")
	return summary
}

// processBlock returns the post id of the block alongside any error so
// the caller can log failures against the post, not just the source.
func (s *Service) processBlock(ctx context.Context, block string, src Source, seen map[string]struct{}, summary *Summary) (int64, error) {
	rec, err := extract.ParseBlock(block)
	if err != nil {
		if errors.Is(err, extract.ErrNotPost) || errors.Is(err, extract.ErrAdvertisement) {
			s.logger.Info().Err(err).Str("path", src.Path).Msg("skipping block")
			summary.BlocksSkipped++
			return 0, nil
		}
		return 0, err
	}

	if src.ChannelID != nil {
		if err := s.store.UpsertChannel(ctx, *src.ChannelID, src.Name); err != nil {
			return rec.ID, err
		}
	}

	sourceFile := filepath.Base(src.Path)
	post := db.PostUpsert{
		ID:         rec.ID,
		Content:    rec.Content,
		ChannelID:  src.ChannelID,
		Region:     rec.Region,
		PricePS4:   rec.PS4.Price,
		PricePS5:   rec.PS5.Price,
		IsPS4Sold:  rec.PS4.Sold,
		IsPS5Sold:  rec.PS5.Sold,
		SourceFile: &sourceFile,
	}
	if err := s.store.UpsertPost(ctx, post, globaltime.Now()); err != nil {
		return rec.ID, err
	}
	summary.PostsStored++

	var gameIDs []int64
	for _, line := range rec.TitleLines() {
		clean, ok := s.normalizer.Clean(line)
		if !ok {
			continue
		}
		if utf8.RuneCountInString(clean) < minCleanTitleRunes {
			s.logger.Debug().Str("line", line).Str("clean", clean).Msg("dropping too-short title")
			continue
		}

		gameID, err := s.resolveGame(ctx, line, clean)
		if err != nil {
			return rec.ID, err
		}
		seen[clean] = struct{}{}
		gameIDs = append(gameIDs, gameID)
	}

	// Links are rebuilt from scratch so re-ingesting an edited post
	// drops titles that no longer appear in it.
	if err := s.store.ReplacePostLinks(ctx, rec.ID, gameIDs); err != nil {
		return rec.ID, err
	}
	summary.LinksCreated += len(gameIDs)
	return rec.ID, nil
}

// Matcher errors degrade to "no match" so a flaky similarity query
// creates a possibly duplicate game instead of stalling the batch.
func (s *Service) resolveGame(ctx context.Context, originalTitle, cleanTitle string) (int64, error) {
	match, err := s.matcher.FindCanonical(ctx, cleanTitle)
	if err != nil {
		s.logger.Warn().Err(err).Str("clean_title", cleanTitle).Msg("matcher failed, treating as no match")
		match = nil
	}
	if match != nil {
		return match.ID, nil
	}
	return s.store.UpsertGame(ctx, originalTitle, cleanTitle)
}
