// Package service provides application use cases.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"journey-catalog-service/internal/domain"
)

// Cache keys for the precomputed stats payloads. The background warmer and
// the on-demand read paths share them.
const (
	statsCacheKey     = "stats:journey"
	tagCountsCacheKey = "stats:tag_counts"
)

// CatalogService handles video catalog operations and enforces the write-time
// invariants (embed URL synthesis, excerpt derivation).
type CatalogService struct {
	repo     domain.VideoRepository
	cache    domain.Cache
	listTTL  time.Duration
	statsTTL time.Duration
	logger   *zap.Logger
}

// NewCatalogService creates a new CatalogService. cache may be nil, in which
// case every read goes to the repository.
func NewCatalogService(repo domain.VideoRepository, cache domain.Cache, listTTL, statsTTL time.Duration, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		repo:     repo,
		cache:    cache,
		listTTL:  listTTL,
		statsTTL: statsTTL,
		logger:   logger,
	}
}

// List returns one page of videos. Unfiltered pages are served from cache
// when available; tag-filtered listings always hit the repository so counts
// stay live.
func (s *CatalogService) List(ctx context.Context, params domain.ListParams) (*domain.VideoList, error) {
	params.Validate()

	cacheKey := ""
	if s.cache != nil && !params.Filtered() {
		cacheKey = fmt.Sprintf("videos:page:%d:limit:%d", params.Page, params.Limit)
		if data, err := s.cache.Get(ctx, cacheKey); err == nil && data != nil {
			var list domain.VideoList
			if err := json.Unmarshal(data, &list); err == nil {
				return &list, nil
			}
			// Corrupt entry, fall through to the repository
		}
	}

	list, err := s.repo.List(ctx, params)
	if err != nil {
		s.logger.Error("list videos failed", zap.Error(err))
		return nil, err
	}

	if cacheKey != "" {
		if data, err := json.Marshal(list); err == nil {
			_ = s.cache.Set(ctx, cacheKey, data, s.listTTL)
		}
	}

	return list, nil
}

// Get retrieves a single video. Returns nil, nil when not found.
func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Video, error) {
	video, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("get video failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return video, nil
}

// Create persists a new video after applying the write-time invariants.
func (s *CatalogService) Create(ctx context.Context, video *domain.Video) (*domain.Video, error) {
	applyWriteInvariants(video)

	if err := s.repo.Create(ctx, video); err != nil {
		s.logger.Error("create video failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("video created",
		zap.String("id", video.ID),
		zap.Int("day", video.Day),
	)
	s.invalidate(ctx)

	return video, nil
}

// Update overwrites an existing video after applying the write-time
// invariants. Returns nil, nil when the ID does not exist.
func (s *CatalogService) Update(ctx context.Context, id string, video *domain.Video) (*domain.Video, error) {
	video.ID = id
	applyWriteInvariants(video)

	ok, err := s.repo.Update(ctx, video)
	if err != nil {
		s.logger.Error("update video failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	s.logger.Info("video updated", zap.String("id", id))
	s.invalidate(ctx)

	return video, nil
}

// Delete removes a video. Returns false when the ID does not exist.
func (s *CatalogService) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete video failed", zap.String("id", id), zap.Error(err))
		return false, err
	}

	if ok {
		s.logger.Info("video deleted", zap.String("id", id))
		s.invalidate(ctx)
	}

	return ok, nil
}

// Tags returns the distinct tag list with the "All" sentinel first.
func (s *CatalogService) Tags(ctx context.Context) ([]string, error) {
	tags, err := s.repo.DistinctTags(ctx)
	if err != nil {
		s.logger.Error("list tags failed", zap.Error(err))
		return nil, err
	}

	return append([]string{domain.TagAll}, tags...), nil
}

// TagCounts returns the number of videos per distinct tag. The sentinel is
// never a key. Served from cache when the warmer (or a previous call) has
// populated it.
func (s *CatalogService) TagCounts(ctx context.Context) (map[string]int, error) {
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, tagCountsCacheKey); err == nil && data != nil {
			var counts map[string]int
			if err := json.Unmarshal(data, &counts); err == nil {
				return counts, nil
			}
		}
	}

	counts, err := s.computeTagCounts(ctx)
	if err != nil {
		return nil, err
	}

	s.cacheJSON(ctx, tagCountsCacheKey, counts)

	return counts, nil
}

// computeTagCounts derives the per-tag counts from the repository.
func (s *CatalogService) computeTagCounts(ctx context.Context) (map[string]int, error) {
	tags, err := s.repo.DistinctTags(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(tags))
	for _, tag := range tags {
		n, err := s.repo.CountByTag(ctx, tag)
		if err != nil {
			return nil, err
		}
		counts[tag] = int(n)
	}

	return counts, nil
}

// JourneyStats summarizes overall progress for the dashboard and landing
// page.
type JourneyStats struct {
	TotalVideos     int                `json:"totalVideos"`
	MaxDay          int                `json:"maxDay"`
	Level           domain.LevelInfo   `json:"level"`
	OverallProgress int                `json:"overallProgress"`
	Milestones      []domain.Milestone `json:"milestones"`
}

// Stats returns the journey progress summary, served from cache when the
// warmer (or a previous call) has populated it.
func (s *CatalogService) Stats(ctx context.Context) (*JourneyStats, error) {
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, statsCacheKey); err == nil && data != nil {
			var stats JourneyStats
			if err := json.Unmarshal(data, &stats); err == nil {
				return &stats, nil
			}
		}
	}

	stats, err := s.computeStats(ctx)
	if err != nil {
		return nil, err
	}

	s.cacheJSON(ctx, statsCacheKey, stats)

	return stats, nil
}

// computeStats derives the journey progress summary from the catalog.
func (s *CatalogService) computeStats(ctx context.Context) (*JourneyStats, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	maxDay, err := s.repo.MaxDay(ctx)
	if err != nil {
		return nil, err
	}

	stats := &JourneyStats{
		TotalVideos:     int(total),
		MaxDay:          maxDay,
		OverallProgress: domain.OverallProgress(maxDay, domain.TotalJourneyDays),
		Milestones:      domain.Milestones(maxDay),
	}
	if maxDay > 0 {
		stats.Level = domain.LevelInfoForDay(maxDay)
	}

	return stats, nil
}

// WarmStats recomputes the stats payloads and writes them to the cache,
// bypassing any cached copies. Used by the background warmer.
func (s *CatalogService) WarmStats(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}

	stats, err := s.computeStats(ctx)
	if err != nil {
		return err
	}
	counts, err := s.computeTagCounts(ctx)
	if err != nil {
		return err
	}

	statsPayload, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	countsPayload, err := json.Marshal(counts)
	if err != nil {
		return err
	}

	if err := s.cache.Set(ctx, statsCacheKey, statsPayload, s.statsTTL); err != nil {
		return err
	}

	return s.cache.Set(ctx, tagCountsCacheKey, countsPayload, s.statsTTL)
}

// cacheJSON stores a computed payload, logging instead of failing the read
// path on cache errors.
func (s *CatalogService) cacheJSON(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, s.statsTTL); err != nil {
		s.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// invalidate drops cached listings after any write.
func (s *CatalogService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Clear(ctx); err != nil {
		s.logger.Warn("cache invalidation failed", zap.Error(err))
	}
}

// applyWriteInvariants fills the derived fields every stored video must
// carry: a playable embed URL and a listing excerpt.
func applyWriteInvariants(video *domain.Video) {
	video.EmbedURL = domain.SynthesizeEmbedURL(video.EmbedURL, video.YoutubeID)
	video.Excerpt = domain.MakeExcerpt(video.Reflection)
}
