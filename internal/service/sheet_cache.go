package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"taskgen/internal/cache"
	"taskgen/internal/domain"
	"taskgen/internal/render"
)

// SheetCacheService caches rendered student texts. The rendered output is
// a pure function of (problem configuration, student identity), so the
// problem's UpdatedAt timestamp is part of the key: editing a problem
// versions away every stale entry without explicit invalidation.
type SheetCacheService interface {
	GetSheet(ctx context.Context, problem *domain.Problem, studentID string) ([]render.Text, error)
	PutSheet(ctx context.Context, problem *domain.Problem, studentID string, texts []render.Text) error
}

type sheetCacheService struct {
	cache domain.Cache
	ttl   time.Duration
}

func NewSheetCacheService(cacheAdapter domain.Cache, ttl time.Duration) SheetCacheService {
	return &sheetCacheService{cache: cacheAdapter, ttl: ttl}
}

func sheetCacheKey(problem *domain.Problem, studentID string) string {
	version := strconv.FormatInt(problem.UpdatedAt.Unix(), 10)
	return cache.GenerateCacheKey("problem", "student_text", problem.ID, studentID, version)
}

// GetSheet returns the cached texts, or (nil, nil) on a miss.
func (s *sheetCacheService) GetSheet(ctx context.Context, problem *domain.Problem, studentID string) ([]render.Text, error) {
	raw, err := s.cache.Get(ctx, sheetCacheKey(problem, studentID))
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, nil
		}
		return nil, err
	}

	var texts []render.Text
	if err := json.Unmarshal([]byte(raw), &texts); err != nil {
		return nil, err
	}
	return texts, nil
}

func (s *sheetCacheService) PutSheet(ctx context.Context, problem *domain.Problem, studentID string, texts []render.Text) error {
	raw, err := json.Marshal(texts)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, sheetCacheKey(problem, studentID), string(raw), s.ttl)
}
