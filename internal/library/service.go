package library

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/calisthenix/internal/cache"
	"github.com/2beens/calisthenix/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=library_test

const slugCacheExpire = time.Hour

type entriesRepo interface {
	List(ctx context.Context, params ListParams) ([]Entry, error)
	GetBySlug(ctx context.Context, slug string) (*Entry, error)
	FindByName(ctx context.Context, name string) (*Entry, error)
	GetByIDs(ctx context.Context, ids []string) ([]Entry, error)
}

// Service serves the read-mostly catalog. Single entries are looked up
// through a read-through cache keyed by slug.
type Service struct {
	repo  entriesRepo
	cache cache.Cache
}

func NewService(repo entriesRepo, c cache.Cache) *Service {
	return &Service{
		repo:  repo,
		cache: c,
	}
}

func slugCacheKey(slug string) string {
	return "slug::" + slug
}

func (s *Service) List(ctx context.Context, params ListParams) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.library.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if params.Limit <= 0 {
		params.Limit = DefaultListLimit
	}
	if params.Limit > MaxListLimit {
		params.Limit = MaxListLimit
	}
	if params.Offset < 0 {
		params.Offset = 0
	}
	if params.Category == filterAll {
		params.Category = ""
	}
	if params.Difficulty == filterAll {
		params.Difficulty = ""
	}

	return s.repo.List(ctx, params)
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.library.get-by-slug")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var cached Entry
	if s.cache != nil && s.cache.Get(slugCacheKey(slug), &cached) {
		log.Tracef("library entry [%s] found in cache", slug)
		return &cached, nil
	}

	e, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(slugCacheKey(slug), e, slugCacheExpire)
	}
	return e, nil
}

// Resolve finds a catalog entry by slug, falling back to a name match.
func (s *Service) Resolve(ctx context.Context, slugOrName string) (*Entry, error) {
	if slug := Slugify(slugOrName); slug != "" {
		e, err := s.GetBySlug(ctx, slug)
		if err == nil {
			return e, nil
		}
		if !errors.Is(err, ErrExerciseNotFound) {
			return nil, err
		}
	}
	return s.repo.FindByName(ctx, slugOrName)
}

// GetByIDs returns the entries keyed by id; unknown ids are absent from the map.
func (s *Service) GetByIDs(ctx context.Context, ids []string) (_ map[string]Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.library.get-by-ids")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	entries, err := s.repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get entries: %w", err)
	}
	byID := make(map[string]Entry, len(entries))
	for _, e := range entries {
		byID[e.ID] = e
	}
	return byID, nil
}

// Exists reports whether every id is a known catalog entry.
func (s *Service) Exists(ctx context.Context, ids []string) (bool, error) {
	unique := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}
	byID, err := s.GetByIDs(ctx, ids)
	if err != nil {
		return false, err
	}
	return len(byID) == len(unique), nil
}
