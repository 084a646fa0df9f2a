// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package wonder

import (
	"context"
	"log/slog"

	"github.com/taibuivan/worldwonders/internal/platform/constants"
	"github.com/taibuivan/worldwonders/pkg/slice"
)

// fingerprintPrefixLen is how much of the dataset fingerprint versions a cache key.
const fingerprintPrefixLen = 12

// Service runs catalogue queries on behalf of the transport layers.
type Service struct {
	repo   Repository
	cache  Cache
	logger *slog.Logger
	intN   func(n int) int
}

// NewService creates a Service. cache may be nil, which disables result caching.
func NewService(repo Repository, cache Cache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// WithIndexSource replaces the random index source used by [Service.RandomWonder].
func (service *Service) WithIndexSource(intN func(n int) int) *Service {
	service.intN = intN
	return service
}

// # Collection Queries

// ListWonders returns the wonders matching filter, ordered by order.
// An empty match is a valid, empty answer.
func (service *Service) ListWonders(ctx context.Context, filter FilterSpec, order SortSpec) ([]*Wonder, error) {
	matches, err := service.filterLenient(ctx, filter)
	if err != nil {
		return nil, err
	}
	return Sort(matches, order), nil
}

// CountWonders returns how many wonders match filter.
func (service *Service) CountWonders(ctx context.Context, filter FilterSpec) (int, error) {
	matches, err := service.filterLenient(ctx, filter)
	if err != nil {
		return 0, err
	}
	return len(matches), nil
}

// # Single Wonder Queries

// RandomWonder picks one wonder among those matching filter.
func (service *Service) RandomWonder(_ context.Context, filter FilterSpec) (*Wonder, error) {
	matches, err := Filter(service.repo.All(), filter)
	if err != nil {
		return nil, err
	}
	return Random(matches, service.intN)
}

// OldestWonder returns the earliest built wonder among those matching filter.
func (service *Service) OldestWonder(_ context.Context, filter FilterSpec) (*Wonder, error) {
	matches, err := Filter(service.repo.All(), filter)
	if err != nil {
		return nil, err
	}
	return Oldest(matches)
}

// YoungestWonder returns the most recently built wonder among those matching filter.
func (service *Service) YoungestWonder(_ context.Context, filter FilterSpec) (*Wonder, error) {
	matches, err := Filter(service.repo.All(), filter)
	if err != nil {
		return nil, err
	}
	return Youngest(matches)
}

// GetWonderBySlug resolves a URL slug such as "great-pyramid-of-giza".
func (service *Service) GetWonderBySlug(_ context.Context, requested string) (*Wonder, error) {
	return FindBySlug(service.repo.All(), requested)
}

// # Enumerations

// ListCategories returns every category, optionally without the game categories.
func (service *Service) ListCategories(excludeGames bool) []Category {
	return Categories(excludeGames)
}

// ListTimePeriods returns every time period in chronological order.
func (service *Service) ListTimePeriods() []TimePeriod {
	return TimePeriods()
}

// ListSortOptions returns every supported sort key.
func (service *Service) ListSortOptions() []SortBy {
	return SortOptions()
}

// # Result Cache

// filterLenient runs [FilterLenient], consulting the result cache when configured.
func (service *Service) filterLenient(ctx context.Context, filter FilterSpec) ([]*Wonder, error) {
	if service.cache == nil {
		return FilterLenient(service.repo.All(), filter)
	}

	key := service.cacheKey(filter)

	names, found, err := service.cache.GetNames(ctx, key)
	if err != nil {
		service.logger.WarnContext(ctx, "wonder_cache_read_failed", slog.String("key", key), slog.Any("error", err))
	}
	if found {
		if cached, ok := service.resolve(names); ok {
			return cached, nil
		}
		service.logger.WarnContext(ctx, "wonder_cache_entry_stale", slog.String("key", key))
	}

	matches, err := FilterLenient(service.repo.All(), filter)
	if err != nil {
		return nil, err
	}

	names = slice.Map(matches, func(w *Wonder) string { return w.Name })
	if err := service.cache.SetNames(ctx, key, names); err != nil {
		service.logger.WarnContext(ctx, "wonder_cache_write_failed", slog.String("key", key), slog.Any("error", err))
	}

	return matches, nil
}

// resolve maps cached names back to catalogue records. It fails if any name is unknown.
func (service *Service) resolve(names []string) ([]*Wonder, bool) {
	wonders := make([]*Wonder, 0, len(names))
	for _, name := range names {
		w, ok := service.repo.ByName(name)
		if !ok {
			return nil, false
		}
		wonders = append(wonders, w)
	}
	return wonders, true
}

// cacheKey versions the canonical filter by the dataset fingerprint.
func (service *Service) cacheKey(filter FilterSpec) string {
	fingerprint := service.repo.Fingerprint()
	if len(fingerprint) > fingerprintPrefixLen {
		fingerprint = fingerprint[:fingerprintPrefixLen]
	}
	return constants.RedisPrefixWonders + fingerprint + ":filter:" + filter.Key()
}
