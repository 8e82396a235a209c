package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/corebank/ledgerengine/internal/domain"
)

// ErrCacheMiss is returned by Cache.Get when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

const configCacheKey = "config:set"

// CachingConfigSource shares one loaded configuration set between instances.
// Cache failures degrade to reading the underlying source.
type CachingConfigSource struct {
	source ConfigSource
	cache  Cache
	ttl    time.Duration
	logger zerolog.Logger
}

// NewCachingConfigSource wraps source with cache.
func NewCachingConfigSource(source ConfigSource, cache Cache, ttl time.Duration, logger zerolog.Logger) *CachingConfigSource {
	if ttl <= 0 {
		ttl = ConfigCacheTTL
	}
	return &CachingConfigSource{source: source, cache: cache, ttl: ttl, logger: logger}
}

// Load returns the cached set, loading and caching it on a miss.
func (s *CachingConfigSource) Load(ctx context.Context) (*domain.ConfigSet, error) {
	raw, err := s.cache.Get(ctx, configCacheKey)
	switch {
	case err == nil:
		var set domain.ConfigSet
		if jerr := json.Unmarshal(raw, &set); jerr == nil {
			return &set, nil
		}
		s.logger.Warn().Msg("discarding undecodable cached configuration")
	case !errors.Is(err, ErrCacheMiss):
		s.logger.Warn().Err(err).Msg("configuration cache unavailable")
	}

	set, err := s.source.Load(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(set); err == nil {
		if err := s.cache.Set(ctx, configCacheKey, raw, s.ttl); err != nil {
			s.logger.Warn().Err(err).Msg("failed to cache configuration")
		}
	}
	return set, nil
}

// Invalidate drops the cached set so the next Load reads the source.
func (s *CachingConfigSource) Invalidate(ctx context.Context) error {
	return s.cache.Delete(ctx, configCacheKey)
}
