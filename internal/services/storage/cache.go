package storage

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/phambaophuc/logo-gilding/internal/models"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func (s *StorageService) GetFromCache(ctx context.Context, cacheKey string) ([]byte, error) {
	if !s.CacheEnabled() {
		return nil, nil
	}

	data, err := s.redisClient.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // Cache miss
		}
		return nil, fmt.Errorf("cache get error: %w", err)
	}
	return data, nil
}

func (s *StorageService) SetCache(ctx context.Context, cacheKey string, data []byte) error {
	if !s.CacheEnabled() {
		return nil
	}
	return s.redisClient.Set(ctx, cacheKey, data, s.cacheDuration).Err()
}

// GetResult returns the cached result for cacheKey, or nil on a miss.
func (s *StorageService) GetResult(ctx context.Context, cacheKey string) (*models.CachedResult, error) {
	data, err := s.GetFromCache(ctx, cacheKey)
	if err != nil || data == nil {
		return nil, err
	}

	var result models.CachedResult
	if err := json.Unmarshal(data, &result); err != nil {
		s.logger.Warn("Dropping undecodable cache entry", zap.String("cache_key", cacheKey), zap.Error(err))
		return nil, nil
	}
	return &result, nil
}

func (s *StorageService) SetResult(ctx context.Context, cacheKey string, result *models.CachedResult) error {
	if !s.CacheEnabled() {
		return nil
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}
	return s.SetCache(ctx, cacheKey, data)
}

// GenerateCacheKey hashes the operation, its parameters and the source bytes,
// so identical uploads with identical settings share an entry.
func GenerateCacheKey(operation string, source []byte, params ...string) string {
	hash := sha256.New()

	hash.Write([]byte(operation))
	for _, p := range params {
		hash.Write([]byte{0})
		hash.Write([]byte(p))
	}
	hash.Write([]byte{0})
	hash.Write(source)

	return fmt.Sprintf("%s%s:%x", CacheKeyPrefix, operation, hash.Sum(nil))
}
