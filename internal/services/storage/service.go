package storage

import (
	"errors"
	"time"

	"github.com/phambaophuc/logo-gilding/internal/config"
	"github.com/redis/go-redis/v9"
	storage_go "github.com/supabase-community/storage-go"
	"go.uber.org/zap"
)

const CacheKeyPrefix = "logo_cache:"

// ErrNotConfigured is returned by backend operations whose backend was left
// unconfigured.
var ErrNotConfigured = errors.New("storage backend not configured")

// StorageService fronts the optional Redis result cache and the optional
// Supabase bucket. Either client may be nil; every method tolerates that.
type StorageService struct {
	sbClient      *storage_go.Client
	redisClient   *redis.Client
	bucket        string
	cacheDuration time.Duration
	logger        *zap.Logger
}

func NewStorageService(cfg *config.Config, logger *zap.Logger) *StorageService {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &StorageService{
		bucket:        cfg.Supabase.BUCKET,
		cacheDuration: cfg.Storage.CacheDuration,
		logger:        logger,
	}

	if cfg.Supabase.URL != "" {
		s.sbClient = storage_go.NewClient(cfg.Supabase.URL+"/storage/v1", cfg.Supabase.KEY, nil)
	}

	if cfg.Redis.Addr != "" {
		s.redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	logger.Info("Storage initialized",
		zap.Bool("cache", s.CacheEnabled()),
		zap.Bool("upload", s.UploadEnabled()),
	)
	return s
}

func (s *StorageService) CacheEnabled() bool {
	return s != nil && s.redisClient != nil
}

func (s *StorageService) UploadEnabled() bool {
	return s != nil && s.sbClient != nil && s.bucket != ""
}

func (s *StorageService) Close() error {
	if s.CacheEnabled() {
		return s.redisClient.Close()
	}
	return nil
}
