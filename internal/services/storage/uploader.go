package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/phambaophuc/logo-gilding/pkg/utils"
	storage_go "github.com/supabase-community/storage-go"
	"go.uber.org/zap"
)

// Upload stores data in the Supabase bucket and returns its public URL.
func (s *StorageService) Upload(ctx context.Context, data []byte, filename, contentType string) (string, error) {
	if !s.UploadEnabled() {
		return "", ErrNotConfigured
	}

	key := utils.GenerateStorageKey(filename)

	_, err := s.sbClient.UploadFile(s.bucket, key, bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to supabase: %w", err)
	}

	publicURL := s.sbClient.GetPublicUrl(s.bucket, key)
	s.logger.Info("Uploaded processed logo", zap.String("key", key), zap.Int("bytes", len(data)))
	return publicURL.SignedURL, nil
}
