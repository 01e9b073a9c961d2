package storage

import (
	"context"
	"fmt"
)

// Download fetches an object from the bucket, used when a request names its
// source by storage path instead of uploading it.
func (s *StorageService) Download(ctx context.Context, path string) ([]byte, error) {
	if !s.UploadEnabled() {
		return nil, ErrNotConfigured
	}

	data, err := s.sbClient.DownloadFile(s.bucket, path)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s from supabase: %w", path, err)
	}
	return data, nil
}
