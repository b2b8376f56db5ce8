package service

import (
	"context"
	"io"

	"github.com/launchhub/business-portal/internal/core/ports"
)

// UploadService passes user uploads through to the blob store and returns
// the resulting URL. The store itself is an opaque collaborator.
type UploadService struct {
	store ports.BlobStore
}

func NewUploadService(store ports.BlobStore) *UploadService {
	return &UploadService{store: store}
}

func (s *UploadService) Store(ctx context.Context, filename string, r io.Reader) (string, error) {
	return s.store.Put(ctx, filename, r)
}
