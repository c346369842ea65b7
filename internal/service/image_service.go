package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"avatarhub/internal/cache"
	"avatarhub/internal/errors"
	"avatarhub/internal/logger"
	"avatarhub/internal/model"
)

// ImagePathPrefix is the URL path under which uploaded previews are served.
const ImagePathPrefix = "/images/"

// ImageService turns selected image files into opaque references that resolve
// only inside this process, the way a browser object URL does.
type ImageService interface {
	Register(ctx context.Context, data []byte, contentType string) (model.ImageRef, error)
	Resolve(ctx context.Context, id string) (*cache.Entry, error)
	Release(ctx context.Context, refs ...model.ImageRef)
}

type imageService struct {
	cache    *cache.Client
	maxBytes int64
}

// NewImageService creates an image service backed by cache.
func NewImageService(cache *cache.Client, maxBytes int64) ImageService {
	return &imageService{cache: cache, maxBytes: maxBytes}
}

// Register stores the bytes and returns a reference to them. The bytes are
// neither decoded nor validated. The reference resolves until Release.
func (s *imageService) Register(ctx context.Context, data []byte, contentType string) (model.ImageRef, error) {
	if int64(len(data)) > s.maxBytes {
		return "", fmt.Errorf("register image of %d bytes: %w", len(data), errors.ErrImageTooLarge)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	id := uuid.NewString()
	s.cache.Set(ctx, id, data, contentType)
	logger.Debug().Str("image_id", id).Int("bytes", len(data)).Msg("image registered")

	return model.ImageRef(ImagePathPrefix + id), nil
}

// Resolve returns the payload for an image id.
func (s *imageService) Resolve(ctx context.Context, id string) (*cache.Entry, error) {
	id = strings.TrimPrefix(id, ImagePathPrefix)
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("resolve image %q: %w", id, errors.ErrImageNotFound)
	}
	entry := s.cache.Get(ctx, id)
	if entry == nil {
		return nil, fmt.Errorf("resolve image %s: %w", id, errors.ErrImageNotFound)
	}
	return entry, nil
}

// Release drops the payloads behind refs. Refs this service did not issue,
// such as the placeholder or seed URLs, are ignored.
func (s *imageService) Release(ctx context.Context, refs ...model.ImageRef) {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		id, ok := strings.CutPrefix(ref.String(), ImagePathPrefix)
		if !ok {
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return
	}
	s.cache.Delete(ctx, ids...)
	logger.Debug().Int("images", len(ids)).Msg("images released")
}
