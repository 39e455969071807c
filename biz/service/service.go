package service

import (
	"fmt"
	"io"

	"github.com/mosaic-cms/media-vault/pkg/feedcache"
	"github.com/mosaic-cms/media-vault/pkg/storage"
	"github.com/mosaic-cms/media-vault/pkg/validator"

	"gorm.io/gorm"
)

// Mode selects the rendering context for URL generation and serving.
// There is no default: every caller must state the context explicitly.
type Mode string

const (
	// ModeCMS targets the authenticated authoring interface. No size
	// whitelist, no cache key.
	ModeCMS Mode = "cms"
	// ModePreview behaves like ModeCMS but is used by draft previews.
	ModePreview Mode = "preview"
	// ModePublished targets public delivery. Generating a URL with a
	// size whitelists that size, and the URL embeds a cache key.
	ModePublished Mode = "published"
)

func (m Mode) valid() bool {
	switch m {
	case ModeCMS, ModePreview, ModePublished:
		return true
	}
	return false
}

// UploadSource abstracts where upload bytes come from: a streaming
// handle drained exactly once, or an in-memory buffer.
type UploadSource interface {
	bytes() ([]byte, error)
}

// ByteUpload is an in-memory upload payload.
type ByteUpload []byte

func (b ByteUpload) bytes() ([]byte, error) { return b, nil }

// StreamUpload wraps a streaming upload handle, typically a multipart
// part or temp file. The reader is consumed on first use.
type StreamUpload struct {
	Reader io.Reader
}

func (s StreamUpload) bytes() ([]byte, error) {
	if s.Reader == nil {
		return nil, fmt.Errorf("upload stream is nil")
	}
	data, err := io.ReadAll(s.Reader)
	if err != nil {
		return nil, fmt.Errorf("drain upload stream: %w", err)
	}
	return data, nil
}

// Service orchestrates media asset and RSS section operations.
type Service struct {
	logic   *Logic
	storage storage.Storage
	feeds   *feedcache.Cache
	upload  *validator.UploadConfig
}

func NewService(db *gorm.DB, store storage.Storage, feeds *feedcache.Cache, upload *validator.UploadConfig) *Service {
	if upload == nil {
		upload = validator.NewUploadConfig(0, nil)
	}
	return &Service{
		logic:   NewLogic(db),
		storage: store,
		feeds:   feeds,
		upload:  upload,
	}
}
