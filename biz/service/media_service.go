package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/mosaic-cms/media-vault/biz/dal/model"
	"github.com/mosaic-cms/media-vault/pkg/cachekey"
	"github.com/mosaic-cms/media-vault/pkg/imagemeta"
	"github.com/mosaic-cms/media-vault/pkg/mediatype"
	"github.com/mosaic-cms/media-vault/pkg/sizing"
	"github.com/mosaic-cms/media-vault/pkg/storage"
	"github.com/mosaic-cms/media-vault/pkg/validator"
)

// --------------------- Media operations ---------------------

// Ingest validates an upload, derives its metadata and persists both
// the record and the original bytes. The record is committed first; if
// the storage write fails afterwards the record is rolled back, so a
// record without bytes never outlives the failed operation.
func (s *Service) Ingest(ctx context.Context, folderID uint, filename string, src UploadSource) (*model.MediaFile, error) {
	if src == nil {
		return nil, ErrEmptyUpload
	}
	data, err := src.bytes()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmptyUpload
	}

	name := mediatype.SanitizeFilename(filename)
	contentType := mediatype.ResolveContentType(name)
	fileType := mediatype.Classify(contentType)

	if err := s.upload.Validate(int64(len(data)), contentType); err != nil {
		if errors.Is(err, validator.ErrEmptyFile) {
			return nil, ErrEmptyUpload
		}
		return nil, err
	}

	file := &model.MediaFile{
		FolderID:    folderID,
		Name:        name,
		ContentType: contentType,
		FileType:    fileType,
		FileSize:    int64(len(data)),
	}

	if fileType == model.FileTypeImage {
		// A corrupt image is still storable as an opaque file; it just
		// has no dimensions and never resizes.
		if w, h, err := imagemeta.Probe(data); err == nil {
			file.Width = &w
			file.Height = &h
		} else {
			hlog.CtxWarnf(ctx, "dimension probe failed for %s: %v", name, err)
		}
	}

	if err := s.logic.CreateMediaFile(ctx, file); err != nil {
		return nil, err
	}

	key := storage.KeyFor(file.FileID)
	if err := s.storage.PutObject(ctx, key, bytes.NewReader(data), contentType, file.FileSize); err != nil {
		if rbErr := s.logic.RollbackMediaFile(ctx, file); rbErr != nil {
			hlog.CtxErrorf(ctx, "rollback media record %s: %v", file.FileID, rbErr)
		}
		return nil, fmt.Errorf("store media data: %w", err)
	}

	return file, nil
}

func (s *Service) Get(ctx context.Context, fileID string) (*model.MediaFile, error) {
	if fileID == "" {
		return nil, ErrMediaNotFound
	}
	return s.logic.GetMediaFile(ctx, fileID)
}

func (s *Service) List(ctx context.Context, folderID uint) ([]model.MediaFile, error) {
	return s.logic.ListMediaByFolder(ctx, folderID)
}

// Destroy removes the asset's bytes and its record. The storage delete
// runs first: an orphaned file is recoverable by garbage collection,
// while a dangling reference is a correctness bug, so references are
// cleared together with the record in one transaction.
func (s *Service) Destroy(ctx context.Context, fileID string) error {
	file, err := s.logic.GetMediaFile(ctx, fileID)
	if err != nil {
		return err
	}

	if err := s.storage.DeleteObject(ctx, storage.KeyFor(file.FileID)); err != nil {
		return fmt.Errorf("remove media data: %w", err)
	}

	return s.logic.RemoveMediaFile(ctx, file)
}

// URL builds the address for an asset rendition. The mode is required:
// CMS and preview URLs target the authoring data route without a cache
// key, published URLs target the public route, carry a cache key
// derived from the record's update time, and registering the size in
// the whitelist is part of generating the URL.
func (s *Service) URL(ctx context.Context, fileID, rawSize string, mode Mode) (string, error) {
	if !mode.valid() {
		return "", ErrModeRequired
	}

	file, err := s.logic.GetMediaFile(ctx, fileID)
	if err != nil {
		return "", err
	}

	normalized := s.normalizeSize(file, rawSize)
	if rawSize != "" && normalized.Kind == sizing.SizeInvalid {
		return "", ErrUnprocessableSize
	}

	sizeSegment := ""
	if normalized.Kind == sizing.SizeResized {
		sizeSegment = normalized.Segment()
	}

	if mode == ModeCMS || mode == ModePreview {
		u := fmt.Sprintf("/cms/data/%d/%s?name=%s", file.FolderID, file.FileID, url.QueryEscape(file.Name))
		if sizeSegment != "" {
			u += "&size=" + sizeSegment
		}
		return u, nil
	}

	if sizeSegment != "" {
		if err := s.logic.AllowSize(ctx, file.ID, normalized.Width, normalized.Height); err != nil {
			return "", fmt.Errorf("register allowed size: %w", err)
		}
	}

	u := fmt.Sprintf("/media/%s?name=%s", file.FileID, url.QueryEscape(file.Name))
	if sizeSegment != "" {
		u += "&size=" + sizeSegment
	}
	u += "&cache_key=" + cachekey.Key(file.UpdatedAt)
	return u, nil
}

// CacheKey returns the change-sensitive cache key for an asset.
func (s *Service) CacheKey(ctx context.Context, fileID string) (string, error) {
	file, err := s.logic.GetMediaFile(ctx, fileID)
	if err != nil {
		return "", err
	}
	return cachekey.Key(file.UpdatedAt), nil
}

// Thumbnail renders the asset scaled proportionally to fit within
// width x height, encoded in the original format. Non-resizable assets
// are returned unmodified.
func (s *Service) Thumbnail(ctx context.Context, file *model.MediaFile, width, height int) ([]byte, error) {
	data, err := s.loadOriginal(ctx, file)
	if err != nil {
		return nil, err
	}

	origW, origH, ok := file.Dimension()
	if !ok || !file.Resizable() {
		return data, nil
	}

	w, h, ok := sizing.ProportionalDimension(width, height, origW, origH)
	if !ok || (w == origW && h == origH) {
		return data, nil
	}

	resized, err := imagemeta.Resize(data, w, h, file.ContentType)
	if err != nil {
		// The stored bytes no longer decode; serve them untouched.
		hlog.CtxWarnf(ctx, "resize %s to %dx%d failed: %v", file.FileID, w, h, err)
		return data, nil
	}
	return resized, nil
}

// ServeCMS returns the bytes for the authoring data route. The size is
// honored without a whitelist check; a malformed or zero size is
// rejected.
func (s *Service) ServeCMS(ctx context.Context, folderID uint, fileID, rawSize string) (*model.MediaFile, []byte, error) {
	file, err := s.logic.GetMediaFile(ctx, fileID)
	if err != nil {
		return nil, nil, err
	}
	if file.FolderID != folderID {
		return nil, nil, ErrMediaNotFound
	}

	normalized := s.normalizeSize(file, rawSize)
	if rawSize != "" && normalized.Kind == sizing.SizeInvalid {
		return nil, nil, ErrUnprocessableSize
	}

	if normalized.Kind == sizing.SizeResized {
		data, err := s.Thumbnail(ctx, file, normalized.Width, normalized.Height)
		return file, data, err
	}

	data, err := s.loadOriginal(ctx, file)
	return file, data, err
}

// ServePublished returns the bytes for the public route. Only
// whitelisted sizes are rendered; a size outside the whitelist, a
// malformed size or a zero dimension all degrade to the unmodified
// original rather than performing arbitrary resize work.
func (s *Service) ServePublished(ctx context.Context, fileID, rawSize string) (*model.MediaFile, []byte, error) {
	file, err := s.logic.GetMediaFile(ctx, fileID)
	if err != nil {
		return nil, nil, err
	}

	normalized := s.normalizeSize(file, rawSize)
	if normalized.Kind == sizing.SizeResized {
		allowed, err := s.logic.SizeAllowed(ctx, file.ID, normalized.Width, normalized.Height)
		if err != nil {
			return nil, nil, err
		}
		if allowed {
			data, err := s.Thumbnail(ctx, file, normalized.Width, normalized.Height)
			return file, data, err
		}
		hlog.CtxWarnf(ctx, "size %s not whitelisted for %s, serving original", rawSize, file.FileID)
	}

	data, err := s.loadOriginal(ctx, file)
	return file, data, err
}

func (s *Service) normalizeSize(file *model.MediaFile, rawSize string) sizing.Normalized {
	if rawSize == "" {
		return sizing.Normalized{Kind: sizing.SizeNoResize}
	}
	origW, origH, _ := file.Dimension()
	return sizing.NormalizeSize(rawSize, origW, origH, file.Resizable())
}

func (s *Service) loadOriginal(ctx context.Context, file *model.MediaFile) ([]byte, error) {
	reader, err := s.storage.GetObject(ctx, storage.KeyFor(file.FileID))
	if err != nil {
		return nil, fmt.Errorf("read media data: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read media data: %w", err)
	}
	return data, nil
}
