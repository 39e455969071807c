package storage

// Package storage defines the storage abstraction for media originals.
// It provides a unified interface over a local filesystem backend and
// S3-compatible object storage (AWS S3, MinIO, Aliyun OSS).

import (
	"context"
	"io"
)

// Storage defines the interface for object storage operations.
// All backends (local, s3) must implement this interface.
type Storage interface {
	// PutObject uploads a file to storage, overwriting any existing
	// object at the same key.
	// key: object key derived from the media file id (see KeyFor)
	// data: file content reader
	// contentType: MIME type of the file
	// size: file size in bytes
	PutObject(ctx context.Context, key string, data io.Reader, contentType string, size int64) error

	// GetObject retrieves a file from storage.
	// Returns a ReadCloser that must be closed by the caller.
	GetObject(ctx context.Context, key string) (io.ReadCloser, error)

	// DeleteObject removes a file from storage. Deleting a missing
	// object is a no-op, not an error.
	DeleteObject(ctx context.Context, key string) error

	// ObjectExists checks if an object exists in storage.
	ObjectExists(ctx context.Context, key string) (bool, error)

	// Type returns the storage type identifier ("local" or "s3").
	Type() string
}

// KeyFor derives the object key for a media file id. The key is a pure
// function of the id, so readers and orphan cleanup never need a
// database lookup, and the leading-byte buckets keep any one directory
// from accumulating every object.
func KeyFor(fileID string) string {
	if len(fileID) < 4 {
		return fileID
	}
	return fileID[0:2] + "/" + fileID[2:4] + "/" + fileID
}
