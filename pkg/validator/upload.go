package validator

import (
	"errors"
	"strings"
)

// Default upload constraints
const (
	DefaultMaxUploadSize = 25 * 1024 * 1024 // 25MB
)

var (
	ErrEmptyFile       = errors.New("file is empty")
	ErrFileTooLarge    = errors.New("file too large")
	ErrMissingMimeType = errors.New("missing content type")
	ErrUnsupportedType = errors.New("unsupported file type")
)

// UploadConfig defines constraints for file uploads.
type UploadConfig struct {
	MaxFileSize      int64
	AllowedMimeTypes map[string]bool
}

// NewUploadConfig builds upload constraints from a max size and a MIME
// whitelist. An empty whitelist allows every type.
func NewUploadConfig(maxSize int64, allowedTypes []string) *UploadConfig {
	if maxSize <= 0 {
		maxSize = DefaultMaxUploadSize
	}
	allowed := make(map[string]bool, len(allowedTypes))
	for _, t := range allowedTypes {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			allowed[t] = true
		}
	}
	return &UploadConfig{
		MaxFileSize:      maxSize,
		AllowedMimeTypes: allowed,
	}
}

// ValidateFileSize checks if the file size is within the allowed limit.
func (c *UploadConfig) ValidateFileSize(size int64) error {
	if size <= 0 {
		return ErrEmptyFile
	}
	if size > c.MaxFileSize {
		return ErrFileTooLarge
	}
	return nil
}

// ValidateMimeType checks if the MIME type is in the allowed whitelist.
func (c *UploadConfig) ValidateMimeType(mimeType string) error {
	normalized := strings.ToLower(strings.TrimSpace(mimeType))
	if normalized == "" {
		return ErrMissingMimeType
	}
	// Handle MIME types with parameters (e.g., "text/plain; charset=utf-8")
	if idx := strings.Index(normalized, ";"); idx > 0 {
		normalized = strings.TrimSpace(normalized[:idx])
	}
	if len(c.AllowedMimeTypes) == 0 {
		return nil
	}
	if !c.AllowedMimeTypes[normalized] {
		return ErrUnsupportedType
	}
	return nil
}

// Validate performs full validation on an upload.
func (c *UploadConfig) Validate(size int64, mimeType string) error {
	if err := c.ValidateFileSize(size); err != nil {
		return err
	}
	return c.ValidateMimeType(mimeType)
}
