package model

import (
	"time"

	"gorm.io/gorm"
)

// File type classifications derived from the MIME major class.
const (
	FileTypeImage    = "image"
	FileTypeAudio    = "audio"
	FileTypeVideo    = "video"
	FileTypeDocument = "document"
	FileTypeGeneric  = "file"
)

// MediaFile stores metadata for uploaded media assets. Width and Height
// are nil for non-image assets and for images whose dimensions could
// not be derived.
type MediaFile struct {
	ID          uint           `gorm:"primaryKey" json:"id,omitempty"`
	CreatedAt   time.Time      `json:"created_at,omitempty"`
	UpdatedAt   time.Time      `json:"updated_at,omitempty"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	FileID      string         `gorm:"column:file_id;uniqueIndex:idx_media_file_id" json:"file_id,omitempty"`
	FolderID    uint           `gorm:"column:folder_id;uniqueIndex:idx_media_folder_name;index:idx_media_folder" json:"folder_id,omitempty"`
	Name        string         `gorm:"column:name;uniqueIndex:idx_media_folder_name" json:"name,omitempty"`
	ContentType string         `gorm:"column:content_type" json:"content_type,omitempty"`
	FileType    string         `gorm:"column:file_type;index:idx_media_file_type" json:"file_type,omitempty"`
	FileSize    int64          `gorm:"column:file_size" json:"file_size,omitempty"`
	Width       *int           `gorm:"column:width" json:"width,omitempty"`
	Height      *int           `gorm:"column:height" json:"height,omitempty"`
}

// TableName overrides gorm to use media_file table.
func (MediaFile) TableName() string {
	return "media_file"
}

// IsImage reports whether the asset was classified as an image.
func (m *MediaFile) IsImage() bool {
	return m.FileType == FileTypeImage
}

// Resizable reports whether the asset can be rendered at reduced
// dimensions. Only images with known dimensions qualify.
func (m *MediaFile) Resizable() bool {
	return m.IsImage() && m.Width != nil && m.Height != nil && *m.Width > 0 && *m.Height > 0
}

// Dimension returns the stored width and height, or ok=false when the
// asset has no derived dimensions.
func (m *MediaFile) Dimension() (width, height int, ok bool) {
	if m.Width == nil || m.Height == nil {
		return 0, 0, false
	}
	return *m.Width, *m.Height, true
}
