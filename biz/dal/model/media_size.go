package model

import "time"

// MediaSize records a rendered size of a media file that has been
// published, forming the whitelist consulted on public delivery. The
// composite unique index makes registration idempotent.
type MediaSize struct {
	ID          uint      `gorm:"primaryKey" json:"id,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
	MediaFileID uint      `gorm:"column:media_file_id;uniqueIndex:idx_media_size;index:idx_media_size_file" json:"media_file_id,omitempty"`
	Width       int       `gorm:"column:width;uniqueIndex:idx_media_size" json:"width,omitempty"`
	Height      int       `gorm:"column:height;uniqueIndex:idx_media_size" json:"height,omitempty"`
}

// TableName overrides gorm to use media_size table.
func (MediaSize) TableName() string {
	return "media_size"
}
