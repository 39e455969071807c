package model

import (
	"time"

	"gorm.io/gorm"
)

// RssSection configures an external feed rendered on a page. The feed
// content itself lives in the on-disk feed cache, keyed by ID.
type RssSection struct {
	ID        uint           `gorm:"primaryKey" json:"id,omitempty"`
	CreatedAt time.Time      `json:"created_at,omitempty"`
	UpdatedAt time.Time      `json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	PageID    uint           `gorm:"column:page_id;index:idx_rss_page" json:"page_id,omitempty"`
	URL       string         `gorm:"column:url;type:text" json:"url,omitempty"`
	ShowCount int            `gorm:"column:show_count" json:"show_count,omitempty"`
}

// TableName overrides gorm to use rss_section table.
func (RssSection) TableName() string {
	return "rss_section"
}
