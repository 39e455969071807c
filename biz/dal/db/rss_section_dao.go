package db

import (
	"context"

	"github.com/mosaic-cms/media-vault/biz/dal/model"

	"gorm.io/gorm"
)

// RssSectionDAO handles CRUD operations for RSS section records.
type RssSectionDAO struct{}

func NewRssSectionDAO() *RssSectionDAO { return &RssSectionDAO{} }

func (dao *RssSectionDAO) Create(ctx context.Context, db *gorm.DB, section *model.RssSection) error {
	if section == nil {
		return nil
	}
	return db.WithContext(ctx).Create(section).Error
}

// Update persists new feed settings for a section. Existence is checked
// explicitly rather than via RowsAffected: MySQL reports changed rows,
// not matched rows, so an update carrying identical values would look
// like a missing record.
func (dao *RssSectionDAO) Update(ctx context.Context, db *gorm.DB, section *model.RssSection) error {
	if section == nil {
		return nil
	}
	var count int64
	if err := db.WithContext(ctx).
		Model(&model.RssSection{}).
		Where("id = ?", section.ID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return db.WithContext(ctx).
		Model(&model.RssSection{}).
		Where("id = ?", section.ID).
		Updates(map[string]interface{}{
			"url":        section.URL,
			"show_count": section.ShowCount,
		}).Error
}

func (dao *RssSectionDAO) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Unscoped().Where("id = ?", id).Delete(&model.RssSection{}).Error
}

func (dao *RssSectionDAO) GetByID(ctx context.Context, db *gorm.DB, id uint) (*model.RssSection, error) {
	var section model.RssSection
	if err := db.WithContext(ctx).First(&section, id).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

func (dao *RssSectionDAO) ListByPage(ctx context.Context, db *gorm.DB, pageID uint) ([]model.RssSection, error) {
	var sections []model.RssSection
	if err := db.WithContext(ctx).
		Where("page_id = ?", pageID).
		Order("id ASC").
		Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}
