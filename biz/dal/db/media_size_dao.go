package db

import (
	"context"

	"github.com/mosaic-cms/media-vault/biz/dal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MediaSizeDAO maintains the whitelist of published render sizes.
type MediaSizeDAO struct{}

func NewMediaSizeDAO() *MediaSizeDAO { return &MediaSizeDAO{} }

// FindOrCreate registers a size for a media file. Registering the same
// size twice leaves a single row. The insert ignores conflicts on the
// composite unique index, so two concurrent registrations of a
// brand-new size both succeed: the loser of the insert race re-selects
// the winner's row.
func (dao *MediaSizeDAO) FindOrCreate(ctx context.Context, db *gorm.DB, mediaFileID uint, width, height int) (*model.MediaSize, error) {
	size := model.MediaSize{
		MediaFileID: mediaFileID,
		Width:       width,
		Height:      height,
	}
	result := db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&size)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		if err := db.WithContext(ctx).
			Where("media_file_id = ? AND width = ? AND height = ?", mediaFileID, width, height).
			First(&size).Error; err != nil {
			return nil, err
		}
	}
	return &size, nil
}

// Exists reports whether a size is whitelisted for a media file.
func (dao *MediaSizeDAO) Exists(ctx context.Context, db *gorm.DB, mediaFileID uint, width, height int) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.MediaSize{}).
		Where("media_file_id = ? AND width = ? AND height = ?", mediaFileID, width, height).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (dao *MediaSizeDAO) ListByMediaFile(ctx context.Context, db *gorm.DB, mediaFileID uint) ([]model.MediaSize, error) {
	var sizes []model.MediaSize
	if err := db.WithContext(ctx).
		Where("media_file_id = ?", mediaFileID).
		Order("width ASC, height ASC").
		Find(&sizes).Error; err != nil {
		return nil, err
	}
	return sizes, nil
}

// DeleteByMediaFile removes every registered size for a media file.
func (dao *MediaSizeDAO) DeleteByMediaFile(ctx context.Context, db *gorm.DB, mediaFileID uint) error {
	return db.WithContext(ctx).
		Where("media_file_id = ?", mediaFileID).
		Delete(&model.MediaSize{}).Error
}
