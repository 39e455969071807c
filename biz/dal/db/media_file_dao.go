package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/mosaic-cms/media-vault/biz/dal/model"

	"gorm.io/gorm"
)

// MediaFileDAO handles CRUD operations for media file records.
type MediaFileDAO struct{}

func NewMediaFileDAO() *MediaFileDAO { return &MediaFileDAO{} }

func (dao *MediaFileDAO) Create(ctx context.Context, db *gorm.DB, file *model.MediaFile) error {
	if file == nil {
		return nil
	}
	if file.FileID == "" {
		file.FileID = uuid.NewString()
	}
	return db.WithContext(ctx).Create(file).Error
}

// DeleteByFileID removes the record permanently. Destroy must leave no
// soft-deleted remnant behind, so this bypasses the deleted_at filter.
func (dao *MediaFileDAO) DeleteByFileID(ctx context.Context, db *gorm.DB, fileID string) error {
	return db.WithContext(ctx).Unscoped().Where("file_id = ?", fileID).Delete(&model.MediaFile{}).Error
}

func (dao *MediaFileDAO) GetByFileID(ctx context.Context, db *gorm.DB, fileID string) (*model.MediaFile, error) {
	var file model.MediaFile
	if err := db.WithContext(ctx).Where("file_id = ?", fileID).First(&file).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

func (dao *MediaFileDAO) ExistsInFolder(ctx context.Context, db *gorm.DB, folderID uint, name string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.MediaFile{}).
		Where("folder_id = ? AND name = ?", folderID, name).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (dao *MediaFileDAO) ListByFolder(ctx context.Context, db *gorm.DB, folderID uint) ([]model.MediaFile, error) {
	var files []model.MediaFile
	if err := db.WithContext(ctx).
		Where("folder_id = ?", folderID).
		Order("name ASC").
		Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}
