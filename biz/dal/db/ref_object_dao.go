package db

import (
	"context"

	"github.com/mosaic-cms/media-vault/biz/dal/model"

	"gorm.io/gorm"
)

// RefObjectDAO manages references from content elements to media files.
type RefObjectDAO struct{}

func NewRefObjectDAO() *RefObjectDAO { return &RefObjectDAO{} }

func (dao *RefObjectDAO) Create(ctx context.Context, db *gorm.DB, ref *model.RefObject) error {
	if ref == nil {
		return nil
	}
	return db.WithContext(ctx).Create(ref).Error
}

// ClearReferable nulls referable_id on every reference to the target,
// keeping referable_type intact.
func (dao *RefObjectDAO) ClearReferable(ctx context.Context, db *gorm.DB, referableType string, referableID uint) error {
	return db.WithContext(ctx).
		Model(&model.RefObject{}).
		Where("referable_type = ? AND referable_id = ?", referableType, referableID).
		Update("referable_id", nil).Error
}

func (dao *RefObjectDAO) ListByReferable(ctx context.Context, db *gorm.DB, referableType string, referableID uint) ([]model.RefObject, error) {
	var refs []model.RefObject
	if err := db.WithContext(ctx).
		Where("referable_type = ? AND referable_id = ?", referableType, referableID).
		Find(&refs).Error; err != nil {
		return nil, err
	}
	return refs, nil
}

func (dao *RefObjectDAO) GetByID(ctx context.Context, db *gorm.DB, id uint) (*model.RefObject, error) {
	var ref model.RefObject
	if err := db.WithContext(ctx).First(&ref, id).Error; err != nil {
		return nil, err
	}
	return &ref, nil
}
