package service

import (
	"context"
	"errors"

	"github.com/mosaic-cms/media-vault/biz/dal/model"
	"gorm.io/gorm"
)

func (l *Logic) GetMediaFile(ctx context.Context, fileID string) (*model.MediaFile, error) {
	file, err := l.mediaFileDAO.GetByFileID(ctx, l.db, fileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}
	return file, nil
}

func (l *Logic) CreateMediaFile(ctx context.Context, file *model.MediaFile) error {
	exists, err := l.mediaFileDAO.ExistsInFolder(ctx, l.db, file.FolderID, file.Name)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateName
	}
	return l.mediaFileDAO.Create(ctx, l.db, file)
}

// RemoveMediaFile permanently deletes the record along with its
// registered sizes and clears any references pointing at it, in one
// transaction.
func (l *Logic) RemoveMediaFile(ctx context.Context, file *model.MediaFile) error {
	return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := l.mediaSizeDAO.DeleteByMediaFile(ctx, tx, file.ID); err != nil {
			return err
		}
		if err := l.mediaFileDAO.DeleteByFileID(ctx, tx, file.FileID); err != nil {
			return err
		}
		return l.refObjectDAO.ClearReferable(ctx, tx, model.ReferableTypeMediaFile, file.ID)
	})
}

// RollbackMediaFile removes a freshly created record after a failed
// storage write. Nothing references the record yet, so no transaction
// is needed.
func (l *Logic) RollbackMediaFile(ctx context.Context, file *model.MediaFile) error {
	return l.mediaFileDAO.DeleteByFileID(ctx, l.db, file.FileID)
}

func (l *Logic) AllowSize(ctx context.Context, mediaFileID uint, width, height int) error {
	_, err := l.mediaSizeDAO.FindOrCreate(ctx, l.db, mediaFileID, width, height)
	return err
}

func (l *Logic) SizeAllowed(ctx context.Context, mediaFileID uint, width, height int) (bool, error) {
	return l.mediaSizeDAO.Exists(ctx, l.db, mediaFileID, width, height)
}

func (l *Logic) ListMediaByFolder(ctx context.Context, folderID uint) ([]model.MediaFile, error) {
	return l.mediaFileDAO.ListByFolder(ctx, l.db, folderID)
}
