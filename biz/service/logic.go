package service

import (
	"errors"

	"github.com/mosaic-cms/media-vault/biz/dal/db"
	"gorm.io/gorm"
)

var (
	ErrMediaNotFound     = errors.New("media file not found")
	ErrEmptyUpload       = errors.New("uploaded file is empty")
	ErrDuplicateName     = errors.New("a file with this name already exists in the folder")
	ErrUnprocessableSize = errors.New("requested size cannot be processed")
	ErrModeRequired      = errors.New("render mode is required")
	ErrSectionNotFound   = errors.New("rss section not found")
	ErrInvalidShowCount  = errors.New("show count must be a positive number")
	ErrInvalidFeedURL    = errors.New("feed url must be http or https")
)

// Logic contains business rules on top of data persistence.
type Logic struct {
	db            *gorm.DB
	mediaFileDAO  *db.MediaFileDAO
	mediaSizeDAO  *db.MediaSizeDAO
	rssSectionDAO *db.RssSectionDAO
	refObjectDAO  *db.RefObjectDAO
}

func NewLogic(dbConn *gorm.DB) *Logic {
	return &Logic{
		db:            dbConn,
		mediaFileDAO:  db.NewMediaFileDAO(),
		mediaSizeDAO:  db.NewMediaSizeDAO(),
		rssSectionDAO: db.NewRssSectionDAO(),
		refObjectDAO:  db.NewRefObjectDAO(),
	}
}
