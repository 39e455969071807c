package service

import (
	"context"
	"errors"
	"net/url"

	"github.com/mosaic-cms/media-vault/biz/dal/model"
	"gorm.io/gorm"
)

func (l *Logic) GetRssSection(ctx context.Context, id uint) (*model.RssSection, error) {
	section, err := l.rssSectionDAO.GetByID(ctx, l.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}
	return section, nil
}

func (l *Logic) CreateRssSection(ctx context.Context, section *model.RssSection) error {
	if err := validateRssSection(section); err != nil {
		return err
	}
	return l.rssSectionDAO.Create(ctx, l.db, section)
}

func (l *Logic) UpdateRssSection(ctx context.Context, section *model.RssSection) error {
	if err := validateRssSection(section); err != nil {
		return err
	}
	err := l.rssSectionDAO.Update(ctx, l.db, section)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrSectionNotFound
	}
	return err
}

func (l *Logic) DeleteRssSection(ctx context.Context, id uint) error {
	return l.rssSectionDAO.Delete(ctx, l.db, id)
}

func (l *Logic) ListRssSections(ctx context.Context, pageID uint) ([]model.RssSection, error) {
	return l.rssSectionDAO.ListByPage(ctx, l.db, pageID)
}

func validateRssSection(section *model.RssSection) error {
	if section.ShowCount <= 0 {
		return ErrInvalidShowCount
	}
	u, err := url.Parse(section.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidFeedURL
	}
	return nil
}
