package service

import (
	"context"
	"errors"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/mosaic-cms/media-vault/biz/dal/model"
	"github.com/mosaic-cms/media-vault/pkg/feedcache"
)

// ErrFeedUnavailable aliases the cache sentinel so handlers only need
// the service package for error mapping.
var ErrFeedUnavailable = feedcache.ErrUnavailable

// --------------------- RSS section operations ---------------------

func (s *Service) CreateRssSection(ctx context.Context, pageID uint, url string, showCount int) (*model.RssSection, error) {
	section := &model.RssSection{
		PageID:    pageID,
		URL:       url,
		ShowCount: showCount,
	}
	if err := s.logic.CreateRssSection(ctx, section); err != nil {
		return nil, err
	}
	return section, nil
}

// UpdateRssSection persists new feed settings and drops the cached feed
// so the next read fetches against the new URL and count.
func (s *Service) UpdateRssSection(ctx context.Context, id uint, url string, showCount int) (*model.RssSection, error) {
	section := &model.RssSection{URL: url, ShowCount: showCount}
	section.ID = id
	if err := s.logic.UpdateRssSection(ctx, section); err != nil {
		return nil, err
	}
	if err := s.feeds.Invalidate(id); err != nil {
		hlog.CtxWarnf(ctx, "invalidate feed cache for section %d: %v", id, err)
	}
	return s.logic.GetRssSection(ctx, id)
}

// DeleteRssSection removes the record and its cache file. A missing
// cache file is tolerated.
func (s *Service) DeleteRssSection(ctx context.Context, id uint) error {
	if _, err := s.logic.GetRssSection(ctx, id); err != nil {
		return err
	}
	if err := s.logic.DeleteRssSection(ctx, id); err != nil {
		return err
	}
	if err := s.feeds.Invalidate(id); err != nil {
		hlog.CtxWarnf(ctx, "invalidate feed cache for section %d: %v", id, err)
	}
	return nil
}

// ListRssSections returns the sections of a page ordered by id.
func (s *Service) ListRssSections(ctx context.Context, pageID uint) ([]model.RssSection, error) {
	return s.logic.ListRssSections(ctx, pageID)
}

// Section loads a section record and wraps it in a view that memoizes
// the feed for its lifetime, so one logical operation reads the cache
// file at most once.
func (s *Service) Section(ctx context.Context, id uint) (*FeedSection, error) {
	record, err := s.logic.GetRssSection(ctx, id)
	if err != nil {
		return nil, err
	}
	return &FeedSection{record: record, feeds: s.feeds}, nil
}

// FeedSection is a per-request view over an RSS section. The feed load
// result, success or failure, is computed at most once per instance.
type FeedSection struct {
	record *model.RssSection
	feeds  *feedcache.Cache

	loaded  bool
	feed    *feedcache.Feed
	loadErr error
}

// Record returns the underlying section record.
func (f *FeedSection) Record() *model.RssSection {
	return f.record
}

// Feed returns the cached or freshly fetched feed. When the feed is
// unavailable the error satisfies errors.Is(err, ErrFeedUnavailable).
func (f *FeedSection) Feed(ctx context.Context) (*feedcache.Feed, error) {
	if !f.loaded {
		f.loaded = true
		f.feed, f.loadErr = f.feeds.Load(ctx, f.record.ID, f.record.URL, f.record.ShowCount)
	}
	return f.feed, f.loadErr
}

// Title returns the feed title, or "" when the feed is unavailable.
func (f *FeedSection) Title(ctx context.Context) string {
	feed, err := f.Feed(ctx)
	if err != nil {
		return ""
	}
	return feed.Title
}

// Link returns the feed link, or "" when the feed is unavailable.
func (f *FeedSection) Link(ctx context.Context) string {
	feed, err := f.Feed(ctx)
	if err != nil {
		return ""
	}
	return feed.Link
}

// Items returns the feed entries capped at the section's show count,
// or nil when the feed is unavailable.
func (f *FeedSection) Items(ctx context.Context) []feedcache.Item {
	feed, err := f.Feed(ctx)
	if err != nil {
		return nil
	}
	items := feed.Items
	if f.record.ShowCount > 0 && len(items) > f.record.ShowCount {
		items = items[:f.record.ShowCount]
	}
	return items
}

// Available reports whether the feed could be loaded at all.
func (f *FeedSection) Available(ctx context.Context) bool {
	_, err := f.Feed(ctx)
	return !errors.Is(err, ErrFeedUnavailable) && err == nil
}
