// Package feedcache fetches remote RSS/Atom feeds and caches the parsed
// result on disk with a time-based expiry. The read path is designed to
// keep rendering cheap and resilient: a fresh cache file short-circuits
// the network entirely, a failing remote falls back to stale content,
// and only the combination "no cache and no remote" surfaces as an
// error callers must handle.
package feedcache

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/mmcdole/gofeed"
	"gopkg.in/yaml.v3"
)

// ErrUnavailable is returned when a feed can be served neither from the
// remote source nor from a cache file. Callers must distinguish this
// from an empty feed.
var ErrUnavailable = errors.New("feed unavailable")

// Feed is the normalized on-disk and in-memory representation of a
// remote feed.
type Feed struct {
	Title       string `yaml:"title"`
	Link        string `yaml:"link"`
	Description string `yaml:"description"`
	Items       []Item `yaml:"items"`
}

// Item is a single feed entry.
type Item struct {
	Title       string     `yaml:"title"`
	Link        string     `yaml:"link"`
	Author      string     `yaml:"author,omitempty"`
	Description string     `yaml:"description,omitempty"`
	GUID        string     `yaml:"guid,omitempty"`
	Published   *time.Time `yaml:"published,omitempty"`
}

// Config holds cache location and timing knobs.
type Config struct {
	CachePath    string
	TTL          time.Duration
	FetchTimeout time.Duration
}

// Cache reads and writes per-record feed cache files under a single
// root directory. Each record owns exactly one file, keyed by its id.
type Cache struct {
	root   string
	ttl    time.Duration
	client *http.Client
	parser *gofeed.Parser
	now    func() time.Time
}

// New creates a Cache and ensures the cache directory exists.
func New(cfg Config) (*Cache, error) {
	if cfg.CachePath == "" {
		return nil, fmt.Errorf("feed cache path must be configured")
	}
	if err := os.MkdirAll(cfg.CachePath, 0o755); err != nil {
		return nil, fmt.Errorf("create feed cache directory: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	timeout := cfg.FetchTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Cache{
		root:   cfg.CachePath,
		ttl:    ttl,
		client: &http.Client{Timeout: timeout},
		parser: gofeed.NewParser(),
		now:    time.Now,
	}, nil
}

// FilePath returns the cache file location for a record id.
func (c *Cache) FilePath(id uint) string {
	return filepath.Join(c.root, strconv.FormatUint(uint64(id), 10)+".yml")
}

// Load returns the feed for a record, preferring a fresh cache file over
// the network. On a successful fetch the parsed feed (capped at
// showCount items) is written back to the cache. When the remote fails
// and a stale cache file exists, its modification time is pushed forward
// so the failing source is not hammered on every read, and the stale
// content is served. With no cache at all, ErrUnavailable is returned.
func (c *Cache) Load(ctx context.Context, id uint, url string, showCount int) (*Feed, error) {
	path := c.FilePath(id)

	if info, err := os.Stat(path); err == nil && c.now().Sub(info.ModTime()) < c.ttl {
		if feed, err := c.readFile(path); err == nil {
			return feed, nil
		}
		// Unreadable cache content falls through to a live fetch.
	}

	feed, err := c.fetch(ctx, url, showCount)
	if err == nil {
		// A cache write failure must not fail the read: the feed is
		// already in hand, the next read just pays the fetch again.
		if werr := c.writeFile(path, feed); werr != nil {
			hlog.CtxWarnf(ctx, "write feed cache %s: %v", path, werr)
		}
		return feed, nil
	}

	if _, statErr := os.Stat(path); statErr == nil {
		// Push the mtime forward so the next reads within the TTL skip
		// the failing remote.
		_ = os.Chtimes(path, c.now(), c.now())
		if stale, rerr := c.readFile(path); rerr == nil {
			return stale, nil
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
}

// Invalidate removes the cache file for a record. A missing file is not
// an error; invalidation runs on every record update and delete.
func (c *Cache) Invalidate(id uint) error {
	if err := os.Remove(c.FilePath(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove feed cache: %w", err)
	}
	return nil
}

func (c *Cache) fetch(ctx context.Context, url string, showCount int) (*Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch feed: unexpected status %d", resp.StatusCode)
	}

	parsed, err := c.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	feed := &Feed{
		Title:       parsed.Title,
		Link:        parsed.Link,
		Description: parsed.Description,
		Items:       make([]Item, 0, len(parsed.Items)),
	}
	for i, item := range parsed.Items {
		if showCount > 0 && i >= showCount {
			break
		}
		entry := Item{
			Title:       item.Title,
			Link:        item.Link,
			Description: item.Description,
			GUID:        item.GUID,
			Published:   item.PublishedParsed,
		}
		if item.Author != nil {
			entry.Author = item.Author.Name
		}
		feed.Items = append(feed.Items, entry)
	}
	return feed, nil
}

func (c *Cache) readFile(path string) (*Feed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var feed Feed
	if err := yaml.Unmarshal(data, &feed); err != nil {
		return nil, err
	}
	return &feed, nil
}

// writeFile serializes the feed and renames it into place so concurrent
// readers never observe a partially written cache file.
func (c *Cache) writeFile(path string, feed *Feed) error {
	data, err := yaml.Marshal(feed)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(c.root, ".feed-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
