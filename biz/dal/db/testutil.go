package db

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/mosaic-cms/media-vault/biz/dal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

// SetupTestDB creates an in-memory SQLite database for testing
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared-cache in-memory database so every pooled connection
	// sees the same schema; a plain ":memory:" DSN gives each connection
	// its own empty database.
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Reduce log noise in tests
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Auto migrate all tables
	if err := db.AutoMigrate(
		&model.MediaFile{},
		&model.MediaSize{},
		&model.RssSection{},
		&model.RefObject{},
	); err != nil {
		t.Fatalf("Failed to migrate tables: %v", err)
	}

	return db
}

// CleanupTestDB closes the database connection
func CleanupTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	if err != nil {
		t.Logf("Warning: Failed to get underlying DB: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Logf("Warning: Failed to close DB: %v", err)
	}
}

// CreateTestMediaFile creates a media file record with image defaults.
func CreateTestMediaFile(t *testing.T, db *gorm.DB, folderID uint, name string) *model.MediaFile {
	t.Helper()
	dao := NewMediaFileDAO()
	w, h := 800, 600
	file := &model.MediaFile{
		FolderID:    folderID,
		Name:        name,
		ContentType: "image/png",
		FileType:    model.FileTypeImage,
		FileSize:    1024,
		Width:       &w,
		Height:      &h,
	}
	if err := dao.Create(context.Background(), db, file); err != nil {
		t.Fatalf("Failed to create test media file: %v", err)
	}
	return file
}

// CreateTestRssSection creates an RSS section record.
func CreateTestRssSection(t *testing.T, db *gorm.DB, pageID uint, url string, showCount int) *model.RssSection {
	t.Helper()
	dao := NewRssSectionDAO()
	section := &model.RssSection{
		PageID:    pageID,
		URL:       url,
		ShowCount: showCount,
	}
	if err := dao.Create(context.Background(), db, section); err != nil {
		t.Fatalf("Failed to create test rss section: %v", err)
	}
	return section
}
