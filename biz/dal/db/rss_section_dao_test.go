package db

import (
	"context"
	"testing"

	"github.com/mosaic-cms/media-vault/biz/dal/model"
	"gorm.io/gorm"
)

func TestRssSectionDAO_UpdateWithIdenticalValues(t *testing.T) {
	gdb := SetupTestDB(t)
	defer CleanupTestDB(t, gdb)
	ctx := context.Background()
	dao := NewRssSectionDAO()

	section := CreateTestRssSection(t, gdb, 1, "https://example.com/feed.xml", 5)

	// Saving unchanged values must read as success, not as a missing
	// record.
	same := &model.RssSection{ID: section.ID, URL: section.URL, ShowCount: section.ShowCount}
	if err := dao.Update(ctx, gdb, same); err != nil {
		t.Fatalf("Update with identical values: %v", err)
	}

	changed := &model.RssSection{ID: section.ID, URL: "https://example.com/other.xml", ShowCount: 3}
	if err := dao.Update(ctx, gdb, changed); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := dao.GetByID(ctx, gdb, section.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.URL != "https://example.com/other.xml" || got.ShowCount != 3 {
		t.Fatalf("unexpected record after update: %+v", got)
	}
}

func TestRssSectionDAO_UpdateMissingSection(t *testing.T) {
	gdb := SetupTestDB(t)
	defer CleanupTestDB(t, gdb)

	missing := &model.RssSection{ID: 404, URL: "https://example.com/feed.xml", ShowCount: 5}
	if err := NewRssSectionDAO().Update(context.Background(), gdb, missing); err != gorm.ErrRecordNotFound {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestRssSectionDAO_ListByPage(t *testing.T) {
	gdb := SetupTestDB(t)
	defer CleanupTestDB(t, gdb)
	ctx := context.Background()
	dao := NewRssSectionDAO()

	first := CreateTestRssSection(t, gdb, 1, "https://example.com/a.xml", 5)
	second := CreateTestRssSection(t, gdb, 1, "https://example.com/b.xml", 3)
	CreateTestRssSection(t, gdb, 2, "https://example.com/c.xml", 3)

	sections, err := dao.ListByPage(ctx, gdb, 1)
	if err != nil {
		t.Fatalf("ListByPage: %v", err)
	}
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections on page 1, got %d", len(sections))
	}
	if sections[0].ID != first.ID || sections[1].ID != second.ID {
		t.Fatalf("expected id order [%d %d], got [%d %d]",
			first.ID, second.ID, sections[0].ID, sections[1].ID)
	}
}
