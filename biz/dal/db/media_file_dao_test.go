package db

import (
	"context"
	"testing"

	"github.com/mosaic-cms/media-vault/biz/dal/model"
	"gorm.io/gorm"
)

func TestMediaFileDAO_CreateAssignsFileID(t *testing.T) {
	gdb := SetupTestDB(t)
	defer CleanupTestDB(t, gdb)

	file := CreateTestMediaFile(t, gdb, 1, "hero.png")
	if file.FileID == "" {
		t.Fatal("expected generated file_id")
	}

	got, err := NewMediaFileDAO().GetByFileID(context.Background(), gdb, file.FileID)
	if err != nil {
		t.Fatalf("GetByFileID: %v", err)
	}
	if got.Name != "hero.png" || got.FolderID != 1 {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestMediaFileDAO_DuplicateNameInFolderRejected(t *testing.T) {
	gdb := SetupTestDB(t)
	defer CleanupTestDB(t, gdb)
	ctx := context.Background()
	dao := NewMediaFileDAO()

	CreateTestMediaFile(t, gdb, 1, "logo.png")

	dup := &model.MediaFile{FolderID: 1, Name: "logo.png", ContentType: "image/png", FileType: model.FileTypeImage}
	if err := dao.Create(ctx, gdb, dup); err == nil {
		t.Fatal("expected unique constraint violation for duplicate name in folder")
	}

	// The same name in another folder is fine.
	other := &model.MediaFile{FolderID: 2, Name: "logo.png", ContentType: "image/png", FileType: model.FileTypeImage}
	if err := dao.Create(ctx, gdb, other); err != nil {
		t.Fatalf("expected same name in other folder to succeed: %v", err)
	}

	exists, err := dao.ExistsInFolder(ctx, gdb, 1, "logo.png")
	if err != nil {
		t.Fatalf("ExistsInFolder: %v", err)
	}
	if !exists {
		t.Fatal("expected ExistsInFolder true")
	}
}

func TestMediaFileDAO_DeleteIsPermanent(t *testing.T) {
	gdb := SetupTestDB(t)
	defer CleanupTestDB(t, gdb)
	ctx := context.Background()
	dao := NewMediaFileDAO()

	file := CreateTestMediaFile(t, gdb, 1, "gone.png")
	if err := dao.DeleteByFileID(ctx, gdb, file.FileID); err != nil {
		t.Fatalf("DeleteByFileID: %v", err)
	}

	if _, err := dao.GetByFileID(ctx, gdb, file.FileID); err != gorm.ErrRecordNotFound {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}

	// Name slot is free again after destroy.
	again := &model.MediaFile{FolderID: 1, Name: "gone.png", ContentType: "image/png", FileType: model.FileTypeImage}
	if err := dao.Create(ctx, gdb, again); err != nil {
		t.Fatalf("expected name reusable after hard delete: %v", err)
	}
}

func TestMediaSizeDAO_FindOrCreateIdempotent(t *testing.T) {
	gdb := SetupTestDB(t)
	defer CleanupTestDB(t, gdb)
	ctx := context.Background()
	dao := NewMediaSizeDAO()

	file := CreateTestMediaFile(t, gdb, 1, "pic.png")

	first, err := dao.FindOrCreate(ctx, gdb, file.ID, 400, 300)
	if err != nil {
		t.Fatalf("FindOrCreate: %v", err)
	}
	second, err := dao.FindOrCreate(ctx, gdb, file.ID, 400, 300)
	if err != nil {
		t.Fatalf("second FindOrCreate: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected one row, got ids %d and %d", first.ID, second.ID)
	}

	sizes, err := dao.ListByMediaFile(ctx, gdb, file.ID)
	if err != nil {
		t.Fatalf("ListByMediaFile: %v", err)
	}
	if len(sizes) != 1 {
		t.Fatalf("expected 1 registered size, got %d", len(sizes))
	}

	exists, err := dao.Exists(ctx, gdb, file.ID, 400, 300)
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !exists {
		t.Fatal("expected registered size to exist")
	}
	exists, err = dao.Exists(ctx, gdb, file.ID, 999, 999)
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if exists {
		t.Fatal("did not expect unregistered size to exist")
	}
}

func TestMediaSizeDAO_FindOrCreateConcurrentInsert(t *testing.T) {
	gdb := SetupTestDB(t)
	defer CleanupTestDB(t, gdb)
	ctx := context.Background()
	dao := NewMediaSizeDAO()

	file := CreateTestMediaFile(t, gdb, 1, "race.png")

	// Simulate a second request winning the insert race by slipping an
	// identical row in just before this session's INSERT executes.
	injected := false
	var winner model.MediaSize
	err := gdb.Callback().Create().Before("gorm:create").Register("concurrent_size_insert", func(tx *gorm.DB) {
		if injected || tx.Statement.Schema == nil || tx.Statement.Schema.Table != "media_size" {
			return
		}
		injected = true
		winner = model.MediaSize{MediaFileID: file.ID, Width: 400, Height: 300}
		if err := gdb.Session(&gorm.Session{NewDB: true}).Create(&winner).Error; err != nil {
			t.Errorf("inject concurrent row: %v", err)
		}
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}
	defer gdb.Callback().Create().Remove("concurrent_size_insert")

	got, err := dao.FindOrCreate(ctx, gdb, file.ID, 400, 300)
	if err != nil {
		t.Fatalf("FindOrCreate with concurrent duplicate insert: %v", err)
	}
	if !injected {
		t.Fatal("expected the concurrent insert to run")
	}
	if got.ID != winner.ID {
		t.Fatalf("expected the winning row %d, got %d", winner.ID, got.ID)
	}

	sizes, err := dao.ListByMediaFile(ctx, gdb, file.ID)
	if err != nil {
		t.Fatalf("ListByMediaFile: %v", err)
	}
	if len(sizes) != 1 {
		t.Fatalf("expected a single registered size, got %d", len(sizes))
	}
}

func TestRefObjectDAO_ClearReferableKeepsType(t *testing.T) {
	gdb := SetupTestDB(t)
	defer CleanupTestDB(t, gdb)
	ctx := context.Background()
	dao := NewRefObjectDAO()

	file := CreateTestMediaFile(t, gdb, 1, "ref.png")
	id := file.ID
	ref := &model.RefObject{
		ElementID:     10,
		ReferableType: model.ReferableTypeMediaFile,
		ReferableID:   &id,
	}
	if err := dao.Create(ctx, gdb, ref); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := dao.ClearReferable(ctx, gdb, model.ReferableTypeMediaFile, file.ID); err != nil {
		t.Fatalf("ClearReferable: %v", err)
	}

	got, err := dao.GetByID(ctx, gdb, ref.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ReferableID != nil {
		t.Fatalf("expected referable_id cleared, got %v", *got.ReferableID)
	}
	if got.ReferableType != model.ReferableTypeMediaFile {
		t.Fatalf("expected referable_type kept, got %q", got.ReferableType)
	}
}
