package main

import (
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/mosaic-cms/media-vault/biz/dal/model"
	"github.com/mosaic-cms/media-vault/biz/handler"
	"github.com/mosaic-cms/media-vault/biz/middleware"
	"github.com/mosaic-cms/media-vault/biz/router"
	"github.com/mosaic-cms/media-vault/biz/service"
	"github.com/mosaic-cms/media-vault/pkg/config"
	"github.com/mosaic-cms/media-vault/pkg/database"
	"github.com/mosaic-cms/media-vault/pkg/feedcache"
	"github.com/mosaic-cms/media-vault/pkg/lock"
	"github.com/mosaic-cms/media-vault/pkg/redis"
	"github.com/mosaic-cms/media-vault/pkg/storage"
	"github.com/mosaic-cms/media-vault/pkg/validator"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		hlog.Fatalf("load config: %v", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		hlog.Fatalf("open database: %v", err)
	}
	if err := db.AutoMigrate(
		&model.MediaFile{},
		&model.MediaSize{},
		&model.RssSection{},
		&model.RefObject{},
	); err != nil {
		hlog.Fatalf("migrate database: %v", err)
	}

	store, err := storage.New(cfg.Storage)
	if err != nil {
		hlog.Fatalf("init storage: %v", err)
	}
	hlog.Infof("storage backend: %s", store.Type())

	feeds, err := feedcache.New(feedcache.Config{
		CachePath:    cfg.Feed.CachePath,
		TTL:          time.Duration(cfg.Feed.CacheTTLSeconds) * time.Second,
		FetchTimeout: time.Duration(cfg.Feed.FetchTimeoutSeconds) * time.Second,
	})
	if err != nil {
		hlog.Fatalf("init feed cache: %v", err)
	}

	writeLocked := false
	if cfg.Redis.Enabled {
		client, err := redis.NewClient(cfg.Redis)
		if err != nil {
			hlog.Fatalf("connect redis: %v", err)
		}
		middleware.InitWriteLock(lock.New(client, "media_vault:write_lock", 30*time.Second, 5*time.Second))
		writeLocked = true
		hlog.Infof("distributed write lock enabled")
	}

	uploadCfg := validator.NewUploadConfig(cfg.Upload.MaxSize, cfg.Upload.AllowedTypes)
	svc := service.NewService(db, store, feeds, uploadCfg)

	h := server.Default(server.WithHostPorts(cfg.Server.Address))
	h.Use(middleware.Recovery())
	h.Use(middleware.Logging())
	h.Use(middleware.CORS(&cfg.CORS))

	router.Register(h, handler.NewMediaHandler(svc), handler.NewRssHandler(svc), writeLocked)

	hlog.Infof("listening on %s", cfg.Server.Address)
	h.Spin()
}
