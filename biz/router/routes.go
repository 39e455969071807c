package router

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/mosaic-cms/media-vault/biz/handler"
	"github.com/mosaic-cms/media-vault/biz/middleware"
)

// Register configures all HTTP routes. Mutating CMS routes run behind
// authentication and, when redis is configured, the distributed write
// lock. The serving routes are read-only and unauthenticated.
func Register(r *server.Hertz, media *handler.MediaHandler, rss *handler.RssHandler, writeLocked bool) {
	if media == nil || rss == nil {
		return
	}

	v1 := r.Group("/api/v1")
	v1.Use(middleware.Auth())

	v1.GET("/media", media.List)
	v1.GET("/media/:fileID/url", media.URL)
	v1.GET("/rss-sections", rss.List)
	v1.GET("/rss-sections/:id/feed", rss.Feed)

	guard := func(h app.HandlerFunc) []app.HandlerFunc {
		chain := []app.HandlerFunc{middleware.RequireAuth()}
		if writeLocked {
			chain = append(chain, middleware.WriteLockMw()...)
		}
		return append(chain, h)
	}

	v1.POST("/media/upload", guard(media.Upload)...)
	v1.DELETE("/media/:fileID", guard(media.Delete)...)

	v1.POST("/rss-sections", guard(rss.Create)...)
	v1.PUT("/rss-sections/:id", guard(rss.Update)...)
	v1.DELETE("/rss-sections/:id", guard(rss.Delete)...)

	// Content serving routes.
	r.GET("/cms/data/:folderID/:fileID", media.ServeCMS)
	r.GET("/media/:fileID", media.ServePublished)

	r.GET("/ping", Ping)
}

// Ping is a liveness probe.
func Ping(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, map[string]string{"message": "pong"})
}
