package handler

import (
	"context"
	"errors"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/mosaic-cms/media-vault/biz/service"
	"github.com/mosaic-cms/media-vault/pkg/common"
)

// RssHandler exposes RSS section endpoints.
type RssHandler struct {
	service *service.Service
}

func NewRssHandler(svc *service.Service) *RssHandler {
	return &RssHandler{service: svc}
}

type rssSectionRequest struct {
	PageID    uint   `json:"page_id"`
	URL       string `json:"url"`
	ShowCount int    `json:"show_count"`
}

// Create registers a new RSS section.
func (h *RssHandler) Create(ctx context.Context, c *app.RequestContext) {
	var req rssSectionRequest
	if err := c.BindJSON(&req); err != nil {
		writeBadRequest(c, err)
		return
	}

	section, err := h.service.CreateRssSection(enrichContext(ctx, c), req.PageID, req.URL, req.ShowCount)
	if err != nil {
		if errors.Is(err, service.ErrInvalidShowCount) || errors.Is(err, service.ErrInvalidFeedURL) {
			writeBadRequest(c, err)
			return
		}
		writeInternalError(c, err)
		return
	}

	c.JSON(consts.StatusOK, common.CommonResponse{
		Code: consts.StatusOK,
		Data: map[string]any{"section": section},
	})
}

// List returns the RSS sections of a page.
func (h *RssHandler) List(ctx context.Context, c *app.RequestContext) {
	pageID, err := strconv.ParseUint(c.Query("page_id"), 10, 64)
	if err != nil {
		writeBadRequest(c, errors.New("page_id is required"))
		return
	}

	sections, err := h.service.ListRssSections(enrichContext(ctx, c), uint(pageID))
	if err != nil {
		writeInternalError(c, err)
		return
	}
	c.JSON(consts.StatusOK, common.CommonResponse{
		Code: consts.StatusOK,
		Data: map[string]any{"sections": sections},
	})
}

// Update changes a section's feed settings and drops its cached feed.
func (h *RssHandler) Update(ctx context.Context, c *app.RequestContext) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		writeBadRequest(c, errors.New("invalid section id"))
		return
	}

	var req rssSectionRequest
	if err := c.BindJSON(&req); err != nil {
		writeBadRequest(c, err)
		return
	}

	section, err := h.service.UpdateRssSection(enrichContext(ctx, c), id, req.URL, req.ShowCount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSectionNotFound):
			writeNotFound(c, err)
		case errors.Is(err, service.ErrInvalidShowCount), errors.Is(err, service.ErrInvalidFeedURL):
			writeBadRequest(c, err)
		default:
			writeInternalError(c, err)
		}
		return
	}

	c.JSON(consts.StatusOK, common.CommonResponse{
		Code: consts.StatusOK,
		Data: map[string]any{"section": section},
	})
}

// Delete removes a section and its cache file.
func (h *RssHandler) Delete(ctx context.Context, c *app.RequestContext) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		writeBadRequest(c, errors.New("invalid section id"))
		return
	}

	if err := h.service.DeleteRssSection(enrichContext(ctx, c), id); err != nil {
		if errors.Is(err, service.ErrSectionNotFound) {
			writeNotFound(c, err)
			return
		}
		writeInternalError(c, err)
		return
	}
	c.JSON(consts.StatusOK, common.CommonResponse{Code: consts.StatusOK})
}

// Feed returns the cached or freshly fetched feed content for a
// section. An unavailable feed is a 404, distinct from an empty feed.
func (h *RssHandler) Feed(ctx context.Context, c *app.RequestContext) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		writeBadRequest(c, errors.New("invalid section id"))
		return
	}

	rctx := enrichContext(ctx, c)
	section, err := h.service.Section(rctx, id)
	if err != nil {
		if errors.Is(err, service.ErrSectionNotFound) {
			writeNotFound(c, err)
			return
		}
		writeInternalError(c, err)
		return
	}

	feed, err := section.Feed(rctx)
	if err != nil {
		if errors.Is(err, service.ErrFeedUnavailable) {
			writeNotFound(c, err)
			return
		}
		writeInternalError(c, err)
		return
	}

	c.JSON(consts.StatusOK, common.CommonResponse{
		Code: consts.StatusOK,
		Data: map[string]any{
			"title": feed.Title,
			"link":  feed.Link,
			"items": section.Items(rctx),
		},
	})
}
