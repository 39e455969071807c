package handler

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/mosaic-cms/media-vault/biz/service"
	"github.com/mosaic-cms/media-vault/pkg/common"
	"github.com/mosaic-cms/media-vault/pkg/validator"
)

// MediaHandler exposes media asset endpoints.
type MediaHandler struct {
	service *service.Service
}

func NewMediaHandler(svc *service.Service) *MediaHandler {
	return &MediaHandler{service: svc}
}

// Upload handles multipart uploads and persists media files through the
// service layer.
func (h *MediaHandler) Upload(ctx context.Context, c *app.RequestContext) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		writeBadRequest(c, err)
		return
	}

	folderID, err := strconv.ParseUint(string(c.FormValue("folder_id")), 10, 64)
	if err != nil {
		writeBadRequest(c, errors.New("folder_id is required"))
		return
	}

	upload, err := fileHeader.Open()
	if err != nil {
		writeBadRequest(c, err)
		return
	}
	defer upload.Close()

	rctx := enrichContext(ctx, c)
	file, err := h.service.Ingest(rctx, uint(folderID), fileHeader.Filename, service.StreamUpload{Reader: upload})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyUpload),
			errors.Is(err, service.ErrDuplicateName),
			errors.Is(err, validator.ErrFileTooLarge),
			errors.Is(err, validator.ErrUnsupportedType):
			writeBadRequest(c, err)
		default:
			writeInternalError(c, err)
		}
		return
	}

	cmsURL, err := h.service.URL(rctx, file.FileID, "", service.ModeCMS)
	if err != nil {
		writeInternalError(c, err)
		return
	}

	c.JSON(consts.StatusOK, common.CommonResponse{
		Code: consts.StatusOK,
		Data: map[string]any{
			"file": file,
			"url":  cmsURL,
		},
	})
}

// List returns the media files of a folder ordered by name.
func (h *MediaHandler) List(ctx context.Context, c *app.RequestContext) {
	folderID, err := strconv.ParseUint(c.Query("folder_id"), 10, 64)
	if err != nil {
		writeBadRequest(c, errors.New("folder_id is required"))
		return
	}

	files, err := h.service.List(enrichContext(ctx, c), uint(folderID))
	if err != nil {
		writeInternalError(c, err)
		return
	}
	c.JSON(consts.StatusOK, common.CommonResponse{
		Code: consts.StatusOK,
		Data: map[string]any{
			"files": files,
		},
	})
}

// URL builds a mode-aware rendition URL for a media file.
func (h *MediaHandler) URL(ctx context.Context, c *app.RequestContext) {
	fileID := c.Param("fileID")
	mode := service.Mode(c.Query("mode"))
	size := c.Query("size")

	u, err := h.service.URL(enrichContext(ctx, c), fileID, size, mode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrModeRequired):
			writeBadRequest(c, err)
		case errors.Is(err, service.ErrMediaNotFound):
			writeNotFound(c, err)
		case errors.Is(err, service.ErrUnprocessableSize):
			writeUnprocessable(c, err)
		default:
			writeInternalError(c, err)
		}
		return
	}

	c.JSON(consts.StatusOK, common.CommonResponse{
		Code: consts.StatusOK,
		Data: map[string]any{
			"url": u,
		},
	})
}

// Delete destroys a media file: bytes, record, registered sizes and
// references.
func (h *MediaHandler) Delete(ctx context.Context, c *app.RequestContext) {
	fileID := c.Param("fileID")
	if err := h.service.Destroy(enrichContext(ctx, c), fileID); err != nil {
		if errors.Is(err, service.ErrMediaNotFound) {
			writeNotFound(c, err)
			return
		}
		writeInternalError(c, err)
		return
	}
	c.JSON(consts.StatusOK, common.CommonResponse{Code: consts.StatusOK})
}

// ServeCMS streams asset content for the authoring interface. Sizes are
// honored without a whitelist check.
func (h *MediaHandler) ServeCMS(ctx context.Context, c *app.RequestContext) {
	folderID, ok := parseUintParam(c, "folderID")
	if !ok {
		writeBadRequest(c, errors.New("invalid folder id"))
		return
	}
	fileID := c.Param("fileID")

	file, data, err := h.service.ServeCMS(enrichContext(ctx, c), folderID, fileID, c.Query("size"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMediaNotFound):
			writeNotFound(c, err)
		case errors.Is(err, service.ErrUnprocessableSize):
			writeUnprocessable(c, err)
		default:
			writeInternalError(c, err)
		}
		return
	}

	h.writeContent(c, file.ContentType, file.Name, data)
}

// ServePublished streams asset content for the public route. Only
// whitelisted sizes render; everything else degrades to the original.
func (h *MediaHandler) ServePublished(ctx context.Context, c *app.RequestContext) {
	fileID := c.Param("fileID")

	file, data, err := h.service.ServePublished(enrichContext(ctx, c), fileID, c.Query("size"))
	if err != nil {
		if errors.Is(err, service.ErrMediaNotFound) {
			writeNotFound(c, err)
			return
		}
		writeInternalError(c, err)
		return
	}

	// The cache key in the URL changes on every record update, so the
	// response itself can be cached indefinitely.
	if c.Query("cache_key") != "" {
		c.Response.Header.Set("Cache-Control", "public, max-age=31536000, immutable")
	}
	h.writeContent(c, file.ContentType, file.Name, data)
}

func (h *MediaHandler) writeContent(c *app.RequestContext, contentType, name string, data []byte) {
	if contentType == "" {
		contentType = consts.MIMEApplicationOctetStream
	}
	c.Response.Header.Set("Content-Type", contentType)
	if name != "" {
		c.Response.Header.Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", name))
	}
	c.Data(consts.StatusOK, contentType, data)
}
