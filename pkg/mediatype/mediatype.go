// Package mediatype derives trusted metadata from an upload's filename:
// a filesystem-safe name, a normalized content type and a coarse file
// category. The client-declared content type is never consulted; the
// extension is the only input, and the uniqueness constraint on the
// persisted name catches sanitization collisions.
package mediatype

import (
	"mime"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	// FileTypeImage marks files that may have pixel dimensions and
	// renditions. Unknown content types must never classify as image.
	FileTypeImage = "image"
	// FileTypeGeneric is the fail-closed category for unknown types.
	FileTypeGeneric = "file"
)

var (
	unsafeChars      = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)
	contentTypeChars = regexp.MustCompile(`[^a-z\-/]`)
)

// fileTypeTable maps a content-type major class to a coarse category.
// Only registered classes classify; everything else falls back to
// FileTypeGeneric.
var fileTypeTable = map[string]string{
	"image":       FileTypeImage,
	"audio":       "audio",
	"video":       "video",
	"text":        "document",
	"application": "document",
}

// SanitizeFilename reduces an original upload filename to a
// filesystem-safe form. Path separators and other unsafe characters
// collapse to a single underscore; leading dots are stripped so the
// result can never be hidden or traverse upward.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.TrimLeft(name, ".")
	if name == "" {
		name = "unnamed"
	}
	return name
}

// ResolveContentType resolves a content type from the filename's
// extension, lowercases it and strips every character outside [a-z-/].
// Unknown extensions resolve to application/octet-stream.
func ResolveContentType(filename string) string {
	ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename)))
	if idx := strings.Index(ct, ";"); idx > 0 {
		ct = ct[:idx]
	}
	ct = contentTypeChars.ReplaceAllString(strings.ToLower(ct), "")
	if ct == "" {
		return "application/octet-stream"
	}
	return ct
}

// Classify maps a normalized content type to a coarse file category
// using the registered type table. application/octet-stream and
// unregistered classes fail closed to FileTypeGeneric.
func Classify(contentType string) string {
	if contentType == "application/octet-stream" {
		return FileTypeGeneric
	}
	major, _, ok := strings.Cut(contentType, "/")
	if !ok {
		return FileTypeGeneric
	}
	if t, ok := fileTypeTable[major]; ok {
		return t
	}
	return FileTypeGeneric
}
