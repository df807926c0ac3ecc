package static

import (
	"path/filepath"
	"strings"
)

// FallbackContentType is used for extensions missing from the table.
const FallbackContentType = "application/octet-stream"

// ContentTypes maps lowercase file extensions (".css") to MIME types.
// It is built once and never changes, so it is safe to share between requests.
type ContentTypes struct {
	byExt map[string]string
}

// NewContentTypes copies the given map. Keys are lowercased and get a
// leading dot if they lack one.
func NewContentTypes(entries map[string]string) ContentTypes {
	byExt := make(map[string]string, len(entries))
	for ext, mimeType := range entries {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		byExt[ext] = mimeType
	}
	return ContentTypes{byExt: byExt}
}

// DefaultContentTypes covers the assets a small site usually ships.
func DefaultContentTypes() ContentTypes {
	return NewContentTypes(map[string]string{
		".html": "text/html",
		".css":  "text/css",
		".js":   "application/javascript",
		".png":  "image/png",
		".jpg":  "image/jpeg",
		".jpeg": "image/jpeg",
		".svg":  "image/svg+xml",
		".ico":  "image/x-icon",
	})
}

// Lookup returns the MIME type for ext, ignoring case.
func (c ContentTypes) Lookup(ext string) (string, bool) {
	mimeType, ok := c.byExt[strings.ToLower(ext)]
	return mimeType, ok
}

// ForPath resolves the content type of a file path, falling back to
// FallbackContentType.
func (c ContentTypes) ForPath(path string) string {
	if mimeType, ok := c.Lookup(filepath.Ext(path)); ok {
		return mimeType
	}
	return FallbackContentType
}
