// Package static turns files on disk into complete HTTP responses.
package static

import (
	"net/http"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"
)

const (
	NotFoundBody    = "404 - Not found"
	ServerErrorBody = "500 - Server error"

	plainText = "text/plain"
)

// Responder writes one response per call and never panics on a file error.
type Responder struct {
	types  ContentTypes
	logger *zap.Logger
}

func NewResponder(types ContentTypes, logger *zap.Logger) *Responder {
	return &Responder{
		types:  types,
		logger: logger,
	}
}

// ServeFile writes the file at path with the given status (0 means 200).
// A missing file becomes a plain 404, any other read error a plain 500.
func (s *Responder) ServeFile(w http.ResponseWriter, path string, status int) {
	if status == 0 {
		status = http.StatusOK
	}

	path = filepath.Clean(path)
	data, outcome, err := ReadFile(path)

	switch outcome {
	case Found:
		s.write(w, status, s.types.ForPath(path), data)
	case Missing:
		s.logger.Debug("File not found", zap.String("path", path))
		NotFound(w)
	default:
		s.logger.Error("Failed to read file", zap.String("path", path), zap.Error(err))
		ServerError(w)
	}
}

func (s *Responder) write(w http.ResponseWriter, status int, contentType string, body []byte) {
	h := w.Header()
	h.Set("Content-Type", contentType)
	h.Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		// Client went away; nothing left to send.
		s.logger.Debug("Write aborted", zap.Error(err))
	}
}

// NotFound writes the plain-text 404 response.
func NotFound(w http.ResponseWriter) {
	writePlain(w, http.StatusNotFound, NotFoundBody)
}

// ServerError writes the plain-text 500 response.
func ServerError(w http.ResponseWriter) {
	writePlain(w, http.StatusInternalServerError, ServerErrorBody)
}

func writePlain(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", plainText)
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
