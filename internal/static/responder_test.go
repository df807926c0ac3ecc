package static

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestResponder() *Responder {
	return NewResponder(DefaultContentTypes(), zap.NewNop())
}

func TestResponder_ServeFile_Found(t *testing.T) {
	dir := t.TempDir()
	body := []byte("body { color: red; }\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "style.CSS"), body, 0o644))

	rec := httptest.NewRecorder()
	newTestResponder().ServeFile(rec, filepath.Join(dir, "style.CSS"), http.StatusOK)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/css", rec.Header().Get("Content-Type"))
	assert.Equal(t, body, rec.Body.Bytes())
}

func TestResponder_ServeFile_CustomStatus(t *testing.T) {
	dir := t.TempDir()
	page := []byte("<h1>gone</h1>")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "404.html"), page, 0o644))

	rec := httptest.NewRecorder()
	newTestResponder().ServeFile(rec, filepath.Join(dir, "404.html"), http.StatusNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "text/html", rec.Header().Get("Content-Type"))
	assert.Equal(t, page, rec.Body.Bytes())
}

func TestResponder_ServeFile_ZeroStatusMeansOK(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blob.bin"), []byte{0, 1, 2}, 0o644))

	rec := httptest.NewRecorder()
	newTestResponder().ServeFile(rec, filepath.Join(dir, "blob.bin"), 0)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, FallbackContentType, rec.Header().Get("Content-Type"))
	assert.Equal(t, []byte{0, 1, 2}, rec.Body.Bytes())
}

func TestResponder_ServeFile_NormalizesPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.js"), []byte("x()"), 0o644))

	rec := httptest.NewRecorder()
	newTestResponder().ServeFile(rec, dir+"/sub/./../a.js", http.StatusOK)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "x()", rec.Body.String())
}

func TestResponder_ServeFile_Missing(t *testing.T) {
	rec := httptest.NewRecorder()
	// Intended status is ignored when the file does not exist
	newTestResponder().ServeFile(rec, filepath.Join(t.TempDir(), "nope.css"), http.StatusOK)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, NotFoundBody, rec.Body.String())
}

func TestResponder_ServeFile_ReadFailure(t *testing.T) {
	// Reading a directory fails with something other than "not exist"
	rec := httptest.NewRecorder()
	newTestResponder().ServeFile(rec, t.TempDir(), http.StatusOK)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, ServerErrorBody, rec.Body.String())
}

func TestReadFile_Outcomes(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ok.txt"), []byte("ok"), 0o644))

	data, outcome, err := ReadFile(filepath.Join(dir, "ok.txt"))
	require.NoError(t, err)
	assert.Equal(t, Found, outcome)
	assert.Equal(t, "ok", string(data))

	_, outcome, err = ReadFile(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
	assert.Equal(t, Missing, outcome)

	_, outcome, err = ReadFile(dir)
	assert.Error(t, err)
	assert.Equal(t, Failed, outcome)
	assert.Equal(t, "failed", outcome.String())
}
