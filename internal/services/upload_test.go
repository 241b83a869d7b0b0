package service_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/templatehub/internal/config"
	"github.com/aaravmahajanofficial/templatehub/internal/models"
	service "github.com/aaravmahajanofficial/templatehub/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngHeader is enough for content sniffing to report image/png.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

type uploadPart struct {
	name    string
	content []byte
}

// multipartFiles round-trips the parts through a real multipart request so
// the headers are backed by readable content.
func multipartFiles(t *testing.T, parts ...uploadPart) []*multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, p := range parts {
		fw, err := writer.CreateFormFile("files", p.name)
		require.NoError(t, err)
		_, err = fw.Write(p.content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	t.Cleanup(func() { _ = req.MultipartForm.RemoveAll() })

	return req.MultipartForm.File["files"]
}

func newUploadService(t *testing.T, maxFiles int, maxMB int64) (service.UploadService, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "uploads")
	svc, err := service.NewUploadService(&config.Uploads{Dir: dir, MaxFiles: maxFiles, MaxUploadSizeMB: maxMB})
	require.NoError(t, err)
	return svc, dir
}

func TestUploadService_SaveFiles(t *testing.T) {
	t.Run("Success - Stores sniffed image", func(t *testing.T) {
		// Arrange
		svc, dir := newUploadService(t, 10, 1)
		files := multipartFiles(t, uploadPart{name: "hero.bin", content: pngHeader})

		// Act
		resp, err := svc.SaveFiles(t.Context(), files)

		// Assert
		require.NoError(t, err)
		require.Len(t, resp.Files, 1)

		file := resp.Files[0]
		assert.Equal(t, models.MediaTypeImage, file.Type)
		assert.Equal(t, "image/png", file.MimeType)
		assert.Equal(t, "hero.bin", file.OriginalName)
		assert.Equal(t, int64(len(pngHeader)), file.Size)
		assert.True(t, strings.HasPrefix(file.URL, service.UploadURLPrefix))
		assert.True(t, strings.HasSuffix(file.URL, ".png"))

		stored, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(file.URL, service.UploadURLPrefix)))
		require.NoError(t, err)
		assert.Equal(t, pngHeader, stored)
	})

	t.Run("Failure - No files", func(t *testing.T) {
		svc, _ := newUploadService(t, 10, 1)

		_, err := svc.SaveFiles(t.Context(), nil)

		requireAppError(t, err, http.StatusBadRequest)
	})

	t.Run("Failure - Too many files", func(t *testing.T) {
		svc, _ := newUploadService(t, 1, 1)
		files := multipartFiles(t,
			uploadPart{name: "a.png", content: pngHeader},
			uploadPart{name: "b.png", content: pngHeader},
		)

		_, err := svc.SaveFiles(t.Context(), files)

		requireAppError(t, err, http.StatusRequestEntityTooLarge)
	})

	t.Run("Failure - File over the size limit", func(t *testing.T) {
		svc, dir := newUploadService(t, 10, 1)
		big := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 1<<20)...)
		files := multipartFiles(t, uploadPart{name: "big.png", content: big})

		_, err := svc.SaveFiles(t.Context(), files)

		requireAppError(t, err, http.StatusRequestEntityTooLarge)
		entries, _ := os.ReadDir(dir)
		assert.Empty(t, entries)
	})

	t.Run("Failure - Unsupported type rolls back earlier files", func(t *testing.T) {
		// Arrange
		svc, dir := newUploadService(t, 10, 1)
		files := multipartFiles(t,
			uploadPart{name: "ok.png", content: pngHeader},
			uploadPart{name: "notes.png", content: []byte("just some plain text")},
		)

		// Act
		_, err := svc.SaveFiles(t.Context(), files)

		// Assert
		appErr := requireAppError(t, err, http.StatusUnsupportedMediaType)
		assert.Contains(t, appErr.Message, "text/plain")
		entries, readErr := os.ReadDir(dir)
		require.NoError(t, readErr)
		assert.Empty(t, entries)
	})
}
