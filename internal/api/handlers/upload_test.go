package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/templatehub/internal/api/handlers"
	"github.com/aaravmahajanofficial/templatehub/internal/config"
	appErrors "github.com/aaravmahajanofficial/templatehub/internal/errors"
	"github.com/aaravmahajanofficial/templatehub/internal/models"
	"github.com/aaravmahajanofficial/templatehub/internal/services/mocks"
	"github.com/aaravmahajanofficial/templatehub/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func multipartBody(t *testing.T, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for name, content := range files {
		fw, err := writer.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return &body, writer.FormDataContentType()
}

func TestUploadMedia(t *testing.T) {
	cfg := &config.Uploads{Dir: t.TempDir(), MaxFiles: 1, MaxUploadSizeMB: 1}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		svc := mocks.NewMockUploadService(t)
		handler := handlers.NewUploadHandler(svc, cfg)
		stored := &models.UploadResponse{Files: []models.UploadedFile{{
			URL: "/uploads/abc.png", OriginalName: "hero.png", MimeType: "image/png", Size: 4, Type: models.MediaTypeImage,
		}}}

		svc.On("SaveFiles", mock.Anything, mock.MatchedBy(func(files []*multipart.FileHeader) bool {
			return len(files) == 1 && files[0].Filename == "hero.png"
		})).Return(stored, nil).Once()

		body, contentType := multipartBody(t, map[string][]byte{"hero.png": []byte("\x89PNG")})
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/uploads", body, testutils.AdminClaims(), nil)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		// Act
		handler.UploadMedia().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		got := decodeData[models.UploadResponse](t, rr)
		require.Len(t, got.Files, 1)
		assert.Equal(t, "/uploads/abc.png", got.Files[0].URL)
	})

	t.Run("Failure - Body over the size limit", func(t *testing.T) {
		svc := mocks.NewMockUploadService(t)
		handler := handlers.NewUploadHandler(svc, cfg)

		body, contentType := multipartBody(t, map[string][]byte{"big.mp4": bytes.Repeat([]byte("x"), 3<<20)})
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/uploads", body, testutils.AdminClaims(), nil)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		handler.UploadMedia().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
		assert.Equal(t, appErrors.ErrCodePayloadTooLarge, decodeError(t, rr).Code)
		svc.AssertNotCalled(t, "SaveFiles", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Not multipart", func(t *testing.T) {
		svc := mocks.NewMockUploadService(t)
		handler := handlers.NewUploadHandler(svc, cfg)

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/uploads", strings.NewReader(`{"files":[]}`), testutils.AdminClaims(), nil)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		handler.UploadMedia().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Expected a multipart/form-data body", decodeError(t, rr).Message)
	})

	t.Run("Failure - Unsupported type from service", func(t *testing.T) {
		svc := mocks.NewMockUploadService(t)
		handler := handlers.NewUploadHandler(svc, cfg)

		svc.On("SaveFiles", mock.Anything, mock.Anything).
			Return(nil, appErrors.UnsupportedMediaTypeError("Unsupported file type text/plain")).Once()

		body, contentType := multipartBody(t, map[string][]byte{"notes.txt": []byte("hello")})
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/uploads", body, testutils.AdminClaims(), nil)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		handler.UploadMedia().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, rr.Code)
	})
}

func TestServeUploads(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "abc.png"), []byte("\x89PNG\r\n\x1a\n"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o750))

	handler := handlers.NewUploadHandler(mocks.NewMockUploadService(t), &config.Uploads{Dir: dir}).ServeUploads()

	t.Run("Existing file is cached", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/uploads/abc.png", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "public, max-age=604800, immutable", rr.Header().Get("Cache-Control"))
		assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	})

	t.Run("Missing file is not cached", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/uploads/missing.png", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Empty(t, rr.Header().Get("Cache-Control"))
	})

	t.Run("Directories are hidden", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/uploads/nested", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
