package handlers

import (
	stdErrors "errors"
	"log/slog"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/aaravmahajanofficial/templatehub/internal/api/middleware"
	"github.com/aaravmahajanofficial/templatehub/internal/config"
	"github.com/aaravmahajanofficial/templatehub/internal/errors"
	service "github.com/aaravmahajanofficial/templatehub/internal/services"
	"github.com/aaravmahajanofficial/templatehub/internal/utils/response"
)

const (
	uploadFormField      = "files"
	multipartMemoryBytes = 32 << 20
	multipartOverhead    = 1 << 20
)

type UploadHandler struct {
	uploadService service.UploadService
	cfg           *config.Uploads
}

func NewUploadHandler(uploadService service.UploadService, cfg *config.Uploads) *UploadHandler {
	return &UploadHandler{uploadService: uploadService, cfg: cfg}
}

// UploadMedia godoc
//
//	@Summary		Upload media
//	@Description	Stores images and videos sent as multipart "files" fields.
//	@Tags			Uploads
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			files	formData	file					true	"Image or video files"
//	@Success		201		{object}	models.UploadResponse	"Stored files"
//	@Failure		400		{object}	response.ErrorResponse	"No files"
//	@Failure		413		{object}	response.ErrorResponse	"Too many or too large files"
//	@Failure		415		{object}	response.ErrorResponse	"Unsupported file type"
//	@Security		BearerAuth
//	@Router			/uploads [post]
func (h *UploadHandler) UploadMedia() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		limit := int64(h.cfg.MaxFiles)*h.cfg.MaxUploadBytes() + multipartOverhead
		r.Body = http.MaxBytesReader(w, r.Body, limit)

		if err := r.ParseMultipartForm(multipartMemoryBytes); err != nil {
			var maxBytesErr *http.MaxBytesError
			if stdErrors.As(err, &maxBytesErr) {
				logger.Warn("Upload body too large", slog.Int64("limit", maxBytesErr.Limit))
				response.Error(w, errors.PayloadTooLargeError("Upload exceeds the allowed size"))
				return
			}
			logger.Warn("Invalid multipart upload", slog.String("error", err.Error()))
			response.Error(w, errors.BadRequestError("Expected a multipart/form-data body").WithError(err))
			return
		}
		defer func() { _ = r.MultipartForm.RemoveAll() }()

		result, err := h.uploadService.SaveFiles(r.Context(), r.MultipartForm.File[uploadFormField])
		if err != nil {
			logger.Warn("Upload rejected", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, result)
	}
}

// ServeUploads serves stored media with long-lived caching. File names are
// unique per upload, so content under a URL never changes.
func (h *UploadHandler) ServeUploads() http.Handler {
	fsys := noDirFS{http.Dir(h.cfg.Dir)}
	files := http.StripPrefix(strings.TrimSuffix(service.UploadURLPrefix, "/"), http.FileServer(fsys))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")

		// Misses must not be cached as immutable.
		name := path.Clean("/" + strings.TrimPrefix(r.URL.Path, service.UploadURLPrefix))
		if f, err := fsys.Open(name); err == nil {
			_ = f.Close()
			w.Header().Set("Cache-Control", "public, max-age=604800, immutable")
		}

		files.ServeHTTP(w, r)
	})
}

// noDirFS hides directory listings.
type noDirFS struct {
	fs http.FileSystem
}

func (n noDirFS) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}

	stat, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if stat.IsDir() {
		_ = f.Close()
		return nil, os.ErrNotExist
	}

	return f, nil
}
