package upload

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/h1zik/ELLAVERABEAUTY/internal/api"
	"github.com/h1zik/ELLAVERABEAUTY/internal/types"
)

type UploadHandler struct {
	uploadService UploadService
	logger        *slog.Logger
}

func NewUploadHandler(uploadService UploadService, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		logger:        logger,
	}
}

// readMultipartFile pulls the "file" part out of the request. The read
// is bounded a little above the service caps so oversized uploads
// still reach the service and get a clean 413.
func readMultipartFile(r *http.Request) (string, []byte, error) {
	if err := r.ParseMultipartForm(MaxFileSize + 1); err != nil {
		return "", nil, err
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return "", nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxFileSize+1))
	if err != nil {
		return "", nil, err
	}
	return header.Filename, data, nil
}

// UploadFile godoc
// @Summary      Upload File
// @Router       /upload-file [post]
func (h *UploadHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "UploadFile"))

	filename, data, err := readMultipartFile(r)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "A multipart file field is required")
		return
	}

	result, err := h.uploadService.EncodeFile(ctx, filename, data)
	if err != nil {
		if errors.Is(err, types.ErrTooLarge) {
			api.ErrorResponse(w, r, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		l.ErrorContext(ctx, "Failed to encode file", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to process upload")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, result)
}

// UploadImage godoc
// @Summary      Upload Image
// @Router       /upload-image [post]
func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "UploadImage"))

	filename, data, err := readMultipartFile(r)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "A multipart file field is required")
		return
	}

	result, err := h.uploadService.EncodeImage(ctx, filename, data)
	if err != nil {
		if errors.Is(err, types.ErrUnsupportedMedia) {
			api.ErrorResponse(w, r, http.StatusUnsupportedMediaType, "Only PNG, JPG, JPEG, GIF and WEBP images are allowed")
			return
		}
		if errors.Is(err, types.ErrTooLarge) {
			api.ErrorResponse(w, r, http.StatusRequestEntityTooLarge, "Image too large")
			return
		}
		l.ErrorContext(ctx, "Failed to encode image", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to process upload")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, result)
}
