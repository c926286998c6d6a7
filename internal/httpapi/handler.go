package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ironsheep/textswap/internal/imaging"
	"github.com/ironsheep/textswap/internal/pipeline"
)

// Submitter runs one uploaded image through the translation pipeline.
type Submitter interface {
	Submit(ctx context.Context, sub pipeline.Submission) (*pipeline.Result, error)
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// UploadHandler serves POST /upload.
type UploadHandler struct {
	submitter Submitter
	maxSize   int64
	logger    *zap.Logger
}

func NewUploadHandler(submitter Submitter, maxSize int64, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		submitter: submitter,
		maxSize:   maxSize,
		logger:    logger,
	}
}

// Upload reads the multipart field "file", runs the pipeline and answers
// with the result payload.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		h.logger.Warn("failed to get uploaded file", zap.Error(err))
		fail(c, http.StatusBadRequest, "no image uploaded: send the image in form field \"file\"")
		return
	}

	if file.Size > h.maxSize {
		fail(c, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("file too large: limit is %d MB", h.maxSize/(1024*1024)))
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !isAllowedType(contentType) {
		fail(c, http.StatusUnsupportedMediaType,
			fmt.Sprintf("unsupported file type %q: upload an image", contentType))
		return
	}

	f, err := file.Open()
	if err != nil {
		h.logger.Error("failed to open upload", zap.Error(err))
		fail(c, http.StatusInternalServerError, "failed to read upload")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxSize+1))
	if err != nil {
		h.logger.Error("failed to read upload", zap.Error(err))
		fail(c, http.StatusInternalServerError, "failed to read upload")
		return
	}

	h.logger.Info("file uploaded",
		zap.String("filename", file.Filename),
		zap.String("content_type", contentType),
		zap.Int64("size", file.Size),
	)

	result, err := h.submitter.Submit(c.Request.Context(), pipeline.Submission{
		Data:        data,
		Filename:    file.Filename,
		ContentType: contentType,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, imaging.ErrUndecodable) {
			status = http.StatusBadRequest
		}
		h.logger.Error("failed to process image",
			zap.String("filename", file.Filename),
			zap.Error(err),
		)
		fail(c, status, err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}

// isAllowedType accepts image types and undeclared types; the decoder has
// the final say.
func isAllowedType(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mediaType, "image/") || mediaType == "application/octet-stream"
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorResponse{Success: false, Error: msg})
}
