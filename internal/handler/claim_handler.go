package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fnolrouter/internal/domain"
	"fnolrouter/internal/middleware"
	"fnolrouter/internal/service"
	"fnolrouter/internal/storage/s3"
)

// multipartOverhead is the body allowance on top of the file limit for form boundaries and headers.
const multipartOverhead = 1 << 20

// ProcessTextRequest is the body of POST /api/v1/claims/text.
type ProcessTextRequest struct {
	// Filename is optional and only used as a claim type hint.
	Filename string `json:"filename" example:"fnol_theft_claim.txt"`
	Text     string `json:"text" example:"POLICY NUMBER: POL-1\nDATE OF LOSS: 05/01/2024"`
}

// ProcessObjectRequest is the body of POST /api/v1/claims/s3.
type ProcessObjectRequest struct {
	URI string `json:"uri" binding:"required" example:"s3://claims-inbox/fnol_small_claim.pdf"`
}

// ClaimHandler handles FNOL processing endpoints.
type ClaimHandler struct {
	claimService service.ClaimService
	maxBytes     int64
}

// NewClaimHandler creates a new ClaimHandler. maxBytes bounds uploaded files.
func NewClaimHandler(claimService service.ClaimService, maxBytes int64) *ClaimHandler {
	return &ClaimHandler{claimService: claimService, maxBytes: maxBytes}
}

// Upload handles POST /api/v1/claims
// @Summary Process an uploaded FNOL document
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "FNOL document (txt or pdf)"
// @Success 200 {object} APIResponse{data=domain.ClaimReport}
// @Failure 400 {object} APIResponse "Missing file or unsupported format"
// @Failure 413 {object} APIResponse "File too large"
// @Router /claims [post]
func (h *ClaimHandler) Upload(c *gin.Context) {
	if h.maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			HandleError(c, domain.ErrFileTooLarge)
			return
		}
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	if h.maxBytes > 0 && header.Size > h.maxBytes {
		HandleError(c, domain.ErrFileTooLarge)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		middleware.GetLogger(c).Warn("reading upload failed", zap.String("filename", header.Filename), zap.Error(err))
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "could not read uploaded file")
		return
	}

	report, err := h.claimService.ProcessUpload(c.Request.Context(), header.Filename, data)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}

// ProcessText handles POST /api/v1/claims/text
// @Summary Process FNOL text that has already been extracted
// @Accept json
// @Produce json
// @Param body body ProcessTextRequest true "Document text"
// @Success 200 {object} APIResponse{data=domain.ClaimReport}
// @Failure 400 {object} APIResponse "Invalid request body"
// @Router /claims/text [post]
func (h *ClaimHandler) ProcessText(c *gin.Context) {
	var req ProcessTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	report, err := h.claimService.ProcessText(c.Request.Context(), req.Filename, req.Text)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}

// ProcessObject handles POST /api/v1/claims/s3
// @Summary Process an FNOL document held in S3
// @Accept json
// @Produce json
// @Param body body ProcessObjectRequest true "Object URI"
// @Success 200 {object} APIResponse{data=domain.ClaimReport}
// @Failure 400 {object} APIResponse "Invalid URI or unsupported format"
// @Failure 404 {object} APIResponse "Object not found"
// @Router /claims/s3 [post]
func (h *ClaimHandler) ProcessObject(c *gin.Context) {
	var req ProcessObjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	// ProcessFile also reads local paths; this endpoint must only reach object storage.
	if !s3.IsURI(req.URI) {
		HandleError(c, domain.ErrInvalidSource)
		return
	}

	report, err := h.claimService.ProcessFile(c.Request.Context(), req.URI)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}
