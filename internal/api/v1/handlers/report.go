// Package handlers implements the HTTP endpoints of the report API.
package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/api/errors"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/api/middleware"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/api/v1/dto"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/api/v1/services"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/model"
)

// ReportHandler handles report generation, revision, save, and listing.
type ReportHandler struct {
	service services.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(service services.ReportService) *ReportHandler {
	return &ReportHandler{
		service: service,
	}
}

// Generate handles POST /api/v1/reports/generate.
// Accepts a multipart form with optional "audio" and "image" files. At least
// one must be present.
func (h *ReportHandler) Generate(c *gin.Context) {
	audioFile, audioErr := c.FormFile("audio")
	imageFile, imageErr := c.FormFile("image")

	if audioErr != nil && imageErr != nil {
		middleware.HandleError(c, errors.NewBadRequestError("Upload an audio and/or image file."))
		return
	}

	tmpDir, err := os.MkdirTemp("", "newsly-upload-*")
	if err != nil {
		middleware.HandleError(c, errors.NewInternalError("Failed to stage uploaded files"))
		return
	}
	defer os.RemoveAll(tmpDir)

	var audioPath, imagePath string
	if audioErr == nil {
		audioPath = filepath.Join(tmpDir, filepath.Base(audioFile.Filename))
		if err := c.SaveUploadedFile(audioFile, audioPath); err != nil {
			middleware.HandleError(c, errors.NewInternalError("Failed to store uploaded audio"))
			return
		}
	}
	if imageErr == nil {
		imagePath = filepath.Join(tmpDir, filepath.Base(imageFile.Filename))
		if err := c.SaveUploadedFile(imageFile, imagePath); err != nil {
			middleware.HandleError(c, errors.NewInternalError("Failed to store uploaded image"))
			return
		}
	}

	state := h.service.Generate(c.Request.Context(), audioPath, imagePath)

	c.JSON(http.StatusOK, dto.GenerateReportResponse{
		Transcription:    state.TranscribedText,
		ImageDescription: state.ImageDescription,
		Report:           state.LatestReport(),
	})
}

// Revise handles POST /api/v1/reports/revise.
func (h *ReportHandler) Revise(c *gin.Context) {
	var req dto.ReviseReportRequest

	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	revised, err := h.service.Revise(c.Request.Context(), req.Report, req.Feedback, req.Transcription)
	if err != nil {
		middleware.HandleError(c, errors.NewServiceUnavailableError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.ReviseReportResponse{RevisedReport: revised})
}

// Save handles POST /api/v1/reports/save.
func (h *ReportHandler) Save(c *gin.Context) {
	var req dto.SaveReportRequest

	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	status := h.service.Save(c.Request.Context(), req.Report, req.Transcription, req.ImageDescription)

	c.JSON(http.StatusOK, dto.SaveReportResponse{
		Saved:    status.Saved,
		RecordID: status.RecordID,
		Status:   status.String(),
	})
}

// List handles GET /api/v1/reports.
func (h *ReportHandler) List(c *gin.Context) {
	records, err := h.service.List(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, errors.NewInternalError("Failed to load stored reports"))
		return
	}

	c.JSON(http.StatusOK, dto.ListReportsResponse{
		Reports: lo.Map(records, func(record model.ReportRecord, _ int) dto.ReportRecordResponse {
			return dto.NewReportRecordResponse(record)
		}),
		Total: len(records),
	})
}
