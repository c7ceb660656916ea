package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"warga-be-svc/internal/models"
	"warga-be-svc/internal/repository"
	"warga-be-svc/internal/service"
	"warga-be-svc/pkg/logger"
	"warga-be-svc/pkg/utils"
)

// ResidentRequest represents the payload for creating a resident
type ResidentRequest struct {
	FullName        string `json:"full_name" binding:"required"`
	BlockNumber     string `json:"block_number" binding:"required"`
	Whatsapp        string `json:"whatsapp"`
	OccupancyStatus string `json:"occupancy_status"`
	MonthlyDuesPaid bool   `json:"monthly_dues_paid"`
	EventDuesAmount int64  `json:"event_dues_amount"`
	Notes           string `json:"notes"`
}

// ResidentUpdateRequest represents the payload for replacing a resident.
// UpdatedAt must carry the value the caller last read; a stale value means
// another writer got there first and the update is refused with 409.
type ResidentUpdateRequest struct {
	ResidentRequest
	UpdatedAt time.Time `json:"updated_at" binding:"required"`
}

// ResidentHandler handles resident-related HTTP requests
type ResidentHandler struct {
	residentService service.ResidentService
	importerService service.ImporterService
	logger          *logger.Logger
}

// NewResidentHandler creates a new ResidentHandler instance
func NewResidentHandler(residentService service.ResidentService, importerService service.ImporterService, logger *logger.Logger) *ResidentHandler {
	return &ResidentHandler{
		residentService: residentService,
		importerService: importerService,
		logger:          logger,
	}
}

func (r *ResidentRequest) toModel() *models.Resident {
	return &models.Resident{
		FullName:        r.FullName,
		BlockNumber:     r.BlockNumber,
		Whatsapp:        r.Whatsapp,
		OccupancyStatus: r.OccupancyStatus,
		MonthlyDuesPaid: r.MonthlyDuesPaid,
		EventDuesAmount: r.EventDuesAmount,
		Notes:           r.Notes,
	}
}

// ListResidents handles GET /api/v1/residents
// @Summary List residents
// @Description Get all residents ordered by block number ascending
// @Tags residents
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]models.Resident} "Residents retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/residents [get]
func (h *ResidentHandler) ListResidents(c *gin.Context) {
	residents, err := h.residentService.ListResidents()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list residents")
		utils.InternalServerErrorResponse(c, "Failed to retrieve residents", err)
		return
	}

	utils.SuccessResponse(c, "Residents retrieved successfully", residents)
}

// CreateResident handles POST /api/v1/residents
// @Summary Create resident
// @Description Create a new resident after rule-based validation
// @Tags residents
// @Accept json
// @Produce json
// @Param request body ResidentRequest true "Resident payload"
// @Success 201 {object} utils.APIResponse{data=models.Resident} "Resident created"
// @Failure 400 {object} utils.APIResponse "Invalid request body"
// @Failure 422 {object} utils.APIResponse "Validation errors"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/residents [post]
func (h *ResidentHandler) CreateResident(c *gin.Context) {
	var req ResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	resident, err := h.residentService.CreateResident(req.toModel())
	if err != nil {
		h.respondError(c, err, "Failed to create resident")
		return
	}

	utils.CreatedResponse(c, "Resident created successfully", resident)
}

// UpdateResident handles PUT /api/v1/residents/:id
// @Summary Replace resident
// @Description Full-record replace of a resident. The updated_at field must match the last-read value; mismatch returns 409 so the caller refreshes.
// @Tags residents
// @Accept json
// @Produce json
// @Param id path int true "Resident ID"
// @Param request body ResidentUpdateRequest true "Resident payload with last-seen updated_at"
// @Success 200 {object} utils.APIResponse{data=models.Resident} "Resident updated"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Resident not found"
// @Failure 409 {object} utils.APIResponse "Concurrent modification"
// @Failure 422 {object} utils.APIResponse "Validation errors"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/residents/{id} [put]
func (h *ResidentHandler) UpdateResident(c *gin.Context) {
	id, ok := parseIDParam(c, h.logger)
	if !ok {
		return
	}

	var req ResidentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	resident, err := h.residentService.UpdateResident(id, req.toModel(), req.UpdatedAt)
	if err != nil {
		h.respondError(c, err, "Failed to update resident")
		return
	}

	utils.SuccessResponse(c, "Resident updated successfully", resident)
}

// DeleteResident handles DELETE /api/v1/residents/:id
// @Summary Delete resident
// @Description Delete a resident by id. No soft delete, no audit trail.
// @Tags residents
// @Accept json
// @Produce json
// @Param id path int true "Resident ID"
// @Success 200 {object} utils.APIResponse "Resident deleted"
// @Failure 400 {object} utils.APIResponse "Invalid ID"
// @Failure 404 {object} utils.APIResponse "Resident not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/residents/{id} [delete]
func (h *ResidentHandler) DeleteResident(c *gin.Context) {
	id, ok := parseIDParam(c, h.logger)
	if !ok {
		return
	}

	if err := h.residentService.DeleteResident(id); err != nil {
		h.respondError(c, err, "Failed to delete resident")
		return
	}

	utils.SuccessResponse(c, "Resident deleted successfully", nil)
}

// ImportResidents handles POST /api/v1/residents/import
// @Summary Import residents from spreadsheet
// @Description Upload an xlsx file (multipart field `file`). Columns are matched by alias; the whole import succeeds or fails as one batch.
// @Tags residents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Spreadsheet file"
// @Success 200 {object} utils.APIResponse{data=response.ImportResponse} "Import result"
// @Failure 400 {object} utils.APIResponse "File missing or not a readable spreadsheet"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/residents/import [post]
func (h *ResidentHandler) ImportResidents(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		h.logger.WithError(err).Error("Failed to get file from form")
		utils.BadRequestResponse(c, "File is required", err)
		return
	}

	opened, err := file.Open()
	if err != nil {
		h.logger.WithError(err).Error("Failed to open uploaded file")
		utils.InternalServerErrorResponse(c, "Failed to read file", err)
		return
	}
	defer opened.Close()

	content, err := io.ReadAll(opened)
	if err != nil {
		h.logger.WithError(err).Error("Failed to read file content")
		utils.InternalServerErrorResponse(c, "Failed to read file", err)
		return
	}

	result, err := h.importerService.ImportResidents(content)
	if err != nil {
		h.logger.WithError(err).WithField("filename", file.Filename).Error("Import failed")
		// One notification for the whole file; no row-level partial success.
		utils.BadRequestResponse(c, "Import gagal: berkas tidak dapat diproses", err)
		return
	}

	utils.SuccessResponse(c, "Residents imported successfully", result)
}

// DownloadTemplate handles GET /api/v1/residents/template
// @Summary Download import template
// @Description Download the single-sheet xlsx import template with one example row
// @Tags residents
// @Accept json
// @Produce octet-stream
// @Success 200 {file} file "The template file"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/residents/template [get]
func (h *ResidentHandler) DownloadTemplate(c *gin.Context) {
	content, filename, err := h.importerService.BuildTemplate()
	if err != nil {
		h.logger.WithError(err).Error("Failed to build template")
		utils.InternalServerErrorResponse(c, "Failed to build template", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}

// respondError maps service errors onto the response envelope
func (h *ResidentHandler) respondError(c *gin.Context, err error, message string) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		utils.UnprocessableEntityResponse(c, "Validasi gagal", vErr.Errors)
	case errors.Is(err, repository.ErrNotFound):
		utils.NotFoundResponse(c, "Resident not found")
	case errors.Is(err, repository.ErrConflict):
		utils.ConflictResponse(c, "Data warga sudah berubah, muat ulang terlebih dahulu", err)
	default:
		h.logger.WithError(err).Error(message)
		utils.InternalServerErrorResponse(c, message, err)
	}
}
