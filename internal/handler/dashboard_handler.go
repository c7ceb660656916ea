package handler

import (
	"github.com/gin-gonic/gin"

	"warga-be-svc/internal/service"
	"warga-be-svc/pkg/logger"
	"warga-be-svc/pkg/utils"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	summaryService  service.SummaryService
	analysisService service.AnalysisService
	logger          *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(summaryService service.SummaryService, analysisService service.AnalysisService, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		summaryService:  summaryService,
		analysisService: analysisService,
		logger:          logger,
	}
}

// GetFinancialSummary handles GET /api/v1/dashboard/summary
// @Summary Get financial summary
// @Description Get the derived financial summary: total residents, monthly dues, event dues, expenses and balance. Recomputed on every call.
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response.FinancialSummaryResponse} "Financial summary retrieved"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/dashboard/summary [get]
func (h *DashboardHandler) GetFinancialSummary(c *gin.Context) {
	summary, err := h.summaryService.GetFinancialSummary()
	if err != nil {
		h.logger.WithError(err).Error("Failed to get financial summary")
		utils.InternalServerErrorResponse(c, "Failed to retrieve financial summary", err)
		return
	}

	utils.SuccessResponse(c, "Financial summary retrieved successfully", summary)
}

// GetOccupancyBreakdown handles GET /api/v1/dashboard/occupancy
// @Summary Get occupancy breakdown
// @Description Get resident counts per occupancy status. Unknown statuses land in the "Lainnya" bucket; zero-count entries are omitted.
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]response.BreakdownItem} "Occupancy breakdown retrieved"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/dashboard/occupancy [get]
func (h *DashboardHandler) GetOccupancyBreakdown(c *gin.Context) {
	breakdown, err := h.summaryService.GetOccupancyBreakdown()
	if err != nil {
		h.logger.WithError(err).Error("Failed to get occupancy breakdown")
		utils.InternalServerErrorResponse(c, "Failed to retrieve occupancy breakdown", err)
		return
	}

	utils.SuccessResponse(c, "Occupancy breakdown retrieved successfully", breakdown)
}

// GetPaymentBreakdown handles GET /api/v1/dashboard/payments
// @Summary Get payment breakdown
// @Description Get paid-vs-unpaid counts for mandatory monthly dues and voluntary event dues
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]response.PaymentBreakdownRow} "Payment breakdown retrieved"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/dashboard/payments [get]
func (h *DashboardHandler) GetPaymentBreakdown(c *gin.Context) {
	breakdown, err := h.summaryService.GetPaymentBreakdown()
	if err != nil {
		h.logger.WithError(err).Error("Failed to get payment breakdown")
		utils.InternalServerErrorResponse(c, "Failed to retrieve payment breakdown", err)
		return
	}

	utils.SuccessResponse(c, "Payment breakdown retrieved successfully", breakdown)
}

// GetAnalysis handles GET /api/v1/dashboard/analysis
// @Summary Get AI financial analysis
// @Description Get generated prose summarizing the financial position. Always 200: a missing API key or upstream failure degrades to an inline explanatory message.
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response.AnalysisResponse} "Analysis retrieved"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/dashboard/analysis [get]
func (h *DashboardHandler) GetAnalysis(c *gin.Context) {
	analysis, err := h.analysisService.AnalyzeFinances()
	if err != nil {
		h.logger.WithError(err).Error("Failed to analyze finances")
		utils.InternalServerErrorResponse(c, "Failed to retrieve analysis", err)
		return
	}

	utils.SuccessResponse(c, "Analysis retrieved successfully", analysis)
}
