package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"warga-be-svc/internal/models"
	"warga-be-svc/internal/repository"
	"warga-be-svc/internal/service"
	"warga-be-svc/pkg/logger"
	"warga-be-svc/pkg/utils"
)

// ExpenseRequest represents the payload for creating an expense
type ExpenseRequest struct {
	Description string    `json:"description" binding:"required"`
	Amount      int64     `json:"amount"`
	Date        time.Time `json:"date" binding:"required"`
	Category    string    `json:"category" binding:"required"`
}

// ExpenseHandler handles expense-related HTTP requests
type ExpenseHandler struct {
	expenseService service.ExpenseService
	logger         *logger.Logger
}

// NewExpenseHandler creates a new ExpenseHandler instance
func NewExpenseHandler(expenseService service.ExpenseService, logger *logger.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		logger:         logger,
	}
}

// ListExpenses handles GET /api/v1/expenses
// @Summary List expenses
// @Description Get all expenses ordered by date descending
// @Tags expenses
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]models.Expense} "Expenses retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	expenses, err := h.expenseService.ListExpenses()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list expenses")
		utils.InternalServerErrorResponse(c, "Failed to retrieve expenses", err)
		return
	}

	utils.SuccessResponse(c, "Expenses retrieved successfully", expenses)
}

// CreateExpense handles POST /api/v1/expenses
// @Summary Create expense
// @Description Create a new ledger expense entry after rule-based validation
// @Tags expenses
// @Accept json
// @Produce json
// @Param request body ExpenseRequest true "Expense payload"
// @Success 201 {object} utils.APIResponse{data=models.Expense} "Expense created"
// @Failure 400 {object} utils.APIResponse "Invalid request body"
// @Failure 422 {object} utils.APIResponse "Validation errors"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	expense, err := h.expenseService.CreateExpense(&models.Expense{
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
		Category:    req.Category,
	})
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			utils.UnprocessableEntityResponse(c, "Validasi gagal", vErr.Errors)
			return
		}
		h.logger.WithError(err).Error("Failed to create expense")
		utils.InternalServerErrorResponse(c, "Failed to create expense", err)
		return
	}

	utils.CreatedResponse(c, "Expense created successfully", expense)
}

// DeleteExpense handles DELETE /api/v1/expenses/:id
// @Summary Delete expense
// @Description Delete an expense by id
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path int true "Expense ID"
// @Success 200 {object} utils.APIResponse "Expense deleted"
// @Failure 400 {object} utils.APIResponse "Invalid ID"
// @Failure 404 {object} utils.APIResponse "Expense not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id, ok := parseIDParam(c, h.logger)
	if !ok {
		return
	}

	if err := h.expenseService.DeleteExpense(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFoundResponse(c, "Expense not found")
			return
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete expense")
		utils.InternalServerErrorResponse(c, "Failed to delete expense", err)
		return
	}

	utils.SuccessResponse(c, "Expense deleted successfully", nil)
}
