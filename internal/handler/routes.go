package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"warga-be-svc/internal/middleware"
	"warga-be-svc/internal/service"
	"warga-be-svc/pkg/logger"
)

// SetupRoutes sets up all API routes
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	residentService service.ResidentService,
	expenseService service.ExpenseService,
	summaryService service.SummaryService,
	analysisService service.AnalysisService,
	importerService service.ImporterService,
	logger *logger.Logger,
) {
	// Initialize handlers
	authHandler := NewAuthHandler(authService, logger)
	residentHandler := NewResidentHandler(residentService, importerService, logger)
	expenseHandler := NewExpenseHandler(expenseService, logger)
	dashboardHandler := NewDashboardHandler(summaryService, analysisService, logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Mutations require an admin session token; reads are open to the
	// dashboard client.
	requireAdmin := middleware.RequireAdmin(jwtSecret, logger)

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", HealthCheck)

		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
		}

		// Resident routes
		residents := v1.Group("/residents")
		{
			residents.GET("", residentHandler.ListResidents)
			residents.POST("", requireAdmin, residentHandler.CreateResident)
			residents.PUT("/:id", requireAdmin, residentHandler.UpdateResident)
			residents.DELETE("/:id", requireAdmin, residentHandler.DeleteResident)
			residents.POST("/import", requireAdmin, residentHandler.ImportResidents)
			residents.GET("/template", residentHandler.DownloadTemplate)
		}

		// Expense routes
		expenses := v1.Group("/expenses")
		{
			expenses.GET("", expenseHandler.ListExpenses)
			expenses.POST("", requireAdmin, expenseHandler.CreateExpense)
			expenses.DELETE("/:id", requireAdmin, expenseHandler.DeleteExpense)
		}

		// Dashboard routes
		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/summary", dashboardHandler.GetFinancialSummary)
			dashboard.GET("/occupancy", dashboardHandler.GetOccupancyBreakdown)
			dashboard.GET("/payments", dashboardHandler.GetPaymentBreakdown)
			dashboard.GET("/analysis", dashboardHandler.GetAnalysis)
		}
	}
}

func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "Warga Backend Service",
	})
}
