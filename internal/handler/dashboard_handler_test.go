package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"warga-be-svc/internal/models/response"
	"warga-be-svc/pkg/logger"
	"warga-be-svc/pkg/utils"
)

// fakeSummaryService returns canned aggregation results for handler tests
type fakeSummaryService struct {
	summary   *response.FinancialSummaryResponse
	occupancy []response.BreakdownItem
	payments  []response.PaymentBreakdownRow
	err       error
}

func (f *fakeSummaryService) GetFinancialSummary() (*response.FinancialSummaryResponse, error) {
	return f.summary, f.err
}

func (f *fakeSummaryService) GetOccupancyBreakdown() ([]response.BreakdownItem, error) {
	return f.occupancy, f.err
}

func (f *fakeSummaryService) GetPaymentBreakdown() ([]response.PaymentBreakdownRow, error) {
	return f.payments, f.err
}

// fakeAnalysisService returns a canned analysis for handler tests
type fakeAnalysisService struct {
	analysis *response.AnalysisResponse
	err      error
}

func (f *fakeAnalysisService) AnalyzeFinances() (*response.AnalysisResponse, error) {
	return f.analysis, f.err
}

func newDashboardRouter(summary *fakeSummaryService, analysis *fakeAnalysisService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewLogger("error", "text")
	h := NewDashboardHandler(summary, analysis, log)

	router := gin.New()
	router.GET("/dashboard/summary", h.GetFinancialSummary)
	router.GET("/dashboard/occupancy", h.GetOccupancyBreakdown)
	router.GET("/dashboard/payments", h.GetPaymentBreakdown)
	router.GET("/dashboard/analysis", h.GetAnalysis)
	return router
}

func TestGetFinancialSummary(t *testing.T) {
	summary := &fakeSummaryService{summary: &response.FinancialSummaryResponse{
		TotalResidents:   2,
		TotalMonthlyDues: 10000,
		TotalEventDues:   25000,
		TotalExpenses:    15000,
		Balance:          20000,
	}}
	router := newDashboardRouter(summary, &fakeAnalysisService{})

	req := httptest.NewRequest(http.MethodGet, "/dashboard/summary", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var envelope utils.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("body is not a response envelope: %v", err)
	}
	if !envelope.Success {
		t.Error("envelope should report success")
	}
	data, ok := envelope.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data has unexpected shape: %T", envelope.Data)
	}
	if data["balance"] != float64(20000) {
		t.Errorf("balance = %v, want 20000", data["balance"])
	}
}

func TestGetFinancialSummary_RepositoryFailure(t *testing.T) {
	router := newDashboardRouter(&fakeSummaryService{err: errors.New("connection refused")}, &fakeAnalysisService{})

	req := httptest.NewRequest(http.MethodGet, "/dashboard/summary", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}

func TestGetAnalysis_DegradedStillOK(t *testing.T) {
	analysis := &fakeAnalysisService{analysis: &response.AnalysisResponse{
		Analysis:  "Fitur analisis AI belum dikonfigurasi. Setel GEMINI_API_KEY untuk mengaktifkannya.",
		Generated: false,
	}}
	router := newDashboardRouter(&fakeSummaryService{}, analysis)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/analysis", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("degraded analysis should still be 200, got %d", w.Code)
	}
}
