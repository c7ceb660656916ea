package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"warga-be-svc/internal/config"
	"warga-be-svc/internal/models"
	"warga-be-svc/internal/models/response"
	"warga-be-svc/internal/repository"
	"warga-be-svc/pkg/logger"
)

// NotConfiguredMessage is returned in place of analysis when no API key is set
const NotConfiguredMessage = "Fitur analisis AI belum dikonfigurasi. Setel GEMINI_API_KEY untuk mengaktifkannya."

// UnavailableMessage is returned in place of analysis when the call fails
const UnavailableMessage = "Analisis AI sedang tidak tersedia. Silakan coba lagi nanti."

// GeminiGenerateRequest represents the Gemini generateContent request body
type GeminiGenerateRequest struct {
	Contents []GeminiContent `json:"contents"`
}

// GeminiContent represents one content block in a Gemini request or response
type GeminiContent struct {
	Parts []GeminiPart `json:"parts"`
}

// GeminiPart represents one text part
type GeminiPart struct {
	Text string `json:"text"`
}

// GeminiGenerateResponse represents the Gemini generateContent response body
type GeminiGenerateResponse struct {
	Candidates []struct {
		Content      GeminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// GeminiClient defines the interface for text-generation calls
type GeminiClient interface {
	GenerateText(prompt string) (string, error)
	Configured() bool
}

// AnalysisService defines the interface for AI financial analysis
type AnalysisService interface {
	AnalyzeFinances() (*response.AnalysisResponse, error)
}

// analysisService implements AnalysisService
type analysisService struct {
	residentRepo repository.ResidentRepository
	expenseRepo  repository.ExpenseRepository
	gemini       GeminiClient
	monthlyDue   int64
	logger       *logger.Logger
}

// NewAnalysisService creates a new instance of AnalysisService
func NewAnalysisService(residentRepo repository.ResidentRepository, expenseRepo repository.ExpenseRepository, gemini GeminiClient, monthlyDue int64, logger *logger.Logger) AnalysisService {
	return &analysisService{
		residentRepo: residentRepo,
		expenseRepo:  expenseRepo,
		gemini:       gemini,
		monthlyDue:   monthlyDue,
		logger:       logger,
	}
}

// AnalyzeFinances builds a summary prompt from the current figures and asks
// Gemini for prose. Failures degrade to an inline explanatory message; this
// method only errors when the underlying collections cannot be read.
func (s *analysisService) AnalyzeFinances() (*response.AnalysisResponse, error) {
	if !s.gemini.Configured() {
		return &response.AnalysisResponse{Analysis: NotConfiguredMessage, Generated: false}, nil
	}

	residents, err := s.residentRepo.List()
	if err != nil {
		s.logger.WithError(err).Error("Failed to list residents for analysis")
		return nil, err
	}
	expenses, err := s.expenseRepo.List()
	if err != nil {
		s.logger.WithError(err).Error("Failed to list expenses for analysis")
		return nil, err
	}

	prompt := BuildAnalysisPrompt(residents, expenses, s.monthlyDue)

	text, err := s.gemini.GenerateText(prompt)
	if err != nil {
		s.logger.WithError(err).Error("Gemini call failed, degrading to inline message")
		return &response.AnalysisResponse{Analysis: UnavailableMessage, Generated: false}, nil
	}

	s.logger.WithField("length", len(text)).Info("Financial analysis generated")
	return &response.AnalysisResponse{Analysis: text, Generated: true}, nil
}

// BuildAnalysisPrompt renders the aggregation figures into the Indonesian
// prompt sent to the text-generation API.
func BuildAnalysisPrompt(residents []*models.Resident, expenses []*models.Expense, monthlyDue int64) string {
	summary := BuildFinancialSummary(residents, expenses, monthlyDue)
	occupancy := OccupancyBreakdown(residents)
	payments := PaymentBreakdown(residents)

	var b strings.Builder
	b.WriteString("Anda adalah bendahara paguyuban warga. Buat ringkasan keuangan singkat dalam Bahasa Indonesia ")
	b.WriteString("berdasarkan data berikut. Gunakan **teks tebal** untuk angka penting dan pisahkan poin dengan baris baru.\n\n")
	fmt.Fprintf(&b, "Jumlah warga terdaftar: %d\n", summary.TotalResidents)
	fmt.Fprintf(&b, "Total iuran wajib terkumpul: Rp %d (iuran per rumah Rp %d)\n", summary.TotalMonthlyDues, monthlyDue)
	fmt.Fprintf(&b, "Total iuran acara terkumpul: Rp %d\n", summary.TotalEventDues)
	fmt.Fprintf(&b, "Total pengeluaran: Rp %d\n", summary.TotalExpenses)
	fmt.Fprintf(&b, "Saldo kas: Rp %d\n", summary.Balance)

	b.WriteString("\nStatus hunian:\n")
	for _, item := range occupancy {
		fmt.Fprintf(&b, "- %s: %d rumah\n", item.Label, item.Count)
	}

	b.WriteString("\nStatus pembayaran:\n")
	for _, row := range payments {
		fmt.Fprintf(&b, "- %s: %d sudah, %d belum\n", row.Label, row.Paid, row.Unpaid)
	}

	b.WriteString("\nBerikan penilaian kondisi kas (surplus/defisit) dan satu saran tindak lanjut untuk pengurus.")
	return b.String()
}

// geminiClient implements GeminiClient against the Gemini REST API
type geminiClient struct {
	cfg        config.GeminiConfig
	httpClient *http.Client
	logger     *logger.Logger
}

// NewGeminiClient creates a new instance of GeminiClient
func NewGeminiClient(cfg config.GeminiConfig, logger *logger.Logger) GeminiClient {
	return &geminiClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// Configured reports whether an API key is present
func (g *geminiClient) Configured() bool {
	return g.cfg.APIKey != ""
}

// GenerateText calls the generateContent endpoint and returns the first
// candidate's text.
func (g *geminiClient) GenerateText(prompt string) (string, error) {
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.cfg.BaseURL, g.cfg.Model, g.cfg.APIKey)

	payload := GeminiGenerateRequest{
		Contents: []GeminiContent{
			{Parts: []GeminiPart{{Text: prompt}}},
		},
	}

	bodyJSON, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(bodyJSON))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.New().String()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	g.logger.WithFields(map[string]interface{}{
		"model":      g.cfg.Model,
		"request_id": requestID,
	}).Info("Sending request to Gemini")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var geminiResp GeminiGenerateResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		// If we can't parse as expected structure, try generic
		var genericResp map[string]interface{}
		if err := json.Unmarshal(body, &genericResp); err != nil {
			return "", fmt.Errorf("failed to parse response: %w", err)
		}
		g.logger.WithField("response", genericResp).Error("Unexpected Gemini response structure")
		return "", fmt.Errorf("unexpected response structure")
	}

	if resp.StatusCode != http.StatusOK {
		if geminiResp.Error != nil {
			return "", fmt.Errorf("gemini API error %d: %s", geminiResp.Error.Code, geminiResp.Error.Message)
		}
		return "", fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	if geminiResp.Error != nil {
		return "", fmt.Errorf("gemini API error %d: %s", geminiResp.Error.Code, geminiResp.Error.Message)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}
