package service

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"warga-be-svc/internal/config"
	"warga-be-svc/internal/models"
)

// fakeGemini is a canned GeminiClient for analysis tests
type fakeGemini struct {
	configured bool
	text       string
	err        error
}

func (f *fakeGemini) GenerateText(prompt string) (string, error) {
	return f.text, f.err
}

func (f *fakeGemini) Configured() bool {
	return f.configured
}

func TestAnalyzeFinances_NotConfigured(t *testing.T) {
	svc := NewAnalysisService(&fakeResidentRepo{}, &fakeExpenseRepo{}, &fakeGemini{configured: false}, 10000, testLogger())

	result, err := svc.AnalyzeFinances()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Generated {
		t.Error("Generated should be false when no API key is configured")
	}
	if result.Analysis != NotConfiguredMessage {
		t.Errorf("Analysis = %q, want %q", result.Analysis, NotConfiguredMessage)
	}
}

func TestAnalyzeFinances_Success(t *testing.T) {
	gemini := &fakeGemini{configured: true, text: "Kas dalam kondisi **surplus**."}
	svc := NewAnalysisService(&fakeResidentRepo{}, &fakeExpenseRepo{}, gemini, 10000, testLogger())

	result, err := svc.AnalyzeFinances()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Generated {
		t.Error("Generated should be true on success")
	}
	if result.Analysis != gemini.text {
		t.Errorf("Analysis = %q, want %q", result.Analysis, gemini.text)
	}
}

func TestAnalyzeFinances_DegradesOnGeminiFailure(t *testing.T) {
	gemini := &fakeGemini{configured: true, err: errors.New("timeout")}
	svc := NewAnalysisService(&fakeResidentRepo{}, &fakeExpenseRepo{}, gemini, 10000, testLogger())

	result, err := svc.AnalyzeFinances()
	if err != nil {
		t.Fatalf("a generation failure must not surface as an error, got: %v", err)
	}
	if result.Generated {
		t.Error("Generated should be false on generation failure")
	}
	if result.Analysis != UnavailableMessage {
		t.Errorf("Analysis = %q, want %q", result.Analysis, UnavailableMessage)
	}
}

func TestAnalyzeFinances_PropagatesRepositoryError(t *testing.T) {
	dbErr := errors.New("connection refused")
	svc := NewAnalysisService(&fakeResidentRepo{listErr: dbErr}, &fakeExpenseRepo{}, &fakeGemini{configured: true}, 10000, testLogger())

	if _, err := svc.AnalyzeFinances(); !errors.Is(err, dbErr) {
		t.Errorf("AnalyzeFinances error = %v, want %v", err, dbErr)
	}
}

func TestBuildAnalysisPrompt(t *testing.T) {
	residents := []*models.Resident{
		{FullName: "A", MonthlyDuesPaid: true, EventDuesAmount: 25000, OccupancyStatus: models.StatusMenetap},
		{FullName: "B", OccupancyStatus: models.StatusPenyewa},
	}
	expenses := []*models.Expense{
		{Description: "Perbaikan pagar", Amount: 15000},
	}

	prompt := BuildAnalysisPrompt(residents, expenses, 10000)

	for _, want := range []string{
		"Jumlah warga terdaftar: 2",
		"Total iuran wajib terkumpul: Rp 10000",
		"Total iuran acara terkumpul: Rp 25000",
		"Total pengeluaran: Rp 15000",
		"Saldo kas: Rp 20000",
		models.StatusMenetap,
		models.StatusPenyewa,
		"Iuran Wajib",
		"Iuran Acara",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestGeminiClient_GenerateText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if !strings.Contains(r.URL.Path, ":generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("key = %q, want test-key", r.URL.Query().Get("key"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Kas surplus."}]},"finishReason":"STOP"}]}`))
	}))
	defer server.Close()

	client := NewGeminiClient(config.GeminiConfig{APIKey: "test-key", BaseURL: server.URL, Model: "gemini-1.5-flash"}, testLogger())

	text, err := client.GenerateText("ringkas keuangan")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Kas surplus." {
		t.Errorf("text = %q, want %q", text, "Kas surplus.")
	}
}

func TestGeminiClient_GenerateText_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
	}))
	defer server.Close()

	client := NewGeminiClient(config.GeminiConfig{APIKey: "bad-key", BaseURL: server.URL, Model: "gemini-1.5-flash"}, testLogger())

	if _, err := client.GenerateText("ringkas keuangan"); err == nil {
		t.Fatal("expected error for API error response")
	}
}

func TestGeminiClient_GenerateText_NonOKWithoutErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"message":"upstream unavailable"}`))
	}))
	defer server.Close()

	client := NewGeminiClient(config.GeminiConfig{APIKey: "test-key", BaseURL: server.URL, Model: "gemini-1.5-flash"}, testLogger())

	_, err := client.GenerateText("ringkas keuangan")
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
	if !strings.Contains(err.Error(), "502") {
		t.Errorf("error should report the status code, got: %v", err)
	}
}

func TestGeminiClient_GenerateText_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	client := NewGeminiClient(config.GeminiConfig{APIKey: "test-key", BaseURL: server.URL, Model: "gemini-1.5-flash"}, testLogger())

	if _, err := client.GenerateText("ringkas keuangan"); err == nil {
		t.Fatal("expected error for empty candidates")
	}
}

func TestGeminiClient_Configured(t *testing.T) {
	withKey := NewGeminiClient(config.GeminiConfig{APIKey: "x"}, testLogger())
	if !withKey.Configured() {
		t.Error("client with API key should report configured")
	}
	withoutKey := NewGeminiClient(config.GeminiConfig{}, testLogger())
	if withoutKey.Configured() {
		t.Error("client without API key should not report configured")
	}
}
