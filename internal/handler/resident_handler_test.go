package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"warga-be-svc/internal/models"
	"warga-be-svc/internal/models/response"
	"warga-be-svc/internal/repository"
	"warga-be-svc/internal/service"
	"warga-be-svc/pkg/logger"
)

// fakeResidentService returns canned results for handler tests
type fakeResidentService struct {
	residents []*models.Resident
	err       error
}

func (f *fakeResidentService) ListResidents() ([]*models.Resident, error) {
	return f.residents, f.err
}

func (f *fakeResidentService) CreateResident(resident *models.Resident) (*models.Resident, error) {
	if f.err != nil {
		return nil, f.err
	}
	resident.ID = 1
	return resident, nil
}

func (f *fakeResidentService) UpdateResident(id uint, resident *models.Resident, expectedUpdatedAt time.Time) (*models.Resident, error) {
	if f.err != nil {
		return nil, f.err
	}
	resident.ID = id
	return resident, nil
}

func (f *fakeResidentService) DeleteResident(id uint) error {
	return f.err
}

// fakeImporterService returns canned results for handler tests
type fakeImporterService struct {
	result *response.ImportResponse
	err    error
}

func (f *fakeImporterService) ImportResidents(fileContent []byte) (*response.ImportResponse, error) {
	return f.result, f.err
}

func (f *fakeImporterService) BuildTemplate() ([]byte, string, error) {
	return []byte("xlsx-bytes"), "template_import_warga_20260831.xlsx", f.err
}

func newResidentRouter(residentService service.ResidentService, importerService service.ImporterService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewLogger("error", "text")
	h := NewResidentHandler(residentService, importerService, log)

	router := gin.New()
	router.GET("/residents", h.ListResidents)
	router.POST("/residents", h.CreateResident)
	router.PUT("/residents/:id", h.UpdateResident)
	router.DELETE("/residents/:id", h.DeleteResident)
	router.POST("/residents/import", h.ImportResidents)
	router.GET("/residents/template", h.DownloadTemplate)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateResident_Created(t *testing.T) {
	router := newResidentRouter(&fakeResidentService{}, &fakeImporterService{})

	w := doJSON(t, router, http.MethodPost, "/residents", gin.H{
		"full_name":    "Budi Santoso",
		"block_number": "B3-12",
	})

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d (body: %s)", w.Code, http.StatusCreated, w.Body.String())
	}
}

func TestCreateResident_MissingRequiredFields(t *testing.T) {
	router := newResidentRouter(&fakeResidentService{}, &fakeImporterService{})

	w := doJSON(t, router, http.MethodPost, "/residents", gin.H{"full_name": "Budi"})

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestCreateResident_ValidationErrors(t *testing.T) {
	svc := &fakeResidentService{err: &service.ValidationError{Errors: []string{"Blok harus diawali huruf"}}}
	router := newResidentRouter(svc, &fakeImporterService{})

	w := doJSON(t, router, http.MethodPost, "/residents", gin.H{
		"full_name":    "Budi Santoso",
		"block_number": "Blok 5",
	})

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want %d (body: %s)", w.Code, http.StatusUnprocessableEntity, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Blok harus diawali huruf") {
		t.Errorf("body should carry the itemized messages: %s", w.Body.String())
	}
}

func TestUpdateResident_Conflict(t *testing.T) {
	svc := &fakeResidentService{err: repository.ErrConflict}
	router := newResidentRouter(svc, &fakeImporterService{})

	w := doJSON(t, router, http.MethodPut, "/residents/1", gin.H{
		"full_name":    "Budi Santoso",
		"block_number": "B3-12",
		"updated_at":   time.Now().Format(time.RFC3339),
	})

	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want %d (body: %s)", w.Code, http.StatusConflict, w.Body.String())
	}
}

func TestUpdateResident_RequiresUpdatedAt(t *testing.T) {
	router := newResidentRouter(&fakeResidentService{}, &fakeImporterService{})

	w := doJSON(t, router, http.MethodPut, "/residents/1", gin.H{
		"full_name":    "Budi Santoso",
		"block_number": "B3-12",
	})

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestUpdateResident_NotFound(t *testing.T) {
	svc := &fakeResidentService{err: repository.ErrNotFound}
	router := newResidentRouter(svc, &fakeImporterService{})

	w := doJSON(t, router, http.MethodPut, "/residents/99", gin.H{
		"full_name":    "Budi Santoso",
		"block_number": "B3-12",
		"updated_at":   time.Now().Format(time.RFC3339),
	})

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestDeleteResident_InvalidID(t *testing.T) {
	router := newResidentRouter(&fakeResidentService{}, &fakeImporterService{})

	w := doJSON(t, router, http.MethodDelete, "/residents/abc", nil)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestDeleteResident_NotFound(t *testing.T) {
	svc := &fakeResidentService{err: repository.ErrNotFound}
	router := newResidentRouter(svc, &fakeImporterService{})

	w := doJSON(t, router, http.MethodDelete, "/residents/99", nil)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func uploadFile(t *testing.T, router *gin.Engine, field, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	part.Write(content)
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/residents/import", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestImportResidents_Success(t *testing.T) {
	importer := &fakeImporterService{result: &response.ImportResponse{BatchID: "batch-1", RowsImported: 3}}
	router := newResidentRouter(&fakeResidentService{}, importer)

	w := uploadFile(t, router, "file", "warga.xlsx", []byte("xlsx-bytes"))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, http.StatusOK, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "batch-1") {
		t.Errorf("body should carry the batch id: %s", w.Body.String())
	}
}

func TestImportResidents_MissingFile(t *testing.T) {
	router := newResidentRouter(&fakeResidentService{}, &fakeImporterService{})

	w := doJSON(t, router, http.MethodPost, "/residents/import", nil)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestImportResidents_UnprocessableFile(t *testing.T) {
	importer := &fakeImporterService{err: errors.New("failed to open workbook")}
	router := newResidentRouter(&fakeResidentService{}, importer)

	w := uploadFile(t, router, "file", "rusak.xlsx", []byte("bukan xlsx"))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d (body: %s)", w.Code, http.StatusBadRequest, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Import gagal") {
		t.Errorf("body should carry the import failure message: %s", w.Body.String())
	}
}

func TestDownloadTemplate(t *testing.T) {
	router := newResidentRouter(&fakeResidentService{}, &fakeImporterService{})

	req := httptest.NewRequest(http.MethodGet, "/residents/template", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	disposition := w.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "template_import_warga_") {
		t.Errorf("Content-Disposition = %q, want template filename", disposition)
	}
}
