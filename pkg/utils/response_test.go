package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func record(t *testing.T, send func(c *gin.Context)) (*httptest.ResponseRecorder, APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	send(c)

	var envelope APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("body is not a response envelope: %v", err)
	}
	return w, envelope
}

func TestResponseEnvelopes(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name        string
		send        func(c *gin.Context)
		wantStatus  int
		wantSuccess bool
		wantError   string
	}{
		{"success", func(c *gin.Context) { SuccessResponse(c, "ok", gin.H{"x": 1}) }, http.StatusOK, true, ""},
		{"created", func(c *gin.Context) { CreatedResponse(c, "made", nil) }, http.StatusCreated, true, ""},
		{"bad request", func(c *gin.Context) { BadRequestResponse(c, "nope", boom) }, http.StatusBadRequest, false, "boom"},
		{"unauthorized", func(c *gin.Context) { UnauthorizedResponse(c, "who") }, http.StatusUnauthorized, false, ""},
		{"forbidden", func(c *gin.Context) { ForbiddenResponse(c, "no") }, http.StatusForbidden, false, ""},
		{"not found", func(c *gin.Context) { NotFoundResponse(c, "gone") }, http.StatusNotFound, false, ""},
		{"conflict", func(c *gin.Context) { ConflictResponse(c, "stale", boom) }, http.StatusConflict, false, "boom"},
		{"internal", func(c *gin.Context) { InternalServerErrorResponse(c, "broke", boom) }, http.StatusInternalServerError, false, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, envelope := record(t, tt.send)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if envelope.Success != tt.wantSuccess {
				t.Errorf("success = %v, want %v", envelope.Success, tt.wantSuccess)
			}
			if envelope.Error != tt.wantError {
				t.Errorf("error = %q, want %q", envelope.Error, tt.wantError)
			}
		})
	}
}

func TestUnprocessableEntityResponse(t *testing.T) {
	w, envelope := record(t, func(c *gin.Context) {
		UnprocessableEntityResponse(c, "Validasi gagal", []string{"Nama lengkap minimal 2 karakter"})
	})

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnprocessableEntity)
	}
	data, ok := envelope.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data has unexpected shape: %T", envelope.Data)
	}
	msgs, ok := data["errors"].([]interface{})
	if !ok || len(msgs) != 1 {
		t.Errorf("errors = %v, want one itemized message", data["errors"])
	}
}
