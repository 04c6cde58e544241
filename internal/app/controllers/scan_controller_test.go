package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/schoollink/schoollink-api/internal/app/models/dto"
	"github.com/schoollink/schoollink-api/internal/pkg/apperrors"
)

type fakeScanService struct {
	lastRawIDs []string
	todayResp  *dto.ScanTodayResponse
	statusResp *dto.ScanStatusResponse
	err        error
}

func (f *fakeScanService) Today(_ context.Context, rawIDs []string) (*dto.ScanTodayResponse, error) {
	f.lastRawIDs = rawIDs
	return f.todayResp, f.err
}

func (f *fakeScanService) Status(_ context.Context, rawIDs []string) (*dto.ScanStatusResponse, error) {
	f.lastRawIDs = rawIDs
	return f.statusResp, f.err
}

func newScanRouter(svc *fakeScanService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewScanController(svc)
	router.GET("/scans/today", ctrl.TodayScans)
	router.POST("/scans/today", ctrl.TodayScans)
	router.GET("/scans/status", ctrl.ScanStatus)
	router.POST("/scans/status", ctrl.ScanStatus)
	return router
}

func TestTodayScansGETSplitsCommaSeparatedIDs(t *testing.T) {
	svc := &fakeScanService{todayResp: &dto.ScanTodayResponse{Items: []dto.ScanTodayItem{}}}
	router := newScanRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/scans/today?student_ids=1,2,3", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if len(svc.lastRawIDs) != 3 || svc.lastRawIDs[0] != "1" || svc.lastRawIDs[2] != "3" {
		t.Errorf("raw IDs = %v", svc.lastRawIDs)
	}
}

func TestScanStatusPOSTBody(t *testing.T) {
	svc := &fakeScanService{statusResp: &dto.ScanStatusResponse{
		Success:        true,
		Data:           map[string]dto.ScanStatusEntry{"7": {GateIn: "7:45 AM"}},
		ProcessedCount: 1,
		ScansFound:     1,
	}}
	router := newScanRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/scans/status", strings.NewReader(`{"student_ids":["7"]}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp dto.ScanStatusResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if !resp.Success || resp.Data["7"].GateIn != "7:45 AM" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestScanStatusBatchTooLarge(t *testing.T) {
	svc := &fakeScanService{err: apperrors.ErrBatchTooLarge}
	router := newScanRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/scans/status?student_ids=1,2", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.Message != "Too many student IDs" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.Code != dto.ErrorCodeBatchTooLarge {
		t.Errorf("code = %q", resp.Code)
	}
}

func TestScanStatusMalformedBody(t *testing.T) {
	svc := &fakeScanService{}
	router := newScanRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/scans/status", strings.NewReader(`{"student_ids": "oops"`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestTodayScansGETWithoutParam(t *testing.T) {
	svc := &fakeScanService{todayResp: &dto.ScanTodayResponse{Items: []dto.ScanTodayItem{}}}
	router := newScanRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/scans/today", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if svc.lastRawIDs != nil {
		t.Errorf("expected nil batch, got %v", svc.lastRawIDs)
	}
}
