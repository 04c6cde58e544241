package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/schoollink/schoollink-api/internal/app/models"
	"github.com/schoollink/schoollink-api/internal/app/models/dto"
	"github.com/schoollink/schoollink-api/internal/pkg/apperrors"
)

type fakeStudentService struct {
	searchResp *dto.SearchResponse
	searchErr  error
	student    *models.StudentData
	getErr     error
	updateResp *dto.UpdateStudentResult
	updateErr  error

	lastQuery   string
	lastPage    int
	lastLimit   int
	lastPayload map[string]interface{}
}

func (f *fakeStudentService) Search(_ context.Context, q string, page, limit int) (*dto.SearchResponse, error) {
	f.lastQuery, f.lastPage, f.lastLimit = q, page, limit
	return f.searchResp, f.searchErr
}

func (f *fakeStudentService) SearchByInstitution(_ context.Context, q string, page, limit int) (*dto.SearchResponse, error) {
	f.lastQuery, f.lastPage, f.lastLimit = q, page, limit
	return f.searchResp, f.searchErr
}

func (f *fakeStudentService) GetByID(_ context.Context, id int64) (*models.StudentData, error) {
	return f.student, f.getErr
}

func (f *fakeStudentService) Count(_ context.Context) (int64, error) {
	return 12345, nil
}

func (f *fakeStudentService) ListBySchool(_ context.Context, institutionCode string) ([]models.StudentSummary, error) {
	f.lastQuery = institutionCode
	return []models.StudentSummary{{StudentID: 1}}, nil
}

func (f *fakeStudentService) SchoolStats(_ context.Context, institutionCode string) (*models.SchoolStats, error) {
	return &models.SchoolStats{InstitutionCode: institutionCode, TotalStudents: 2}, nil
}

func (f *fakeStudentService) Update(_ context.Context, payload map[string]interface{}) (*dto.UpdateStudentResult, error) {
	f.lastPayload = payload
	return f.updateResp, f.updateErr
}

func newStudentRouter(svc *fakeStudentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewStudentController(svc)
	router.GET("/students/search", ctrl.SearchStudents)
	router.GET("/students/count", ctrl.CountStudents)
	router.GET("/students/by-school", ctrl.ListBySchool)
	router.GET("/students/:id", ctrl.GetStudent)
	router.POST("/students/update", ctrl.UpdateStudent)
	return router
}

func TestSearchStudentsPassesParams(t *testing.T) {
	svc := &fakeStudentService{searchResp: &dto.SearchResponse{
		Items: []models.StudentData{}, Total: 0, Page: 2, TotalPages: 0,
	}}
	router := newStudentRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/students/search?q=tho&page=2&limit=30", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if svc.lastQuery != "tho" || svc.lastPage != 2 || svc.lastLimit != 30 {
		t.Errorf("params = %q/%d/%d", svc.lastQuery, svc.lastPage, svc.lastLimit)
	}
}

func TestSearchStudentsShortQuery(t *testing.T) {
	svc := &fakeStudentService{searchErr: apperrors.NewValidationError("q must be at least 3 characters for partial search")}
	router := newStudentRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/students/search?q=ab", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if !strings.Contains(resp.Message, "at least 3 characters") {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestGetStudentNotFound(t *testing.T) {
	svc := &fakeStudentService{getErr: apperrors.ErrStudentNotFound}
	router := newStudentRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/students/99", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.Message != "Student not found" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestGetStudentNonNumericID(t *testing.T) {
	svc := &fakeStudentService{}
	router := newStudentRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/students/abc", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestCountStudents(t *testing.T) {
	router := newStudentRouter(&fakeStudentService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/students/count", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp dto.CountResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.TotalRecords != 12345 {
		t.Errorf("TotalRecords = %d", resp.TotalRecords)
	}
}

func TestListBySchoolSinglePageShape(t *testing.T) {
	svc := &fakeStudentService{}
	router := newStudentRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/students/by-school?institutionCode=SCH001", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if svc.lastQuery != "SCH001" {
		t.Errorf("institutionCode = %q", svc.lastQuery)
	}
	var resp dto.StudentListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(resp.Items) != 1 || resp.Total != 1 {
		t.Errorf("items/total = %d/%d", len(resp.Items), resp.Total)
	}
	// The roster is a single page, so the paging fields are constant.
	if resp.Page != 1 || resp.TotalPages != 1 {
		t.Errorf("page/totalPages = %d/%d, want 1/1", resp.Page, resp.TotalPages)
	}
}

func TestUpdateStudentPassthrough(t *testing.T) {
	affected := int64(1)
	svc := &fakeStudentService{updateResp: &dto.UpdateStudentResult{
		Status: "updated", AffectedRows: &affected, StudentID: 42,
	}}
	router := newStudentRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/students/update",
		strings.NewReader(`{"StudentID": 42, "StudentName": "Jane"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if svc.lastPayload["StudentName"] != "Jane" {
		t.Errorf("payload = %v", svc.lastPayload)
	}
	var resp dto.UpdateStudentResult
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.Status != "updated" || resp.StudentID != 42 {
		t.Errorf("unexpected result: %+v", resp)
	}
}

func TestUpdateStudentMissingIdentifier(t *testing.T) {
	svc := &fakeStudentService{updateErr: apperrors.NewValidationError("StudentID or StudentOpenEMIS_ID is required")}
	router := newStudentRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/students/update", strings.NewReader(`{"StudentName": "Jane"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if !strings.Contains(resp.Message, "required") {
		t.Errorf("message = %q", resp.Message)
	}
}
