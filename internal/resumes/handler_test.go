package resumes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(svc *Service, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userId", userID)
		c.Next()
	})
	api := router.Group("/api/v1")
	NewHandler(svc).RegisterRoutes(api)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	svc := newTestService(newFakeStore())
	router := newTestRouter(svc, "user-1")

	resp := doJSON(t, router, http.MethodPost, "/api/v1/create-resume", map[string]string{"title": "Mike's Resume"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", resp.Code, resp.Body.String())
	}

	var created struct {
		Success bool       `json:"success"`
		Resume  ResumeData `json:"resume"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if !created.Success || created.Resume.ID == "" {
		t.Fatalf("unexpected create response: %s", resp.Body.String())
	}

	resp = doJSON(t, router, http.MethodGet, "/api/v1/resume/"+created.Resume.ID, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("get status = %d", resp.Code)
	}
	var fetched struct {
		Resume ResumeData `json:"resume"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("decode get response: %v", err)
	}
	if fetched.Resume.Title != "Mike's Resume" {
		t.Fatalf("round-trip title = %q", fetched.Resume.Title)
	}
	if len(fetched.Resume.WorkExperience) != 1 || len(fetched.Resume.Interests) != 1 {
		t.Fatalf("expected seeded blank sections: %s", resp.Body.String())
	}
}

func TestCreateWithoutTitleFails(t *testing.T) {
	svc := newTestService(newFakeStore())
	router := newTestRouter(svc, "user-1")

	resp := doJSON(t, router, http.MethodPost, "/api/v1/create-resume", map[string]string{"title": ""})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
	var body struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Success {
		t.Fatalf("error envelope must carry success=false: %s", resp.Body.String())
	}
}

func TestUpdateRejectsOutOfRangeSkillProgress(t *testing.T) {
	svc := newTestService(newFakeStore())
	router := newTestRouter(svc, "user-1")

	created, err := svc.Create(context.Background(), "user-1", CreatePayload{Title: "Skills"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	resp := doJSON(t, router, http.MethodPut, "/api/v1/update-resume/"+created.ID, map[string]any{
		"skills": []map[string]any{{"name": "Go", "progress": 150}},
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, router, http.MethodPut, "/api/v1/update-resume/"+created.ID, map[string]any{
		"skills": []map[string]any{{"name": "Go", "progress": 85}},
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", resp.Code, resp.Body.String())
	}
}

func TestGetMissingResumeReturns404(t *testing.T) {
	svc := newTestService(newFakeStore())
	router := newTestRouter(svc, "user-1")

	resp := doJSON(t, router, http.MethodGet, "/api/v1/resume/nope", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.Code)
	}
}

func TestGetForeignResumeReturns403(t *testing.T) {
	svc := newTestService(newFakeStore())
	created, err := svc.Create(context.Background(), "owner", CreatePayload{Title: "Private"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	router := newTestRouter(svc, "intruder")
	resp := doJSON(t, router, http.MethodGet, "/api/v1/resume/"+created.ID, nil)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.Code)
	}
}

func TestDeleteSucceedsDespiteAssetFailure(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	router := newTestRouter(svc, "user-1")

	created, err := svc.Create(context.Background(), "user-1", CreatePayload{Title: "Doomed", ProfileImage: pngDataURI()})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	store.failDelete = true

	resp := doJSON(t, router, http.MethodDelete, "/api/v1/delete-resume/"+created.ID, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, router, http.MethodGet, "/api/v1/resume/"+created.ID, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("record must be gone, status = %d", resp.Code)
	}
}

func TestListReturnsOnlyCallersResumes(t *testing.T) {
	svc := newTestService(newFakeStore())
	if _, err := svc.Create(context.Background(), "user-1", CreatePayload{Title: "Mine"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(context.Background(), "user-2", CreatePayload{Title: "Theirs"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	router := newTestRouter(svc, "user-1")
	resp := doJSON(t, router, http.MethodGet, "/api/v1/resumes", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d", resp.Code)
	}
	var body struct {
		Resumes []ResumeData `json:"resumes"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Resumes) != 1 || body.Resumes[0].Title != "Mine" {
		t.Fatalf("unexpected listing: %s", resp.Body.String())
	}
}
