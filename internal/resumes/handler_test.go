package resumes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	api.Use(middleware.Auth())

	svc := &Service{Repo: NewMemoryRepo()}
	NewHandler(svc).RegisterRoutes(api)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, guestID string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if guestID != "" {
		req.Header.Set("X-Guest-Id", guestID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResume(t *testing.T, w *httptest.ResponseRecorder) Resume {
	t.Helper()
	var resume Resume
	if err := json.Unmarshal(w.Body.Bytes(), &resume); err != nil {
		t.Fatalf("decode resume: %v (%s)", err, w.Body.String())
	}
	return resume
}

func TestCreateResumeEndpoint(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/resumes", "alice", gin.H{"title": "  Backend Resume  "})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	resume := decodeResume(t, w)
	if resume.Title != "Backend Resume" {
		t.Errorf("title = %q", resume.Title)
	}
	if resume.ID == "" {
		t.Error("no id assigned")
	}
	if resume.UserID != "guest:alice" {
		t.Errorf("user id = %q", resume.UserID)
	}
}

func TestCreateResumeBlankTitle(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/resumes", "alice", gin.H{"title": "   "})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}

	var resp respond.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error.Code != "validation_error" || resp.Error.Message != "resume title is required" {
		t.Errorf("error = %+v", resp.Error)
	}
}

func TestResumesRequireIdentity(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/resumes", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestGetForeignResumeNotFound(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/resumes", "alice", gin.H{"title": "Mine"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d", w.Code)
	}
	created := decodeResume(t, w)

	w = doJSON(t, r, http.MethodGet, "/api/resumes/"+created.ID, "bob", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestUpdateResumeMerge(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/resumes", "alice", gin.H{"title": "Resume"})
	created := decodeResume(t, w)

	w = doJSON(t, r, http.MethodPut, "/api/resumes/"+created.ID, "alice", gin.H{
		"title":  "Updated Resume",
		"skills": []gin.H{{"name": "Go", "progress": 85}},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	updated := decodeResume(t, w)
	if updated.Title != "Updated Resume" {
		t.Errorf("title = %q", updated.Title)
	}
	if len(updated.Skills) != 1 || updated.Skills[0].Name != "Go" || updated.Skills[0].Progress != 85 {
		t.Errorf("skills = %+v", updated.Skills)
	}
	// Sections absent from the request stay intact.
	if len(updated.Education) != 1 {
		t.Errorf("education = %+v", updated.Education)
	}
	if len(updated.Interests) != 1 || updated.Interests[0] != "" {
		t.Errorf("interests = %v", updated.Interests)
	}
}

func TestDeleteResumeThenGone(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/resumes", "alice", gin.H{"title": "Resume"})
	created := decodeResume(t, w)

	w = doJSON(t, r, http.MethodDelete, "/api/resumes/"+created.ID, "alice", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["message"] != "Resume deleted successfully" {
		t.Errorf("message = %q", resp["message"])
	}

	w = doJSON(t, r, http.MethodGet, "/api/resumes/"+created.ID, "alice", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d", w.Code)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/resumes/"+created.ID, "alice", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d", w.Code)
	}
}

func TestListResumesScopedAndOrdered(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/resumes", "alice", gin.H{"title": "First"})
	first := decodeResume(t, w)
	doJSON(t, r, http.MethodPost, "/api/resumes", "alice", gin.H{"title": "Second"})
	doJSON(t, r, http.MethodPost, "/api/resumes", "bob", gin.H{"title": "Other"})

	// Touch the first resume so it becomes most recently updated.
	w = doJSON(t, r, http.MethodPut, "/api/resumes/"+first.ID, "alice", gin.H{"title": "First v2"})
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/resumes", "alice", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var out []Resume
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2 (owner scoped)", len(out))
	}
	if out[0].Title != "First v2" {
		t.Errorf("order = [%q, %q], want most recently updated first", out[0].Title, out[1].Title)
	}
}
