package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexter-app/nexter-backend/internal/assistant/repository"
	"github.com/nexter-app/nexter-backend/internal/assistant/service"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.NewAssistantService(repository.NewMemoryStore(time.Hour))

	r := gin.New()
	New(svc).Register(r.Group("/api/v1/assistant"))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateUpload_Link(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/assistant/uploads", gin.H{
		"kind": "link",
		"url":  "example.com/work",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		UploadID  string `json:"uploadId"`
		Name      string `json:"name"`
		SourceURL string `json:"sourceUrl"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.UploadID)
	assert.Equal(t, "example.com", resp.Name)
	assert.Equal(t, "https://example.com/work", resp.SourceURL)
}

func TestCreateUpload_InvalidKind(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/assistant/uploads", gin.H{"kind": "video"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateUpload_LinkWithoutURL(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/assistant/uploads", gin.H{"kind": "link"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyze_UnknownUpload(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/assistant/analyze", gin.H{"uploadId": "missing"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "upload not found")
}

func TestUploadAnalyzeFetch_Flow(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/assistant/uploads", gin.H{
		"kind":     "file",
		"fileName": "portfolio.pdf",
		"mimeType": "application/pdf",
		"size":     4096,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var upload struct {
		UploadID string `json:"uploadId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &upload))

	// Analysis is not there until analyze runs.
	w = doJSON(t, r, http.MethodGet, "/api/v1/assistant/analysis/"+upload.UploadID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/assistant/analyze", gin.H{
		"uploadId": upload.UploadID,
		"userRole": "백엔드 개발자",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var analysis struct {
		AnalysisID string `json:"analysisId"`
		Project    struct {
			Title    string `json:"title"`
			Category string `json:"category"`
		} `json:"project"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &analysis))
	assert.Equal(t, "portfolio", analysis.Project.Title)
	assert.Equal(t, "백엔드", analysis.Project.Category)

	w = doJSON(t, r, http.MethodGet, "/api/v1/assistant/analysis/"+upload.UploadID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched struct {
		AnalysisID string `json:"analysisId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, analysis.AnalysisID, fetched.AnalysisID)
}
