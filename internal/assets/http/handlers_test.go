package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexter-app/nexter-backend/internal/assets/repository"
	authmw "github.com/nexter-app/nexter-backend/internal/auth/middleware"
)

func newTestRouter(userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	group := r.Group("/api/v1/assets")
	group.Use(func(c *gin.Context) {
		c.Set(authmw.CtxUserID, userID)
		c.Next()
	})
	New(repository.NewMemoryAssetRepo()).Register(group)
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

func TestCreateAsset(t *testing.T) {
	r := newTestRouter("user-1")

	w := doJSON(t, r, http.MethodPost, "/api/v1/assets", gin.H{
		"url":   "https://example.com/resume.pdf",
		"title": "이력서",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		OK    bool `json:"ok"`
		Asset struct {
			ID  string `json:"id"`
			URL string `json:"url"`
		} `json:"asset"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.NotEmpty(t, resp.Asset.ID)
	assert.Equal(t, "https://example.com/resume.pdf", resp.Asset.URL)
}

func TestCreateAsset_RequiresURL(t *testing.T) {
	r := newTestRouter("user-1")

	w := doJSON(t, r, http.MethodPost, "/api/v1/assets", gin.H{"title": "제목만"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAssets(t *testing.T) {
	r := newTestRouter("user-1")

	require.Equal(t, http.StatusCreated, doJSON(t, r, http.MethodPost, "/api/v1/assets", gin.H{
		"url": "https://example.com/a",
	}).Code)
	require.Equal(t, http.StatusCreated, doJSON(t, r, http.MethodPost, "/api/v1/assets", gin.H{
		"url": "https://example.com/b",
	}).Code)

	w := doJSON(t, r, http.MethodGet, "/api/v1/assets", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Assets []struct {
			URL string `json:"url"`
		} `json:"assets"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Assets, 2)
}
