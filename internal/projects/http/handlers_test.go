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

	authmw "github.com/nexter-app/nexter-backend/internal/auth/middleware"
	"github.com/nexter-app/nexter-backend/internal/projects/repository"
)

// asUser stamps a fixed user id the way the bearer middleware would.
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(authmw.CtxUserID, userID)
		c.Next()
	}
}

func newTestRouter(userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	group := r.Group("/api/v1/projects")
	group.Use(asUser(userID))
	New(repository.NewMemoryProjectRepo()).Register(group)
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

func TestCreateProject_ResolvesIcon(t *testing.T) {
	r := newTestRouter("user-1")

	w := doJSON(t, r, http.MethodPost, "/api/v1/projects", gin.H{
		"title":    "브랜드 리뉴얼 캠페인",
		"category": "브랜드 마케팅",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Project struct {
			ID       string   `json:"id"`
			Type     string   `json:"type"`
			Tags     []string `json:"tags"`
			Icon     string   `json:"icon"`
			Gradient string   `json:"gradient"`
		} `json:"project"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Project.ID)
	assert.Equal(t, "project", resp.Project.Type)
	assert.NotNil(t, resp.Project.Tags)
	assert.Equal(t, "Megaphone", resp.Project.Icon)
	assert.Equal(t, "from-blue-500 to-cyan-500", resp.Project.Gradient)
}

func TestCreateProject_UnknownCategoryDefaults(t *testing.T) {
	r := newTestRouter("user-1")

	w := doJSON(t, r, http.MethodPost, "/api/v1/projects", gin.H{
		"title":    "기록용 프로젝트",
		"category": "존재하지 않는 분야",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "FileText")
}

func TestUpdateProject_Partial(t *testing.T) {
	r := newTestRouter("user-1")

	w := doJSON(t, r, http.MethodPost, "/api/v1/projects", gin.H{
		"title":    "사이드 프로젝트",
		"category": "백엔드",
		"summary":  "원래 요약",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Project struct {
			ID string `json:"id"`
		} `json:"project"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodPut, "/api/v1/projects/"+created.Project.ID, gin.H{
		"summary": "고친 요약",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "고친 요약")
	assert.Contains(t, w.Body.String(), "사이드 프로젝트")
}

func TestDeleteProject(t *testing.T) {
	r := newTestRouter("user-1")

	w := doJSON(t, r, http.MethodPost, "/api/v1/projects", gin.H{
		"title": "지울 프로젝트", "category": "기타",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Project struct {
			ID string `json:"id"`
		} `json:"project"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodDelete, "/api/v1/projects/"+created.Project.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/projects/"+created.Project.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjects_OwnerScoped(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryProjectRepo()

	r := gin.New()
	mine := r.Group("/mine")
	mine.Use(asUser("user-a"))
	New(repo).Register(mine)

	theirs := r.Group("/theirs")
	theirs.Use(asUser("user-b"))
	New(repo).Register(theirs)

	w := doJSON(t, r, http.MethodPost, "/mine", gin.H{"title": "내 프로젝트", "category": "기타"})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Project struct {
			ID string `json:"id"`
		} `json:"project"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodGet, "/theirs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "내 프로젝트")

	w = doJSON(t, r, http.MethodPut, "/theirs/"+created.Project.ID, gin.H{"title": "탈취"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
