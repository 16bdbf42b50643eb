package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/studydesk/studydesk/internal/collection"
	"github.com/studydesk/studydesk/internal/storage"
)

func newTestRouter() *gin.Engine {
	g := gin.New()
	store := storage.NewMemoryStore()
	RegisterOrganizerRoutes(g, collection.NewCourseManager(store), collection.NewAssignmentManager(store))
	return g
}

func TestCourses_CRUD(t *testing.T) {
	g := newTestRouter()

	// create
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/courses", strings.NewReader(`{"name":"CS101","time":"9am","days":"Mon","location":"Hall B"}`))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created["id"]
	require.NotEmpty(t, id)

	// list
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/courses", nil)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	require.Equal(t, "CS101", list[0]["name"])

	// edit keeps the id
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/api/courses/"+id, strings.NewReader(`{"name":"CS101","time":"10am","days":"Mon","location":"Hall B"}`))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var edited map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &edited))
	require.Equal(t, id, edited["id"])
	require.Equal(t, "10am", edited["time"])

	// delete
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/courses/"+id, nil)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/courses", nil)
	g.ServeHTTP(w, req)
	require.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestCourses_EmptyNameRejected(t *testing.T) {
	g := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/courses", strings.NewReader(`{"name":"   ","time":"9am"}`))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// nothing was created
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/courses", nil)
	g.ServeHTTP(w, req)
	require.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestAssignments_CreateToggleDelete(t *testing.T) {
	g := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/assignments", strings.NewReader(`{"title":"Essay","course":"ENG101","dueDate":"2024-05-01T00:00:00Z","description":"","completed":true}`))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	// completed always starts false, whatever the client sent
	require.Equal(t, false, created["completed"])

	// toggle
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/assignments/"+id+"/toggle", nil)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/assignments", nil)
	g.ServeHTTP(w, req)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	require.Equal(t, true, list[0]["completed"])
	require.Equal(t, "Essay", list[0]["title"])

	// delete twice: second is still 204, list stays empty
	for i := 0; i < 2; i++ {
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodDelete, "/api/assignments/"+id, nil)
		g.ServeHTTP(w, req)
		require.Equal(t, http.StatusNoContent, w.Code)
	}
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/assignments", nil)
	g.ServeHTTP(w, req)
	require.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestAssignments_BadDueDateRejected(t *testing.T) {
	g := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/assignments", strings.NewReader(`{"title":"Essay","dueDate":"tomorrow-ish"}`))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
