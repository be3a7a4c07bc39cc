package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tarang07q/NewsPlus/internal/middleware"
	"github.com/tarang07q/NewsPlus/internal/services"
)

// memStore implements localstore.Store in memory for handler tests.
type memStore struct {
	data map[string]string
}

func (m *memStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStore) Set(_ context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

// historyTestRouter fakes the auth middleware by injecting the email
// directly, so the handler tests exercise only the history surface.
func historyTestRouter(email string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHistoryHandler(services.NewHistoryService(&memStore{data: map[string]string{}}))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextEmail, email)
	})
	r.GET("/history", h.List)
	r.POST("/history", h.Record)
	r.DELETE("/history", h.Remove)
	r.GET("/history/stats", h.Stats)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func articleBody(url string) string {
	return fmt.Sprintf(`{"article":{"source":{"id":null,"name":"BBC News"},"title":"T","url":%q,"publishedAt":"2026-09-01T00:00:00Z","category":"technology"}}`, url)
}

func TestHistoryEndpoints(t *testing.T) {
	r := historyTestRouter("a@b.com")

	if w := do(r, http.MethodPost, "/history", articleBody("https://a")); w.Code != 201 {
		t.Fatalf("record: %d (%s)", w.Code, w.Body.String())
	}
	if w := do(r, http.MethodPost, "/history", `{"article":{"title":"no url"}}`); w.Code != 400 {
		t.Errorf("record without url: %d, want 400", w.Code)
	}

	w := do(r, http.MethodGet, "/history", "")
	if w.Code != 200 {
		t.Fatalf("list: %d", w.Code)
	}
	var listBody struct {
		Count int `json:"count"`
	}
	json.Unmarshal(w.Body.Bytes(), &listBody)
	if listBody.Count != 1 {
		t.Errorf("count = %d", listBody.Count)
	}

	w = do(r, http.MethodGet, "/history/stats", "")
	if w.Code != 200 {
		t.Fatalf("stats: %d", w.Code)
	}
	var statsBody struct {
		TotalRead   int    `json:"totalRead"`
		Streak      int    `json:"streak"`
		TopCategory string `json:"topCategory"`
	}
	json.Unmarshal(w.Body.Bytes(), &statsBody)
	if statsBody.TotalRead != 1 || statsBody.Streak != 1 {
		t.Errorf("stats = %+v", statsBody)
	}
	if statsBody.TopCategory != "technology" {
		t.Errorf("topCategory = %q", statsBody.TopCategory)
	}

	// Remove one article by url, then clear.
	do(r, http.MethodPost, "/history", articleBody("https://b"))
	if w := do(r, http.MethodDelete, "/history?url=https://a", ""); w.Code != 200 {
		t.Fatalf("remove: %d", w.Code)
	}
	if w := do(r, http.MethodDelete, "/history", ""); w.Code != 200 {
		t.Fatalf("clear: %d", w.Code)
	}

	w = do(r, http.MethodGet, "/history", "")
	json.Unmarshal(w.Body.Bytes(), &listBody)
	if listBody.Count != 0 {
		t.Errorf("count after clear = %d", listBody.Count)
	}
}
