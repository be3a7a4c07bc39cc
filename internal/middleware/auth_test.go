package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tarang07q/NewsPlus/internal/models"
)

type fakeAuthenticator struct {
	sessions map[string]*models.Session
}

func (f *fakeAuthenticator) Authenticate(_ context.Context, token string) (*models.Session, error) {
	return f.sessions[token], nil
}

func authRouter(auth Authenticator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(auth), func(c *gin.Context) {
		c.JSON(200, gin.H{
			"userId": c.GetString(ContextUserID),
			"email":  c.GetString(ContextEmail),
		})
	})
	return r
}

func TestAuthRejectsMissingToken(t *testing.T) {
	r := authRouter(&fakeAuthenticator{sessions: map[string]*models.Session{}})

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic abc"},
		{"empty token", "Bearer "},
		{"unknown token", "Bearer nope"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d, want 401", tt.name, w.Code)
		}
	}
}

func TestAuthPublishesSession(t *testing.T) {
	auth := &fakeAuthenticator{sessions: map[string]*models.Session{
		"good": {Token: "good", UserID: "u1", Email: "a@b.com"},
	}}
	r := authRouter(auth)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	if body != `{"email":"a@b.com","userId":"u1"}` {
		t.Errorf("body = %s", body)
	}
}
