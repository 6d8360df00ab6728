package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

var testSecret = []byte("test-secret")

func newAuthEngine(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	chain := []gin.HandlerFunc{AuthRequired(testSecret)}
	if len(roles) > 0 {
		chain = append(chain, RequireRoles(roles...))
	}
	chain = append(chain, func(c *gin.Context) {
		c.String(http.StatusOK, GetUsername(c))
	})
	r.GET("/secure", chain...)
	return r
}

func doGet(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	r := newAuthEngine()

	if w := doGet(r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("missing token: got %d", w.Code)
	}
	if w := doGet(r, "not-a-jwt"); w.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: got %d", w.Code)
	}

	other, _ := IssueToken([]byte("other-secret"), "admin", "admin", time.Now())
	if w := doGet(r, other); w.Code != http.StatusUnauthorized {
		t.Fatalf("foreign signature: got %d", w.Code)
	}

	expired, _ := IssueToken(testSecret, "admin", "admin", time.Now().Add(-48*time.Hour))
	if w := doGet(r, expired); w.Code != http.StatusUnauthorized {
		t.Fatalf("expired token: got %d", w.Code)
	}

	ok, err := IssueToken(testSecret, "admin", "admin", time.Now())
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}
	w := doGet(r, ok)
	if w.Code != http.StatusOK || w.Body.String() != "admin" {
		t.Fatalf("valid token: got %d %q", w.Code, w.Body.String())
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("request id header missing")
	}
}

func TestRequireRoles(t *testing.T) {
	r := newAuthEngine("admin", "finance")

	viewer, _ := IssueToken(testSecret, "ops", "viewer", time.Now())
	if w := doGet(r, viewer); w.Code != http.StatusForbidden {
		t.Fatalf("viewer: got %d", w.Code)
	}

	finance, _ := IssueToken(testSecret, "fin", " Finance ", time.Now())
	if w := doGet(r, finance); w.Code != http.StatusOK {
		t.Fatalf("finance: got %d", w.Code)
	}
}

func TestAuthRequiredWithoutSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/secure", AuthRequired(nil), func(c *gin.Context) { c.Status(http.StatusOK) })

	tok, _ := IssueToken([]byte("anything"), "admin", "admin", time.Now())
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("empty secret: got %d", w.Code)
	}
}
