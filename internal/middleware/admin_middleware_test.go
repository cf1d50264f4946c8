package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/mueblessanmiguel/catalogo_api/internal/access"
	"github.com/mueblessanmiguel/catalogo_api/internal/utils"
)

type fakeDenylist struct {
	revoked map[string]bool
}

func (f *fakeDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return f.revoked[jti], nil
}

func newAdminRouter(allowlist *access.Allowlist, denylist TokenDenylist) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	mw := NewAdminMiddleware(allowlist, denylist)
	router.GET("/admin/ping", mw.Handle(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("email")})
	})
	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAdminMiddlewareMissingHeader(t *testing.T) {
	utils.InitJWT("test-secret")
	router := newAdminRouter(access.ParseAllowlist("admin@example.com"), &fakeDenylist{})

	if w := doRequest(router, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if w := doRequest(router, "Basic abc"); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 for a non-bearer scheme", w.Code)
	}
}

func TestAdminMiddlewareInvalidToken(t *testing.T) {
	utils.InitJWT("test-secret")
	router := newAdminRouter(access.ParseAllowlist("admin@example.com"), &fakeDenylist{})

	if w := doRequest(router, "Bearer garbage"); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAdminMiddlewareDeniesNonAllowlisted(t *testing.T) {
	utils.InitJWT("test-secret")
	token, err := utils.GenerateJWT("u1", "visitor@example.com")
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}
	router := newAdminRouter(access.ParseAllowlist("admin@example.com"), &fakeDenylist{})

	if w := doRequest(router, "Bearer "+token); w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403 for a valid but non-admin session", w.Code)
	}
}

func TestAdminMiddlewareAllowsListedEmail(t *testing.T) {
	utils.InitJWT("test-secret")
	token, err := utils.GenerateJWT("u1", "admin@example.com")
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}
	router := newAdminRouter(access.ParseAllowlist("admin@example.com"), &fakeDenylist{})

	w := doRequest(router, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestAdminMiddlewareRejectsRevokedSession(t *testing.T) {
	utils.InitJWT("test-secret")
	token, err := utils.GenerateJWT("u1", "admin@example.com")
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}
	claims, err := utils.ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT failed: %v", err)
	}

	denylist := &fakeDenylist{revoked: map[string]bool{claims.ID: true}}
	router := newAdminRouter(access.ParseAllowlist("admin@example.com"), denylist)

	if w := doRequest(router, "Bearer "+token); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 for a signed-out session", w.Code)
	}
}

func TestBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("Authorization", "Bearer abc123")

	token, ok := BearerToken(c)
	if !ok || token != "abc123" {
		t.Errorf("BearerToken = %q, %v", token, ok)
	}
}
