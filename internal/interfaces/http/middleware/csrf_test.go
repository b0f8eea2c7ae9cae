package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"inkwell/internal/shared/utils"
)

func csrfTestEngine(allowedOrigins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(CSRF(allowedOrigins))
	engine.GET("/api/admin/session", func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.POST("/api/admin/login", func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.POST("/api/admin/posts", func(c *gin.Context) { c.Status(http.StatusOK) })
	return engine
}

func TestCSRFSkipsSafeMethods(t *testing.T) {
	engine := csrfTestEngine(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/session", nil)
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCSRFExemptsLogin(t *testing.T) {
	engine := csrfTestEngine(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", nil)
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCSRFRejectsMissingCookie(t *testing.T) {
	engine := csrfTestEngine(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/posts", nil)
	req.Header.Set(utils.CSRFTokenHeader, "token")
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCSRFRejectsMissingHeader(t *testing.T) {
	engine := csrfTestEngine(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/posts", nil)
	req.AddCookie(&http.Cookie{Name: utils.CSRFTokenCookie, Value: "token"})
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCSRFRejectsMismatchedTokens(t *testing.T) {
	engine := csrfTestEngine(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/posts", nil)
	req.AddCookie(&http.Cookie{Name: utils.CSRFTokenCookie, Value: "cookie-token"})
	req.Header.Set(utils.CSRFTokenHeader, "header-token")
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCSRFAcceptsMatchingTokens(t *testing.T) {
	engine := csrfTestEngine(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/posts", nil)
	req.AddCookie(&http.Cookie{Name: utils.CSRFTokenCookie, Value: "token"})
	req.Header.Set(utils.CSRFTokenHeader, "token")
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCSRFOriginCheck(t *testing.T) {
	allowed := []string{"https://example.com"}

	t.Run("allowed origin passes", func(t *testing.T) {
		engine := csrfTestEngine(allowed)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/posts", nil)
		req.Header.Set("Origin", "https://example.com")
		req.AddCookie(&http.Cookie{Name: utils.CSRFTokenCookie, Value: "token"})
		req.Header.Set(utils.CSRFTokenHeader, "token")
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("foreign origin rejected despite matching tokens", func(t *testing.T) {
		engine := csrfTestEngine(allowed)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/posts", nil)
		req.Header.Set("Origin", "https://evil.example.net")
		req.AddCookie(&http.Cookie{Name: utils.CSRFTokenCookie, Value: "token"})
		req.Header.Set(utils.CSRFTokenHeader, "token")
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("referer used when origin absent", func(t *testing.T) {
		engine := csrfTestEngine(allowed)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/posts", nil)
		req.Header.Set("Referer", "https://example.com/admin/posts")
		req.AddCookie(&http.Cookie{Name: utils.CSRFTokenCookie, Value: "token"})
		req.Header.Set(utils.CSRFTokenHeader, "token")
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
