package utils

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell/internal/shared/config"
)

const (
	AdminSessionCookie = "inkwell_admin_session"
	CSRFTokenCookie    = "inkwell_csrf"
	CSRFTokenHeader    = "X-CSRF-Token"
	csrfTokenBytes     = 32
)

// SetAdminSessionCookies sets the session token as an HttpOnly cookie and a
// freshly generated CSRF token as a script-readable cookie with the same
// scope and lifetime. The CSRF value is returned so callers can log in tests;
// it is never persisted server-side.
func SetAdminSessionCookies(c *gin.Context, cookieConfig config.CookieConfig, sessionToken string, maxAge int) string {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))

	c.SetCookie(
		AdminSessionCookie,
		sessionToken,
		maxAge,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true, // HttpOnly
	)

	csrfToken := GenerateCSRFToken()
	c.SetCookie(
		CSRFTokenCookie,
		csrfToken,
		maxAge,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		false, // HttpOnly=false so frontend JS can echo it into the header
	)
	return csrfToken
}

// ClearAdminSessionCookies clears both cookies by re-setting them expired.
func ClearAdminSessionCookies(c *gin.Context, cookieConfig config.CookieConfig) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))

	c.SetCookie(AdminSessionCookie, "", -1, cookieConfig.Path, cookieConfig.Domain, cookieConfig.Secure, true)
	c.SetCookie(CSRFTokenCookie, "", -1, cookieConfig.Path, cookieConfig.Domain, cookieConfig.Secure, false)
}

// GetSessionTokenFromCookie retrieves the raw session token, if any.
func GetSessionTokenFromCookie(c *gin.Context) string {
	token, err := c.Cookie(AdminSessionCookie)
	if err != nil {
		return ""
	}
	return token
}

// GenerateCSRFToken generates a cryptographically random hex token.
func GenerateCSRFToken() string {
	b := make([]byte, csrfTokenBytes)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand.Read only fails on catastrophic OS errors
		panic("csrf: failed to generate random token: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// parseSameSite converts string to http.SameSite
func parseSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
