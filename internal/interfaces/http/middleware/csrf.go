package middleware

import (
	"crypto/subtle"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"inkwell/internal/shared/errors"
	"inkwell/internal/shared/utils"
)

// csrfExactPaths lists exact paths exempt from CSRF validation.
// Login runs before any cookie pair exists, so it cannot carry one.
var csrfExactPaths = map[string]struct{}{
	"/api/admin/login": {},
}

// CSRF returns a middleware that validates mutating requests with the double
// submit cookie pattern: the script-readable cookie value must be echoed in
// the request header, and the request origin must be on the allow list. Safe
// methods (GET, HEAD, OPTIONS) are always skipped.
func CSRF(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isSafeMethod(c.Request.Method) {
			c.Next()
			return
		}
		if _, ok := csrfExactPaths[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		if !originAllowed(c, allowedOrigins) {
			utils.ErrorResponseWithError(c, errors.NewCSRFInvalidError("request origin not allowed"))
			c.Abort()
			return
		}

		cookieToken, err := c.Cookie(utils.CSRFTokenCookie)
		if err != nil || cookieToken == "" {
			utils.ErrorResponseWithError(c, errors.NewCSRFInvalidError("missing CSRF cookie"))
			c.Abort()
			return
		}

		headerToken := c.GetHeader(utils.CSRFTokenHeader)
		if headerToken == "" {
			utils.ErrorResponseWithError(c, errors.NewCSRFInvalidError("missing CSRF token header"))
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(cookieToken), []byte(headerToken)) != 1 {
			utils.ErrorResponseWithError(c, errors.NewCSRFInvalidError("CSRF token mismatch"))
			c.Abort()
			return
		}

		c.Next()
	}
}

func isSafeMethod(method string) bool {
	switch method {
	case "GET", "HEAD", "OPTIONS":
		return true
	}
	return false
}

// originAllowed checks the Origin header, falling back to Referer. Requests
// carrying neither pass: non-browser clients never send them and the token
// comparison still protects browser sessions.
func originAllowed(c *gin.Context, allowedOrigins []string) bool {
	origin := c.GetHeader("Origin")
	if origin == "" {
		if referer := c.GetHeader("Referer"); referer != "" {
			ref, err := url.Parse(referer)
			if err != nil {
				return false
			}
			origin = ref.Scheme + "://" + ref.Host
		}
	}
	if origin == "" {
		return true
	}
	for _, allowed := range allowedOrigins {
		if strings.EqualFold(origin, allowed) {
			return true
		}
	}
	return false
}
