package middleware

import (
	"github.com/gin-gonic/gin"

	"inkwell/internal/application/admin/usecases"
	"inkwell/internal/shared/logger"
	"inkwell/internal/shared/utils"
)

// CredentialIDKey is the context key carrying the authenticated credential ID.
const CredentialIDKey = "credential_id"

type AuthMiddleware struct {
	checkSession *usecases.CheckSessionUseCase
	logger       logger.Interface
}

func NewAuthMiddleware(checkSession *usecases.CheckSessionUseCase, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		checkSession: checkSession,
		logger:       logger,
	}
}

// RequireAdmin resolves the session cookie to a live session and aborts with
// 401 otherwise. Tokens are accepted from the cookie only; there is no
// header fallback because the console is browser-driven.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetSessionTokenFromCookie(c)

		session, err := m.checkSession.Execute(c.Request.Context(), usecases.CheckSessionCommand{
			SessionToken: token,
		})
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set(CredentialIDKey, session.CredentialID())
		c.Next()
	}
}
