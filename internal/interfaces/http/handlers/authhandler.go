package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell/internal/application/admin/usecases"
	"inkwell/internal/infrastructure/auth"
	"inkwell/internal/shared/config"
	"inkwell/internal/shared/logger"
	"inkwell/internal/shared/utils"
)

type AuthHandler struct {
	loginUseCase        *usecases.LoginUseCase
	logoutUseCase       *usecases.LogoutUseCase
	checkSessionUseCase *usecases.CheckSessionUseCase
	identity            *auth.ClientIdentity
	authConfig          config.AuthConfig
	logger              logger.Interface
}

func NewAuthHandler(
	loginUC *usecases.LoginUseCase,
	logoutUC *usecases.LogoutUseCase,
	checkSessionUC *usecases.CheckSessionUseCase,
	identity *auth.ClientIdentity,
	authConfig config.AuthConfig,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUseCase:        loginUC,
		logoutUseCase:       logoutUC,
		checkSessionUseCase: checkSessionUC,
		identity:            identity,
		authConfig:          authConfig,
		logger:              logger,
	}
}

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	cmd := usecases.LoginCommand{
		Password:   req.Password,
		ClientHash: h.identity.HashAddress(clientAddress(c)),
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("login failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	maxAge := h.authConfig.Session.TTLDays * 24 * 60 * 60
	utils.SetAdminSessionCookies(c, h.authConfig.Cookie, result.SessionToken, maxAge)

	utils.SuccessResponse(c, http.StatusOK, "login successful", gin.H{
		"expires_at": result.ExpiresAt,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token := utils.GetSessionTokenFromCookie(c)

	if err := h.logoutUseCase.Execute(c.Request.Context(), usecases.LogoutCommand{SessionToken: token}); err != nil {
		h.logger.Warnw("logout failed", "error", err)
	}

	// Cookies are cleared even when revocation failed; the browser should
	// not keep presenting a token the caller asked to discard.
	utils.ClearAdminSessionCookies(c, h.authConfig.Cookie)
	utils.SuccessResponse(c, http.StatusOK, "logged out", nil)
}

func (h *AuthHandler) Session(c *gin.Context) {
	token := utils.GetSessionTokenFromCookie(c)

	session, err := h.checkSessionUseCase.Execute(c.Request.Context(), usecases.CheckSessionCommand{
		SessionToken: token,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"authenticated": true,
		"expires_at":    session.ExpiresAt(),
	})
}
