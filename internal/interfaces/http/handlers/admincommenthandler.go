package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell/internal/application/comment/usecases"
	"inkwell/internal/shared/logger"
	"inkwell/internal/shared/utils"
)

// AdminCommentHandler serves the moderation console: queue listing, status
// changes, deletion, and commenter bans.
type AdminCommentHandler struct {
	listByStatusUseCase *usecases.ListCommentsByStatusUseCase
	moderateUseCase     *usecases.ModerateCommentUseCase
	deleteUseCase       *usecases.DeleteCommentUseCase
	banUseCase          *usecases.BanCommenterUseCase
	logger              logger.Interface
}

func NewAdminCommentHandler(
	listByStatusUC *usecases.ListCommentsByStatusUseCase,
	moderateUC *usecases.ModerateCommentUseCase,
	deleteUC *usecases.DeleteCommentUseCase,
	banUC *usecases.BanCommenterUseCase,
	logger logger.Interface,
) *AdminCommentHandler {
	return &AdminCommentHandler{
		listByStatusUseCase: listByStatusUC,
		moderateUseCase:     moderateUC,
		deleteUseCase:       deleteUC,
		banUseCase:          banUC,
		logger:              logger,
	}
}

func (h *AdminCommentHandler) ListByStatus(c *gin.Context) {
	status := c.DefaultQuery("status", "pending")
	cmd := usecases.ListCommentsByStatusCommand{
		Status: status,
		Limit:  intQuery(c, "limit"),
	}

	comments, err := h.listByStatusUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]CommentResponse, 0, len(comments))
	for _, cm := range comments {
		responses = append(responses, toCommentResponse(cm))
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"comments": responses})
}

type ModerateCommentRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *AdminCommentHandler) Moderate(c *gin.Context) {
	var req ModerateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	cmd := usecases.ModerateCommentCommand{
		CommentID: c.Param("id"),
		Status:    req.Status,
	}

	moderated, err := h.moderateUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "comment updated", gin.H{
		"comment": toCommentResponse(moderated),
	})
}

func (h *AdminCommentHandler) Delete(c *gin.Context) {
	cmd := usecases.DeleteCommentCommand{CommentID: c.Param("id")}

	if err := h.deleteUseCase.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

type BanCommenterRequest struct {
	Reason string `json:"reason"`
}

func (h *AdminCommentHandler) Ban(c *gin.Context) {
	var req BanCommenterRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	cmd := usecases.BanCommenterCommand{
		CommentID: c.Param("id"),
		Reason:    req.Reason,
	}

	if err := h.banUseCase.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "commenter banned", nil)
}
