package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell/internal/application/reaction/usecases"
	"inkwell/internal/shared/logger"
	"inkwell/internal/shared/utils"
)

type ReactionHandler struct {
	addUseCase  *usecases.AddReactionUseCase
	listUseCase *usecases.ListReactionsUseCase
	logger      logger.Interface
}

func NewReactionHandler(
	addUC *usecases.AddReactionUseCase,
	listUC *usecases.ListReactionsUseCase,
	logger logger.Interface,
) *ReactionHandler {
	return &ReactionHandler{
		addUseCase:  addUC,
		listUseCase: listUC,
		logger:      logger,
	}
}

type AddReactionRequest struct {
	Target string `json:"target" binding:"required"`
	Kind   string `json:"kind" binding:"required"`
}

func (h *ReactionHandler) Add(c *gin.Context) {
	var req AddReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	cmd := usecases.AddReactionCommand{
		TargetKey: req.Target,
		Kind:      req.Kind,
	}
	if err := h.addUseCase.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "reaction recorded", nil)
}

func (h *ReactionHandler) List(c *gin.Context) {
	cmd := usecases.ListReactionsCommand{TargetKey: c.Query("target")}

	reactions, err := h.listUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	counts := make(map[string]int64, len(reactions))
	for _, r := range reactions {
		counts[r.Kind()] = r.Count()
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"reactions": counts})
}
