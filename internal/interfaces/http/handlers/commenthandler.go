package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"inkwell/internal/application/comment/usecases"
	"inkwell/internal/domain/comment"
	"inkwell/internal/infrastructure/auth"
	"inkwell/internal/shared/logger"
	"inkwell/internal/shared/utils"
)

type CommentHandler struct {
	submitUseCase *usecases.SubmitCommentUseCase
	listUseCase   *usecases.ListCommentsUseCase
	identity      *auth.ClientIdentity
	logger        logger.Interface
}

func NewCommentHandler(
	submitUC *usecases.SubmitCommentUseCase,
	listUC *usecases.ListCommentsUseCase,
	identity *auth.ClientIdentity,
	logger logger.Interface,
) *CommentHandler {
	return &CommentHandler{
		submitUseCase: submitUC,
		listUseCase:   listUC,
		identity:      identity,
		logger:        logger,
	}
}

type SubmitCommentRequest struct {
	Target       string  `json:"target" binding:"required"`
	ParentID     *string `json:"parent_id"`
	DisplayName  string  `json:"display_name" binding:"required,max=60"`
	Body         string  `json:"body" binding:"required"`
	CaptchaToken string  `json:"captcha_token"`
}

type CommentResponse struct {
	ID          string    `json:"id"`
	Target      string    `json:"target"`
	ParentID    *string   `json:"parent_id,omitempty"`
	DisplayName string    `json:"display_name"`
	Body        string    `json:"body"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func toCommentResponse(c *comment.Comment) CommentResponse {
	return CommentResponse{
		ID:          c.ID(),
		Target:      c.TargetKey(),
		ParentID:    c.ParentID(),
		DisplayName: c.DisplayName(),
		Body:        c.Body(),
		Status:      c.Status().String(),
		CreatedAt:   c.CreatedAt(),
	}
}

func (h *CommentHandler) Submit(c *gin.Context) {
	var req SubmitCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	address := clientAddress(c)
	cmd := usecases.SubmitCommentCommand{
		TargetKey:     req.Target,
		ParentID:      req.ParentID,
		DisplayName:   req.DisplayName,
		Body:          req.Body,
		CaptchaToken:  req.CaptchaToken,
		ClientHash:    h.identity.HashAddress(address),
		UserAgentHash: h.identity.HashUserAgent(c.GetHeader("User-Agent")),
		RemoteIP:      address,
	}

	result, err := h.submitUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"comment": toCommentResponse(result.Comment),
		"pending": result.Pending,
	}, "comment submitted")
}

func (h *CommentHandler) List(c *gin.Context) {
	cmd := usecases.ListCommentsCommand{
		TargetKey: c.Query("target"),
		Limit:     intQuery(c, "limit"),
	}

	comments, err := h.listUseCase.Execute(c.Request.Context(), cmd)
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
