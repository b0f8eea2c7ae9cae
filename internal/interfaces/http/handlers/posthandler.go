package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"inkwell/internal/application/post/usecases"
	"inkwell/internal/domain/post"
	"inkwell/internal/shared/logger"
	"inkwell/internal/shared/utils"
)

type PostHandler struct {
	createUseCase    *usecases.CreatePostUseCase
	updateUseCase    *usecases.UpdatePostUseCase
	publishUseCase   *usecases.PublishPostUseCase
	unpublishUseCase *usecases.UnpublishPostUseCase
	listUseCase      *usecases.ListPostsUseCase
	getBySlugUseCase *usecases.GetPostBySlugUseCase
	logger           logger.Interface
}

func NewPostHandler(
	createUC *usecases.CreatePostUseCase,
	updateUC *usecases.UpdatePostUseCase,
	publishUC *usecases.PublishPostUseCase,
	unpublishUC *usecases.UnpublishPostUseCase,
	listUC *usecases.ListPostsUseCase,
	getBySlugUC *usecases.GetPostBySlugUseCase,
	logger logger.Interface,
) *PostHandler {
	return &PostHandler{
		createUseCase:    createUC,
		updateUseCase:    updateUC,
		publishUseCase:   publishUC,
		unpublishUseCase: unpublishUC,
		listUseCase:      listUC,
		getBySlugUseCase: getBySlugUC,
		logger:           logger,
	}
}

type PostResponse struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary,omitempty"`
	Status      string     `json:"status"`
	Pinned      bool       `json:"pinned"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func toPostResponse(p *post.Post) PostResponse {
	return PostResponse{
		ID:          p.ID(),
		Slug:        p.Slug(),
		Title:       p.Title(),
		Summary:     p.Summary(),
		Status:      string(p.Status()),
		Pinned:      p.Pinned(),
		PublishedAt: p.PublishedAt(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

// List serves the public post index: published posts only, pinned first.
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListPostsCommand{PublishedOnly: true})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"posts": toPostResponses(posts)})
}

// GetBySlug serves a single published post with its rendered body.
func (h *PostHandler) GetBySlug(c *gin.Context) {
	result, err := h.getBySlugUseCase.Execute(c.Request.Context(), usecases.GetPostBySlugCommand{
		Slug: c.Param("slug"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	response := toPostResponse(result.Post)
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"post":         response,
		"content_html": result.ContentHTML,
	})
}

type CreatePostRequest struct {
	Slug      string `json:"slug" binding:"required,max=255"`
	Title     string `json:"title" binding:"required,max=255"`
	Summary   string `json:"summary" binding:"max=1024"`
	ContentMD string `json:"content_md"`
}

func (h *PostHandler) Create(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	created, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreatePostCommand{
		Slug:      req.Slug,
		Title:     req.Title,
		Summary:   req.Summary,
		ContentMD: req.ContentMD,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, gin.H{"post": toPostResponse(created)}, "post created")
}

type UpdatePostRequest struct {
	Title     string `json:"title" binding:"required,max=255"`
	Summary   string `json:"summary" binding:"max=1024"`
	ContentMD string `json:"content_md"`
	Pinned    *bool  `json:"pinned"`
}

func (h *PostHandler) Update(c *gin.Context) {
	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	updated, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdatePostCommand{
		PostID:    c.Param("id"),
		Title:     req.Title,
		Summary:   req.Summary,
		ContentMD: req.ContentMD,
		Pinned:    req.Pinned,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "post updated", gin.H{"post": toPostResponse(updated)})
}

func (h *PostHandler) Publish(c *gin.Context) {
	published, err := h.publishUseCase.Execute(c.Request.Context(), usecases.PublishPostCommand{
		PostID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "post published", gin.H{"post": toPostResponse(published)})
}

func (h *PostHandler) Unpublish(c *gin.Context) {
	unpublished, err := h.unpublishUseCase.Execute(c.Request.Context(), usecases.UnpublishPostCommand{
		PostID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "post unpublished", gin.H{"post": toPostResponse(unpublished)})
}

// ListAll serves the admin post index including drafts and archived posts.
func (h *PostHandler) ListAll(c *gin.Context) {
	posts, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListPostsCommand{PublishedOnly: false})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"posts": toPostResponses(posts)})
}

// Preview serves a post by slug regardless of publication state.
func (h *PostHandler) Preview(c *gin.Context) {
	result, err := h.getBySlugUseCase.Execute(c.Request.Context(), usecases.GetPostBySlugCommand{
		Slug:               c.Param("slug"),
		IncludeUnpublished: true,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"post":         toPostResponse(result.Post),
		"content_html": result.ContentHTML,
	})
}

func toPostResponses(posts []*post.Post) []PostResponse {
	responses := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		responses = append(responses, toPostResponse(p))
	}
	return responses
}
