package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminusecases "inkwell/internal/application/admin/usecases"
	commentusecases "inkwell/internal/application/comment/usecases"
	postusecases "inkwell/internal/application/post/usecases"
	reactionusecases "inkwell/internal/application/reaction/usecases"
	"inkwell/internal/infrastructure/auth"
	"inkwell/internal/infrastructure/captcha"
	"inkwell/internal/infrastructure/config"
	"inkwell/internal/infrastructure/repository"
	"inkwell/internal/infrastructure/schema"
	"inkwell/internal/interfaces/http/handlers"
	"inkwell/internal/interfaces/http/middleware"
	"inkwell/internal/interfaces/http/routes"
	"inkwell/internal/shared/logger"
	"inkwell/internal/shared/services/markdown"
)

// NewRouter wires repositories, use cases, and handlers into a configured
// gin engine.
func NewRouter(cfg *config.Config, db *gorm.DB, log logger.Interface) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())

	provisioner := schema.NewProvisioner(db, cfg.Schema.AllowBootstrap, log)

	credentialRepo := repository.NewCredentialRepository(db, provisioner)
	sessionRepo := repository.NewAdminSessionRepository(db, provisioner)
	attemptRepo := repository.NewLoginAttemptRepository(db, provisioner)
	commentRepo := repository.NewCommentRepository(db, provisioner)
	banRepo := repository.NewCommentBanRepository(db, provisioner)
	postRepo := repository.NewPostRepository(db, provisioner)
	reactionRepo := repository.NewReactionRepository(db, provisioner)

	hasher := auth.NewPBKDF2PasswordHasher(cfg.Auth.Password.Iterations)
	identity := auth.NewClientIdentity(cfg.Auth.IdentitySalt)
	verifier := captcha.NewTurnstileVerifier(cfg.Captcha.TurnstileSecret, cfg.Captcha.VerifyURL)
	markdownService := markdown.NewService()

	loginUC := adminusecases.NewLoginUseCase(credentialRepo, sessionRepo, attemptRepo, hasher, cfg.Auth, log)
	logoutUC := adminusecases.NewLogoutUseCase(sessionRepo, log)
	checkSessionUC := adminusecases.NewCheckSessionUseCase(sessionRepo, log)

	submitCommentUC := commentusecases.NewSubmitCommentUseCase(commentRepo, banRepo, postRepo, verifier, cfg.Comments, log)
	listCommentsUC := commentusecases.NewListCommentsUseCase(commentRepo, log)
	listByStatusUC := commentusecases.NewListCommentsByStatusUseCase(commentRepo, log)
	moderateUC := commentusecases.NewModerateCommentUseCase(commentRepo, log)
	deleteCommentUC := commentusecases.NewDeleteCommentUseCase(commentRepo, log)
	banCommenterUC := commentusecases.NewBanCommenterUseCase(commentRepo, banRepo, log)

	createPostUC := postusecases.NewCreatePostUseCase(postRepo, log)
	updatePostUC := postusecases.NewUpdatePostUseCase(postRepo, log)
	publishPostUC := postusecases.NewPublishPostUseCase(postRepo, log)
	unpublishPostUC := postusecases.NewUnpublishPostUseCase(postRepo, log)
	listPostsUC := postusecases.NewListPostsUseCase(postRepo, log)
	getPostBySlugUC := postusecases.NewGetPostBySlugUseCase(postRepo, markdownService, log)

	addReactionUC := reactionusecases.NewAddReactionUseCase(reactionRepo, log)
	listReactionsUC := reactionusecases.NewListReactionsUseCase(reactionRepo, log)

	authHandler := handlers.NewAuthHandler(loginUC, logoutUC, checkSessionUC, identity, cfg.Auth, log)
	commentHandler := handlers.NewCommentHandler(submitCommentUC, listCommentsUC, identity, log)
	adminCommentHandler := handlers.NewAdminCommentHandler(listByStatusUC, moderateUC, deleteCommentUC, banCommenterUC, log)
	postHandler := handlers.NewPostHandler(createPostUC, updatePostUC, publishPostUC, unpublishPostUC, listPostsUC, getPostBySlugUC, log)
	reactionHandler := handlers.NewReactionHandler(addReactionUC, listReactionsUC, log)
	healthHandler := handlers.NewHealthHandler(db, provisioner, log)

	authMiddleware := middleware.NewAuthMiddleware(checkSessionUC, log)

	routes.SetupPublicRoutes(engine, &routes.PublicRouteConfig{
		PostHandler:     postHandler,
		CommentHandler:  commentHandler,
		ReactionHandler: reactionHandler,
		HealthHandler:   healthHandler,
	})
	routes.SetupAdminRoutes(engine, &routes.AdminRouteConfig{
		AuthHandler:         authHandler,
		PostHandler:         postHandler,
		AdminCommentHandler: adminCommentHandler,
		HealthHandler:       healthHandler,
		AuthMiddleware:      authMiddleware,
		AllowedOrigins:      cfg.Server.AllowedOrigins,
	})

	return engine
}
