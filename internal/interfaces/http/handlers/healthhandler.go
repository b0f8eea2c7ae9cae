package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"inkwell/internal/infrastructure/repository"
	"inkwell/internal/infrastructure/schema"
	"inkwell/internal/shared/logger"
	"inkwell/internal/shared/utils"
)

type HealthHandler struct {
	db          *gorm.DB
	provisioner *schema.Provisioner
	logger      logger.Interface
}

func NewHealthHandler(db *gorm.DB, provisioner *schema.Provisioner, logger logger.Interface) *HealthHandler {
	return &HealthHandler{
		db:          db,
		provisioner: provisioner,
		logger:      logger,
	}
}

func (h *HealthHandler) Health(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		h.logger.Errorw("health check failed", "error", err)
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"status": "ok"})
}

// RepairSchema drops the provisioning memo and re-runs provisioning for
// every table group, picking up tables or columns added since deployment.
func (h *HealthHandler) RepairSchema(c *gin.Context) {
	h.provisioner.Reset()
	if err := repository.ProvisionAll(h.provisioner); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	h.logger.Infow("schema repair completed")
	utils.SuccessResponse(c, http.StatusOK, "schema repaired", nil)
}
