package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-records/internal/httperr"
	"github.com/BruksfildServices01/salon-records/internal/httpresp"
	"github.com/BruksfildServices01/salon-records/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	var logs []models.AuditLog
	if err := h.db.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Limit(200).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "failed_to_list_audit_logs", "failed to list audit logs")
		return
	}

	httpresp.List(c, logs)
}
