package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-records/internal/audit"
	domain "github.com/BruksfildServices01/salon-records/internal/domain/salon"
	"github.com/BruksfildServices01/salon-records/internal/httperr"
	"github.com/BruksfildServices01/salon-records/internal/httpresp"
)

type ServiceHandler struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewServiceHandler(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ServiceHandler {
	return &ServiceHandler{
		repo:  repo,
		audit: audit,
	}
}

func (h *ServiceHandler) Get(c *gin.Context) {
	s, err := h.repo.GetServiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "service not found")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "failed to get service")
		return
	}
	httpresp.OK(c, s)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	rows, err := h.repo.DeleteServiceByID(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_delete_service", "failed to delete service")
		return
	}
	if rows == 0 {
		httperr.NotFound(c, "service_not_found", "service not found")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &id,
	})

	httpresp.OK(c, gin.H{"deleted": rows})
}
