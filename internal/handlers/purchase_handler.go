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

type PurchaseHandler struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewPurchaseHandler(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *PurchaseHandler {
	return &PurchaseHandler{
		repo:  repo,
		audit: audit,
	}
}

func (h *PurchaseHandler) Get(c *gin.Context) {
	p, err := h.repo.GetPurchaseByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "purchase_not_found", "purchase not found")
			return
		}
		httperr.Internal(c, "failed_to_get_purchase", "failed to get purchase")
		return
	}
	httpresp.OK(c, p)
}

func (h *PurchaseHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	rows, err := h.repo.DeletePurchaseByID(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_delete_purchase", "failed to delete purchase")
		return
	}
	if rows == 0 {
		httperr.NotFound(c, "purchase_not_found", "purchase not found")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "purchase_deleted",
		Entity:   "purchase",
		EntityID: &id,
	})

	httpresp.OK(c, gin.H{"deleted": rows})
}
