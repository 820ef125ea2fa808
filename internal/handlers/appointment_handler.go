package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-records/internal/audit"
	domain "github.com/BruksfildServices01/salon-records/internal/domain/salon"
	"github.com/BruksfildServices01/salon-records/internal/httperr"
	"github.com/BruksfildServices01/salon-records/internal/httpresp"
)

type AppointmentHandler struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAppointmentHandler(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// GET
// ======================================================
func (h *AppointmentHandler) Get(c *gin.Context) {
	ap, err := h.repo.GetAppointmentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "appointment_not_found", "appointment not found")
			return
		}
		httperr.Internal(c, "failed_to_get_appointment", "failed to get appointment")
		return
	}
	httpresp.OK(c, ap)
}

// ======================================================
// LIST (by client or by time range)
// ======================================================
func (h *AppointmentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if clientID := c.Query("client_id"); clientID != "" {
		aps, err := h.repo.ListAppointmentsByClient(ctx, clientID)
		if err != nil {
			httperr.Internal(c, "failed_to_list_appointments", "failed to list appointments")
			return
		}
		httpresp.List(c, aps)
		return
	}

	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		httperr.BadRequest(c, "invalid_range", "client_id or from/to (RFC3339) is required")
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		httperr.BadRequest(c, "invalid_range", "client_id or from/to (RFC3339) is required")
		return
	}

	aps, err := h.repo.ListAppointmentsBetween(ctx, from, to)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "failed to list appointments")
		return
	}
	httpresp.List(c, aps)
}

// ======================================================
// DELETE
// ======================================================
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	rows, err := h.repo.DeleteAppointmentByID(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_delete_appointment", "failed to delete appointment")
		return
	}
	if rows == 0 {
		httperr.NotFound(c, "appointment_not_found", "appointment not found")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &id,
	})

	httpresp.OK(c, gin.H{"deleted": rows})
}
