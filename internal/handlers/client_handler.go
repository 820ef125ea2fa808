package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-records/internal/audit"
	domain "github.com/BruksfildServices01/salon-records/internal/domain/salon"
	"github.com/BruksfildServices01/salon-records/internal/httperr"
	"github.com/BruksfildServices01/salon-records/internal/httpresp"
	"github.com/BruksfildServices01/salon-records/internal/models"
	"github.com/BruksfildServices01/salon-records/internal/timezone"
	ucClient "github.com/BruksfildServices01/salon-records/internal/usecase/client"
	"github.com/BruksfildServices01/salon-records/internal/validators"
)

type ClientHandler struct {
	repo          domain.Repository
	deleteCascade *ucClient.DeleteCascade
	mostLoyal     *ucClient.MostLoyal
	audit         *audit.Dispatcher
}

func NewClientHandler(
	repo domain.Repository,
	deleteCascade *ucClient.DeleteCascade,
	mostLoyal *ucClient.MostLoyal,
	audit *audit.Dispatcher,
) *ClientHandler {
	return &ClientHandler{
		repo:          repo,
		deleteCascade: deleteCascade,
		mostLoyal:     mostLoyal,
		audit:         audit,
	}
}

// ======================================================
// LIST / GET
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.repo.ListClients(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_clients", "failed to list clients")
		return
	}
	httpresp.List(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.repo.GetClientByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "client_not_found", "client not found")
			return
		}
		httperr.Internal(c, "failed_to_get_client", "failed to get client")
		return
	}
	httpresp.OK(c, client)
}

// ======================================================
// UPDATE (full row replace, id must already exist)
// ======================================================
func (h *ClientHandler) Update(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil || client.ID == "" {
		httperr.BadRequest(c, "invalid_payload", "client id is required")
		return
	}

	if client.Email != "" && !validators.IsEmailValid(client.Email) {
		httperr.BadRequest(c, "invalid_email", "email format is invalid")
		return
	}

	rows, err := h.repo.SaveClient(c.Request.Context(), &client)
	if err != nil {
		log.Println("client update failed:", err)
		httperr.Internal(c, "failed_to_update_client", "failed to update client")
		return
	}
	if rows == 0 {
		httperr.NotFound(c, "client_not_found", "client not found")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &client.ID,
	})

	httpresp.OK(c, client)
}

// ======================================================
// DELETE / DELETE WITH REFERENCES
// ======================================================
func (h *ClientHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	rows, err := h.repo.DeleteClientByID(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_delete_client", "failed to delete client")
		return
	}
	if rows == 0 {
		httperr.NotFound(c, "client_not_found", "client not found")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: &id,
	})

	httpresp.OK(c, gin.H{"deleted": rows})
}

func (h *ClientHandler) DeleteWithReferences(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.deleteCascade.Execute(c.Request.Context(), id)
	if err != nil {
		log.Println("cascade delete failed:", err)
		httperr.Internal(c, "failed_to_delete_client", "failed to delete client and references")
		return
	}
	if deleted == 0 {
		// zero rows means the client itself was absent
		httperr.NotFound(c, "client_not_found", "client not found")
		return
	}

	httpresp.OK(c, gin.H{"deleted": deleted})
}

// ======================================================
// MOST LOYAL
// ======================================================
func (h *ClientHandler) MostLoyal(c *gin.Context) {
	date, err := timezone.ParseDate(c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD")
		return
	}

	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		httperr.BadRequest(c, "invalid_limit", "limit must be an integer")
		return
	}

	ranking, err := h.mostLoyal.Execute(c.Request.Context(), date, limit)
	if err != nil {
		httperr.Internal(c, "failed_to_rank_clients", "failed to rank clients")
		return
	}
	httpresp.List(c, ranking)
}
