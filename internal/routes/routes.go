package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-records/internal/audit"
	"github.com/BruksfildServices01/salon-records/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-records/internal/infra/repository"
	ucClient "github.com/BruksfildServices01/salon-records/internal/usecase/client"
	ucImporter "github.com/BruksfildServices01/salon-records/internal/usecase/importer"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	salonRepo := infraRepo.NewSalonGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	importCSVUC := ucImporter.NewImportCSV(salonRepo, auditDispatcher)
	deleteCascadeUC := ucClient.NewDeleteCascade(salonRepo, auditDispatcher)
	mostLoyalUC := ucClient.NewMostLoyal(salonRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	importHandler := handlers.NewImportHandler(importCSVUC)
	clientHandler := handlers.NewClientHandler(salonRepo, deleteCascadeUC, mostLoyalUC, auditDispatcher)
	appointmentHandler := handlers.NewAppointmentHandler(salonRepo, auditDispatcher)
	purchaseHandler := handlers.NewPurchaseHandler(salonRepo, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(salonRepo, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// ROUTES
	// ======================================================
	salon := r.Group("/salon")
	{
		salon.POST("/importCsv", importHandler.Import)

		// ------------------------------
		// CLIENTS
		// ------------------------------
		salon.GET("/clients", clientHandler.List)
		salon.GET("/clients/most-loyal", clientHandler.MostLoyal)
		salon.GET("/clients/:id", clientHandler.Get)
		salon.POST("/clients", clientHandler.Update)
		salon.DELETE("/clients/:id", clientHandler.Delete)
		salon.DELETE("/clients/:id/references", clientHandler.DeleteWithReferences)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		salon.GET("/appointments", appointmentHandler.List)
		salon.GET("/appointments/:id", appointmentHandler.Get)
		salon.DELETE("/appointments/:id", appointmentHandler.Delete)

		// ------------------------------
		// PURCHASES / SERVICES
		// ------------------------------
		salon.GET("/purchases/:id", purchaseHandler.Get)
		salon.DELETE("/purchases/:id", purchaseHandler.Delete)
		salon.GET("/services/:id", serviceHandler.Get)
		salon.DELETE("/services/:id", serviceHandler.Delete)

		salon.GET("/audit-logs", auditLogsHandler.List)
	}
}
