package salon

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-records/internal/dto"
	"github.com/BruksfildServices01/salon-records/internal/models"
)

// Repository is the record-store contract the use cases run against.
// Implementations must return gorm.ErrRecordNotFound-compatible errors from
// the Get* lookups and affected-row counts from the Delete* primitives.
type Repository interface {
	// Transaction runs fn against a repository bound to one database
	// transaction. fn returning an error rolls everything back.
	Transaction(ctx context.Context, fn func(Repository) error) error

	// -------- Lookups --------
	GetClientByID(ctx context.Context, id string) (*models.Client, error)
	ListClients(ctx context.Context) ([]models.Client, error)
	GetAppointmentByID(ctx context.Context, id string) (*models.Appointment, error)
	ListAppointmentsByClient(ctx context.Context, clientID string) ([]models.Appointment, error)
	ListAppointmentsBetween(ctx context.Context, start, end time.Time) ([]models.Appointment, error)
	GetPurchaseByID(ctx context.Context, id string) (*models.Purchase, error)
	GetServiceByID(ctx context.Context, id string) (*models.Service, error)

	// -------- Batch upsert (insert-or-full-replace by id) --------
	UpsertClients(ctx context.Context, batch []models.Client) error
	UpsertAppointments(ctx context.Context, batch []models.Appointment) error
	UpsertPurchases(ctx context.Context, batch []models.Purchase) error
	UpsertServices(ctx context.Context, batch []models.Service) error

	// -------- Single-row update --------
	SaveClient(ctx context.Context, client *models.Client) (int64, error)

	// -------- Counted deletes --------
	DeleteClientByID(ctx context.Context, id string) (int64, error)
	DeleteAppointmentByID(ctx context.Context, id string) (int64, error)
	DeletePurchaseByID(ctx context.Context, id string) (int64, error)
	DeleteServiceByID(ctx context.Context, id string) (int64, error)
	DeletePurchasesByAppointment(ctx context.Context, appointmentID string) (int64, error)
	DeleteServicesByAppointment(ctx context.Context, appointmentID string) (int64, error)

	// -------- Loyalty ranking --------
	TopLoyalClients(ctx context.Context, since time.Time, limit int) ([]dto.ClientLoyalty, error)
}
