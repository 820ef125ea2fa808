package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-records/internal/domain/salon"
	"github.com/BruksfildServices01/salon-records/internal/dto"
	"github.com/BruksfildServices01/salon-records/internal/models"
)

type SalonGormRepository struct {
	db *gorm.DB
}

func NewSalonGormRepository(db *gorm.DB) *SalonGormRepository {
	return &SalonGormRepository{db: db}
}

// --------------------------------------------------
// Transaction scope
// --------------------------------------------------

func (r *SalonGormRepository) Transaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&SalonGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *SalonGormRepository) GetClientByID(
	ctx context.Context,
	id string,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *SalonGormRepository) ListClients(
	ctx context.Context,
) ([]models.Client, error) {

	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *SalonGormRepository) GetAppointmentByID(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *SalonGormRepository) ListAppointmentsByClient(
	ctx context.Context,
	clientID string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *SalonGormRepository) ListAppointmentsBetween(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("start_time >= ? AND start_time < ?", start, end).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *SalonGormRepository) GetPurchaseByID(
	ctx context.Context,
	id string,
) (*models.Purchase, error) {

	var p models.Purchase
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SalonGormRepository) GetServiceByID(
	ctx context.Context,
	id string,
) (*models.Service, error) {

	var s models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// --------------------------------------------------
// Batch upsert
// --------------------------------------------------
// ON CONFLICT (id) DO UPDATE on every column: the incoming record fully
// replaces the stored one, no merge semantics.

func (r *SalonGormRepository) UpsertClients(
	ctx context.Context,
	batch []models.Client,
) error {
	if len(batch) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&batch).Error
}

func (r *SalonGormRepository) UpsertAppointments(
	ctx context.Context,
	batch []models.Appointment,
) error {
	if len(batch) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&batch).Error
}

func (r *SalonGormRepository) UpsertPurchases(
	ctx context.Context,
	batch []models.Purchase,
) error {
	if len(batch) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&batch).Error
}

func (r *SalonGormRepository) UpsertServices(
	ctx context.Context,
	batch []models.Service,
) error {
	if len(batch) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&batch).Error
}

// --------------------------------------------------
// Single-row update
// --------------------------------------------------

// SaveClient overwrites the full row and reports how many rows matched,
// so callers can tell an update from a miss without a prior lookup.
func (r *SalonGormRepository) SaveClient(
	ctx context.Context,
	client *models.Client,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", client.ID).
		Select("*").
		Updates(client)
	return res.RowsAffected, res.Error
}

// --------------------------------------------------
// Counted deletes
// --------------------------------------------------

func (r *SalonGormRepository) DeleteClientByID(
	ctx context.Context,
	id string,
) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Client{})
	return res.RowsAffected, res.Error
}

func (r *SalonGormRepository) DeleteAppointmentByID(
	ctx context.Context,
	id string,
) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Appointment{})
	return res.RowsAffected, res.Error
}

func (r *SalonGormRepository) DeletePurchaseByID(
	ctx context.Context,
	id string,
) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Purchase{})
	return res.RowsAffected, res.Error
}

func (r *SalonGormRepository) DeleteServiceByID(
	ctx context.Context,
	id string,
) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Service{})
	return res.RowsAffected, res.Error
}

func (r *SalonGormRepository) DeletePurchasesByAppointment(
	ctx context.Context,
	appointmentID string,
) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		Delete(&models.Purchase{})
	return res.RowsAffected, res.Error
}

func (r *SalonGormRepository) DeleteServicesByAppointment(
	ctx context.Context,
	appointmentID string,
) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		Delete(&models.Service{})
	return res.RowsAffected, res.Error
}

// --------------------------------------------------
// Loyalty ranking
// --------------------------------------------------

// Loyalty points from purchases and services are counted toward the owning
// client when the appointment started at or after the cutoff. Ties resolve
// by client id ascending so the ranking is deterministic.
const topLoyalClientsSQL = `
SELECT c.id AS client_id,
       c.first_name,
       c.last_name,
       SUM(x.loyalty_points) AS loyalty_points
FROM clients c
JOIN appointments a ON a.client_id = c.id
JOIN (
    SELECT appointment_id, loyalty_points FROM purchases
    UNION ALL
    SELECT appointment_id, loyalty_points FROM services
) x ON x.appointment_id = a.id
WHERE a.start_time >= ?
GROUP BY c.id, c.first_name, c.last_name
ORDER BY loyalty_points DESC, c.id ASC
LIMIT ?`

func (r *SalonGormRepository) TopLoyalClients(
	ctx context.Context,
	since time.Time,
	limit int,
) ([]dto.ClientLoyalty, error) {

	var out []dto.ClientLoyalty
	if err := r.db.WithContext(ctx).
		Raw(topLoyalClientsSQL, since, limit).
		Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*SalonGormRepository)(nil)
