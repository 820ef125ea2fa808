package client

import (
	"context"

	"github.com/BruksfildServices01/salon-records/internal/audit"
	domain "github.com/BruksfildServices01/salon-records/internal/domain/salon"
)

// DeleteCascade removes a client together with every appointment owned by
// it and every purchase and service hanging off those appointments.
//
// Order inside the transaction: purchases and services per appointment,
// then the appointment, then the client. A failure anywhere rolls the whole
// call back, so the store never holds a client without its dependents or
// orphans pointing at a deleted parent.
type DeleteCascade struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteCascade(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteCascade {
	return &DeleteCascade{
		repo:  repo,
		audit: audit,
	}
}

// Execute returns the total number of rows removed across all four tables.
// The count is zero only when the client itself was absent.
func (uc *DeleteCascade) Execute(
	ctx context.Context,
	clientID string,
) (int64, error) {

	var total int64

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		appointments, err := tx.ListAppointmentsByClient(ctx, clientID)
		if err != nil {
			return err
		}

		for _, ap := range appointments {
			n, err := tx.DeletePurchasesByAppointment(ctx, ap.ID)
			if err != nil {
				return err
			}
			total += n

			n, err = tx.DeleteServicesByAppointment(ctx, ap.ID)
			if err != nil {
				return err
			}
			total += n

			n, err = tx.DeleteAppointmentByID(ctx, ap.ID)
			if err != nil {
				return err
			}
			total += n
		}

		n, err := tx.DeleteClientByID(ctx, clientID)
		if err != nil {
			return err
		}
		total += n

		return nil
	})
	if err != nil {
		return 0, err
	}

	if total > 0 {
		uc.audit.Dispatch(audit.Event{
			Action:   "client_cascade_deleted",
			Entity:   "client",
			EntityID: &clientID,
			Metadata: map[string]any{
				"deleted": total,
			},
		})
	}

	return total, nil
}
