package client

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-records/internal/domain/salon"
	"github.com/BruksfildServices01/salon-records/internal/dto"
	"github.com/BruksfildServices01/salon-records/internal/timezone"
)

// MostLoyal ranks clients by loyalty points accrued since a cutoff date.
// The date is normalized to the start of that day in UTC before querying.
type MostLoyal struct {
	repo domain.Repository
}

func NewMostLoyal(repo domain.Repository) *MostLoyal {
	return &MostLoyal{repo: repo}
}

func (uc *MostLoyal) Execute(
	ctx context.Context,
	date time.Time,
	limit int,
) ([]dto.ClientLoyalty, error) {

	// A non-positive limit means an empty result, not "unlimited".
	if limit <= 0 {
		return []dto.ClientLoyalty{}, nil
	}

	since := timezone.DayStartUTC(date)
	return uc.repo.TopLoyalClients(ctx, since, limit)
}
