package importer

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-records/internal/audit"
	"github.com/BruksfildServices01/salon-records/internal/csvimport"
	domain "github.com/BruksfildServices01/salon-records/internal/domain/salon"
	"github.com/BruksfildServices01/salon-records/internal/httperr"
)

// ======================================================
// INPUT / RESULT
// ======================================================

type ImportCSVInput struct {
	TableName string
	CSVData   string
}

type ImportCSVResult struct {
	Table   csvimport.TableName
	BatchID string
	Records int
}

// ======================================================
// USE CASE
// ======================================================

// ImportCSV dispatches a table-tagged CSV document to the decoder for that
// table and upserts the decoded batch inside one transaction. Exactly one
// table is touched per call.
type ImportCSV struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewImportCSV(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ImportCSV {
	return &ImportCSV{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ImportCSV) Execute(
	ctx context.Context,
	in ImportCSVInput,
) (*ImportCSVResult, error) {

	// --------------------------------------------------
	// Table tag, before any decoding
	// --------------------------------------------------
	table, ok := csvimport.ParseTableName(in.TableName)
	if !ok {
		return nil, httperr.ErrBusiness("unknown_table")
	}

	// --------------------------------------------------
	// Decode one kind, all-or-nothing
	// --------------------------------------------------
	var (
		records int
		upsert  func(domain.Repository) error
	)

	switch table {
	case csvimport.TableClients:
		batch, err := csvimport.DecodeClients(in.CSVData)
		if err != nil {
			return nil, err
		}
		records = len(batch)
		upsert = func(tx domain.Repository) error {
			return tx.UpsertClients(ctx, batch)
		}

	case csvimport.TableAppointments:
		batch, err := csvimport.DecodeAppointments(in.CSVData)
		if err != nil {
			return nil, err
		}
		records = len(batch)
		upsert = func(tx domain.Repository) error {
			return tx.UpsertAppointments(ctx, batch)
		}

	case csvimport.TablePurchases:
		batch, err := csvimport.DecodePurchases(in.CSVData)
		if err != nil {
			return nil, err
		}
		records = len(batch)
		upsert = func(tx domain.Repository) error {
			return tx.UpsertPurchases(ctx, batch)
		}

	case csvimport.TableServices:
		batch, err := csvimport.DecodeServices(in.CSVData)
		if err != nil {
			return nil, err
		}
		records = len(batch)
		upsert = func(tx domain.Repository) error {
			return tx.UpsertServices(ctx, batch)
		}
	}

	// Decoded fine but nothing usable: soft failure, no mutation.
	if records == 0 {
		return nil, httperr.ErrBusiness("no_entities_recognized")
	}

	// --------------------------------------------------
	// One transaction per batch
	// --------------------------------------------------
	if err := uc.repo.Transaction(ctx, upsert); err != nil {
		return nil, err
	}

	result := &ImportCSVResult{
		Table:   table,
		BatchID: uuid.NewString(),
		Records: records,
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "csv_imported",
		Entity:   string(table),
		EntityID: &result.BatchID,
		Metadata: map[string]any{
			"records": records,
		},
	})

	return result, nil
}
