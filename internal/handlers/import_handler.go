package handlers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-records/internal/csvimport"
	"github.com/BruksfildServices01/salon-records/internal/httperr"
	"github.com/BruksfildServices01/salon-records/internal/httpresp"
	ucImporter "github.com/BruksfildServices01/salon-records/internal/usecase/importer"
)

type ImportHandler struct {
	importCSV *ucImporter.ImportCSV
}

func NewImportHandler(importCSV *ucImporter.ImportCSV) *ImportHandler {
	return &ImportHandler{importCSV: importCSV}
}

// csvData may legitimately be empty; the importer reports that as a soft
// "no entities recognized" outcome rather than a binding failure.
type importCSVRequest struct {
	TableName string `json:"tableName" binding:"required"`
	CSVData   string `json:"csvData"`
}

type importCSVResponse struct {
	Table   string `json:"table"`
	BatchID string `json:"batch_id"`
	Records int    `json:"records"`
}

// ======================================================
// IMPORT CSV
// ======================================================
func (h *ImportHandler) Import(c *gin.Context) {
	var req importCSVRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", "tableName is required")
		return
	}

	result, err := h.importCSV.Execute(c.Request.Context(), ucImporter.ImportCSVInput{
		TableName: req.TableName,
		CSVData:   req.CSVData,
	})
	if err != nil {
		var parseErr *csvimport.ParseError
		switch {
		case httperr.IsBusiness(err, "unknown_table"):
			httperr.BadRequest(c, "unknown_table", "unknown table name: "+req.TableName)
		case httperr.IsBusiness(err, "no_entities_recognized"):
			httperr.BadRequest(c, "no_entities_recognized", "could not read entities from CSV")
		case errors.As(err, &parseErr):
			// fixed payload, parse details stay server-side
			log.Println("csv import parse error:", err)
			httperr.Internal(c, "csv_parse_error", "error while parsing CSV")
		default:
			log.Println("csv import failed:", err)
			httperr.Internal(c, "import_failed", "import failed")
		}
		return
	}

	httpresp.OK(c, importCSVResponse{
		Table:   string(result.Table),
		BatchID: result.BatchID,
		Records: result.Records,
	})
}
