package csvimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-records/internal/models"
)

// Decoders turn one table-tagged CSV document into typed records. They are
// pure: no I/O beyond the input string, and all-or-nothing on failure.
//
// The header row is required. Columns are addressed by header name
// (case-insensitive), so column order in the file is free.

var timeLayouts = []string{
	"2006-01-02 15:04:05 -0700",
	time.RFC3339,
}

type row struct {
	line   int
	fields map[string]string
}

func readRows(data string, want []string) ([]row, error) {
	r := csv.NewReader(strings.NewReader(data))
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, wrapCSVErr(err, 1)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range want {
		if _, ok := index[name]; !ok {
			return nil, &ParseError{Line: 1, Err: fmt.Errorf("missing column %q", name)}
		}
	}

	var rows []row
	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			return rows, nil
		}
		line++
		if err != nil {
			return nil, wrapCSVErr(err, line)
		}

		fields := make(map[string]string, len(want))
		for _, name := range want {
			fields[name] = strings.TrimSpace(record[index[name]])
		}
		rows = append(rows, row{line: line, fields: fields})
	}
}

func wrapCSVErr(err error, fallbackLine int) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &ParseError{Line: pe.Line, Err: pe.Err}
	}
	return &ParseError{Line: fallbackLine, Err: err}
}

func DecodeClients(data string) ([]models.Client, error) {
	rows, err := readRows(data, []string{"id", "first_name", "last_name", "email", "phone", "gender", "banned"})
	if err != nil {
		return nil, err
	}

	clients := make([]models.Client, 0, len(rows))
	for _, row := range rows {
		banned, err := parseBool(row, "banned")
		if err != nil {
			return nil, err
		}
		clients = append(clients, models.Client{
			ID:        row.fields["id"],
			FirstName: row.fields["first_name"],
			LastName:  row.fields["last_name"],
			Email:     row.fields["email"],
			Phone:     row.fields["phone"],
			Gender:    row.fields["gender"],
			Banned:    banned,
		})
	}
	return clients, nil
}

func DecodeAppointments(data string) ([]models.Appointment, error) {
	rows, err := readRows(data, []string{"id", "client_id", "start_time", "end_time"})
	if err != nil {
		return nil, err
	}

	appointments := make([]models.Appointment, 0, len(rows))
	for _, row := range rows {
		start, err := parseTime(row, "start_time")
		if err != nil {
			return nil, err
		}
		end, err := parseTime(row, "end_time")
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, models.Appointment{
			ID:        row.fields["id"],
			ClientID:  row.fields["client_id"],
			StartTime: start,
			EndTime:   end,
		})
	}
	return appointments, nil
}

func DecodePurchases(data string) ([]models.Purchase, error) {
	rows, err := readRows(data, []string{"id", "appointment_id", "name", "price", "loyalty_points"})
	if err != nil {
		return nil, err
	}

	purchases := make([]models.Purchase, 0, len(rows))
	for _, row := range rows {
		price, points, err := parsePricing(row)
		if err != nil {
			return nil, err
		}
		purchases = append(purchases, models.Purchase{
			ID:            row.fields["id"],
			AppointmentID: row.fields["appointment_id"],
			Name:          row.fields["name"],
			Price:         price,
			LoyaltyPoints: points,
		})
	}
	return purchases, nil
}

func DecodeServices(data string) ([]models.Service, error) {
	rows, err := readRows(data, []string{"id", "appointment_id", "name", "price", "loyalty_points"})
	if err != nil {
		return nil, err
	}

	services := make([]models.Service, 0, len(rows))
	for _, row := range rows {
		price, points, err := parsePricing(row)
		if err != nil {
			return nil, err
		}
		services = append(services, models.Service{
			ID:            row.fields["id"],
			AppointmentID: row.fields["appointment_id"],
			Name:          row.fields["name"],
			Price:         price,
			LoyaltyPoints: points,
		})
	}
	return services, nil
}

func parseTime(row row, col string) (time.Time, error) {
	raw := row.fields[col]
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &ParseError{Line: row.line, Err: fmt.Errorf("invalid timestamp %q in %s", raw, col)}
}

func parseBool(row row, col string) (bool, error) {
	v, err := strconv.ParseBool(strings.ToLower(row.fields[col]))
	if err != nil {
		return false, &ParseError{Line: row.line, Err: fmt.Errorf("invalid boolean %q in %s", row.fields[col], col)}
	}
	return v, nil
}

func parsePricing(row row) (decimal.Decimal, int, error) {
	price, err := decimal.NewFromString(row.fields["price"])
	if err != nil {
		return decimal.Zero, 0, &ParseError{Line: row.line, Err: fmt.Errorf("invalid price %q", row.fields["price"])}
	}
	points, err := strconv.Atoi(row.fields["loyalty_points"])
	if err != nil {
		return decimal.Zero, 0, &ParseError{Line: row.line, Err: fmt.Errorf("invalid loyalty_points %q", row.fields["loyalty_points"])}
	}
	return price, points, nil
}
