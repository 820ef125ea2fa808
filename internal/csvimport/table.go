package csvimport

import "strings"

// TableName tags which entity kind a CSV batch belongs to. Exactly one
// kind is decoded per import request.
type TableName string

const (
	TableClients      TableName = "CLIENTS"
	TableAppointments TableName = "APPOINTMENTS"
	TablePurchases    TableName = "PURCHASES"
	TableServices     TableName = "SERVICES"
)

// ParseTableName matches a request tag case-insensitively against the
// known tables.
func ParseTableName(s string) (TableName, bool) {
	switch TableName(strings.ToUpper(strings.TrimSpace(s))) {
	case TableClients:
		return TableClients, true
	case TableAppointments:
		return TableAppointments, true
	case TablePurchases:
		return TablePurchases, true
	case TableServices:
		return TableServices, true
	}
	return "", false
}
