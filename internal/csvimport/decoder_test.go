package csvimport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTableName(t *testing.T) {
	for _, tag := range []string{"clients", "CLIENTS", " Clients "} {
		table, ok := ParseTableName(tag)
		assert.True(t, ok, tag)
		assert.Equal(t, TableClients, table)
	}

	_, ok := ParseTableName("stylists")
	assert.False(t, ok)

	_, ok = ParseTableName("")
	assert.False(t, ok)
}

func TestDecodeClients_PreservesRowOrder(t *testing.T) {
	data := "id,first_name,last_name,email,phone,gender,banned\n" +
		"c2,Bob,Brown,bob@example.com,0852222222,M,false\n" +
		"c1,Alice,Anders,alice@example.com,0851111111,F,true\n"

	clients, err := DecodeClients(data)
	require.NoError(t, err)
	require.Len(t, clients, 2)

	assert.Equal(t, "c2", clients[0].ID)
	assert.Equal(t, "c1", clients[1].ID)
	assert.Equal(t, "Alice", clients[1].FirstName)
	assert.True(t, clients[1].Banned)
	assert.False(t, clients[0].Banned)
}

func TestDecodeClients_HeaderOrderIsFree(t *testing.T) {
	data := "banned,id,last_name,first_name,phone,email,gender\n" +
		"false,c1,Anders,Alice,0851111111,alice@example.com,F\n"

	clients, err := DecodeClients(data)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "c1", clients[0].ID)
	assert.Equal(t, "Alice", clients[0].FirstName)
	assert.Equal(t, "Anders", clients[0].LastName)
}

func TestDecodeClients_MissingColumn(t *testing.T) {
	data := "id,first_name,last_name\nc1,Alice,Anders\n"

	_, err := DecodeClients(data)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 1, parseErr.Line)
}

func TestDecodeClients_WrongColumnCount(t *testing.T) {
	data := "id,first_name,last_name,email,phone,gender,banned\n" +
		"c1,Alice,Anders,alice@example.com,0851111111,F,true\n" +
		"c2,Bob\n"

	_, err := DecodeClients(data)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 3, parseErr.Line)
}

func TestDecodeClients_UnterminatedQuote(t *testing.T) {
	data := "id,first_name,last_name,email,phone,gender,banned\n" +
		"c1,\"Alice,Anders,alice@example.com,0851111111,F,true\n"

	_, err := DecodeClients(data)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestDecodeClients_BadBoolean(t *testing.T) {
	data := "id,first_name,last_name,email,phone,gender,banned\n" +
		"c1,Alice,Anders,alice@example.com,0851111111,F,banned\n"

	_, err := DecodeClients(data)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Line)
}

func TestDecodeClients_EmptyInput(t *testing.T) {
	clients, err := DecodeClients("")
	require.NoError(t, err)
	assert.Empty(t, clients)
}

func TestDecodeAppointments(t *testing.T) {
	data := "id,client_id,start_time,end_time\n" +
		"a1,c1,2016-02-01 10:30:00 +0000,2016-02-01 11:30:00 +0000\n" +
		"a2,c1,2016-03-05T09:00:00Z,2016-03-05T10:00:00Z\n"

	aps, err := DecodeAppointments(data)
	require.NoError(t, err)
	require.Len(t, aps, 2)

	want := time.Date(2016, time.February, 1, 10, 30, 0, 0, time.UTC)
	assert.True(t, aps[0].StartTime.Equal(want))
	assert.Equal(t, "c1", aps[0].ClientID)
	assert.True(t, aps[1].EndTime.Equal(time.Date(2016, time.March, 5, 10, 0, 0, 0, time.UTC)))
}

func TestDecodeAppointments_BadTimestamp(t *testing.T) {
	data := "id,client_id,start_time,end_time\n" +
		"a1,c1,yesterday,2016-02-01 11:30:00 +0000\n"

	_, err := DecodeAppointments(data)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Line)
}

func TestDecodePurchases(t *testing.T) {
	data := "id,appointment_id,name,price,loyalty_points\n" +
		"p1,a1,Shampoo,19.95,30\n"

	ps, err := DecodePurchases(data)
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, "a1", ps[0].AppointmentID)
	assert.Equal(t, "19.95", ps[0].Price.String())
	assert.Equal(t, 30, ps[0].LoyaltyPoints)
}

func TestDecodePurchases_BadPrice(t *testing.T) {
	data := "id,appointment_id,name,price,loyalty_points\n" +
		"p1,a1,Shampoo,free,30\n"

	_, err := DecodePurchases(data)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestDecodeServices_QuotedDelimiter(t *testing.T) {
	data := "id,appointment_id,name,price,loyalty_points\n" +
		"s1,a1,\"Cut, Wash & Dry\",45.00,60\n"

	ss, err := DecodeServices(data)
	require.NoError(t, err)
	require.Len(t, ss, 1)
	assert.Equal(t, "Cut, Wash & Dry", ss[0].Name)
	assert.Equal(t, 60, ss[0].LoyaltyPoints)
}
