package normalizer_test

import (
	"testing"

	"reservation-dashboard/internal/module/reservation/models/entity"
	"reservation-dashboard/internal/module/reservation/normalizer"
	"reservation-dashboard/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmpty(t *testing.T) {
	record, err := normalizer.Normalize(map[string]any{})
	require.NoError(t, err)

	assert.Equal(t, entity.Customer{Name: "", Phone: ""}, record.Customer)
	assert.Equal(t, entity.Hotel, record.BookingType)
	assert.Equal(t, entity.StatusHold, record.Status)
	assert.Equal(t, entity.DefaultReminderDays, record.ReminderDays)
	assert.Equal(t, entity.PaymentUnpaid, record.Supplier.PaymentStatus)
	assert.Equal(t, 0, record.TypeFields["NumberOfGeust"])
	assert.Equal(t, 0, record.TypeFields["NumberOfRoom"])
	assert.False(t, record.HasID())
}

func TestNormalizeNotAMapping(t *testing.T) {
	for _, raw := range []any{nil, "hotel", 42, []any{map[string]any{}}} {
		_, err := normalizer.Normalize(raw)
		require.Error(t, err)
		assert.Equal(t, errors.KindBadRequest, errors.KindOf(err))
	}
}

func TestNormalizeServerHotel(t *testing.T) {
	raw := entity.RawRecord{
		"id":              17,
		"reservable_type": `App\Models\Hotel`,
		"status":          "issued",
		"customer":        map[string]any{"name": " Ana ", "phone": "555-0101"},
		"details":         map[string]any{"sell_price": "500", "fees": "20", "cost": "300"},
		"reminder_days":   5,
		"supplier": map[string]any{
			"name":             "Atlas",
			"payment_status":   "partial",
			"payment_due_date": "2026-06-01",
		},
		"reservable": map[string]any{
			"name":             "Sea View",
			"number_of_guests": 2,
			"number_of_rooms":  "1",
			"check_in_date":    "2026-07-01T00:00:00.000000Z",
			"room_type":        "Suite",
		},
		"created_at": "2026-01-05T10:00:00Z",
		"user_id":    3,
	}

	record, err := normalizer.Normalize(raw)
	require.NoError(t, err)

	assert.Equal(t, "17", record.ID)
	assert.Equal(t, entity.Hotel, record.BookingType)
	assert.Equal(t, entity.StatusIssued, record.Status)
	assert.Equal(t, entity.Customer{Name: "Ana", Phone: "555-0101"}, record.Customer)
	assert.Equal(t, "500", record.SellPrice)
	assert.Equal(t, "20", record.Fees)
	assert.Equal(t, "300", record.Cost)
	assert.Equal(t, float64(180), record.NetProfit)
	assert.Equal(t, 5, record.ReminderDays)

	assert.Equal(t, "Atlas", record.Supplier.Name)
	assert.Equal(t, entity.PaymentPartial, record.Supplier.PaymentStatus)
	require.NotNil(t, record.Supplier.PaymentDueDate)
	assert.Equal(t, "2026-06-01", record.Supplier.PaymentDueDate.Format("2006-01-02"))

	assert.Equal(t, "Sea View", record.TypeFields["hotelName"])
	assert.Equal(t, 2, record.TypeFields["NumberOfGeust"])
	assert.Equal(t, 1, record.TypeFields["NumberOfRoom"])
	assert.Equal(t, "2026-07-01", record.TypeFields["check_in_date"])
	assert.Equal(t, "Suite", record.TypeFields["roomType"])

	assert.Equal(t, "2026-01-05T10:00:00Z", record.Extra["created_at"])
	assert.Equal(t, 3, record.Extra["user_id"])
	assert.Contains(t, record.Extra, entity.ReservableKey)
	for _, core := range []string{"id", "customer", "status", "details", "reservable_type", "supplier"} {
		assert.NotContains(t, record.Extra, core)
	}
}

func TestNormalizeFlatCamelCase(t *testing.T) {
	raw := map[string]any{
		"bookingType":            "flight",
		"customer":               map[string]any{"name": "Ben"},
		"sellPrice":              "250.5",
		"sell_price":             "999",
		"fees":                   5,
		"cost":                   "",
		"supplierName":           "SkyDesk",
		"payment_status":         "Paid",
		"supplierPaymentDueDate": "2026-03-10",
		"reminderDays":           "0",
		"flightnumber":           "XY123",
		"flight_number":          "OLD",
		"departure_date":         "2026-08-09",
	}

	record, err := normalizer.Normalize(raw)
	require.NoError(t, err)

	assert.Equal(t, entity.Flight, record.BookingType)
	assert.Equal(t, "250.5", record.SellPrice, "camelCase value wins")
	assert.Equal(t, "5", record.Fees)
	assert.Equal(t, "", record.Cost)
	assert.Equal(t, 245.5, record.NetProfit)
	assert.Equal(t, entity.DefaultReminderDays, record.ReminderDays, "0 falls back to the default")
	assert.Equal(t, "SkyDesk", record.Supplier.Name)
	assert.Equal(t, entity.PaymentPaid, record.Supplier.PaymentStatus)
	assert.Equal(t, "XY123", record.TypeFields["flightnumber"])
	assert.Equal(t, "2026-08-09", record.TypeFields["departureDate"])
}

func TestInferBookingType(t *testing.T) {
	testCases := []struct {
		name     string
		raw      map[string]any
		expected entity.BookingType
	}{
		{name: "explicit", raw: map[string]any{"bookingType": "Cruise", "type": "Visa"}, expected: entity.Cruise},
		{name: "type field", raw: map[string]any{"type": "tickets"}, expected: entity.Tickets},
		{name: "reservable type", raw: map[string]any{"reservable_type": `App\Models\Insurance`}, expected: entity.Insurance},
		{name: "slash namespace", raw: map[string]any{"reservable_type": "models/Visa"}, expected: entity.Visa},
		{name: "blank explicit falls through", raw: map[string]any{"bookingType": " ", "type": "Flight"}, expected: entity.Flight},
		{name: "recognized wins over unknown", raw: map[string]any{"type": "Car", "reservable_type": `App\Models\Transportation`}, expected: entity.Transportation},
		{name: "unknown kept", raw: map[string]any{"bookingType": "Spaceship"}, expected: entity.BookingType("Spaceship")},
		{name: "default", raw: map[string]any{}, expected: entity.Hotel},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, normalizer.InferBookingType(tc.raw))
		})
	}
}

func TestNormalizeUnknownStatus(t *testing.T) {
	record, err := normalizer.Normalize(map[string]any{"status": "pending"})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusHold, record.Status)
}
