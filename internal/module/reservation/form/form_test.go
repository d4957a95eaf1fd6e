package form_test

import (
	"context"
	"testing"

	"reservation-dashboard/internal/module/reservation/form"
	"reservation-dashboard/internal/module/reservation/models/entity"
	"reservation-dashboard/internal/module/reservation/models/request"
	"reservation-dashboard/internal/pkg/errors"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubmitter struct {
	creates  []request.OutboundPayload
	updates  map[string]request.OutboundPayload
	response entity.RawRecord
	err      error
}

func (s *fakeSubmitter) Create(_ context.Context, payload request.OutboundPayload) (entity.RawRecord, error) {
	s.creates = append(s.creates, payload)
	return s.response, s.err
}

func (s *fakeSubmitter) Update(_ context.Context, id string, payload request.OutboundPayload) (entity.RawRecord, error) {
	if s.updates == nil {
		s.updates = map[string]request.OutboundPayload{}
	}
	s.updates[id] = payload
	return s.response, s.err
}

func (s *fakeSubmitter) calls() int {
	return len(s.creates) + len(s.updates)
}

func TestSetFieldRouting(t *testing.T) {
	f := form.New(form.ModeAdd)
	assert.Equal(t, form.StateIdle, f.State())

	require.NoError(t, f.SetField("name", "Ana"))
	require.NoError(t, f.SetField("phoneNumber", "555-0101"))
	require.NoError(t, f.SetField("status", "issued"))
	require.NoError(t, f.SetField("payment_status", "paid"))
	require.NoError(t, f.SetField("supplierName", "Atlas"))
	require.NoError(t, f.SetField("supplierPaymentDueDate", "2026-06-01"))
	require.NoError(t, f.SetField("reminderDays", "7"))
	require.NoError(t, f.SetField("notes", "late check-in"))
	require.NoError(t, f.SetField("hotelName", "Sea View"))
	require.NoError(t, f.SetField("loyaltyCode", "GOLD"))

	assert.Equal(t, form.StateEditing, f.State())

	record := f.Record()
	assert.Equal(t, entity.Customer{Name: "Ana", Phone: "555-0101"}, record.Customer)
	assert.Equal(t, entity.StatusIssued, record.Status)
	assert.Equal(t, entity.PaymentPaid, record.Supplier.PaymentStatus)
	assert.Equal(t, "Atlas", record.Supplier.Name)
	require.NotNil(t, record.Supplier.PaymentDueDate)
	assert.Equal(t, 7, record.ReminderDays)
	assert.Equal(t, "late check-in", record.Notes)
	assert.Equal(t, "Sea View", record.TypeFields["hotelName"])
	assert.Equal(t, "GOLD", record.Extra["loyaltyCode"])
	assert.NotContains(t, record.TypeFields, "loyaltyCode")
}

func TestSetFieldRejections(t *testing.T) {
	f := form.New(form.ModeAdd)

	for key, value := range map[string]any{
		"netProfit":              100,
		"net_profit":             100,
		"status":                 "pending",
		"payment_status":         "maybe",
		"supplierPaymentDueDate": "soon",
		"reminderDays":           "-1",
		"id":                     "9",
		"":                       "x",
	} {
		err := f.SetField(key, value)
		require.Error(t, err, key)
		assert.Equal(t, errors.InvalidField, errors.ValidationKindOf(err), key)
	}

	assert.Equal(t, float64(0), f.NetProfit())
	assert.Equal(t, entity.StatusHold, f.Record().Status)
}

func TestNetProfitRecompute(t *testing.T) {
	f := form.New(form.ModeAdd)

	require.NoError(t, f.SetField("sellPrice", "500"))
	assert.Equal(t, float64(500), f.NetProfit())
	require.NoError(t, f.SetField("fees", "20"))
	assert.Equal(t, float64(480), f.NetProfit())
	require.NoError(t, f.SetField("cost", "300"))
	assert.Equal(t, float64(180), f.NetProfit())
	require.NoError(t, f.SetField("fees", "abc"))
	assert.Equal(t, float64(200), f.NetProfit())

	assert.Equal(t, "abc", f.Record().Fees, "the typed text is kept")
}

func TestBookingTypeSwitchKeepsFields(t *testing.T) {
	f := form.New(form.ModeAdd)
	require.NoError(t, f.SetField("bookingType", "Hotel"))
	require.NoError(t, f.SetField("hotelName", "Sea View"))
	require.NoError(t, f.SetField("NumberOfGeust", "2"))
	require.NoError(t, f.SetField("check_in_date", "2026-07-01"))

	require.NoError(t, f.SetField("bookingType", "Flight"))
	require.NoError(t, f.SetField("flightnumber", "XY123"))
	assert.Equal(t, entity.Flight, f.Record().BookingType)

	payload := f.Payload()
	assert.Equal(t, "XY123", payload.TypeFields["flightnumber"])
	assert.NotContains(t, payload.TypeFields, "hotelName", "fields of other types are not sent")

	require.NoError(t, f.SetField("bookingType", "hotel"))
	record := f.Record()
	assert.Equal(t, entity.Hotel, record.BookingType)
	assert.Equal(t, "Sea View", record.TypeFields["hotelName"])
	assert.Equal(t, "2", record.TypeFields["NumberOfGeust"])
	assert.Equal(t, "2026-07-01", record.TypeFields["check_in_date"])
	assert.Equal(t, "XY123", record.TypeFields["flightnumber"])
}

func TestUnknownBookingType(t *testing.T) {
	f := form.New(form.ModeAdd)
	assert.Equal(t, "Select a booking type", f.Placeholder(), "a fresh form has no type yet")

	require.NoError(t, f.SetField("bookingType", "Spaceship"))

	assert.Empty(t, f.Fields())
	assert.Equal(t, "Select a booking type", f.Placeholder())

	require.NoError(t, f.SetField("name", "Ana"))
	err := f.Validate()
	assert.Equal(t, errors.MissingBookingType, errors.ValidationKindOf(err))
}

func TestBuildSubmissionPayload(t *testing.T) {
	f := form.New(form.ModeAdd)
	require.NoError(t, f.ApplyEdits([]request.FieldEdit{
		{Key: "name", Value: " Ana "},
		{Key: "phoneNumber", Value: "555-0101"},
		{Key: "bookingType", Value: "Hotel"},
		{Key: "sellPrice", Value: "500"},
		{Key: "fees", Value: "20"},
		{Key: "cost", Value: "300"},
		{Key: "supplierName", Value: "Atlas"},
		{Key: "hotelName", Value: "Sea View"},
		{Key: "NumberOfGeust", Value: "2"},
		{Key: "check_in_date", Value: "2026-07-01"},
	}))

	body, err := json.Marshal(f.Payload())
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(body, &got))

	assert.Equal(t, "Ana", got["name"])
	assert.Equal(t, "555-0101", got["phoneNumber"])
	assert.Equal(t, "Hotel", got["type"])
	assert.Equal(t, "Hold", got["status"])
	assert.Equal(t, "Atlas", got["supplierName"])
	assert.Equal(t, "Unpaid", got["payment_status"])
	assert.Equal(t, float64(180), got["net_profit"])
	assert.Equal(t, map[string]any{
		"sell_price": float64(500),
		"cost":       float64(300),
		"fees":       float64(20),
		"net_profit": float64(180),
	}, got["details"])
	assert.Equal(t, "Sea View", got["hotelName"])
	assert.Equal(t, float64(2), got["NumberOfGeust"])
	assert.Equal(t, float64(0), got["NumberOfRoom"])
	assert.Equal(t, "2026-07-01", got["check_in_date"])
	assert.NotContains(t, got, "bookingType")
	assert.NotContains(t, got, "customer")
	assert.NotContains(t, got, "typeFields")
}

func TestRoundTripServerHotel(t *testing.T) {
	raw := entity.RawRecord{
		"id":              "42",
		"reservable_type": `App\Models\Hotel`,
		"reservable":      map[string]any{"number_of_guests": 2},
	}

	f, err := form.Load(form.ModeEdit, raw)
	require.NoError(t, err)

	payload := f.Payload()
	assert.Equal(t, "Hotel", payload.Type)
	assert.Equal(t, 2, payload.TypeFields["NumberOfGeust"])
}

func TestSetFieldAlternateKey(t *testing.T) {
	f := form.New(form.ModeAdd)
	require.NoError(t, f.SetField("bookingType", "Hotel"))
	require.NoError(t, f.SetField("number_of_guests", "4"))
	require.NoError(t, f.SetField("check_in", "2026-07-01"))

	record := f.Record()
	assert.Equal(t, "4", record.TypeFields["NumberOfGeust"])
	assert.NotContains(t, record.TypeFields, "number_of_guests")
	assert.NotContains(t, record.Extra, "number_of_guests")
	assert.Equal(t, "2026-07-01", record.Extra["check_in"], "keys outside the registry stay extra")

	payload := f.Payload()
	assert.Equal(t, 4, payload.TypeFields["NumberOfGeust"])
}

func TestNonFiniteAmountsEncode(t *testing.T) {
	f := form.New(form.ModeAdd)
	require.NoError(t, f.SetField("bookingType", "Hotel"))
	require.NoError(t, f.SetField("sellPrice", "NaN"))
	require.NoError(t, f.SetField("fees", "Inf"))
	require.NoError(t, f.SetField("cost", "-infinity"))

	assert.Equal(t, float64(0), f.NetProfit())

	_, err := json.Marshal(f.Payload())
	require.NoError(t, err)
	_, err = json.Marshal(f.Record())
	require.NoError(t, err)
}

func TestPayloadFixedKeysWin(t *testing.T) {
	f := form.New(form.ModeAdd)
	require.NoError(t, f.SetField("bookingType", "Transportation"))
	require.NoError(t, f.SetField("transportType", "bus"))

	payload := f.Payload().Map()
	assert.Equal(t, "Transportation", payload["type"])
	assert.Equal(t, "Bus", payload["transportType"])
}

func TestSubmitValidation(t *testing.T) {
	testCases := []struct {
		name     string
		mode     form.Mode
		edits    []request.FieldEdit
		expected errors.ValidationKind
	}{
		{
			name:     "blank customer name",
			mode:     form.ModeAdd,
			edits:    []request.FieldEdit{{Key: "name", Value: "   "}, {Key: "bookingType", Value: "Hotel"}},
			expected: errors.MissingCustomerName,
		},
		{
			name:     "no booking type",
			mode:     form.ModeAdd,
			edits:    []request.FieldEdit{{Key: "name", Value: "Ana"}, {Key: "bookingType", Value: ""}},
			expected: errors.MissingBookingType,
		},
		{
			name:     "update without id",
			mode:     form.ModeEdit,
			edits:    []request.FieldEdit{{Key: "name", Value: "Ana"}, {Key: "bookingType", Value: "Hotel"}},
			expected: errors.MissingRecordId,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := form.New(tc.mode)
			require.NoError(t, f.ApplyEdits(tc.edits))

			submitter := &fakeSubmitter{}
			_, err := f.Submit(context.Background(), submitter)

			require.Error(t, err)
			assert.Equal(t, tc.expected, errors.ValidationKindOf(err))
			assert.Equal(t, 0, submitter.calls(), "no network call")
			assert.Equal(t, form.StateEditing, f.State())
			assert.Equal(t, err, f.LastError())
		})
	}
}

func TestSubmitCreate(t *testing.T) {
	f := form.New(form.ModeAdd)
	require.NoError(t, f.ApplyEdits([]request.FieldEdit{
		{Key: "name", Value: "Ana"},
		{Key: "bookingType", Value: "Hotel"},
		{Key: "sellPrice", Value: "500"},
		{Key: "fees", Value: "20"},
		{Key: "cost", Value: "300"},
	}))

	submitter := &fakeSubmitter{response: entity.RawRecord{"id": 1}}
	raw, err := f.Submit(context.Background(), submitter)

	require.NoError(t, err)
	assert.Equal(t, entity.RawRecord{"id": 1}, raw)
	require.Len(t, submitter.creates, 1)
	assert.Equal(t, "Hotel", submitter.creates[0].Type)
	assert.Equal(t, float64(180), submitter.creates[0].Details.NetProfit)
	assert.Equal(t, form.StateIdle, f.State())
	assert.NoError(t, f.LastError())
}

func TestSubmitFailureKeepsValues(t *testing.T) {
	f, err := form.Load(form.ModeEdit, map[string]any{
		"id":       "9",
		"type":     "Visa",
		"customer": map[string]any{"name": "Ben"},
	})
	require.NoError(t, err)
	require.NoError(t, f.SetField("country", "Japan"))

	submitter := &fakeSubmitter{err: errors.ServerError(500, "upstream exploded")}
	_, err = f.Submit(context.Background(), submitter)

	require.Error(t, err)
	assert.True(t, errors.IsServer(err))
	assert.Contains(t, submitter.updates, "9")
	assert.Equal(t, form.StateEditing, f.State())
	assert.Equal(t, "Japan", f.Record().TypeFields["country"])
	assert.Equal(t, "Ben", f.Record().Customer.Name)

	require.NoError(t, f.SetField("country", "Korea"), "form stays editable")
}

func TestViewModeIsReadOnly(t *testing.T) {
	f, err := form.Load(form.ModeView, map[string]any{
		"type":     "Tickets",
		"customer": map[string]any{"name": "Cleo"},
		"event":    "Final",
	})
	require.NoError(t, err)

	assert.Equal(t, "Final", f.Values()["event"])
	assert.Error(t, f.SetField("event", "Semi"))

	_, err = f.Submit(context.Background(), &fakeSubmitter{})
	assert.Equal(t, errors.KindBadRequest, errors.KindOf(err))
}
