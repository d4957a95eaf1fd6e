package registry_test

import (
	"fmt"
	"testing"

	"reservation-dashboard/internal/module/reservation/models/entity"
	"reservation-dashboard/internal/module/reservation/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapSource map[string]any

func (m mapSource) Lookup(key string) (any, bool) {
	v, ok := m[key]
	if !ok || v == nil || v == "" {
		return nil, false
	}
	return v, true
}

func TestFieldsFor(t *testing.T) {
	for _, bookingType := range entity.BookingTypes {
		t.Run(string(bookingType), func(t *testing.T) {
			fields := registry.FieldsFor(bookingType)
			require.NotEmpty(t, fields)
			assert.Equal(t, fields, registry.FieldsFor(bookingType), "order must be stable")

			seen := map[string]bool{}
			for _, f := range fields {
				assert.False(t, seen[f.Key], "duplicate key %s", f.Key)
				seen[f.Key] = true
				assert.NotEmpty(t, f.Label)
				if f.Kind == registry.KindChoice {
					assert.NotEmpty(t, f.Options)
				}
			}

			for _, common := range []string{"supplierName", "payment_status", "notes"} {
				assert.True(t, seen[common], "%s missing on %s", common, bookingType)
			}
			assert.True(t, seen[registry.EventDateKey(bookingType)], "event date field missing")
		})
	}

	assert.Empty(t, registry.FieldsFor("Hotel,Flight"))
	assert.Empty(t, registry.FieldsFor(""))
}

func TestFieldsForDistinguishingFields(t *testing.T) {
	expected := map[entity.BookingType][]string{
		entity.Hotel:          {"hotelName", "NumberOfGeust", "NumberOfRoom", "check_in_date", "check_out_date", "roomType", "BookingNumber"},
		entity.Flight:         {"flightnumber", "airline", "departureDate", "arrivalDate", "from", "to", "passengerInfo"},
		entity.Cruise:         {"cruise", "cruiseLine", "ship", "cabin", "departureDate", "returnDate", "departureport", "returnPort"},
		entity.Visa:           {"visa", "duration", "country", "applicationDate", "applicationDetails"},
		entity.Appointment:    {"appointment", "applicationDate", "location"},
		entity.Insurance:      {"insurance", "provider", "startDate", "endDate", "insuredPersons"},
		entity.Tickets:        {"event", "eventDate", "seatcategory", "quantity", "ticketCount"},
		entity.Transportation: {"transportType", "pickupLocation", "dropoffLocation", "routeFrom", "routeTo", "transportationDate", "passengerCount"},
	}

	for bookingType, keys := range expected {
		var got []string
		for _, f := range registry.FieldsFor(bookingType) {
			if !f.Common {
				got = append(got, f.Key)
			}
		}
		assert.Equal(t, keys, got, bookingType)
	}
}

func sampleValue(f registry.FieldSpec) (any, any) {
	switch f.Kind {
	case registry.KindNumber:
		return "4", 4
	case registry.KindDate:
		return "2026-05-01", "2026-05-01"
	case registry.KindDateTime:
		return "2026-05-01T10:30", "2026-05-01T10:30"
	case registry.KindChoice:
		return f.Options[0].Value, f.Options[0].Value
	default:
		v := fmt.Sprintf("value of %s", f.Key)
		return v, v
	}
}

func TestExtractTypeFieldsRoundTrip(t *testing.T) {
	for _, bookingType := range entity.BookingTypes {
		t.Run(string(bookingType)+" canonical", func(t *testing.T) {
			src := mapSource{}
			want := map[string]any{}
			for _, f := range registry.FieldsFor(bookingType) {
				in, out := sampleValue(f)
				src[f.Key] = in
				want[f.Key] = out
			}
			assert.Equal(t, want, registry.ExtractTypeFields(src, bookingType))
		})

		t.Run(string(bookingType)+" alternates", func(t *testing.T) {
			src := mapSource{}
			want := map[string]any{}
			for _, f := range registry.FieldsFor(bookingType) {
				if len(f.Alternates) == 0 {
					continue
				}
				in, out := sampleValue(f)
				src[f.Alternates[0]] = in
				want[f.Key] = out
			}
			got := registry.ExtractTypeFields(src, bookingType)
			for k, v := range want {
				assert.Equal(t, v, got[k], k)
			}
		})
	}
}

func TestExtractTypeFieldsPrefersCanonical(t *testing.T) {
	src := mapSource{
		"hotelName":        "Edited Hotel",
		"name":             "Server Hotel",
		"number_of_guests": 2.0,
		"room_type":        "Double",
		"check_in_date":    "2026-04-10T00:00:00.000000Z",
	}

	got := registry.ExtractTypeFields(src, entity.Hotel)

	assert.Equal(t, "Edited Hotel", got["hotelName"])
	assert.Equal(t, 2, got["NumberOfGeust"])
	assert.Equal(t, 0, got["NumberOfRoom"], "room count defaults to 0")
	assert.Equal(t, "Double", got["roomType"])
	assert.Equal(t, "2026-04-10", got["check_in_date"])
	_, ok := got["BookingNumber"]
	assert.False(t, ok, "absent text fields are omitted")
}

func TestCoerce(t *testing.T) {
	number := registry.FieldSpec{Key: "quantity", Kind: registry.KindNumber}
	assert.Equal(t, 3, registry.Coerce(number, "3"))
	assert.Equal(t, 8, registry.Coerce(number, "08"))
	assert.Equal(t, 2, registry.Coerce(number, "2.7"))
	assert.Equal(t, 0, registry.Coerce(number, "many"))

	choice := registry.FieldsFor(entity.Transportation)[0]
	assert.Equal(t, "Bus", registry.Coerce(choice, "bus"))
	assert.Equal(t, "Train", registry.Coerce(choice, "Train"))

	date := registry.FieldSpec{Key: "startDate", Kind: registry.KindDate}
	assert.Equal(t, "not a date", registry.Coerce(date, "not a date"))

	dateTime := registry.FieldSpec{Key: "transportationDate", Kind: registry.KindDateTime}
	assert.Equal(t, "2026-05-01T08:15", registry.Coerce(dateTime, "2026-05-01 08:15:00"))
}

func TestCanonicalKey(t *testing.T) {
	testCases := []struct {
		name        string
		bookingType entity.BookingType
		key         string
		wantKey     string
		wantOK      bool
	}{
		{name: "canonical", bookingType: entity.Hotel, key: "NumberOfGeust", wantKey: "NumberOfGeust", wantOK: true},
		{name: "alternate", bookingType: entity.Hotel, key: "number_of_guests", wantKey: "NumberOfGeust", wantOK: true},
		{name: "shared alternate follows flight", bookingType: entity.Flight, key: "arrival_date", wantKey: "arrivalDate", wantOK: true},
		{name: "shared alternate follows cruise", bookingType: entity.Cruise, key: "arrival_date", wantKey: "returnDate", wantOK: true},
		{name: "field of another type", bookingType: entity.Hotel, key: "transport_type", wantKey: "transportType", wantOK: true},
		{name: "no type selected", bookingType: "", key: "flight_number", wantKey: "flightnumber", wantOK: true},
		{name: "common field", bookingType: entity.Hotel, key: "supplierName", wantOK: false},
		{name: "unknown", bookingType: entity.Hotel, key: "loyaltyCode", wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			key, ok := registry.CanonicalKey(tc.bookingType, tc.key)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantKey, key)
		})
	}
}
