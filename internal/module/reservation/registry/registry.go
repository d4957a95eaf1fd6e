// Package registry declares, per booking type, the fields a reservation form renders,
// validates and submits.
//
// Every field has a canonical key (the key the reservation API receives) and optional
// alternate keys used by server records. Reads always prefer the canonical key.
package registry

import (
	"math"
	"strconv"
	"strings"
	"time"

	"reservation-dashboard/internal/module/reservation/models/entity"

	"github.com/spf13/cast"
)

type Kind string

const (
	KindText     Kind = "text"
	KindNumber   Kind = "number"
	KindDate     Kind = "date"
	KindDateTime Kind = "datetime-local"
	KindTextarea Kind = "textarea"
	KindChoice   Kind = "select"
)

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type FieldSpec struct {
	Key        string   `json:"key"`
	Alternates []string `json:"alternates,omitempty"`
	Label      string   `json:"label"`
	Kind       Kind     `json:"kind"`
	Options    []Option `json:"options,omitempty"`
	// Default is used when neither key resolves; nil leaves the field out.
	Default any `json:"default,omitempty"`
	// Common fields belong to every type and live on the record itself.
	Common bool `json:"common,omitempty"`
}

// Placeholder is shown instead of a form when the booking type is not recognized.
const Placeholder = "Select a booking type"

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04"
)

var paymentStatusOptions = []Option{
	{Value: string(entity.PaymentPaid), Label: "Paid"},
	{Value: string(entity.PaymentUnpaid), Label: "Not Paid"},
	{Value: string(entity.PaymentPartial), Label: "Partial"},
}

var commonFields = []FieldSpec{
	{Key: "supplierName", Alternates: []string{"supplier_name"}, Label: "Supplier Name", Kind: KindText, Common: true},
	{Key: "payment_status", Alternates: []string{"paymentStatus"}, Label: "Supplier Status", Kind: KindChoice, Options: paymentStatusOptions, Common: true},
	{Key: "notes", Label: "Notes", Kind: KindTextarea, Common: true},
}

var typeFields = map[entity.BookingType][]FieldSpec{
	entity.Hotel: {
		{Key: "hotelName", Alternates: []string{"name", "hotel_name"}, Label: "Hotel Name", Kind: KindText},
		{Key: "NumberOfGeust", Alternates: []string{"number_of_guests", "numberOfGuests"}, Label: "Number Of Guests", Kind: KindNumber, Default: 0},
		{Key: "NumberOfRoom", Alternates: []string{"number_of_rooms", "numberOfRooms"}, Label: "Number Of Rooms", Kind: KindNumber, Default: 0},
		{Key: "check_in_date", Alternates: []string{"checkIn", "checkInDate"}, Label: "Check In", Kind: KindDate},
		{Key: "check_out_date", Alternates: []string{"checkOut", "checkOutDate"}, Label: "Check Out", Kind: KindDate},
		{Key: "roomType", Alternates: []string{"room_type"}, Label: "Room Type", Kind: KindText},
		{Key: "BookingNumber", Alternates: []string{"booking_number", "bookingNumber"}, Label: "Booking Number", Kind: KindText},
	},
	entity.Flight: {
		{Key: "flightnumber", Alternates: []string{"flight_number", "flightNumber"}, Label: "Flight Number", Kind: KindText},
		{Key: "airline", Label: "Airline", Kind: KindText},
		{Key: "departureDate", Alternates: []string{"departure_date"}, Label: "Departure Date", Kind: KindDate},
		{Key: "arrivalDate", Alternates: []string{"arrival_date"}, Label: "Arrival Date", Kind: KindDate},
		{Key: "from", Alternates: []string{"from_airport"}, Label: "From", Kind: KindText},
		{Key: "to", Alternates: []string{"to_airport"}, Label: "To", Kind: KindText},
		{Key: "passengerInfo", Alternates: []string{"passenger_info"}, Label: "Passenger Information", Kind: KindText},
	},
	entity.Cruise: {
		{Key: "cruise", Alternates: []string{"cruise_name", "cruiseName"}, Label: "Cruise Name", Kind: KindText},
		{Key: "cruiseLine", Alternates: []string{"cruise_line"}, Label: "Cruise Line", Kind: KindText},
		{Key: "ship", Alternates: []string{"ship_name"}, Label: "Ship", Kind: KindText},
		{Key: "cabin", Alternates: []string{"cabin_type"}, Label: "Cabin", Kind: KindText},
		{Key: "departureDate", Alternates: []string{"departure_date"}, Label: "Departure Date", Kind: KindDate},
		{Key: "returnDate", Alternates: []string{"return_date", "arrival_date"}, Label: "Return Date", Kind: KindDate},
		{Key: "departureport", Alternates: []string{"departure_port", "departurePort"}, Label: "Departure Port", Kind: KindText},
		{Key: "returnPort", Alternates: []string{"return_port", "arrival_port"}, Label: "Return Port", Kind: KindText},
	},
	entity.Visa: {
		{Key: "visa", Alternates: []string{"visa_type", "visaType"}, Label: "Visa Type", Kind: KindText},
		{Key: "duration", Label: "Duration", Kind: KindNumber},
		{Key: "country", Label: "Country", Kind: KindText},
		{Key: "applicationDate", Alternates: []string{"application_date"}, Label: "Application Date", Kind: KindDate},
		{Key: "applicationDetails", Alternates: []string{"application_details"}, Label: "Application Details", Kind: KindTextarea},
	},
	entity.Appointment: {
		{Key: "appointment", Alternates: []string{"appointment_type", "appointmentType"}, Label: "Appointment Type", Kind: KindText},
		{Key: "applicationDate", Alternates: []string{"appointment_date", "application_date"}, Label: "Appointment Date", Kind: KindDateTime},
		{Key: "location", Label: "Location", Kind: KindText},
	},
	entity.Insurance: {
		{Key: "insurance", Alternates: []string{"insurance_type", "insuranceType"}, Label: "Insurance Type", Kind: KindText},
		{Key: "provider", Label: "Provider", Kind: KindText},
		{Key: "startDate", Alternates: []string{"start_date"}, Label: "Start Date", Kind: KindDate},
		{Key: "endDate", Alternates: []string{"end_date"}, Label: "End Date", Kind: KindDate},
		{Key: "insuredPersons", Alternates: []string{"insured_persons"}, Label: "Insured Persons", Kind: KindText},
	},
	entity.Tickets: {
		{Key: "event", Alternates: []string{"event_name", "eventName"}, Label: "Event Name", Kind: KindText},
		{Key: "eventDate", Alternates: []string{"event_date"}, Label: "Event Date", Kind: KindDate},
		{Key: "seatcategory", Alternates: []string{"seat_category", "seatCategory"}, Label: "Seat Category", Kind: KindText},
		{Key: "quantity", Label: "Quantity", Kind: KindNumber},
		{Key: "ticketCount", Alternates: []string{"tickets_count", "ticket_count"}, Label: "Ticket Count", Kind: KindNumber},
	},
	entity.Transportation: {
		{Key: "transportType", Alternates: []string{"transport_type"}, Label: "Transportation Type", Kind: KindChoice, Options: []Option{
			{Value: "Car", Label: "Car"},
			{Value: "Bus", Label: "Bus"},
		}},
		{Key: "pickupLocation", Alternates: []string{"pickup_location"}, Label: "Pickup Location", Kind: KindText},
		{Key: "dropoffLocation", Alternates: []string{"dropoff_location"}, Label: "Dropoff Location", Kind: KindText},
		{Key: "routeFrom", Alternates: []string{"route_from"}, Label: "Route From", Kind: KindText},
		{Key: "routeTo", Alternates: []string{"route_to"}, Label: "Route To", Kind: KindText},
		{Key: "transportationDate", Alternates: []string{"transportation_date"}, Label: "Transportation Date", Kind: KindDateTime},
		{Key: "passengerCount", Alternates: []string{"passenger_count"}, Label: "Passenger Count", Kind: KindNumber},
	},
}

// eventDateKeys names the field that dates the reservation for reminders.
var eventDateKeys = map[entity.BookingType]string{
	entity.Hotel:          "check_in_date",
	entity.Flight:         "departureDate",
	entity.Cruise:         "departureDate",
	entity.Visa:           "applicationDate",
	entity.Appointment:    "applicationDate",
	entity.Insurance:      "startDate",
	entity.Tickets:        "eventDate",
	entity.Transportation: "transportationDate",
}

// FieldsFor returns the ordered fields of a booking type, type-specific first and common last.
// Unrecognized types get an empty slice.
func FieldsFor(t entity.BookingType) []FieldSpec {
	specs, ok := typeFields[t]
	if !ok {
		return []FieldSpec{}
	}
	out := make([]FieldSpec, 0, len(specs)+len(commonFields))
	out = append(out, specs...)
	out = append(out, commonFields...)
	return out
}

// CanonicalKey maps a canonical or alternate key to the canonical key of a type-specific field.
// Fields of t are matched first, so an alternate shared by two types resolves for the current one.
func CanonicalKey(t entity.BookingType, key string) (string, bool) {
	if canonical, ok := canonicalIn(typeFields[t], key); ok {
		return canonical, true
	}
	for _, bt := range entity.BookingTypes {
		if canonical, ok := canonicalIn(typeFields[bt], key); ok {
			return canonical, true
		}
	}
	return "", false
}

func canonicalIn(specs []FieldSpec, key string) (string, bool) {
	for _, spec := range specs {
		if spec.Key == key {
			return spec.Key, true
		}
	}
	for _, spec := range specs {
		for _, alt := range spec.Alternates {
			if alt == key {
				return spec.Key, true
			}
		}
	}
	return "", false
}

func EventDateKey(t entity.BookingType) string {
	return eventDateKeys[t]
}

// Source is anything fields can be read from by key.
type Source interface {
	Lookup(key string) (any, bool)
}

// Resolve reads spec from src: canonical key first, then alternates in order.
func Resolve(src Source, spec FieldSpec) (any, bool) {
	if v, ok := src.Lookup(spec.Key); ok {
		return v, true
	}
	for _, alt := range spec.Alternates {
		if v, ok := src.Lookup(alt); ok {
			return v, true
		}
	}
	return nil, false
}

// ExtractTypeFields resolves and coerces every field of t into a map keyed by canonical key.
func ExtractTypeFields(src Source, t entity.BookingType) map[string]any {
	specs := FieldsFor(t)
	out := make(map[string]any, len(specs))
	for _, spec := range specs {
		v, ok := Resolve(src, spec)
		if !ok {
			if spec.Default != nil {
				out[spec.Key] = spec.Default
			}
			continue
		}
		out[spec.Key] = Coerce(spec, v)
	}
	return out
}

// Coerce converts a raw value to the representation of the field's kind.
// Values that do not parse are returned untouched, except numbers which fall back to 0.
func Coerce(spec FieldSpec, v any) any {
	switch spec.Kind {
	case KindNumber:
		return toInt(v)
	case KindDate:
		return formatTime(v, dateLayout)
	case KindDateTime:
		return formatTime(v, dateTimeLayout)
	case KindChoice:
		s := strings.TrimSpace(cast.ToString(v))
		for _, opt := range spec.Options {
			if strings.EqualFold(s, opt.Value) {
				return opt.Value
			}
		}
		return v
	default:
		return v
	}
}

func toInt(v any) int {
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return int(f)
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0
	}
	return n
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000000Z",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	dateTimeLayout,
	dateLayout,
}

func ParseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func formatTime(v any, layout string) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	t, ok := ParseTime(s)
	if !ok {
		return v
	}
	return t.Format(layout)
}
