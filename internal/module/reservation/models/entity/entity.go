package entity

import (
	"strings"
	"time"
)

type BookingType string

const (
	Hotel          BookingType = "Hotel"
	Flight         BookingType = "Flight"
	Cruise         BookingType = "Cruise"
	Visa           BookingType = "Visa"
	Appointment    BookingType = "Appointment"
	Insurance      BookingType = "Insurance"
	Tickets        BookingType = "Tickets"
	Transportation BookingType = "Transportation"
)

// BookingTypes lists every supported booking type in display order.
var BookingTypes = []BookingType{Hotel, Flight, Cruise, Visa, Appointment, Insurance, Tickets, Transportation}

func (t BookingType) Valid() bool {
	_, ok := ParseBookingType(string(t))
	return ok
}

// ParseBookingType matches a type name case-insensitively.
func ParseBookingType(s string) (BookingType, bool) {
	s = strings.TrimSpace(s)
	for _, t := range BookingTypes {
		if strings.EqualFold(s, string(t)) {
			return t, true
		}
	}
	return "", false
}

type Status string

const (
	StatusHold      Status = "Hold"
	StatusIssued    Status = "Issued"
	StatusCancelled Status = "Cancelled"
)

var Statuses = []Status{StatusIssued, StatusHold, StatusCancelled}

func ParseStatus(s string) (Status, bool) {
	s = strings.TrimSpace(s)
	for _, st := range Statuses {
		if strings.EqualFold(s, string(st)) {
			return st, true
		}
	}
	return "", false
}

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentUnpaid  PaymentStatus = "Unpaid"
	PaymentPartial PaymentStatus = "Partial"
)

var PaymentStatuses = []PaymentStatus{PaymentPaid, PaymentUnpaid, PaymentPartial}

func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	s = strings.TrimSpace(s)
	for _, ps := range PaymentStatuses {
		if strings.EqualFold(s, string(ps)) {
			return ps, true
		}
	}
	return "", false
}

const DefaultReminderDays = 3

// RawRecord is a reservation as decoded from the reservation API.
type RawRecord map[string]any

// ReservableKey holds the nested server-side sub-entity (hotel, flight, ...).
const ReservableKey = "reservable"

type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type Supplier struct {
	Name           string        `json:"name"`
	PaymentStatus  PaymentStatus `json:"payment_status"`
	PaymentDueDate *time.Time    `json:"payment_due_date,omitempty"`
}

// BookingRecord is the editable reservation. Price fields keep the text the user typed;
// NetProfit is derived from them and never edited on its own.
type BookingRecord struct {
	ID           string         `json:"id,omitempty"`
	Customer     Customer       `json:"customer"`
	BookingType  BookingType    `json:"bookingType"`
	Status       Status         `json:"status"`
	SellPrice    string         `json:"sellPrice"`
	Fees         string         `json:"fees"`
	Cost         string         `json:"cost"`
	NetProfit    float64        `json:"netProfit"`
	Notes        string         `json:"notes"`
	ReminderDays int            `json:"reminderDays"`
	Supplier     Supplier       `json:"supplier"`
	TypeFields   map[string]any `json:"typeFields"`
	Extra        map[string]any `json:"extra,omitempty"`
}

func NewBookingRecord() BookingRecord {
	return BookingRecord{
		Status:       StatusHold,
		ReminderDays: DefaultReminderDays,
		Supplier:     Supplier{PaymentStatus: PaymentUnpaid},
		TypeFields:   map[string]any{},
		Extra:        map[string]any{},
	}
}

func (r BookingRecord) HasID() bool {
	return strings.TrimSpace(r.ID) != ""
}

func (r BookingRecord) Clone() BookingRecord {
	out := r
	out.TypeFields = cloneMap(r.TypeFields)
	out.Extra = cloneMap(r.Extra)
	if r.Supplier.PaymentDueDate != nil {
		due := *r.Supplier.PaymentDueDate
		out.Supplier.PaymentDueDate = &due
	}
	return out
}

// Lookup resolves a field key against the record: edited type fields first, then the
// passthrough top-level keys, then the nested reservable object. Supplier and notes keys
// read the canonical top-level values.
func (r BookingRecord) Lookup(key string) (any, bool) {
	switch key {
	case "supplierName":
		return r.Supplier.Name, true
	case "payment_status":
		return string(r.Supplier.PaymentStatus), true
	case "notes":
		return r.Notes, true
	}

	if v, ok := r.TypeFields[key]; ok && present(v) {
		return v, true
	}
	if v, ok := r.Extra[key]; ok && present(v) {
		return v, true
	}
	if reservable, ok := r.Extra[ReservableKey].(map[string]any); ok {
		if v, ok := reservable[key]; ok && present(v) {
			return v, true
		}
	}
	return nil, false
}

func present(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(t) != ""
	default:
		return true
	}
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]any); ok {
			v = cloneMap(nested)
		}
		out[k] = v
	}
	return out
}
