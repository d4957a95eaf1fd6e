package request

import (
	"github.com/goccy/go-json"
)

type Session struct {
	Token      string `json:"token" validate:"required"`
	TTLMinutes int    `json:"ttl_minutes" validate:"gte=0"`
}

type FieldEdit struct {
	Key   string      `json:"key" validate:"required"`
	Value interface{} `json:"value"`
}

// Draft is an ordered list of field edits, applied as if typed into the form one after another.
type Draft struct {
	Edits []FieldEdit `json:"edits" validate:"dive"`
}

type Preview struct {
	ReservationID string      `json:"reservation_id"`
	Edits         []FieldEdit `json:"edits" validate:"dive"`
}

type StatusChange struct {
	Status string `json:"status" validate:"required"`
}

type ListFilter struct {
	Type   string `query:"type"`
	Search string `query:"search"`
	UserID string `query:"user_id"`
}

type Reminder struct {
	ReservationID string `json:"reservation_id" validate:"required"`
	CustomerName  string `json:"customer_name" validate:"required"`
	BookingType   string `json:"booking_type" validate:"required"`
	EventDate     string `json:"event_date" validate:"required"`
	ReminderDays  int    `json:"reminder_days"`
	SessionID     string `json:"session_id"`
}

type PriceDetails struct {
	SellPrice float64 `json:"sell_price"`
	Cost      float64 `json:"cost"`
	Fees      float64 `json:"fees"`
	NetProfit float64 `json:"net_profit"`
}

// OutboundPayload is the body the reservation API expects on create and update.
// TypeFields are flattened next to the fixed keys; the fixed keys win on collision.
type OutboundPayload struct {
	Name          string         `json:"name"`
	PhoneNumber   string         `json:"phoneNumber"`
	Type          string         `json:"type"`
	Status        string         `json:"status"`
	Notes         string         `json:"notes"`
	SupplierName  string         `json:"supplierName"`
	PaymentStatus string         `json:"payment_status"`
	Details       PriceDetails   `json:"details"`
	NetProfit     float64        `json:"net_profit"`
	TypeFields    map[string]any `json:"-"`
}

func (p OutboundPayload) Map() map[string]any {
	out := make(map[string]any, len(p.TypeFields)+9)
	for k, v := range p.TypeFields {
		out[k] = v
	}
	out["name"] = p.Name
	out["phoneNumber"] = p.PhoneNumber
	out["type"] = p.Type
	out["status"] = p.Status
	out["notes"] = p.Notes
	out["supplierName"] = p.SupplierName
	out["payment_status"] = p.PaymentStatus
	out["details"] = p.Details
	out["net_profit"] = p.NetProfit
	return out
}

func (p OutboundPayload) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Map())
}

type StatusPayload struct {
	Status string `json:"status"`
}
