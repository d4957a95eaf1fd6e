package response

import (
	"reservation-dashboard/internal/module/reservation/models/entity"
	"reservation-dashboard/internal/module/reservation/models/request"
	"reservation-dashboard/internal/module/reservation/registry"
)

type Session struct {
	SessionID string `json:"session_id"`
	ExpiresIn int64  `json:"expires_in"`
}

type BookingType struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Fields struct {
	BookingType string               `json:"booking_type"`
	Fields      []registry.FieldSpec `json:"fields"`
	Placeholder string               `json:"placeholder,omitempty"`
}

type Reservation struct {
	ID            string  `json:"id"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	BookingType   string  `json:"booking_type"`
	Status        string  `json:"status"`
	SellPrice     float64 `json:"sell_price"`
	Fees          float64 `json:"fees"`
	Cost          float64 `json:"cost"`
	NetProfit     float64 `json:"net_profit"`
	SupplierName  string  `json:"supplier_name"`
	PaymentStatus string  `json:"payment_status"`
	EventDate     string  `json:"event_date,omitempty"`
	ReminderDays  int     `json:"reminder_days"`
	Upcoming      bool    `json:"upcoming"`
	CreatedAt     string  `json:"created_at,omitempty"`
}

type ReservationDetail struct {
	Record      entity.BookingRecord `json:"record"`
	Fields      []registry.FieldSpec `json:"fields"`
	Values      map[string]any       `json:"values"`
	Placeholder string               `json:"placeholder,omitempty"`
}

type Draft struct {
	Record      entity.BookingRecord    `json:"record"`
	Fields      []registry.FieldSpec    `json:"fields"`
	Payload     request.OutboundPayload `json:"payload"`
	Placeholder string                  `json:"placeholder,omitempty"`
}
