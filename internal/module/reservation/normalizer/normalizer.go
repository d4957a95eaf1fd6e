// Package normalizer turns raw reservation records, nested or flat, camel or snake case,
// into one entity.BookingRecord.
package normalizer

import (
	"fmt"
	"strings"

	"reservation-dashboard/internal/module/reservation/finance"
	"reservation-dashboard/internal/module/reservation/models/entity"
	"reservation-dashboard/internal/module/reservation/registry"
	"reservation-dashboard/internal/pkg/errors"

	"github.com/spf13/cast"
)

// coreKeys are materialized into typed record fields and are not kept as passthrough.
var coreKeys = map[string]bool{
	"id":                     true,
	"customer":               true,
	"name":                   true,
	"phoneNumber":            true,
	"bookingType":            true,
	"type":                   true,
	"reservable_type":        true,
	"status":                 true,
	"sellPrice":              true,
	"sell_price":             true,
	"fees":                   true,
	"cost":                   true,
	"netProfit":              true,
	"net_profit":             true,
	"details":                true,
	"notes":                  true,
	"reminderDays":           true,
	"reminder_days":          true,
	"supplier":               true,
	"supplierName":           true,
	"payment_status":         true,
	"supplierPaymentDueDate": true,
}

// Normalize never fails on missing fields; it fails only when raw is not a mapping.
func Normalize(raw any) (entity.BookingRecord, error) {
	m, ok := asMap(raw)
	if !ok {
		return entity.BookingRecord{}, errors.BadRequest(fmt.Sprintf("reservation record must be an object, got %T", raw))
	}

	record := entity.NewBookingRecord()
	details, _ := asMap(m["details"])
	reservable, _ := asMap(m[entity.ReservableKey])

	record.ID = str(m["id"])
	record.BookingType = InferBookingType(m)

	if customer, ok := asMap(m["customer"]); ok {
		record.Customer = entity.Customer{
			Name:  str(customer["name"]),
			Phone: str(customer["phone"]),
		}
	}

	if status, ok := entity.ParseStatus(str(m["status"])); ok {
		record.Status = status
	}

	record.SellPrice = str(first(m["sellPrice"], m["sell_price"], details["sell_price"]))
	record.Fees = str(first(m["fees"], details["fees"]))
	record.Cost = str(first(m["cost"], details["cost"]))
	record.NetProfit = finance.DeriveNetProfit(record.SellPrice, record.Fees, record.Cost)

	record.Notes = str(m["notes"])

	if days, err := cast.ToIntE(first(m["reminderDays"], m["reminder_days"])); err == nil && days > 0 {
		record.ReminderDays = days
	}

	supplier, _ := asMap(m["supplier"])
	record.Supplier.Name = str(first(supplier["name"], m["supplierName"]))
	if ps, ok := entity.ParsePaymentStatus(str(first(supplier["payment_status"], m["payment_status"]))); ok {
		record.Supplier.PaymentStatus = ps
	}
	if due, ok := registry.ParseTime(str(first(supplier["payment_due_date"], m["supplierPaymentDueDate"]))); ok {
		record.Supplier.PaymentDueDate = &due
	}

	for k, v := range m {
		if coreKeys[k] {
			continue
		}
		if k == entity.ReservableKey && reservable != nil {
			v = copyMap(reservable)
		}
		record.Extra[k] = v
	}

	// Materialize the inferred type's fields, canonical keys first, so later edits
	// and the outbound payload work on one key per field.
	for _, spec := range registry.FieldsFor(record.BookingType) {
		if spec.Common {
			continue
		}
		v, ok := registry.Resolve(record, spec)
		switch {
		case ok:
			record.TypeFields[spec.Key] = registry.Coerce(spec, v)
		case spec.Default != nil:
			record.TypeFields[spec.Key] = spec.Default
		}
	}

	return record, nil
}

// InferBookingType checks bookingType, then type, then the last segment of reservable_type,
// and defaults to Hotel. A recognized value wins over an earlier unrecognized one; if none is
// recognized the first non-empty value is kept so the caller can show the type placeholder.
func InferBookingType(m map[string]any) entity.BookingType {
	candidates := []string{
		str(m["bookingType"]),
		str(m["type"]),
		lastSegment(str(m["reservable_type"])),
	}

	fallback := ""
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if t, ok := entity.ParseBookingType(c); ok {
			return t
		}
		if fallback == "" {
			fallback = c
		}
	}

	if fallback != "" {
		return entity.BookingType(fallback)
	}
	return entity.Hotel
}

func lastSegment(s string) string {
	if i := strings.LastIndexAny(s, `\/`); i >= 0 {
		return s[i+1:]
	}
	return s
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case entity.RawRecord:
		return map[string]any(m), true
	default:
		return nil, false
	}
}

func copyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func first(values ...any) any {
	for _, v := range values {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			continue
		}
		return v
	}
	return nil
}

func str(v any) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(cast.ToString(v))
}
