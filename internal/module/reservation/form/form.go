// Package form holds one editable reservation and turns it into the body the reservation API expects.
//
// A Form is owned by a single add, edit or view flow and is not safe for concurrent use.
// Its state moves Idle -> Editing -> Submitting and back to Idle on success or Editing on failure.
package form

import (
	"context"
	"fmt"
	"strings"

	"reservation-dashboard/internal/module/reservation/finance"
	"reservation-dashboard/internal/module/reservation/models/entity"
	"reservation-dashboard/internal/module/reservation/models/request"
	"reservation-dashboard/internal/module/reservation/normalizer"
	"reservation-dashboard/internal/module/reservation/registry"
	"reservation-dashboard/internal/pkg/errors"

	"github.com/spf13/cast"
)

type Mode string

const (
	ModeAdd  Mode = "add"
	ModeEdit Mode = "edit"
	ModeView Mode = "view"
)

type State string

const (
	StateIdle       State = "idle"
	StateEditing    State = "editing"
	StateSubmitting State = "submitting"
)

// Submitter sends an outbound payload to the reservation API.
type Submitter interface {
	Create(ctx context.Context, payload request.OutboundPayload) (entity.RawRecord, error)
	Update(ctx context.Context, id string, payload request.OutboundPayload) (entity.RawRecord, error)
}

type Form struct {
	mode    Mode
	state   State
	record  entity.BookingRecord
	lastErr error
}

// New starts a form on a fresh record with every default applied.
func New(mode Mode) *Form {
	return &Form{
		mode:   mode,
		state:  StateIdle,
		record: entity.NewBookingRecord(),
	}
}

// Load starts a form on a normalized server record.
func Load(mode Mode, raw any) (*Form, error) {
	record, err := normalizer.Normalize(raw)
	if err != nil {
		return nil, err
	}
	return &Form{
		mode:   mode,
		state:  StateIdle,
		record: record,
	}, nil
}

func (f *Form) Mode() Mode { return f.mode }

func (f *Form) State() State { return f.state }

func (f *Form) Busy() bool { return f.state == StateSubmitting }

// LastError is the failure of the last submission, nil after a success.
func (f *Form) LastError() error { return f.lastErr }

// Record returns a copy of the current record; edits go through SetField.
func (f *Form) Record() entity.BookingRecord {
	return f.record.Clone()
}

// Fields returns the fields to render for the current booking type, empty when it is not recognized.
func (f *Form) Fields() []registry.FieldSpec {
	return registry.FieldsFor(f.record.BookingType)
}

// Placeholder is non-empty when no form can be rendered for the current booking type.
func (f *Form) Placeholder() string {
	if f.record.BookingType.Valid() {
		return ""
	}
	return registry.Placeholder
}

// Values resolves every rendered field of the current type, common fields included.
func (f *Form) Values() map[string]any {
	return registry.ExtractTypeFields(f.record, f.record.BookingType)
}

func (f *Form) NetProfit() float64 {
	return f.record.NetProfit
}

// ApplyEdits applies edits in order and stops at the first rejected one.
func (f *Form) ApplyEdits(edits []request.FieldEdit) error {
	for _, edit := range edits {
		if err := f.SetField(edit.Key, edit.Value); err != nil {
			return err
		}
	}
	return nil
}

// SetField routes one edit into the record. Customer keys fill the customer, price keys
// recompute the net profit, booking type fields land in TypeFields and unknown keys are
// kept as passthrough. Changing the booking type never discards entered type fields.
func (f *Form) SetField(key string, value any) error {
	if f.mode == ModeView {
		return errors.Validation(errors.InvalidField, "reservation is read-only")
	}
	if f.Busy() {
		return errors.Validation(errors.InvalidField, "reservation is being submitted")
	}

	key = strings.TrimSpace(key)
	r := &f.record

	switch key {
	case "":
		return errors.Validation(errors.InvalidField, "field key is required")
	case "id":
		return errors.Validation(errors.InvalidField, "id is not editable")
	case "name":
		r.Customer.Name = text(value)
	case "phoneNumber", "phone":
		r.Customer.Phone = text(value)
	case "customer":
		customer, ok := value.(map[string]any)
		if !ok {
			return errors.Validation(errors.InvalidField, "customer must be an object")
		}
		r.Customer = entity.Customer{Name: text(customer["name"]), Phone: text(customer["phone"])}
	case "sellPrice", "sell_price":
		r.SellPrice = text(value)
		f.recompute()
	case "fees":
		r.Fees = text(value)
		f.recompute()
	case "cost":
		r.Cost = text(value)
		f.recompute()
	case "netProfit", "net_profit":
		return errors.Validation(errors.InvalidField, "net profit is derived from sell price, fees and cost")
	case "bookingType", "type":
		f.setBookingType(text(value))
	case "status":
		status, ok := entity.ParseStatus(text(value))
		if !ok {
			return errors.Validation(errors.InvalidField, fmt.Sprintf("unknown status %q", text(value)))
		}
		r.Status = status
	case "payment_status", "paymentStatus":
		ps, ok := entity.ParsePaymentStatus(text(value))
		if !ok {
			return errors.Validation(errors.InvalidField, fmt.Sprintf("unknown payment status %q", text(value)))
		}
		r.Supplier.PaymentStatus = ps
	case "supplierName", "supplier_name":
		r.Supplier.Name = text(value)
	case "supplierPaymentDueDate":
		s := text(value)
		if s == "" {
			r.Supplier.PaymentDueDate = nil
			break
		}
		due, ok := registry.ParseTime(s)
		if !ok {
			return errors.Validation(errors.InvalidField, fmt.Sprintf("invalid payment due date %q", s))
		}
		r.Supplier.PaymentDueDate = &due
	case "reminderDays", "reminder_days":
		days, err := cast.ToIntE(strings.TrimSpace(cast.ToString(value)))
		if err != nil || days < 0 {
			return errors.Validation(errors.InvalidField, fmt.Sprintf("invalid reminder days %v", value))
		}
		if days == 0 {
			days = entity.DefaultReminderDays
		}
		r.ReminderDays = days
	case "notes":
		r.Notes = text(value)
	default:
		if canonical, ok := registry.CanonicalKey(r.BookingType, key); ok {
			r.TypeFields[canonical] = value
		} else {
			r.Extra[key] = value
		}
	}

	if f.state == StateIdle {
		f.state = StateEditing
	}
	return nil
}

func (f *Form) recompute() {
	f.record.NetProfit = finance.DeriveNetProfit(f.record.SellPrice, f.record.Fees, f.record.Cost)
}

// setBookingType switches the type and fills fields the new type has not seen yet from the
// server data and defaults. Values already in TypeFields are left untouched.
func (f *Form) setBookingType(s string) {
	r := &f.record
	if t, ok := entity.ParseBookingType(s); ok {
		r.BookingType = t
	} else {
		r.BookingType = entity.BookingType(s)
	}

	for _, spec := range registry.FieldsFor(r.BookingType) {
		if spec.Common {
			continue
		}
		if _, ok := r.TypeFields[spec.Key]; ok {
			continue
		}
		v, ok := registry.Resolve(r, spec)
		switch {
		case ok:
			r.TypeFields[spec.Key] = registry.Coerce(spec, v)
		case spec.Default != nil:
			r.TypeFields[spec.Key] = spec.Default
		}
	}
}

// Validate checks what must hold before the record is sent: a customer name, a recognized
// booking type and, when editing, the record id.
func (f *Form) Validate() error {
	return Validate(f.record, f.mode == ModeEdit)
}

func Validate(record entity.BookingRecord, update bool) error {
	if strings.TrimSpace(record.Customer.Name) == "" {
		return errors.Validation(errors.MissingCustomerName, "customer name is required")
	}
	if !record.BookingType.Valid() {
		return errors.Validation(errors.MissingBookingType, "booking type is required")
	}
	if update && !record.HasID() {
		return errors.Validation(errors.MissingRecordId, "reservation id is required to update")
	}
	return nil
}

// Payload builds the outbound body of the current record.
func (f *Form) Payload() request.OutboundPayload {
	return BuildSubmissionPayload(f.record)
}

// BuildSubmissionPayload flattens the customer, renames the booking type to type, groups the
// prices under details and adds the fields of the record's type at the top level. Fields of
// other types stay on the record and are not sent.
func BuildSubmissionPayload(record entity.BookingRecord) request.OutboundPayload {
	sell := finance.ParseAmount(record.SellPrice)
	fees := finance.ParseAmount(record.Fees)
	cost := finance.ParseAmount(record.Cost)
	netProfit := finance.DeriveNetProfit(record.SellPrice, record.Fees, record.Cost)

	typeFields := map[string]any{}
	for _, spec := range registry.FieldsFor(record.BookingType) {
		if spec.Common {
			continue
		}
		v, ok := registry.Resolve(record, spec)
		switch {
		case ok:
			typeFields[spec.Key] = registry.Coerce(spec, v)
		case spec.Default != nil:
			typeFields[spec.Key] = spec.Default
		}
	}

	return request.OutboundPayload{
		Name:          strings.TrimSpace(record.Customer.Name),
		PhoneNumber:   strings.TrimSpace(record.Customer.Phone),
		Type:          string(record.BookingType),
		Status:        string(record.Status),
		Notes:         record.Notes,
		SupplierName:  record.Supplier.Name,
		PaymentStatus: string(record.Supplier.PaymentStatus),
		Details: request.PriceDetails{
			SellPrice: sell,
			Cost:      cost,
			Fees:      fees,
			NetProfit: netProfit,
		},
		NetProfit:  netProfit,
		TypeFields: typeFields,
	}
}

// Submit validates locally, then creates or updates through s. Validation failures never reach s.
// On failure the form returns to Editing with every entered value kept.
func (f *Form) Submit(ctx context.Context, s Submitter) (entity.RawRecord, error) {
	if f.mode == ModeView {
		return nil, errors.BadRequest("reservation is read-only")
	}
	if f.Busy() {
		return nil, errors.BadRequest("reservation is already being submitted")
	}

	if err := f.Validate(); err != nil {
		f.fail(err)
		return nil, err
	}

	f.state = StateSubmitting
	payload := f.Payload()

	var (
		raw entity.RawRecord
		err error
	)
	if f.mode == ModeEdit {
		raw, err = s.Update(ctx, f.record.ID, payload)
	} else {
		raw, err = s.Create(ctx, payload)
	}
	if err != nil {
		f.fail(err)
		return nil, err
	}

	f.state = StateIdle
	f.lastErr = nil
	return raw, nil
}

func (f *Form) fail(err error) {
	f.state = StateEditing
	f.lastErr = err
}

func text(v any) string {
	if v == nil {
		return ""
	}
	return cast.ToString(v)
}
