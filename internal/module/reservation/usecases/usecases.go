package usecases

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"reservation-dashboard/internal/module/reservation/finance"
	"reservation-dashboard/internal/module/reservation/form"
	"reservation-dashboard/internal/module/reservation/models/entity"
	"reservation-dashboard/internal/module/reservation/models/request"
	"reservation-dashboard/internal/module/reservation/models/response"
	"reservation-dashboard/internal/module/reservation/normalizer"
	"reservation-dashboard/internal/module/reservation/registry"
	"reservation-dashboard/internal/module/reservation/repositories"
	"reservation-dashboard/internal/pkg/errors"
	"reservation-dashboard/internal/pkg/messagestream"
	"reservation-dashboard/internal/pkg/scheduler"
	"reservation-dashboard/internal/pkg/tokenstore"

	"github.com/goccy/go-json"
	"github.com/spf13/cast"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const allTypes = "All"

// ReminderScheduler queues the reminder task of a reservation. A nil scheduler disables reminders.
type ReminderScheduler interface {
	Schedule(ctx context.Context, taskType, taskID string, payload []byte, at time.Time) error
	Cancel(ctx context.Context, taskID string) error
}

type Usecase interface {
	StartSession(ctx context.Context, req request.Session) (response.Session, error)
	EndSession(ctx context.Context, sessionID string) error
	BookingTypes(ctx context.Context) []response.BookingType
	FieldsFor(ctx context.Context, bookingType string) response.Fields
	ListReservations(ctx context.Context, filter request.ListFilter) ([]response.Reservation, error)
	GetReservation(ctx context.Context, id string) (response.ReservationDetail, error)
	CreateReservation(ctx context.Context, draft request.Draft, filter request.ListFilter) ([]response.Reservation, error)
	UpdateReservation(ctx context.Context, id string, draft request.Draft, filter request.ListFilter) ([]response.Reservation, error)
	ChangeStatus(ctx context.Context, id string, status string, filter request.ListFilter) ([]response.Reservation, error)
	DeleteReservation(ctx context.Context, id string, filter request.ListFilter) ([]response.Reservation, error)
	Preview(ctx context.Context, req request.Preview) (response.Draft, error)
	SendReminder(ctx context.Context, reminder request.Reminder) error
}

type usecases struct {
	repo       repositories.Repositories
	log        *otelzap.Logger
	tokens     tokenstore.Store
	notifier   messagestream.Notifier
	scheduler  ReminderScheduler
	sessionTTL time.Duration
	now        func() time.Time
}

type Option func(*usecases)

// WithClock replaces time.Now, used for reminder and upcoming computations.
func WithClock(now func() time.Time) Option {
	return func(u *usecases) {
		u.now = now
	}
}

func New(repo repositories.Repositories, log *otelzap.Logger, tokens tokenstore.Store, notifier messagestream.Notifier, reminders ReminderScheduler, sessionTTL time.Duration, opts ...Option) Usecase {
	u := &usecases{
		repo:       repo,
		log:        log,
		tokens:     tokens,
		notifier:   notifier,
		scheduler:  reminders,
		sessionTTL: sessionTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// StartSession implements Usecase.
func (u *usecases) StartSession(ctx context.Context, req request.Session) (response.Session, error) {
	ttl := u.sessionTTL
	if req.TTLMinutes > 0 {
		ttl = time.Duration(req.TTLMinutes) * time.Minute
	}

	sessionID := tokenstore.NewSessionID()
	if err := u.tokens.Save(ctx, sessionID, strings.TrimSpace(req.Token), ttl); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error save session: %v", err))
		return response.Session{}, err
	}

	return response.Session{
		SessionID: sessionID,
		ExpiresIn: int64(ttl.Seconds()),
	}, nil
}

// EndSession implements Usecase.
func (u *usecases) EndSession(ctx context.Context, sessionID string) error {
	if err := u.tokens.Clear(ctx, sessionID); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error clear session: %v", err))
		return err
	}
	return nil
}

// BookingTypes implements Usecase.
func (u *usecases) BookingTypes(ctx context.Context) []response.BookingType {
	out := make([]response.BookingType, 0, len(entity.BookingTypes))
	for _, t := range entity.BookingTypes {
		out = append(out, response.BookingType{Value: string(t), Label: string(t)})
	}
	return out
}

// FieldsFor implements Usecase.
func (u *usecases) FieldsFor(ctx context.Context, bookingType string) response.Fields {
	t, ok := entity.ParseBookingType(bookingType)
	if !ok {
		return response.Fields{
			BookingType: bookingType,
			Fields:      registry.FieldsFor(entity.BookingType(bookingType)),
			Placeholder: registry.Placeholder,
		}
	}
	return response.Fields{
		BookingType: string(t),
		Fields:      registry.FieldsFor(t),
	}
}

// ListReservations implements Usecase.
func (u *usecases) ListReservations(ctx context.Context, filter request.ListFilter) ([]response.Reservation, error) {
	raws, err := u.repo.List(ctx)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error list reservations: %v", err))
		u.notifyFailure(ctx, "Failed to load reservations", "", err)
		return nil, err
	}

	today := dateOf(u.now())
	typeFilter := strings.TrimSpace(filter.Type)
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	userID := strings.TrimSpace(filter.UserID)

	type listed struct {
		item      response.Reservation
		createdAt time.Time
	}
	items := make([]listed, 0, len(raws))

	for _, raw := range raws {
		record, err := normalizer.Normalize(raw)
		if err != nil {
			u.log.Ctx(ctx).Warn(fmt.Sprintf("skip reservation: %v", err))
			continue
		}

		if typeFilter != "" && !strings.EqualFold(typeFilter, allTypes) && !strings.EqualFold(typeFilter, string(record.BookingType)) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(record.Customer.Name), search) {
			continue
		}
		if userID != "" && cast.ToString(raw["user_id"]) != userID {
			continue
		}

		item := response.Reservation{
			ID:            record.ID,
			CustomerName:  record.Customer.Name,
			CustomerPhone: record.Customer.Phone,
			BookingType:   string(record.BookingType),
			Status:        string(record.Status),
			SellPrice:     finance.ParseAmount(record.SellPrice),
			Fees:          finance.ParseAmount(record.Fees),
			Cost:          finance.ParseAmount(record.Cost),
			NetProfit:     record.NetProfit,
			SupplierName:  record.Supplier.Name,
			PaymentStatus: string(record.Supplier.PaymentStatus),
			ReminderDays:  record.ReminderDays,
			CreatedAt:     cast.ToString(raw["created_at"]),
		}

		if event, ok := eventDate(record); ok {
			item.EventDate = event.Format("2006-01-02")
			days := int(dateOf(event).Sub(today).Hours() / 24)
			item.Upcoming = days >= 0 && days <= record.ReminderDays
		}

		createdAt, _ := registry.ParseTime(item.CreatedAt)
		items = append(items, listed{item: item, createdAt: createdAt})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].createdAt.After(items[j].createdAt)
	})

	out := make([]response.Reservation, 0, len(items))
	for _, it := range items {
		out = append(out, it.item)
	}
	return out, nil
}

// GetReservation implements Usecase.
func (u *usecases) GetReservation(ctx context.Context, id string) (response.ReservationDetail, error) {
	if strings.TrimSpace(id) == "" {
		return response.ReservationDetail{}, errors.Validation(errors.MissingRecordId, "reservation id is required")
	}

	raw, err := u.repo.Get(ctx, id)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error get reservation %s: %v", id, err))
		u.notifyFailure(ctx, "Failed to load reservation details", id, err)
		return response.ReservationDetail{}, err
	}

	f, err := form.Load(form.ModeView, raw)
	if err != nil {
		return response.ReservationDetail{}, err
	}

	return response.ReservationDetail{
		Record:      f.Record(),
		Fields:      f.Fields(),
		Values:      f.Values(),
		Placeholder: f.Placeholder(),
	}, nil
}

// CreateReservation implements Usecase.
func (u *usecases) CreateReservation(ctx context.Context, draft request.Draft, filter request.ListFilter) ([]response.Reservation, error) {
	f := form.New(form.ModeAdd)
	if err := f.ApplyEdits(draft.Edits); err != nil {
		return nil, err
	}

	raw, err := f.Submit(ctx, u.repo)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error create reservation: %v", err))
		u.notifyFailure(ctx, "Error creating booking", "", err)
		return nil, err
	}

	record := f.Record()
	if id := cast.ToString(raw["id"]); id != "" {
		record.ID = id
	}

	u.scheduleReminder(ctx, record)
	u.notify(ctx, messagestream.Notification{Title: "Booking added", ReservationID: record.ID})

	return u.ListReservations(ctx, filter)
}

// UpdateReservation implements Usecase.
func (u *usecases) UpdateReservation(ctx context.Context, id string, draft request.Draft, filter request.ListFilter) ([]response.Reservation, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.Validation(errors.MissingRecordId, "reservation id is required to update")
	}

	raw, err := u.repo.Get(ctx, id)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error get reservation %s: %v", id, err))
		u.notifyFailure(ctx, "Error updating booking", id, err)
		return nil, err
	}
	if cast.ToString(raw["id"]) == "" {
		withID := make(entity.RawRecord, len(raw)+1)
		for k, v := range raw {
			withID[k] = v
		}
		withID["id"] = id
		raw = withID
	}

	f, err := form.Load(form.ModeEdit, raw)
	if err != nil {
		return nil, err
	}
	if err := f.ApplyEdits(draft.Edits); err != nil {
		return nil, err
	}

	if _, err := f.Submit(ctx, u.repo); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error update reservation %s: %v", id, err))
		u.notifyFailure(ctx, "Error updating booking", id, err)
		return nil, err
	}

	u.scheduleReminder(ctx, f.Record())
	u.notify(ctx, messagestream.Notification{Title: "Booking updated successfully", ReservationID: id})

	return u.ListReservations(ctx, filter)
}

// ChangeStatus implements Usecase.
func (u *usecases) ChangeStatus(ctx context.Context, id string, status string, filter request.ListFilter) ([]response.Reservation, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.Validation(errors.MissingRecordId, "reservation id is required")
	}
	st, ok := entity.ParseStatus(status)
	if !ok {
		return nil, errors.Validation(errors.InvalidField, fmt.Sprintf("unknown status %q", status))
	}

	if _, err := u.repo.UpdateStatus(ctx, id, st); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error update status of reservation %s: %v", id, err))
		u.notifyFailure(ctx, "Failed to update reservation", id, err)
		return nil, err
	}

	if st == entity.StatusCancelled {
		u.cancelReminder(ctx, id)
	}
	u.notify(ctx, messagestream.Notification{
		Title:         fmt.Sprintf("Reservation %s", st),
		Description:   fmt.Sprintf("Reservation has been %s successfully", st),
		ReservationID: id,
	})

	return u.ListReservations(ctx, filter)
}

// DeleteReservation implements Usecase.
func (u *usecases) DeleteReservation(ctx context.Context, id string, filter request.ListFilter) ([]response.Reservation, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.Validation(errors.MissingRecordId, "reservation id is required")
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error delete reservation %s: %v", id, err))
		u.notifyFailure(ctx, "Error deleting booking", id, err)
		return nil, err
	}

	u.cancelReminder(ctx, id)
	u.notify(ctx, messagestream.Notification{Title: "Booking deleted", ReservationID: id})

	return u.ListReservations(ctx, filter)
}

// Preview implements Usecase. Nothing is written; with a reservation id the record is read once.
func (u *usecases) Preview(ctx context.Context, req request.Preview) (response.Draft, error) {
	f := form.New(form.ModeAdd)
	if strings.TrimSpace(req.ReservationID) != "" {
		raw, err := u.repo.Get(ctx, req.ReservationID)
		if err != nil {
			u.log.Ctx(ctx).Error(fmt.Sprintf("error get reservation %s: %v", req.ReservationID, err))
			return response.Draft{}, err
		}
		if f, err = form.Load(form.ModeEdit, raw); err != nil {
			return response.Draft{}, err
		}
	}

	if err := f.ApplyEdits(req.Edits); err != nil {
		return response.Draft{}, err
	}

	return response.Draft{
		Record:      f.Record(),
		Fields:      f.Fields(),
		Payload:     f.Payload(),
		Placeholder: f.Placeholder(),
	}, nil
}

// SendReminder implements Usecase.
func (u *usecases) SendReminder(ctx context.Context, reminder request.Reminder) error {
	return u.notifier.Notify(ctx, messagestream.Notification{
		Title:         "Upcoming reservation",
		Description:   fmt.Sprintf("%s booking for %s on %s", reminder.BookingType, reminder.CustomerName, reminder.EventDate),
		ReservationID: reminder.ReservationID,
		SessionID:     reminder.SessionID,
	})
}

func (u *usecases) scheduleReminder(ctx context.Context, record entity.BookingRecord) {
	if u.scheduler == nil || !record.HasID() {
		return
	}

	event, ok := eventDate(record)
	if !ok || record.Status == entity.StatusCancelled {
		u.cancelReminder(ctx, record.ID)
		return
	}

	at, ok := scheduler.ReminderAt(event, record.ReminderDays, u.now())
	if !ok {
		u.cancelReminder(ctx, record.ID)
		return
	}

	payload, err := json.Marshal(request.Reminder{
		ReservationID: record.ID,
		CustomerName:  record.Customer.Name,
		BookingType:   string(record.BookingType),
		EventDate:     event.Format("2006-01-02"),
		ReminderDays:  record.ReminderDays,
		SessionID:     tokenstore.SessionFromContext(ctx),
	})
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error marshal reminder of reservation %s: %v", record.ID, err))
		return
	}

	if err := u.scheduler.Schedule(ctx, scheduler.TypeReservationReminder, reminderTaskID(record.ID), payload, at); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error schedule reminder of reservation %s: %v", record.ID, err))
	}
}

func (u *usecases) cancelReminder(ctx context.Context, id string) {
	if u.scheduler == nil {
		return
	}
	if err := u.scheduler.Cancel(ctx, reminderTaskID(id)); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error cancel reminder of reservation %s: %v", id, err))
	}
}

func reminderTaskID(id string) string {
	return fmt.Sprintf("%s:%s", scheduler.TypeReservationReminder, id)
}

func (u *usecases) notify(ctx context.Context, n messagestream.Notification) {
	if n.SessionID == "" {
		n.SessionID = tokenstore.SessionFromContext(ctx)
	}
	if err := u.notifier.Notify(ctx, n); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error notify %q: %v", n.Title, err))
	}
}

// notifyFailure shows the server message when the error carries one and a generic text otherwise.
func (u *usecases) notifyFailure(ctx context.Context, title, id string, err error) {
	description := "Something went wrong, please try again"
	if ce, ok := errors.As(err); ok && ce.Kind != errors.KindInternal && ce.Message != "" {
		description = ce.Message
	}
	u.notify(ctx, messagestream.Notification{
		Title:         title,
		Description:   description,
		Variant:       messagestream.VariantDestructive,
		ReservationID: id,
	})
}

func eventDate(record entity.BookingRecord) (time.Time, bool) {
	key := registry.EventDateKey(record.BookingType)
	if key == "" {
		return time.Time{}, false
	}
	v, ok := record.Lookup(key)
	if !ok {
		return time.Time{}, false
	}
	return registry.ParseTime(cast.ToString(v))
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
