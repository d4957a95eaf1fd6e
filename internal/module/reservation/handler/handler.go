package handler

import (
	"context"
	"fmt"

	"reservation-dashboard/internal/module/reservation/models/entity"
	"reservation-dashboard/internal/module/reservation/models/request"
	"reservation-dashboard/internal/module/reservation/usecases"
	"reservation-dashboard/internal/pkg/errors"
	"reservation-dashboard/internal/pkg/helpers"
	"reservation-dashboard/internal/pkg/tokenstore"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type ReservationHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *ReservationHandler) StartSession(ctx *fiber.Ctx) error {
	var req request.Session
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.StartSession(ctx.UserContext(), req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error start session: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccessWithStatus(ctx, h.Log, fiber.StatusCreated, resp, "success start session")
}

func (h *ReservationHandler) EndSession(ctx *fiber.Ctx) error {
	sessionID := tokenstore.SessionFromContext(ctx.UserContext())

	if err := h.Usecase.EndSession(ctx.UserContext(), sessionID); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error end session: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success end session")
}

func (h *ReservationHandler) BookingTypes(ctx *fiber.Ctx) error {
	return helpers.RespSuccess(ctx, h.Log, h.Usecase.BookingTypes(ctx.UserContext()), "success show booking types")
}

func (h *ReservationHandler) FieldsFor(ctx *fiber.Ctx) error {
	return helpers.RespSuccess(ctx, h.Log, h.Usecase.FieldsFor(ctx.UserContext(), ctx.Params("type")), "success show booking type fields")
}

func (h *ReservationHandler) ListReservations(ctx *fiber.Ctx) error {
	filter, err := h.listFilter(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.ListReservations(ctx.UserContext(), filter)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list reservations: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list reservations")
}

func (h *ReservationHandler) GetReservation(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.GetReservation(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get reservation: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get reservation")
}

func (h *ReservationHandler) CreateReservation(ctx *fiber.Ctx) error {
	draft, filter, err := h.parseDraft(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.CreateReservation(ctx.UserContext(), draft, filter)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create reservation: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccessWithStatus(ctx, h.Log, fiber.StatusCreated, resp, "Booking added")
}

func (h *ReservationHandler) UpdateReservation(ctx *fiber.Ctx) error {
	draft, filter, err := h.parseDraft(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.UpdateReservation(ctx.UserContext(), ctx.Params("id"), draft, filter)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update reservation: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "Booking updated successfully")
}

func (h *ReservationHandler) Approve(ctx *fiber.Ctx) error {
	return h.changeStatus(ctx, string(entity.StatusIssued))
}

func (h *ReservationHandler) Reject(ctx *fiber.Ctx) error {
	return h.changeStatus(ctx, string(entity.StatusCancelled))
}

func (h *ReservationHandler) ChangeStatus(ctx *fiber.Ctx) error {
	var req request.StatusChange
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	return h.changeStatus(ctx, req.Status)
}

func (h *ReservationHandler) changeStatus(ctx *fiber.Ctx, status string) error {
	filter, err := h.listFilter(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.ChangeStatus(ctx.UserContext(), ctx.Params("id"), status, filter)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error change reservation status: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, fmt.Sprintf("Reservation %s", status))
}

func (h *ReservationHandler) DeleteReservation(ctx *fiber.Ctx) error {
	filter, err := h.listFilter(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.DeleteReservation(ctx.UserContext(), ctx.Params("id"), filter)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error delete reservation: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "Booking deleted")
}

func (h *ReservationHandler) Preview(ctx *fiber.Ctx) error {
	var req request.Preview
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.Preview(ctx.UserContext(), req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error preview reservation: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success preview reservation")
}

// SendReminder handles the reservation reminder task.
func (h *ReservationHandler) SendReminder(ctx context.Context, t *asynq.Task) error {
	var req request.Reminder
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		return fmt.Errorf("unmarshal reminder: %v: %w", err, asynq.SkipRetry)
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate payload: %v", err))
		return fmt.Errorf("validate reminder: %v: %w", err, asynq.SkipRetry)
	}

	if err := h.Usecase.SendReminder(ctx, req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error send reminder: %v", err))
		return err
	}

	return nil
}

func (h *ReservationHandler) parseDraft(ctx *fiber.Ctx) (request.Draft, request.ListFilter, error) {
	var draft request.Draft
	if err := ctx.BodyParser(&draft); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return request.Draft{}, request.ListFilter{}, errors.BadRequest("error parse request")
	}

	if err := h.Validator.Struct(draft); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return request.Draft{}, request.ListFilter{}, errors.BadRequest(err.Error())
	}

	filter, err := h.listFilter(ctx)
	if err != nil {
		return request.Draft{}, request.ListFilter{}, err
	}

	return draft, filter, nil
}

func (h *ReservationHandler) listFilter(ctx *fiber.Ctx) (request.ListFilter, error) {
	var filter request.ListFilter
	if err := ctx.QueryParser(&filter); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse query: %v", err))
		return request.ListFilter{}, errors.BadRequest("error parse query")
	}
	return filter, nil
}
