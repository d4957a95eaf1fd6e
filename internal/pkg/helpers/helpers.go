package helpers

import (
	"fmt"
	"net/http"

	"reservation-dashboard/internal/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Code       int    `json:"code"`
	Kind       string `json:"kind"`
	Validation string `json:"validation,omitempty"`
	Message    string `json:"message"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return RespSuccessWithStatus(ctx, log, http.StatusOK, data, message)
}

func RespSuccessWithStatus(ctx *fiber.Ctx, log *otelzap.Logger, status int, data interface{}, message string) error {
	log.Ctx(ctx.UserContext()).Debug(fmt.Sprintf("response %d: %s", status, message))
	return ctx.Status(status).JSON(Response{
		Message: message,
		Data:    data,
	})
}

// RespError writes err as JSON; errors outside the CustomError taxonomy are reported as a generic 500.
func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	ce, ok := errors.As(err)
	if !ok {
		log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("unexpected error: %v", err))
		ce = errors.CustomError{
			Code:    http.StatusInternalServerError,
			Kind:    errors.KindInternal,
			Message: "Unknown error occurred",
		}
	}

	return ctx.Status(ce.Code).JSON(ErrorResponse{
		Code:       ce.Code,
		Kind:       string(ce.Kind),
		Validation: string(ce.Validation),
		Message:    ce.Message,
	})
}
