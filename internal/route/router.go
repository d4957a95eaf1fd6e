package router

import (
	"reservation-dashboard/internal/module/reservation/handler"
	"reservation-dashboard/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

func Initialize(app *fiber.App, handlerReservation *handler.ReservationHandler, m *middleware.Middleware) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api", m.Tracing, m.RequestLogger)

	v1 := Api.Group("/v1")

	// public routes
	v1.Post("/session", handlerReservation.StartSession)
	v1.Get("/booking-types", handlerReservation.BookingTypes)
	v1.Get("/booking-types/:type/fields", handlerReservation.FieldsFor)

	// session routes
	v1.Delete("/session", m.RequireSession, handlerReservation.EndSession)

	reservations := v1.Group("/reservations", m.RequireSession)
	reservations.Get("/", handlerReservation.ListReservations)
	reservations.Post("/", handlerReservation.CreateReservation)
	reservations.Post("/preview", handlerReservation.Preview)
	reservations.Get("/:id", handlerReservation.GetReservation)
	reservations.Put("/:id", handlerReservation.UpdateReservation)
	reservations.Delete("/:id", handlerReservation.DeleteReservation)
	reservations.Post("/:id/approve", handlerReservation.Approve)
	reservations.Post("/:id/reject", handlerReservation.Reject)
	reservations.Patch("/:id/status", handlerReservation.ChangeStatus)

	return app

}
