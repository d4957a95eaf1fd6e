package middleware

import (
	"fmt"
	"strings"
	"time"

	"reservation-dashboard/internal/pkg/errors"
	"reservation-dashboard/internal/pkg/helpers"
	"reservation-dashboard/internal/pkg/tokenstore"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.elastic.co/apm"
	"go.uber.org/zap"
)

const SessionHeader = "X-Session-ID"

type Middleware struct {
	Log *otelzap.Logger
	// Tracer defaults to apm.DefaultTracer.
	Tracer *apm.Tracer
}

// RequireSession binds the session id from the X-Session-ID header (or a "Session <id>" authorization
// header) to the request context. The credential itself is looked up by the reservation API client.
func (m *Middleware) RequireSession(ctx *fiber.Ctx) error {
	sessionID := strings.TrimSpace(ctx.Get(SessionHeader))
	if sessionID == "" {
		auth := ctx.Get(fiber.HeaderAuthorization)
		if strings.HasPrefix(auth, "Session ") {
			sessionID = strings.TrimSpace(auth[len("Session "):])
		}
	}

	if sessionID == "" {
		m.Log.Ctx(ctx.UserContext()).Error("error get session from header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error get session from header"))
	}

	ctx.SetUserContext(tokenstore.WithSession(ctx.UserContext(), sessionID))
	ctx.Locals("session_id", sessionID)

	return ctx.Next()
}

func (m *Middleware) RequestLogger(ctx *fiber.Ctx) error {
	start := time.Now()
	err := ctx.Next()

	m.Log.Ctx(ctx.UserContext()).Info("request",
		zap.String("method", ctx.Method()),
		zap.String("path", ctx.Path()),
		zap.Int("status", ctx.Response().StatusCode()),
		zap.Duration("latency", time.Since(start)),
		zap.String("ip", ctx.IP()),
	)

	return err
}

// Tracing opens an APM transaction per request so outbound reservation API spans attach to it.
func (m *Middleware) Tracing(ctx *fiber.Ctx) error {
	tracer := m.Tracer
	if tracer == nil {
		tracer = apm.DefaultTracer
	}
	tx := tracer.StartTransaction(fmt.Sprintf("%s %s", ctx.Method(), ctx.Path()), "request")
	defer tx.End()

	ctx.SetUserContext(apm.ContextWithTransaction(ctx.UserContext(), tx))

	err := ctx.Next()

	// the matched route is only known once the handler chain ran
	tx.Name = fmt.Sprintf("%s %s", ctx.Method(), ctx.Route().Path)
	tx.Result = fmt.Sprintf("HTTP %dxx", ctx.Response().StatusCode()/100)

	return err
}
