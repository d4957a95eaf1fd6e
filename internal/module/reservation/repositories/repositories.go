package repositories

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"reservation-dashboard/config"
	"reservation-dashboard/internal/module/reservation/models/entity"
	"reservation-dashboard/internal/module/reservation/models/request"
	"reservation-dashboard/internal/pkg/errors"
	"reservation-dashboard/internal/pkg/tokenstore"

	"github.com/goccy/go-json"
	circuit "github.com/rubyist/circuitbreaker"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.elastic.co/apm"
)

const reservationsPath = "/reservations"

type repositories struct {
	log        *otelzap.Logger
	httpClient *circuit.HTTPClient
	cfg        *config.ReservationAPIConfig
	tokens     tokenstore.Store
}

// Repositories is the reservation API. Every call needs the bearer credential of the session
// bound to ctx and fails with errors.AuthMissing, without a request, when there is none.
type Repositories interface {
	List(ctx context.Context) ([]entity.RawRecord, error)
	Get(ctx context.Context, id string) (entity.RawRecord, error)
	Create(ctx context.Context, payload request.OutboundPayload) (entity.RawRecord, error)
	Update(ctx context.Context, id string, payload request.OutboundPayload) (entity.RawRecord, error)
	UpdateStatus(ctx context.Context, id string, status entity.Status) (entity.RawRecord, error)
	Delete(ctx context.Context, id string) error
}

func New(log *otelzap.Logger, httpClient *circuit.HTTPClient, cfg *config.ReservationAPIConfig, tokens tokenstore.Store) Repositories {
	return &repositories{
		log:        log,
		httpClient: httpClient,
		cfg:        cfg,
		tokens:     tokens,
	}
}

// List implements Repositories.
func (r *repositories) List(ctx context.Context) ([]entity.RawRecord, error) {
	data, err := r.do(ctx, http.MethodGet, reservationsPath, nil)
	if err != nil {
		return nil, err
	}

	var body any
	if err := json.Unmarshal(data, &body); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error decode reservations: %v", err))
		return nil, errors.NetworkError(fmt.Errorf("decode reservations: %w", err))
	}

	items, ok := unwrap(body).([]any)
	if !ok {
		return nil, errors.NetworkError(fmt.Errorf("reservations response is not a list"))
	}

	records := make([]entity.RawRecord, 0, len(items))
	for _, item := range items {
		record, ok := item.(map[string]any)
		if !ok {
			r.log.Ctx(ctx).Warn(fmt.Sprintf("skip reservation of type %T", item))
			continue
		}
		records = append(records, entity.RawRecord(record))
	}

	return records, nil
}

// Get implements Repositories.
func (r *repositories) Get(ctx context.Context, id string) (entity.RawRecord, error) {
	data, err := r.do(ctx, http.MethodGet, recordPath(id), nil)
	if err != nil {
		return nil, err
	}
	return r.decodeRecord(ctx, data)
}

// Create implements Repositories.
func (r *repositories) Create(ctx context.Context, payload request.OutboundPayload) (entity.RawRecord, error) {
	data, err := r.do(ctx, http.MethodPost, reservationsPath, payload)
	if err != nil {
		return nil, err
	}
	return r.decodeRecord(ctx, data)
}

// Update implements Repositories.
func (r *repositories) Update(ctx context.Context, id string, payload request.OutboundPayload) (entity.RawRecord, error) {
	data, err := r.do(ctx, http.MethodPut, recordPath(id), payload)
	if err != nil {
		return nil, err
	}
	return r.decodeRecord(ctx, data)
}

// UpdateStatus implements Repositories.
func (r *repositories) UpdateStatus(ctx context.Context, id string, status entity.Status) (entity.RawRecord, error) {
	data, err := r.do(ctx, http.MethodPut, recordPath(id), request.StatusPayload{Status: string(status)})
	if err != nil {
		return nil, err
	}
	return r.decodeRecord(ctx, data)
}

// Delete implements Repositories.
func (r *repositories) Delete(ctx context.Context, id string) error {
	_, err := r.do(ctx, http.MethodDelete, recordPath(id), nil)
	return err
}

func recordPath(id string) string {
	return fmt.Sprintf("%s/%s", reservationsPath, url.PathEscape(strings.TrimSpace(id)))
}

func (r *repositories) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	token, err := r.tokens.Token(ctx, tokenstore.SessionFromContext(ctx))
	if err != nil {
		return nil, err
	}

	span, ctx := apm.StartSpan(ctx, fmt.Sprintf("%s %s", method, path), "external.http")
	defer span.End()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, errors.InternalServerError(fmt.Sprintf("error encode request body: %v", err))
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(r.cfg.BaseURL, "/")+path, reader)
	if err != nil {
		return nil, errors.InternalServerError(fmt.Sprintf("error build request: %v", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error call reservation api %s %s: %v", method, path, err))
		return nil, errors.NetworkError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error read reservation api response: %v", err))
		return nil, errors.NetworkError(err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		r.log.Ctx(ctx).Error(fmt.Sprintf("reservation api %s %s answered %d", method, path, resp.StatusCode))
		return nil, statusError(resp.StatusCode, data)
	}

	return data, nil
}

// statusError maps a non-2xx answer to the error taxonomy, keeping the server message when there is one.
func statusError(status int, body []byte) error {
	msg := serverMessage(body)

	switch status {
	case http.StatusNotFound:
		if msg == "" {
			msg = "reservation not found"
		}
		return errors.NotFound(msg)
	case http.StatusUnprocessableEntity:
		if msg == "" {
			msg = "reservation rejected by server"
		}
		return errors.Validation(errors.RejectedByServer, msg)
	case http.StatusUnauthorized, http.StatusForbidden:
		if msg == "" {
			msg = "Not Auth"
		}
		return errors.UnauthorizedError(msg)
	default:
		return errors.ServerError(status, msg)
	}
}

func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}

func (r *repositories) decodeRecord(ctx context.Context, data []byte) (entity.RawRecord, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return entity.RawRecord{}, nil
	}

	var body any
	if err := json.Unmarshal(data, &body); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error decode reservation: %v", err))
		return nil, errors.NetworkError(fmt.Errorf("decode reservation: %w", err))
	}

	record, ok := unwrap(body).(map[string]any)
	if !ok {
		return nil, errors.NetworkError(fmt.Errorf("reservation response is not an object"))
	}
	return entity.RawRecord(record), nil
}

// unwrap strips a {"data": ...} envelope around a record or a list.
func unwrap(body any) any {
	m, ok := body.(map[string]any)
	if !ok {
		return body
	}
	if _, hasID := m["id"]; hasID {
		return body
	}
	switch inner := m["data"].(type) {
	case map[string]any, []any:
		return inner
	}
	return body
}
