package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindBadRequest   Kind = "bad_request"
	KindUnauthorized Kind = "unauthorized"
	KindAuthMissing  Kind = "auth_missing"
	KindValidation   Kind = "validation_error"
	KindNotFound     Kind = "not_found"
	KindNetwork      Kind = "network_error"
	KindServer       Kind = "server_error"
	KindInternal     Kind = "internal_error"
)

// ValidationKind narrows a validation failure to the rule that was broken.
type ValidationKind string

const (
	MissingCustomerName ValidationKind = "MissingCustomerName"
	MissingBookingType  ValidationKind = "MissingBookingType"
	MissingRecordId     ValidationKind = "MissingRecordId"
	RejectedByServer    ValidationKind = "RejectedByServer"
	InvalidField        ValidationKind = "InvalidField"
)

type CustomError struct {
	Code       int
	Kind       Kind
	Validation ValidationKind
	Message    string
}

func (e CustomError) Error() string {
	if e.Validation != "" {
		return fmt.Sprintf("%s: %s", e.Validation, e.Message)
	}
	return e.Message
}

func BadRequest(msg string) error {
	return CustomError{Code: http.StatusBadRequest, Kind: KindBadRequest, Message: msg}
}

func UnauthorizedError(msg string) error {
	return CustomError{Code: http.StatusUnauthorized, Kind: KindUnauthorized, Message: msg}
}

func NotFound(msg string) error {
	return CustomError{Code: http.StatusNotFound, Kind: KindNotFound, Message: msg}
}

func InternalServerError(msg string) error {
	return CustomError{Code: http.StatusInternalServerError, Kind: KindInternal, Message: msg}
}

// AuthMissing is returned before any network call when no credential is stored.
func AuthMissing() error {
	return CustomError{Code: http.StatusUnauthorized, Kind: KindAuthMissing, Message: "Not Auth"}
}

func Validation(kind ValidationKind, msg string) error {
	code := http.StatusBadRequest
	if kind == RejectedByServer {
		code = http.StatusUnprocessableEntity
	}
	return CustomError{Code: code, Kind: KindValidation, Validation: kind, Message: msg}
}

func NetworkError(err error) error {
	msg := "error reaching reservation service"
	if err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err)
	}
	return CustomError{Code: http.StatusBadGateway, Kind: KindNetwork, Message: msg}
}

// ServerError carries the message of a non-2xx answer; status is the upstream status code.
func ServerError(status int, msg string) error {
	if msg == "" {
		msg = fmt.Sprintf("HTTP error! status: %d", status)
	}
	return CustomError{Code: http.StatusBadGateway, Kind: KindServer, Message: msg}
}

func As(err error) (CustomError, bool) {
	var ce CustomError
	if stderrors.As(err, &ce) {
		return ce, true
	}
	return CustomError{}, false
}

func KindOf(err error) Kind {
	if ce, ok := As(err); ok {
		return ce.Kind
	}
	if err == nil {
		return ""
	}
	return KindInternal
}

func ValidationKindOf(err error) ValidationKind {
	if ce, ok := As(err); ok {
		return ce.Validation
	}
	return ""
}

func IsAuthMissing(err error) bool { return KindOf(err) == KindAuthMissing }

func IsValidation(err error) bool { return KindOf(err) == KindValidation }

func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

func IsNetwork(err error) bool { return KindOf(err) == KindNetwork }

func IsServer(err error) bool { return KindOf(err) == KindServer }
