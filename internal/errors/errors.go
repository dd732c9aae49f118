package errors

import (
	stderrors "errors"
	"net/http"
)

// Kind classifies a failure so the request boundary can map it to a status
// code without parsing messages.
type Kind string

const (
	KindNotFound              Kind = "not_found"
	KindSpotUnavailable       Kind = "spot_unavailable"
	KindInvalidInterval       Kind = "invalid_interval"
	KindReservationInProgress Kind = "reservation_in_progress"
	KindPricingUnavailable    Kind = "pricing_unavailable"
	KindValidation            Kind = "validation_error"
)

// Error carries a Kind alongside a caller-facing message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func NotFound(message string) *Error              { return New(KindNotFound, message) }
func SpotUnavailable(message string) *Error       { return New(KindSpotUnavailable, message) }
func InvalidInterval(message string) *Error       { return New(KindInvalidInterval, message) }
func ReservationInProgress(message string) *Error { return New(KindReservationInProgress, message) }
func PricingUnavailable(message string) *Error    { return New(KindPricingUnavailable, message) }
func Validation(message string) *Error            { return New(KindValidation, message) }

// KindOf returns the Kind of err, or "" for errors from outside this package.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err carries the given Kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// HTTPStatus maps an error to the status code the API layer should answer with.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindSpotUnavailable, KindReservationInProgress:
		return http.StatusConflict
	case KindInvalidInterval, KindValidation:
		return http.StatusBadRequest
	case KindPricingUnavailable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
