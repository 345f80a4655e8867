package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

type Kind int

const (
	KindPersistence Kind = iota
	KindValidation
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindConflict
	KindExternalProvider
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindExternalProvider:
		return "external_provider"
	default:
		return "persistence"
	}
}

// Status is the HTTP status a kind is reported with.
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindExternalProvider:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified failure. Message is safe to show to clients,
// Err carries the underlying cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) error     { return &Error{Kind: KindValidation, Message: msg} }
func Authentication(msg string) error { return &Error{Kind: KindAuthentication, Message: msg} }
func Authorization(msg string) error  { return &Error{Kind: KindAuthorization, Message: msg} }
func NotFound(msg string) error       { return &Error{Kind: KindNotFound, Message: msg} }
func Conflict(msg string) error       { return &Error{Kind: KindConflict, Message: msg} }

func ExternalProvider(msg string, err error) error {
	return &Error{Kind: KindExternalProvider, Message: msg, Err: err}
}

func Persistence(msg string, err error) error {
	return &Error{Kind: KindPersistence, Message: msg, Err: err}
}

// KindOf classifies any error. Unclassified errors count as persistence
// failures.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindPersistence
}

func Is(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// FromDB maps driver errors: no rows becomes notFound, unique violations
// become conflict, everything else is a persistence failure.
func FromDB(err error, notFoundMsg, conflictMsg string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return NotFound(notFoundMsg)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return &Error{Kind: KindConflict, Message: conflictMsg, Err: err}
	}
	return Persistence("database error", err)
}

// Respond writes err as {"error": message}. Persistence failures are
// logged with their cause and reported with a generic message.
func Respond(c *gin.Context, log logrus.FieldLogger, err error) {
	var e *Error
	if !errors.As(err, &e) {
		e = &Error{Kind: KindPersistence, Message: "internal server error", Err: err}
	}

	status := e.Kind.Status()
	msg := e.Message
	fields := logrus.Fields{
		"kind":   e.Kind.String(),
		"status": status,
		"path":   c.FullPath(),
	}

	switch e.Kind {
	case KindPersistence:
		log.WithFields(fields).WithError(err).Error("request failed")
		msg = "internal server error"
	case KindExternalProvider:
		log.WithFields(fields).WithError(err).Warn("upstream provider failed")
	default:
		log.WithFields(fields).Debug(e.Message)
	}

	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
