package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"meetspace-admin/database"
)

// Kind classifies a request failure. Handlers convert every error to one
// of these at their boundary so driver errors never reach the response.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindConflict
	KindConnection
	KindUnknown
)

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

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// IsNotFound reports whether err represents a missing document, either
// already classified or as the raw driver sentinel.
func IsNotFound(err error) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind == KindNotFound
	}
	return errors.Is(err, mongo.ErrNoDocuments)
}

// Wrap classifies a store error under a generic client-facing message.
func Wrap(err error, msg string) *Error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return &Error{Kind: KindNotFound, Message: msg, Err: err}
	case mongo.IsDuplicateKeyError(err):
		return &Error{Kind: KindConflict, Message: msg, Err: err}
	case errors.Is(err, database.ErrNoURI):
		return &Error{Kind: KindConnection, Message: msg, Err: err}
	default:
		return &Error{Kind: KindUnknown, Message: msg, Err: err}
	}
}

func status(k Kind) int {
	switch k {
	case KindValidation:
		return fiber.StatusBadRequest
	case KindNotFound:
		return fiber.StatusNotFound
	case KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// Respond writes the status and JSON body for err. Internal detail is
// logged server-side only; the 500 body carries just the generic message.
func Respond(c *fiber.Ctx, err error) error {
	var ae *Error
	if !errors.As(err, &ae) {
		ae = &Error{Kind: KindUnknown, Message: "internal server error", Err: err}
	}

	if ae.Kind == KindConnection || ae.Kind == KindUnknown {
		log.Error().Err(ae.Err).Str("path", c.Path()).Msg(ae.Message)
	}

	return c.Status(status(ae.Kind)).JSON(fiber.Map{"error": ae.Message})
}
