package apperr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound       = "NOT_FOUND"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInternalError  = "INTERNAL_ERROR"
	CodeUnauthorized   = "UNAUTHORIZED"

	CodeEmptyRoster     = "EMPTY_ROSTER"
	CodeRosterFinalized = "ROSTER_FINALIZED"
	CodeTemplateRow     = "TEMPLATE_ROW"
	CodeDoorOccupied    = "DOOR_OCCUPIED"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = New(fiber.StatusBadRequest, CodeNotFound, "resource not found with given parameters")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")

	// ErrUnauthorized is returned when a session or admin credential is missing or invalid.
	ErrUnauthorized = New(fiber.StatusUnauthorized, CodeUnauthorized, "missing or invalid credentials")

	// ErrEmptyRoster is returned when finalizing a date that resolves to zero rows.
	ErrEmptyRoster = New(fiber.StatusBadRequest, CodeEmptyRoster, "no routes to finalize for this date")

	// ErrRosterFinalized is returned when an operation requires the date to not be finalized.
	ErrRosterFinalized = New(fiber.StatusBadRequest, CodeRosterFinalized, "the roster for this date is finalized")

	// ErrTemplateRow is returned when deleting a template-sourced row; the
	// weekly template is the place to remove it.
	ErrTemplateRow = New(fiber.StatusBadRequest, CodeTemplateRow, "row comes from the weekly template: edit the template to remove it")

	// ErrDoorOccupied is returned when a door already has an active trailer for the date.
	ErrDoorOccupied = New(fiber.StatusConflict, CodeDoorOccupied, "door already has an active trailer assigned for this date")
)

type Extras map[string]any

type Error struct {
	StatusCode int    `example:"400"`
	ErrorCode  string `example:"INVALID_REQUEST"`
	Message    string `example:"invalid request: some or all request parameters are invalid"`
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *Error {
	return &Error{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

// Msg returns a copy of e with a formatted message. The receiver is a value
// so the sentinel errors above stay immutable.
func (e Error) Msg(format string, parts ...any) *Error {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e Error) WithExtras(extras Extras) *Error {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations any) *Error {
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
