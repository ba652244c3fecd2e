package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/corentings/chess/v2"
)

// Error codes
const (
	ErrCodeEmptyInput    = "EMPTY_INPUT"
	ErrCodeNoTurns       = "NO_TURNS"
	ErrCodeInvalidMove   = "INVALID_MOVE"
	ErrCodeTreeExhausted = "TREE_EXHAUSTED"
	ErrCodeValidation    = "VALIDATION_ERROR"
)

// AppError represents an application error with a machine-readable code
type AppError struct {
	Code    string // Error code (e.g., "INVALID_MOVE", "NO_TURNS")
	Message string // Human-readable error message
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// MoveError reports a move token that failed SAN validation.
type MoveError struct {
	AppError
	Turn  int
	Side  chess.Color
	Token string
}

// NewMoveError creates a new INVALID_MOVE error
func NewMoveError(turn int, side chess.Color, token string) *MoveError {
	return &MoveError{
		AppError: AppError{
			Code:    ErrCodeInvalidMove,
			Message: fmt.Sprintf("invalid %s move %q in turn %d", SideName(side), token, turn),
		},
		Turn:  turn,
		Side:  side,
		Token: token,
	}
}

// NewEmptyInputError creates a new EMPTY_INPUT error
func NewEmptyInputError() *AppError {
	return &AppError{
		Code:    ErrCodeEmptyInput,
		Message: "please enter a chess game in SAN notation",
	}
}

// NewNoTurnsError creates a new NO_TURNS error
func NewNoTurnsError() *AppError {
	return &AppError{
		Code:    ErrCodeNoTurns,
		Message: "no valid turns found",
	}
}

// NewTreeExhaustedError creates a new TREE_EXHAUSTED error
func NewTreeExhaustedError(turn int) *AppError {
	return &AppError{
		Code:    ErrCodeTreeExhausted,
		Message: fmt.Sprintf("no available parent node for turn %d", turn),
	}
}

// NewValidationError creates a new VALIDATION_ERROR
func NewValidationError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("%s %s", field, reason),
	}
}

// Code returns the code of the first AppError in err's chain, or "".
func Code(err error) string {
	var me *MoveError
	if stderrors.As(err, &me) {
		return me.Code
	}
	var ae *AppError
	if stderrors.As(err, &ae) {
		return ae.Code
	}
	return ""
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code string) bool {
	return err != nil && Code(err) == code
}

// SideName returns "white" or "black".
func SideName(c chess.Color) string {
	switch c {
	case chess.White:
		return "white"
	case chess.Black:
		return "black"
	default:
		return "none"
	}
}
