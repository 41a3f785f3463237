package errors

import (
	"errors"
	"fmt"
)

// MissingTokenError representa la falta de credenciales de GitHub. Es un
// error de precondición: se lanza antes de empezar cualquier adquisición.
type MissingTokenError struct{}

func (e *MissingTokenError) Error() string {
	return "GitHub token is required. Set GITHUB_TOKEN or run 'contrib-tracker config set-token'"
}

// NewMissingTokenError crea un nuevo error de credenciales faltantes.
func NewMissingTokenError() *MissingTokenError {
	return &MissingTokenError{}
}

// RateLimitedError marca una falla clasificada como rate limit de la API
// remota. Las estrategias lo usan para decidir el fallback, nunca llega al
// caller.
type RateLimitedError struct {
	Operation string
	Err       error
}

func (e *RateLimitedError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("github rate limit hit during %s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("github rate limit hit: %v", e.Err)
}

func (e *RateLimitedError) Unwrap() error {
	return e.Err
}

// NewRateLimitedError crea un nuevo error de rate limit.
func NewRateLimitedError(operation string, err error) *RateLimitedError {
	return &RateLimitedError{Operation: operation, Err: err}
}

// IsRateLimited reports whether the failure was classified as a remote rate
// limit.
func IsRateLimited(err error) bool {
	var rle *RateLimitedError
	return errors.As(err, &rle)
}

// InvalidRangeError representa un rango de fechas inválido (start >= end).
type InvalidRangeError struct {
	Start string
	End   string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid date range: start %s must be before end %s", e.Start, e.End)
}

// NewInvalidRangeError crea un nuevo error de rango inválido.
func NewInvalidRangeError(start, end string) *InvalidRangeError {
	return &InvalidRangeError{Start: start, End: end}
}

// MalformedResponseError representa una respuesta remota con forma
// inesperada. Se recupera por repositorio, igual que una falla por ítem.
type MalformedResponseError struct {
	Repository string
	Reason     string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response for repository %s: %s", e.Repository, e.Reason)
}

// NewMalformedResponseError crea un nuevo error de respuesta malformada.
func NewMalformedResponseError(repository, reason string) *MalformedResponseError {
	return &MalformedResponseError{Repository: repository, Reason: reason}
}
