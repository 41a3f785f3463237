package github

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/go-github/v75/github"
	domainerrors "github.com/mrzacarias/github-contributions-tracker/internal/domain/errors"
)

// isRateLimited clasifica una falla remota como rate limit. Primero los
// errores tipados de go-github; el match por substring queda como último
// recurso para errores que no exponen el status (fragilidad conocida,
// heredada de clientes viejos).
func isRateLimited(err error) bool {
	if err == nil {
		return false
	}

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return true
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return true
	}

	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) && statusCode(respErr.Response) == http.StatusForbidden {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "rate limit") || strings.Contains(msg, "403")
}

// classifyError envuelve las fallas de rate limit en el error de dominio que
// dispara el fallback de estrategia; cualquier otra falla pasa sin tocar.
func classifyError(operation string, err error) error {
	if err == nil {
		return nil
	}
	if isRateLimited(err) {
		return domainerrors.NewRateLimitedError(operation, err)
	}
	return err
}
