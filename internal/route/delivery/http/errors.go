package http

import (
	"errors"
	"net/http"

	"intent-router/internal/route"
	"intent-router/pkg/response"
)

var (
	errDomainRequired = response.NewHTTPError(http.StatusBadRequest, "domain is required")
	errChatIDRequired = response.NewHTTPError(http.StatusBadRequest, "chatId is required")
)

// mapError translates use-case errors into HTTP errors. Unknown errors
// become nil so the caller answers with a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, route.ErrInvalidChatID),
		errors.Is(err, route.ErrEmptyText),
		errors.Is(err, route.ErrTextTooLong):
		return response.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, route.ErrUnknownDomain),
		errors.Is(err, route.ErrNoTurn):
		return response.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, route.ErrRateLimited):
		return response.NewHTTPError(http.StatusTooManyRequests, err.Error())
	default:
		return nil
	}
}
