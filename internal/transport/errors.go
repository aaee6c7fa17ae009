package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/service"
)

var statusByError = []struct {
	err    error
	status int
}{
	{service.ErrConflict, http.StatusForbidden},
	{service.ErrWrongCredentials, http.StatusForbidden},
	{service.ErrBookmarkNotFound, http.StatusNotFound},
	{service.ErrUserNotFound, http.StatusUnauthorized},
	{service.ErrUnauthorized, http.StatusUnauthorized},
}

func (s *HTTPServer) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	s.e.DefaultHTTPErrorHandler(s.toHTTPError(err, c), c)
}

func (s *HTTPServer) toHTTPError(err error, c echo.Context) *echo.HTTPError {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he
	}

	for _, m := range statusByError {
		if errors.Is(err, m.err) {
			return echo.NewHTTPError(m.status, m.err.Error())
		}
	}

	s.logger.Errorw("request failed",
		"error", err,
		"method", c.Request().Method,
		"path", c.Path(),
		"request_id", requestID(c),
	)
	return echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
