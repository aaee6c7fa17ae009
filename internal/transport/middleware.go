package transport

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/metrics"
	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/service"
)

const (
	identityKey = "identity"
	censored    = "$censored"
)

var censoredFields = []string{"password", "access_token"}

// AuthMiddleware resolves the bearer token into a service.Identity.
func (s *HTTPServer) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
		}

		identity, err := s.identity.VerifyToken(token)
		if err != nil {
			s.logger.Debugw("rejected token", "error", err, "request_id", requestID(c))
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}

		c.Set(identityKey, identity)
		return next(c)
	}
}

func GetIdentityFromContext(c echo.Context) (*service.Identity, error) {
	identity, ok := c.Get(identityKey).(*service.Identity)
	if !ok || identity == nil {
		return nil, errors.New("no identity found in context")
	}
	return identity, nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func newRequestID() string {
	return uuid.New().String()
}

func requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

func (s *HTTPServer) observeRequests(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			// commit the response so the status below is the real one
			c.Error(err)
		}

		status := c.Response().Status
		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request().Method, route, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())

		s.logger.Infow("request",
			"method", c.Request().Method,
			"uri", c.Request().RequestURI,
			"status", status,
			"latency", time.Since(start),
			"request_id", requestID(c),
		)
		return nil
	}
}

func skipBodyDump(c echo.Context) bool {
	return c.Path() == "/metrics" || c.Path() == "/ping"
}

func (s *HTTPServer) dumpBody(c echo.Context, reqBody, resBody []byte) {
	s.logger.Debugw("request body",
		"request_id", requestID(c),
		"request", string(censorBody(reqBody)),
		"response", string(censorBody(resBody)),
	)
}

// censorBody replaces secrets in a JSON object body. Anything that is not a
// JSON object is returned unchanged.
func censorBody(body []byte) []byte {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return body
	}

	changed := false
	for _, name := range censoredFields {
		if _, ok := fields[name]; ok {
			fields[name] = json.RawMessage(strconv.Quote(censored))
			changed = true
		}
	}
	if !changed {
		return body
	}

	out, err := json.Marshal(fields)
	if err != nil {
		return body
	}
	return out
}
