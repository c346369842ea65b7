package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"avatarhub/internal/logger"
)

// RequestLogger logs every request with its status and latency. 4xx responses
// log at warn and 5xx at error.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// Let echo write the error response so the status is known.
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			status := res.Status

			event := logger.Info()
			if status >= 400 {
				event = logger.Warn()
			}
			if status >= 500 {
				event = logger.Error()
			}

			event.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("query", req.URL.RawQuery).
				Int("status", status).
				Dur("latency", time.Since(start)).
				Str("ip", c.RealIP()).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Int64("body_size", res.Size).
				Msg("request")
			return nil
		}
	}
}
