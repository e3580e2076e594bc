package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/modboard/backend/internal/metrics"
)

// HTTPMetrics records a counter and duration sample per completed request.
// The endpoint label is the route pattern, not the raw path, so label
// cardinality stays bounded.
func HTTPMetrics(collector *metrics.Collector) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		endpoint := c.Route().Path
		collector.RecordRequest(c.Method(), endpoint, status, time.Since(start))
		return err
	}
}
