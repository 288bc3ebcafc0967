package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestCorrelationIDGeneratesWhenMissing(t *testing.T) {
	app := fiber.New()
	app.Use(CorrelationID())

	var fromLocals, fromContext string
	app.Get("/ping", func(c *fiber.Ctx) error {
		fromLocals = GetCorrelationID(c)
		fromContext = CorrelationIDFromContext(c.UserContext())
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.NoError(t, err)

	header := resp.Header.Get(HeaderCorrelationID)
	require.Len(t, header, 36)
	require.Equal(t, header, fromLocals)
	require.Equal(t, header, fromContext)
}

func TestCorrelationIDReusesIncomingHeaders(t *testing.T) {
	app := fiber.New()
	app.Use(CorrelationID())
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderCorrelationID, " abc-123 ")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, "abc-123", resp.Header.Get(HeaderCorrelationID))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(fiber.HeaderXRequestID, "req-9")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, "req-9", resp.Header.Get(HeaderCorrelationID))
}

func TestObservabilityLogsRequests(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	app := fiber.New()
	app.Use(CorrelationID())
	app.Use(Observability(logger))
	app.Post("/evaluate-submission", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusBadRequest).SendString("bad")
	})

	req := httptest.NewRequest(http.MethodPost, "/evaluate-submission", nil)
	req.Header.Set(HeaderCorrelationID, "corr-1")
	_, err := app.Test(req)
	require.NoError(t, err)

	line := buf.String()
	require.Contains(t, line, `"level":"warn"`)
	require.Contains(t, line, `"route":"/evaluate-submission"`)
	require.Contains(t, line, `"status":400`)
	require.Contains(t, line, `"correlation_id":"corr-1"`)
}

func TestObservabilitySkipsMetricsEndpoint(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(Observability(zerolog.New(&buf)))
	app.Get("/metrics", func(c *fiber.Ctx) error { return c.SendString("ok") })

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	require.Empty(t, buf.String())
}

func TestLatencyBucket(t *testing.T) {
	require.Equal(t, "<=25ms", latencyBucket(10*time.Millisecond))
	require.Equal(t, "<=500ms", latencyBucket(300*time.Millisecond))
	require.Equal(t, "<=10s", latencyBucket(4*time.Second))
	require.Equal(t, ">10s", latencyBucket(time.Minute))
}

func TestRegisterAppliesCORS(t *testing.T) {
	app := fiber.New()
	Register(app, Config{AllowOrigins: []string{"http://localhost:5173"}})
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, "http://localhost:5173", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Empty(t, resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}
