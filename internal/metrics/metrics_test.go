package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveSync(t *testing.T) {
	Init()
	Init()

	beforeOK := testutil.ToFloat64(SyncRuns.WithLabelValues("succeeded"))
	beforeFailed := testutil.ToFloat64(SyncRuns.WithLabelValues("failed"))
	beforeDeactivated := testutil.ToFloat64(BundlesDeactivated)

	ObserveSync("succeeded", time.Second, 10, 8, 2, 1, 3, 0)
	ObserveSync("failed", time.Second, 99, 99, 99, 99, 99, 99)

	assert.Equal(t, beforeOK+1, testutil.ToFloat64(SyncRuns.WithLabelValues("succeeded")))
	assert.Equal(t, beforeFailed+1, testutil.ToFloat64(SyncRuns.WithLabelValues("failed")))
	assert.Equal(t, float64(2), testutil.ToFloat64(SyncQuizzes.WithLabelValues("unparseable")))
	assert.Equal(t, beforeDeactivated+3, testutil.ToFloat64(BundlesDeactivated))
}

func TestMiddlewareAndHandler(t *testing.T) {
	Init()
	app := fiber.New()
	app.Use(Middleware())
	app.Get("/ping/:id", func(c *fiber.Ctx) error { return c.SendString("pong") })
	app.Get("/metrics", Handler())

	before := testutil.ToFloat64(RequestCounter.WithLabelValues("GET", "/ping/:id", "200"))

	resp, err := app.Test(httptest.NewRequest("GET", "/ping/7", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, before+1, testutil.ToFloat64(RequestCounter.WithLabelValues("GET", "/ping/:id", "200")))

	resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "naplanprep_http_requests_total")
}
