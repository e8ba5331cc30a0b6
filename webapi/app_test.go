package webapi_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.App {
	return &config.App{
		Env:       "test",
		Server:    &config.Server{Host: "localhost", Port: 3000},
		Log:       &config.Log{},
		DB:        &config.DB{},
		RateLimit: &config.RateLimit{MaxRequests: 100, Window: time.Minute},
	}
}

func TestHealthEndpoint(t *testing.T) {
	app := webapi.New(nil, testConfig())

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint: errcheck

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestUnknownRouteReturnsProblemJSON(t *testing.T) {
	app := webapi.New(nil, testConfig())

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/nope", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint: errcheck

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "application/problem+json")
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = &config.RateLimit{MaxRequests: 2, Window: time.Minute}
	app := webapi.New(nil, cfg)

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))
		require.NoError(t, err)
		resp.Body.Close() //nolint: errcheck
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}
