package http

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestCustomErrorHandler_StatusCodes(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler(zap.NewNop()),
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("kaput")
	})

	tests := []struct {
		name         string
		method       string
		path         string
		expectStatus int
		expectCode   string
	}{
		{"unknown route", fiber.MethodGet, "/nope", fiber.StatusNotFound, "NOT_FOUND"},
		{"wrong method", fiber.MethodPost, "/boom", fiber.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
		{"handler failure", fiber.MethodGet, "/boom", fiber.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(tt.method, tt.path, nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectStatus, resp.StatusCode)

			var envelope errorEnvelope
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
			assert.Equal(t, tt.expectCode, envelope.Error.Code)
			assert.NotEmpty(t, envelope.Error.Message)
		})
	}
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", errorCode(fiber.StatusBadRequest))
	assert.Equal(t, "REQUEST_ERROR", errorCode(fiber.StatusConflict))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", errorCode(fiber.StatusBadGateway))
}
