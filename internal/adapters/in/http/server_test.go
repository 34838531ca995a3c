package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/core/domain/model/partner"
	"orderservice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(logBuf *bytes.Buffer) *Server {
	return &Server{
		log: slog.New(slog.NewTextHandler(logBuf, nil)),
	}
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) Error {
	t.Helper()

	var body Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestBusinessError_UnhandledErrorIsOpaque(t *testing.T) {
	var logBuf bytes.Buffer
	server := newTestServer(&logBuf)
	ctx, rec := newTestContext(t, http.MethodGet, "/api/v1/orders/abc", "")

	storageErr := fmt.Errorf(
		"dial tcp 10.0.0.5:5432: connect: connection refused (dsn user=svc password=hunter2)",
	)

	err := server.businessError(ctx, storageErr)

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeError(t, rec)
	assert.Equal(t, http.StatusInternalServerError, body.Code)
	assert.Equal(t, "Internal server error", body.Message)
	assert.NotContains(t, rec.Body.String(), "hunter2")
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")

	// the full failure must still land in the log
	assert.Contains(t, logBuf.String(), "hunter2")
	assert.Contains(t, logBuf.String(), "request failed")
}

func TestBusinessError_DomainErrorsKeepTheirMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"not found", errs.NewObjectNotFoundError("orderId", "abc"), http.StatusNotFound},
		{"already exists", errs.NewObjectAlreadyExistsError("name", "ACME Corp"), http.StatusConflict},
		{"invalid transition", order.ErrInvalidStatusTransition, http.StatusConflict},
		{"insufficient credit", partner.ErrInsufficientCredit, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			server := newTestServer(&logBuf)
			ctx, rec := newTestContext(t, http.MethodGet, "/api/v1/orders/abc", "")

			require.NoError(t, server.businessError(ctx, tt.err))

			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.err.Error(), body.Message)
			assert.Empty(t, logBuf.String(), "domain outcomes are not error-logged")
		})
	}
}

func TestBusinessError_ValidationCarriesFieldErrors(t *testing.T) {
	var logBuf bytes.Buffer
	server := newTestServer(&logBuf)
	ctx, rec := newTestContext(t, http.MethodGet, "/api/v1/partners/abc", "")

	err := errors.Join(
		errs.NewValueIsRequiredError("name"),
		errs.NewValueIsInvalidError("creditLimit"),
	)

	require.NoError(t, server.businessError(ctx, err))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeError(t, rec)
	require.Len(t, body.FieldErrors, 2)
	assert.Equal(t, "name", body.FieldErrors[0].Field)
	assert.Equal(t, "creditLimit", body.FieldErrors[1].Field)
}

func TestCreateOrder_InvalidBodyListsFieldErrors(t *testing.T) {
	var logBuf bytes.Buffer
	server := newTestServer(&logBuf)
	ctx, rec := newTestContext(t, http.MethodPost, "/api/v1/orders",
		`{"partnerId":"7e3a1dfe-1d5b-4b6e-9d2a-1f4c8a9b0c3d","items":[]}`)

	require.NoError(t, server.CreateOrder(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeError(t, rec)
	assert.Equal(t, "Invalid order data", body.Message)
	require.Len(t, body.FieldErrors, 1)
	assert.Equal(t, "items", body.FieldErrors[0].Field)
	assert.Contains(t, body.FieldErrors[0].Message, "at least one item")
}

func TestCreatePartner_NegativeCreditListsFieldError(t *testing.T) {
	var logBuf bytes.Buffer
	server := newTestServer(&logBuf)
	ctx, rec := newTestContext(t, http.MethodPost, "/api/v1/partners",
		`{"name":"","creditLimit":"100.00"}`)

	require.NoError(t, server.CreatePartner(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeError(t, rec)
	require.Len(t, body.FieldErrors, 1)
	assert.Equal(t, "name", body.FieldErrors[0].Field)
}
