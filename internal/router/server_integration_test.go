//go:build integration_tests
// +build integration_tests

/* Нужен запущенный docker */

package router

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wellywell/giftbroker/internal/auth"
	"github.com/wellywell/giftbroker/internal/config"
	"github.com/wellywell/giftbroker/internal/db"
	"github.com/wellywell/giftbroker/internal/handlers"
	"github.com/wellywell/giftbroker/internal/issuer"
	"github.com/wellywell/giftbroker/internal/metrics"
	"github.com/wellywell/giftbroker/internal/order"
	"github.com/wellywell/giftbroker/internal/testutils"
	"github.com/wellywell/giftbroker/internal/types"
)

var (
	DBDSN   string
	baseURL string
	secret  = []byte("integration-secret")
)

func TestMain(m *testing.M) {
	code, err := runMain(m)

	if err != nil {
		log.Fatal(err)
	}
	os.Exit(code)
}

func runMain(m *testing.M) (int, error) {

	databaseDSN, clean, err := testutils.RunTestDatabase()
	defer clean()

	if err != nil {
		return 1, err
	}

	DBDSN = databaseDSN

	database, err := db.NewDatabase(DBDSN)
	if err != nil {
		return 1, err
	}
	defer database.Close()

	fakeIssuer := httptest.NewServer(http.HandlerFunc(issuerHandler))
	defer fakeIssuer.Close()

	key, err := auth.ParseKey(secret, "HS256")
	if err != nil {
		return 1, err
	}

	collectors := metrics.New()
	client := issuer.NewClient(fakeIssuer.URL, issuer.Credentials{MerchantID: "M1", TerminalID: "T1", CashierID: "001"}, collectors)
	reconciler := order.NewReconciler(database, order.WithRecorder(collectors))
	service := order.NewService(client, database, reconciler)
	handlerSet := handlers.NewHandlerSet(auth.NewVerifier(key), reconciler, service, client, database, collectors)

	conf := config.ServerConfig{RunAddress: "localhost:0", FrontendURL: "*"}
	server := httptest.NewServer(NewRouter(&conf, handlerSet, collectors.Handler(), &RequestLogger{Observer: collectors}).Handler())
	defer server.Close()
	baseURL = server.URL

	exitCode := m.Run()
	return exitCode, nil
}

func issuerHandler(w http.ResponseWriter, r *http.Request) {
	var response any
	switch r.URL.Path {
	case "/orderCreation":
		response = map[string]any{"isSuccessful": true, "orderNo": "OG123"}
	case "/orderConfirm":
		response = map[string]any{"isSuccessful": true}
	case "/orderStatus":
		response = map[string]any{"isSuccessful": true, "orderNo": "OG123", "orderStatus": "043"}
	default:
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(response)
}

func cleanUp(t *testing.T) {
	t.Cleanup(func() {
		if err := testutils.TruncateOrders(DBDSN); err != nil {
			t.Logf("Could not cleanup database %s", err.Error())
		}
	})
}

func webhook(t *testing.T, key []byte, object map[string]any) *resty.Response {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"object": object}).SignedString(key)
	require.NoError(t, err)

	resp, err := resty.New().R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{"token": []string{token}}).
		Post(baseURL + "/api/webhooks/order-status")
	require.NoError(t, err)
	return resp
}

func TestOrderLifecycle(t *testing.T) {
	cleanUp(t)

	resp, err := resty.New().R().
		SetHeader("Content-Type", "application/json").
		SetBody(`{"productCode":"AMZ-50","productName":"Amazon 50","amount":"50","quantity":2}`).
		Post(baseURL + "/api/orders")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), string(resp.Body()))
	assert.JSONEq(t, `{"success":true,"orderNo":"OG123","message":"Orden creada. Generando tarjetas..."}`, string(resp.Body()))

	resp = webhook(t, secret, map[string]any{
		"orderNo":     "OG123",
		"orderStatus": "042",
		"confirmDate": "2024-05-01 10:00:00",
		"listOfCards": []map[string]any{{"cardNumber": "1111", "pin": "22"}, {"cardNumber": "3333", "pin": "44"}},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.JSONEq(t, `{"success":true,"message":"Webhook procesado correctamente","orderNo":"OG123","status":"042"}`, string(resp.Body()))

	database, err := db.NewDatabase(DBDSN)
	require.NoError(t, err)
	defer database.Close()

	stored, err := database.GetOrder(context.Background(), "OG123")
	require.NoError(t, err)
	assert.Equal(t, types.CompletedStatus, stored.Status)
	assert.Len(t, stored.Cards, 2)
	require.NotNil(t, stored.ConfirmDate)

	resp = webhook(t, []byte("someone-else"), map[string]any{"orderNo": "OG123", "orderStatus": "043"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())

	stored, err = database.GetOrder(context.Background(), "OG123")
	require.NoError(t, err)
	assert.Equal(t, types.CompletedStatus, stored.Status)
}

func TestWebhookUnknownOrder(t *testing.T) {
	cleanUp(t)

	resp := webhook(t, secret, map[string]any{"orderNo": "OG404", "orderStatus": "042"})
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.JSONEq(t, `{"success":true,"message":"Webhook recibido pero la orden no existe en DB","orderNo":"OG404"}`, string(resp.Body()))
}

func TestWebhookBadEnvelope(t *testing.T) {
	resp, err := resty.New().R().
		SetHeader("Content-Type", "application/json").
		SetBody(`{"token":[]}`).
		Post(baseURL + "/api/webhooks/order-status")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
}

func TestHealthAndMetrics(t *testing.T) {
	resp, err := resty.New().R().Get(baseURL + "/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())

	resp, err = resty.New().R().Get(baseURL + "/metrics")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Contains(t, string(resp.Body()), "giftbroker_")
}
