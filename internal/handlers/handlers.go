package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/giftbroker/internal/issuer"
	"github.com/wellywell/giftbroker/internal/order"
	"github.com/wellywell/giftbroker/internal/types"
)

const maxBodyBytes = 1 << 20

type Verifier interface {
	Verify(tokenString string) (json.RawMessage, error)
	VerifyOrderClaims(tokenString string) (*types.OrderClaims, error)
}

type Reconciler interface {
	Reconcile(ctx context.Context, claims *types.OrderClaims) (order.Outcome, error)
}

type OrderService interface {
	Create(ctx context.Context, req types.OrderRequest) (*types.Order, error)
	RefreshStatus(ctx context.Context, orderNo string) (*issuer.OrderStatus, error)
}

type Catalog interface {
	GetBuInfo(ctx context.Context) (*issuer.BuInfo, error)
	GetProducts(ctx context.Context) ([]issuer.Product, error)
}

type Database interface {
	Ping(ctx context.Context) error
	GetDashboardStats(ctx context.Context, dayStart time.Time) (*types.DashboardStats, error)
}

type WebhookRecorder interface {
	WebhookDelivery(endpoint string, status int)
}

type HandlerSet struct {
	verifier   Verifier
	reconciler Reconciler
	orders     OrderService
	catalog    Catalog
	database   Database
	recorder   WebhookRecorder
	now        func() time.Time
}

func NewHandlerSet(verifier Verifier, reconciler Reconciler, orders OrderService, catalog Catalog,
	database Database, recorder WebhookRecorder) *HandlerSet {
	return &HandlerSet{
		verifier:   verifier,
		reconciler: reconciler,
		orders:     orders,
		catalog:    catalog,
		database:   database,
		recorder:   recorder,
		now:        time.Now,
	}
}

func (h *HandlerSet) HandleHealth(w http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
	defer cancel()

	body := map[string]any{
		"status":    "OK",
		"timestamp": h.now().UTC().Format(time.RFC3339Nano),
	}
	if err := h.database.Ping(ctx); err != nil {
		logger.Errorf("Health check: database unreachable: %s", err.Error())
		body["status"] = "DEGRADED"
		writeJSON(w, http.StatusServiceUnavailable, body)
		return
	}
	writeJSON(w, http.StatusOK, body)
}

func (h *HandlerSet) HandleGetProducts(w http.ResponseWriter, req *http.Request) {
	products, err := h.catalog.GetProducts(req.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	active := make([]issuer.Product, 0, len(products))
	for _, p := range products {
		if p.Active() {
			active = append(active, p)
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"products": active,
	})
}

func (h *HandlerSet) HandleGetDashboard(w http.ResponseWriter, req *http.Request) {
	info, err := h.catalog.GetBuInfo(req.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	now := h.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	stats, err := h.database.GetDashboardStats(req.Context(), dayStart)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"balance": info.AvailableBalance.InexactFloat64(),
		"stats":   stats,
	})
}

func (h *HandlerSet) HandleCreateOrder(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(io.LimitReader(req.Body, maxBodyBytes))
	if err != nil {
		writeError(w, err)
		return
	}

	var orderReq types.OrderRequest
	if err := json.Unmarshal(body, &orderReq); err != nil {
		writeError(w, types.NewError(types.KindValidation, "Could not parse body", err))
		return
	}

	created, err := h.orders.Create(req.Context(), orderReq)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"orderNo": created.OrderNo,
		"message": "Orden creada. Generando tarjetas...",
	})
}

func (h *HandlerSet) HandleGetOrderStatus(w http.ResponseWriter, req *http.Request) {
	orderNo := chi.URLParam(req, "orderNo")

	status, err := h.orders.RefreshStatus(req.Context(), orderNo)
	if err != nil {
		writeError(w, err)
		return
	}

	cards := status.ListOfCards
	if cards == nil {
		cards = []types.Card{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"orderStatus": status.OrderStatus,
		"cards":       cards,
		"cardsCount":  len(cards),
	})
}

func statusFor(err error) int {
	switch types.KindOf(err) {
	case types.KindValidation:
		return http.StatusBadRequest
	case types.KindAuthentication:
		return http.StatusUnauthorized
	case types.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error(err)
	}

	body := map[string]any{
		"success": false,
		"error":   types.DetailOf(err),
	}
	if status == http.StatusUnauthorized {
		var tagged *types.Error
		if errors.As(err, &tagged) && tagged.Err != nil {
			body["details"] = tagged.Err.Error()
		}
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	response, err := json.Marshal(body)
	if err != nil {
		http.Error(w, "Could not serialize result", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(response)
	if err != nil {
		logger.Errorf("Could not write response: %s", err.Error())
	}
}
