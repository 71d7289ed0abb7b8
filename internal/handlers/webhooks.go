package handlers

import (
	"io"
	"net/http"

	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/giftbroker/internal/auth"
	"github.com/wellywell/giftbroker/internal/order"
)

const (
	endpointOrderStatus   = "order-status"
	endpointProductUpdate = "product-update"
)

// HandleOrderStatusWebhook verifies an issuer order-status token and reconciles it into the
// store. Once the token is accepted the issuer always gets a 200, storage problems included.
func (h *HandlerSet) HandleOrderStatusWebhook(w http.ResponseWriter, req *http.Request) {
	logger.Info("Webhook: order status")

	status := h.orderStatusWebhook(w, req)
	if h.recorder != nil {
		h.recorder.WebhookDelivery(endpointOrderStatus, status)
	}
}

func (h *HandlerSet) orderStatusWebhook(w http.ResponseWriter, req *http.Request) int {
	body, err := io.ReadAll(io.LimitReader(req.Body, maxBodyBytes))
	if err != nil {
		writeError(w, err)
		return statusFor(err)
	}

	token, err := auth.ExtractToken(body)
	if err != nil {
		writeError(w, err)
		return statusFor(err)
	}

	claims, err := h.verifier.VerifyOrderClaims(token)
	if err != nil {
		writeError(w, err)
		return statusFor(err)
	}
	logger.Infof("Webhook for order %s, status %s, %d cards", claims.OrderNo, claims.OrderStatus, len(claims.ListOfCards))

	outcome, err := h.reconciler.Reconcile(req.Context(), claims)
	if err != nil {
		writeError(w, err)
		return statusFor(err)
	}

	response := map[string]any{
		"success": true,
		"orderNo": outcome.OrderNo,
	}
	switch outcome.Kind {
	case order.OutcomeApplied:
		response["message"] = "Webhook procesado correctamente"
		response["status"] = outcome.AppliedStatus
	case order.OutcomeSkipped:
		response["message"] = "Webhook recibido, estado anterior ignorado"
		response["status"] = outcome.AppliedStatus
	case order.OutcomeNotFound:
		response["message"] = "Webhook recibido pero la orden no existe en DB"
	default:
		response["message"] = "Webhook recibido pero error al guardar en DB"
		if outcome.Err != nil {
			response["error"] = outcome.Err.Error()
		}
	}

	writeJSON(w, http.StatusOK, response)
	return http.StatusOK
}

// HandleProductUpdateWebhook verifies and logs a product catalogue notification.
func (h *HandlerSet) HandleProductUpdateWebhook(w http.ResponseWriter, req *http.Request) {
	logger.Info("Webhook: product update")

	status := h.productUpdateWebhook(w, req)
	if h.recorder != nil {
		h.recorder.WebhookDelivery(endpointProductUpdate, status)
	}
}

func (h *HandlerSet) productUpdateWebhook(w http.ResponseWriter, req *http.Request) int {
	body, err := io.ReadAll(io.LimitReader(req.Body, maxBodyBytes))
	if err != nil {
		writeError(w, err)
		return statusFor(err)
	}

	token, err := auth.ExtractToken(body)
	if err != nil {
		writeError(w, err)
		return statusFor(err)
	}

	payload, err := h.verifier.Verify(token)
	if err != nil {
		writeError(w, err)
		return statusFor(err)
	}
	logger.Infof("Product update received: %s", string(payload))

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Webhook de producto procesado correctamente",
	})
	return http.StatusOK
}
