package order

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/giftbroker/internal/issuer"
	"github.com/wellywell/giftbroker/internal/types"
	"github.com/wellywell/giftbroker/internal/validate"
)

type IssuerClient interface {
	CreateOrder(ctx context.Context, clientOrderNo string, items []issuer.OrderItem) (*issuer.Creation, error)
	ConfirmOrder(ctx context.Context, orderNo string) (json.RawMessage, error)
	GetOrderStatus(ctx context.Context, orderNo string) (*issuer.OrderStatus, error)
}

type OrderStore interface {
	InsertOrder(ctx context.Context, order *types.Order) error
}

type Service struct {
	issuer     IssuerClient
	store      OrderStore
	reconciler *Reconciler
	now        func() time.Time
}

func NewService(client IssuerClient, store OrderStore, reconciler *Reconciler) *Service {
	return &Service{issuer: client, store: store, reconciler: reconciler, now: time.Now}
}

const clientOrderAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// UUID v4 bytes that carry no version (6) or variant (8) bits.
var clientOrderBytes = [...]int{0, 1, 2, 3, 4, 5, 7, 9, 10}

// NewClientOrderNo builds the local reference sent to the issuer, e.g. ORD-1714554000000-K3F9ZQ2BD.
func NewClientOrderNo(now time.Time) string {
	random := uuid.New()
	suffix := make([]byte, len(clientOrderBytes))
	for i, b := range clientOrderBytes {
		suffix[i] = clientOrderAlphabet[int(random[b])%len(clientOrderAlphabet)]
	}
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), suffix)
}

// Create places the order with the issuer, confirms it and stores it as in progress.
func (s *Service) Create(ctx context.Context, req types.OrderRequest) (*types.Order, error) {
	if err := validate.ValidateOrderRequest(req); err != nil {
		return nil, err
	}

	clientOrderNo := NewClientOrderNo(s.now())
	logger.Infof("Creating order %s: %dx %s", clientOrderNo, req.Quantity, req.ProductName)

	items := []issuer.OrderItem{{
		FaceAmount:  req.Amount.InexactFloat64(),
		Quantity:    req.Quantity,
		DeliverType: "0",
		ItemCode:    req.ProductCode,
	}}

	creation, err := s.issuer.CreateOrder(ctx, clientOrderNo, items)
	if err != nil {
		return nil, fmt.Errorf("creating order %s: %w", clientOrderNo, err)
	}
	logger.Infof("Issuer created order %s for %s", creation.OrderNo, clientOrderNo)

	if _, err := s.issuer.ConfirmOrder(ctx, creation.OrderNo); err != nil {
		return nil, fmt.Errorf("confirming order %s: %w", creation.OrderNo, err)
	}
	logger.Infof("Issuer confirmed order %s", creation.OrderNo)

	order := &types.Order{
		OrderNo:       creation.OrderNo,
		ClientOrderNo: clientOrderNo,
		ProductCode:   req.ProductCode,
		ProductName:   req.ProductName,
		FaceAmount:    req.Amount,
		Quantity:      req.Quantity,
		TotalAmount:   validate.Total(req),
		Status:        types.InProgressStatus,
		ErrorCode:     "0",
		Cards:         []types.Card{},
	}
	if err := s.store.InsertOrder(ctx, order); err != nil {
		logger.WithField("orderNo", order.OrderNo).Errorf("Order confirmed by issuer but not saved: %s", err.Error())
		return nil, fmt.Errorf("saving order %s: %w", order.OrderNo, err)
	}

	return order, nil
}

// RefreshStatus asks the issuer for the order status and stores it once the cards are issued.
func (s *Service) RefreshStatus(ctx context.Context, orderNo string) (*issuer.OrderStatus, error) {
	status, err := s.issuer.GetOrderStatus(ctx, orderNo)
	if err != nil {
		return nil, err
	}

	if status.OrderStatus == types.CompletedStatus && len(status.ListOfCards) > 0 {
		outcome, err := s.reconciler.Reconcile(ctx, status.Claims(orderNo))
		if err != nil {
			logger.Warnf("Polled status for order %s not applied: %s", orderNo, err.Error())
		} else if outcome.Kind != OutcomeApplied {
			logger.Warnf("Polled status for order %s: %s", orderNo, outcome.Kind)
		}
	}

	return status, nil
}
