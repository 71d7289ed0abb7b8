package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/giftbroker/internal/types"
)

type OutcomeKind string

const (
	OutcomeApplied       OutcomeKind = "applied"
	OutcomeNotFound      OutcomeKind = "not_found"
	OutcomePersistFailed OutcomeKind = "persist_failed"
	OutcomeSkipped       OutcomeKind = "skipped"
)

// Outcome describes what a reconciliation did to the stored order. Err is set for NotFound
// and PersistFailed and is meant for logs and monitoring, not for the webhook sender.
type Outcome struct {
	Kind          OutcomeKind
	OrderNo       string
	AppliedStatus types.Status
	Err           error
}

type Store interface {
	GetOrder(ctx context.Context, orderNo string) (*types.Order, error)
	ApplyOrderUpdate(ctx context.Context, update types.OrderUpdate) (*types.Order, error)
}

type Recorder interface {
	ReconcileOutcome(outcome string)
}

// Guard decides whether incoming claims may overwrite the stored order. Without a guard every
// delivery is applied in arrival order, so an older status delivered late wins.
type Guard interface {
	Allow(current *types.Order, claims *types.OrderClaims) bool
}

// TerminalGuard refuses to move a completed order that already holds its cards to any other
// status.
type TerminalGuard struct{}

func (TerminalGuard) Allow(current *types.Order, claims *types.OrderClaims) bool {
	if !current.HasCards() {
		return true
	}
	return claims.OrderStatus == "" || claims.OrderStatus == types.CompletedStatus
}

type Reconciler struct {
	store    Store
	guard    Guard
	recorder Recorder
	now      func() time.Time
}

type Option func(*Reconciler)

func WithGuard(guard Guard) Option {
	return func(r *Reconciler) {
		r.guard = guard
	}
}

func WithRecorder(recorder Recorder) Option {
	return func(r *Reconciler) {
		r.recorder = recorder
	}
}

func WithClock(now func() time.Time) Option {
	return func(r *Reconciler) {
		r.now = now
	}
}

func NewReconciler(store Store, opts ...Option) *Reconciler {
	r := &Reconciler{store: store, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reconcile applies verified claims to the stored order. Storage problems are reported in the
// outcome, the returned error is reserved for claims that cannot be applied at all.
func (r *Reconciler) Reconcile(ctx context.Context, claims *types.OrderClaims) (Outcome, error) {
	if claims == nil || strings.TrimSpace(claims.OrderNo) == "" {
		return Outcome{}, types.NewError(types.KindValidation, "Datos de orden incompletos en el token", nil)
	}

	update, err := buildUpdate(claims, r.now())
	if err != nil {
		return Outcome{OrderNo: claims.OrderNo}, err
	}

	if r.guard != nil {
		current, err := r.store.GetOrder(ctx, claims.OrderNo)
		if err != nil {
			return r.failed(claims.OrderNo, err), nil
		}
		if !r.guard.Allow(current, claims) {
			logger.Warnf("Ignoring status %s for order %s, stored status %s is final",
				claims.OrderStatus, claims.OrderNo, current.Status)
			return r.done(Outcome{Kind: OutcomeSkipped, OrderNo: claims.OrderNo, AppliedStatus: current.Status}), nil
		}
	}

	order, err := r.store.ApplyOrderUpdate(ctx, update)
	if err != nil {
		return r.failed(claims.OrderNo, err), nil
	}

	logger.Infof("Updated order %s in database, new status: %s", order.OrderNo, order.Status)
	return r.done(Outcome{Kind: OutcomeApplied, OrderNo: order.OrderNo, AppliedStatus: order.Status}), nil
}

func (r *Reconciler) failed(orderNo string, err error) Outcome {
	if types.KindOf(err) == types.KindNotFound {
		logger.Warnf("Order %s not found, webhook acknowledged anyway", orderNo)
		return r.done(Outcome{Kind: OutcomeNotFound, OrderNo: orderNo, Err: err})
	}
	logger.WithField("orderNo", orderNo).Errorf("Could not save order update: %s", err.Error())
	return r.done(Outcome{Kind: OutcomePersistFailed, OrderNo: orderNo, Err: err})
}

func (r *Reconciler) done(outcome Outcome) Outcome {
	if r.recorder != nil {
		r.recorder.ReconcileOutcome(string(outcome.Kind))
	}
	return outcome
}

func buildUpdate(claims *types.OrderClaims, now time.Time) (types.OrderUpdate, error) {
	update := types.OrderUpdate{
		OrderNo:   claims.OrderNo,
		ErrorCode: string(claims.ErrorCode),
		UpdatedAt: now,
	}
	if update.ErrorCode == "" {
		update.ErrorCode = "0"
	}
	if claims.OrderStatus != "" {
		status := claims.OrderStatus
		update.Status = &status
	}
	if len(claims.ListOfCards) > 0 {
		update.Cards = claims.ListOfCards
	}
	if claims.ConfirmDate != "" {
		confirmDate, err := ParseConfirmDate(claims.ConfirmDate)
		if err != nil {
			return update, types.NewError(types.KindValidation, fmt.Sprintf("invalid confirmDate %q", claims.ConfirmDate), err)
		}
		update.ConfirmDate = &confirmDate
	}
	return update, nil
}

var confirmDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"20060102150405",
	"2006-01-02",
}

// ParseConfirmDate accepts the formats the issuer has been seen to use. Dates without a zone
// are taken as UTC.
func ParseConfirmDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range confirmDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unknown date format %q", value)
}
