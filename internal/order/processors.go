package order

import (
	"context"
	"time"

	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/giftbroker/internal/issuer"
	"github.com/wellywell/giftbroker/internal/types"
)

const pollBatchSize = 100

type StatusClient interface {
	GetOrderStatus(ctx context.Context, orderNo string) (*issuer.OrderStatus, error)
}

type Database interface {
	GetOrdersWithStatus(ctx context.Context, status types.Status, startID int64, limit int) ([]types.OrderRecord, error)
}

// StartPoller reconciles in-progress orders against the issuer every interval until ctx is done.
func StartPoller(ctx context.Context, interval time.Duration, database Database, client StatusClient, reconciler *Reconciler) {
	tasks := GenerateStatusTasks(ctx, database, interval)
	updates := CheckIssuerOrders(ctx, tasks, client)
	go ApplyUpdates(ctx, updates, reconciler)
}

func GenerateStatusTasks(ctx context.Context, database Database, interval time.Duration) chan types.OrderRecord {

	tasks := make(chan types.OrderRecord)

	go func(ctx context.Context) {
		defer close(tasks)

		var startID int64

		for {
			records, err := database.GetOrdersWithStatus(ctx, types.InProgressStatus, startID, pollBatchSize)
			if err != nil {
				logger.Errorf("Database returned error, retrying next round: %s", err.Error())
				records = nil
			}
			if len(records) == 0 {
				logger.Debug("All in-progress orders were checked")
				startID = 0
				select {
				case <-ctx.Done():
					return
				case <-time.After(interval):
				}
				continue
			}
			for _, task := range records {
				if task.ID > startID {
					startID = task.ID
				}
				select {
				case <-ctx.Done():
					return
				case tasks <- task:
				}
			}
		}
	}(ctx)

	return tasks
}

func CheckIssuerOrders(ctx context.Context, tasks <-chan types.OrderRecord, client StatusClient) chan *types.OrderClaims {

	updates := make(chan *types.OrderClaims)

	go func(ctx context.Context) {
		defer close(updates)
		for {
			select {
			case <-ctx.Done():
				logger.Info("Context cancel, stopping status checker")
				return
			case task, ok := <-tasks:
				if !ok {
					return
				}
				result, err := client.GetOrderStatus(ctx, task.OrderNo)
				if err != nil {
					logger.Errorf("Checking order %s failed: %s", task.OrderNo, err.Error())
					continue
				}
				if result.OrderStatus == "" || result.OrderStatus == task.Status {
					continue
				}
				logger.Infof("Got order update %s: %s -> %s", task.OrderNo, task.Status, result.OrderStatus)
				select {
				case <-ctx.Done():
					return
				case updates <- result.Claims(task.OrderNo):
				}
			}
		}
	}(ctx)

	return updates
}

func ApplyUpdates(ctx context.Context, updates <-chan *types.OrderClaims, reconciler *Reconciler) {
	for {
		select {
		case <-ctx.Done():
			return
		case claims, ok := <-updates:
			if !ok {
				return
			}
			outcome, err := reconciler.Reconcile(ctx, claims)
			if err != nil {
				logger.Errorf("Polled update for order %s rejected: %s", claims.OrderNo, err.Error())
				continue
			}
			if outcome.Kind != OutcomeApplied {
				logger.Warnf("Polled update for order %s: %s", claims.OrderNo, outcome.Kind)
			}
		}
	}
}
