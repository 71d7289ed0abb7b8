//go:build integration_tests
// +build integration_tests

/* Нужен запущенный docker */

package db

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wellywell/giftbroker/internal/testutils"
	"github.com/wellywell/giftbroker/internal/types"
)

var DBDSN string

func TestMain(m *testing.M) {
	code, err := runMain(m)

	if err != nil {
		log.Fatal(err)
	}
	os.Exit(code)
}

func runMain(m *testing.M) (int, error) {

	databaseDSN, cleanUp, err := testutils.RunTestDatabase()
	defer cleanUp()

	if err != nil {
		return 1, err
	}
	DBDSN = databaseDSN

	exitCode := m.Run()

	return exitCode, nil

}

func newOrder(orderNo string) *types.Order {
	return &types.Order{
		OrderNo:       orderNo,
		ClientOrderNo: "ORD-" + orderNo,
		ProductCode:   "AMZ-50",
		ProductName:   "Amazon 50",
		FaceAmount:    decimal.NewFromInt(50),
		Quantity:      2,
		TotalAmount:   decimal.NewFromInt(100),
		Status:        types.InProgressStatus,
	}
}

func TestOrderLifecycle(t *testing.T) {

	database, err := NewDatabase(DBDSN)
	require.NoError(t, err)
	defer database.Close()
	require.NoError(t, testutils.TruncateOrders(DBDSN))

	ctx := context.Background()

	t.Run("Test empty", func(t *testing.T) {
		records, err := database.GetOrdersWithStatus(ctx, types.InProgressStatus, 0, 100)
		assert.NoError(t, err)
		assert.Equal(t, len(records), 0)
	})

	t.Run("Test insert and duplicate", func(t *testing.T) {
		require.NoError(t, database.InsertOrder(ctx, newOrder("OG123")))
		err := database.InsertOrder(ctx, newOrder("OG123"))
		assert.Equal(t, types.KindValidation, types.KindOf(err))
	})

	t.Run("Test reconcile keeps newest confirm date", func(t *testing.T) {
		completed := types.CompletedStatus
		later := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
		earlier := later.Add(-24 * time.Hour)

		_, err := database.ApplyOrderUpdate(ctx, types.OrderUpdate{
			OrderNo: "OG123", Status: &completed, ConfirmDate: &later,
			Cards: []types.Card{{"cardNo": "6001"}}, UpdatedAt: time.Now(),
		})
		require.NoError(t, err)

		order, err := database.ApplyOrderUpdate(ctx, types.OrderUpdate{
			OrderNo: "OG123", ConfirmDate: &earlier, UpdatedAt: time.Now(),
		})
		require.NoError(t, err)
		assert.True(t, later.Equal(*order.ConfirmDate))
		assert.Equal(t, types.CompletedStatus, order.Status)
		assert.Equal(t, []types.Card{{"cardNo": "6001"}}, order.Cards)
		assert.True(t, decimal.NewFromInt(100).Equal(order.TotalAmount))
	})

	t.Run("Test update missing order", func(t *testing.T) {
		_, err := database.ApplyOrderUpdate(ctx, types.OrderUpdate{OrderNo: "OG404", UpdatedAt: time.Now()})
		assert.Equal(t, types.KindNotFound, types.KindOf(err))
	})

	t.Run("Test dashboard", func(t *testing.T) {
		stats, err := database.GetDashboardStats(ctx, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		assert.Equal(t, &types.DashboardStats{TotalOrders: 1, TodayOrders: 1, TotalCards: 2, TodayCards: 2}, stats)
	})
}
