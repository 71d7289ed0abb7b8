package order

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wellywell/giftbroker/internal/issuer"
	"github.com/wellywell/giftbroker/internal/order/mocks"
	"github.com/wellywell/giftbroker/internal/types"
)

func TestNewClientOrderNo(t *testing.T) {
	now := time.UnixMilli(1714554000000)
	first := NewClientOrderNo(now)
	second := NewClientOrderNo(now)

	assert.Regexp(t, regexp.MustCompile(`^ORD-1714554000000-[0-9A-Z]{9}$`), first)
	assert.NotEqual(t, first, second)
}

func TestNewClientOrderNoUsesFullAlphabet(t *testing.T) {
	seen := map[rune]bool{}
	for i := 0; i < 500; i++ {
		orderNo := NewClientOrderNo(time.UnixMilli(1714554000000))
		for _, c := range orderNo[len(orderNo)-9:] {
			seen[c] = true
		}
	}

	var letters int
	for c := range seen {
		assert.True(t, (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z'), "unexpected %q", c)
		if c > 'F' {
			letters++
		}
	}
	assert.Greater(t, letters, 0)
}

func TestServiceCreate(t *testing.T) {
	client := mocks.NewIssuerClient(t)
	store := mocks.NewOrderStore(t)

	client.EXPECT().CreateOrder(mock.Anything, mock.AnythingOfType("string"), []issuer.OrderItem{{
		FaceAmount:  25.5,
		Quantity:    2,
		DeliverType: "0",
		ItemCode:    "AMZ-25",
	}}).Return(&issuer.Creation{OrderNo: "OG777"}, nil).Once()
	client.EXPECT().ConfirmOrder(mock.Anything, "OG777").Return(json.RawMessage(`{}`), nil).Once()
	store.EXPECT().InsertOrder(mock.Anything, mock.MatchedBy(func(o *types.Order) bool {
		return o.OrderNo == "OG777" && o.Status == types.InProgressStatus && o.TotalAmount.Equal(decimal.RequireFromString("51"))
	})).Return(nil).Once()

	s := NewService(client, store, NewReconciler(newMemStore()))
	got, err := s.Create(context.Background(), types.OrderRequest{
		ProductCode: "AMZ-25",
		ProductName: "Amazon 25",
		Amount:      decimal.RequireFromString("25.5"),
		Quantity:    2,
	})
	require.NoError(t, err)
	assert.Equal(t, "OG777", got.OrderNo)
	assert.Regexp(t, `^ORD-\d+-[0-9A-Z]{9}$`, got.ClientOrderNo)
	assert.Equal(t, "0", got.ErrorCode)
	assert.Empty(t, got.Cards)
}

func TestServiceCreateInvalid(t *testing.T) {
	client := mocks.NewIssuerClient(t)
	store := mocks.NewOrderStore(t)

	s := NewService(client, store, NewReconciler(newMemStore()))
	_, err := s.Create(context.Background(), types.OrderRequest{ProductCode: "AMZ-25"})
	assert.Equal(t, types.KindValidation, types.KindOf(err))
}

func TestServiceCreateIssuerFails(t *testing.T) {
	upstream := types.NewError(types.KindUpstream, "[73] Saldo insuficiente", errors.New("issuer"))

	testCases := []struct {
		name    string
		prepare func(client *mocks.IssuerClient)
	}{
		{"create fails", func(client *mocks.IssuerClient) {
			client.EXPECT().CreateOrder(mock.Anything, mock.Anything, mock.Anything).Return(nil, upstream).Once()
		}},
		{"confirm fails", func(client *mocks.IssuerClient) {
			client.EXPECT().CreateOrder(mock.Anything, mock.Anything, mock.Anything).Return(&issuer.Creation{OrderNo: "OG1"}, nil).Once()
			client.EXPECT().ConfirmOrder(mock.Anything, "OG1").Return(nil, upstream).Once()
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := mocks.NewIssuerClient(t)
			tc.prepare(client)

			s := NewService(client, mocks.NewOrderStore(t), NewReconciler(newMemStore()))
			_, err := s.Create(context.Background(), types.OrderRequest{
				ProductCode: "AMZ-25",
				Amount:      decimal.RequireFromString("25"),
				Quantity:    1,
			})
			assert.ErrorIs(t, err, upstream)
			assert.Equal(t, types.KindUpstream, types.KindOf(err))
		})
	}
}

func TestServiceRefreshStatus(t *testing.T) {
	client := mocks.NewIssuerClient(t)
	store := newMemStore(storedOrder("OG1"), storedOrder("OG2"))

	client.EXPECT().GetOrderStatus(mock.Anything, "OG1").Return(&issuer.OrderStatus{
		OrderNo:     "OG1",
		OrderStatus: types.CompletedStatus,
		ListOfCards: []types.Card{{"cardNumber": "1"}},
	}, nil).Once()
	client.EXPECT().GetOrderStatus(mock.Anything, "OG2").Return(&issuer.OrderStatus{
		OrderNo:     "OG2",
		OrderStatus: types.InProgressStatus,
	}, nil).Once()

	s := NewService(client, mocks.NewOrderStore(t), NewReconciler(store))

	status, err := s.RefreshStatus(context.Background(), "OG1")
	require.NoError(t, err)
	assert.Equal(t, types.CompletedStatus, status.OrderStatus)
	assert.Equal(t, types.CompletedStatus, store.orders["OG1"].Status)
	assert.Len(t, store.orders["OG1"].Cards, 1)

	status, err = s.RefreshStatus(context.Background(), "OG2")
	require.NoError(t, err)
	assert.Equal(t, types.InProgressStatus, status.OrderStatus)
	assert.True(t, store.orders["OG2"].UpdatedAt.IsZero())
}
