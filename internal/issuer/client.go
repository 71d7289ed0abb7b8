package issuer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/giftbroker/internal/types"
)

const (
	apiVersion     = "2.18"
	requestTimeout = 15 * time.Second
)

const (
	endpointBuInfo        = "/getBuInfo"
	endpointProducts      = "/getProducts"
	endpointOrderCreation = "/orderCreation"
	endpointOrderConfirm  = "/orderConfirm"
	endpointOrderStatus   = "/orderStatus"
)

type Credentials struct {
	Username   string
	Password   string
	MerchantID string
	TerminalID string
	CashierID  string
}

// Observer receives the outcome of every issuer call.
type Observer interface {
	ObserveIssuerCall(endpoint string, success bool, elapsed time.Duration)
}

type Client struct {
	http     *resty.Client
	creds    Credentials
	observer Observer
}

type Product map[string]any

// Active reports whether the issuer allows the product to be sold.
func (p Product) Active() bool {
	switch v := p["allowedActivate"].(type) {
	case float64:
		return v == 1
	case string:
		return v == "1"
	case bool:
		return v
	}
	return false
}

type BuInfo struct {
	AvailableBalance decimal.Decimal `json:"availableBalance"`
}

type OrderItem struct {
	FaceAmount       float64 `json:"faceAmount"`
	Quantity         int     `json:"quantity"`
	DeliverType      string  `json:"deliverType"`
	ItemCode         string  `json:"itemCode"`
	DeliverDate      string  `json:"deliverDate"`
	Message          string  `json:"message"`
	ReceiverAddress  string  `json:"receiverAddress"`
	ReceiverEmail    string  `json:"receiverEmail"`
	ReceiverMobileNo string  `json:"receiverMobileNo"`
	ReceiverName     string  `json:"receiverName"`
	SenderEmail      string  `json:"senderEmail"`
	SenderName       string  `json:"senderName"`
}

type Creation struct {
	OrderNo       string `json:"orderNo"`
	ClientOrderNo string `json:"clientOrderNo"`
}

type OrderStatus struct {
	OrderNo     string       `json:"orderNo"`
	OrderStatus types.Status `json:"orderStatus"`
	ConfirmDate string       `json:"confirmDate"`
	ErrorCode   types.Code   `json:"errorCode"`
	ListOfCards []types.Card `json:"listOfCards"`
}

// Claims turns a polled status into the same shape a webhook delivers.
func (s *OrderStatus) Claims(orderNo string) *types.OrderClaims {
	if s.OrderNo != "" {
		orderNo = s.OrderNo
	}
	return &types.OrderClaims{
		OrderNo:     orderNo,
		OrderStatus: s.OrderStatus,
		ConfirmDate: s.ConfirmDate,
		ErrorCode:   s.ErrorCode,
		ListOfCards: s.ListOfCards,
	}
}

type envelope struct {
	IsSuccessful *bool      `json:"isSuccessful"`
	ErrorCode    types.Code `json:"errorCode"`
	ErrorMessage string     `json:"errorMessage"`
}

type payment struct {
	PaymentType string `json:"paymentType"`
	PaymentID   string `json:"paymentId"`
}

func NewClient(baseURL string, creds Credentials, observer Observer) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetBasicAuth(creds.Username, creds.Password).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-WSRG-API-Version", apiVersion).
		SetTimeout(requestTimeout).
		SetLogger(logger.StandardLogger())

	return &Client{http: c, creds: creds, observer: observer}
}

func (c *Client) GetBuInfo(ctx context.Context) (*BuInfo, error) {
	body := map[string]any{
		"merchantId": c.creds.MerchantID,
		"terminalId": c.creds.TerminalID,
	}
	var info BuInfo
	if err := c.call(ctx, endpointBuInfo, body, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) GetProducts(ctx context.Context) ([]Product, error) {
	body := map[string]any{
		"merchantId": c.creds.MerchantID,
		"terminalId": c.creds.TerminalID,
	}
	var result struct {
		ProductList []Product `json:"productList"`
	}
	if err := c.call(ctx, endpointProducts, body, &result); err != nil {
		return nil, err
	}
	if result.ProductList == nil {
		return []Product{}, nil
	}
	return result.ProductList, nil
}

func (c *Client) CreateOrder(ctx context.Context, clientOrderNo string, items []OrderItem) (*Creation, error) {
	body := map[string]any{
		"merchantId":    c.creds.MerchantID,
		"terminalId":    c.creds.TerminalID,
		"cashierId":     c.creds.CashierID,
		"clientOrderNo": clientOrderNo,
		"salesType":     "MA",
		"orderItems":    items,
	}
	var creation Creation
	if err := c.call(ctx, endpointOrderCreation, body, &creation); err != nil {
		return nil, err
	}
	if creation.OrderNo == "" {
		return nil, types.NewError(types.KindUpstream, "issuer returned no order number", nil)
	}
	return &creation, nil
}

// ConfirmOrder pays the order, which makes the issuer start generating cards.
func (c *Client) ConfirmOrder(ctx context.Context, orderNo string) (json.RawMessage, error) {
	body := map[string]any{
		"merchantId":  c.creds.MerchantID,
		"terminalId":  c.creds.TerminalID,
		"cashierId":   c.creds.CashierID,
		"orderNo":     orderNo,
		"paymentList": []payment{{PaymentType: "01", PaymentID: "X-" + orderNo}},
		"shippingFee": "0",
		"cardFee":     "0",
		"returnFee":   "0",
	}
	var raw json.RawMessage
	if err := c.call(ctx, endpointOrderConfirm, body, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) GetOrderStatus(ctx context.Context, orderNo string) (*OrderStatus, error) {
	body := map[string]any{
		"merchantId": c.creds.MerchantID,
		"terminalId": c.creds.TerminalID,
		"cashierId":  c.creds.CashierID,
		"orderNo":    orderNo,
	}
	var status OrderStatus
	if err := c.call(ctx, endpointOrderStatus, body, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) call(ctx context.Context, endpoint string, body any, out any) (err error) {
	logger.Debugf("Calling issuer %s", endpoint)
	start := time.Now()
	defer func() {
		if c.observer != nil {
			c.observer.ObserveIssuerCall(endpoint, err == nil, time.Since(start))
		}
		if err != nil {
			logger.Errorf("Issuer %s failed: %s", endpoint, err.Error())
		}
	}()

	response, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Post(endpoint)
	if err != nil {
		return types.NewError(types.KindUpstream, fmt.Sprintf("calling %s", endpoint), err)
	}

	if !response.IsSuccess() {
		upstream := &UpstreamError{
			HTTPStatus: response.StatusCode(),
			Message:    fmt.Sprintf("HTTP %d: %s", response.StatusCode(), http.StatusText(response.StatusCode())),
		}
		return types.NewError(types.KindUpstream, upstream.Error(), upstream)
	}

	var env envelope
	if err := json.Unmarshal(response.Body(), &env); err != nil {
		return types.NewError(types.KindUpstream, "malformed issuer response", err)
	}
	if env.IsSuccessful != nil && !*env.IsSuccessful {
		upstream := newUpstreamError(response.StatusCode(), string(env.ErrorCode), env.ErrorMessage)
		return types.NewError(types.KindUpstream, upstream.Error(), upstream)
	}

	if err := json.Unmarshal(response.Body(), out); err != nil {
		return types.NewError(types.KindUpstream, "malformed issuer response", err)
	}
	return nil
}
