package types

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	CompletedStatus  Status = "042"
	InProgressStatus Status = "043"
)

// Card is an issued gift card exactly as the issuer reported it.
type Card map[string]any

type Order struct {
	ID            int64           `db:"id" json:"id"`
	OrderNo       string          `db:"order_no" json:"orderNo"`
	ClientOrderNo string          `db:"client_order_no" json:"clientOrderNo"`
	ProductCode   string          `db:"product_code" json:"productCode"`
	ProductName   string          `db:"product_name" json:"productName"`
	FaceAmount    decimal.Decimal `db:"face_amount" json:"faceAmount"`
	Quantity      int             `db:"quantity" json:"quantity"`
	TotalAmount   decimal.Decimal `db:"total_amount" json:"totalAmount"`
	Status        Status          `db:"status" json:"status"`
	ConfirmDate   *time.Time      `db:"confirm_date" json:"confirmDate,omitempty"`
	ErrorCode     string          `db:"error_code" json:"errorCode"`
	Cards         []Card          `db:"cards_data" json:"cardsData"`
	CreatedAt     time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updatedAt"`
}

// HasCards reports whether the order is completed and holds its issued cards.
func (o *Order) HasCards() bool {
	return o.Status == CompletedStatus && len(o.Cards) > 0
}

type OrderRequest struct {
	ProductCode string          `json:"productCode"`
	ProductName string          `json:"productName"`
	Amount      decimal.Decimal `json:"amount"`
	Quantity    int             `json:"quantity"`
}

// OrderUpdate is the set of columns a reconciliation writes. Nil fields are left untouched.
type OrderUpdate struct {
	OrderNo     string
	Status      *Status
	ConfirmDate *time.Time
	ErrorCode   string
	Cards       []Card
	UpdatedAt   time.Time
}

type DashboardStats struct {
	TotalOrders int `json:"totalOrders"`
	TodayOrders int `json:"todayOrders"`
	TotalCards  int `json:"totalCards"`
	TodayCards  int `json:"todayCards"`
}

type OrderRecord struct {
	ID      int64  `db:"id"`
	OrderNo string `db:"order_no"`
	Status  Status `db:"status"`
}
