package validate

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/wellywell/giftbroker/internal/types"
)

const maxQuantity = 1000

var (
	ErrNoProduct       = errors.New("productCode cannot be empty")
	ErrInvalidAmount   = errors.New("amount must be positive with at most two decimals")
	ErrInvalidQuantity = errors.New("quantity must be between 1 and 1000")
)

// ValidateOrderRequest checks a purchase request before anything is sent to the issuer.
func ValidateOrderRequest(req types.OrderRequest) error {
	var err error

	if strings.TrimSpace(req.ProductCode) == "" {
		err = errors.Join(err, ErrNoProduct)
	}
	if !req.Amount.IsPositive() || !req.Amount.Equal(req.Amount.Truncate(2)) {
		err = errors.Join(err, ErrInvalidAmount)
	}
	if req.Quantity < 1 || req.Quantity > maxQuantity {
		err = errors.Join(err, ErrInvalidQuantity)
	}

	if err != nil {
		return types.NewError(types.KindValidation, strings.ReplaceAll(err.Error(), "\n", "; "), err)
	}
	return nil
}

// Total is the amount charged for the whole request.
func Total(req types.OrderRequest) decimal.Decimal {
	return req.Amount.Mul(decimal.NewFromInt(int64(req.Quantity)))
}
