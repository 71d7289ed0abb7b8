package db

import (
	"fmt"

	"github.com/wellywell/giftbroker/internal/types"
)

type OrderNotFoundError struct {
	OrderNo string
}

func (e *OrderNotFoundError) Error() string {
	return fmt.Sprintf("Order %s not found", e.OrderNo)
}

type OrderExistsError struct {
	OrderNo string
}

func (e *OrderExistsError) Error() string {
	return fmt.Sprintf("Order %s already exists", e.OrderNo)
}

func notFound(orderNo string) error {
	e := &OrderNotFoundError{OrderNo: orderNo}
	return types.NewError(types.KindNotFound, e.Error(), e)
}

func persistence(op string, err error) error {
	return types.NewError(types.KindPersistence, op, err)
}
