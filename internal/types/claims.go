package types

import "encoding/json"

// Code is an issuer code that may arrive either as a JSON string or a JSON number.
type Code string

func (c *Code) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = Code(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = Code(n.String())
	return nil
}

// OrderClaims is the payload the issuer nests under "object" in an order-status token.
type OrderClaims struct {
	OrderNo     string `json:"orderNo"`
	OrderStatus Status `json:"orderStatus"`
	ConfirmDate string `json:"confirmDate,omitempty"`
	ErrorCode   Code   `json:"errorCode,omitempty"`
	ListOfCards []Card `json:"listOfCards,omitempty"`
}
