package auth

import (
	"encoding/json"

	"github.com/wellywell/giftbroker/internal/types"
)

const errNoToken = "Token JWT no proporcionado o formato incorrecto"

// ExtractToken returns the first element of the "token" array of a webhook body.
func ExtractToken(body []byte) (string, error) {
	var envelope struct {
		Token json.RawMessage `json:"token"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", types.NewError(types.KindValidation, errNoToken, err)
	}
	if len(envelope.Token) == 0 || string(envelope.Token) == "null" {
		return "", types.NewError(types.KindValidation, errNoToken, nil)
	}

	var tokens []json.RawMessage
	if err := json.Unmarshal(envelope.Token, &tokens); err != nil || len(tokens) == 0 {
		return "", types.NewError(types.KindValidation, errNoToken, nil)
	}

	var token string
	if err := json.Unmarshal(tokens[0], &token); err != nil || token == "" {
		return "", types.NewError(types.KindValidation, errNoToken, nil)
	}
	return token, nil
}
