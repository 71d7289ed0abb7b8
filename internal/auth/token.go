package auth

import (
	"encoding/json"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/giftbroker/internal/types"
)

const (
	errInvalidToken     = "Token JWT inválido"
	errIncompleteClaims = "Datos de orden incompletos en el token"
)

// Claims is the token body sent by the issuer. The actual payload lives under "object".
type Claims struct {
	jwt.RegisteredClaims
	Object json.RawMessage `json:"object"`
}

type Verifier struct {
	key    *Key
	parser *jwt.Parser
}

func NewVerifier(key *Key) *Verifier {
	return &Verifier{
		key:    key,
		parser: jwt.NewParser(jwt.WithValidMethods([]string{key.alg})),
	}
}

// Verify checks the signature against the configured key and returns the raw "object" payload.
func (v *Verifier) Verify(tokenString string) (json.RawMessage, error) {
	if tokenString == "" {
		return nil, types.NewError(types.KindValidation, errNoToken, nil)
	}

	claims := &Claims{}
	token, err := v.parser.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if t.Method.Alg() != v.key.alg {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return v.key.material, nil
		})
	if err != nil {
		logger.Warnf("Webhook token rejected: %s", err.Error())
		return nil, types.NewError(types.KindAuthentication, errInvalidToken, err)
	}

	if !token.Valid {
		return nil, types.NewError(types.KindAuthentication, errInvalidToken, fmt.Errorf("token invalid"))
	}

	if len(claims.Object) == 0 || string(claims.Object) == "null" {
		return nil, types.NewError(types.KindValidation, errIncompleteClaims, nil)
	}

	return claims.Object, nil
}

// VerifyOrderClaims verifies the token and decodes an order-status payload.
func (v *Verifier) VerifyOrderClaims(tokenString string) (*types.OrderClaims, error) {
	payload, err := v.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	var claims types.OrderClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, types.NewError(types.KindValidation, errIncompleteClaims, err)
	}
	if claims.OrderNo == "" {
		return nil, types.NewError(types.KindValidation, errIncompleteClaims, nil)
	}

	return &claims, nil
}
