package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wellywell/giftbroker/internal/types"
)

var testSecret = []byte("-----BEGIN PUBLIC KEY-----\nissuer-shared-secret\n-----END PUBLIC KEY-----\n")

func orderObject() map[string]any {
	return map[string]any{
		"orderNo":     "OG123",
		"orderStatus": "042",
		"confirmDate": "2024-05-01 10:00:00",
		"listOfCards": []map[string]any{{"cardNo": "6001", "pin": "1234"}},
	}
}

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func rsaKeyPair(t *testing.T) (*rsa.PrivateKey, []byte) {
	t.Helper()
	private, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&private.PublicKey)
	require.NoError(t, err)
	return private, pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
}

func hmacVerifier(t *testing.T) *Verifier {
	t.Helper()
	key, err := ParseKey(testSecret, "HS256")
	require.NoError(t, err)
	return NewVerifier(key)
}

func TestVerifyOrderClaimsHMAC(t *testing.T) {
	verifier := hmacVerifier(t)
	otherRSA, _ := rsaKeyPair(t)

	testCases := []struct {
		name     string
		token    string
		wantKind types.ErrorKind
	}{
		{
			name:  "valid",
			token: sign(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"object": orderObject()}),
		},
		{
			name:     "foreign secret",
			token:    sign(t, jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{"object": orderObject()}),
			wantKind: types.KindAuthentication,
		},
		{
			name:     "algorithm not allowed",
			token:    sign(t, jwt.SigningMethodHS384, testSecret, jwt.MapClaims{"object": orderObject()}),
			wantKind: types.KindAuthentication,
		},
		{
			name:     "rsa token against hmac key",
			token:    sign(t, jwt.SigningMethodRS256, otherRSA, jwt.MapClaims{"object": orderObject()}),
			wantKind: types.KindAuthentication,
		},
		{
			name:     "unsigned",
			token:    sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, jwt.MapClaims{"object": orderObject()}),
			wantKind: types.KindAuthentication,
		},
		{
			name:     "malformed",
			token:    "not.a.token",
			wantKind: types.KindAuthentication,
		},
		{
			name: "expired",
			token: sign(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{
				"object": orderObject(),
				"exp":    time.Now().Add(-time.Hour).Unix(),
			}),
			wantKind: types.KindAuthentication,
		},
		{
			name:     "no object",
			token:    sign(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"orderNo": "OG123"}),
			wantKind: types.KindValidation,
		},
		{
			name:     "no order number",
			token:    sign(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"object": map[string]any{"orderStatus": "042"}}),
			wantKind: types.KindValidation,
		},
		{
			name:     "empty",
			token:    "",
			wantKind: types.KindValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			claims, err := verifier.VerifyOrderClaims(tc.token)
			if tc.wantKind == types.KindInternal {
				require.NoError(t, err)
				assert.Equal(t, "OG123", claims.OrderNo)
				assert.Equal(t, types.CompletedStatus, claims.OrderStatus)
				assert.Equal(t, "2024-05-01 10:00:00", claims.ConfirmDate)
				require.Len(t, claims.ListOfCards, 1)
				assert.Equal(t, "6001", claims.ListOfCards[0]["cardNo"])
				return
			}
			assert.Error(t, err)
			assert.Nil(t, claims)
			assert.Equal(t, tc.wantKind, types.KindOf(err))
		})
	}
}

func TestVerifyOrderClaimsRSA(t *testing.T) {
	private, publicPEM := rsaKeyPair(t)
	other, _ := rsaKeyPair(t)

	key, err := ParseKey(publicPEM, "rs256")
	require.NoError(t, err)
	assert.Equal(t, "RS256", key.Algorithm())
	verifier := NewVerifier(key)

	claims, err := verifier.VerifyOrderClaims(sign(t, jwt.SigningMethodRS256, private, jwt.MapClaims{"object": orderObject()}))
	require.NoError(t, err)
	assert.Equal(t, "OG123", claims.OrderNo)

	_, err = verifier.VerifyOrderClaims(sign(t, jwt.SigningMethodRS256, other, jwt.MapClaims{"object": orderObject()}))
	assert.Equal(t, types.KindAuthentication, types.KindOf(err))

	// the public key must never be accepted as an HMAC secret
	_, err = verifier.VerifyOrderClaims(sign(t, jwt.SigningMethodHS256, publicPEM, jwt.MapClaims{"object": orderObject()}))
	assert.Equal(t, types.KindAuthentication, types.KindOf(err))
}

func TestVerifyProductPayload(t *testing.T) {
	verifier := hmacVerifier(t)

	payload, err := verifier.Verify(sign(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{
		"object": map[string]any{"itemCode": "AMZ-50", "allowedActivate": 0},
	}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"itemCode": "AMZ-50", "allowedActivate": 0}`, string(payload))
}

func TestLoadKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "issuer.pem")
	require.NoError(t, os.WriteFile(path, testSecret, 0o600))

	key, err := LoadKey(path, "HS256")
	require.NoError(t, err)
	assert.Equal(t, "HS256", key.Algorithm())

	_, err = LoadKey(filepath.Join(dir, "missing.pem"), "HS256")
	assert.Error(t, err)

	_, err = ParseKey(testSecret, "HS512")
	assert.Error(t, err)

	_, err = ParseKey(nil, "HS256")
	assert.Error(t, err)

	_, err = ParseKey([]byte("garbage"), "RS256")
	assert.Error(t, err)
}
