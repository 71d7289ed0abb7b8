package auth

import (
	"fmt"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

// Key is the webhook verification material, read once at startup and never reloaded.
type Key struct {
	alg      string
	material interface{}
}

func (k *Key) Algorithm() string {
	return k.alg
}

// LoadKey reads the key file for the given algorithm. HS256 uses the raw file bytes as the
// shared secret, RS256 expects a PEM encoded RSA public key.
func LoadKey(path string, alg string) (*Key, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading webhook key %s: %w", path, err)
	}
	return ParseKey(data, alg)
}

func ParseKey(data []byte, alg string) (*Key, error) {
	alg = strings.ToUpper(strings.TrimSpace(alg))

	switch alg {
	case jwt.SigningMethodHS256.Alg():
		if len(data) == 0 {
			return nil, fmt.Errorf("empty HMAC secret")
		}
		return &Key{alg: alg, material: data}, nil
	case jwt.SigningMethodRS256.Alg():
		pub, err := jwt.ParseRSAPublicKeyFromPEM(data)
		if err != nil {
			return nil, fmt.Errorf("parsing RSA public key: %w", err)
		}
		return &Key{alg: alg, material: pub}, nil
	default:
		return nil, fmt.Errorf("unsupported webhook signing algorithm %q", alg)
	}
}
