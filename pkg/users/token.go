package users

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"os"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Session tokens are minted by the account service; this service only
// validates them. The signing key is shared through the environment.
var SessionSigningKey []byte

type TokenClaims struct {
	SessionId int64 `msgpack:"s"`
	UserId    int64 `msgpack:"u"`
}

func InitTokenSigningKey() error {
	encoded := os.Getenv("SESSION_SIGNING_KEY")
	if encoded == "" {
		return errors.New("SESSION_SIGNING_KEY is not set")
	}
	var err error
	SessionSigningKey, err = base64.URLEncoding.DecodeString(encoded)
	return err
}

// ParseToken verifies the signature on a token and returns its claims. It
// does not check that the session still exists.
func ParseToken(token string) (TokenClaims, error) {
	var claims TokenClaims

	// Split token into claims and signature
	parts := strings.Split(token, ".")
	if len(parts) != 2 {
		return claims, ErrInvalidTokenFormat
	}

	marshaledClaims, err := base64.URLEncoding.DecodeString(parts[0])
	if err != nil {
		return claims, ErrInvalidTokenFormat
	}
	signature, err := base64.URLEncoding.DecodeString(parts[1])
	if err != nil {
		return claims, ErrInvalidTokenFormat
	}

	// Check signature
	if !hmac.Equal(signToken(marshaledClaims), signature) {
		return claims, ErrInvalidTokenSignature
	}

	err = msgpack.Unmarshal(marshaledClaims, &claims)
	return claims, err
}

// FormatToken signs claims into a token string. Used by tests and ops
// tooling; production tokens come from the account service.
func FormatToken(claims TokenClaims) (string, error) {
	marshaledClaims, err := msgpack.Marshal(claims)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(marshaledClaims) +
		"." + base64.URLEncoding.EncodeToString(signToken(marshaledClaims)), nil
}

func signToken(marshaledClaims []byte) []byte {
	mac := hmac.New(sha256.New, SessionSigningKey)
	mac.Write(marshaledClaims)
	return mac.Sum(nil)
}
