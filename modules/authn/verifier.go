package authn

import (
	"crypto/rsa"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken classifies every credential failure: wrong scheme,
// malformed token, bad signature, expiry. The underlying cause is wrapped
// for diagnostics but must never reach a client.
var ErrInvalidToken = errors.New("invalid token")

// Verifier validates asymmetrically-signed bearer credentials and extracts
// the subject claim, the stable external identity of the caller.
type Verifier struct {
	pub    *rsa.PublicKey
	parser *jwt.Parser
}

func NewVerifier(pub *rsa.PublicKey) *Verifier {
	return &Verifier{
		pub:    pub,
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()})),
	}
}

// VerifierFromConfig builds a Verifier from the base64-PEM key in cfg.
func VerifierFromConfig(cfg AuthConfig) (*Verifier, error) {
	pub, err := DecodePublicKey(cfg.PublicKey)
	if err != nil {
		return nil, err
	}
	return NewVerifier(pub), nil
}

// ParseSubject verifies tokenStr and returns its subject claim.
func (v *Verifier) ParseSubject(tokenStr string) (string, error) {
	claims := new(jwt.RegisteredClaims)
	token, err := v.parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return v.pub, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject claim", ErrInvalidToken)
	}
	return claims.Subject, nil
}
