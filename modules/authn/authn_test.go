package authn

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

func generateKeyPair(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("marshal public key: %v", err)
	}
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
	return key, base64.StdEncoding.EncodeToString(pemBytes)
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.Claims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestDecodePublicKey(t *testing.T) {
	_, b64 := generateKeyPair(t)

	if _, err := DecodePublicKey(b64); err != nil {
		t.Fatalf("decode valid key: %v", err)
	}
	if _, err := DecodePublicKey("not-base64!!"); err == nil {
		t.Fatal("expected error for invalid base64")
	}
	garbage := base64.StdEncoding.EncodeToString([]byte("not a pem block"))
	if _, err := DecodePublicKey(garbage); err == nil {
		t.Fatal("expected error for non-PEM payload")
	}
}

func TestParseSubject(t *testing.T) {
	key, b64 := generateKeyPair(t)
	v, err := VerifierFromConfig(AuthConfig{PublicKey: b64})
	if err != nil {
		t.Fatalf("build verifier: %v", err)
	}

	t.Run("valid token", func(t *testing.T) {
		token := signToken(t, key, jwt.RegisteredClaims{
			Subject:   "auth0|u1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		sub, err := v.ParseSubject(token)
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if sub != "auth0|u1" {
			t.Fatalf("unexpected subject %q", sub)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, key, jwt.RegisteredClaims{
			Subject:   "auth0|u1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		})
		if _, err := v.ParseSubject(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("wrong key", func(t *testing.T) {
		otherKey, _ := generateKeyPair(t)
		token := signToken(t, otherKey, jwt.RegisteredClaims{Subject: "auth0|u1"})
		if _, err := v.ParseSubject(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("missing subject claim", func(t *testing.T) {
		token := signToken(t, key, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		if _, err := v.ParseSubject(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("unsigned token rejected", func(t *testing.T) {
		// alg=none must never pass, regardless of claims
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone,
			jwt.RegisteredClaims{Subject: "auth0|u1"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		if err != nil {
			t.Fatalf("build unsigned token: %v", err)
		}
		if _, err := v.ParseSubject(unsigned); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		if _, err := v.ParseSubject("not.a.token"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}

func TestMiddleware(t *testing.T) {
	key, b64 := generateKeyPair(t)
	v, err := VerifierFromConfig(AuthConfig{PublicKey: b64})
	if err != nil {
		t.Fatalf("build verifier: %v", err)
	}

	e := echo.New()
	handler := Middleware(v)(func(c echo.Context) error {
		return c.String(http.StatusOK, Subject(c))
	})

	run := func(authorization string) (*httptest.ResponseRecorder, error) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if authorization != "" {
			req.Header.Set(echo.HeaderAuthorization, authorization)
		}
		rec := httptest.NewRecorder()
		return rec, handler(e.NewContext(req, rec))
	}

	t.Run("valid bearer token passes the subject through", func(t *testing.T) {
		token := signToken(t, key, jwt.RegisteredClaims{
			Subject:   "auth0|u1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		rec, err := run("Bearer " + token)
		if err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Body.String() != "auth0|u1" {
			t.Fatalf("expected subject in context, got %q", rec.Body.String())
		}
	})

	rejected := []struct {
		name          string
		authorization string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"lowercase scheme", "bearer sometoken"},
		{"scheme without token", "Bearer"},
		{"malformed token", "Bearer not.a.token"},
	}
	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(tt.authorization)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %v", err)
			}
		})
	}
}
