package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var testSecret = []byte("test-secret")

func TestIssueAndVerifyRoundtrip(t *testing.T) {
	token, err := IssueToken(map[string]interface{}{"email": "a@x.com", "name": "Ana"}, testSecret)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	claims, err := VerifyToken(token, testSecret)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if got := claims["email"]; got != "a@x.com" {
		t.Errorf("email claim = %v, want a@x.com", got)
	}
	if got := claims["name"]; got != "Ana" {
		t.Errorf("name claim = %v, want Ana", got)
	}
}

func TestIssuedTokenExpiresInOneHour(t *testing.T) {
	token, err := IssueToken(map[string]interface{}{"email": "a@x.com"}, testSecret)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	claims, err := VerifyToken(token, testSecret)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatalf("exp claim missing or wrong type: %v", claims["exp"])
	}
	want := time.Now().Add(TokenTTL).Unix()
	if diff := int64(exp) - want; diff < -5 || diff > 5 {
		t.Errorf("exp = %d, want about %d", int64(exp), want)
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	token, err := IssueToken(map[string]interface{}{"email": "a@x.com"}, testSecret)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	if _, err := VerifyToken(token, []byte("a-different-secret")); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("VerifyToken with wrong key: got %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "a@x.com",
		"exp":   time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := expired.SignedString(testSecret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := VerifyToken(signed, testSecret); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("VerifyToken with expired token: got %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsNonHMACAlgorithm(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"email": "a@x.com"})
	signed, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := VerifyToken(signed, testSecret); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("VerifyToken with alg=none: got %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	if _, err := VerifyToken("not.a.token", testSecret); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("VerifyToken with garbage: got %v, want ErrInvalidToken", err)
	}
}
