package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenRoundTrip(t *testing.T) {
	signed, err := GenerateToken("tm-1", "alex.johnson@company.com", "secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := ParseToken(signed, "secret")
	if err != nil {
		t.Fatal(err)
	}
	if claims.MemberID != "tm-1" || claims.Email != "alex.johnson@company.com" {
		t.Errorf("claims = %+v", claims)
	}
	if claims.Issuer != "workdeck" {
		t.Errorf("issuer = %q", claims.Issuer)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	signed, err := GenerateToken("tm-1", "alex.johnson@company.com", "secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseToken(signed, "other-secret"); err == nil {
		t.Error("token signed with a different secret was accepted")
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	signed, err := GenerateToken("tm-1", "alex.johnson@company.com", "secret", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseToken(signed, "secret"); err == nil {
		t.Error("expired token was accepted")
	}
}

func TestParseTokenRejectsNonHMAC(t *testing.T) {
	// A token signed with alg "none" must be rejected before verification,
	// not accepted because its (empty) signature happens to check out.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		MemberID: "tm-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}

	_, err = ParseToken(signed, "secret")
	if err == nil {
		t.Fatal("unsigned token was accepted")
	}
	if !strings.Contains(err.Error(), "unexpected signing method") {
		t.Errorf("err = %v, want signing-method rejection", err)
	}
}
