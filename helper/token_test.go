package helper

import (
	"restaurant_manager/model"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenRoundTrip(t *testing.T) {
	// the secret must be read at signing time, not at package init
	t.Setenv("JWT_SECRET", "round-trip-secret")

	claim := model.TokenClaim{UserId: 42, Username: "alice"}

	signed, err := GenerateAccessToken(claim)
	if err != nil {
		t.Fatalf("generate access token: %v", err)
	}

	token, err := ParseToken(signed)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if !token.Valid {
		t.Fatal("token.Valid = false, want valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("claims have type %T, want jwt.MapClaims", token.Claims)
	}
	if uint(claims["userId"].(float64)) != claim.UserId {
		t.Fatalf("userId = %v, want %d", claims["userId"], claim.UserId)
	}
	if claims["username"].(string) != claim.Username {
		t.Fatalf("username = %v, want %s", claims["username"], claim.Username)
	}
}
