package token

import (
	"game_roulette/internal/model"
	"testing"
	"time"
)

var secret = []byte("party-secret")

func TestAccessToken_RoundTrip(t *testing.T) {
	tok, err := GenerateAccessToken(model.RoleHost, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := VerifyToken(tok, secret)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims.Role != model.RoleHost {
		t.Errorf("role %q, want %q", claims.Role, model.RoleHost)
	}
	if claims.ID == "" {
		t.Error("token id is empty")
	}
}

func TestAccessToken_WrongSecret(t *testing.T) {
	tok, _ := GenerateAccessToken(model.RoleHost, secret, time.Hour)
	if _, err := VerifyToken(tok, []byte("other")); err == nil {
		t.Error("token signed with another key must be rejected")
	}
}

func TestAccessToken_Expired(t *testing.T) {
	tok, _ := GenerateAccessToken(model.RoleHost, secret, -time.Minute)
	if _, err := VerifyToken(tok, secret); err == nil {
		t.Error("expired token must be rejected")
	}
}
