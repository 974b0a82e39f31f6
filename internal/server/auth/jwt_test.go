package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/okozlov/accountd/internal/common"
	"github.com/okozlov/accountd/internal/server/models"
)

func testUser() *models.User {
	return &models.User{
		ID:          123,
		Lastname:    "Smith",
		Firstname:   "John",
		Description: "hi there",
		Email:       "john@example.com",
		Role:        models.RoleUser,
		ImgProfile:  "https://assets.example.com/avatar-3.svg",
	}
}

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	issuer, err := NewTokenIssuer("super-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenIssuer error: %v", err)
	}

	tok, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := issuer.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != 123 || claims.Email != "john@example.com" || claims.Role != "USER" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
	if claims.Firstname != "John" || claims.Lastname != "Smith" {
		t.Fatalf("name claims mismatch: %+v", claims)
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) <= 0 {
		t.Fatalf("expiry not set in the future: %v", claims.ExpiresAt)
	}
}

func TestNewTokenIssuer_MissingSecret(t *testing.T) {
	t.Parallel()

	_, err := NewTokenIssuer("", time.Hour)
	if !errors.Is(err, common.ErrMissingConfig) {
		t.Fatalf("expected ErrMissingConfig, got %v", err)
	}
}

func TestNewTokenIssuer_DefaultValidity(t *testing.T) {
	t.Parallel()

	issuer, err := NewTokenIssuer("k", 0)
	if err != nil {
		t.Fatalf("NewTokenIssuer error: %v", err)
	}
	if issuer.validity != DefaultTokenValidity {
		t.Fatalf("expected default validity, got %v", issuer.validity)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	issuer, err := NewTokenIssuer("secret", -1*time.Second)
	if err != nil {
		t.Fatalf("NewTokenIssuer error: %v", err)
	}
	// validity <= 0 falls back to the default, so build an expired issuer
	// directly.
	issuer.validity = -1 * time.Second

	tok, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = issuer.Verify(tok)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	right, _ := NewTokenIssuer("right-secret", time.Hour)
	wrong, _ := NewTokenIssuer("wrong-secret", time.Hour)

	tok, err := right.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = wrong.Verify(tok)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	issuer, _ := NewTokenIssuer("k", time.Hour)
	_, err := issuer.Verify("not.a.jwt")
	if !errors.Is(err, common.ErrMalformedToken) {
		t.Fatalf("expected ErrMalformedToken, got %v", err)
	}
}
