package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/okozlov/accountd/internal/common"
	"github.com/okozlov/accountd/internal/server/models"
)

// Claims is the set of user attributes embedded in a session token, plus the
// registered expiry claim. Immutable once signed.
type Claims struct {
	jwt.RegisteredClaims
	UserID      int64  `json:"uid"`
	Lastname    string `json:"lastname"`
	Firstname   string `json:"firstname"`
	Description string `json:"description"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	ImgProfile  string `json:"img_profile"`
}

// TokenIssuer mints and verifies HS256 session tokens. The signing secret is
// injected at construction; nothing here reads process environment state.
type TokenIssuer struct {
	secret   []byte
	validity time.Duration
}

// DefaultTokenValidity is the session lifetime applied when the configured
// validity is zero.
const DefaultTokenValidity = time.Hour

// NewTokenIssuer builds a TokenIssuer. An empty secret is a deployment
// defect and fails with ErrMissingConfig, distinct from any auth failure.
func NewTokenIssuer(secret string, validity time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, fmt.Errorf("%w: jwt secret", common.ErrMissingConfig)
	}
	if validity <= 0 {
		validity = DefaultTokenValidity
	}
	return &TokenIssuer{secret: []byte(secret), validity: validity}, nil
}

// Issue signs a session token carrying the user's claims. The expiry is set
// at issuance; signing adds no randomness of its own.
func (i *TokenIssuer) Issue(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(i.validity)),
		},
		UserID:      user.ID,
		Lastname:    user.Lastname,
		Firstname:   user.Firstname,
		Description: user.Description,
		Email:       user.Email,
		Role:        string(user.Role),
		ImgProfile:  user.ImgProfile,
	})

	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify parses a token string and returns its claims. Failures map to the
// shared sentinels so callers can tell expiry from tampering from garbage.
func (i *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, common.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, common.ErrMalformedToken
		default:
			return nil, common.ErrInvalidToken
		}
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
