// Package services contains server-side business logic. This file implements
// AuthService, which handles registration, login, and session-token
// verification on top of the users repository.
package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"unicode"

	"github.com/okozlov/accountd/internal/common"
	"github.com/okozlov/accountd/internal/dbx"
	"github.com/okozlov/accountd/internal/server/auth"
	"github.com/okozlov/accountd/internal/server/config"
	"github.com/okozlov/accountd/internal/server/models"
	"github.com/okozlov/accountd/internal/server/repositories/repomanager"
)

// AuthService orchestrates the credential and session flows:
// - Register: validate input, hash the password, create the user
// - Login: verify credentials and mint a session token
// - VerifyToken: stateless claims extraction for downstream consumers
type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	issuer      *auth.TokenIssuer
	avatars     *AvatarService
}

// NewAuthService constructs an AuthService. It fails with ErrMissingConfig
// when the JWT secret is absent, so a misconfigured deployment dies at wiring
// time rather than on the first login.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, avatars *AvatarService) (*AuthService, error) {
	issuer, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenValidityDuration)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		db:          db,
		repomanager: m,
		issuer:      issuer,
		avatars:     avatars,
	}, nil
}

// capitalize upper-cases the first rune and lower-cases the remainder.
// Locale-naive on purpose.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Register creates a new account. Any validation failure aborts the flow
// immediately; the duplicate-email lookup and the insert run inside one
// transaction, and the schema's UNIQUE email constraint decides concurrent
// races.
func (s *AuthService) Register(ctx context.Context, lastname, firstname, email, password, confirmPassword string, role models.Role) (*models.User, error) {

	if lastname == "" || firstname == "" || email == "" || password == "" || confirmPassword == "" {
		return nil, common.ErrMissingField
	}

	if err := auth.ValidateEmailFormat(email); err != nil {
		return nil, err
	}
	if err := auth.ValidatePasswordFormat(password); err != nil {
		return nil, err
	}

	if password != confirmPassword {
		return nil, common.ErrPasswordMismatch
	}

	if role == "" {
		role = models.RoleUser
	}

	normalizedEmail := strings.ToLower(email)

	// Hash outside the transaction: bcrypt is deliberately slow.
	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	var created *models.User
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		_, err := repo.GetByEmail(ctx, normalizedEmail)
		if err == nil {
			return common.ErrEmailAlreadyInUse
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		user := &models.User{
			Lastname:     capitalize(lastname),
			Firstname:    capitalize(firstname),
			Email:        normalizedEmail,
			PasswordHash: passwordHash,
			Role:         role,
			ImgProfile:   s.avatars.DefaultAvatarURL(),
		}

		created, err = repo.Create(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// Login verifies the provided credentials and, on success, returns the user
// together with a freshly issued session token. An unknown email and a wrong
// password both surface as ErrInvalidCredentials.
//
// Login also requires confirmPassword to equal password; that mirrors the
// registration contract this endpoint inherited.
func (s *AuthService) Login(ctx context.Context, email, password, confirmPassword string) (*models.User, string, error) {

	if email == "" || password == "" || confirmPassword == "" {
		return nil, "", common.ErrMissingField
	}

	if err := auth.ValidateEmailFormat(email); err != nil {
		return nil, "", err
	}

	if password != confirmPassword {
		return nil, "", common.ErrPasswordMismatch
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// hide whether the account exists
			return nil, "", common.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, "", common.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// VerifyToken parses and validates a session token, returning its claims.
// This is the stateless verification entry point for resource servers.
func (s *AuthService) VerifyToken(token string) (*auth.Claims, error) {
	return s.issuer.Verify(token)
}
