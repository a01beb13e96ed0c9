package services

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"meetspace-admin/internal/apperr"
	"meetspace-admin/internal/models"
	"meetspace-admin/internal/repository"
)

type AuthClaims struct {
	UID   string `json:"uid,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type AuthService struct {
	Secret   string
	TokenTTL time.Duration
}

func NewAuthService(secret string) *AuthService {
	return &AuthService{Secret: secret, TokenTTL: 24 * time.Hour}
}

type AuthIdentity struct {
	ID                    string
	Email                 string
	Name                  string
	Role                  string
	RequirePasswordChange bool
}

func (s *AuthService) issueToken(id AuthIdentity, now time.Time) (string, error) {
	claims := AuthClaims{
		UID:   id.ID,
		Email: id.Email,
		Role:  id.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.TokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.Secret))
}

// lookupCredential finds the account for an email. Role entries take
// precedence over plain user documents, same as list overlays.
func lookupCredential(ctx context.Context, email string) (AuthIdentity, string, error) {
	role, err := repository.GetRoleByEmail(ctx, email)
	if err == nil {
		id := AuthIdentity{
			ID:                    role.ID.Hex(),
			Email:                 role.Email,
			Name:                  role.Name,
			Role:                  role.Role,
			RequirePasswordChange: role.RequirePasswordChange,
		}
		if id.Role == models.RoleUser {
			id.RequirePasswordChange = false
		}
		return id, role.Password, nil
	}
	if !apperr.IsNotFound(err) {
		return AuthIdentity{}, "", err
	}

	user, err := repository.GetUserByEmail(ctx, email)
	if err != nil {
		return AuthIdentity{}, "", err
	}
	id := AuthIdentity{
		ID:    user.ID.Hex(),
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}
	if id.Role == "" {
		id.Role = models.RoleUser
	}
	return id, user.Password, nil
}

// Login verifies credentials against the role collection first, then the
// user collection, and issues a signed token on success.
func (s *AuthService) Login(ctx context.Context, email, password string) (AuthIdentity, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	now := time.Now().UTC()

	id, hash, err := lookupCredential(ctx, email)
	if err != nil {
		if apperr.IsNotFound(err) {
			return AuthIdentity{}, "", apperr.Validation("invalid email or password")
		}
		return AuthIdentity{}, "", apperr.Wrap(err, "login lookup failed")
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		if rerr := repository.RecordFailedLogin(ctx, email); rerr != nil {
			log.Warn().Err(rerr).Str("email", email).Msg("failed login counter not recorded")
		}
		return AuthIdentity{}, "", apperr.Validation("invalid email or password")
	}

	token, err := s.issueToken(id, now)
	if err != nil {
		return AuthIdentity{}, "", apperr.Wrap(err, "token signing failed")
	}

	if err := repository.RecordLogin(ctx, email, now); err != nil {
		log.Warn().Err(err).Str("email", email).Msg("login history not recorded")
	}

	return id, token, nil
}

// Logout stamps the account's last logout and closes any open login
// history entries. Missing accounts are not an error.
func (s *AuthService) Logout(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := repository.StampLogout(ctx, email, time.Now().UTC()); err != nil && !apperr.IsNotFound(err) {
		return apperr.Wrap(err, "logout stamp failed")
	}
	return nil
}

// ChangePassword rehashes the password on whichever collection holds the
// account, clears the forced-change flag and records the change time.
func (s *AuthService) ChangePassword(ctx context.Context, email, current, next string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if len(next) < 8 {
		return apperr.Validation("new password must be at least 8 characters")
	}

	_, hash, err := lookupCredential(ctx, email)
	if err != nil {
		if apperr.IsNotFound(err) {
			return apperr.NotFound("account not found")
		}
		return apperr.Wrap(err, "account lookup failed")
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(current)) != nil {
		return apperr.Validation("current password is incorrect")
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Wrap(err, "password hashing failed")
	}

	if err := repository.SetPassword(ctx, email, string(newHash), time.Now().UTC()); err != nil {
		return apperr.Wrap(err, "password update failed")
	}
	return nil
}
