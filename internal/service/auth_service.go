package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fitgoals/internal/auth"
	"fitgoals/internal/errors"
	"fitgoals/internal/model"
	"fitgoals/internal/repository"
)

const bcryptCost = 10

const weakPasswordMessage = "Password must be at least 8 characters long and contain one uppercase letter, one lowercase letter, one number and one special character"

// AuthService handles signup, login and logout.
type AuthService interface {
	Signup(ctx context.Context, email, password string) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

// Signup registers a new user and issues a token bound to it.
func (s *authService) Signup(ctx context.Context, email, password string) (*model.User, string, error) {
	email = normalizeEmail(email)

	fieldErrors := map[string]string{}
	if email == "" {
		fieldErrors["email"] = "Email is required"
	}
	if password == "" {
		fieldErrors["password"] = "Password is required"
	}
	if len(fieldErrors) > 0 {
		return nil, "", errors.NewValidationError(fieldErrors)
	}

	if !isPasswordStrong(password) {
		return nil, "", errors.NewValidationError(map[string]string{"password": weakPasswordMessage})
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, "", errors.NewValidationError(map[string]string{"email": "Email already registered"})
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, "", fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.users.Create(ctx, user); err != nil {
		// A concurrent signup can slip past the pre-check and hit the
		// unique index instead.
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", errors.NewValidationError(map[string]string{"email": "Email already registered"})
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	return user, token, nil
}

// Login authenticates a user and issues a token. An unknown email and a
// wrong password fail identically so the response does not reveal which
// check failed.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	email = normalizeEmail(email)

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", errors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	return user, token, nil
}

// Logout blacklists the presented token until its natural expiry.
func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return errors.ErrInvalidToken
	}
	if claims.ID == "" {
		return errors.ErrInvalidToken
	}

	ttl := auth.TokenExpiry
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		return nil
	}
	return s.tokenStore.BlacklistToken(ctx, claims.ID, ttl)
}

// normalizeEmail trims surrounding whitespace and lowercases the address.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// isPasswordStrong requires at least 8 characters with one uppercase
// letter, one lowercase letter, one digit and one special character.
func isPasswordStrong(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSpecial
}
