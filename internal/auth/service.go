// Package auth issues and verifies user identity: registration, login and
// profile lookup.
package auth

import (
	"errors"
	"regexp"
	"strings"

	"mealmate/internal/apperr"
	"mealmate/internal/domain"
	"mealmate/internal/store"
	"mealmate/internal/utils"

	"golang.org/x/crypto/bcrypt" // Password hashing
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type Service struct {
	users     store.UserStore
	jwtSecret string
}

func NewService(users store.UserStore, jwtSecret string) *Service {
	return &Service{users: users, jwtSecret: jwtSecret}
}

// Register creates a new account. Emails are case-normalized before the
// uniqueness check, so a duplicate differing only in case conflicts.
func (s *Service) Register(email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, apperr.Validation("Email and password are required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return nil, apperr.Validation("Invalid email format")
	}
	if len(password) < 8 {
		return nil, apperr.Validation("Password must be at least 8 characters long")
	}

	_, err := s.users.FindByEmail(email)
	if err == nil {
		return nil, apperr.Conflict("User with this email already exists")
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, apperr.Internal("Registration failed", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal("Registration failed", err)
	}

	user := &domain.User{Email: email, PasswordHash: string(hash)}
	if err := s.users.Create(user); err != nil {
		return nil, apperr.Internal("Registration failed", err)
	}
	return user, nil
}

// Login checks credentials and returns a signed bearer token. A missing user
// and a wrong password are indistinguishable to the caller.
func (s *Service) Login(email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, apperr.Validation("Email and password are required")
	}
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil, apperr.Auth("Invalid email or password")
		}
		return "", nil, apperr.Internal("Login failed", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperr.Auth("Invalid email or password")
	}

	token, err := utils.GenerateJWT(user.ID, s.jwtSecret)
	if err != nil {
		return "", nil, apperr.Internal("Login failed", err)
	}
	return token, user, nil
}

// Profile returns the public fields of the user identified by a verified
// token subject.
func (s *Service) Profile(userID uint) (*domain.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal("Failed to get profile", err)
	}
	return user, nil
}
