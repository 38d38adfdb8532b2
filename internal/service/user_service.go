package service

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	dom "github.com/surendhiran2000/theatre-management/internal/domain"
	"github.com/surendhiran2000/theatre-management/internal/repo"
)

var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrEmailTaken = errors.New("email already exists")

// UserService handles registration and credential checks.
type UserService struct {
	repo   repo.UserRepo
	hasher PasswordHasher
}

// NewUserService returns a new UserService.
func NewUserService(repo repo.UserRepo, hasher PasswordHasher) *UserService {
	return &UserService{repo: repo, hasher: hasher}
}

// Register creates a new user with a hashed password.
// Email uniqueness is lookup-before-insert, not a storage constraint:
// two concurrent registrations for the same email can both pass the check.
func (s *UserService) Register(ctx context.Context, username, email, password string) (dom.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return dom.User{}, ErrEmailTaken
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return dom.User{}, err
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return dom.User{}, err
	}
	return s.repo.Create(ctx, dom.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
}

// ValidateCredentials checks email and password; returns the user if valid.
// Unknown email and wrong password return the same error so the caller
// cannot tell which one failed.
func (s *UserService) ValidateCredentials(ctx context.Context, email, password string) (dom.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return dom.User{}, ErrInvalidCredentials
		}
		return dom.User{}, err
	}
	if !s.hasher.Check(password, u.PasswordHash) {
		return dom.User{}, ErrInvalidCredentials
	}
	return u, nil
}
