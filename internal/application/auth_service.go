package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/UmerKhan-18/TodoApp/internal/domain/entity"
	repo "github.com/UmerKhan-18/TodoApp/internal/domain/repository"
	"github.com/UmerKhan-18/TodoApp/pkg/helpers"
)

var (
	// ErrInvalidCredentials covers both the unknown-email and wrong-password
	// cases; callers must not be able to tell them apart.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("user already exists")
)

// AuthService composes the account store and the credential issuer: signup,
// login and token issuance.
type AuthService struct {
	Users      repo.UserRepository
	JWT        *helpers.JWTManager
	Logger     *logrus.Logger
	BcryptCost int // 0 means bcrypt.DefaultCost
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

// Register creates an account. The email must be unused; the password is
// hashed by the entity before anything reaches the repository.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	if existing, err := s.Users.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	} else if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	u := &entity.User{Username: username, Email: email}
	var err error
	if s.BcryptCost > 0 {
		err = u.SetPasswordCost(password, s.BcryptCost)
	} else {
		err = u.SetPassword(password)
	}
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("password hashing failed")
		}
		return nil, err
	}

	if err := s.Users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate validates email/password and returns the user without issuing a token.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !u.ComparePassword(password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Login authenticates and issues a signed session token for the user.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, string, time.Time, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	token, exp, err := s.JWT.Generate(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return nil, "", time.Time{}, err
	}
	return u, token, exp, nil
}
