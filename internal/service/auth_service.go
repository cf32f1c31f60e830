package service

import (
	"errors"
	"regexp"

	"net/http"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/remindengine/core/internal/models"
	"github.com/remindengine/core/internal/repository"
	apperrors "github.com/remindengine/core/pkg/errors"
	"github.com/remindengine/core/pkg/jwt"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const bcryptCost = 12

// AuthService issues the account identity every other component scopes to.
// It sits outside the engine proper (spec.md treats accounts as an external
// collaborator) but the engine needs something to register/login against.
type AuthService struct {
	users      *repository.UserRepository
	jwtManager *jwt.Manager
}

func NewAuthService(users *repository.UserRepository, jwtManager *jwt.Manager) *AuthService {
	return &AuthService{users: users, jwtManager: jwtManager}
}

type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
}

type AuthResult struct {
	User   *models.User
	Tokens *jwt.TokenPair
}

func (s *AuthService) Register(in RegisterInput) (*AuthResult, error) {
	if !emailPattern.MatchString(in.Email) {
		return nil, apperrors.ValidationError("invalid email format")
	}
	if len(in.Password) < 8 {
		return nil, apperrors.ValidationError("password must be at least 8 characters")
	}

	if _, err := s.users.FindByEmail(in.Email); err == nil {
		return nil, apperrors.ValidationError("email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        in.Email,
		PasswordHash: string(hash),
		DisplayName:  in.DisplayName,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	tokens, err := s.jwtManager.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Tokens: tokens}, nil
}

type LoginInput struct {
	Email    string
	Password string
}

func (s *AuthService) Login(in LoginInput) (*AuthResult, error) {
	user, err := s.users.FindByEmail(in.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.CodeAuthenticationRequired, "invalid email or password", http.StatusUnauthorized)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, apperrors.New(apperrors.CodeAuthenticationRequired, "invalid email or password", http.StatusUnauthorized)
	}

	tokens, err := s.jwtManager.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Tokens: tokens}, nil
}

func (s *AuthService) RefreshToken(refreshToken string) (*jwt.TokenPair, error) {
	tokens, err := s.jwtManager.RefreshTokens(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}
	return tokens, nil
}

func (s *AuthService) AccessTokenTTLSeconds() int64 {
	return s.jwtManager.GetAccessDuration()
}
