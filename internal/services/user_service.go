package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"jobtrack/internal/models"
	"jobtrack/internal/storage"
	"jobtrack/internal/transport/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	userRepo      storage.UserRepository
	tokenRepo     storage.TokenRepository
	jwtSecret     string
	jwtExpiration time.Duration
	refreshTTL    time.Duration
}

// NewUserService creates a new instance of UserService.
func NewUserService(userRepo storage.UserRepository, tokenRepo storage.TokenRepository, jwtSecret string, jwtExpiration, refreshTTL time.Duration) UserService {
	return &userService{
		userRepo:      userRepo,
		tokenRepo:     tokenRepo,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
		refreshTTL:    refreshTTL,
	}
}

func (s *userService) Register(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("UserService: Error hashing password: %v", err)
		return nil, fmt.Errorf("internal error creating user: %w", err)
	}

	user, err := s.userRepo.Create(ctx, req, string(hash))
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) || errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		log.Printf("UserService: Error creating user: %v", err)
		return nil, fmt.Errorf("internal error creating user: %w", err)
	}
	return user, nil
}

func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, *dto.AuthResponse, error) {
	emailReq := dto.GetUserByEmailRequest{Email: req.Email}
	user, err := s.userRepo.GetByEmail(ctx, &emailReq)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("Login attempt failed for email %s: user not found", req.Email)
			return nil, nil, ErrInvalidCredentials
		}
		log.Printf("Error fetching user by email %s during login: %v", req.Email, err)
		return nil, nil, fmt.Errorf("internal error during login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Printf("Login attempt failed for email %s: invalid password", req.Email)
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	return user, tokens, nil
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued. An unknown or expired token maps to ErrInvalidCredentials.
func (s *userService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	userID, err := s.tokenRepo.UserID(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		log.Printf("UserService: Error validating refresh token: %v", err)
		return nil, fmt.Errorf("internal error during refresh: %w", err)
	}

	if err := s.tokenRepo.Delete(ctx, req.RefreshToken); err != nil {
		log.Printf("UserService: Error revoking rotated refresh token: %v", err)
		return nil, fmt.Errorf("internal error during refresh: %w", err)
	}

	return s.issueTokens(ctx, userID)
}

func (s *userService) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	if err := s.tokenRepo.Delete(ctx, req.RefreshToken); err != nil {
		log.Printf("UserService: Error revoking refresh token on logout: %v", err)
		return fmt.Errorf("internal error during logout: %w", err)
	}
	return nil
}

func (s *userService) GetByID(ctx context.Context, req *dto.GetUserByIDRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, req)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	return user, err
}

// issueTokens signs a short-lived access JWT and stores a fresh refresh
// token id with its TTL.
func (s *userService) issueTokens(ctx context.Context, userID int64) (*dto.AuthResponse, error) {
	expirationTime := time.Now().Add(s.jwtExpiration)
	claims := &jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(expirationTime),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		log.Printf("Error generating JWT token for user %d: %v", userID, err)
		return nil, fmt.Errorf("failed to generate login token: %w", err)
	}

	refreshToken := uuid.NewString()
	if err := s.tokenRepo.Save(ctx, refreshToken, userID, s.refreshTTL); err != nil {
		log.Printf("Error storing refresh token for user %d: %v", userID, err)
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.AuthResponse{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
