package app

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/salomebobokhidze/HotelManagement/internal/clock"
	"github.com/salomebobokhidze/HotelManagement/internal/domain"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user domain.User) error
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	GetUser(ctx context.Context, id string) (domain.User, error)
}

// RefreshTokenStore records issued refresh tokens so they can be rotated
// and revoked. Backed by Redis in production.
type RefreshTokenStore interface {
	Save(ctx context.Context, token, userID string, ttl time.Duration) error
	Consume(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
}

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

type AuthService struct {
	repo   UserRepository
	tokens RefreshTokenStore
	clock  clock.Clock
	secret []byte
}

func NewAuthService(repo UserRepository, tokens RefreshTokenStore, clk clock.Clock, secret string) *AuthService {
	return &AuthService{
		repo:   repo,
		tokens: tokens,
		clock:  clk,
		secret: []byte(secret),
	}
}

type RegisterInput struct {
	Email          string
	Password       string
	FirstName      string
	LastName       string
	PersonalNumber string
	Role           domain.Role
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthResult struct {
	User   domain.User
	Tokens TokenPair
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	role := in.Role
	if role == "" {
		role = domain.RoleGuest
	}

	user := domain.User{
		ID:             newID(),
		Email:          in.Email,
		PasswordHash:   string(hash),
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		PersonalNumber: in.PersonalNumber,
		Role:           role,
		CreatedAt:      s.clock.Now(),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return AuthResult{}, err
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Tokens: tokens}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return AuthResult{}, domain.ErrInvalidCredentials
		}
		return AuthResult{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return AuthResult{}, domain.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Tokens: tokens}, nil
}

// Refresh rotates a refresh token: the presented token is consumed and a
// fresh pair is issued, so a replayed token fails.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (AuthResult, error) {
	userID, err := s.tokens.Consume(ctx, refreshToken)
	if err != nil {
		return AuthResult{}, err
	}

	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return AuthResult{}, err
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Tokens: tokens}, nil
}

func (s *AuthService) Revoke(ctx context.Context, refreshToken string) error {
	return s.tokens.Revoke(ctx, refreshToken)
}

func (s *AuthService) GetUser(ctx context.Context, id string) (domain.User, error) {
	if id == "" {
		return domain.User{}, domain.ErrInvalidID
	}
	return s.repo.GetUser(ctx, id)
}

// AccessClaims are the JWT claims embedded in access tokens.
type AccessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// VerifyAccessToken parses and validates an access token, returning the
// user id and role it was issued for.
func (s *AuthService) VerifyAccessToken(tokenStr string) (string, domain.Role, error) {
	var claims AccessClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock.Now))
	if err != nil || !token.Valid {
		return "", "", domain.ErrInvalidCredentials
	}
	return claims.Subject, domain.Role(claims.Role), nil
}

func (s *AuthService) issueTokens(ctx context.Context, user domain.User) (TokenPair, error) {
	now := s.clock.Now()
	claims := AccessClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
			ID:        newID(),
		},
	}

	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return TokenPair{}, fmt.Errorf("sign access token: %w", err)
	}

	refresh, err := newRefreshToken()
	if err != nil {
		return TokenPair{}, err
	}
	if err := s.tokens.Save(ctx, refresh, user.ID, refreshTokenTTL); err != nil {
		return TokenPair{}, fmt.Errorf("save refresh token: %w", err)
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func newRefreshToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate refresh token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
