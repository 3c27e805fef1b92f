package app

import (
	"context"
	"testing"
	"time"

	"github.com/salomebobokhidze/HotelManagement/internal/clock"
	"github.com/salomebobokhidze/HotelManagement/internal/domain"
)

const testSecret = "test-secret"

func TestAuthService_RegisterAndLogin(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	repo := newFakeUserRepo()
	tokens := newFakeTokenStore()
	svc := NewAuthService(repo, tokens, clock.NewFixed(now), testSecret)

	reg, err := svc.Register(context.Background(), RegisterInput{
		Email:          "nino@example.com",
		Password:       "s3cret-pass",
		FirstName:      "Nino",
		LastName:       "Beridze",
		PersonalNumber: "01234567890",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if reg.User.Role != domain.RoleGuest {
		t.Fatalf("expected default role guest, got %s", reg.User.Role)
	}
	if reg.User.PasswordHash == "s3cret-pass" {
		t.Fatalf("password stored in plaintext")
	}
	if reg.Tokens.AccessToken == "" || reg.Tokens.RefreshToken == "" {
		t.Fatalf("expected token pair to be issued")
	}

	userID, role, err := svc.VerifyAccessToken(reg.Tokens.AccessToken)
	if err != nil {
		t.Fatalf("verify access token: %v", err)
	}
	if userID != reg.User.ID || role != domain.RoleGuest {
		t.Fatalf("unexpected claims: %s %s", userID, role)
	}

	login, err := svc.Login(context.Background(), "nino@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if login.User.ID != reg.User.ID {
		t.Fatalf("expected same user on login")
	}

	if _, err := svc.Login(context.Background(), "nino@example.com", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "nobody@example.com", "whatever"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestAuthService_DuplicateEmail(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	svc := NewAuthService(newFakeUserRepo(), newFakeTokenStore(), clock.NewFixed(now), testSecret)

	in := RegisterInput{Email: "dato@example.com", Password: "pass-123"}
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), in); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_RefreshRotation(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	svc := NewAuthService(newFakeUserRepo(), newFakeTokenStore(), clock.NewFixed(now), testSecret)

	reg, err := svc.Register(context.Background(), RegisterInput{Email: "keti@example.com", Password: "pass-123"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	refreshed, err := svc.Refresh(context.Background(), reg.Tokens.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if refreshed.Tokens.RefreshToken == reg.Tokens.RefreshToken {
		t.Fatalf("expected refresh token to rotate")
	}

	// The consumed token must not work twice.
	if _, err := svc.Refresh(context.Background(), reg.Tokens.RefreshToken); err != domain.ErrInvalidRefreshToken {
		t.Fatalf("expected ErrInvalidRefreshToken on replay, got %v", err)
	}
}

func TestAuthService_ExpiredAccessToken(t *testing.T) {
	t.Parallel()

	issued := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	repo := newFakeUserRepo()
	tokens := newFakeTokenStore()

	svc := NewAuthService(repo, tokens, clock.NewFixed(issued), testSecret)
	reg, err := svc.Register(context.Background(), RegisterInput{Email: "gio@example.com", Password: "pass-123"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	later := NewAuthService(repo, tokens, clock.NewFixed(issued.Add(25*time.Hour)), testSecret)
	if _, _, err := later.VerifyAccessToken(reg.Tokens.AccessToken); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected expired token to be rejected, got %v", err)
	}
}

type fakeUserRepo struct {
	byID    map[string]domain.User
	byEmail map[string]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]domain.User),
		byEmail: make(map[string]domain.User),
	}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user domain.User) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return domain.ErrEmailTaken
	}
	f.byID[user.ID] = user
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (domain.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetUser(_ context.Context, id string) (domain.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

type fakeTokenStore struct {
	tokens map[string]string
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[string]string)}
}

func (f *fakeTokenStore) Save(_ context.Context, token, userID string, _ time.Duration) error {
	f.tokens[token] = userID
	return nil
}

func (f *fakeTokenStore) Consume(_ context.Context, token string) (string, error) {
	userID, ok := f.tokens[token]
	if !ok {
		return "", domain.ErrInvalidRefreshToken
	}
	delete(f.tokens, token)
	return userID, nil
}

func (f *fakeTokenStore) Revoke(_ context.Context, token string) error {
	delete(f.tokens, token)
	return nil
}
