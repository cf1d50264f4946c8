package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mueblessanmiguel/catalogo_api/internal/models"
	"github.com/mueblessanmiguel/catalogo_api/internal/utils"
)

type mockUserStore struct {
	users   map[string]*models.User
	calls   int
	created *models.User
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{users: make(map[string]*models.User)}
}

func (m *mockUserStore) GetByEmail(email string) (*models.User, error) {
	m.calls++
	if u, ok := m.users[email]; ok {
		return u, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockUserStore) Create(user *models.User) error {
	m.calls++
	user.ID = "user-1"
	m.created = user
	m.users[user.Email] = user
	return nil
}

type mockDenylist struct {
	revoked map[string]bool
}

func newMockDenylist() *mockDenylist {
	return &mockDenylist{revoked: make(map[string]bool)}
}

func (m *mockDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	m.revoked[jti] = true
	return nil
}

func (m *mockDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return m.revoked[jti], nil
}

func TestAuthNotConfiguredFailsFast(t *testing.T) {
	store := newMockUserStore()
	svc := NewAuthService(store, newMockDenylist(), false)

	if _, err := svc.Register("a@b.com", "password123"); !errors.Is(err, utils.ErrAuthNotConfigured) {
		t.Errorf("Register err = %v, want ErrAuthNotConfigured", err)
	}
	if _, err := svc.Login("a@b.com", "password123"); !errors.Is(err, utils.ErrAuthNotConfigured) {
		t.Errorf("Login err = %v, want ErrAuthNotConfigured", err)
	}
	if store.calls != 0 {
		t.Errorf("store was called %d times, want 0", store.calls)
	}
}

func TestRegisterAndLogin(t *testing.T) {
	utils.InitJWT("test-secret")
	store := newMockUserStore()
	svc := NewAuthService(store, newMockDenylist(), true)

	token, err := svc.Register(" Admin@Example.COM ", "hunter2hunter2")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a session token")
	}
	if store.created.Email != "admin@example.com" {
		t.Errorf("stored email = %q, want normalized lowercase", store.created.Email)
	}
	if store.created.PasswordHash == "hunter2hunter2" {
		t.Error("password must not be stored in clear")
	}

	if _, err := svc.Login("admin@example.com", "hunter2hunter2"); err != nil {
		t.Errorf("Login with correct password failed: %v", err)
	}
	if _, err := svc.Login("admin@example.com", "wrong"); !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("Login err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	utils.InitJWT("test-secret")
	store := newMockUserStore()
	store.users["admin@example.com"] = &models.User{ID: "u1", Email: "admin@example.com"}
	svc := NewAuthService(store, newMockDenylist(), true)

	if _, err := svc.Register("admin@example.com", "password123"); !errors.Is(err, utils.ErrEmailInUse) {
		t.Errorf("err = %v, want ErrEmailInUse", err)
	}
}

func TestLoginMissingAccountLooksLikeBadPassword(t *testing.T) {
	utils.InitJWT("test-secret")
	svc := NewAuthService(newMockUserStore(), newMockDenylist(), true)

	if _, err := svc.Login("nobody@example.com", "whatever1"); !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	utils.InitJWT("test-secret")
	store := newMockUserStore()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	store.users["admin@example.com"] = &models.User{ID: "u1", Email: "admin@example.com", PasswordHash: string(hash)}
	denylist := newMockDenylist()
	svc := NewAuthService(store, denylist, true)

	token, err := svc.Login("admin@example.com", "password123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if _, err := svc.Session(context.Background(), token); err != nil {
		t.Fatalf("Session before logout failed: %v", err)
	}

	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	if _, err := svc.Session(context.Background(), token); !errors.Is(err, utils.ErrInvalidToken) {
		t.Errorf("Session after logout err = %v, want ErrInvalidToken", err)
	}
}

func TestSessionRejectsGarbageToken(t *testing.T) {
	utils.InitJWT("test-secret")
	svc := NewAuthService(newMockUserStore(), newMockDenylist(), true)

	if _, err := svc.Session(context.Background(), "garbage"); !errors.Is(err, utils.ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}
