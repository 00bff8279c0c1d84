package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/avagyan/expense-tracker/internal/apperrors"
	"github.com/avagyan/expense-tracker/internal/models"
	"github.com/avagyan/expense-tracker/internal/repository"
)

type mockUserRepo struct {
	CreateUserFunc        func(ctx context.Context, username string, passwordHash []byte) error
	GetUserByUsernameFunc func(ctx context.Context, username string) (*models.User, error)
}

func (m *mockUserRepo) CreateUser(ctx context.Context, username string, passwordHash []byte) error {
	return m.CreateUserFunc(ctx, username, passwordHash)
}
func (m *mockUserRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return m.GetUserByUsernameFunc(ctx, username)
}

type fakeHasher struct {
	hash     []byte
	hashErr  error
	checkRes bool
}

func (f *fakeHasher) Hash(password string) ([]byte, error) { return f.hash, f.hashErr }
func (f *fakeHasher) Check(password string, hash []byte) bool {
	return f.checkRes
}

type fakeIssuer struct {
	token string
	err   error
}

func (f *fakeIssuer) Issue(userID int64) (string, error) { return f.token, f.err }

func TestRegister_EmptyUsername(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{}, &fakeHasher{}, &fakeIssuer{})

	err := svc.Register(context.Background(), "", "secret")
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected apperrors.Error, got %v", err)
	}
	if appErr.Status != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", appErr.Status)
	}
	if appErr.Message != "Username is required." {
		t.Errorf("unexpected message: %q", appErr.Message)
	}
}

func TestRegister_EmptyPassword(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{}, &fakeHasher{hashErr: errors.New("should not be called")}, &fakeIssuer{})

	err := svc.Register(context.Background(), "alice", "")
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected apperrors.Error, got %v", err)
	}
	if appErr.Message != "Password is required." {
		t.Errorf("unexpected message: %q", appErr.Message)
	}
}

func TestRegister_Success(t *testing.T) {
	var gotUsername string
	var gotHash []byte
	repo := &mockUserRepo{
		CreateUserFunc: func(ctx context.Context, username string, passwordHash []byte) error {
			gotUsername = username
			gotHash = passwordHash
			return nil
		},
	}
	svc := NewAuthService(repo, &fakeHasher{hash: []byte("hashed")}, &fakeIssuer{})

	if err := svc.Register(context.Background(), "alice", "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotUsername != "alice" {
		t.Errorf("CreateUser received username = %q; want %q", gotUsername, "alice")
	}
	if string(gotHash) != "hashed" {
		t.Errorf("CreateUser received hash = %q; want the hasher output", gotHash)
	}
}

func TestRegister_Duplicate(t *testing.T) {
	repo := &mockUserRepo{
		CreateUserFunc: func(ctx context.Context, username string, passwordHash []byte) error {
			return repository.ErrDuplicateUser
		},
	}
	svc := NewAuthService(repo, &fakeHasher{hash: []byte("hashed")}, &fakeIssuer{})

	err := svc.Register(context.Background(), "bob", "secret")
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected apperrors.Error, got %v", err)
	}
	if appErr.Status != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", appErr.Status)
	}
	if appErr.Message != "User bob is already registered." {
		t.Errorf("unexpected message: %q", appErr.Message)
	}
}

func TestLogin_Success(t *testing.T) {
	repo := &mockUserRepo{
		GetUserByUsernameFunc: func(ctx context.Context, username string) (*models.User, error) {
			return &models.User{ID: 7, Username: username, PasswordHash: []byte("stored")}, nil
		},
	}
	svc := NewAuthService(repo, &fakeHasher{checkRes: true}, &fakeIssuer{token: "signed-token"})

	accessToken, err := svc.Login(context.Background(), "alice", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if accessToken != "signed-token" {
		t.Errorf("expected issued token, got %q", accessToken)
	}
}

func TestLogin_UnknownUserAndWrongPasswordIndistinguishable(t *testing.T) {
	notFoundRepo := &mockUserRepo{
		GetUserByUsernameFunc: func(ctx context.Context, username string) (*models.User, error) {
			return nil, repository.ErrUserNotFound
		},
	}
	wrongPassRepo := &mockUserRepo{
		GetUserByUsernameFunc: func(ctx context.Context, username string) (*models.User, error) {
			return &models.User{ID: 7, PasswordHash: []byte("stored")}, nil
		},
	}

	_, errNotFound := NewAuthService(notFoundRepo, &fakeHasher{}, &fakeIssuer{}).
		Login(context.Background(), "ghost", "secret")
	_, errWrongPass := NewAuthService(wrongPassRepo, &fakeHasher{checkRes: false}, &fakeIssuer{}).
		Login(context.Background(), "alice", "wrong")

	for _, err := range []error{errNotFound, errWrongPass} {
		var appErr *apperrors.Error
		if !errors.As(err, &appErr) {
			t.Fatalf("expected apperrors.Error, got %v", err)
		}
		if appErr.Status != http.StatusUnauthorized {
			t.Errorf("expected status 401, got %d", appErr.Status)
		}
		if appErr.Message != "Invalid username or password" {
			t.Errorf("unexpected message: %q", appErr.Message)
		}
	}
	if errNotFound.Error() != errWrongPass.Error() {
		t.Errorf("failure paths are distinguishable: %q vs %q", errNotFound, errWrongPass)
	}
}

func TestLogin_RepoError(t *testing.T) {
	wantErr := errors.New("db down")
	repo := &mockUserRepo{
		GetUserByUsernameFunc: func(ctx context.Context, username string) (*models.User, error) {
			return nil, wantErr
		},
	}
	svc := NewAuthService(repo, &fakeHasher{}, &fakeIssuer{})

	_, err := svc.Login(context.Background(), "alice", "secret")
	if !errors.Is(err, wantErr) {
		t.Fatalf("Login error = %v; want %v", err, wantErr)
	}
}
