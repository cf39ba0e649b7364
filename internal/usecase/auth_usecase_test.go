package usecase

import (
	"context"
	"testing"
	"time"

	"clinic-api/config"
	"clinic-api/internal/delivery/dto"
	"clinic-api/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func newTestJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret: "test-secret",
		Expiry: 7 * 24 * time.Hour,
	})
}

func TestRegisterSuccess(t *testing.T) {
	userRepo := newFakeUserRepo()
	auth := NewAuthUsecase(quietLogger(), userRepo, newTestJWTService())

	resp, err := auth.Register(context.Background(), &dto.RegisterRequest{
		Email:    "doctor@x.com",
		Password: "pw123456",
		Name:     "Dr X",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if resp.Token == "" {
		t.Fatal("expected a token")
	}
	if resp.User.Email != "doctor@x.com" {
		t.Fatalf("expected email doctor@x.com, got %s", resp.User.Email)
	}
	if resp.User.Role != "DOCTOR" {
		t.Fatalf("expected default role DOCTOR, got %s", resp.User.Role)
	}

	stored := userRepo.byEmail["doctor@x.com"]
	if stored.Password == "pw123456" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("pw123456")); err != nil {
		t.Fatalf("stored password is not a valid bcrypt hash of the input: %v", err)
	}
}

func TestRegisterExplicitRole(t *testing.T) {
	auth := NewAuthUsecase(quietLogger(), newFakeUserRepo(), newTestJWTService())

	resp, err := auth.Register(context.Background(), &dto.RegisterRequest{
		Email:    "admin@x.com",
		Password: "pw123456",
		Name:     "Admin",
		Role:     "ADMIN",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if resp.User.Role != "ADMIN" {
		t.Fatalf("expected role ADMIN, got %s", resp.User.Role)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth := NewAuthUsecase(quietLogger(), newFakeUserRepo(), newTestJWTService())
	req := &dto.RegisterRequest{Email: "doctor@x.com", Password: "pw123456", Name: "Dr X"}

	if _, err := auth.Register(context.Background(), req); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := auth.Register(context.Background(), req)
	if err != ErrEmailAlreadyExists {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestLoginSuccessTokenClaims(t *testing.T) {
	jwtService := newTestJWTService()
	auth := NewAuthUsecase(quietLogger(), newFakeUserRepo(), jwtService)

	registered, err := auth.Register(context.Background(), &dto.RegisterRequest{
		Email:    "doctor@x.com",
		Password: "pw123456",
		Name:     "Dr X",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	resp, err := auth.Login(context.Background(), &dto.LoginRequest{
		Email:    "doctor@x.com",
		Password: "pw123456",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := jwtService.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if claims.UserID != registered.User.ID {
		t.Fatalf("token user id %s does not match registered user %s", claims.UserID, registered.User.ID)
	}
	if claims.Role != "DOCTOR" {
		t.Fatalf("expected role claim DOCTOR, got %s", claims.Role)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	auth := NewAuthUsecase(quietLogger(), newFakeUserRepo(), newTestJWTService())

	if _, err := auth.Register(context.Background(), &dto.RegisterRequest{
		Email:    "doctor@x.com",
		Password: "pw123456",
		Name:     "Dr X",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, wrongPassword := auth.Login(context.Background(), &dto.LoginRequest{
		Email:    "doctor@x.com",
		Password: "wrong",
	})
	_, unknownEmail := auth.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@x.com",
		Password: "pw123456",
	})

	if wrongPassword != ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassword)
	}
	if unknownEmail != ErrInvalidCredentials {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownEmail)
	}
}

func TestCurrentUser(t *testing.T) {
	userRepo := newFakeUserRepo()
	auth := NewAuthUsecase(quietLogger(), userRepo, newTestJWTService())

	resp, err := auth.Register(context.Background(), &dto.RegisterRequest{
		Email:    "nurse@x.com",
		Password: "pw123456",
		Name:     "Nurse Y",
		Role:     "NURSE",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	view, err := auth.CurrentUser(context.Background(), resp.User.ID)
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if view.Email != "nurse@x.com" || view.Role != "NURSE" {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestCurrentUserUnknownID(t *testing.T) {
	auth := NewAuthUsecase(quietLogger(), newFakeUserRepo(), newTestJWTService())

	if _, err := auth.CurrentUser(context.Background(), uuid.New()); err != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
