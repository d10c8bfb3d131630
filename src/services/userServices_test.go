package services

import (
	"errors"
	"testing"

	"github.com/MUSEO/MUSEO-Backend/src/middleware"
	"github.com/MUSEO/MUSEO-Backend/src/models"
	"golang.org/x/crypto/bcrypt"
)

func registerRequest(email string) *models.RegisterRequest {
	return &models.RegisterRequest{
		UserModel: models.UserModel{
			FirstName: "Laura",
			LastName:  "Gómez",
			Document:  "12345678",
			Email:     email,
			Password:  "secreto123",
		},
		PasswordConfirmation: "secreto123",
	}
}

func TestRegisterUserAssignsDefaultRole(t *testing.T) {
	db := openTestDB(t)
	service := NewUserService(db)

	seedRole(t, db, "Administrador")
	usuario := seedRole(t, db, DefaultRoleName)

	user, err := service.RegisterUser(registerRequest("laura@museo.local"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.RoleID != usuario.Id {
		t.Fatalf("expected default role %d, got %d", usuario.Id, user.RoleID)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secreto123")); err != nil {
		t.Fatalf("password should be stored hashed: %v", err)
	}
}

func TestRegisterUserFallsBackToFirstRole(t *testing.T) {
	db := openTestDB(t)
	service := NewUserService(db)

	// No "Usuario" role configured, only this one
	first := seedRole(t, db, "Curador")

	user, err := service.RegisterUser(registerRequest("curador@museo.local"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.RoleID != first.Id {
		t.Fatalf("expected fallback role %d, got %d", first.Id, user.RoleID)
	}
}

func TestRegisterUserWithoutRolesFails(t *testing.T) {
	db := openTestDB(t)
	service := NewUserService(db)

	_, err := service.RegisterUser(registerRequest("nadie@museo.local"))
	if !errors.Is(err, ErrNoRoles) {
		t.Fatalf("a database without roles is a setup error, got %v", err)
	}
}

func TestRegisterUserValidatesConfirmationAndDuplicates(t *testing.T) {
	db := openTestDB(t)
	service := NewUserService(db)
	seedRole(t, db, DefaultRoleName)

	request := registerRequest("dup@museo.local")
	request.PasswordConfirmation = "otra"
	_, err := service.RegisterUser(request)
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Fields["password"] == "" {
		t.Fatalf("mismatched confirmation should fail on password, got %v", err)
	}

	if _, err := service.RegisterUser(registerRequest("dup@museo.local")); err != nil {
		t.Fatalf("first register: %v", err)
	}
	request = registerRequest("dup@museo.local")
	request.Document = "D-otro"
	_, err = service.RegisterUser(request)
	if !errors.As(err, &vErr) || vErr.Fields["email"] == "" {
		t.Fatalf("duplicate email should fail on email, got %v", err)
	}
}

func TestAuthenticateUser(t *testing.T) {
	db := openTestDB(t)
	service := NewUserService(db)
	seedRole(t, db, DefaultRoleName)
	middleware.SetSecretKey("clave-de-prueba")

	if _, err := service.RegisterUser(registerRequest("login@museo.local")); err != nil {
		t.Fatalf("register: %v", err)
	}

	token, err := service.AuthenticateUser("login@museo.local", "secreto123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a signed token")
	}

	if _, err := service.AuthenticateUser("login@museo.local", "incorrecta"); err == nil {
		t.Fatalf("wrong password should fail")
	}
	if _, err := service.AuthenticateUser("fantasma@museo.local", "secreto123"); err == nil {
		t.Fatalf("unknown email should fail")
	}
}

func TestUpdateUserKeepsPasswordWhenOmitted(t *testing.T) {
	db := openTestDB(t)
	service := NewUserService(db)
	seedRole(t, db, DefaultRoleName)

	created, err := service.RegisterUser(registerRequest("edit@museo.local"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	originalHash := created.Password

	request := registerRequest("edit@museo.local")
	request.Password = ""
	request.PasswordConfirmation = ""
	request.FirstName = "Renombrada"
	if _, err := service.UpdateUser(created.Id, request); err != nil {
		t.Fatalf("update: %v", err)
	}

	var stored models.UserModel
	if err := db.First(&stored, created.Id).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.Password != originalHash {
		t.Fatalf("password hash must survive an update without a new password")
	}
	if stored.FirstName != "Renombrada" {
		t.Fatalf("first name not updated: %+v", stored)
	}
}
