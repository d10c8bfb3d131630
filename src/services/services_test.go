package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/MUSEO/MUSEO-Backend/src/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "museo_test.db")

	db, err := gorm.Open(sqlite.Open(dbPath+"?_fk=1"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func strPtr(s string) *string { return &s }

func f64(v float64) *float64 { return &v }

func seedRole(t *testing.T, db *gorm.DB, name string) models.RoleModel {
	t.Helper()
	role := models.RoleModel{Name: name}
	if err := db.Create(&role).Error; err != nil {
		t.Fatalf("seed role %s: %v", name, err)
	}
	return role
}

func seedUser(t *testing.T, db *gorm.DB, email string, roleID int) models.UserModel {
	t.Helper()
	user := models.UserModel{
		FirstName: "Ana",
		LastName:  "Prueba",
		Document:  email,
		Email:     email,
		Password:  "hash",
		RoleID:    roleID,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return user
}

func seedClassification(t *testing.T, db *gorm.DB, name string) models.ClassificationModel {
	t.Helper()
	classification := models.ClassificationModel{Name: name}
	if err := db.Create(&classification).Error; err != nil {
		t.Fatalf("seed classification %s: %v", name, err)
	}
	return classification
}

func seedAgent(t *testing.T, db *gorm.DB, code string) models.AgentModel {
	t.Helper()
	agent := models.AgentModel{
		UniqueCode: code,
		LegalName:  "Agente " + code,
		AgentType:  models.AgentTypePerson,
	}
	if err := db.Create(&agent).Error; err != nil {
		t.Fatalf("seed agent %s: %v", code, err)
	}
	return agent
}

func seedMovementCatalog(t *testing.T, db *gorm.DB, name string) models.MovementCatalogModel {
	t.Helper()
	catalog := models.MovementCatalogModel{Name: name}
	if err := db.Create(&catalog).Error; err != nil {
		t.Fatalf("seed movement catalog %s: %v", name, err)
	}
	return catalog
}

func seedPiece(t *testing.T, db *gorm.DB, registration string, classificationID int) models.PieceModel {
	t.Helper()
	piece := models.PieceModel{
		RegistrationNumber: registration,
		Name:               "Pieza " + registration,
		ClassificationID:   classificationID,
	}
	if err := db.Create(&piece).Error; err != nil {
		t.Fatalf("seed piece %s: %v", registration, err)
	}
	return piece
}

func testDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse date %s: %v", value, err)
	}
	return date
}
