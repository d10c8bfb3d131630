package services

import (
	"errors"
	"testing"

	"github.com/MUSEO/MUSEO-Backend/src/models"
)

func TestCreateLocationHistoryDefaultsResponsibleToActor(t *testing.T) {
	db := openTestDB(t)
	service := NewLocationHistoryService(db)

	role := seedRole(t, db, "Usuario")
	actor := seedUser(t, db, "mueve@museo.local", role.Id)
	classification := seedClassification(t, db, "Cerámica")
	piece := seedPiece(t, db, "REG-400", classification.Id)
	category := models.LocationCategoryModel{Name: "Sala principal"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}

	record := &models.LocationHistoryModel{
		PieceID:            piece.Id,
		LocationCategoryID: category.Id,
		Date:               testDate(t, "2024-05-05"),
		Reason:             strPtr("Montaje de exposición"),
	}
	created, err := service.CreateLocationHistory(record, &actor.Id)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.UserID != actor.Id {
		t.Fatalf("expected responsible user %d, got %d", actor.Id, created.UserID)
	}
}

func TestCreateLocationHistoryValidatesReferences(t *testing.T) {
	db := openTestDB(t)
	service := NewLocationHistoryService(db)

	role := seedRole(t, db, "Usuario")
	actor := seedUser(t, db, "mueve2@museo.local", role.Id)

	_, err := service.CreateLocationHistory(&models.LocationHistoryModel{
		PieceID:            9999,
		LocationCategoryID: 9999,
		Date:               testDate(t, "2024-05-05"),
	}, &actor.Id)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if vErr.Fields["piece_id"] == "" || vErr.Fields["location_category_id"] == "" {
		t.Fatalf("expected errors on both references, got %v", vErr.Fields)
	}
}
