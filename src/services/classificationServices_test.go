package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MUSEO/MUSEO-Backend/src/models"
)

func TestClassificationNameIsCaseInsensitivelyUnique(t *testing.T) {
	db := openTestDB(t)
	service := NewClassificationService(db)

	if _, err := service.CreateClassification(&models.ClassificationModel{Name: "Pintura"}); err != nil {
		t.Fatalf("create Pintura: %v", err)
	}

	_, err := service.CreateClassification(&models.ClassificationModel{Name: "pintura"})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error for duplicate name, got %v", err)
	}
	if vErr.Fields["name"] == "" {
		t.Fatalf("expected error on field name, got %v", vErr.Fields)
	}
}

func TestClassificationUpdateExcludesItself(t *testing.T) {
	db := openTestDB(t)
	service := NewClassificationService(db)

	created, err := service.CreateClassification(&models.ClassificationModel{Name: "Escultura"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Saving the record with its own name must not trip the uniqueness check
	updated, err := service.UpdateClassification(created.Id, &models.ClassificationModel{
		Name:        "Escultura",
		Description: strPtr("Obras tridimensionales"),
	})
	if err != nil {
		t.Fatalf("update with same name: %v", err)
	}
	if updated.Description == nil || *updated.Description != "Obras tridimensionales" {
		t.Fatalf("description not updated: %+v", updated)
	}

	other, err := service.CreateClassification(&models.ClassificationModel{Name: "Textil"})
	if err != nil {
		t.Fatalf("create other: %v", err)
	}

	_, err = service.UpdateClassification(other.Id, &models.ClassificationModel{Name: "escultura"})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("renaming onto an existing name should fail, got %v", err)
	}
}

func TestClassificationDeleteBlockedByPieces(t *testing.T) {
	db := openTestDB(t)
	service := NewClassificationService(db)

	arte := seedClassification(t, db, "Arte")
	seedPiece(t, db, "REG-001", arte.Id)

	if err := service.DeleteClassification(arte.Id); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict while a piece references the classification, got %v", err)
	}

	unused := seedClassification(t, db, "Numismática")
	if err := service.DeleteClassification(unused.Id); err != nil {
		t.Fatalf("delete unused classification: %v", err)
	}

	if err := service.DeleteClassification(9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found for missing id, got %v", err)
	}
}

func TestClassificationSearchAndPaging(t *testing.T) {
	db := openTestDB(t)
	service := NewClassificationService(db)

	for i := 1; i <= 12; i++ {
		seedClassification(t, db, fmt.Sprintf("Categoría %02d", i))
	}

	page, err := service.GetAllClassifications("", 1)
	if err != nil {
		t.Fatalf("list page 1: %v", err)
	}
	if len(page.Data) != PageSize || page.Total != 12 || page.TotalPages != 2 {
		t.Fatalf("unexpected page: len=%d total=%d pages=%d", len(page.Data), page.Total, page.TotalPages)
	}

	page, err = service.GetAllClassifications("", 2)
	if err != nil {
		t.Fatalf("list page 2: %v", err)
	}
	if len(page.Data) != 2 || page.Page != 2 {
		t.Fatalf("unexpected second page: len=%d page=%d", len(page.Data), page.Page)
	}

	page, err = service.GetAllClassifications("categoría 03", 1)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if page.Total != 1 || page.Data[0].Name != "Categoría 03" {
		t.Fatalf("case-insensitive search failed: %+v", page)
	}

	page, err = service.GetAllClassifications("no-existe", 1)
	if err != nil {
		t.Fatalf("search miss: %v", err)
	}
	if page.Total != 0 || len(page.Data) != 0 || page.TotalPages != 1 {
		t.Fatalf("non-matching search should return an empty page: %+v", page)
	}
}

func TestClassificationCheckFieldMatchesCreateVerdict(t *testing.T) {
	db := openTestDB(t)
	service := NewClassificationService(db)

	seedClassification(t, db, "Cerámica")

	ok, msg := service.CheckField("name", "cerámica", nil)
	if ok {
		t.Fatalf("duplicate name should be invalid")
	}
	if msg == "" {
		t.Fatalf("expected a message for the duplicate")
	}

	if ok, _ := service.CheckField("name", "Orfebrería", nil); !ok {
		t.Fatalf("fresh name should be valid")
	}
}
