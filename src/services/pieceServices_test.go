package services

import (
	"errors"
	"testing"

	"github.com/MUSEO/MUSEO-Backend/src/models"
)

func TestPieceDimensionsRoundTrip(t *testing.T) {
	db := openTestDB(t)
	service := NewPieceService(db)

	classification := seedClassification(t, db, "Pintura")

	created, err := service.CreatePiece(&models.PieceModel{
		RegistrationNumber: "REG-010",
		Name:               "Retrato",
		ClassificationID:   classification.Id,
		Height:             f64(10.5),
		Width:              f64(20),
		Depth:              f64(5),
		Research:           true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	loaded, err := service.GetPieceByID(created.Id)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Height == nil || *loaded.Height != 10.5 {
		t.Fatalf("height lost precision: %v", loaded.Height)
	}
	if loaded.Width == nil || *loaded.Width != 20 {
		t.Fatalf("width mismatch: %v", loaded.Width)
	}
	if loaded.Depth == nil || *loaded.Depth != 5 {
		t.Fatalf("depth mismatch: %v", loaded.Depth)
	}
	if !loaded.Research {
		t.Fatalf("research flag lost")
	}
}

func TestPieceRegistrationNumberIsUnique(t *testing.T) {
	db := openTestDB(t)
	service := NewPieceService(db)

	classification := seedClassification(t, db, "Escultura")
	seedPiece(t, db, "REG-020", classification.Id)

	_, err := service.CreatePiece(&models.PieceModel{
		RegistrationNumber: "REG-020",
		Name:               "Copia",
		ClassificationID:   classification.Id,
	})
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Fields["registration_number"] == "" {
		t.Fatalf("duplicate registration number should fail, got %v", err)
	}
}

func TestPieceRequiresExistingClassification(t *testing.T) {
	db := openTestDB(t)
	service := NewPieceService(db)

	_, err := service.CreatePiece(&models.PieceModel{
		RegistrationNumber: "REG-030",
		Name:               "Sin clasificar",
		ClassificationID:   9999,
	})
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Fields["classification_id"] == "" {
		t.Fatalf("missing classification should fail, got %v", err)
	}
}

func TestPieceDeleteCascadesChildrenAndDetachesMovements(t *testing.T) {
	db := openTestDB(t)
	service := NewPieceService(db)

	role := seedRole(t, db, "Usuario")
	user := seedUser(t, db, "borra@museo.local", role.Id)
	classification := seedClassification(t, db, "Textil")
	piece := seedPiece(t, db, "REG-040", classification.Id)
	agent := seedAgent(t, db, "AG-040")
	catalog := seedMovementCatalog(t, db, "Adquisición")
	locationCategory := models.LocationCategoryModel{Name: "Depósito"}
	if err := db.Create(&locationCategory).Error; err != nil {
		t.Fatalf("seed location category: %v", err)
	}

	children := []interface{}{
		&models.PieceContextModel{PieceID: piece.Id, Provenance: strPtr("Colección privada")},
		&models.LocationHistoryModel{
			PieceID:            piece.Id,
			LocationCategoryID: locationCategory.Id,
			UserID:             user.Id,
			Date:               testDate(t, "2024-01-15"),
		},
		&models.ConservationStatusModel{
			PieceID:        piece.Id,
			UserID:         user.Id,
			EvaluationDate: testDate(t, "2024-02-15"),
			StatusDetails:  "Buen estado general",
		},
	}
	for _, child := range children {
		if err := db.Create(child).Error; err != nil {
			t.Fatalf("seed child %T: %v", child, err)
		}
	}
	movement := models.MovementModel{
		PieceID:           &piece.Id,
		MovementCatalogID: catalog.Id,
		AgentID:           agent.Id,
		UserID:            user.Id,
		Date:              testDate(t, "2024-03-15"),
	}
	if err := db.Create(&movement).Error; err != nil {
		t.Fatalf("seed movement: %v", err)
	}

	if err := service.DeletePiece(piece.Id); err != nil {
		t.Fatalf("delete piece: %v", err)
	}

	var contexts, history, reports int64
	db.Model(&models.PieceContextModel{}).Count(&contexts)
	db.Model(&models.LocationHistoryModel{}).Count(&history)
	db.Model(&models.ConservationStatusModel{}).Count(&reports)
	if contexts != 0 || history != 0 || reports != 0 {
		t.Fatalf("children should cascade: contexts=%d history=%d reports=%d", contexts, history, reports)
	}

	var survivor models.MovementModel
	if err := db.First(&survivor, movement.Id).Error; err != nil {
		t.Fatalf("movement must survive the piece delete: %v", err)
	}
	if survivor.PieceID != nil {
		t.Fatalf("movement should lose its piece reference, got %v", *survivor.PieceID)
	}
}

func TestPieceSearchMatchesClassificationName(t *testing.T) {
	db := openTestDB(t)
	service := NewPieceService(db)

	pintura := seedClassification(t, db, "Pintura")
	textil := seedClassification(t, db, "Textil")
	seedPiece(t, db, "REG-050", pintura.Id)
	seedPiece(t, db, "REG-051", textil.Id)

	page, err := service.GetAllPieces("pintura", 1)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if page.Total != 1 || page.Data[0].RegistrationNumber != "REG-050" {
		t.Fatalf("expected the piece classified as Pintura, got %+v", page)
	}

	page, err = service.GetAllPieces("", 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total != 2 {
		t.Fatalf("expected both pieces, got %d", page.Total)
	}
	// Newest first
	if page.Data[0].RegistrationNumber != "REG-051" {
		t.Fatalf("expected newest piece first, got %s", page.Data[0].RegistrationNumber)
	}
}

func TestPieceSummariesDenormalizeClassification(t *testing.T) {
	db := openTestDB(t)
	service := NewPieceService(db)

	classification := seedClassification(t, db, "Cerámica")
	piece := seedPiece(t, db, "REG-060", classification.Id)

	summaries, err := service.GetPieceSummaries()
	if err != nil {
		t.Fatalf("summaries: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected one row, got %d", len(summaries))
	}
	if summaries[0].RegistrationNumber != piece.RegistrationNumber {
		t.Fatalf("registration mismatch: %+v", summaries[0])
	}
	if summaries[0].ClassificationName == nil || *summaries[0].ClassificationName != "Cerámica" {
		t.Fatalf("classification name not resolved: %+v", summaries[0])
	}
}
