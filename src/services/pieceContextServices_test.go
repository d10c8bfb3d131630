package services

import (
	"errors"
	"testing"

	"github.com/MUSEO/MUSEO-Backend/src/models"
)

func TestPieceContextIsOnePerPiece(t *testing.T) {
	db := openTestDB(t)
	service := NewPieceContextService(db)

	classification := seedClassification(t, db, "Pintura")
	piece := seedPiece(t, db, "REG-200", classification.Id)

	if _, err := service.CreatePieceContext(&models.PieceContextModel{
		PieceID:    piece.Id,
		Provenance: strPtr("Donación familiar"),
	}); err != nil {
		t.Fatalf("create context: %v", err)
	}

	_, err := service.CreatePieceContext(&models.PieceContextModel{
		PieceID:    piece.Id,
		Provenance: strPtr("Otro origen"),
	})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("second context for the same piece should fail, got %v", err)
	}
	if vErr.Fields["piece_id"] != "La pieza ya tiene un contexto registrado" {
		t.Fatalf("unexpected message: %v", vErr.Fields)
	}
}

func TestPieceContextFormDataExcludesCoveredPieces(t *testing.T) {
	db := openTestDB(t)
	service := NewPieceContextService(db)

	classification := seedClassification(t, db, "Escultura")
	covered := seedPiece(t, db, "REG-210", classification.Id)
	pending := seedPiece(t, db, "REG-211", classification.Id)

	if _, err := service.CreatePieceContext(&models.PieceContextModel{PieceID: covered.Id}); err != nil {
		t.Fatalf("create context: %v", err)
	}

	data, err := service.GetPieceContextFormData()
	if err != nil {
		t.Fatalf("form data: %v", err)
	}
	pieces, ok := data["pieces"].([]models.PieceModel)
	if !ok {
		t.Fatalf("unexpected form data shape: %T", data["pieces"])
	}
	if len(pieces) != 1 || pieces[0].Id != pending.Id {
		t.Fatalf("only pieces without a context should be offered, got %+v", pieces)
	}
}

func TestPieceContextRequiresExistingPiece(t *testing.T) {
	db := openTestDB(t)
	service := NewPieceContextService(db)

	_, err := service.CreatePieceContext(&models.PieceContextModel{PieceID: 9999})
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Fields["piece_id"] == "" {
		t.Fatalf("missing piece should fail, got %v", err)
	}
}
