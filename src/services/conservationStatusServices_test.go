package services

import (
	"errors"
	"testing"

	"github.com/MUSEO/MUSEO-Backend/src/models"
)

func TestCreateConservationStatusDefaultsEvaluatorToActor(t *testing.T) {
	db := openTestDB(t)
	service := NewConservationStatusService(db)

	role := seedRole(t, db, "Usuario")
	actor := seedUser(t, db, "evalua@museo.local", role.Id)
	classification := seedClassification(t, db, "Pintura")
	piece := seedPiece(t, db, "REG-300", classification.Id)

	report := &models.ConservationStatusModel{
		PieceID:        piece.Id,
		EvaluationDate: testDate(t, "2024-04-01"),
		StatusDetails:  "Craquelado leve en la esquina inferior",
	}
	created, err := service.CreateConservationStatus(report, &actor.Id)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.UserID != actor.Id {
		t.Fatalf("expected evaluator %d, got %d", actor.Id, created.UserID)
	}
}

func TestCreateConservationStatusRequiresDetails(t *testing.T) {
	db := openTestDB(t)
	service := NewConservationStatusService(db)

	role := seedRole(t, db, "Usuario")
	actor := seedUser(t, db, "evalua2@museo.local", role.Id)
	classification := seedClassification(t, db, "Textil")
	piece := seedPiece(t, db, "REG-301", classification.Id)

	_, err := service.CreateConservationStatus(&models.ConservationStatusModel{
		PieceID:        piece.Id,
		EvaluationDate: testDate(t, "2024-04-01"),
	}, &actor.Id)
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Fields["status_details"] == "" {
		t.Fatalf("missing details should fail, got %v", err)
	}
}
