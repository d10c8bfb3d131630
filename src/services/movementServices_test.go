package services

import (
	"errors"
	"testing"

	"github.com/MUSEO/MUSEO-Backend/src/models"
)

func TestCreateMovementRequiresAgentAndType(t *testing.T) {
	db := openTestDB(t)
	service := NewMovementService(db)

	role := seedRole(t, db, "Usuario")
	user := seedUser(t, db, "resp@museo.local", role.Id)

	movement := &models.MovementModel{
		Date:   testDate(t, "2024-03-10"),
		UserID: user.Id,
	}
	_, err := service.CreateMovement(movement, nil)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if vErr.Fields["agent_id"] == "" {
		t.Fatalf("expected error on agent_id, got %v", vErr.Fields)
	}
	if vErr.Fields["movement_catalog_id"] == "" {
		t.Fatalf("expected error on movement_catalog_id, got %v", vErr.Fields)
	}
}

func TestCreateMovementDefaultsResponsibleToActor(t *testing.T) {
	db := openTestDB(t)
	service := NewMovementService(db)

	role := seedRole(t, db, "Usuario")
	actor := seedUser(t, db, "actor@museo.local", role.Id)
	agent := seedAgent(t, db, "AG-001")
	catalog := seedMovementCatalog(t, db, "Donación")

	movement := &models.MovementModel{
		MovementCatalogID: catalog.Id,
		AgentID:           agent.Id,
		Date:              testDate(t, "2024-03-10"),
	}
	created, err := service.CreateMovement(movement, &actor.Id)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.UserID != actor.Id {
		t.Fatalf("expected responsible user %d, got %d", actor.Id, created.UserID)
	}
}

func TestCreateMovementWithoutActorOrUserFails(t *testing.T) {
	db := openTestDB(t)
	service := NewMovementService(db)

	agent := seedAgent(t, db, "AG-002")
	catalog := seedMovementCatalog(t, db, "Préstamo")

	movement := &models.MovementModel{
		MovementCatalogID: catalog.Id,
		AgentID:           agent.Id,
		Date:              testDate(t, "2024-03-10"),
	}
	_, err := service.CreateMovement(movement, nil)
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Fields["user_id"] == "" {
		t.Fatalf("expected error on user_id, got %v", err)
	}
}

func TestMovementPieceIsOptionalButMustExist(t *testing.T) {
	db := openTestDB(t)
	service := NewMovementService(db)

	role := seedRole(t, db, "Usuario")
	actor := seedUser(t, db, "actor2@museo.local", role.Id)
	agent := seedAgent(t, db, "AG-003")
	catalog := seedMovementCatalog(t, db, "Exposición")

	// Without a piece the movement is still valid
	movement := &models.MovementModel{
		MovementCatalogID: catalog.Id,
		AgentID:           agent.Id,
		Date:              testDate(t, "2024-05-01"),
	}
	if _, err := service.CreateMovement(movement, &actor.Id); err != nil {
		t.Fatalf("movement without piece: %v", err)
	}

	ghost := 9999
	movement = &models.MovementModel{
		PieceID:           &ghost,
		MovementCatalogID: catalog.Id,
		AgentID:           agent.Id,
		Date:              testDate(t, "2024-05-01"),
	}
	_, err := service.CreateMovement(movement, &actor.Id)
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Fields["piece_id"] == "" {
		t.Fatalf("a piece reference must resolve, got %v", err)
	}
}

func TestMovementSummariesResolveNames(t *testing.T) {
	db := openTestDB(t)
	service := NewMovementService(db)

	role := seedRole(t, db, "Usuario")
	actor := seedUser(t, db, "resumen@museo.local", role.Id)
	agent := seedAgent(t, db, "AG-004")
	catalog := seedMovementCatalog(t, db, "Restauración")
	classification := seedClassification(t, db, "Pintura")
	piece := seedPiece(t, db, "REG-100", classification.Id)

	movement := &models.MovementModel{
		PieceID:           &piece.Id,
		MovementCatalogID: catalog.Id,
		AgentID:           agent.Id,
		Date:              testDate(t, "2024-07-20"),
	}
	if _, err := service.CreateMovement(movement, &actor.Id); err != nil {
		t.Fatalf("create: %v", err)
	}

	summaries, err := service.GetMovementSummaries()
	if err != nil {
		t.Fatalf("summaries: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected one summary, got %d", len(summaries))
	}
	summary := summaries[0]
	if summary.PieceName == nil || *summary.PieceName != piece.Name {
		t.Fatalf("piece name not resolved: %+v", summary)
	}
	if summary.MovementTypeName == nil || *summary.MovementTypeName != "Restauración" {
		t.Fatalf("movement type not resolved: %+v", summary)
	}
	if summary.AgentName == nil || *summary.AgentName != agent.LegalName {
		t.Fatalf("agent name not resolved: %+v", summary)
	}
	if summary.UserName == nil || *summary.UserName != "Ana Prueba" {
		t.Fatalf("user name not resolved: %+v", summary)
	}
}
