package services

import (
	"errors"
	"testing"

	"github.com/MUSEO/MUSEO-Backend/src/models"
)

func TestCreateAgentValidatesType(t *testing.T) {
	db := openTestDB(t)
	service := NewAgentService(db)

	_, err := service.CreateAgent(&models.AgentModel{
		UniqueCode: "AG-100",
		LegalName:  "Museo Nacional",
		AgentType:  "Empresa",
	})
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Fields["agent_type"] == "" {
		t.Fatalf("unknown agent type should fail, got %v", err)
	}

	for _, agentType := range []string{models.AgentTypePerson, models.AgentTypeEntity, models.AgentTypeInstitution} {
		if _, err := service.CreateAgent(&models.AgentModel{
			UniqueCode: "AG-" + agentType,
			LegalName:  "Agente " + agentType,
			AgentType:  agentType,
		}); err != nil {
			t.Fatalf("agent type %s should be accepted: %v", agentType, err)
		}
	}
}

func TestAgentUniqueCode(t *testing.T) {
	db := openTestDB(t)
	service := NewAgentService(db)

	seedAgent(t, db, "AG-200")

	_, err := service.CreateAgent(&models.AgentModel{
		UniqueCode: "AG-200",
		LegalName:  "Otro agente",
		AgentType:  models.AgentTypeEntity,
	})
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Fields["unique_code"] == "" {
		t.Fatalf("duplicate unique code should fail, got %v", err)
	}
}
