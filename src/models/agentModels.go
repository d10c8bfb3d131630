package models

import "time"

// Tipos de agente admitidos
const (
	AgentTypePerson      = "Persona"
	AgentTypeEntity      = "Entidad"
	AgentTypeInstitution = "Institución"
)

type AgentModel struct {
	Id         int       `json:"id" gorm:"primaryKey;autoIncrement"`
	UniqueCode string    `json:"uniqueCode" gorm:"column:unique_code;type:varchar(50);not null;unique"`
	LegalName  string    `json:"legalName" gorm:"column:legal_name;type:varchar(150);not null"`
	AgentType  string    `json:"agentType" gorm:"column:agent_type;type:varchar(20);not null"`
	Email      *string   `json:"email" gorm:"column:email;type:varchar(100)"`
	Phone      *string   `json:"phone" gorm:"column:phone;type:varchar(20)"`
	Address    *string   `json:"address" gorm:"column:address;type:varchar(255)"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
