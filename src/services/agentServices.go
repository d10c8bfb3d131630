package services

import (
	"errors"
	"strings"

	"github.com/MUSEO/MUSEO-Backend/src/dtos"
	"github.com/MUSEO/MUSEO-Backend/src/models"
	"github.com/MUSEO/MUSEO-Backend/src/validation"
	"gorm.io/gorm"
)

var agentSchema = validation.Schema{
	"unique_code": {
		{Kind: validation.Required},
		{Kind: validation.Str},
		{Kind: validation.Max, Max: 50},
		{Kind: validation.Unique, Table: "agent_models", Column: "unique_code"},
	},
	"legal_name": {
		{Kind: validation.Required},
		{Kind: validation.Str},
		{Kind: validation.Max, Max: 150},
	},
	"agent_type": {
		{Kind: validation.Required},
		{Kind: validation.Str},
		{Kind: validation.Max, Max: 20},
	},
	"email": {
		{Kind: validation.Email},
		{Kind: validation.Max, Max: 100},
	},
	"phone": {
		{Kind: validation.Str},
		{Kind: validation.Max, Max: 20},
	},
	"address": {
		{Kind: validation.Str},
		{Kind: validation.Max, Max: 255},
	},
}

type AgentService struct {
	db        *gorm.DB
	validator *validation.Validator
}

func NewAgentService(db *gorm.DB) *AgentService {
	return &AgentService{db: db, validator: validation.New(db)}
}

func (s *AgentService) GetAllAgents(search string, page int) (*dtos.Page[models.AgentModel], error) {
	page = normalizePage(page)
	query := s.db.Model(&models.AgentModel{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(unique_code) LIKE ? OR LOWER(legal_name) LIKE ? OR LOWER(agent_type) LIKE ? OR LOWER(email) LIKE ?",
			like, like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	items := make([]models.AgentModel, 0, PageSize)
	if err := query.Order("id DESC").Offset((page - 1) * PageSize).Limit(PageSize).Find(&items).Error; err != nil {
		return nil, err
	}

	return &dtos.Page[models.AgentModel]{
		Data:       items,
		Total:      total,
		Page:       page,
		PerPage:    PageSize,
		TotalPages: totalPages(total),
		Search:     search,
	}, nil
}

func (s *AgentService) GetAgentByID(id int) (*models.AgentModel, error) {
	var agent models.AgentModel
	if err := s.db.First(&agent, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &agent, nil
}

func (s *AgentService) CreateAgent(agent *models.AgentModel) (*models.AgentModel, error) {
	errs := s.validator.Check(agentSchema, agentValues(agent), nil)
	if !validAgentType(agent.AgentType) {
		errs["agent_type"] = "El tipo de agente debe ser Persona, Entidad o Institución"
	}
	if len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}
	if err := s.db.Create(agent).Error; err != nil {
		return nil, translateWriteError(err, "unique_code")
	}
	return agent, nil
}

func (s *AgentService) UpdateAgent(id int, updated *models.AgentModel) (*models.AgentModel, error) {
	var agent models.AgentModel
	if err := s.db.First(&agent, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	errs := s.validator.Check(agentSchema, agentValues(updated), &id)
	if !validAgentType(updated.AgentType) {
		errs["agent_type"] = "El tipo de agente debe ser Persona, Entidad o Institución"
	}
	if len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	agent.UniqueCode = updated.UniqueCode
	agent.LegalName = updated.LegalName
	agent.AgentType = updated.AgentType
	agent.Email = updated.Email
	agent.Phone = updated.Phone
	agent.Address = updated.Address
	if err := s.db.Save(&agent).Error; err != nil {
		return nil, translateWriteError(err, "unique_code")
	}
	return &agent, nil
}

func (s *AgentService) DeleteAgent(id int) error {
	result := s.db.Delete(&models.AgentModel{}, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return ErrConflict
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *AgentService) CheckField(field, value string, excludeID *int) (bool, string) {
	return s.validator.Field(agentSchema, field, value, excludeID)
}

func validAgentType(agentType string) bool {
	switch agentType {
	case models.AgentTypePerson, models.AgentTypeEntity, models.AgentTypeInstitution:
		return true
	}
	return false
}

func agentValues(a *models.AgentModel) map[string]interface{} {
	return map[string]interface{}{
		"unique_code": a.UniqueCode,
		"legal_name":  a.LegalName,
		"agent_type":  a.AgentType,
		"email":       a.Email,
		"phone":       a.Phone,
		"address":     a.Address,
	}
}
