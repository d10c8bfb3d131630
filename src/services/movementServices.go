package services

import (
	"errors"
	"strings"

	"github.com/MUSEO/MUSEO-Backend/src/dtos"
	"github.com/MUSEO/MUSEO-Backend/src/models"
	"github.com/MUSEO/MUSEO-Backend/src/validation"
	"gorm.io/gorm"
)

// Todo movimiento referencia un agente y un tipo de movimiento válidos; la
// pieza es opcional (un ingreso puede registrarse antes que su pieza).
var movementSchema = validation.Schema{
	"piece_id": {
		{Kind: validation.Integer},
		{Kind: validation.Exists, Table: "piece_models"},
	},
	"movement_catalog_id": {
		{Kind: validation.Required},
		{Kind: validation.Integer},
		{Kind: validation.Exists, Table: "movement_catalog_models"},
	},
	"agent_id": {
		{Kind: validation.Required},
		{Kind: validation.Integer},
		{Kind: validation.Exists, Table: "agent_models"},
	},
	"completed": {
		{Kind: validation.Boolean},
	},
	"date": {
		{Kind: validation.Required},
		{Kind: validation.Date},
	},
	"user_id": {
		{Kind: validation.Integer},
		{Kind: validation.Exists, Table: "user_models"},
	},
}

type MovementService struct {
	db        *gorm.DB
	validator *validation.Validator
}

func NewMovementService(db *gorm.DB) *MovementService {
	return &MovementService{db: db, validator: validation.New(db)}
}

// GetAllMovements retrieves a paginated, newest-first page of movements. The
// search token matches the related piece name, agent name and movement type.
func (s *MovementService) GetAllMovements(search string, page int) (*dtos.Page[models.MovementModel], error) {
	page = normalizePage(page)
	query := s.db.Model(&models.MovementModel{}).
		Preload("Piece").
		Preload("MovementCatalog").
		Preload("Agent").
		Preload("User")
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.
			Joins("LEFT JOIN piece_models ON piece_models.id = movement_models.piece_id").
			Joins("LEFT JOIN movement_catalog_models ON movement_catalog_models.id = movement_models.movement_catalog_id").
			Joins("LEFT JOIN agent_models ON agent_models.id = movement_models.agent_id").
			Where(
				"LOWER(piece_models.name) LIKE ? OR LOWER(movement_catalog_models.name) LIKE ? OR LOWER(agent_models.legal_name) LIKE ?",
				like, like, like,
			)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	movements := make([]models.MovementModel, 0, PageSize)
	if err := query.Order("movement_models.id DESC").Offset((page - 1) * PageSize).Limit(PageSize).Find(&movements).Error; err != nil {
		return nil, err
	}

	return &dtos.Page[models.MovementModel]{
		Data:       movements,
		Total:      total,
		Page:       page,
		PerPage:    PageSize,
		TotalPages: totalPages(total),
		Search:     search,
	}, nil
}

// GetMovementSummaries returns the flattened listing rows with the related
// names resolved in a single query.
func (s *MovementService) GetMovementSummaries() ([]dtos.MovementSummaryDTO, error) {
	type summaryRow struct {
		ID               int
		Date             string
		Completed        bool
		PieceName        *string `gorm:"column:piece_name"`
		MovementTypeName *string `gorm:"column:movement_type_name"`
		AgentName        *string `gorm:"column:agent_name"`
		UserFirstName    *string `gorm:"column:user_first_name"`
		UserLastName     *string `gorm:"column:user_last_name"`
	}

	var rows []summaryRow
	err := s.db.Table("movement_models AS m").
		Select(`m.id,
			m.date,
			m.completed,
			p.name AS piece_name,
			mc.name AS movement_type_name,
			a.legal_name AS agent_name,
			u.firstname AS user_first_name,
			u.lastname AS user_last_name`).
		Joins("LEFT JOIN piece_models p ON p.id = m.piece_id").
		Joins("LEFT JOIN movement_catalog_models mc ON mc.id = m.movement_catalog_id").
		Joins("LEFT JOIN agent_models a ON a.id = m.agent_id").
		Joins("LEFT JOIN user_models u ON u.id = m.user_id").
		Order("m.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]dtos.MovementSummaryDTO, 0, len(rows))
	for _, row := range rows {
		dto := dtos.MovementSummaryDTO{
			ID:               row.ID,
			Date:             row.Date,
			Completed:        row.Completed,
			PieceName:        row.PieceName,
			MovementTypeName: row.MovementTypeName,
			AgentName:        row.AgentName,
		}

		var nameParts []string
		if row.UserFirstName != nil && strings.TrimSpace(*row.UserFirstName) != "" {
			nameParts = append(nameParts, strings.TrimSpace(*row.UserFirstName))
		}
		if row.UserLastName != nil && strings.TrimSpace(*row.UserLastName) != "" {
			nameParts = append(nameParts, strings.TrimSpace(*row.UserLastName))
		}
		if len(nameParts) > 0 {
			fullName := strings.Join(nameParts, " ")
			dto.UserName = &fullName
		}

		summaries = append(summaries, dto)
	}
	return summaries, nil
}

func (s *MovementService) GetMovementByID(id int) (*models.MovementModel, error) {
	var movement models.MovementModel
	err := s.db.Preload("Piece").
		Preload("MovementCatalog").
		Preload("Agent").
		Preload("User").
		First(&movement, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &movement, nil
}

// GetMovementFormData returns the selector lists for the movement form.
func (s *MovementService) GetMovementFormData() (map[string]interface{}, error) {
	var pieces []models.PieceModel
	if err := s.db.Order("name ASC").Find(&pieces).Error; err != nil {
		return nil, err
	}
	var catalogs []models.MovementCatalogModel
	if err := s.db.Order("name ASC").Find(&catalogs).Error; err != nil {
		return nil, err
	}
	var agents []models.AgentModel
	if err := s.db.Order("legal_name ASC").Find(&agents).Error; err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"pieces":           pieces,
		"movementCatalogs": catalogs,
		"agents":           agents,
	}, nil
}

// CreateMovement validates and creates a movement. Without an explicit
// responsible user it records the authenticated actor.
func (s *MovementService) CreateMovement(movement *models.MovementModel, actorID *int) (*models.MovementModel, error) {
	if movement.UserID == 0 && actorID != nil {
		movement.UserID = *actorID
	}
	if errs := s.validator.Check(movementSchema, movementValues(movement), nil); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}
	if movement.UserID == 0 {
		return nil, &ValidationError{Fields: validation.Errors{
			"user_id": "No se pudo determinar el usuario responsable",
		}}
	}
	if err := s.db.Create(movement).Error; err != nil {
		return nil, translateWriteError(err, "agent_id")
	}
	return movement, nil
}

func (s *MovementService) UpdateMovement(id int, updated *models.MovementModel) (*models.MovementModel, error) {
	var movement models.MovementModel
	if err := s.db.First(&movement, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if errs := s.validator.Check(movementSchema, movementValues(updated), &id); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	movement.PieceID = updated.PieceID
	movement.MovementCatalogID = updated.MovementCatalogID
	movement.AgentID = updated.AgentID
	movement.Completed = updated.Completed
	movement.Date = updated.Date
	if updated.UserID != 0 {
		movement.UserID = updated.UserID
	}
	if err := s.db.Save(&movement).Error; err != nil {
		return nil, translateWriteError(err, "agent_id")
	}
	return &movement, nil
}

func (s *MovementService) DeleteMovement(id int) error {
	result := s.db.Delete(&models.MovementModel{}, id)
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

func (s *MovementService) CheckField(field, value string, excludeID *int) (bool, string) {
	return s.validator.Field(movementSchema, field, value, excludeID)
}

func movementValues(m *models.MovementModel) map[string]interface{} {
	return map[string]interface{}{
		"piece_id":            m.PieceID,
		"movement_catalog_id": optionalID(m.MovementCatalogID),
		"agent_id":            optionalID(m.AgentID),
		"completed":           m.Completed,
		"date":                m.Date,
		"user_id":             optionalID(m.UserID),
	}
}
