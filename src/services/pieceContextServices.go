package services

import (
	"errors"
	"strings"

	"github.com/MUSEO/MUSEO-Backend/src/dtos"
	"github.com/MUSEO/MUSEO-Backend/src/models"
	"github.com/MUSEO/MUSEO-Backend/src/validation"
	"gorm.io/gorm"
)

// Relación 1:1 con la pieza: el piece_id es único en la tabla.
var pieceContextSchema = validation.Schema{
	"piece_id": {
		{Kind: validation.Required},
		{Kind: validation.Integer},
		{Kind: validation.Exists, Table: "piece_models"},
		{Kind: validation.Unique, Table: "piece_context_models", Column: "piece_id",
			Message: "La pieza ya tiene un contexto registrado"},
	},
	"provenance": {
		{Kind: validation.Str},
	},
	"bibliography": {
		{Kind: validation.Str},
	},
}

type PieceContextService struct {
	db        *gorm.DB
	validator *validation.Validator
}

func NewPieceContextService(db *gorm.DB) *PieceContextService {
	return &PieceContextService{db: db, validator: validation.New(db)}
}

// GetAllPieceContexts lists contexts searchable by provenance text,
// bibliography and the related piece name.
func (s *PieceContextService) GetAllPieceContexts(search string, page int) (*dtos.Page[models.PieceContextModel], error) {
	page = normalizePage(page)
	query := s.db.Model(&models.PieceContextModel{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.
			Joins("LEFT JOIN piece_models ON piece_models.id = piece_context_models.piece_id").
			Where(
				"LOWER(piece_context_models.provenance) LIKE ? OR LOWER(piece_context_models.bibliography) LIKE ? OR LOWER(piece_models.name) LIKE ?",
				like, like, like,
			)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	contexts := make([]models.PieceContextModel, 0, PageSize)
	if err := query.Order("piece_context_models.id DESC").Offset((page - 1) * PageSize).Limit(PageSize).Find(&contexts).Error; err != nil {
		return nil, err
	}

	return &dtos.Page[models.PieceContextModel]{
		Data:       contexts,
		Total:      total,
		Page:       page,
		PerPage:    PageSize,
		TotalPages: totalPages(total),
		Search:     search,
	}, nil
}

func (s *PieceContextService) GetPieceContextByID(id int) (*models.PieceContextModel, error) {
	var context models.PieceContextModel
	if err := s.db.First(&context, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &context, nil
}

// GetPieceContextFormData offers only the pieces that do not have a context
// yet, so the 1:1 relation cannot be duplicated from the form.
func (s *PieceContextService) GetPieceContextFormData() (map[string]interface{}, error) {
	var pieces []models.PieceModel
	err := s.db.
		Where("id NOT IN (SELECT piece_id FROM piece_context_models)").
		Order("name ASC").
		Find(&pieces).Error
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"pieces": pieces}, nil
}

func (s *PieceContextService) CreatePieceContext(context *models.PieceContextModel) (*models.PieceContextModel, error) {
	if errs := s.validator.Check(pieceContextSchema, pieceContextValues(context), nil); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}
	if err := s.db.Create(context).Error; err != nil {
		return nil, translateWriteError(err, "piece_id")
	}
	return context, nil
}

func (s *PieceContextService) UpdatePieceContext(id int, updated *models.PieceContextModel) (*models.PieceContextModel, error) {
	var context models.PieceContextModel
	if err := s.db.First(&context, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if errs := s.validator.Check(pieceContextSchema, pieceContextValues(updated), &id); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	context.PieceID = updated.PieceID
	context.Provenance = updated.Provenance
	context.Bibliography = updated.Bibliography
	if err := s.db.Save(&context).Error; err != nil {
		return nil, translateWriteError(err, "piece_id")
	}
	return &context, nil
}

func (s *PieceContextService) DeletePieceContext(id int) error {
	result := s.db.Delete(&models.PieceContextModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PieceContextService) CheckField(field, value string, excludeID *int) (bool, string) {
	return s.validator.Field(pieceContextSchema, field, value, excludeID)
}

func pieceContextValues(c *models.PieceContextModel) map[string]interface{} {
	return map[string]interface{}{
		"piece_id":     optionalID(c.PieceID),
		"provenance":   c.Provenance,
		"bibliography": c.Bibliography,
	}
}
