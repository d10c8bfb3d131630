package services

import (
	"errors"
	"strings"

	"github.com/MUSEO/MUSEO-Backend/src/dtos"
	"github.com/MUSEO/MUSEO-Backend/src/models"
	"github.com/MUSEO/MUSEO-Backend/src/validation"
	"gorm.io/gorm"
)

// El nombre de la clasificación es único sin distinguir mayúsculas:
// "Pintura" y "pintura" son la misma clasificación.
var classificationSchema = validation.Schema{
	"name": {
		{Kind: validation.Required},
		{Kind: validation.Str},
		{Kind: validation.Max, Max: 100},
		{Kind: validation.UniqueLower, Table: "classification_models", Column: "name"},
	},
	"description": {
		{Kind: validation.Str},
	},
}

type ClassificationService struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewClassificationService creates a new instance of ClassificationService
func NewClassificationService(db *gorm.DB) *ClassificationService {
	return &ClassificationService{db: db, validator: validation.New(db)}
}

// GetAllClassifications retrieves a paginated, alphabetically ordered page of
// classifications, optionally filtered by a free-text search token.
func (s *ClassificationService) GetAllClassifications(search string, page int) (*dtos.Page[models.ClassificationModel], error) {
	page = normalizePage(page)
	query := s.db.Model(&models.ClassificationModel{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	items := make([]models.ClassificationModel, 0, PageSize)
	if err := query.Order("name ASC").Offset((page - 1) * PageSize).Limit(PageSize).Find(&items).Error; err != nil {
		return nil, err
	}

	return &dtos.Page[models.ClassificationModel]{
		Data:       items,
		Total:      total,
		Page:       page,
		PerPage:    PageSize,
		TotalPages: totalPages(total),
		Search:     search,
	}, nil
}

// GetClassificationByID retrieves a Classification record by ID
func (s *ClassificationService) GetClassificationByID(id int) (*models.ClassificationModel, error) {
	var classification models.ClassificationModel
	result := s.db.First(&classification, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &classification, nil
}

// CreateClassification validates and creates a new Classification record
func (s *ClassificationService) CreateClassification(classification *models.ClassificationModel) (*models.ClassificationModel, error) {
	if errs := s.validator.Check(classificationSchema, classificationValues(classification), nil); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}
	if err := s.db.Create(classification).Error; err != nil {
		return nil, translateWriteError(err, "name")
	}
	return classification, nil
}

// UpdateClassification validates and updates an existing Classification
// record; the uniqueness check excludes the record itself.
func (s *ClassificationService) UpdateClassification(id int, updated *models.ClassificationModel) (*models.ClassificationModel, error) {
	var classification models.ClassificationModel
	if err := s.db.First(&classification, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if errs := s.validator.Check(classificationSchema, classificationValues(updated), &id); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	classification.Name = updated.Name
	classification.Description = updated.Description
	if err := s.db.Save(&classification).Error; err != nil {
		return nil, translateWriteError(err, "name")
	}
	return &classification, nil
}

// DeleteClassification deletes a Classification record by ID. Pieces keep a
// restrict foreign key on it, so the store rejects the delete while any
// piece references the record.
func (s *ClassificationService) DeleteClassification(id int) error {
	result := s.db.Delete(&models.ClassificationModel{}, id)
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

// CheckField validates a single field in incremental mode
func (s *ClassificationService) CheckField(field, value string, excludeID *int) (bool, string) {
	return s.validator.Field(classificationSchema, field, value, excludeID)
}

func classificationValues(c *models.ClassificationModel) map[string]interface{} {
	return map[string]interface{}{
		"name":        c.Name,
		"description": c.Description,
	}
}
