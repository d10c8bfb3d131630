package services

import (
	"errors"
	"strings"

	"github.com/MUSEO/MUSEO-Backend/src/dtos"
	"github.com/MUSEO/MUSEO-Backend/src/models"
	"github.com/MUSEO/MUSEO-Backend/src/validation"
	"gorm.io/gorm"
)

var movementCatalogSchema = validation.Schema{
	"name": {
		{Kind: validation.Required},
		{Kind: validation.Str},
		{Kind: validation.Max, Max: 100},
		{Kind: validation.Unique, Table: "movement_catalog_models", Column: "name"},
	},
}

type MovementCatalogService struct {
	db        *gorm.DB
	validator *validation.Validator
}

func NewMovementCatalogService(db *gorm.DB) *MovementCatalogService {
	return &MovementCatalogService{db: db, validator: validation.New(db)}
}

func (s *MovementCatalogService) GetAllMovementCatalogs(search string, page int) (*dtos.Page[models.MovementCatalogModel], error) {
	page = normalizePage(page)
	query := s.db.Model(&models.MovementCatalogModel{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ?", like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	items := make([]models.MovementCatalogModel, 0, PageSize)
	if err := query.Order("name ASC").Offset((page - 1) * PageSize).Limit(PageSize).Find(&items).Error; err != nil {
		return nil, err
	}

	return &dtos.Page[models.MovementCatalogModel]{
		Data:       items,
		Total:      total,
		Page:       page,
		PerPage:    PageSize,
		TotalPages: totalPages(total),
		Search:     search,
	}, nil
}

func (s *MovementCatalogService) GetMovementCatalogByID(id int) (*models.MovementCatalogModel, error) {
	var catalog models.MovementCatalogModel
	if err := s.db.First(&catalog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &catalog, nil
}

func (s *MovementCatalogService) CreateMovementCatalog(catalog *models.MovementCatalogModel) (*models.MovementCatalogModel, error) {
	if errs := s.validator.Check(movementCatalogSchema, movementCatalogValues(catalog), nil); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}
	if err := s.db.Create(catalog).Error; err != nil {
		return nil, translateWriteError(err, "name")
	}
	return catalog, nil
}

func (s *MovementCatalogService) UpdateMovementCatalog(id int, updated *models.MovementCatalogModel) (*models.MovementCatalogModel, error) {
	var catalog models.MovementCatalogModel
	if err := s.db.First(&catalog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if errs := s.validator.Check(movementCatalogSchema, movementCatalogValues(updated), &id); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	catalog.Name = updated.Name
	if err := s.db.Save(&catalog).Error; err != nil {
		return nil, translateWriteError(err, "name")
	}
	return &catalog, nil
}

func (s *MovementCatalogService) DeleteMovementCatalog(id int) error {
	result := s.db.Delete(&models.MovementCatalogModel{}, id)
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

func (s *MovementCatalogService) CheckField(field, value string, excludeID *int) (bool, string) {
	return s.validator.Field(movementCatalogSchema, field, value, excludeID)
}

func movementCatalogValues(c *models.MovementCatalogModel) map[string]interface{} {
	return map[string]interface{}{
		"name": c.Name,
	}
}
