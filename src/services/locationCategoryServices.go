package services

import (
	"errors"
	"strings"

	"github.com/MUSEO/MUSEO-Backend/src/dtos"
	"github.com/MUSEO/MUSEO-Backend/src/models"
	"github.com/MUSEO/MUSEO-Backend/src/validation"
	"gorm.io/gorm"
)

var locationCategorySchema = validation.Schema{
	"name": {
		{Kind: validation.Required},
		{Kind: validation.Str},
		{Kind: validation.Max, Max: 100},
		{Kind: validation.Unique, Table: "location_category_models", Column: "name"},
	},
	"description": {
		{Kind: validation.Str},
	},
}

type LocationCategoryService struct {
	db        *gorm.DB
	validator *validation.Validator
}

func NewLocationCategoryService(db *gorm.DB) *LocationCategoryService {
	return &LocationCategoryService{db: db, validator: validation.New(db)}
}

func (s *LocationCategoryService) GetAllLocationCategories(search string, page int) (*dtos.Page[models.LocationCategoryModel], error) {
	page = normalizePage(page)
	query := s.db.Model(&models.LocationCategoryModel{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	items := make([]models.LocationCategoryModel, 0, PageSize)
	if err := query.Order("name ASC").Offset((page - 1) * PageSize).Limit(PageSize).Find(&items).Error; err != nil {
		return nil, err
	}

	return &dtos.Page[models.LocationCategoryModel]{
		Data:       items,
		Total:      total,
		Page:       page,
		PerPage:    PageSize,
		TotalPages: totalPages(total),
		Search:     search,
	}, nil
}

func (s *LocationCategoryService) GetLocationCategoryByID(id int) (*models.LocationCategoryModel, error) {
	var category models.LocationCategoryModel
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (s *LocationCategoryService) CreateLocationCategory(category *models.LocationCategoryModel) (*models.LocationCategoryModel, error) {
	if errs := s.validator.Check(locationCategorySchema, locationCategoryValues(category), nil); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}
	if err := s.db.Create(category).Error; err != nil {
		return nil, translateWriteError(err, "name")
	}
	return category, nil
}

func (s *LocationCategoryService) UpdateLocationCategory(id int, updated *models.LocationCategoryModel) (*models.LocationCategoryModel, error) {
	var category models.LocationCategoryModel
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if errs := s.validator.Check(locationCategorySchema, locationCategoryValues(updated), &id); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	category.Name = updated.Name
	category.Description = updated.Description
	if err := s.db.Save(&category).Error; err != nil {
		return nil, translateWriteError(err, "name")
	}
	return &category, nil
}

func (s *LocationCategoryService) DeleteLocationCategory(id int) error {
	result := s.db.Delete(&models.LocationCategoryModel{}, id)
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

func (s *LocationCategoryService) CheckField(field, value string, excludeID *int) (bool, string) {
	return s.validator.Field(locationCategorySchema, field, value, excludeID)
}

func locationCategoryValues(c *models.LocationCategoryModel) map[string]interface{} {
	return map[string]interface{}{
		"name":        c.Name,
		"description": c.Description,
	}
}
