package services

import (
	"errors"
	"strings"

	"github.com/MUSEO/MUSEO-Backend/src/dtos"
	"github.com/MUSEO/MUSEO-Backend/src/models"
	"github.com/MUSEO/MUSEO-Backend/src/validation"
	"gorm.io/gorm"
)

var roleSchema = validation.Schema{
	"name": {
		{Kind: validation.Required},
		{Kind: validation.Str},
		{Kind: validation.Max, Max: 50},
		{Kind: validation.Unique, Table: "role_models", Column: "name"},
	},
	"description": {
		{Kind: validation.Str},
	},
}

type RoleService struct {
	db        *gorm.DB
	validator *validation.Validator
}

func NewRoleService(db *gorm.DB) *RoleService {
	return &RoleService{db: db, validator: validation.New(db)}
}

func (s *RoleService) GetAllRoles(search string, page int) (*dtos.Page[models.RoleModel], error) {
	page = normalizePage(page)
	query := s.db.Model(&models.RoleModel{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	items := make([]models.RoleModel, 0, PageSize)
	if err := query.Order("name ASC").Offset((page - 1) * PageSize).Limit(PageSize).Find(&items).Error; err != nil {
		return nil, err
	}

	return &dtos.Page[models.RoleModel]{
		Data:       items,
		Total:      total,
		Page:       page,
		PerPage:    PageSize,
		TotalPages: totalPages(total),
		Search:     search,
	}, nil
}

func (s *RoleService) GetRoleByID(id int) (*models.RoleModel, error) {
	var role models.RoleModel
	if err := s.db.First(&role, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &role, nil
}

func (s *RoleService) CreateRole(role *models.RoleModel) (*models.RoleModel, error) {
	if errs := s.validator.Check(roleSchema, roleValues(role), nil); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}
	if err := s.db.Create(role).Error; err != nil {
		return nil, translateWriteError(err, "name")
	}
	return role, nil
}

func (s *RoleService) UpdateRole(id int, updated *models.RoleModel) (*models.RoleModel, error) {
	var role models.RoleModel
	if err := s.db.First(&role, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if errs := s.validator.Check(roleSchema, roleValues(updated), &id); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	role.Name = updated.Name
	role.Description = updated.Description
	if err := s.db.Save(&role).Error; err != nil {
		return nil, translateWriteError(err, "name")
	}
	return &role, nil
}

// DeleteRole deletes a Role by ID; users keep a restrict foreign key on it.
func (s *RoleService) DeleteRole(id int) error {
	result := s.db.Delete(&models.RoleModel{}, id)
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

func (s *RoleService) CheckField(field, value string, excludeID *int) (bool, string) {
	return s.validator.Field(roleSchema, field, value, excludeID)
}

func roleValues(r *models.RoleModel) map[string]interface{} {
	return map[string]interface{}{
		"name":        r.Name,
		"description": r.Description,
	}
}
