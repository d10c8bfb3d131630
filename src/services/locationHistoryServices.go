package services

import (
	"errors"
	"strings"

	"github.com/MUSEO/MUSEO-Backend/src/dtos"
	"github.com/MUSEO/MUSEO-Backend/src/models"
	"github.com/MUSEO/MUSEO-Backend/src/validation"
	"gorm.io/gorm"
)

var locationHistorySchema = validation.Schema{
	"piece_id": {
		{Kind: validation.Required},
		{Kind: validation.Integer},
		{Kind: validation.Exists, Table: "piece_models"},
	},
	"location_category_id": {
		{Kind: validation.Required},
		{Kind: validation.Integer},
		{Kind: validation.Exists, Table: "location_category_models"},
	},
	"date": {
		{Kind: validation.Required},
		{Kind: validation.Date},
	},
	"reason": {
		{Kind: validation.Str},
	},
	"user_id": {
		{Kind: validation.Integer},
		{Kind: validation.Exists, Table: "user_models"},
	},
}

type LocationHistoryService struct {
	db        *gorm.DB
	validator *validation.Validator
}

func NewLocationHistoryService(db *gorm.DB) *LocationHistoryService {
	return &LocationHistoryService{db: db, validator: validation.New(db)}
}

// GetAllLocationHistory lists location records searchable by reason, the
// related piece name and the related category name.
func (s *LocationHistoryService) GetAllLocationHistory(search string, page int) (*dtos.Page[models.LocationHistoryModel], error) {
	page = normalizePage(page)
	query := s.db.Model(&models.LocationHistoryModel{}).
		Preload("LocationCategory").
		Preload("User")
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.
			Joins("LEFT JOIN piece_models ON piece_models.id = location_history_models.piece_id").
			Joins("LEFT JOIN location_category_models ON location_category_models.id = location_history_models.location_category_id").
			Where(
				"LOWER(location_history_models.reason) LIKE ? OR LOWER(piece_models.name) LIKE ? OR LOWER(location_category_models.name) LIKE ?",
				like, like, like,
			)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	records := make([]models.LocationHistoryModel, 0, PageSize)
	if err := query.Order("location_history_models.id DESC").Offset((page - 1) * PageSize).Limit(PageSize).Find(&records).Error; err != nil {
		return nil, err
	}

	return &dtos.Page[models.LocationHistoryModel]{
		Data:       records,
		Total:      total,
		Page:       page,
		PerPage:    PageSize,
		TotalPages: totalPages(total),
		Search:     search,
	}, nil
}

func (s *LocationHistoryService) GetLocationHistoryByID(id int) (*models.LocationHistoryModel, error) {
	var record models.LocationHistoryModel
	err := s.db.Preload("LocationCategory").Preload("User").First(&record, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (s *LocationHistoryService) GetLocationHistoryFormData() (map[string]interface{}, error) {
	var pieces []models.PieceModel
	if err := s.db.Order("name ASC").Find(&pieces).Error; err != nil {
		return nil, err
	}
	var categories []models.LocationCategoryModel
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"pieces":             pieces,
		"locationCategories": categories,
	}, nil
}

// CreateLocationHistory validates and creates a record, defaulting the
// responsible user to the authenticated actor.
func (s *LocationHistoryService) CreateLocationHistory(record *models.LocationHistoryModel, actorID *int) (*models.LocationHistoryModel, error) {
	if record.UserID == 0 && actorID != nil {
		record.UserID = *actorID
	}
	if errs := s.validator.Check(locationHistorySchema, locationHistoryValues(record), nil); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}
	if record.UserID == 0 {
		return nil, &ValidationError{Fields: validation.Errors{
			"user_id": "No se pudo determinar el usuario responsable",
		}}
	}
	if err := s.db.Create(record).Error; err != nil {
		return nil, translateWriteError(err, "piece_id")
	}
	return record, nil
}

func (s *LocationHistoryService) UpdateLocationHistory(id int, updated *models.LocationHistoryModel) (*models.LocationHistoryModel, error) {
	var record models.LocationHistoryModel
	if err := s.db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if errs := s.validator.Check(locationHistorySchema, locationHistoryValues(updated), &id); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	record.PieceID = updated.PieceID
	record.LocationCategoryID = updated.LocationCategoryID
	record.Date = updated.Date
	record.Reason = updated.Reason
	if updated.UserID != 0 {
		record.UserID = updated.UserID
	}
	if err := s.db.Save(&record).Error; err != nil {
		return nil, translateWriteError(err, "piece_id")
	}
	return &record, nil
}

func (s *LocationHistoryService) DeleteLocationHistory(id int) error {
	result := s.db.Delete(&models.LocationHistoryModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *LocationHistoryService) CheckField(field, value string, excludeID *int) (bool, string) {
	return s.validator.Field(locationHistorySchema, field, value, excludeID)
}

func locationHistoryValues(r *models.LocationHistoryModel) map[string]interface{} {
	return map[string]interface{}{
		"piece_id":             optionalID(r.PieceID),
		"location_category_id": optionalID(r.LocationCategoryID),
		"date":                 r.Date,
		"reason":               r.Reason,
		"user_id":              optionalID(r.UserID),
	}
}
