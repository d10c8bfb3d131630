package services

import (
	"errors"
	"strings"

	"github.com/MUSEO/MUSEO-Backend/src/dtos"
	"github.com/MUSEO/MUSEO-Backend/src/models"
	"github.com/MUSEO/MUSEO-Backend/src/validation"
	"gorm.io/gorm"
)

var conservationStatusSchema = validation.Schema{
	"piece_id": {
		{Kind: validation.Required},
		{Kind: validation.Integer},
		{Kind: validation.Exists, Table: "piece_models"},
	},
	"evaluation_date": {
		{Kind: validation.Required},
		{Kind: validation.Date},
	},
	"status_details": {
		{Kind: validation.Required},
		{Kind: validation.Str},
	},
	"intervention_notes": {
		{Kind: validation.Str},
	},
	"user_id": {
		{Kind: validation.Integer},
		{Kind: validation.Exists, Table: "user_models"},
	},
}

type ConservationStatusService struct {
	db        *gorm.DB
	validator *validation.Validator
}

func NewConservationStatusService(db *gorm.DB) *ConservationStatusService {
	return &ConservationStatusService{db: db, validator: validation.New(db)}
}

// GetAllConservationStatuses lists reports searchable by the status details,
// the intervention notes and the related piece name.
func (s *ConservationStatusService) GetAllConservationStatuses(search string, page int) (*dtos.Page[models.ConservationStatusModel], error) {
	page = normalizePage(page)
	query := s.db.Model(&models.ConservationStatusModel{}).Preload("User")
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.
			Joins("LEFT JOIN piece_models ON piece_models.id = conservation_status_models.piece_id").
			Where(
				"LOWER(conservation_status_models.status_details) LIKE ? OR LOWER(conservation_status_models.intervention_notes) LIKE ? OR LOWER(piece_models.name) LIKE ?",
				like, like, like,
			)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	reports := make([]models.ConservationStatusModel, 0, PageSize)
	if err := query.Order("conservation_status_models.id DESC").Offset((page - 1) * PageSize).Limit(PageSize).Find(&reports).Error; err != nil {
		return nil, err
	}

	return &dtos.Page[models.ConservationStatusModel]{
		Data:       reports,
		Total:      total,
		Page:       page,
		PerPage:    PageSize,
		TotalPages: totalPages(total),
		Search:     search,
	}, nil
}

func (s *ConservationStatusService) GetConservationStatusByID(id int) (*models.ConservationStatusModel, error) {
	var report models.ConservationStatusModel
	if err := s.db.Preload("User").First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (s *ConservationStatusService) GetConservationStatusFormData() (map[string]interface{}, error) {
	var pieces []models.PieceModel
	if err := s.db.Order("name ASC").Find(&pieces).Error; err != nil {
		return nil, err
	}
	return map[string]interface{}{"pieces": pieces}, nil
}

func (s *ConservationStatusService) CreateConservationStatus(report *models.ConservationStatusModel, actorID *int) (*models.ConservationStatusModel, error) {
	if report.UserID == 0 && actorID != nil {
		report.UserID = *actorID
	}
	if errs := s.validator.Check(conservationStatusSchema, conservationStatusValues(report), nil); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}
	if report.UserID == 0 {
		return nil, &ValidationError{Fields: validation.Errors{
			"user_id": "No se pudo determinar el usuario responsable",
		}}
	}
	if err := s.db.Create(report).Error; err != nil {
		return nil, translateWriteError(err, "piece_id")
	}
	return report, nil
}

func (s *ConservationStatusService) UpdateConservationStatus(id int, updated *models.ConservationStatusModel) (*models.ConservationStatusModel, error) {
	var report models.ConservationStatusModel
	if err := s.db.First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if errs := s.validator.Check(conservationStatusSchema, conservationStatusValues(updated), &id); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	report.PieceID = updated.PieceID
	report.EvaluationDate = updated.EvaluationDate
	report.StatusDetails = updated.StatusDetails
	report.InterventionNotes = updated.InterventionNotes
	if updated.UserID != 0 {
		report.UserID = updated.UserID
	}
	if err := s.db.Save(&report).Error; err != nil {
		return nil, translateWriteError(err, "piece_id")
	}
	return &report, nil
}

func (s *ConservationStatusService) DeleteConservationStatus(id int) error {
	result := s.db.Delete(&models.ConservationStatusModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ConservationStatusService) CheckField(field, value string, excludeID *int) (bool, string) {
	return s.validator.Field(conservationStatusSchema, field, value, excludeID)
}

func conservationStatusValues(r *models.ConservationStatusModel) map[string]interface{} {
	return map[string]interface{}{
		"piece_id":           optionalID(r.PieceID),
		"evaluation_date":    r.EvaluationDate,
		"status_details":     r.StatusDetails,
		"intervention_notes": r.InterventionNotes,
		"user_id":            optionalID(r.UserID),
	}
}
