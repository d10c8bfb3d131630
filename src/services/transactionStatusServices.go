package services

import (
	"errors"
	"strings"

	"github.com/MUSEO/MUSEO-Backend/src/dtos"
	"github.com/MUSEO/MUSEO-Backend/src/models"
	"github.com/MUSEO/MUSEO-Backend/src/validation"
	"gorm.io/gorm"
)

var transactionStatusSchema = validation.Schema{
	"status": {
		{Kind: validation.Required},
		{Kind: validation.Str},
		{Kind: validation.Max, Max: 100},
		{Kind: validation.Unique, Table: "transaction_status_models", Column: "status"},
	},
	"description": {
		{Kind: validation.Str},
	},
}

type TransactionStatusService struct {
	db        *gorm.DB
	validator *validation.Validator
}

func NewTransactionStatusService(db *gorm.DB) *TransactionStatusService {
	return &TransactionStatusService{db: db, validator: validation.New(db)}
}

func (s *TransactionStatusService) GetAllTransactionStatuses(search string, page int) (*dtos.Page[models.TransactionStatusModel], error) {
	page = normalizePage(page)
	query := s.db.Model(&models.TransactionStatusModel{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(status) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	items := make([]models.TransactionStatusModel, 0, PageSize)
	if err := query.Order("status ASC").Offset((page - 1) * PageSize).Limit(PageSize).Find(&items).Error; err != nil {
		return nil, err
	}

	return &dtos.Page[models.TransactionStatusModel]{
		Data:       items,
		Total:      total,
		Page:       page,
		PerPage:    PageSize,
		TotalPages: totalPages(total),
		Search:     search,
	}, nil
}

func (s *TransactionStatusService) GetTransactionStatusByID(id int) (*models.TransactionStatusModel, error) {
	var status models.TransactionStatusModel
	if err := s.db.First(&status, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &status, nil
}

func (s *TransactionStatusService) CreateTransactionStatus(status *models.TransactionStatusModel) (*models.TransactionStatusModel, error) {
	if errs := s.validator.Check(transactionStatusSchema, transactionStatusValues(status), nil); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}
	if err := s.db.Create(status).Error; err != nil {
		return nil, translateWriteError(err, "status")
	}
	return status, nil
}

func (s *TransactionStatusService) UpdateTransactionStatus(id int, updated *models.TransactionStatusModel) (*models.TransactionStatusModel, error) {
	var status models.TransactionStatusModel
	if err := s.db.First(&status, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if errs := s.validator.Check(transactionStatusSchema, transactionStatusValues(updated), &id); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	status.Status = updated.Status
	status.Description = updated.Description
	if err := s.db.Save(&status).Error; err != nil {
		return nil, translateWriteError(err, "status")
	}
	return &status, nil
}

func (s *TransactionStatusService) DeleteTransactionStatus(id int) error {
	result := s.db.Delete(&models.TransactionStatusModel{}, id)
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

func (s *TransactionStatusService) CheckField(field, value string, excludeID *int) (bool, string) {
	return s.validator.Field(transactionStatusSchema, field, value, excludeID)
}

func transactionStatusValues(t *models.TransactionStatusModel) map[string]interface{} {
	return map[string]interface{}{
		"status":      t.Status,
		"description": t.Description,
	}
}
