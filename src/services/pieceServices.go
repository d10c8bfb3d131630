package services

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/MUSEO/MUSEO-Backend/src/dtos"
	"github.com/MUSEO/MUSEO-Backend/src/models"
	"github.com/MUSEO/MUSEO-Backend/src/validation"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ImportResult struct {
	Imported int
	Errors   []string
}

var pieceSchema = validation.Schema{
	"registration_number": {
		{Kind: validation.Required},
		{Kind: validation.Str},
		{Kind: validation.Max, Max: 50},
		{Kind: validation.Unique, Table: "piece_models", Column: "registration_number"},
	},
	"name": {
		{Kind: validation.Required},
		{Kind: validation.Str},
		{Kind: validation.Max, Max: 150},
	},
	"classification_id": {
		{Kind: validation.Required},
		{Kind: validation.Integer},
		{Kind: validation.Exists, Table: "classification_models"},
	},
	"height": {
		{Kind: validation.Numeric},
	},
	"width": {
		{Kind: validation.Numeric},
	},
	"depth": {
		{Kind: validation.Numeric},
	},
	"description": {
		{Kind: validation.Str},
	},
	"research": {
		{Kind: validation.Boolean},
	},
	"acquisition_movement_id": {
		{Kind: validation.Integer},
		{Kind: validation.Exists, Table: "movement_models"},
	},
}

type PieceService struct {
	db        *gorm.DB
	validator *validation.Validator
}

func NewPieceService(db *gorm.DB) *PieceService {
	return &PieceService{db: db, validator: validation.New(db)}
}

// GetAllPieces retrieves a paginated, newest-first page of pieces. The
// search token matches the registration number, the name, the description
// and the related classification name.
func (s *PieceService) GetAllPieces(search string, page int) (*dtos.Page[models.PieceModel], error) {
	page = normalizePage(page)
	query := s.db.Model(&models.PieceModel{}).Preload("Classification")
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.
			Joins("LEFT JOIN classification_models ON classification_models.id = piece_models.classification_id").
			Where(
				"LOWER(piece_models.registration_number) LIKE ? OR LOWER(piece_models.name) LIKE ? OR LOWER(piece_models.description) LIKE ? OR LOWER(classification_models.name) LIKE ?",
				like, like, like, like,
			)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	pieces := make([]models.PieceModel, 0, PageSize)
	if err := query.Order("piece_models.id DESC").Offset((page - 1) * PageSize).Limit(PageSize).Find(&pieces).Error; err != nil {
		return nil, err
	}

	return &dtos.Page[models.PieceModel]{
		Data:       pieces,
		Total:      total,
		Page:       page,
		PerPage:    PageSize,
		TotalPages: totalPages(total),
		Search:     search,
	}, nil
}

// GetPieceSummaries returns the lightweight denormalized rows used by the
// listing table.
func (s *PieceService) GetPieceSummaries() ([]dtos.PieceSummaryDTO, error) {
	type summaryRow struct {
		ID                 int
		RegistrationNumber string
		Name               string
		ClassificationName *string `gorm:"column:classification_name"`
		Height             *float64
		Width              *float64
		Depth              *float64
		Research           bool
	}

	var rows []summaryRow
	err := s.db.Table("piece_models AS p").
		Select(`p.id,
			p.registration_number,
			p.name,
			c.name AS classification_name,
			p.height,
			p.width,
			p.depth,
			p.research`).
		Joins("LEFT JOIN classification_models c ON c.id = p.classification_id").
		Order("p.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]dtos.PieceSummaryDTO, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, dtos.PieceSummaryDTO{
			ID:                 row.ID,
			RegistrationNumber: row.RegistrationNumber,
			Name:               row.Name,
			ClassificationName: row.ClassificationName,
			Height:             row.Height,
			Width:              row.Width,
			Depth:              row.Depth,
			Research:           row.Research,
		})
	}
	return summaries, nil
}

func (s *PieceService) GetPieceByID(id int) (*models.PieceModel, error) {
	var piece models.PieceModel
	err := s.db.Preload("Classification").
		Preload("Context").
		Preload("LocationHistory").
		Preload("ConservationStatuses").
		Preload("Movements").
		Preload("Images").
		First(&piece, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &piece, nil
}

// GetPieceFormData returns the reference data needed by the piece form.
func (s *PieceService) GetPieceFormData() (map[string]interface{}, error) {
	var classifications []models.ClassificationModel
	if err := s.db.Order("name ASC").Find(&classifications).Error; err != nil {
		return nil, err
	}
	return map[string]interface{}{"classifications": classifications}, nil
}

func (s *PieceService) CreatePiece(piece *models.PieceModel) (*models.PieceModel, error) {
	if errs := s.validator.Check(pieceSchema, pieceValues(piece), nil); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}
	if err := s.db.Create(piece).Error; err != nil {
		return nil, translateWriteError(err, "registration_number")
	}
	return piece, nil
}

func (s *PieceService) UpdatePiece(id int, updated *models.PieceModel) (*models.PieceModel, error) {
	var piece models.PieceModel
	if err := s.db.First(&piece, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if errs := s.validator.Check(pieceSchema, pieceValues(updated), &id); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	piece.RegistrationNumber = updated.RegistrationNumber
	piece.Name = updated.Name
	piece.ClassificationID = updated.ClassificationID
	piece.Height = updated.Height
	piece.Width = updated.Width
	piece.Depth = updated.Depth
	piece.Description = updated.Description
	piece.Research = updated.Research
	piece.AcquisitionMovementId = updated.AcquisitionMovementId
	if err := s.db.Save(&piece).Error; err != nil {
		return nil, translateWriteError(err, "registration_number")
	}
	return &piece, nil
}

// DeletePiece removes a piece. Context, location history, conservation
// reports and images cascade at the store level; movements keep their row
// with the piece reference cleared.
func (s *PieceService) DeletePiece(id int) error {
	var piece models.PieceModel
	if err := s.db.Preload("Images").First(&piece, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	// Delete locally stored image files before dropping the rows
	for _, image := range piece.Images {
		if image.FilePath != "" {
			_ = os.Remove(image.FilePath)
		}
	}

	if err := s.db.Delete(&piece, id).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrConflict
		}
		return err
	}
	return nil
}

func (s *PieceService) CheckField(field, value string, excludeID *int) (bool, string) {
	return s.validator.Field(pieceSchema, field, value, excludeID)
}

// ======================= IMÁGENES =======================

func (s *PieceService) GetImageByPieceID(pieceID int) (*models.PieceImageModel, error) {
	var image models.PieceImageModel
	err := s.db.Where("piece_id = ?", pieceID).Order("id DESC").First(&image).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// SavePieceImage stores the image metadata, replacing a previous local file
// for the same piece when one exists.
func (s *PieceService) SavePieceImage(image *models.PieceImageModel) error {
	var existing models.PieceImageModel
	err := s.db.Where("piece_id = ?", image.PieceID).First(&existing).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.db.Create(image).Error; err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if existing.FilePath != "" {
			_ = os.Remove(existing.FilePath)
		}
		image.Id = existing.Id
		if err := s.db.Model(&existing).Updates(map[string]interface{}{
			"filename":      image.Filename,
			"original_name": image.OriginalName,
			"file_path":     image.FilePath,
			"drive_url":     image.DriveURL,
			"content_type":  image.ContentType,
			"size":          image.Size,
			"updated_at":    time.Now(),
		}).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *PieceService) DeletePieceImage(pieceID int) error {
	image, err := s.GetImageByPieceID(pieceID)
	if err != nil {
		return err
	}
	if image.FilePath != "" {
		_ = os.Remove(image.FilePath)
	}
	return s.db.Delete(&models.PieceImageModel{}, image.Id).Error
}

// ======================= IMPORTACIÓN =======================

// ImportPiecesFromExcel loads pieces in bulk from the first sheet of an
// Excel workbook. Expected columns: registration number, name,
// classification name, height, width, depth, description. Classifications
// are found or created by name; failed rows are reported, not fatal.
func (s *PieceService) ImportPiecesFromExcel(r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("archivo excel inválido: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer la hoja %s: %w", sheet, err)
	}

	result := &ImportResult{Imported: 0, Errors: []string{}}

	// Cache en memoria de clasificaciones por nombre para no repetir consultas
	classificationCache := make(map[string]int)

	for i, row := range rows {
		// Fila vacía o sin número de registro → la salto
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		if i == 0 && strings.EqualFold(strings.TrimSpace(row[0]), "registro") {
			continue // fila de encabezados
		}

		registration := strings.TrimSpace(row[0])

		name := ""
		if len(row) > 1 {
			name = strings.TrimSpace(row[1])
		}
		if name == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Fila %d: falta el nombre de la pieza", i+1))
			continue
		}

		classificationID, err := s.resolveClassification(row, classificationCache)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Fila %d: %v", i+1, err))
			continue
		}

		piece := models.PieceModel{
			RegistrationNumber: registration,
			Name:               name,
			ClassificationID:   classificationID,
			Height:             parseDimension(row, 3),
			Width:              parseDimension(row, 4),
			Depth:              parseDimension(row, 5),
		}
		if len(row) > 6 {
			if description := strings.TrimSpace(row[6]); description != "" {
				piece.Description = &description
			}
		}

		if err := s.db.Create(&piece).Error; err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Fila %d: %v", i+1, err))
			continue
		}
		result.Imported++
	}

	if result.Imported == 0 && len(result.Errors) > 0 {
		return result, fmt.Errorf("no se pudo importar ninguna pieza")
	}
	return result, nil
}

func (s *PieceService) resolveClassification(row []string, cache map[string]int) (int, error) {
	name := "Sin clasificar"
	if len(row) > 2 {
		if trimmed := strings.TrimSpace(row[2]); trimmed != "" {
			name = trimmed
		}
	}

	if id, ok := cache[name]; ok {
		return id, nil
	}

	var classification models.ClassificationModel
	err := s.db.Where("LOWER(name) = LOWER(?)", name).First(&classification).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		classification = models.ClassificationModel{Name: name}
		if err := s.db.Create(&classification).Error; err != nil {
			return 0, fmt.Errorf("no se pudo crear la clasificación %s: %v", name, err)
		}
	} else if err != nil {
		return 0, fmt.Errorf("error buscando la clasificación %s: %v", name, err)
	}

	cache[name] = classification.Id
	return classification.Id, nil
}

func parseDimension(row []string, index int) *float64 {
	if len(row) <= index {
		return nil
	}
	raw := strings.TrimSpace(strings.ReplaceAll(row[index], ",", "."))
	if raw == "" {
		return nil
	}
	var value float64
	if _, err := fmt.Sscanf(raw, "%f", &value); err != nil {
		return nil
	}
	return &value
}

func pieceValues(p *models.PieceModel) map[string]interface{} {
	return map[string]interface{}{
		"registration_number":     p.RegistrationNumber,
		"name":                    p.Name,
		"classification_id":       optionalID(p.ClassificationID),
		"height":                  p.Height,
		"width":                   p.Width,
		"depth":                   p.Depth,
		"description":             p.Description,
		"research":                p.Research,
		"acquisition_movement_id": p.AcquisitionMovementId,
	}
}
