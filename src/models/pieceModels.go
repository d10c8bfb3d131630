package models

import "time"

type PieceModel struct {
	Id                 int                  `json:"id" gorm:"primaryKey;autoIncrement"`
	RegistrationNumber string               `json:"registrationNumber" gorm:"column:registration_number;type:varchar(50);not null;unique"`
	Name               string               `json:"name" gorm:"column:name;type:varchar(150);not null"`
	ClassificationID   int                  `json:"classificationId" gorm:"column:classification_id;not null"`
	Classification     *ClassificationModel `json:"classification,omitempty" gorm:"foreignKey:ClassificationID;references:Id"`
	Height             *float64             `json:"height" gorm:"column:height;type:numeric(10,2)"`
	Width              *float64             `json:"width" gorm:"column:width;type:numeric(10,2)"`
	Depth              *float64             `json:"depth" gorm:"column:depth;type:numeric(10,2)"`
	Description        *string              `json:"description" gorm:"column:description;type:text"`
	Research           bool                 `json:"research" gorm:"column:research;type:boolean;default:false;not null"`
	// El movimiento de adquisición es opcional: pueden existir piezas sin
	// un evento de ingreso trazable.
	AcquisitionMovementId *int `json:"acquisitionMovementId" gorm:"column:acquisition_movement_id"`

	Context              *PieceContextModel        `json:"context,omitempty" gorm:"foreignKey:PieceID;references:Id;constraint:OnDelete:CASCADE"`
	LocationHistory      []LocationHistoryModel    `json:"locationHistory,omitempty" gorm:"foreignKey:PieceID;references:Id;constraint:OnDelete:CASCADE"`
	ConservationStatuses []ConservationStatusModel `json:"conservationStatuses,omitempty" gorm:"foreignKey:PieceID;references:Id;constraint:OnDelete:CASCADE"`
	Movements            []MovementModel           `json:"movements,omitempty" gorm:"foreignKey:PieceID;references:Id;constraint:OnDelete:SET NULL"`
	Images               []PieceImageModel         `json:"images,omitempty" gorm:"foreignKey:PieceID;references:Id;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
