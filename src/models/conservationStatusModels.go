package models

import "time"

type ConservationStatusModel struct {
	Id                int        `json:"id" gorm:"primaryKey;autoIncrement"`
	PieceID           int        `json:"pieceId" gorm:"column:piece_id;not null"`
	UserID            int        `json:"userId" gorm:"column:user_id;not null"`
	User              *UserModel `json:"user,omitempty" gorm:"foreignKey:UserID;references:Id"`
	EvaluationDate    time.Time  `json:"evaluationDate" gorm:"column:evaluation_date;type:date;not null"`
	StatusDetails     string     `json:"statusDetails" gorm:"column:status_details;type:text;not null"`
	InterventionNotes *string    `json:"interventionNotes" gorm:"column:intervention_notes;type:text"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}
