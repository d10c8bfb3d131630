package models

import "time"

// Contexto de procedencia: a lo sumo un registro por pieza.
type PieceContextModel struct {
	Id           int       `json:"id" gorm:"primaryKey;autoIncrement"`
	PieceID      int       `json:"pieceId" gorm:"column:piece_id;not null;unique"`
	Provenance   *string   `json:"provenance" gorm:"column:provenance;type:text"`
	Bibliography *string   `json:"bibliography" gorm:"column:bibliography;type:text"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
