package models

import "time"

// Catálogo histórico: los movimientos registran su cierre con el campo
// booleano Completed, pero el catálogo sigue siendo administrable.
type TransactionStatusModel struct {
	Id          int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Status      string    `json:"status" gorm:"column:status;type:varchar(100);not null;unique"`
	Description *string   `json:"description" gorm:"column:description;type:text"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
