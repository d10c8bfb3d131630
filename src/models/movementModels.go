package models

import "time"

type MovementModel struct {
	Id                int                   `json:"id" gorm:"primaryKey;autoIncrement"`
	PieceID           *int                  `json:"pieceId" gorm:"column:piece_id"`
	Piece             *PieceModel           `json:"piece,omitempty" gorm:"foreignKey:PieceID;references:Id"`
	MovementCatalogID int                   `json:"movementCatalogId" gorm:"column:movement_catalog_id;not null"`
	MovementCatalog   *MovementCatalogModel `json:"movementCatalog,omitempty" gorm:"foreignKey:MovementCatalogID;references:Id"`
	AgentID           int                   `json:"agentId" gorm:"column:agent_id;not null"`
	Agent             *AgentModel           `json:"agent,omitempty" gorm:"foreignKey:AgentID;references:Id"`
	Completed         bool                  `json:"completed" gorm:"column:completed;type:boolean;default:false;not null"`
	Date              time.Time             `json:"date" gorm:"column:date;type:date;not null"`
	UserID            int                   `json:"userId" gorm:"column:user_id;not null"`
	User              *UserModel            `json:"user,omitempty" gorm:"foreignKey:UserID;references:Id"`
	CreatedAt         time.Time             `json:"createdAt"`
	UpdatedAt         time.Time             `json:"updatedAt"`
}
