package models

import "time"

type LocationHistoryModel struct {
	Id                 int                    `json:"id" gorm:"primaryKey;autoIncrement"`
	PieceID            int                    `json:"pieceId" gorm:"column:piece_id;not null"`
	LocationCategoryID int                    `json:"locationCategoryId" gorm:"column:location_category_id;not null"`
	LocationCategory   *LocationCategoryModel `json:"locationCategory,omitempty" gorm:"foreignKey:LocationCategoryID;references:Id"`
	UserID             int                    `json:"userId" gorm:"column:user_id;not null"`
	User               *UserModel             `json:"user,omitempty" gorm:"foreignKey:UserID;references:Id"`
	Date               time.Time              `json:"date" gorm:"column:date;type:date;not null"`
	Reason             *string                `json:"reason" gorm:"column:reason;type:text"`
	CreatedAt          time.Time              `json:"createdAt"`
	UpdatedAt          time.Time              `json:"updatedAt"`
}
