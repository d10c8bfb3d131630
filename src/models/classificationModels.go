package models

import "time"

type ClassificationModel struct {
	Id          int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"column:name;type:varchar(100);not null;unique"`
	Description *string   `json:"description" gorm:"column:description;type:text"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
