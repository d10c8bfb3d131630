package models

import "time"

type PieceImageModel struct {
	Id           int       `json:"id" gorm:"primaryKey;autoIncrement"`
	PieceID      int       `json:"pieceId" gorm:"column:piece_id;not null"`
	Filename     string    `json:"filename" gorm:"column:filename;type:varchar(255);not null"`
	OriginalName string    `json:"originalName" gorm:"column:original_name;type:varchar(255)"`
	FilePath     string    `json:"filePath" gorm:"column:file_path;type:varchar(512)"`
	// URL de Google Drive cuando la fotografía digitalizada está alojada allí
	DriveURL    *string   `json:"driveUrl" gorm:"column:drive_url;type:varchar(512)"`
	ContentType string    `json:"contentType" gorm:"column:content_type;type:varchar(100)"`
	Size        int64     `json:"size" gorm:"column:size"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
