package models

import "gorm.io/datatypes"

type TicketModel struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	CreatorID   uint   `gorm:"not null;index"`
	AssigneeID  uint   `gorm:"not null;index"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text;not null"`
	Category    string `gorm:"size:50;not null"`
	Priority    string `gorm:"size:20;not null;index"`
	Status      string `gorm:"size:20;not null;index"`
	Rating      *int
	Attachments datatypes.JSON `gorm:"type:json"`
	// LegacyImage carries records written before attachments became a list.
	// Every write clears it; the mapper folds it into Attachments on read.
	LegacyImage *string `gorm:"column:legacy_image;size:500"`
	CreatedAt   int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64   `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}
