package model

import (
	"time"
)

type Note struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text"`
	OwnerId   uint      `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Owner         *User               `gorm:"foreignKey:OwnerId;constraint:OnDelete:CASCADE"`
	Collaborators []*NoteCollaborator `gorm:"foreignKey:NoteId"`
}

func (Note) TableName() string {
	return "notes"
}
