package model

import "time"

type Note struct {
	Id          string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Content     string     `gorm:"type:text"`
	Published   bool       `gorm:"not null;default:false;index"`
	PublishedAt *time.Time `gorm:"index"`
	UserId      string     `gorm:"type:uuid;not null;index"`
	CategoryId  *string    `gorm:"type:uuid"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`

	NoteCategories []NoteCategory `gorm:"foreignKey:NoteId;constraint:OnDelete:CASCADE"`
}

func (Note) TableName() string {
	return "notes"
}
