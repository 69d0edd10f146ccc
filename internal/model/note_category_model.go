package model

import "time"

// NoteCategory is the many-to-many link row between notes and categories.
// After any save the link set for a note must equal the selected category
// set exactly.
type NoteCategory struct {
	Id         string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NoteId     string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_note_category"`
	CategoryId string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_note_category"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`

	Category *Category `gorm:"foreignKey:CategoryId"`
}

func (NoteCategory) TableName() string {
	return "note_categories"
}
