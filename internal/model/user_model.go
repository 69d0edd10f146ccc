package model

import (
	"time"

	"gorm.io/datatypes"
)

// User mirrors the remote backend's auth table. RawUserMetaData carries the
// profile metadata blob; the display name resolves from its "name" key,
// falling back to "full_name".
type User struct {
	Id              string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email           string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash    *string        `gorm:"type:varchar(255)"`
	RawUserMetaData datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
