package mapper

import (
	"encoding/json"

	"notevault-be/internal/entity"
	"notevault-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

// ToEntity resolves the display name from the profile metadata blob,
// preferring "name" and falling back to "full_name".
func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	var name *string
	if len(u.RawUserMetaData) > 0 {
		var meta map[string]string
		if err := json.Unmarshal(u.RawUserMetaData, &meta); err == nil {
			if v, ok := meta["name"]; ok && v != "" {
				name = &v
			} else if v, ok := meta["full_name"]; ok && v != "" {
				name = &v
			}
		}
	}

	return &entity.User{
		Id:    u.Id,
		Email: u.Email,
		Name:  name,
	}
}
