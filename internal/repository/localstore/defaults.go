package localstore

import "time"

// defaultCategories seeds a fresh local store with the five built-in
// categories. Ids are deterministic so a reinstalled client keeps its
// references stable.
func defaultCategories(now time.Time) []categoryRecord {
	desc := func(s string) *string { return &s }

	return []categoryRecord{
		{
			Id:          "1",
			Name:        "Technology",
			Slug:        "technology",
			Description: desc("Tech-related articles and tutorials"),
			Color:       "#3b82f6",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			Id:          "2",
			Name:        "Personal",
			Slug:        "personal",
			Description: desc("Personal thoughts and experiences"),
			Color:       "#10b981",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			Id:          "3",
			Name:        "Work",
			Slug:        "work",
			Description: desc("Work-related notes and projects"),
			Color:       "#f59e0b",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			Id:          "4",
			Name:        "Ideas",
			Slug:        "ideas",
			Description: desc("Creative ideas and brainstorming"),
			Color:       "#8b5cf6",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			Id:          "5",
			Name:        "Learning",
			Slug:        "learning",
			Description: desc("Educational content and study notes"),
			Color:       "#ef4444",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}
