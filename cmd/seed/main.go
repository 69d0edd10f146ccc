package main

import (
	"errors"
	"log"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"notevault-be/internal/config"
	"notevault-be/internal/model"
	"notevault-be/pkg/database"
	"notevault-be/pkg/utils"
)

type seedCategory struct {
	Name        string
	Description string
	Color       string
}

// The same five built-ins a fresh local store seeds itself with.
var defaultCategories = []seedCategory{
	{"Technology", "Tech-related articles and tutorials", "#3b82f6"},
	{"Personal", "Personal thoughts and experiences", "#10b981"},
	{"Work", "Work-related notes and projects", "#f59e0b"},
	{"Ideas", "Creative ideas and brainstorming", "#8b5cf6"},
	{"Learning", "Educational content and study notes", "#ef4444"},
}

func main() {
	cfg := config.Load()

	if !cfg.RemoteConfigured() {
		log.Fatal("Remote backend is not configured; the local store seeds itself on first use")
	}

	dsn, err := database.BuildDSN(cfg.Remote.URL, cfg.Remote.AccessKey)
	if err != nil {
		log.Fatalf("Invalid remote backend configuration: %v", err)
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	for _, c := range defaultCategories {
		slug := utils.Slugify(c.Name)

		var existing model.Category
		err := gormDB.Where("slug = ?", slug).First(&existing).Error
		if err == nil {
			color.Yellow("skip   %-12s (already seeded)", c.Name)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to check category %q: %v", c.Name, err)
		}

		desc := c.Description
		category := model.Category{
			Id:          uuid.New().String(),
			Name:        c.Name,
			Slug:        slug,
			Description: &desc,
			Color:       c.Color,
		}
		if err := gormDB.Create(&category).Error; err != nil {
			log.Fatalf("Failed to seed category %q: %v", c.Name, err)
		}
		color.Green("seeded %-12s %s", c.Name, category.Id)
	}

	color.Cyan("✅ Default categories ready")
}
